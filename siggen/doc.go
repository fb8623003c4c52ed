// Package siggen synthesizes PWM waveforms for multi-channel LED outputs.
//
// 🚀 What does it do?
//
//	Given a palette colour, a waveform shape, an element count and
//	brightness/duty parameters, Generate fills a caller-owned byte buffer
//	with nElem groups of nChannels samples. Each sample is 1 or 2 bytes
//	(little-endian), channels are ordered R, G, B and truncated to nChannels.
//
// ✨ Key features:
//   - four shapes: Square (duty cycle), Ramp, Triangle, Sine
//   - linear or perceptual (logarithmic) brightness mapping
//   - fail-fast validation: an invalid configuration never touches the buffer
//   - no allocation, no goroutines, no shared mutable state
//
// ⚙️ Usage:
//
//	import "github.com/IldefonsoAspera/signalGenerator/siggen"
//
//	cfg := siggen.DefaultConfig()
//	cfg.Color = palette.Cyan
//	cfg.Pattern = siggen.Sine
//	cfg.NElem = 256
//	cfg.Buffer = make([]byte, cfg.Layout().Size())
//
//	if err := siggen.Generate(&cfg); err != nil {
//	  // errors.Is(err, siggen.ErrInvalidParams) / siggen.ErrUnknownPattern
//	}
//
// Callers that prefer result codes use GenPattern, which returns Success,
// InvalidParams or Unknown.
//
// Performance:
//
//   - Time:   O(nElem·nChannels)
//   - Memory: O(1); the buffer is owned by the caller
//
// Concurrency:
//
//	The lookup tables and palette are read-only. Generate keeps its write
//	cursor local, so one Config may be reused for repeated calls; concurrent
//	calls are safe as long as they do not share a Buffer.
package siggen
