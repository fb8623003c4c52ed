// Package wavexport writes generated PWM buffers as PCM WAV files so a
// waveform can be auditioned or inspected in any audio editor or scope tool,
// and reads such files back into a buffer.
//
// Mapping:
//   - one WAV channel per signal channel, interleaved in R, G, B order;
//   - 1-byte samples become 8-bit unsigned PCM, byte for byte;
//   - 2-byte samples become 16-bit signed PCM, shifted down by 32768 so the
//     signal's half-scale sits on the WAV zero line.
//
// Usage:
//
//	f, _ := os.Create("sine.wav")
//	defer f.Close()
//	err := wavexport.Encode(f, cfg.Layout(), cfg.Buffer,
//	  wavexport.WithSampleRate(8000), wavexport.WithRepeat(100))
//
// Encoding buffers its samples in memory; it is a preview tool, not a
// streaming writer.
package wavexport
