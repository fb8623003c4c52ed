// SPDX-License-Identifier: MIT

package siggen

import (
	"fmt"

	"github.com/IldefonsoAspera/signalGenerator/palette"
)

// Generate validates cfg and fills cfg.Buffer with the selected waveform.
//
// Behavior:
//   - Validation runs first; on failure the error wraps ErrInvalidParams and
//     the buffer is untouched.
//   - A pattern outside the known set returns ErrUnknownPattern, also
//     without writes.
//   - On success the whole Layout().Size() region is written, from index 0.
//     Trailing samples a shape cannot fill (the last one for an odd-length
//     Triangle, the last NElem%4 for Sine) are written as zero, never left
//     as they were. Bytes past the region are not touched.
//
// cfg is only read. Complexity: O(NElem·NChannels) time, O(1) memory.
func Generate(cfg *Config) error {
	e, err := validate(cfg)
	if err != nil {
		return err
	}

	var gen func(*Config, palette.Entry, *sampleWriter)
	switch cfg.Pattern {
	case Square:
		gen = genSquare
	case Triangle:
		gen = genTriangle
	case Sine:
		gen = genSine
	case Ramp:
		gen = genRamp
	default:
		return fmt.Errorf("Generate %s: %w", cfg.Pattern, ErrUnknownPattern)
	}

	w := newSampleWriter(cfg.Buffer, cfg.Layout())
	gen(cfg, e, &w)

	return nil
}

// GenPattern is Generate reporting a Result code instead of an error.
func GenPattern(cfg *Config) Result {
	return ResultOf(Generate(cfg))
}
