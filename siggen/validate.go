// SPDX-License-Identifier: MIT

package siggen

import (
	"fmt"

	"github.com/IldefonsoAspera/signalGenerator/palette"
)

// invalidf tags ErrInvalidParams with the offending field.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("Validate: %s: %w", fmt.Sprintf(format, args...), ErrInvalidParams)
}

// Validate checks every invariant of cfg without touching the buffer.
//
// Checks, in order:
//   - Color is a palette colour.
//   - NChannels is 1..3 and at least the colour's MinChannels.
//   - Duty ≤ 100 when Pattern is Square (other shapes ignore Duty).
//   - Intensity ≤ 100.
//   - SampleSize is 1 or 2.
//   - NElem < 2^24.
//   - Buffer is non-nil and holds at least Layout().Size() bytes.
//
// The pattern itself is not checked here: Generate reports unknown patterns
// with ErrUnknownPattern.
//
// Errors: every failure wraps ErrInvalidParams.
// Complexity: O(1).
func Validate(cfg *Config) error {
	_, err := validate(cfg)

	return err
}

// validate runs the checks of Validate and returns the palette entry of a
// valid configuration.
func validate(cfg *Config) (palette.Entry, error) {
	if cfg == nil {
		return palette.Entry{}, invalidf("nil config")
	}

	entry, err := palette.Lookup(cfg.Color)
	if err != nil {
		return palette.Entry{}, invalidf("color %d", uint8(cfg.Color))
	}
	if cfg.NChannels == 0 || cfg.NChannels > palette.MaxChannels {
		return palette.Entry{}, invalidf("nChannels %d out of 1..%d", cfg.NChannels, palette.MaxChannels)
	}
	if cfg.NChannels < entry.MinChannels {
		return palette.Entry{}, invalidf("color %s needs %d channels, got %d", cfg.Color, entry.MinChannels, cfg.NChannels)
	}
	if cfg.Pattern == Square && cfg.Duty > MaxPercent {
		return palette.Entry{}, invalidf("duty %d > %d", cfg.Duty, MaxPercent)
	}
	if cfg.Intensity > MaxPercent {
		return palette.Entry{}, invalidf("intensity %d > %d", cfg.Intensity, MaxPercent)
	}
	if cfg.SampleSize != 1 && cfg.SampleSize != 2 {
		return palette.Entry{}, invalidf("sampleSize %d not 1 or 2", cfg.SampleSize)
	}
	if cfg.NElem > MaxNElem {
		return palette.Entry{}, invalidf("nElem %d exceeds %d", cfg.NElem, MaxNElem)
	}
	if cfg.Buffer == nil {
		return palette.Entry{}, invalidf("nil buffer")
	}
	if need := cfg.Layout().Size(); len(cfg.Buffer) < need {
		return palette.Entry{}, invalidf("buffer holds %d bytes, need %d", len(cfg.Buffer), need)
	}

	return entry, nil
}
