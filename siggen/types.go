// SPDX-License-Identifier: MIT

package siggen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/IldefonsoAspera/signalGenerator/palette"
)

// Version of the waveform engine.
const Version = "0.3.0"

// Sentinel errors returned by Validate and Generate.
var (
	// ErrInvalidParams indicates a configuration that violates an invariant.
	// Nothing has been written to the buffer.
	ErrInvalidParams = errors.New("siggen: invalid parameters")

	// ErrUnknownPattern indicates a pattern selector outside the known set.
	// Nothing has been written to the buffer.
	ErrUnknownPattern = errors.New("siggen: unknown pattern")
)

// Pattern selects the waveform shape.
type Pattern uint8

const (
	// Square holds the peak for Duty percent of the samples, then zero.
	Square Pattern = iota

	// Triangle rises over the first half and falls over the second.
	Triangle

	// Sine produces one full period centred at half scale.
	Sine

	// Ramp rises from zero towards (never reaching) the peak.
	Ramp

	// PatternCount is the number of known patterns.
	PatternCount
)

var patternNames = [PatternCount]string{"square", "triangle", "sine", "ramp"}

// String returns the lower-case pattern name.
func (p Pattern) String() string {
	if p >= PatternCount {
		return fmt.Sprintf("pattern(%d)", uint8(p))
	}

	return patternNames[p]
}

// ParsePattern resolves a pattern name, case-insensitively.
func ParsePattern(s string) (Pattern, error) {
	s = strings.TrimSpace(s)
	for p, name := range patternNames {
		if strings.EqualFold(s, name) {
			return Pattern(p), nil
		}
	}

	return PatternCount, fmt.Errorf("ParsePattern %q: %w", s, ErrUnknownPattern)
}

// Result is the return code of GenPattern.
type Result uint8

const (
	// Success means the buffer holds the requested waveform.
	Success Result = iota

	// InvalidParams means the configuration was rejected; the buffer is unchanged.
	InvalidParams

	// Unknown means the pattern was not recognised; the buffer is unchanged.
	Unknown
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case InvalidParams:
		return "invalid parameters"
	default:
		return "unknown"
	}
}

// ResultOf maps an error from Generate onto its result code.
func ResultOf(err error) Result {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrInvalidParams):
		return InvalidParams
	default:
		return Unknown
	}
}

// Limits of a valid configuration.
const (
	// MaxNElem bounds the element count so fixed-point products cannot overflow.
	MaxNElem = 1<<24 - 1

	// MaxPercent bounds Duty and Intensity.
	MaxPercent = 100
)

// Config describes one synthesis call. The engine reads it and never
// modifies it, so the same value may be passed to Generate repeatedly.
type Config struct {
	// Buffer receives the samples. It must hold at least Layout().Size() bytes.
	Buffer []byte

	// UpperLimit is the sample value for 100% output.
	UpperLimit uint16

	// NElem is the number of time samples, below 2^24.
	NElem uint32

	// Color selects the palette entry.
	Color palette.Color

	// Pattern selects the waveform shape.
	Pattern Pattern

	// NChannels is 1..3 and at least the colour's MinChannels.
	NChannels uint8

	// Duty is the percentage of high samples, 0..100. Square only.
	Duty uint8

	// Intensity scales the whole colour, 0..100.
	Intensity uint8

	// SampleSize is the byte width of one channel sample, 1 or 2.
	SampleSize uint8

	// UseLogScale selects perceptual instead of linear brightness.
	UseLogScale bool
}

// DefaultConfig returns an 8-bit, three-channel, full-intensity white square
// wave at 50% duty. Buffer and NElem are left for the caller.
func DefaultConfig() Config {
	return Config{
		UpperLimit: 255,
		Color:      palette.White,
		Pattern:    Square,
		NChannels:  3,
		Duty:       50,
		Intensity:  MaxPercent,
		SampleSize: 1,
	}
}

// Layout returns the buffer geometry implied by c.
func (c Config) Layout() Layout {
	return Layout{NElem: int(c.NElem), NChannels: int(c.NChannels), SampleSize: int(c.SampleSize)}
}

// Layout is the shape of a generated buffer: NElem groups of NChannels
// samples of SampleSize bytes each.
type Layout struct {
	NElem      int
	NChannels  int
	SampleSize int
}

// Size returns the number of bytes the layout occupies.
func (l Layout) Size() int { return l.NElem * l.NChannels * l.SampleSize }

// Sample reads channel ch of element elem from buf. Two-byte samples are
// little-endian. It panics if the position lies outside buf.
func (l Layout) Sample(buf []byte, elem, ch int) uint16 {
	pos := (elem*l.NChannels + ch) * l.SampleSize
	v := uint16(buf[pos])
	if l.SampleSize == 2 {
		v |= uint16(buf[pos+1]) << 8
	}

	return v
}
