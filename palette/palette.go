// Package palette maps the symbolic LED colours to per-channel 8-bit ratios
// and the minimum number of output channels each colour needs.
//
// Channels are ordered R, G, B. A one-channel output drives red only, a
// two-channel output drives red and green; colours that need blue require
// all three channels.
//
// Errors:
//
//	ErrUnknownColor - colour index or name outside the palette.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColor indicates a colour that is not part of the palette.
var ErrUnknownColor = errors.New("palette: unknown color")

// Color is a symbolic palette index.
type Color uint8

// Palette colours, in table order.
const (
	Black Color = iota
	Red
	Green
	Blue
	Yellow
	Cyan
	Magenta
	White

	// Count is the number of palette colours.
	Count
)

// MaxChannels is the widest output the palette describes.
const MaxChannels = 3

// Entry describes one palette colour.
type Entry struct {
	// MinChannels is the narrowest output able to show the colour.
	MinChannels uint8

	// Ratio holds the R, G, B intensities; narrower outputs use a prefix.
	Ratio [MaxChannels]uint8
}

var entries = [Count]Entry{
	Black:   {1, [MaxChannels]uint8{0, 0, 0}},
	Red:     {1, [MaxChannels]uint8{255, 0, 0}},
	Green:   {2, [MaxChannels]uint8{0, 255, 0}},
	Blue:    {3, [MaxChannels]uint8{0, 0, 255}},
	Yellow:  {2, [MaxChannels]uint8{255, 255, 0}},
	Cyan:    {3, [MaxChannels]uint8{0, 255, 255}},
	Magenta: {3, [MaxChannels]uint8{255, 0, 255}},
	White:   {3, [MaxChannels]uint8{255, 255, 255}},
}

var names = [Count]string{"black", "red", "green", "blue", "yellow", "cyan", "magenta", "white"}

// Valid reports whether c indexes the palette.
func (c Color) Valid() bool { return c < Count }

// String returns the lower-case colour name.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", uint8(c))
	}

	return names[c]
}

// Lookup returns the palette entry for c.
func Lookup(c Color) (Entry, error) {
	if !c.Valid() {
		return Entry{}, fmt.Errorf("Lookup %d: %w", uint8(c), ErrUnknownColor)
	}

	return entries[c], nil
}

// Colorful returns c as a go-colorful value, for previews and matching.
// Invalid colours map to black.
func (c Color) Colorful() colorful.Color {
	if !c.Valid() {
		return colorful.Color{}
	}
	r := entries[c].Ratio

	return colorful.Color{R: float64(r[0]) / 255, G: float64(r[1]) / 255, B: float64(r[2]) / 255}
}

// Nearest snaps an arbitrary colour to the closest palette colour using the
// CIE-Lab distance. Ties resolve to the lower palette index.
func Nearest(col colorful.Color) Color {
	best := Black
	bestDist := col.DistanceLab(Black.Colorful())
	for c := Black + 1; c < Count; c++ {
		if d := col.DistanceLab(c.Colorful()); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best
}

// ParseColor resolves a colour name (case-insensitive) or a "#rrggbb" hex
// string. Hex strings are snapped to the nearest palette colour.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		col, err := colorful.Hex(s)
		if err != nil {
			return Black, fmt.Errorf("ParseColor %q: %w", s, ErrUnknownColor)
		}

		return Nearest(col), nil
	}
	for c, name := range names {
		if strings.EqualFold(s, name) {
			return Color(c), nil
		}
	}

	return Black, fmt.Errorf("ParseColor %q: %w", s, ErrUnknownColor)
}
