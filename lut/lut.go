package lut

// Table geometry.
const (
	// Points is the number of breakpoints in every table.
	Points = 33

	// Step is the input distance between two consecutive breakpoints.
	Step = 8

	// Max is the full-scale output of every table.
	Max = 65535

	// Mid is the centre line of a reconstructed sine period.
	Mid = 32768
)

// Table is a set of breakpoints interpolated over the 0–255 input domain.
type Table [Points]uint16

// logScale was created with X = (2^((n+1)/32) - 1) * 2^16.
var logScale = Table{
	0, 55, 114, 184, 267, 366, 484, 624,
	790, 988, 1224, 1504, 1837, 2233, 2704, 3264,
	3930, 4722, 5663, 6783, 8115, 9699, 11583, 13823,
	16487, 19655, 23422, 27902, 33230, 39565, 47100, 56060,
	65535,
}

// sineQuarter covers phase 0..π/2 scaled to [0, Max].
var sineQuarter = Table{
	0, 3228, 6449, 9653, 12835, 15985, 19096, 22161,
	25172, 28122, 31004, 33811, 36535, 39171, 41711, 44151,
	46483, 48702, 50803, 52781, 54630, 56347, 57927, 59366,
	60662, 61810, 62808, 63653, 64344, 64878, 65255, 65474,
	65535,
}

// At returns the interpolated value of t at input i.
// Complexity: O(1).
func (t Table) At(i uint8) uint16 {
	k := uint32(i) / Step
	lo, hi := uint32(t[k]), uint32(t[k+1])
	// breakpoints are non-decreasing, so hi-lo never wraps
	return uint16(lo + (hi-lo)*(uint32(i)%Step)/Step)
}

// LogScale returns a copy of the logarithmic brightness breakpoints.
func LogScale() Table { return logScale }

// SineQuarter returns a copy of the quarter-sine breakpoints.
func SineQuarter() Table { return sineQuarter }

// Log maps an 8-bit linear level to a 16-bit perceptual level.
// The extremes are exact: Log(0)=0 and Log(255)=Max.
func Log(i uint8) uint16 {
	switch i {
	case 0:
		return 0
	case 255:
		return Max
	}

	return logScale.At(i)
}

// Sine returns the quarter-sine amplitude at phase index i.
func Sine(i uint8) uint16 { return sineQuarter.At(i) }

// SinePhase returns the phase index inside the quarter table for sample j of
// quadrant k (0..3), where quarter is the number of samples per quadrant.
// Odd quadrants run the table backwards. quarter must be non-zero.
func SinePhase(k, j, quarter uint32) uint8 {
	idx := j * 255 / quarter
	if k%2 == 1 {
		idx = 255 - idx
	}

	return uint8(idx)
}

// SineCentered places a quarter-table amplitude s around Mid: quadrants 0
// and 1 sit above the centre line, quadrants 2 and 3 below it.
func SineCentered(k uint32, s uint16) uint16 {
	if k > 1 {
		return uint16(Mid - uint32(s)/2)
	}

	return uint16(Mid + uint32(s)/2)
}
