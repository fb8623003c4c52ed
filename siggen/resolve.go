package siggen

import (
	"github.com/IldefonsoAspera/signalGenerator/lut"
	"github.com/IldefonsoAspera/signalGenerator/palette"
)

// peakValue is UpperLimit scaled by Intensity percent.
func peakValue(cfg *Config) uint64 {
	return uint64(cfg.UpperLimit) * uint64(cfg.Intensity) / MaxPercent
}

// scaleRatio maps an 8-bit ratio onto [0, peak]: linearly, or through the
// brightness curve when useLog is set.
func scaleRatio(ratio uint8, peak uint64, useLog bool) uint16 {
	if useLog {
		return uint16(peak * uint64(lut.Log(ratio)) / lut.Max)
	}

	return uint16(peak * uint64(ratio) / 255)
}

// resolveColors fills colors with the peak amplitude of each channel.
// Only the first len(colors) channels are resolved.
func resolveColors(colors []uint16, e palette.Entry, peak uint64, useLog bool) {
	for ch := range colors {
		colors[ch] = scaleRatio(e.Ratio[ch], peak, useLog)
	}
}
