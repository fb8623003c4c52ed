package siggen

import "github.com/IldefonsoAspera/signalGenerator/palette"

// rampLevel is the value of a ramp of n steps at step j for one channel.
// The ratio is first scaled into the 8-bit domain (ratio·j/n), then mapped
// onto [0, peak] linearly or through the brightness curve. j < n keeps the
// result strictly below the channel's peak.
func rampLevel(ratio uint8, j, n uint32, peak uint64, useLog bool) uint16 {
	r := uint8(uint64(ratio) * uint64(j) / uint64(n))

	return scaleRatio(r, peak, useLog)
}

// rampFrame fills frame with the ramp value of every channel at step j of n.
func rampFrame(frame []uint16, e palette.Entry, j, n uint32, peak uint64, useLog bool) {
	for ch := range frame {
		frame[ch] = rampLevel(e.Ratio[ch], j, n, peak, useLog)
	}
}

// genRamp emits a non-decreasing ramp from zero towards the peak colour.
func genRamp(cfg *Config, e palette.Entry, w *sampleWriter) {
	nCh := int(cfg.NChannels)
	peak := peakValue(cfg)

	var frame [palette.MaxChannels]uint16
	for j := uint32(0); j < cfg.NElem; j++ {
		rampFrame(frame[:nCh], e, j, cfg.NElem, peak, cfg.UseLogScale)
		w.putFrame(frame[:nCh])
	}
}
