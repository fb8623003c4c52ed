package siggen

import "github.com/IldefonsoAspera/signalGenerator/palette"

// genTriangle emits a ramp of NElem/2 steps followed by the same ramp
// walked backwards, so the output is symmetric about its midpoint.
//
// With an odd NElem the remaining frame is not part of the triangle; it is
// written as zero, the level the falling edge ends on.
func genTriangle(cfg *Config, e palette.Entry, w *sampleWriter) {
	nCh := int(cfg.NChannels)
	peak := peakValue(cfg)
	half := cfg.NElem / 2

	var frame [palette.MaxChannels]uint16
	for j := uint32(0); j < half; j++ {
		rampFrame(frame[:nCh], e, j, half, peak, cfg.UseLogScale)
		w.putFrame(frame[:nCh])
	}
	for j := half; j > 0; j-- {
		rampFrame(frame[:nCh], e, j-1, half, peak, cfg.UseLogScale)
		w.putFrame(frame[:nCh])
	}
	w.zero(int(cfg.NElem-2*half), nCh)
}
