package siggen

import (
	"github.com/IldefonsoAspera/signalGenerator/lut"
	"github.com/IldefonsoAspera/signalGenerator/palette"
)

// quadrants per sine period.
const quadrants = 4

// sineLevel scales a centred sine value v by the channel ratio, then maps it
// onto [0, peak]. In log mode the high byte of the scaled value goes through
// the brightness curve.
func sineLevel(v uint16, ratio uint8, peak uint64, useLog bool) uint16 {
	scaled := uint64(v) * uint64(ratio) / 255
	if useLog {
		return uint16(peak * uint64(lut.Log(uint8(scaled>>8))) / lut.Max)
	}

	return uint16(peak * scaled / lut.Max)
}

// genSine emits one sine period over NElem samples, built from four
// quadrants of NElem/4 samples mirrored out of the quarter table.
//
// The NElem%4 frames that do not fill a quadrant are written as zero.
func genSine(cfg *Config, e palette.Entry, w *sampleWriter) {
	nCh := int(cfg.NChannels)
	peak := peakValue(cfg)
	quarter := cfg.NElem / quadrants

	var frame [palette.MaxChannels]uint16
	for k := uint32(0); k < quadrants && quarter > 0; k++ {
		for j := uint32(0); j < quarter; j++ {
			v := lut.SineCentered(k, lut.Sine(lut.SinePhase(k, j, quarter)))
			for ch := range frame[:nCh] {
				frame[ch] = sineLevel(v, e.Ratio[ch], peak, cfg.UseLogScale)
			}
			w.putFrame(frame[:nCh])
		}
	}
	w.zero(int(cfg.NElem-quadrants*quarter), nCh)
}
