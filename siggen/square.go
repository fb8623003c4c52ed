package siggen

import "github.com/IldefonsoAspera/signalGenerator/palette"

// genSquare emits NElem·Duty/100 frames at the resolved peak colour followed
// by zero frames for the rest of the period.
//
// Zero is the same under linear and logarithmic scaling, so the low part is
// a bulk clear.
func genSquare(cfg *Config, e palette.Entry, w *sampleWriter) {
	nCh := int(cfg.NChannels)
	nHigh := uint64(cfg.NElem) * uint64(cfg.Duty) / MaxPercent
	nLow := uint64(cfg.NElem) - nHigh

	var colors [palette.MaxChannels]uint16
	resolveColors(colors[:nCh], e, peakValue(cfg), cfg.UseLogScale)

	for i := uint64(0); i < nHigh; i++ {
		w.putFrame(colors[:nCh])
	}
	w.zero(int(nLow), nCh)
}
