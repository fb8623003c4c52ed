package siggen

import (
	"testing"

	"github.com/IldefonsoAspera/signalGenerator/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSampleWriter_Widths checks byte packing and cursor advance for both widths.
func TestSampleWriter_Widths(t *testing.T) {
	buf := make([]byte, 6)
	w := newSampleWriter(buf, Layout{NElem: 3, NChannels: 1, SampleSize: 2})
	w.put(0x1234)
	w.put(0xFFEE)
	assert.Equal(t, 4, w.written())
	assert.Equal(t, []byte{0x34, 0x12, 0xEE, 0xFF, 0, 0}, buf)

	buf = make([]byte, 3)
	w = newSampleWriter(buf, Layout{NElem: 1, NChannels: 3, SampleSize: 1})
	w.putFrame([]uint16{0x0102, 0x0304, 0x0506})
	assert.Equal(t, []byte{0x02, 0x04, 0x06}, buf, "one-byte samples keep the low byte")
}

// TestSampleWriter_ClippedRegion ensures the writer cannot pass the layout size
// even when the backing buffer is larger.
func TestSampleWriter_ClippedRegion(t *testing.T) {
	buf := []byte{9, 9, 9, 9}
	w := newSampleWriter(buf, Layout{NElem: 2, NChannels: 1, SampleSize: 1})
	w.put(1)
	w.put(2)
	require.Panics(t, func() { w.put(3) })
	assert.Equal(t, []byte{1, 2, 9, 9}, buf)
}

// TestSampleWriter_Zero clears whole frames from the cursor.
func TestSampleWriter_Zero(t *testing.T) {
	buf := []byte{7, 7, 7, 7, 7, 7}
	w := newSampleWriter(buf, Layout{NElem: 3, NChannels: 2, SampleSize: 1})
	w.putFrame([]uint16{1, 2})
	w.zero(2, 2)
	assert.Equal(t, 6, w.written())
	assert.Equal(t, []byte{1, 2, 0, 0, 0, 0}, buf)
}

// TestLayout_Sample reads back what the writer packed.
func TestLayout_Sample(t *testing.T) {
	l := Layout{NElem: 2, NChannels: 2, SampleSize: 2}
	buf := make([]byte, l.Size())
	w := newSampleWriter(buf, l)
	w.putFrame([]uint16{1, 500})
	w.putFrame([]uint16{65535, 256})

	assert.Equal(t, 8, l.Size())
	assert.Equal(t, uint16(1), l.Sample(buf, 0, 0))
	assert.Equal(t, uint16(500), l.Sample(buf, 0, 1))
	assert.Equal(t, uint16(65535), l.Sample(buf, 1, 0))
	assert.Equal(t, uint16(256), l.Sample(buf, 1, 1))
}

// TestResolveColors_Modes pins linear and logarithmic peak resolution.
func TestResolveColors_Modes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UpperLimit = 200
	cfg.Intensity = 50
	peak := peakValue(&cfg)
	assert.Equal(t, uint64(100), peak)

	var colors [3]uint16
	assert.Equal(t, uint16(50), scaleRatio(128, peak, false), "100*128/255")
	// Log(128) is breakpoint 16 (3930), Log(192) is breakpoint 24 (16487)
	assert.Equal(t, uint16(5), scaleRatio(128, peak, true), "100*3930/65535")
	assert.Equal(t, uint16(25), scaleRatio(192, peak, true), "100*16487/65535")

	cfg.Intensity = 100
	e, err := palette.Lookup(palette.White)
	require.NoError(t, err)
	resolveColors(colors[:], e, peakValue(&cfg), true)
	assert.Equal(t, [3]uint16{200, 200, 200}, colors)
}
