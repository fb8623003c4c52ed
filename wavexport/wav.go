package wavexport

import (
	"errors"
	"fmt"
	"io"

	"github.com/IldefonsoAspera/signalGenerator/siggen"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Sentinel errors for encoding and decoding.
var (
	// ErrBadLayout indicates a layout with no channels or an unsupported sample width.
	ErrBadLayout = errors.New("wavexport: bad layout")

	// ErrShortBuffer indicates a buffer smaller than its layout.
	ErrShortBuffer = errors.New("wavexport: buffer shorter than layout")

	// ErrNotWav indicates input that is not a PCM WAV file of a supported depth.
	ErrNotWav = errors.New("wavexport: not a valid wav file")
)

// pcmFormat is the WAVE format tag for integer PCM.
const pcmFormat = 1

// centre is the offset between unsigned 16-bit signal samples and signed PCM.
const centre = 32768

// validateLayout checks the layout shape and that buf covers it.
func validateLayout(l siggen.Layout, buf []byte) error {
	if l.NChannels <= 0 || l.NElem < 0 || (l.SampleSize != 1 && l.SampleSize != 2) {
		return fmt.Errorf("%+v: %w", l, ErrBadLayout)
	}
	if len(buf) < l.Size() {
		return fmt.Errorf("have %d bytes, need %d: %w", len(buf), l.Size(), ErrShortBuffer)
	}

	return nil
}

// Encode writes buf, shaped by l, to w as a PCM WAV file.
//
// Errors: ErrBadLayout, ErrShortBuffer, or the underlying write error.
// Complexity: O(NElem·NChannels·repeat) time and memory.
func Encode(w io.WriteSeeker, l siggen.Layout, buf []byte, opts ...Option) error {
	if err := validateLayout(l, buf); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	o := gatherOptions(opts...)

	period := make([]int, 0, l.NElem*l.NChannels)
	for i := 0; i < l.NElem; i++ {
		for ch := 0; ch < l.NChannels; ch++ {
			v := int(l.Sample(buf, i, ch))
			if l.SampleSize == 2 {
				v -= centre
			}
			period = append(period, v)
		}
	}
	data := make([]int, 0, len(period)*o.repeat)
	for r := 0; r < o.repeat; r++ {
		data = append(data, period...)
	}

	bitDepth := l.SampleSize * 8
	enc := wav.NewEncoder(w, o.sampleRate, bitDepth, l.NChannels, pcmFormat)
	ib := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: l.NChannels, SampleRate: o.sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(ib); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return nil
}

// Decode reads a WAV file written by Encode and returns its layout together
// with the samples repacked into signal bytes. Repeated periods come back as
// one long buffer.
//
// Errors: ErrNotWav, ErrBadLayout, or the underlying read error.
func Decode(r io.ReadSeeker) (siggen.Layout, []byte, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return siggen.Layout{}, nil, fmt.Errorf("Decode: %w", ErrNotWav)
	}
	if dec.BitDepth != 8 && dec.BitDepth != 16 {
		return siggen.Layout{}, nil, fmt.Errorf("Decode: bit depth %d: %w", dec.BitDepth, ErrNotWav)
	}
	nCh := int(dec.NumChans)
	if nCh == 0 {
		return siggen.Layout{}, nil, fmt.Errorf("Decode: no channels: %w", ErrBadLayout)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return siggen.Layout{}, nil, fmt.Errorf("Decode: %w", err)
	}

	l := siggen.Layout{
		NElem:      len(pcm.Data) / nCh,
		NChannels:  nCh,
		SampleSize: int(dec.BitDepth) / 8,
	}
	out := make([]byte, 0, l.Size())
	for _, v := range pcm.Data[:l.NElem*nCh] {
		if l.SampleSize == 1 {
			out = append(out, byte(v))
			continue
		}
		u := uint16(v + centre)
		out = append(out, byte(u), byte(u>>8))
	}

	return l, out, nil
}
