package siggen

// sampleWriter packs samples into a buffer through a local cursor, leaving
// the caller's Config untouched.
type sampleWriter struct {
	buf  []byte // clipped to the configured region
	pos  int
	size int // 1 or 2
}

// newSampleWriter returns a writer limited to the first l.Size() bytes of buf.
// Validate guarantees buf is large enough.
func newSampleWriter(buf []byte, l Layout) sampleWriter {
	return sampleWriter{buf: buf[:l.Size():l.Size()], size: l.SampleSize}
}

// put writes the low byte of v, then the high byte for two-byte samples,
// and advances the cursor by one sample.
func (w *sampleWriter) put(v uint16) {
	w.buf[w.pos] = byte(v)
	if w.size == 2 {
		w.buf[w.pos+1] = byte(v >> 8)
	}
	w.pos += w.size
}

// putFrame writes one sample per channel, in R, G, B order.
func (w *sampleWriter) putFrame(vals []uint16) {
	for _, v := range vals {
		w.put(v)
	}
}

// zero clears n whole frames of nCh channels starting at the cursor.
func (w *sampleWriter) zero(n, nCh int) {
	end := w.pos + n*nCh*w.size
	clear(w.buf[w.pos:end])
	w.pos = end
}

// written returns the number of bytes emitted so far.
func (w *sampleWriter) written() int { return w.pos }
