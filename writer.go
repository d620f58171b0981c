package blaze

/*
writer.go is the dual of reader.go: an append-only byte buffer. All
operations are infallible - the buffer grows as needed, matching the
spec's requirement that encoding never fails.
*/

import "math"

// Writer accumulates encoded bytes. The zero value is ready to use.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with its internal buffer pre-sized to n
// bytes, as a capacity hint.
func NewWriter(n int) *Writer { return &Writer{buf: make([]byte, 0, n)} }

// Bytes returns the accumulated buffer. The returned slice aliases the
// Writer's storage.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// WriteByte appends a single byte.
func (w *Writer) WriteByte(b byte) { w.buf = append(w.buf, b) }

// WriteBytes appends raw bytes verbatim.
func (w *Writer) WriteBytes(b []byte) { w.buf = append(w.buf, b...) }

// WriteVarUint appends v using the VarInt encoding (spec §4.2).
func (w *Writer) WriteVarUint(v uint64) { w.buf = appendVarInt(w.buf, v) }

func (w *Writer) WriteU8(v uint8)   { w.WriteVarUint(uint64(v)) }
func (w *Writer) WriteU16(v uint16) { w.WriteVarUint(uint64(v)) }
func (w *Writer) WriteU32(v uint32) { w.WriteVarUint(uint64(v)) }
func (w *Writer) WriteU64(v uint64) { w.WriteVarUint(v) }
func (w *Writer) WriteUsize(v int)  { w.WriteVarUint(uint64(v)) }

// WriteBool encodes a bool as a VarInt whose value is 0 or 1.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteVarUint(1)
	} else {
		w.WriteVarUint(0)
	}
}

// WriteF32 appends a 4-byte big-endian IEEE-754 single.
func (w *Writer) WriteF32(v float32) {
	bits := math.Float32bits(v)
	w.buf = append(w.buf, byte(bits>>24), byte(bits>>16), byte(bits>>8), byte(bits))
}

// WriteString appends a VarInt length (including the terminator), the
// string's bytes, and a trailing NUL if the string doesn't already end
// in one (spec I3).
func (w *Writer) WriteString(s string) {
	nul := 1
	if len(s) > 0 && s[len(s)-1] == 0 {
		nul = 0
	}
	w.WriteUsize(len(s) + nul)
	w.WriteBytes([]byte(s))
	if nul == 1 {
		w.WriteByte(0)
	}
}

// WriteBlob appends a VarInt length followed by the raw bytes - no NUL
// discipline applies.
func (w *Writer) WriteBlob(b []byte) {
	w.WriteUsize(len(b))
	w.WriteBytes(b)
}

// WriteKind appends a single kind discriminant byte.
func (w *Writer) WriteKind(k Kind) { w.WriteByte(byte(k)) }

// WriteTag appends the packed 3-byte label followed by the kind
// discriminant (4 bytes total).
func (w *Writer) WriteTag(label string, kind Kind) {
	t := EncodeTag(label, kind)
	w.WriteBytes(t[:])
}
