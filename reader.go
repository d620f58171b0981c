package blaze

/*
reader.go implements the cursor-based buffer reader (spec §4.2): a
Reader borrows a byte slice and exposes the primitive read operations
every value kind is built from. Bounds checks use the strict form
cursor+n > len by default; SetStrict(false) switches a Reader to the
reference implementation's off-by-one cursor+n >= len form.
*/

import "math"

// Reader is a cursor over a borrowed byte slice. It never allocates on
// the read path except where a logical string/byte copy is required.
type Reader struct {
	buf    []byte
	pos    int
	strict bool
}

// NewReader wraps buf for sequential or speculative reads starting at
// position 0, using the strict bounds check.
func NewReader(buf []byte) *Reader { return &Reader{buf: buf, strict: true} }

// SetStrict toggles the bounds-check form (spec §9, open question
// two). Off reproduces the reference implementation's off-by-one
// cursor+n >= len, kept only so a capture decoded against the
// original server can be compared byte-for-byte against this decoder
// (see Options.LaxBounds).
func (r *Reader) SetStrict(strict bool) { r.strict = strict }

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return len(r.buf) - r.pos }

// Pos returns the current cursor offset into the underlying buffer.
func (r *Reader) Pos() int { return r.pos }

// Mark returns the current cursor position so a failed speculative
// read can be rewound with Reset.
func (r *Reader) Mark() int { return r.pos }

// Reset rewinds the cursor to a position previously returned by Mark.
func (r *Reader) Reset(mark int) { r.pos = mark }

// sliceSince returns a view of the bytes consumed between mark and the
// current cursor position. The returned slice aliases the Reader's
// backing buffer.
func (r *Reader) sliceSince(mark int) []byte { return r.buf[mark:r.pos] }

func (r *Reader) need(n int) error {
	limit := len(r.buf)
	if r.strict {
		if r.pos+n > limit {
			return errShortRead(n, limit-r.pos)
		}
		return nil
	}
	if r.pos+n >= limit {
		return errShortRead(n, limit-r.pos)
	}
	return nil
}

// ReadByte consumes and returns a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// ReadBytesFixed4 consumes and returns exactly 4 bytes as a fixed-size
// array, used by tag and float decoding.
func (r *Reader) ReadBytesFixed4() ([4]byte, error) {
	var out [4]byte
	if err := r.need(4); err != nil {
		return out, err
	}
	copy(out[:], r.buf[r.pos:r.pos+4])
	r.pos += 4
	return out, nil
}

// ReadSlice consumes and returns a view of the next n bytes. The
// returned slice aliases the Reader's backing buffer and must be
// copied by the caller before the buffer is reused or mutated.
func (r *Reader) ReadSlice(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	out := r.buf[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

// ReadVarUint decodes an unsigned VarInt (spec §4.2).
func (r *Reader) ReadVarUint() (uint64, error) {
	v, next, err := readVarInt(r.buf, r.pos)
	if err != nil {
		return 0, err
	}
	r.pos = next
	return v, nil
}

func (r *Reader) ReadU8() (uint8, error)   { v, err := r.ReadVarUint(); return uint8(v), err }
func (r *Reader) ReadU16() (uint16, error) { v, err := r.ReadVarUint(); return uint16(v), err }
func (r *Reader) ReadU32() (uint32, error) { v, err := r.ReadVarUint(); return uint32(v), err }
func (r *Reader) ReadU64() (uint64, error) { return r.ReadVarUint() }
func (r *Reader) ReadUsize() (int, error)  { v, err := r.ReadVarUint(); return int(v), err }

// ReadBool reads a VarInt and reports whether its decoded value is
// nonzero (spec §4.2: a decoder tolerates any VarInt encoding, not
// just the canonical 0/1 byte).
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadVarUint()
	return v != 0, err
}

// ReadF32 reads a 4-byte big-endian IEEE-754 single.
func (r *Reader) ReadF32() (float32, error) {
	b, err := r.ReadBytesFixed4()
	if err != nil {
		return 0, err
	}
	bits := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	return math.Float32frombits(bits), nil
}

// ReadString reads a VarInt length (including the trailing NUL), the
// string bytes, and strips the trailing NUL (spec I3).
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadUsize()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	b, err := r.ReadSlice(n)
	if err != nil {
		return "", err
	}
	return string(b[:len(b)-1]), nil
}

// ReadBlob reads a VarInt length and returns a copy of that many
// opaque bytes - unlike String, no NUL discipline applies.
func (r *Reader) ReadBlob() ([]byte, error) {
	n, err := r.ReadUsize()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []byte{}, nil
	}
	b, err := r.ReadSlice(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadKind reads a single byte and interprets it as a Kind
// discriminant, rejecting values outside 0x00-0x0A (spec P7).
func (r *Reader) ReadKind() (Kind, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	k := Kind(b)
	if !k.Valid() {
		return 0, errUnknownKind(b)
	}
	return k, nil
}

// ReadTag reads the 3-byte packed label plus the 1-byte kind
// discriminant (4 bytes total).
func (r *Reader) ReadTag() (label string, kind Kind, err error) {
	b, err := r.ReadBytesFixed4()
	if err != nil {
		return "", 0, err
	}
	k := Kind(b[3])
	if !k.Valid() {
		return "", 0, errUnknownKind(b[3])
	}
	label, _ = DecodeTag(b)
	return label, k, nil
}
