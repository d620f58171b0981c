package blaze

/*
list.go implements the List kind (spec §3.1, §4.3): a homogeneous
sequence carrying a single element-type byte and a VarInt length, then
the elements with no per-element tag.
*/

// List is a homogeneous sequence of raw-encoded element values, each
// still holding its own encoded bytes (no per-element tag on the
// wire, so no per-element label here either).
type List struct {
	Elem     Kind
	Elements [][]byte
}

// EncodeList appends l (spec §4.3: List encode).
func EncodeList(w *Writer, l List) {
	w.WriteKind(l.Elem)
	w.WriteUsize(len(l.Elements))
	for _, e := range l.Elements {
		w.WriteBytes(e)
	}
}

// DecodeList reads a List, validating the element-type byte against
// expected (spec I5); a mismatch is a decode error.
func DecodeList(r *Reader, expected Kind) (List, error) {
	var l List
	k, err := r.ReadKind()
	if err != nil {
		return l, err
	}
	if k != expected {
		return l, errWrongElementKind("list element", expected, k)
	}
	l.Elem = k

	n, err := r.ReadUsize()
	if err != nil {
		return l, err
	}
	l.Elements = make([][]byte, 0, n)
	for i := 0; i < n; i++ {
		start := r.Mark()
		if err := skipValue(r, k); err != nil {
			return l, err
		}
		l.Elements = append(l.Elements, append([]byte(nil), r.sliceSince(start)...))
	}
	return l, nil
}

// skipList consumes a List without validating or materializing its
// element type.
func skipList(r *Reader) error {
	k, err := r.ReadKind()
	if err != nil {
		return err
	}
	n, err := r.ReadUsize()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := skipValue(r, k); err != nil {
			return err
		}
	}
	return nil
}
