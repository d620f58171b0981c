package blaze

/*
pair.go implements the VarIntList, Pair, and Triple kinds (spec §3.1,
§4.3): fixed- or variable-arity sequences of bare VarInts with no
element-type byte (unlike List).
*/

// VarIntList is a length-prefixed sequence of VarInts.
type VarIntList []uint64

func EncodeVarIntList(w *Writer, l VarIntList) {
	w.WriteUsize(len(l))
	for _, v := range l {
		w.WriteVarUint(v)
	}
}

func DecodeVarIntList(r *Reader) (VarIntList, error) {
	n, err := r.ReadUsize()
	if err != nil {
		return nil, err
	}
	l := make(VarIntList, 0, n)
	for i := 0; i < n; i++ {
		v, err := r.ReadVarUint()
		if err != nil {
			return nil, err
		}
		l = append(l, v)
	}
	return l, nil
}

func skipVarIntList(r *Reader) error {
	n, err := r.ReadUsize()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := r.ReadVarUint(); err != nil {
			return err
		}
	}
	return nil
}

// Pair is two VarInts with no length prefix.
type Pair [2]uint64

func EncodePair(w *Writer, p Pair) {
	w.WriteVarUint(p[0])
	w.WriteVarUint(p[1])
}

func DecodePair(r *Reader) (Pair, error) {
	var p Pair
	var err error
	if p[0], err = r.ReadVarUint(); err != nil {
		return p, err
	}
	if p[1], err = r.ReadVarUint(); err != nil {
		return p, err
	}
	return p, nil
}

// Triple is three VarInts with no length prefix.
type Triple [3]uint64

func EncodeTriple(w *Writer, t Triple) {
	w.WriteVarUint(t[0])
	w.WriteVarUint(t[1])
	w.WriteVarUint(t[2])
}

func DecodeTriple(r *Reader) (Triple, error) {
	var t Triple
	var err error
	for i := range t {
		if t[i], err = r.ReadVarUint(); err != nil {
			return t, err
		}
	}
	return t, nil
}
