package blaze

/*
tdfmap.go implements the Map kind (spec §3.1, §4.3): key-type byte,
value-type byte, VarInt length, then that many (key, value) pairs.
Key uniqueness is not enforced on the wire (spec §4.3) - TdfMap.Entries
preserves insertion/wire order rather than collapsing into a Go map,
so a round-trip is exact even with duplicate keys.
*/

// MapEntry is one raw-encoded (key, value) pair.
type MapEntry struct {
	Key   []byte
	Value []byte
}

// TdfMap is a homogeneous, order-preserving association list. The
// reference preserves entry order by sorting on demand rather than a
// hash table (spec §9); SortByKey (mapsort.go) establishes that order
// when a peer implementation requires canonical key ordering.
type TdfMap struct {
	KeyKind   Kind
	ValueKind Kind
	Entries   []MapEntry
}

// EncodeMap appends m (spec §4.3: Map encode).
func EncodeMap(w *Writer, m TdfMap) {
	w.WriteKind(m.KeyKind)
	w.WriteKind(m.ValueKind)
	w.WriteUsize(len(m.Entries))
	for _, e := range m.Entries {
		w.WriteBytes(e.Key)
		w.WriteBytes(e.Value)
	}
}

// DecodeMap reads a Map, validating both key and value kinds against
// the caller's expectations (spec I5).
func DecodeMap(r *Reader, expectKey, expectValue Kind) (TdfMap, error) {
	var m TdfMap
	kk, err := r.ReadKind()
	if err != nil {
		return m, err
	}
	if kk != expectKey {
		return m, errWrongElementKind("map key", expectKey, kk)
	}
	vk, err := r.ReadKind()
	if err != nil {
		return m, err
	}
	if vk != expectValue {
		return m, errWrongElementKind("map value", expectValue, vk)
	}
	m.KeyKind, m.ValueKind = kk, vk

	n, err := r.ReadUsize()
	if err != nil {
		return m, err
	}
	m.Entries = make([]MapEntry, 0, n)
	for i := 0; i < n; i++ {
		kStart := r.Mark()
		if err := skipValue(r, kk); err != nil {
			return m, err
		}
		key := append([]byte(nil), r.sliceSince(kStart)...)

		vStart := r.Mark()
		if err := skipValue(r, vk); err != nil {
			return m, err
		}
		value := append([]byte(nil), r.sliceSince(vStart)...)

		m.Entries = append(m.Entries, MapEntry{Key: key, Value: value})
	}
	return m, nil
}

// skipMap consumes a Map without validating or materializing its
// key/value kinds.
func skipMap(r *Reader) error {
	kk, err := r.ReadKind()
	if err != nil {
		return err
	}
	vk, err := r.ReadKind()
	if err != nil {
		return err
	}
	n, err := r.ReadUsize()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := skipValue(r, kk); err != nil {
			return err
		}
		if err := skipValue(r, vk); err != nil {
			return err
		}
	}
	return nil
}
