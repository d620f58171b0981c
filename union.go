package blaze

/*
union.go implements the Union kind (spec §3.1, §4.3, §8.2 scenario 6):
either "unset" (key byte 0x7F) or "set" (an arbitrary key byte < 0x7F
followed by one tagged child value). The key is opaque - it is not the
nested value's own tag and must be echoed verbatim on re-encode (spec
I6, §9's note on not conflating the two).
*/

const unionUnsetKey = 0x7F

// Union is the decoded form of a TDF union. Set is false for the
// unset variant, in which case Key and Field are both zero.
type Union struct {
	Set   bool
	Key   byte
	Field Field
}

// UnsetUnion is the canonical unset Union value.
func UnsetUnion() Union { return Union{} }

// EncodeUnion appends u (spec §4.3: Union encode).
func EncodeUnion(w *Writer, u Union) {
	if !u.Set {
		w.WriteByte(unionUnsetKey)
		return
	}
	w.WriteByte(u.Key)
	w.WriteTag(u.Field.Tag, u.Field.Kind)
	w.WriteBytes(u.Field.Value)
}

// DecodeUnion reads a Union (spec §4.3, I6: a key of 0x7F is unset;
// any other byte is an opaque set-key followed by one tagged value).
func DecodeUnion(r *Reader) (Union, error) {
	key, err := r.ReadByte()
	if err != nil {
		return Union{}, err
	}
	if key == unionUnsetKey {
		return UnsetUnion(), nil
	}

	label, kind, err := r.ReadTag()
	if err != nil {
		return Union{}, err
	}
	start := r.Mark()
	if err := skipValue(r, kind); err != nil {
		return Union{}, err
	}
	raw := append([]byte(nil), r.sliceSince(start)...)
	return Union{Set: true, Key: key, Field: Field{Tag: label, Kind: kind, Value: raw}}, nil
}

// skipUnion consumes a Union without materializing its contents.
func skipUnion(r *Reader) error {
	key, err := r.ReadByte()
	if err != nil {
		return err
	}
	if key == unionUnsetKey {
		return nil
	}
	_, kind, err := r.ReadTag()
	if err != nil {
		return err
	}
	return skipValue(r, kind)
}
