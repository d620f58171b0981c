package blaze

/*
struct.go implements the derived-struct codec contract (spec §4.5).
The reference crate generates this sequence at compile time from a
derive macro; Go has no equivalent macro facility (REDESIGN FLAG R1:
this is implemented as a source-level helper layer instead of codegen
- see DESIGN.md). Hand-written or `go generate`-produced Encode/Decode
methods call these helpers; the sequence they express is exactly
spec §4.5's algorithm:

  Encode: for each field in declaration order, emit tag+kind then the
  value. Group-typed records additionally emit the terminating 0x00
  (and an optional leading 0x02).

  Decode: for each field in declaration order, invoke decodeUntil then
  decode the value. Group-typed records first consume an optional
  leading 0x02, decode fields, then discard trailing fields up to the
  terminator.
*/

// FieldSpec names one declared field of a derived struct: its wire
// tag and kind, used to drive out-of-order lookup in declaration
// order during Decode.
type FieldSpec struct {
	Tag  string
	Kind Kind
}

// EncodeFields writes fields' tag+value pairs in order with no
// wrapping terminator - the shape used for a packet body or any other
// top-level record, where the surrounding frame (not a 0x00 byte)
// marks the end.
func EncodeFields(w *Writer, fields []Field) {
	for _, f := range fields {
		w.WriteTag(f.Tag, f.Kind)
		w.WriteBytes(f.Value)
	}
}

// DecodeFields decodes len(specs) fields in declared order via
// decodeUntil, returning one raw Field per spec. Used for records with
// no group wrapper (e.g. a packet body).
func DecodeFields(r *Reader, specs []FieldSpec) ([]Field, error) {
	out := make([]Field, len(specs))
	for i, spec := range specs {
		if err := decodeUntil(r, spec.Tag, spec.Kind); err != nil {
			return nil, err
		}
		start := r.Mark()
		if err := skipValue(r, spec.Kind); err != nil {
			return nil, err
		}
		out[i] = Field{Tag: spec.Tag, Kind: spec.Kind, Value: append([]byte(nil), r.sliceSince(start)...)}
	}
	return out, nil
}

// EncodeGroupFields wraps fields as a nested Group (spec §4.5: a
// group-typed record additionally emits the terminator, and the
// 2-prefix marker when twoPrefix is set).
func EncodeGroupFields(w *Writer, twoPrefix bool, fields []Field) {
	EncodeGroup(w, Group{TwoPrefix: twoPrefix, Fields: fields})
}

// DecodeGroupFields decodes a nested group-typed record: it reads the
// whole group (respecting the optional leading 0x02 and the
// terminator), then resolves each declared field against the group's
// members. Fields present on the wire but not named in specs are
// discarded, exactly as spec §4.5 describes ("discard any trailing
// fields up to the group terminator").
func DecodeGroupFields(r *Reader, specs []FieldSpec) (twoPrefix bool, fields []Field, err error) {
	g, err := DecodeGroup(r)
	if err != nil {
		return false, nil, err
	}
	fields = make([]Field, len(specs))
	for i, spec := range specs {
		f, ok := findField(g.Fields, spec.Tag)
		if !ok {
			return g.TwoPrefix, nil, errMissingTag(spec.Tag)
		}
		if f.Kind != spec.Kind {
			return g.TwoPrefix, nil, errWrongKindAt(spec.Tag, spec.Kind, f.Kind)
		}
		fields[i] = f
	}
	return g.TwoPrefix, fields, nil
}

func findField(fields []Field, tag string) (Field, bool) {
	for _, f := range fields {
		if f.Tag == tag {
			return f, true
		}
	}
	return Field{}, false
}

// The FooField constructors below build a Field by encoding a single
// value's body in isolation, for composing into EncodeFields,
// EncodeGroupFields, list elements, or map entries.

func VarIntField(tag string, v uint64) Field {
	w := NewWriter(8)
	w.WriteVarUint(v)
	return Field{Tag: tag, Kind: KindVarInt, Value: w.Bytes()}
}

func StringField(tag, v string) Field {
	w := NewWriter(len(v) + 4)
	w.WriteString(v)
	return Field{Tag: tag, Kind: KindString, Value: w.Bytes()}
}

func BlobField(tag string, v []byte) Field {
	w := NewWriter(len(v) + 4)
	w.WriteBlob(v)
	return Field{Tag: tag, Kind: KindBlob, Value: w.Bytes()}
}

func FloatField(tag string, v float32) Field {
	w := NewWriter(4)
	w.WriteF32(v)
	return Field{Tag: tag, Kind: KindFloat, Value: w.Bytes()}
}

func GroupFieldValue(tag string, g Group) Field {
	w := NewWriter(32)
	EncodeGroup(w, g)
	return Field{Tag: tag, Kind: KindGroup, Value: w.Bytes()}
}

func ListFieldValue(tag string, l List) Field {
	w := NewWriter(32)
	EncodeList(w, l)
	return Field{Tag: tag, Kind: KindList, Value: w.Bytes()}
}

func MapFieldValue(tag string, m TdfMap) Field {
	w := NewWriter(32)
	EncodeMap(w, m)
	return Field{Tag: tag, Kind: KindMap, Value: w.Bytes()}
}

func UnionFieldValue(tag string, u Union) Field {
	w := NewWriter(16)
	EncodeUnion(w, u)
	return Field{Tag: tag, Kind: KindUnion, Value: w.Bytes()}
}

func VarIntListFieldValue(tag string, l VarIntList) Field {
	w := NewWriter(8 * (len(l) + 1))
	EncodeVarIntList(w, l)
	return Field{Tag: tag, Kind: KindVarIntList, Value: w.Bytes()}
}

func PairFieldValue(tag string, p Pair) Field {
	w := NewWriter(16)
	EncodePair(w, p)
	return Field{Tag: tag, Kind: KindPair, Value: w.Bytes()}
}

func TripleFieldValue(tag string, t Triple) Field {
	w := NewWriter(24)
	EncodeTriple(w, t)
	return Field{Tag: tag, Kind: KindTriple, Value: w.Bytes()}
}

// DecodeVarIntValue, DecodeStringValue, etc. decode a Field's raw
// value bytes back into the typed Go value, for callers that received
// a Field (e.g. from DecodeFields or from walking a Group's members)
// and now want the materialized value.

func DecodeVarIntValue(f Field) (uint64, error) {
	v, _, err := readVarInt(f.Value, 0)
	return v, err
}

func DecodeStringValue(f Field) (string, error) {
	return NewReader(f.Value).ReadString()
}

func DecodeBlobValue(f Field) ([]byte, error) {
	return NewReader(f.Value).ReadBlob()
}

func DecodeFloatValue(f Field) (float32, error) {
	return NewReader(f.Value).ReadF32()
}

func DecodeGroupValue(f Field) (Group, error) {
	return DecodeGroup(NewReader(f.Value))
}

func DecodeListValue(f Field, expected Kind) (List, error) {
	return DecodeList(NewReader(f.Value), expected)
}

func DecodeMapValue(f Field, expectKey, expectValue Kind) (TdfMap, error) {
	return DecodeMap(NewReader(f.Value), expectKey, expectValue)
}

func DecodeUnionValue(f Field) (Union, error) {
	return DecodeUnion(NewReader(f.Value))
}

func DecodeVarIntListValue(f Field) (VarIntList, error) {
	return DecodeVarIntList(NewReader(f.Value))
}

func DecodePairValue(f Field) (Pair, error) {
	return DecodePair(NewReader(f.Value))
}

func DecodeTripleValue(f Field) (Triple, error) {
	return DecodeTriple(NewReader(f.Value))
}
