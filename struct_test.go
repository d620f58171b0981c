package blaze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFieldsOutOfOrderWire(t *testing.T) {
	// wire order deliberately differs from declared order - decodeUntil
	// must still resolve every declared field.
	buf := buildFields(
		StringField("NAME", "slot"),
		VarIntField("ID", 42),
	)
	specs := []FieldSpec{{Tag: "ID", Kind: KindVarInt}, {Tag: "NAME", Kind: KindString}}

	fields, err := DecodeFields(NewReader(buf), specs)
	require.NoError(t, err)
	require.Len(t, fields, 2)

	v, err := DecodeVarIntValue(fields[0])
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v)

	s, err := DecodeStringValue(fields[1])
	require.NoError(t, err)
	assert.Equal(t, "slot", s)
}

func TestEncodeGroupFieldsRoundTrip(t *testing.T) {
	fields := []Field{VarIntField("ID", 7), StringField("NAME", "x")}
	w := NewWriter(0)
	EncodeGroupFields(w, true, fields)

	specs := []FieldSpec{{Tag: "NAME", Kind: KindString}, {Tag: "ID", Kind: KindVarInt}}
	twoPrefix, got, err := DecodeGroupFields(NewReader(w.Bytes()), specs)
	require.NoError(t, err)
	assert.True(t, twoPrefix)
	require.Len(t, got, 2)
	assert.Equal(t, "NAME", got[0].Tag)
	assert.Equal(t, "ID", got[1].Tag)
}

func TestDecodeGroupFieldsDiscardsUnnamed(t *testing.T) {
	fields := []Field{
		VarIntField("ID", 1),
		VarIntField("EXTRA", 2),
	}
	w := NewWriter(0)
	EncodeGroupFields(w, false, fields)

	specs := []FieldSpec{{Tag: "ID", Kind: KindVarInt}}
	_, got, err := DecodeGroupFields(NewReader(w.Bytes()), specs)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ID", got[0].Tag)
}

func TestDecodeGroupFieldsMissingTag(t *testing.T) {
	w := NewWriter(0)
	EncodeGroupFields(w, false, []Field{VarIntField("ID", 1)})

	specs := []FieldSpec{{Tag: "MISSING", Kind: KindVarInt}}
	_, _, err := DecodeGroupFields(NewReader(w.Bytes()), specs)
	require.ErrorIs(t, err, ErrMissingTag)
}

func TestFieldValueConstructorsRoundTrip(t *testing.T) {
	f := ListFieldValue("L", List{Elem: KindVarInt, Elements: [][]byte{varIntBytes(1)}})
	l, err := DecodeListValue(f, KindVarInt)
	require.NoError(t, err)
	require.Len(t, l.Elements, 1)

	f2 := PairFieldValue("P", Pair{1, 2})
	p, err := DecodePairValue(f2)
	require.NoError(t, err)
	assert.Equal(t, Pair{1, 2}, p)
}
