package blaze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionUnsetRoundTrip(t *testing.T) {
	w := NewWriter(0)
	EncodeUnion(w, UnsetUnion())
	assert.Equal(t, []byte{unionUnsetKey}, w.Bytes())

	got, err := DecodeUnion(NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.False(t, got.Set)
}

func TestUnionSetRoundTrip(t *testing.T) {
	u := Union{Set: true, Key: 0x02, Field: VarIntField("VALU", 77)}
	w := NewWriter(0)
	EncodeUnion(w, u)

	got, err := DecodeUnion(NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.True(t, got.Set)
	assert.Equal(t, byte(0x02), got.Key)
	assert.Equal(t, "VALU", got.Field.Tag)

	v, err := DecodeVarIntValue(got.Field)
	require.NoError(t, err)
	assert.Equal(t, uint64(77), v)
}

func TestUnionKeyIsOpaque(t *testing.T) {
	// the union's discriminant key is independent of the nested
	// field's own tag - both must survive a round trip untouched.
	u := Union{Set: true, Key: 0x41, Field: StringField("ANY", "x")}
	w := NewWriter(0)
	EncodeUnion(w, u)

	got, err := DecodeUnion(NewReader(w.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, byte(0x41), got.Key)
	assert.Equal(t, "ANY", got.Field.Tag)
}

func TestSkipUnionBothVariants(t *testing.T) {
	buf := buildFields(UnionFieldValue("U1", UnsetUnion()), VarIntField("TAIL", 5))
	r := NewReader(buf)
	require.NoError(t, decodeUntil(r, "TAIL", KindVarInt))
	v, err := r.ReadVarUint()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), v)
}
