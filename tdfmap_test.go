package blaze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func varIntBytes(v uint64) []byte {
	w := NewWriter(0)
	w.WriteVarUint(v)
	return w.Bytes()
}

func stringBytes(s string) []byte {
	w := NewWriter(0)
	w.WriteString(s)
	return w.Bytes()
}

func TestMapRoundTrip(t *testing.T) {
	m := TdfMap{
		KeyKind:   KindVarInt,
		ValueKind: KindString,
		Entries: []MapEntry{
			{Key: varIntBytes(2), Value: stringBytes("b")},
			{Key: varIntBytes(1), Value: stringBytes("a")},
		},
	}
	w := NewWriter(0)
	EncodeMap(w, m)

	got, err := DecodeMap(NewReader(w.Bytes()), KindVarInt, KindString)
	require.NoError(t, err)
	require.Len(t, got.Entries, 2)
	assert.False(t, got.SortedByKey(), "entries were written key-2-then-key-1")

	got.SortByKey()
	assert.True(t, got.SortedByKey())

	k0, _, _ := readVarInt(got.Entries[0].Key, 0)
	assert.Equal(t, uint64(1), k0)
}

func TestMapWrongKeyKind(t *testing.T) {
	m := TdfMap{KeyKind: KindVarInt, ValueKind: KindString}
	w := NewWriter(0)
	EncodeMap(w, m)
	_, err := DecodeMap(NewReader(w.Bytes()), KindString, KindString)
	require.ErrorIs(t, err, ErrWrongKind)
}

func TestMapWrongValueKind(t *testing.T) {
	m := TdfMap{KeyKind: KindVarInt, ValueKind: KindString}
	w := NewWriter(0)
	EncodeMap(w, m)
	_, err := DecodeMap(NewReader(w.Bytes()), KindVarInt, KindVarInt)
	require.ErrorIs(t, err, ErrWrongKind)
}

func TestMapDuplicateKeysPreserved(t *testing.T) {
	m := TdfMap{
		KeyKind:   KindVarInt,
		ValueKind: KindVarInt,
		Entries: []MapEntry{
			{Key: varIntBytes(1), Value: varIntBytes(100)},
			{Key: varIntBytes(1), Value: varIntBytes(200)},
		},
	}
	w := NewWriter(0)
	EncodeMap(w, m)
	got, err := DecodeMap(NewReader(w.Bytes()), KindVarInt, KindVarInt)
	require.NoError(t, err)
	// wire format does not enforce key uniqueness - both entries survive.
	require.Len(t, got.Entries, 2)
}
