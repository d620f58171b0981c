package blaze

import "testing"

func TestSortByKey(t *testing.T) {
	m := TdfMap{
		KeyKind:   KindVarInt,
		ValueKind: KindVarInt,
		Entries: []MapEntry{
			{Key: varIntBytes(3), Value: varIntBytes(0)},
			{Key: varIntBytes(1), Value: varIntBytes(0)},
			{Key: varIntBytes(2), Value: varIntBytes(0)},
		},
	}
	if m.SortedByKey() {
		t.Fatal("fixture should start out-of-order")
	}
	m.SortByKey()
	if !m.SortedByKey() {
		t.Fatal("SortByKey should establish ascending key order")
	}
	want := []uint64{1, 2, 3}
	for i, e := range m.Entries {
		v, _, err := readVarInt(e.Key, 0)
		if err != nil {
			t.Fatalf("readVarInt: %v", err)
		}
		if v != want[i] {
			t.Errorf("entry %d key = %d, want %d", i, v, want[i])
		}
	}
}

func TestSortedByKeyEmpty(t *testing.T) {
	var m TdfMap
	if !m.SortedByKey() {
		t.Fatal("an empty map is trivially sorted")
	}
}
