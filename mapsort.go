package blaze

/*
mapsort.go implements the map-ordering utility (spec §9, P10): some
peer implementations verify a canonical key order on Map entries even
though the wire format itself does not enforce key uniqueness or
order (spec §4.3). SortByKey establishes that order on demand, rather
than maintaining a hash index, mirroring the reference's own
sort-on-demand approach.

Grounded on the teacher's go.mod dependency on golang.org/x/exp, kept
here for its slices.SortFunc - TDF map keys are raw encoded byte
strings (VarInt or String wire bytes), so a byte-lexicographic compare
is the natural canonical order and needs no reflection.
*/

import (
	"bytes"

	"golang.org/x/exp/slices"
)

// SortByKey reorders m.Entries in place by ascending byte-lexicographic
// comparison of each entry's raw encoded key, establishing P10: for all
// i < j after sorting, keys[i] <= keys[j].
func (m *TdfMap) SortByKey() {
	slices.SortFunc(m.Entries, func(a, b MapEntry) int {
		return bytes.Compare(a.Key, b.Key)
	})
}

// SortedByKey reports whether m.Entries is already in ascending
// byte-lexicographic key order, without mutating m.
func (m TdfMap) SortedByKey() bool {
	for i := 1; i < len(m.Entries); i++ {
		if bytes.Compare(m.Entries[i-1].Key, m.Entries[i].Key) > 0 {
			return false
		}
	}
	return true
}
