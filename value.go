package blaze

import "errors"

/*
value.go implements the scalar kinds (VarInt, String, Blob, Float) and
the out-of-order tag lookup primitive decodeUntil (spec §4.4), the
backbone of every derived struct decoder. Skip, the total "consume
without materializing" operation every kind must support, lives here
as the dispatch table skipValue calls into group.go/list.go/tdfmap.go/
union.go/pair.go for the composite kinds.
*/

// decodeUntil implements the core out-of-order field lookup (spec
// §4.4): it scans forward from the reader's current position looking
// for a tag whose label matches tag. Fields that don't match are
// skipped in full. The value itself is NOT consumed by decodeUntil -
// on success the reader is positioned right after the matching tag,
// ready for the caller to decode the value with the kind-appropriate
// Reader method.
func decodeUntil(r *Reader, tag string, kind Kind) error {
	for {
		if r.Len() == 0 {
			return errMissingTag(tag)
		}
		label, k, err := r.ReadTag()
		if err != nil {
			return err
		}
		if label == tag {
			if k != kind {
				return errWrongKindAt(tag, kind, k)
			}
			return nil
		}
		if err := skipValue(r, k); err != nil {
			return err
		}
	}
}

// decodeUntilOptional is the speculative variant used for optional
// fields: it behaves like decodeUntil, but a "tag not found" outcome
// rewinds the reader to its pre-call position and reports ok=false
// instead of an error. A tag found under the wrong kind is still a
// hard error - callers asking for a specific kind at a specific label
// want to know about a shape mismatch, not silently skip it.
func decodeUntilOptional(r *Reader, tag string, kind Kind) (ok bool, err error) {
	mark := r.Mark()
	if err = decodeUntil(r, tag, kind); err != nil {
		if errors.Is(err, ErrMissingTag) {
			r.Reset(mark)
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// skipValue consumes one value of the given kind without
// materializing it. This must be total over all eleven kinds - it is
// what makes out-of-order lookup possible (spec §4.4).
func skipValue(r *Reader, k Kind) error {
	switch k {
	case KindVarInt:
		_, err := r.ReadVarUint()
		return err
	case KindString:
		_, err := r.ReadString()
		return err
	case KindBlob:
		n, err := r.ReadUsize()
		if err != nil {
			return err
		}
		_, err = r.ReadSlice(n)
		return err
	case KindGroup:
		return skipGroup(r)
	case KindList:
		return skipList(r)
	case KindMap:
		return skipMap(r)
	case KindUnion:
		return skipUnion(r)
	case KindVarIntList:
		return skipVarIntList(r)
	case KindPair:
		if _, err := r.ReadVarUint(); err != nil {
			return err
		}
		_, err := r.ReadVarUint()
		return err
	case KindTriple:
		for i := 0; i < 3; i++ {
			if _, err := r.ReadVarUint(); err != nil {
				return err
			}
		}
		return nil
	case KindFloat:
		_, err := r.ReadF32()
		return err
	default:
		return errUnknownKind(byte(k))
	}
}
