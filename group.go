package blaze

/*
group.go implements the Group kind (spec §3.1, §4.3): an ordered
sequence of tagged children terminated by a lone 0 byte, with an
optional leading 0x02 "2-prefix" marker whose semantics are unknown
upstream (spec §9) and are therefore preserved opaquely rather than
interpreted.
*/

// Group is an ordered sequence of tagged fields. TwoPrefix records
// whether the wire form carried the leading 0x02 marker, so a
// re-encode is byte-exact either way - some protocol revisions omit
// it entirely (see SPEC_FULL §D.1).
type Group struct {
	TwoPrefix bool
	Fields    []Field
}

// Field is one (tag, kind, raw-encoded-value) entry inside a Group,
// List, or as the contents of a Union's set variant. Value holds the
// already-encoded bytes for the value portion only (no tag prefix),
// so a Field can be round-tripped without knowing how to interpret
// its kind.
type Field struct {
	Tag   string
	Kind  Kind
	Value []byte
}

const (
	groupTwoPrefixByte = 0x02
	groupTerminator    = 0x00
)

// EncodeGroup appends g to w (spec §4.3: Group encode).
func EncodeGroup(w *Writer, g Group) {
	if g.TwoPrefix {
		w.WriteByte(groupTwoPrefixByte)
	}
	for _, f := range g.Fields {
		w.WriteTag(f.Tag, f.Kind)
		w.WriteBytes(f.Value)
	}
	w.WriteByte(groupTerminator)
}

// DecodeGroup reads a Group (spec §4.3: Group decode): a leading 0x02
// sets the 2-prefix flag, then it repeatedly peeks the next byte - 0x00
// terminates, otherwise it decodes a tagged child in full (so it can be
// replayed). A 0x02 after the first byte is not treated as a marker.
func DecodeGroup(r *Reader) (Group, error) {
	var g Group

	if r.Len() == 0 {
		return g, errShortRead(1, 0)
	}
	mark := r.Mark()
	if b, err := r.ReadByte(); err != nil {
		return g, err
	} else if b == groupTwoPrefixByte {
		g.TwoPrefix = true
	} else {
		r.Reset(mark)
	}

	for {
		if r.Len() == 0 {
			return g, errShortRead(1, 0)
		}
		mark := r.Mark()
		b, err := r.ReadByte()
		if err != nil {
			return g, err
		}
		if b == groupTerminator {
			return g, nil
		}
		r.Reset(mark)

		label, kind, err := r.ReadTag()
		if err != nil {
			return g, err
		}
		valStart := r.Mark()
		if err := skipValue(r, kind); err != nil {
			return g, err
		}
		raw := append([]byte(nil), r.sliceSince(valStart)...)
		g.Fields = append(g.Fields, Field{Tag: label, Kind: kind, Value: raw})
	}
}

// skipGroup consumes a Group without materializing its fields.
func skipGroup(r *Reader) error {
	if r.Len() == 0 {
		return errShortRead(1, 0)
	}
	mark := r.Mark()
	if b, err := r.ReadByte(); err != nil {
		return err
	} else if b != groupTwoPrefixByte {
		r.Reset(mark)
	}

	for {
		if r.Len() == 0 {
			return errShortRead(1, 0)
		}
		mark := r.Mark()
		b, err := r.ReadByte()
		if err != nil {
			return err
		}
		if b == groupTerminator {
			return nil
		}
		r.Reset(mark)

		_, kind, err := r.ReadTag()
		if err != nil {
			return err
		}
		if err := skipValue(r, kind); err != nil {
			return err
		}
	}
}
