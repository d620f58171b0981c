package blaze

import (
	"errors"
	"testing"
)

func TestReaderScalarRoundTrip(t *testing.T) {
	w := NewWriter(0)
	w.WriteVarUint(12345)
	w.WriteString("hello")
	w.WriteBlob([]byte{1, 2, 3})
	w.WriteF32(3.5)
	w.WriteBool(true)
	w.WriteBool(false)

	r := NewReader(w.Bytes())

	if v, err := r.ReadVarUint(); err != nil || v != 12345 {
		t.Fatalf("ReadVarUint() = %d, %v, want 12345, nil", v, err)
	}
	if s, err := r.ReadString(); err != nil || s != "hello" {
		t.Fatalf("ReadString() = %q, %v, want %q, nil", s, err, "hello")
	}
	if b, err := r.ReadBlob(); err != nil || string(b) != "\x01\x02\x03" {
		t.Fatalf("ReadBlob() = %#v, %v", b, err)
	}
	if f, err := r.ReadF32(); err != nil || f != 3.5 {
		t.Fatalf("ReadF32() = %v, %v, want 3.5, nil", f, err)
	}
	if b, err := r.ReadBool(); err != nil || b != true {
		t.Fatalf("ReadBool() = %v, %v, want true, nil", b, err)
	}
	if b, err := r.ReadBool(); err != nil || b != false {
		t.Fatalf("ReadBool() = %v, %v, want false, nil", b, err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d after consuming every field, want 0", r.Len())
	}
}

func TestReaderMarkReset(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4})
	mark := r.Mark()
	if _, err := r.ReadByte(); err != nil {
		t.Fatal(err)
	}
	r.Reset(mark)
	b, err := r.ReadByte()
	if err != nil || b != 1 {
		t.Fatalf("ReadByte() after Reset = %d, %v, want 1, nil", b, err)
	}
}

func TestReaderBoundsStrict(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	if _, err := r.ReadSlice(3); err != nil {
		t.Fatalf("ReadSlice(3) on a 3-byte buffer should succeed under strict bounds: %v", err)
	}
	r2 := NewReader([]byte{1, 2, 3})
	if _, err := r2.ReadSlice(4); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("ReadSlice(4) on a 3-byte buffer = %v, want ErrUnexpectedEOF", err)
	}
}

func TestReaderBoundsLax(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	r.SetStrict(false)
	// the reference's off-by-one rejects a read of exactly the
	// remaining length.
	if _, err := r.ReadSlice(3); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("ReadSlice(3) under lax bounds should reproduce the off-by-one and fail, got %v", err)
	}
}

func TestReadKindRejectsUnknown(t *testing.T) {
	r := NewReader([]byte{0x0B})
	if _, err := r.ReadKind(); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("ReadKind(0x0B) = %v, want ErrUnknownKind", err)
	}
}

func TestReadStringEmpty(t *testing.T) {
	w := NewWriter(0)
	w.WriteString("")
	r := NewReader(w.Bytes())
	s, err := r.ReadString()
	if err != nil || s != "" {
		t.Fatalf("ReadString() = %q, %v, want empty string, nil", s, err)
	}
}
