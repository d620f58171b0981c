package blaze

import "testing"

func TestHeaderRoundTripSmall(t *testing.T) {
	h := Header{Component: 0x0019, Command: 0x0001, Error: 0, Type: TypeRequest, ID: 7, Length: 10}
	buf := h.encode(nil)
	if len(buf) != headerLen {
		t.Fatalf("encode() wrote %d bytes, want %d", len(buf), headerLen)
	}
	got, n, err := decodeHeader(buf)
	if err != nil {
		t.Fatalf("decodeHeader failed: %v", err)
	}
	if n != headerLen {
		t.Fatalf("decodeHeader consumed %d bytes, want %d", n, headerLen)
	}
	if got != h {
		t.Fatalf("decodeHeader() = %+v, want %+v", got, h)
	}
}

func TestHeaderExtendedLength(t *testing.T) {
	h := Header{Component: 1, Command: 1, Type: TypeNotify, Length: 70000}
	buf := h.encode(nil)
	if len(buf) != headerLen+extLen {
		t.Fatalf("encode() wrote %d bytes for an extended-length header, want %d", len(buf), headerLen+extLen)
	}
	got, n, err := decodeHeader(buf)
	if err != nil {
		t.Fatalf("decodeHeader failed: %v", err)
	}
	if n != headerLen+extLen {
		t.Fatalf("decodeHeader consumed %d bytes, want %d", n, headerLen+extLen)
	}
	if got.Length != 70000 {
		t.Fatalf("Length = %d, want 70000", got.Length)
	}
}

func TestHeaderShort(t *testing.T) {
	if _, _, err := decodeHeader(make([]byte, headerLen-1)); err != ErrShortHeader {
		t.Fatalf("decodeHeader(short buffer) = %v, want ErrShortHeader", err)
	}
}

func TestPacketTypeString(t *testing.T) {
	cases := map[PacketType]string{
		TypeRequest:  "Request",
		TypeResponse: "Response",
		TypeNotify:   "Notify",
		TypeError:    "Error",
	}
	for pt, want := range cases {
		if got := pt.String(); got != want {
			t.Errorf("PacketType(0x%02X).String() = %q, want %q", uint8(pt), got, want)
		}
	}
}
