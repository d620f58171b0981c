package blaze

import "testing"

func TestEncodeTag_worked(t *testing.T) {
	got := EncodeTag("TEST", KindString)
	want := [4]byte{0xD2, 0x5C, 0xF4, 0x01}
	if got != want {
		t.Fatalf("EncodeTag(TEST, String) = %#v, want %#v", got, want)
	}
}

func TestDecodeTag_worked(t *testing.T) {
	label, kind := DecodeTag([4]byte{0xD2, 0x5C, 0xF4, 0x01})
	if label != "TEST" {
		t.Errorf("label = %q, want %q", label, "TEST")
	}
	if kind != KindString {
		t.Errorf("kind = %s, want %s", kind, KindString)
	}
}

func TestTagRoundTrip(t *testing.T) {
	labels := []string{"TEST", "ID", "A", "", "NAME", "XYZW"}
	for idx, label := range labels {
		for k := Kind(0); k <= KindFloat; k++ {
			tag := EncodeTag(label, k)
			gotLabel, gotKind := DecodeTag(tag)
			if gotKind != k {
				t.Errorf("case %d/%d: kind round trip = %s, want %s", idx, k, gotKind, k)
			}
			wantLabel := label
			for len(wantLabel) < 4 {
				wantLabel += "\x00"
			}
			n := len(wantLabel)
			for n > 0 && wantLabel[n-1] == 0 {
				n--
			}
			wantLabel = wantLabel[:n]
			if gotLabel != wantLabel {
				t.Errorf("case %d/%d: label round trip = %q, want %q", idx, k, gotLabel, wantLabel)
			}
		}
	}
}

func TestEncodeLabel_shortPad(t *testing.T) {
	got := EncodeLabel("A")
	label := DecodeLabel(got)
	if label != "A" {
		t.Errorf("DecodeLabel(EncodeLabel(%q)) = %q, want %q", "A", label, "A")
	}
}
