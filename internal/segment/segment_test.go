package segment

import (
	"bytes"
	"testing"
)

func TestPlanAllNumeric(t *testing.T) {
	segs, err := Plan([]byte("12345"), 1)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if len(segs) != 1 || segs[0].Mode != Numeric {
		t.Fatalf("Plan() = %+v, want single Numeric segment", segs)
	}
}

func TestPlanAllAlphanumeric(t *testing.T) {
	segs, err := Plan([]byte("HELLO WORLD"), 1)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if len(segs) != 1 || segs[0].Mode != Alphanumeric {
		t.Fatalf("Plan() = %+v, want single Alphanumeric segment", segs)
	}
}

func TestPlanMixedModesPrefersFewerSegments(t *testing.T) {
	segs, err := Plan([]byte("Hello, world!"), 1)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	for _, s := range segs {
		if s.Mode != Byte {
			t.Errorf("segment mode = %v, want Byte for lowercase/punctuation input", s.Mode)
		}
	}
}

func TestPlanEmptyDataFails(t *testing.T) {
	if _, err := Plan(nil, 1); err == nil {
		t.Errorf("Plan(nil) error = nil, want error")
	}
}

func TestEncodeDecodeRoundtripNumeric(t *testing.T) {
	segs, err := Plan([]byte("0123456789"), 1)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	encoded, _, err := Encode(segs, 1, 2000)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, err := Decode(encoded, 1)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(decoded, []byte("0123456789")) {
		t.Errorf("Decode() = %q, want %q", decoded, "0123456789")
	}
}

func TestEncodeDecodeRoundtripAlphanumeric(t *testing.T) {
	segs, err := Plan([]byte("HELLO WORLD 123"), 1)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	encoded, _, err := Encode(segs, 1, 2000)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, err := Decode(encoded, 1)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(decoded, []byte("HELLO WORLD 123")) {
		t.Errorf("Decode() = %q, want %q", decoded, "HELLO WORLD 123")
	}
}

func TestEncodeDecodeRoundtripByte(t *testing.T) {
	segs, err := Plan([]byte("Hello, world!"), 1)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	encoded, _, err := Encode(segs, 1, 2000)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, err := Decode(encoded, 1)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(decoded, []byte("Hello, world!")) {
		t.Errorf("Decode() = %q, want %q", decoded, "Hello, world!")
	}
}

func TestEncodePadsWithAlternatingBytes(t *testing.T) {
	segs, err := Plan([]byte("A"), 1)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	encoded, _, err := Encode(segs, 1, 152) // version 1 L data capacity
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if len(encoded) != 152/8 {
		t.Fatalf("Encode() len = %d, want %d", len(encoded), 152/8)
	}
	last := encoded[len(encoded)-2:]
	if last[0] != 0xEC || last[1] != 0x11 {
		t.Errorf("pad tail = %x, want ec 11", last)
	}
}

func TestEncodeExceedsCapacityFails(t *testing.T) {
	segs, err := Plan(bytes.Repeat([]byte("1"), 50), 1)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if _, _, err := Encode(segs, 1, 8); err == nil {
		t.Errorf("Encode() error = nil, want DataTooLong")
	}
}

func TestAlphanumericOddCountUsesSixBits(t *testing.T) {
	segs := []Segment{{Mode: Alphanumeric, Data: []byte("A")}}
	encoded, encodedLen, err := Encode(segs, 1, 200)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if encodedLen != 4+9+6 {
		t.Fatalf("encodedLen = %d, want %d", encodedLen, 4+9+6)
	}
	decoded, err := Decode(encoded, 1)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(decoded, []byte("A")) {
		t.Errorf("Decode() = %q, want %q", decoded, "A")
	}
}
