package ecc

import (
	"bytes"
	"testing"
)

func TestRemainderSimple(t *testing.T) {
	block := []byte(" [\x0bx\xd1r\xdcMC@\xec\x11\xec\x11\xec\x11")
	want := []byte("\xc4\x23\x27\x77\xeb\xd7\xe7\xe2\x5d\x17")
	got := remainder(block, 10)
	if !bytes.Equal(got, want) {
		t.Errorf("remainder() = %x, want %x", got, want)
	}
}

func TestRemainderLongerECC(t *testing.T) {
	block := []byte(" [\x0bx\xd1r\xdcMC@\xec\x11\xec")
	want := []byte("\xa8H\x16R\xd96\x9c\x00.\x0f\xb4z\x10")
	got := remainder(block, 13)
	if !bytes.Equal(got, want) {
		t.Errorf("remainder() = %x, want %x", got, want)
	}
}

func TestRemainderThirdVector(t *testing.T) {
	block := []byte("CUF\x86W&U\xc2w2\x06\x12\x06g&")
	want := []byte("\xd5\xc7\x0b-s\xf7\xf1\xdf\xe5\xf8\x9au\x9aoV\xa1o'")
	got := remainder(block, 18)
	if !bytes.Equal(got, want) {
		t.Errorf("remainder() = %x, want %x", got, want)
	}
}

func TestEncodeVersion1M(t *testing.T) {
	data := []byte(" [\x0bx\xd1r\xdcMC@\xec\x11\xec\x11\xec\x11")
	dataBlocks, eccBlocks, err := Encode(data, 1, 1)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if len(dataBlocks) != 1 || len(eccBlocks) != 1 {
		t.Fatalf("Encode() block counts = %d/%d, want 1/1", len(dataBlocks), len(eccBlocks))
	}
	want := []byte("\xc4\x23\x27\x77\xeb\xd7\xe7\xe2\x5d\x17")
	if !bytes.Equal(eccBlocks[0], want) {
		t.Errorf("Encode() ecc = %x, want %x", eccBlocks[0], want)
	}
}

func TestEncodeVersion5Q(t *testing.T) {
	data := []byte("CUF\x86W&U\xc2w2\x06\x12\x06g&\xf6\xf6B\x07v\x86\xf2\x07&V\x16\xc6\xc7\x92\x06" +
		"\xb6\xe6\xf7w2\x07v\x86W&R\x06\x86\x972\x07F\xf7vV\xc2\x06\x972\x10\xec\x11\xec" +
		"\x11\xec\x11\xec")
	_, eccBlocks, err := Encode(data, 5, 2)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := [][]byte{
		[]byte("\xd5\xc7\x0b\x2d\x73\xf7\xf1\xdf\xe5\xf8\x9a\x75\x9a\x6f\x56\xa1\x6f\x27"),
		[]byte("\x57\xcc\x60\x3c\xca\xb6\x7c\x9d\xc8\x86\x1b\x81\xd1\x11\xa3\xa3\x78\x85"),
		[]byte("\x94\x74\xb1\xd4\x4c\x85\x4b\xf2\xee\x4c\xc3\xe6\xbd\x0a\x6c\xf0\xc0\x8d"),
		[]byte("\xeb\x9f\x05\xad\x18\x93\x3b\x21\x6a\x28\xff\xac\x52\x02\x83\x20\xb2\xec"),
	}
	if len(eccBlocks) != len(want) {
		t.Fatalf("Encode() block count = %d, want %d", len(eccBlocks), len(want))
	}
	for i := range want {
		if !bytes.Equal(eccBlocks[i], want[i]) {
			t.Errorf("Encode() ecc[%d] = %x, want %x", i, eccBlocks[i], want[i])
		}
	}
}

func TestRectifyCleanBlockUnchanged(t *testing.T) {
	data := []byte(" [\x0bx\xd1r\xdcMC@\xec\x11\xec\x11\xec\x11")
	_, eccBlocks, err := Encode(data, 1, 1)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Rectify(data, eccBlocks[0], 10)
	if err != nil {
		t.Fatalf("Rectify() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Rectify() = %x, want %x", got, data)
	}
}

func TestRectifyCorrectsSingleByteError(t *testing.T) {
	data := []byte(" [\x0bx\xd1r\xdcMC@\xec\x11\xec\x11\xec\x11")
	_, eccBlocks, err := Encode(data, 1, 1)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	corrupted := append([]byte(nil), data...)
	corrupted[3] ^= 0x5A

	got, err := Rectify(corrupted, eccBlocks[0], 10)
	if err != nil {
		t.Fatalf("Rectify() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Rectify() = %x, want %x", got, data)
	}
}

func TestRectifyCorrectsMultipleErrors(t *testing.T) {
	// First block of a version 5-Q symbol: 15 data bytes, 18 ECC bytes.
	full := []byte("CUF\x86W&U\xc2w2\x06\x12\x06g&\xf6\xf6B\x07v\x86\xf2\x07&V\x16\xc6\xc7\x92\x06" +
		"\xb6\xe6\xf7w2\x07v\x86W&R\x06\x86\x972\x07F\xf7vV\xc2\x06\x972\x10\xec\x11\xec" +
		"\x11\xec\x11\xec")
	dataBlocks, eccBlocks, err := Encode(full, 5, 2)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	data := dataBlocks[0]
	corrupted := append([]byte(nil), data...)
	corrupted[0] ^= 0xFF
	corrupted[5] ^= 0x11
	corrupted[10] ^= 0x03

	got, err := Rectify(corrupted, eccBlocks[0], 18)
	if err != nil {
		t.Fatalf("Rectify() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Rectify() = %x, want %x", got, data)
	}
}

func TestRectifyUncorrectableReturnsError(t *testing.T) {
	data := []byte(" [\x0bx\xd1r\xdcMC@\xec\x11\xec\x11\xec\x11")
	_, eccBlocks, err := Encode(data, 1, 1)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	corrupted := append([]byte(nil), data...)
	for i := range corrupted {
		corrupted[i] ^= 0xFF
	}

	if _, err := Rectify(corrupted, eccBlocks[0], 10); err == nil {
		t.Errorf("Rectify() error = nil, want ErrUncorrectable")
	}
}

func TestBlockifyRejectsWrongLength(t *testing.T) {
	if _, err := Blockify(make([]byte, 5), 1, 1); err == nil {
		t.Errorf("Blockify() error = nil, want error for wrong length")
	}
}

func TestRectifyInfoExactMatch(t *testing.T) {
	valid := []uint32{0x5412, 0x7f3, 0x1689}
	got, err := RectifyInfo(0x5412, valid, 3)
	if err != nil {
		t.Fatalf("RectifyInfo() error = %v", err)
	}
	if got != 0x5412 {
		t.Errorf("RectifyInfo() = %x, want %x", got, 0x5412)
	}
}

func TestRectifyInfoWithinCapacity(t *testing.T) {
	valid := []uint32{0x5412, 0x7f3, 0x1689}
	got, err := RectifyInfo(0x5413, valid, 3)
	if err != nil {
		t.Fatalf("RectifyInfo() error = %v", err)
	}
	if got != 0x5412 {
		t.Errorf("RectifyInfo() = %x, want %x", got, 0x5412)
	}
}

func TestRectifyInfoBeyondCapacityFails(t *testing.T) {
	valid := []uint32{0x5412, 0x7f3, 0x1689}
	if _, err := RectifyInfo(0xFFFF, valid, 3); err == nil {
		t.Errorf("RectifyInfo() error = nil, want failure")
	}
}
