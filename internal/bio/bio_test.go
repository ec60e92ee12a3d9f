package bio

import "testing"

func TestWriterReaderRoundtrip(t *testing.T) {
	w := NewWriter()
	w.Push(0b101, 3)
	w.Push(0xFF, 8)
	w.Push(0, 1)
	w.PadToByte()

	r := NewReader(w.Bytes())
	if got := r.Read(3); got != 0b101 {
		t.Errorf("Read(3) = %b, want %b", got, 0b101)
	}
	if got := r.Read(8); got != 0xFF {
		t.Errorf("Read(8) = %x, want %x", got, 0xFF)
	}
	if got := r.Read(1); got != 0 {
		t.Errorf("Read(1) = %d, want 0", got)
	}
}

func TestWriterLenAndPad(t *testing.T) {
	w := NewWriter()
	w.Push(1, 1)
	if w.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", w.Len())
	}
	w.PadToByte()
	if w.Len() != 8 {
		t.Fatalf("Len() after pad = %d, want 8", w.Len())
	}
	if len(w.Bytes()) != 1 {
		t.Fatalf("Bytes() len = %d, want 1", len(w.Bytes()))
	}
}

func TestReaderPastEndReturnsZero(t *testing.T) {
	r := NewReader([]byte{0xFF})
	r.Read(8)
	if got := r.Read(4); got != 0 {
		t.Errorf("Read past end = %d, want 0", got)
	}
}

func TestBitArrayPutGet(t *testing.T) {
	a := NewBitArray(10)
	a.Put(0, true)
	a.Put(9, true)
	for i := 0; i < 10; i++ {
		want := i == 0 || i == 9
		if got := a.Get(i); got != want {
			t.Errorf("Get(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestBitArrayBytesMatchWriter(t *testing.T) {
	a := NewBitArray(8)
	bits := []bool{true, false, true, false, true, false, true, true}
	for i, b := range bits {
		a.Put(i, b)
	}
	got := a.Bytes()[0]
	want := byte(0b10101011)
	if got != want {
		t.Errorf("Bytes()[0] = %08b, want %08b", got, want)
	}
}
