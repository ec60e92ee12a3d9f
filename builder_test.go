package qrcode

import (
	"errors"
	"testing"
)

func TestBuildMonoProducesMatchingMetadata(t *testing.T) {
	m, err := NewBuilder([]byte("HELLO")).ECLevel(ECLevelQ).Palette(Mono).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	meta := m.Metadata()
	if meta.ECLevel != ECLevelQ {
		t.Errorf("ECLevel = %v, want %v", meta.ECLevel, ECLevelQ)
	}
	if !meta.Palette.IsMono() {
		t.Errorf("Palette = %v, want Mono", meta.Palette)
	}
	if meta.Version < 1 || meta.Version > 40 {
		t.Errorf("Version = %d, out of range", meta.Version)
	}
	if meta.Mask < 0 || meta.Mask > 7 {
		t.Errorf("Mask = %d, out of range", meta.Mask)
	}
}

func TestBuildFixedVersionAndMask(t *testing.T) {
	m, err := NewBuilder([]byte("HI")).Version(2).Mask(3).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	meta := m.Metadata()
	if meta.Version != 2 {
		t.Errorf("Version = %d, want 2", meta.Version)
	}
	if meta.Mask != 3 {
		t.Errorf("Mask = %d, want 3", meta.Mask)
	}
}

func TestBuildEmptyDataError(t *testing.T) {
	_, err := NewBuilder(nil).Build()
	if !errors.Is(err, ErrEmptyData) {
		t.Errorf("Build(nil) err = %v, want ErrEmptyData", err)
	}
}

func TestBuildInvalidMaskError(t *testing.T) {
	_, err := NewBuilder([]byte("HI")).Mask(8).Build()
	if !errors.Is(err, ErrInvalidMaskingPattern) {
		t.Errorf("Build with mask 8 err = %v, want ErrInvalidMaskingPattern", err)
	}
}

func TestBuildDataTooLongAtFixedVersion(t *testing.T) {
	big := make([]byte, 4000)
	for i := range big {
		big[i] = 'A'
	}
	_, err := NewBuilder(big).Version(1).ECLevel(ECLevelH).Build()
	if !errors.Is(err, ErrDataTooLong) {
		t.Errorf("Build oversized data at v1 err = %v, want ErrDataTooLong", err)
	}
}

// TestBuildOverflowsAtRequestedVersionButFitsNextUp mirrors the seeded
// scenario of a symbol whose data overflows a caller-fixed version but
// fits as soon as the version is bumped by one: a fixed version is
// sized for the minimal segmentation of the data, not a search space,
// so overflowing it is reported the same way as overflowing version 40.
func TestBuildOverflowsAtRequestedVersionButFitsNextUp(t *testing.T) {
	data := []byte("abcdefghijklmnopqr") // 18 ASCII bytes, byte mode: 4+8+144 bits

	if _, err := NewBuilder(data).Version(1).ECLevel(ECLevelL).Palette(Mono).Build(); !errors.Is(err, ErrDataTooLong) {
		t.Fatalf("Build 18 bytes at v1-L err = %v, want ErrDataTooLong", err)
	}

	m, err := NewBuilder(data).Version(2).ECLevel(ECLevelL).Palette(Mono).Build()
	if err != nil {
		t.Fatalf("Build 18 bytes at v2-L: %v", err)
	}
	if m.Metadata().Version != 2 {
		t.Errorf("Version = %d, want 2", m.Metadata().Version)
	}
}

func TestBuildDataTooLongAcrossAllVersions(t *testing.T) {
	huge := make([]byte, 1<<20)
	for i := range huge {
		huge[i] = 'A'
	}
	_, err := NewBuilder(huge).Build()
	if !errors.Is(err, ErrDataTooLong) {
		t.Errorf("Build huge data err = %v, want ErrDataTooLong", err)
	}
}

func TestInterleaveRoundRobinsShorterBlocksFirst(t *testing.T) {
	blocks := [][]byte{{1, 2}, {3, 4, 5}}
	got := interleave(blocks)
	want := []byte{1, 3, 2, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("interleave() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("interleave()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestBuildPolyTriplesCapacity(t *testing.T) {
	// At version 1 EC level M, mono capacity is too small for this
	// string, but a poly symbol's tripled capacity should fit it.
	data := []byte("THIS MESSAGE NEEDS MORE THAN ONE CHANNEL OF CAPACITY")
	if _, err := NewBuilder(data).Version(1).ECLevel(ECLevelM).Palette(Mono).Build(); err == nil {
		t.Fatalf("expected mono v1-M to overflow on this input, got no error")
	}
	m, err := NewBuilder(data).Version(1).ECLevel(ECLevelM).Palette(Poly(8)).Build()
	if err != nil {
		t.Fatalf("Build with Poly palette: %v", err)
	}
	if m.Metadata().Palette.IsMono() {
		t.Errorf("Metadata().Palette = Mono, want Poly")
	}
}
