package qrcode

import (
	"image"
	"testing"

	"github.com/qrforge/qrcode/internal/binarize"
	"github.com/qrforge/qrcode/internal/geom"
	"github.com/qrforge/qrcode/internal/qrtables"
)

// identitySymbol renders m at scale pixels-per-module with a 4-module
// quiet zone, binarizes the result, and returns a symbol whose
// homography maps module space directly onto that raster — bypassing
// finder detection and alignment fitting so format/version/payload
// sampling can be tested in isolation from the locate step.
func identitySymbol(t *testing.T, m *Matrix, scale int) (*symbol, image.Image) {
	t.Helper()
	const quiet = 4
	img := m.Render(scale)
	bin := binarize.Prepare(img)
	h := &geom.Homography{P: [8]float64{
		float64(scale), 0, float64(quiet * scale),
		0, float64(scale), float64(quiet * scale),
		0, 0,
	}}
	return &symbol{img: bin, h: h, width: m.Width()}, img
}

func TestSymbolReadFormatInfoRoundTrip(t *testing.T) {
	m, err := EncodeWithVersion([]byte("HI"), ECLevelM, Mono, 1)
	if err != nil {
		t.Fatalf("EncodeWithVersion: %v", err)
	}
	sym, _ := identitySymbol(t, m, 10)

	ecLevel, mask, err := sym.readFormatInfo()
	if err != nil {
		t.Fatalf("readFormatInfo: %v", err)
	}
	want := m.Metadata()
	if ecLevel != want.ECLevel {
		t.Errorf("ecLevel = %v, want %v", ecLevel, want.ECLevel)
	}
	if mask != want.Mask {
		t.Errorf("mask = %d, want %d", mask, want.Mask)
	}
}

func TestSymbolReadPaletteInfoMono(t *testing.T) {
	m, err := EncodeWithVersion([]byte("HI"), ECLevelM, Mono, 1)
	if err != nil {
		t.Fatalf("EncodeWithVersion: %v", err)
	}
	sym, _ := identitySymbol(t, m, 10)

	palette, err := sym.readPaletteInfo()
	if err != nil {
		t.Fatalf("readPaletteInfo: %v", err)
	}
	if !palette.IsMono() {
		t.Errorf("readPaletteInfo() = %v, want Mono", palette)
	}
}

func TestSymbolExtractAndDecodeRoundTrip(t *testing.T) {
	want := []byte("HELLO WORLD")
	m, err := EncodeWithVersion(want, ECLevelM, Mono, 2)
	if err != nil {
		t.Fatalf("EncodeWithVersion: %v", err)
	}
	sym, _ := identitySymbol(t, m, 10)

	meta := m.Metadata()
	got, err := sym.extractAndDecode(meta.Version, int(meta.ECLevel), meta.Mask, meta.Palette)
	if err != nil {
		t.Fatalf("extractAndDecode: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("extractAndDecode() = %q, want %q", got, want)
	}
}

func TestDeinterleaveChannelRoundTripsInterleave(t *testing.T) {
	blocks := [][]byte{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9, 10},
	}
	flat := interleave(blocks)

	layout := qrtables.BlockLayout{
		ECPerBlock: 0,
		Group1:     qrtables.BlockGroup{Count: 2, DataCodewords: 3},
		Group2:     qrtables.BlockGroup{Count: 1, DataCodewords: 4},
	}
	dataBlocks, eccBlocks := deinterleaveChannel(flat, layout)
	if len(dataBlocks) != 3 {
		t.Fatalf("len(dataBlocks) = %d, want 3", len(dataBlocks))
	}
	for i, want := range blocks {
		if string(dataBlocks[i]) != string(want) {
			t.Errorf("dataBlocks[%d] = %v, want %v", i, dataBlocks[i], want)
		}
	}
	if len(eccBlocks) != 3 {
		t.Fatalf("len(eccBlocks) = %d, want 3", len(eccBlocks))
	}
}
