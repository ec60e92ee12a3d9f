// Package qrcode implements a two-dimensional matrix barcode (QR code
// family) encoder and decoder: segmentation and mode selection,
// Reed-Solomon error correction, symbol layout and masking, and,
// symmetrically, image binarization, finder detection, and homography-
// based sampling for decode.
//
// Basic usage for encoding:
//
//	m, err := qrcode.Encode([]byte("Hello, world!"), qrcode.ECLevelM, qrcode.Mono)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img := m.Render(10)
//
// Basic usage for decoding:
//
//	meta, data, err := qrcode.Decode(img)
//	if err != nil {
//	    log.Fatal(err)
//	}
package qrcode

import "fmt"

// ECLevel is the error correction level, ordered L (most data capacity,
// least redundancy) to H (least capacity, most redundancy).
type ECLevel int

const (
	ECLevelL ECLevel = iota
	ECLevelM
	ECLevelQ
	ECLevelH
)

func (e ECLevel) String() string {
	switch e {
	case ECLevelL:
		return "L"
	case ECLevelM:
		return "M"
	case ECLevelQ:
		return "Q"
	case ECLevelH:
		return "H"
	default:
		return "Unknown"
	}
}

// Palette selects monochrome (two-color) or polychrome (three
// independent R/G/B channels) encoding. A polychrome symbol packs
// three times the payload of a monochrome one at the same version and
// EC level, at the cost of requiring a color-capable renderer/scanner.
type Palette struct {
	size int // 1 = Mono, 2..16 = Poly(size)
}

// Mono is the standard two-color palette.
var Mono = Palette{size: 1}

// Poly returns a polychrome palette using size distinct hues (2..16).
func Poly(size int) Palette {
	return Palette{size: size}
}

// IsMono reports whether the palette is monochrome.
func (p Palette) IsMono() bool { return p.size <= 1 }

// Channels returns the number of independent bit-channels the palette
// packs per module: 1 for mono, 3 for poly.
func (p Palette) Channels() int {
	if p.IsMono() {
		return 1
	}
	return 3
}

func (p Palette) String() string {
	if p.IsMono() {
		return "Mono"
	}
	return fmt.Sprintf("Poly(%d)", p.size)
}

// Metadata describes a successfully decoded symbol.
type Metadata struct {
	Version int
	ECLevel ECLevel
	Palette Palette
	Mask    int
}

func (m Metadata) String() string {
	return fmt.Sprintf("{Version: %d, ECLevel: %v, Palette: %v, Mask: %d}", m.Version, m.ECLevel, m.Palette, m.Mask)
}
