// Package matrix implements the QR symbol grid: a tagged module array
// with signed wrap-around indexing, function-pattern drawing, the
// zig-zag encoding-region iterator, and format/version/palette-info
// placement.
package matrix

import (
	"github.com/qrforge/qrcode/internal/qrtables"
)

// Color is a module's drawn color. Light and Dark cover monochrome
// symbols; Hue carries three packed channel bits for polychrome.
type Color struct {
	Hue int8 // -1 = Light, -2 = Dark, >=0 = Hue(rgb bits)
}

var (
	Light = Color{-1}
	Dark  = Color{-2}
)

// Hue constructs a polychrome color from three channel bits packed as
// r<<2 | g<<1 | b.
func Hue(bits int) Color { return Color{int8(bits)} }

// IsDark reports whether a mono color should be rendered dark. It is
// meaningless for Hue colors, callers of polychrome symbols read Bits
// instead.
func (c Color) IsDark() bool { return c == Dark }

// Not returns the flipped mono color (masking only ever flips Data
// cells, and only for mono or per-channel-bit colors).
func (c Color) Not() Color {
	switch c {
	case Light:
		return Dark
	case Dark:
		return Light
	default:
		return Color{int8(^c.Hue) & 0x7}
	}
}

// Kind tags a module's role. Masking applies only to Data cells;
// every other kind is immutable once the function patterns and info
// codewords are drawn.
type Kind int

const (
	Empty Kind = iota
	Func
	Version
	Format
	Palette
	Data
)

// Module is a (Kind, Color) pair.
type Module struct {
	Kind  Kind
	Color Color
}

// Matrix is the symbol grid. Coordinates are signed; a negative value
// indexes from the far edge, matching the coordinate tables in
// qrtables (which list several reserved blocks using negative
// offsets from the bottom/right edge).
type Matrix struct {
	version int
	width   int
	grid    []Module
}

// New allocates an empty width×width grid for version.
func New(version int) *Matrix {
	w := qrtables.Width(version)
	return &Matrix{version: version, width: w, grid: make([]Module, w*w)}
}

// Version returns the symbol version.
func (m *Matrix) Version() int { return m.version }

// Width returns the symbol's module width.
func (m *Matrix) Width() int { return m.width }

func (m *Matrix) index(r, c int) int {
	w := m.width
	if r < 0 {
		r += w
	}
	if c < 0 {
		c += w
	}
	return r*w + c
}

// Get reads the module at (r, c).
func (m *Matrix) Get(r, c int) Module {
	return m.grid[m.index(r, c)]
}

// Set writes the module at (r, c).
func (m *Matrix) Set(r, c int, mod Module) {
	m.grid[m.index(r, c)] = mod
}

// CountDark counts modules whose color is Dark (mono symbols only).
func (m *Matrix) CountDark() int {
	n := 0
	for _, mod := range m.grid {
		if mod.Color == Dark {
			n++
		}
	}
	return n
}

// DrawFinderPatternAt draws the 7x7 finder ring centered at (r, c),
// clipped against the matrix edge the way the quiet-zone-adjacent
// finders are (top-left uses the full -3..4 extent, the finders
// against the bottom/right edge stop short at the edge itself).
func (m *Matrix) DrawFinderPatternAt(r, c int) {
	drLeft, drRight := -4, 3
	if r > 0 {
		drLeft, drRight = -3, 4
	}
	dcTop, dcBottom := -4, 3
	if c > 0 {
		dcTop, dcBottom = -3, 4
	}
	for i := drLeft; i <= drRight; i++ {
		for j := dcTop; j <= dcBottom; j++ {
			color := Dark
			switch {
			case abs(i) == 4 || abs(j) == 4:
				color = Light
			case abs(i) == 3 || abs(j) == 3:
				color = Dark
			case abs(i) == 2 || abs(j) == 2:
				color = Light
			}
			m.Set(r+i, c+j, Module{Kind: Func, Color: color})
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawFinderPatterns draws the three corner finder patterns.
func (m *Matrix) DrawFinderPatterns() {
	m.DrawFinderPatternAt(3, 3)
	m.DrawFinderPatternAt(3, -4)
	m.DrawFinderPatternAt(-4, 3)
}

func (m *Matrix) drawLine(r1, c1, r2, c2 int) {
	if r1 == r2 {
		for j := c1; j <= c2; j++ {
			color := Light
			if j&1 == 0 {
				color = Dark
			}
			m.Set(r1, j, Module{Kind: Func, Color: color})
		}
		return
	}
	for i := r1; i <= r2; i++ {
		color := Light
		if i&1 == 0 {
			color = Dark
		}
		m.Set(i, c1, Module{Kind: Func, Color: color})
	}
}

// DrawTimingPattern draws the alternating row-6/column-6 timing lines.
func (m *Matrix) DrawTimingPattern() {
	w := m.width
	m.drawLine(6, 8, 6, w-9)
	m.drawLine(8, 6, w-9, 6)
}

func (m *Matrix) drawAlignmentPatternAt(r, c int) {
	w := m.width
	if (r == 6 && (c == 6 || c-w == -7)) || (r-w == -7 && c == 6) {
		return
	}
	for i := -2; i <= 2; i++ {
		for j := -2; j <= 2; j++ {
			color := Light
			if abs(i) == 2 || abs(j) == 2 || (i == 0 && j == 0) {
				color = Dark
			}
			m.Set(r+i, c+j, Module{Kind: Func, Color: color})
		}
	}
}

// DrawAlignmentPatterns draws every alignment pattern for the symbol's
// version, skipping positions that overlap a finder pattern.
func (m *Matrix) DrawAlignmentPatterns() {
	positions := qrtables.AlignmentPositions(m.version)
	for _, r := range positions {
		for _, c := range positions {
			m.drawAlignmentPatternAt(int(r), int(c))
		}
	}
}

// DrawAllFunctionPatterns draws finders, timing, and alignment patterns.
func (m *Matrix) DrawAllFunctionPatterns() {
	m.DrawFinderPatterns()
	m.DrawTimingPattern()
	m.DrawAlignmentPatterns()
}

func (m *Matrix) drawNumber(number uint32, bitLen int, kind Kind, coords []qrtables.Coord) {
	mask := uint32(1) << uint(bitLen-1)
	for _, coord := range coords {
		color := Light
		if number&mask != 0 {
			color = Dark
		}
		m.Set(coord.R, coord.C, Module{Kind: kind, Color: color})
		mask >>= 1
	}
}

// DrawFormatInfo writes the 15-bit format info codeword to both its
// main and side coordinate blocks, plus the single always-dark
// reference bit at (8, -8).
func (m *Matrix) DrawFormatInfo(formatInfo uint32) {
	m.drawNumber(formatInfo, 15, Format, qrtables.FormatInfoMainCoords())
	m.drawNumber(formatInfo, 15, Format, qrtables.FormatInfoSideCoords())
	m.Set(8, -8, Module{Kind: Format, Color: Dark})
}

// ReserveFormatArea draws a placeholder all-ones format info codeword,
// marking the reserved cells as Format before the mask pattern (and
// therefore the real format info) is known.
func (m *Matrix) ReserveFormatArea() {
	m.DrawFormatInfo((1 << 15) - 1)
}

// DrawVersionInfo writes the 18-bit version info codeword to its BL
// and TR coordinate blocks. It is a no-op for versions below 7.
func (m *Matrix) DrawVersionInfo() {
	if m.version < 7 {
		return
	}
	info := qrtables.VersionInfo(m.version)
	m.drawNumber(info, 18, Version, qrtables.VersionInfoBLCoords())
	m.drawNumber(info, 18, Version, qrtables.VersionInfoTRCoords())
}

// DrawPaletteInfo writes the 12-bit palette info codeword (paletteSize
// 2..16) to its BL and TR coordinate blocks plus the always-dark
// reference bit at (8, -8) already set by DrawFormatInfo; it is a
// no-op for mono symbols (paletteSize <= 1).
func (m *Matrix) DrawPaletteInfo(paletteSize int) {
	if paletteSize <= 1 {
		return
	}
	info := qrtables.PaletteInfos[paletteSize]
	m.drawNumber(info, 12, Palette, qrtables.PaletteInfoCoords(false))
	m.drawNumber(info, 12, Palette, qrtables.PaletteInfoCoords(true))
}

// DrawPayload writes payload (MSB-first; one byte slice per channel,
// 3 channels for polychrome) via the encoding-region iterator, skipping
// any cell already reserved for format/version/palette info. Callers
// must draw function patterns and reserve the info areas first.
func (m *Matrix) DrawPayload(payload [][]byte, channels int) {
	it := NewEncRegionIter(m.version)
	totalBits := 0
	if len(payload) > 0 {
		totalBits = len(payload[0]) * 8
	}
	bitIdx := 0
	for bitIdx < totalBits {
		r, c, ok := it.Next()
		if !ok {
			break
		}
		if m.Get(r, c).Kind != Empty {
			continue
		}
		if channels == 1 {
			bit := (payload[0][bitIdx/8] >> uint(7-bitIdx%8)) & 1
			color := Light
			if bit == 1 {
				color = Dark
			}
			m.Set(r, c, Module{Kind: Data, Color: color})
		} else {
			hueBits := 0
			for ch := 0; ch < channels; ch++ {
				bit := (payload[ch][bitIdx/8] >> uint(7-bitIdx%8)) & 1
				hueBits = hueBits<<1 | int(bit)
			}
			m.Set(r, c, Module{Kind: Data, Color: Hue(hueBits)})
		}
		bitIdx++
	}
}

// ApplyMask flips every Data cell for which maskFn(r, c) is true, then
// draws the real format info codeword for the chosen mask pattern.
func (m *Matrix) ApplyMask(maskFn func(r, c int) bool, ecLevel, maskPattern int) {
	for r := 0; r < m.width; r++ {
		for c := 0; c < m.width; c++ {
			if !maskFn(r, c) {
				continue
			}
			mod := m.Get(r, c)
			if mod.Kind == Data {
				m.Set(r, c, Module{Kind: Data, Color: mod.Color.Not()})
			}
		}
	}
	formatInfo := qrtables.FormatInfo(ecLevel, maskPattern)
	m.DrawFormatInfo(formatInfo)
}
