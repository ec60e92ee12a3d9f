package qrcode

import (
	"fmt"
	"image"

	"github.com/qrforge/qrcode/internal/binarize"
	"github.com/qrforge/qrcode/internal/detect"
	"github.com/qrforge/qrcode/internal/ecc"
	"github.com/qrforge/qrcode/internal/geom"
	"github.com/qrforge/qrcode/internal/mask"
	"github.com/qrforge/qrcode/internal/matrix"
	"github.com/qrforge/qrcode/internal/qrtables"
	"github.com/qrforge/qrcode/internal/segment"
)

const (
	formatErrorCapacity  = 3
	versionErrorCapacity = 3
	paletteErrorCapacity = 3
)

// Decode locates, fits, and decodes the first plausible symbol found in
// img, trying finder groups in ascending score order (best-formed
// first) until one yields a valid decode.
func Decode(img image.Image) (Metadata, []byte, error) {
	bin := binarize.Prepare(img)
	finders := detect.LocateFinders(bin)
	if len(finders) < 3 {
		return Metadata{}, nil, fmt.Errorf("qrcode: %w", ErrNoSymbolFound)
	}

	groups := detect.GroupFinders(finders)
	var lastErr error
	for _, group := range groups {
		meta, data, err := decodeGroup(bin, group)
		if err == nil {
			return meta, data, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = ErrNoSymbolFound
	}
	return Metadata{}, nil, fmt.Errorf("qrcode: %w", lastErr)
}

func decodeGroup(bin *binarize.Image, group detect.Group) (Metadata, []byte, error) {
	vFinder, dFinder, hFinder := group.Finders[0], group.Finders[1], group.Finders[2]

	gridSize, ok := estimateGridSize(dFinder, vFinder, hFinder)
	if !ok {
		return Metadata{}, nil, fmt.Errorf("qrcode: %w", ErrNoSymbolFound)
	}
	version := (gridSize - 17) / 4
	if version < 1 || version > 40 {
		return Metadata{}, nil, fmt.Errorf("qrcode: %w", ErrInvalidVersion)
	}

	alignCenter := dFinder.Center
	if version > 1 {
		seed := estimateAlignmentSeed(dFinder, vFinder, hFinder)
		modWidth := estimateModuleWidth(dFinder, vFinder, hFinder)
		threshold := estimateAreaThreshold(dFinder, vFinder, hFinder)
		found, ok := geom.LocateAlignmentPattern(bin, seed, modWidth, threshold)
		if !ok {
			return Metadata{}, nil, fmt.Errorf("qrcode: %w", ErrNoSymbolFound)
		}
		alignCenter = found
	}

	brOffset := 6.5
	if version == 1 {
		brOffset = 3.5
	}
	size := float64(gridSize)
	src := [4]geom.Point{
		{X: 3.5, Y: 3.5},
		{X: size - 3.5, Y: 3.5},
		{X: size - brOffset, Y: size - brOffset},
		{X: 3.5, Y: size - 3.5},
	}
	dst := [4]geom.Point{
		{X: hFinder.Center.X, Y: hFinder.Center.Y},
		{X: vFinder.Center.X, Y: vFinder.Center.Y},
		alignCenter,
		{X: dFinder.Center.X, Y: dFinder.Center.Y},
	}
	h, err := geom.Compute(src, dst)
	if err != nil {
		return Metadata{}, nil, fmt.Errorf("qrcode: %w", ErrNoSymbolFound)
	}

	alignCoords := qrtables.AlignmentPositions(version)
	jiggled, ok := geom.JiggleHomography(bin, *h, gridSize, intSlice(alignCoords))
	if !ok {
		return Metadata{}, nil, fmt.Errorf("qrcode: %w", ErrNoSymbolFound)
	}

	sym := &symbol{img: bin, h: &jiggled, width: gridSize}

	ecLevel, maskPattern, err := sym.readFormatInfo()
	if err != nil {
		return Metadata{}, nil, err
	}
	if version >= 7 {
		readVer, err := sym.readVersionInfo()
		if err != nil {
			return Metadata{}, nil, err
		}
		version = readVer
		sym.width = qrtables.Width(version)
	}
	palette, err := sym.readPaletteInfo()
	if err != nil {
		return Metadata{}, nil, err
	}

	data, err := sym.extractAndDecode(version, int(ecLevel), maskPattern, palette)
	if err != nil {
		return Metadata{}, nil, err
	}

	return Metadata{Version: version, ECLevel: ecLevel, Palette: palette, Mask: maskPattern}, data, nil
}

func intSlice(s []int16) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = int(v)
	}
	return out
}

func estimateGridSize(datum, vert, horiz *detect.Finder) (int, bool) {
	dx, _ := datum.H.Unmap(horiz.Center)
	_, dy := datum.H.Unmap(vert.Center)
	size := (dx+dy)/2 + 7
	if size < 21 {
		return 0, false
	}
	return int(size + 0.5), true
}

func estimateModuleWidth(datum, vert, horiz *detect.Finder) float64 {
	gridSize, _ := estimateGridSize(datum, vert, horiz)
	return float64(gridSize) / 3
}

func estimateAreaThreshold(datum, vert, horiz *detect.Finder) float64 {
	m0 := geom.NewSlope(geom.Point{X: datum.Center.X, Y: datum.Center.Y}, horiz.Center)
	m1 := geom.NewSlope(geom.Point{X: datum.Center.X, Y: datum.Center.Y}, vert.Center)
	cross := m0.Cross(m1)
	if cross < 0 {
		cross = -cross
	}
	return cross * 2 / 9
}

func estimateAlignmentSeed(datum, vert, horiz *detect.Finder) geom.Point {
	dx := horiz.Center.X - datum.Center.X
	dy := vert.Center.Y - datum.Center.Y
	return geom.Point{X: vert.Center.X + dx, Y: horiz.Center.Y + dy}
}

// symbol is a located, homography-fitted candidate being sampled for
// format/version/palette info and payload.
type symbol struct {
	img   *binarize.Image
	h     *geom.Homography
	width int
}

func (s *symbol) wrap(v int) int {
	if v < 0 {
		return v + s.width
	}
	return v
}

// samplePixel maps the module at (row, col) to an image pixel,
// wrapping negative indices and honoring the homography's (col, row)
// module-space ordering, which matches the finder corner
// correspondences in geom.
func (s *symbol) samplePixel(row, col int) (px, py int, ok bool) {
	row, col = s.wrap(row), s.wrap(col)
	p := s.h.Map(float64(col)+0.5, float64(row)+0.5)
	px, py = int(p.X), int(p.Y)
	if px < 0 || px >= s.img.W || py < 0 || py >= s.img.H {
		return 0, 0, false
	}
	return px, py, true
}

// getDark samples the luminance-binarized module at (row, col); used
// for format/version/palette info and for mono payload bits.
func (s *symbol) getDark(row, col int) (bool, bool) {
	px, py, ok := s.samplePixel(row, col)
	if !ok {
		return false, false
	}
	return s.img.Dark(px, py), true
}

// getChannelDark samples one R/G/B channel plane at (row, col), used
// for polychrome payload bits.
func (s *symbol) getChannelDark(row, col, ch int) (bool, bool) {
	px, py, ok := s.samplePixel(row, col)
	if !ok {
		return false, false
	}
	return s.img.ChannelDark(px, py, ch), true
}

func (s *symbol) getNumber(coords []qrtables.Coord) (uint32, bool) {
	var num uint32
	for _, c := range coords {
		dark, ok := s.getDark(c.R, c.C)
		if !ok {
			return 0, false
		}
		bit := uint32(0)
		if dark {
			bit = 1
		}
		num = num<<1 | bit
	}
	return num, true
}

func (s *symbol) readFormatInfo() (ECLevel, int, error) {
	for _, coords := range [][]qrtables.Coord{qrtables.FormatInfoMainCoords(), qrtables.FormatInfoSideCoords()} {
		raw, ok := s.getNumber(coords)
		if !ok {
			continue
		}
		rectified, err := ecc.RectifyInfo(raw, qrtables.FormatInfos[:], formatErrorCapacity)
		if err != nil {
			continue
		}
		ecl, m := qrtables.ParseFormatInfo(rectified)
		return ECLevel(ecl), m, nil
	}
	return 0, 0, fmt.Errorf("qrcode: %w", ErrInvalidFormatInfo)
}

func (s *symbol) readVersionInfo() (int, error) {
	for _, coords := range [][]qrtables.Coord{qrtables.VersionInfoBLCoords(), qrtables.VersionInfoTRCoords()} {
		raw, ok := s.getNumber(coords)
		if !ok {
			continue
		}
		rectified, err := ecc.RectifyInfo(raw, qrtables.VersionInfos(), versionErrorCapacity)
		if err != nil {
			continue
		}
		return qrtables.ParseVersionInfo(rectified), nil
	}
	return 0, fmt.Errorf("qrcode: %w", ErrInvalidVersionInfo)
}

func (s *symbol) readPaletteInfo() (Palette, error) {
	dark, ok := s.getDark(8, -8)
	if !ok {
		return Palette{}, fmt.Errorf("qrcode: %w", ErrInvalidPaletteInfo)
	}
	if dark {
		return Mono, nil
	}

	for _, nearTR := range []bool{false, true} {
		raw, ok := s.getNumber(qrtables.PaletteInfoCoords(nearTR))
		if !ok {
			continue
		}
		rectified, err := ecc.RectifyInfo(raw, qrtables.PaletteInfos[:], paletteErrorCapacity)
		if err != nil {
			continue
		}
		return Poly(qrtables.ParsePaletteInfo(rectified)), nil
	}
	return Palette{}, fmt.Errorf("qrcode: %w", ErrInvalidPaletteInfo)
}

// extractAndDecode samples the payload region — one bit plane for mono,
// three independent bit planes for polychrome — and for each channel
// deinterleaves and rectifies its own full set of Reed-Solomon blocks,
// exactly mirroring Build: a poly symbol carries three complete,
// independently-correctable codeword streams rather than one stream
// split across hues. The rectified data from every channel is
// concatenated in channel order to reform the single continuous
// mode/length/data bitstream the segmentation encoder produced, which
// is then decoded once.
func (s *symbol) extractAndDecode(version, ecLevel, maskPattern int, palette Palette) ([]byte, error) {
	layout := qrtables.Layout(version, ecLevel)
	totalBlocks := layout.Group1.Count + layout.Group2.Count
	totalDataLen := layout.Group1.Count*layout.Group1.DataCodewords + layout.Group2.Count*layout.Group2.DataCodewords
	totalCodewords := totalDataLen + totalBlocks*layout.ECPerBlock
	channels := palette.Channels()

	chanBuffers := make([][]byte, channels)
	for c := range chanBuffers {
		chanBuffers[c] = make([]byte, totalCodewords)
	}

	// Rebuild the skeleton of reserved cells so the encoding-region walk
	// skips format/version/palette info exactly as DrawPayload did.
	skeleton := matrix.New(version)
	skeleton.DrawAllFunctionPatterns()
	skeleton.ReserveFormatArea()
	if version >= 7 {
		skeleton.DrawVersionInfo()
	}
	if channels == 3 {
		skeleton.DrawPaletteInfo(palette.size)
	}

	maskFn := mask.Functions[maskPattern]
	it := matrix.NewEncRegionIter(version)
	bitIdx := 0
	totalBits := totalCodewords * 8
	for bitIdx < totalBits {
		r, c, ok := it.Next()
		if !ok {
			return nil, fmt.Errorf("qrcode: %w", ErrPixelOutOfBounds)
		}
		if skeleton.Get(r, c).Kind != matrix.Empty {
			continue
		}
		// ApplyMask flips Data cells where maskFn is true (matrix.go); undo
		// the same XOR here to recover the original bit.
		flip := maskFn(r, c)
		if channels == 1 {
			dark, ok := s.getDark(r, c)
			if !ok {
				return nil, fmt.Errorf("qrcode: %w", ErrPixelOutOfBounds)
			}
			if flip {
				dark = !dark
			}
			if dark {
				chanBuffers[0][bitIdx/8] |= 1 << uint(7-bitIdx%8)
			}
		} else {
			for ch := 0; ch < channels; ch++ {
				dark, ok := s.getChannelDark(r, c, ch)
				if !ok {
					return nil, fmt.Errorf("qrcode: %w", ErrPixelOutOfBounds)
				}
				if flip {
					dark = !dark
				}
				if dark {
					chanBuffers[ch][bitIdx/8] |= 1 << uint(7-bitIdx%8)
				}
			}
		}
		bitIdx++
	}

	data := make([]byte, 0, totalDataLen*channels)
	for ch := 0; ch < channels; ch++ {
		dataBlocks, eccBlocks := deinterleaveChannel(chanBuffers[ch], layout)
		for i := range dataBlocks {
			rectified, err := ecc.Rectify(dataBlocks[i], eccBlocks[i], layout.ECPerBlock)
			if err != nil {
				return nil, fmt.Errorf("qrcode: %w", ErrErrorUncorrectable)
			}
			data = append(data, rectified...)
		}
	}
	decoded, err := segment.Decode(data, version)
	if err != nil {
		return nil, fmt.Errorf("qrcode: %w", err)
	}
	return decoded, nil
}

// deinterleaveChannel inverts interleave's round-robin column order
// for one channel's full codeword stream.
func deinterleaveChannel(codewords []byte, layout qrtables.BlockLayout) (dataBlocks, eccBlocks [][]byte) {
	g1n, g1sz := layout.Group1.Count, layout.Group1.DataCodewords
	g2n, g2sz := layout.Group2.Count, layout.Group2.DataCodewords
	totalBlocks := g1n + g2n
	maxDataSz := g1sz
	if g2sz > maxDataSz {
		maxDataSz = g2sz
	}

	dataBlocks = make([][]byte, totalBlocks)
	for i := range dataBlocks {
		dataBlocks[i] = make([]byte, 0, maxDataSz)
	}

	pos := 0
	for col := 0; col < maxDataSz; col++ {
		for b := 0; b < totalBlocks; b++ {
			sz := g1sz
			if b >= g1n {
				sz = g2sz
			}
			if col < sz {
				dataBlocks[b] = append(dataBlocks[b], codewords[pos])
				pos++
			}
		}
	}

	eccBlocks = make([][]byte, totalBlocks)
	for b := range eccBlocks {
		eccBlocks[b] = make([]byte, layout.ECPerBlock)
	}
	for col := 0; col < layout.ECPerBlock; col++ {
		for b := 0; b < totalBlocks; b++ {
			eccBlocks[b][col] = codewords[pos]
			pos++
		}
	}
	return dataBlocks, eccBlocks
}
