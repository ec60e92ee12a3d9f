package qrcode

import (
	"fmt"

	"github.com/qrforge/qrcode/internal/ecc"
	"github.com/qrforge/qrcode/internal/mask"
	"github.com/qrforge/qrcode/internal/matrix"
	"github.com/qrforge/qrcode/internal/qrtables"
	"github.com/qrforge/qrcode/internal/segment"
)

// Builder configures and produces a symbol. The zero value is not
// usable; construct one with NewBuilder.
type Builder struct {
	data    []byte
	version int // 0 means unset: probe for the smallest fitting version
	ecLevel ECLevel
	palette Palette
	mask    int // -1 means unset: pick the best mask automatically
}

// NewBuilder starts a Builder for data with EC level M and a monochrome
// palette, matching the defaults of the reference implementation this
// module's layout is modeled on.
func NewBuilder(data []byte) *Builder {
	return &Builder{data: data, ecLevel: ECLevelM, palette: Mono, mask: -1}
}

// Version fixes the symbol version (1..40). Unset by default, which
// makes Build probe for the smallest version that fits the data.
func (b *Builder) Version(v int) *Builder {
	b.version = v
	return b
}

// ECLevel sets the error correction level.
func (b *Builder) ECLevel(ec ECLevel) *Builder {
	b.ecLevel = ec
	return b
}

// Palette sets the color palette.
func (b *Builder) Palette(p Palette) *Builder {
	b.palette = p
	return b
}

// Mask fixes the mask pattern (0..7). Unset by default, which makes
// Build pick the penalty-minimizing mask.
func (b *Builder) Mask(m int) *Builder {
	b.mask = m
	return b
}

// Build runs the full encode pipeline: segmentation, error correction,
// interleaving, layout, and mask selection.
func (b *Builder) Build() (*Matrix, error) {
	if len(b.data) == 0 {
		return nil, fmt.Errorf("qrcode: %w", ErrEmptyData)
	}
	if b.mask != -1 && (b.mask < 0 || b.mask > 7) {
		return nil, fmt.Errorf("qrcode: %w", ErrInvalidMaskingPattern)
	}
	if b.version != 0 && (b.version < 1 || b.version > 40) {
		return nil, fmt.Errorf("qrcode: %w", ErrInvalidVersion)
	}
	if b.ecLevel < ECLevelL || b.ecLevel > ECLevelH {
		return nil, fmt.Errorf("qrcode: %w", ErrInvalidECLevel)
	}
	if b.palette.size < 1 || b.palette.size > 16 {
		return nil, fmt.Errorf("qrcode: %w", ErrInvalidPalette)
	}
	channels := b.palette.Channels()

	version, payload, err := b.encodeData(channels)
	if err != nil {
		return nil, err
	}

	// payload holds channels independent chunks back to back, each sized
	// to the version/EC level's normal single-channel data capacity (see
	// encodeData). Every chunk gets its own Reed-Solomon blocks and
	// interleaving, so each channel carries a complete, independently
	// correctable codeword stream rather than a shared one split later.
	chunkLen := len(payload) / channels
	channelPayloads := make([][]byte, channels)
	for ch := 0; ch < channels; ch++ {
		chunk := payload[ch*chunkLen : (ch+1)*chunkLen]
		dataBlocks, eccBlocks, err := ecc.Encode(chunk, version, int(b.ecLevel))
		if err != nil {
			return nil, fmt.Errorf("qrcode: computing ecc: %w", err)
		}
		codewords := interleave(dataBlocks)
		codewords = append(codewords, interleave(eccBlocks)...)
		channelPayloads[ch] = codewords
	}

	m := matrix.New(version)
	m.DrawAllFunctionPatterns()
	m.ReserveFormatArea()
	m.DrawVersionInfo()
	if channels == 3 {
		m.DrawPaletteInfo(b.palette.size)
	}

	m.DrawPayload(channelPayloads, channels)

	pattern := b.mask
	if pattern == -1 {
		pattern, _ = mask.SelectBest(func(p int) *matrix.Matrix {
			candidate := cloneMatrix(m)
			candidate.ApplyMask(mask.Functions[p], int(b.ecLevel), p)
			return candidate
		})
	}
	m.ApplyMask(mask.Functions[pattern], int(b.ecLevel), pattern)

	return &Matrix{
		inner:   m,
		version: version,
		ecLevel: b.ecLevel,
		palette: b.palette,
		mask:    pattern,
	}, nil
}

// encodeData runs the segmentation optimizer (probing versions if none
// was fixed) and produces the padded data codeword bytes for the whole
// symbol. A poly palette's three independent channels each carry a
// full version/EC-level codeword stream of their own, so the usable
// capacity is channels times the normal single-channel capacity; the
// segmentation optimizer fills that full width with one continuous
// mode/length/data/terminator/pad bitstream, which Build then slices
// into channels equal chunks, one per channel's Reed-Solomon blocks.
func (b *Builder) encodeData(channels int) (version int, payload []byte, err error) {
	if b.version != 0 {
		version = b.version
		capacityBits := channels * qrtables.BitCapacity(version, int(b.ecLevel))
		segs, err := segment.Plan(b.data, version)
		if err != nil {
			return 0, nil, fmt.Errorf("qrcode: %w", err)
		}
		encoded, _, err := segment.Encode(segs, version, capacityBits)
		if err != nil {
			return 0, nil, fmt.Errorf("qrcode: %w", ErrDataTooLong)
		}
		return version, encoded, nil
	}

	for v := 1; v <= 40; v++ {
		capacityBits := channels * qrtables.BitCapacity(v, int(b.ecLevel))
		segs, err := segment.Plan(b.data, v)
		if err != nil {
			return 0, nil, fmt.Errorf("qrcode: %w", err)
		}
		encoded, _, err := segment.Encode(segs, v, capacityBits)
		if err != nil {
			continue
		}
		return v, encoded, nil
	}
	return 0, nil, fmt.Errorf("qrcode: %w", ErrDataTooLong)
}

// interleave round-robins bytes across blocks, the standard QR block
// interleaving: column 0 of every block, then column 1, and so on,
// trailing off as shorter blocks are exhausted.
func interleave(blocks [][]byte) []byte {
	maxLen := 0
	total := 0
	for _, blk := range blocks {
		if len(blk) > maxLen {
			maxLen = len(blk)
		}
		total += len(blk)
	}
	res := make([]byte, 0, total)
	for i := 0; i < maxLen; i++ {
		for _, blk := range blocks {
			if i < len(blk) {
				res = append(res, blk[i])
			}
		}
	}
	return res
}

func cloneMatrix(m *matrix.Matrix) *matrix.Matrix {
	clone := matrix.New(m.Version())
	w := m.Width()
	for r := 0; r < w; r++ {
		for c := 0; c < w; c++ {
			clone.Set(r, c, m.Get(r, c))
		}
	}
	return clone
}

// Encode is a convenience wrapper around Builder for the common case of
// a variable version.
func Encode(data []byte, ecLevel ECLevel, palette Palette) (*Matrix, error) {
	return NewBuilder(data).ECLevel(ecLevel).Palette(palette).Build()
}

// EncodeWithVersion fixes the version instead of probing for the
// smallest one that fits.
func EncodeWithVersion(data []byte, ecLevel ECLevel, palette Palette, version int) (*Matrix, error) {
	return NewBuilder(data).ECLevel(ecLevel).Palette(palette).Version(version).Build()
}
