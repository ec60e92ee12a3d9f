// Package segment implements the segmentation codec: splitting payload
// bytes into numeric/alphanumeric/byte/kanji runs via a dynamic-
// programming optimizer, encoding the chosen segmentation to a bit
// stream, and decoding a bit stream back into payload bytes.
package segment

import (
	"errors"
	"fmt"

	"github.com/qrforge/qrcode/internal/bio"
)

// Mode identifies one of the four segment encodings.
type Mode int

const (
	Numeric Mode = iota
	Alphanumeric
	Byte
	Kanji
	numModes
)

func (m Mode) String() string {
	switch m {
	case Numeric:
		return "Numeric"
	case Alphanumeric:
		return "Alphanumeric"
	case Byte:
		return "Byte"
	case Kanji:
		return "Kanji"
	default:
		return "Unknown"
	}
}

// indicator returns the 4-bit mode indicator value.
func (m Mode) indicator() uint32 {
	switch m {
	case Numeric:
		return 0b0001
	case Alphanumeric:
		return 0b0010
	case Byte:
		return 0b0100
	case Kanji:
		return 0b1000
	}
	return 0
}

func modeFromIndicator(v uint32) (Mode, bool) {
	switch v {
	case 0b0001:
		return Numeric, true
	case 0b0010:
		return Alphanumeric, true
	case 0b0100:
		return Byte, true
	case 0b1000:
		return Kanji, true
	case 0b0000:
		return 0, false // terminator
	}
	return 0, false
}

// ErrInvalidChar is returned when a byte cannot be represented in the
// mode its segment was assigned.
var ErrInvalidChar = errors.New("segment: character not representable in mode")

const alphanumericSet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

func alphanumericValue(b byte) (int, bool) {
	i := indexByte(alphanumericSet, b)
	if i < 0 {
		return 0, false
	}
	return i, true
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// charCountBits returns the width, in bits, of the character count
// indicator for mode at version.
func charCountBits(mode Mode, version int) int {
	switch {
	case version <= 9:
		switch mode {
		case Numeric:
			return 10
		case Alphanumeric:
			return 9
		case Byte:
			return 8
		case Kanji:
			return 8
		}
	case version <= 26:
		switch mode {
		case Numeric:
			return 12
		case Alphanumeric:
			return 11
		case Byte:
			return 16
		case Kanji:
			return 10
		}
	default:
		switch mode {
		case Numeric:
			return 14
		case Alphanumeric:
			return 13
		case Byte:
			return 16
		case Kanji:
			return 12
		}
	}
	return 0
}

// Segment is one run of input bytes assigned to a single mode.
type Segment struct {
	Mode Mode
	Data []byte
}

// charDataBits returns the exact number of payload bits n characters of
// mode encode to, excluding the mode header and character count.
func charDataBits(mode Mode, n int) int {
	switch mode {
	case Numeric:
		full := n / 3
		rem := n % 3
		bits := full * 10
		switch rem {
		case 1:
			bits += 4
		case 2:
			bits += 7
		}
		return bits
	case Alphanumeric:
		full := n / 2
		rem := n % 2
		bits := full * 11
		if rem == 1 {
			bits += 6
		}
		return bits
	case Byte:
		return n * 8
	case Kanji:
		return n * 13
	}
	return 0
}

// Plan runs the dynamic-programming segmentation optimizer over data
// for a fixed version, returning the minimal-bit-length run sequence.
// State is (position, mode); transition cost is the per-character data
// cost plus, for a new mode run, the header cost (4 bits + char count
// width). Ties favor fewer segments by preferring to extend the
// current run over starting a new one of equal cost.
func Plan(data []byte, version int) ([]Segment, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("segment: %w", errEmptyData)
	}

	n := len(data)
	modeOf := make([]Mode, n)
	for i, b := range data {
		modeOf[i] = classify(b)
	}

	const inf = 1 << 30
	// cost[i][m] = minimum total bits to encode data[i:] given the run
	// starting at i is mode m (including that run's own header).
	cost := make([][numModes]int, n+1)
	next := make([][numModes]int, n+1)
	for m := 0; m < int(numModes); m++ {
		cost[n][m] = 0
	}

	for i := n - 1; i >= 0; i-- {
		for m := Numeric; m < numModes; m++ {
			if !canEncode(Mode(m), data[i]) {
				cost[i][m] = inf
				continue
			}
			best := inf
			bestJ := i + 1
			// try every run length j (exclusive end) starting at i,
			// all sharing mode m, then transition to the best mode at j.
			j := i + 1
			for j <= n && canEncode(Mode(m), data[j-1]) {
				header := 4 + charCountBits(Mode(m), version)
				dataBits := charDataBits(Mode(m), j-i)
				tail := inf
				if j == n {
					tail = 0
				} else {
					for m2 := Mode(0); m2 < numModes; m2++ {
						if cost[j][m2] < tail {
							tail = cost[j][m2]
						}
					}
				}
				if tail == inf {
					j++
					continue
				}
				total := header + dataBits + tail
				if total <= best {
					best = total
					bestJ = j
				}
				j++
			}
			cost[i][m] = best
			next[i][m] = bestJ
		}
	}

	startMode := Mode(0)
	startCost := inf
	for m := Mode(0); m < numModes; m++ {
		if cost[0][m] < startCost {
			startCost = cost[0][m]
			startMode = m
		}
	}
	if startCost >= inf {
		return nil, fmt.Errorf("segment: %w", ErrInvalidChar)
	}

	var segs []Segment
	pos := 0
	mode := startMode
	for pos < n {
		j := next[pos][mode]
		segs = append(segs, Segment{Mode: mode, Data: data[pos:j]})
		pos = j
		if pos >= n {
			break
		}
		best := inf
		nextMode := Mode(0)
		for m := Mode(0); m < numModes; m++ {
			if cost[pos][m] < best {
				best = cost[pos][m]
				nextMode = m
			}
		}
		mode = nextMode
	}
	return segs, nil
}

var errEmptyData = errors.New("empty data")

// classify returns the narrowest mode capable of representing b on its
// own; the DP optimizer widens to Byte/Kanji runs as needed via
// canEncode during transition search.
func classify(b byte) Mode {
	if b >= '0' && b <= '9' {
		return Numeric
	}
	if _, ok := alphanumericValue(b); ok {
		return Alphanumeric
	}
	return Byte
}

func canEncode(mode Mode, b byte) bool {
	switch mode {
	case Numeric:
		return b >= '0' && b <= '9'
	case Alphanumeric:
		_, ok := alphanumericValue(b)
		return ok
	case Byte:
		return true
	case Kanji:
		return false // Shift-JIS input detection is out of scope for single-byte classification
	}
	return false
}

// Encode writes segs to a bit stream, pads to a byte boundary with a
// terminator of up to 4 zero bits, then fills to capacityBits with the
// alternating 0xEC/0x11 pad pattern.
func Encode(segs []Segment, version, capacityBits int) ([]byte, int, error) {
	w := bio.NewWriter()
	for _, seg := range segs {
		w.Push(seg.Mode.indicator(), 4)
		w.Push(uint32(len(seg.Data)), charCountBits(seg.Mode, version))
		if err := encodeData(w, seg); err != nil {
			return nil, 0, err
		}
	}

	encodedLen := w.Len()
	if w.Len() > capacityBits {
		return nil, 0, fmt.Errorf("segment: %w", errDataTooLong)
	}

	term := capacityBits - w.Len()
	if term > 4 {
		term = 4
	}
	w.Push(0, term)
	w.PadToByte()

	pad := [2]byte{0xEC, 0x11}
	for i := 0; w.Len() < capacityBits; i++ {
		w.Push(uint32(pad[i%2]), 8)
	}

	return w.Bytes(), encodedLen, nil
}

var errDataTooLong = errors.New("data too long")

func encodeData(w *bio.Writer, seg Segment) error {
	switch seg.Mode {
	case Numeric:
		data := seg.Data
		for i := 0; i < len(data); i += 3 {
			chunk := data[i:min(i+3, len(data))]
			val := 0
			for _, b := range chunk {
				val = val*10 + int(b-'0')
			}
			bits := len(chunk)*3 + 1
			w.Push(uint32(val), bits)
		}
	case Alphanumeric:
		data := seg.Data
		for i := 0; i < len(data); i += 2 {
			a, ok := alphanumericValue(data[i])
			if !ok {
				return fmt.Errorf("segment: %w", ErrInvalidChar)
			}
			if i+1 < len(data) {
				b, ok := alphanumericValue(data[i+1])
				if !ok {
					return fmt.Errorf("segment: %w", ErrInvalidChar)
				}
				w.Push(uint32(a*45+b), 11)
			} else {
				w.Push(uint32(a), 6)
			}
		}
	case Byte:
		for _, b := range seg.Data {
			w.Push(uint32(b), 8)
		}
	case Kanji:
		return fmt.Errorf("segment: %w", ErrInvalidChar)
	}
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Decode reads segments from buf until a terminator (mode indicator
// 0000) or the bit stream is exhausted, reassembling the original
// payload bytes.
func Decode(buf []byte, version int) ([]byte, error) {
	r := bio.NewReader(buf)
	var out []byte

	for r.Remaining() >= 4 {
		indicator := r.Read(4)
		mode, ok := modeFromIndicator(indicator)
		if !ok {
			break
		}
		count := int(r.Read(charCountBits(mode, version)))
		switch mode {
		case Numeric:
			for count > 0 {
				n := 3
				bits := 10
				if count < 3 {
					n = count
					bits = n*3 + 1
				}
				val := int(r.Read(bits))
				digits := make([]byte, n)
				for i := n - 1; i >= 0; i-- {
					digits[i] = byte(val%10) + '0'
					val /= 10
				}
				out = append(out, digits...)
				count -= n
			}
		case Alphanumeric:
			for count > 0 {
				if count == 1 {
					v := int(r.Read(6))
					out = append(out, alphanumericSet[v])
					count--
					continue
				}
				v := int(r.Read(11))
				out = append(out, alphanumericSet[v/45], alphanumericSet[v%45])
				count -= 2
			}
		case Byte:
			for i := 0; i < count; i++ {
				out = append(out, byte(r.Read(8)))
			}
		case Kanji:
			return nil, fmt.Errorf("segment: %w", ErrInvalidChar)
		}
	}
	return out, nil
}
