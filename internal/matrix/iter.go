package matrix

import "github.com/qrforge/qrcode/internal/qrtables"

// EncRegionIter walks every coordinate of the encoding region in the
// standard zig-zag order: starting at the bottom-right corner, moving
// two columns at a time, alternating upward and downward passes, and
// jogging left by two columns when crossing the vertical timing
// column. It yields every non-function cell, including ones later
// found to be reserved for format/version/palette info; callers skip
// those by checking the module's kind.
type EncRegionIter struct {
	r, c, width int
	vertTiming  int
}

// NewEncRegionIter returns an iterator positioned at the start of the
// encoding region for version.
func NewEncRegionIter(version int) *EncRegionIter {
	w := qrtables.Width(version)
	return &EncRegionIter{r: w - 1, c: w - 1, width: w, vertTiming: 6}
}

// Next returns the next (row, col) pair, or ok=false once the column
// counter runs negative.
func (it *EncRegionIter) Next() (r, c int, ok bool) {
	if it.c < 0 {
		return 0, 0, false
	}
	adjustedCol := it.c
	if it.c <= it.vertTiming {
		adjustedCol = it.c + 1
	}

	res := [2]int{it.r, it.c}
	colType := (it.width - adjustedCol) % 4

	switch {
	case colType == 2 && it.r > 0:
		it.r--
		it.c++
	case colType == 0 && it.r < it.width-1:
		it.r++
		it.c++
	case (colType == 0 || colType == 2) && it.c == it.vertTiming+1:
		it.c -= 2
	default:
		it.c--
	}

	return res[0], res[1], true
}
