// Package mask implements the eight QR data-masking functions and the
// four-part penalty score used to pick the best one.
package mask

import (
	"runtime"
	"sync"

	"github.com/qrforge/qrcode/internal/matrix"
)

// Func reports whether the data cell at (r, c) must be flipped.
type Func func(r, c int) bool

// Functions holds the eight mask predicates, indexed by mask pattern.
var Functions = [8]Func{
	checkerboard,
	horizontalLines,
	verticalLines,
	diagonalLines,
	largeCheckerboard,
	fields,
	diamonds,
	meadow,
}

func checkerboard(r, c int) bool      { return (r+c)%2 == 0 }
func horizontalLines(r, c int) bool   { return r%2 == 0 }
func verticalLines(r, c int) bool     { return mod(c, 3) == 0 }
func diagonalLines(r, c int) bool     { return mod(r+c, 3) == 0 }
func largeCheckerboard(r, c int) bool { return (floorDiv(r, 2)+floorDiv(c, 3))%2 == 0 }
func fields(r, c int) bool            { return mod(r*c, 2)+mod(r*c, 3) == 0 }
func diamonds(r, c int) bool          { return (mod(r*c, 2)+mod(r*c, 3))%2 == 0 }
func meadow(r, c int) bool            { return (mod(r+c, 2)+mod(r*c, 3))%2 == 0 }

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

type candidateResult struct {
	pattern int
	m       *matrix.Matrix
	penalty int
}

// SelectBest evaluates all eight masks and returns the winning pattern
// index, breaking ties by the smaller index.
//
// render is called once per candidate mask; it must return a matrix with
// that mask fully applied (function patterns, payload, format info) so
// the penalty score reflects the final rendering. render and TotalPenalty
// must be safe to call concurrently on independent matrices.
//
// The eight candidates are scored across GOMAXPROCS workers, matching
// the job/result channel shape used elsewhere in this codebase for
// fanning independent per-candidate work out across cores.
func SelectBest(render func(maskPattern int) *matrix.Matrix) (best int, bestMatrix *matrix.Matrix) {
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > 8 {
		numWorkers = 8
	}

	jobChan := make(chan int, 8)
	for pattern := 0; pattern < 8; pattern++ {
		jobChan <- pattern
	}
	close(jobChan)

	resultChan := make(chan candidateResult, 8)
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pattern := range jobChan {
				candidate := render(pattern)
				resultChan <- candidateResult{
					pattern: pattern,
					m:       candidate,
					penalty: TotalPenalty(candidate),
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]candidateResult, 8)
	for r := range resultChan {
		results[r.pattern] = r
	}

	bestPenalty := -1
	for pattern, r := range results {
		if bestPenalty < 0 || r.penalty < bestPenalty {
			bestPenalty = r.penalty
			best = pattern
			bestMatrix = r.m
		}
	}
	return best, bestMatrix
}

// TotalPenalty sums all four penalty components for a fully rendered
// matrix.
func TotalPenalty(m *matrix.Matrix) int {
	return adjacencyPenalty(m) + blockPenalty(m) +
		finderPenalty(m, true) + finderPenalty(m, false) + balancePenalty(m)
}

func adjacencyPenalty(m *matrix.Matrix) int {
	pen := 0
	w := m.Width()

	colColor := make([]matrix.Color, w)
	colRun := make([]int, w)
	for c := 0; c < w; c++ {
		colColor[c] = matrix.Dark
	}

	for r := 0; r < w; r++ {
		rowColor := matrix.Dark
		rowRun := 0
		for c := 0; c < w; c++ {
			clr := m.Get(r, c).Color
			if clr != rowColor {
				rowColor = clr
				rowRun = 0
			}
			rowRun++
			if rowRun >= 5 {
				pen += rowRun - 2
			}

			if clr != colColor[c] {
				colColor[c] = clr
				colRun[c] = 0
			}
			colRun[c]++
			if colRun[c] >= 5 {
				pen += colRun[c] - 2
			}
		}
	}
	return pen
}

func blockPenalty(m *matrix.Matrix) int {
	pen := 0
	w := m.Width()
	for r := 0; r < w-1; r++ {
		for c := 0; c < w-1; c++ {
			clr := m.Get(r, c).Color
			if clr == m.Get(r+1, c).Color && clr == m.Get(r, c+1).Color && clr == m.Get(r+1, c+1).Color {
				pen += 3
			}
		}
	}
	return pen
}

var finderLikePattern = [7]matrix.Color{
	matrix.Dark, matrix.Light, matrix.Dark, matrix.Dark, matrix.Dark, matrix.Light, matrix.Dark,
}

// finderPenalty scans every row (isHorizontal) or column for the
// 1:1:3:1:1 finder-like pattern, crediting +40 when it is followed by
// four light cells of quiet zone on either side.
func finderPenalty(m *matrix.Matrix, isHorizontal bool) int {
	pen := 0
	w := m.Width()

	get := func(i, x int) matrix.Color {
		if isHorizontal {
			return m.Get(i, x).Color
		}
		return m.Get(x, i).Color
	}

	for i := 0; i < w; i++ {
		for j := 0; j <= w-7; j++ {
			matches := true
			for k := 0; k < 7; k++ {
				if get(i, j+k) != finderLikePattern[k] {
					matches = false
					break
				}
			}
			if !matches {
				continue
			}
			if quietZone(get, i, j-4, j, w) || quietZone(get, i, j+7, j+11, w) {
				pen += 40
			}
		}
	}
	return pen
}

// quietZone reports whether every in-bounds cell in [from, to) is
// light, the literal four-light-cells quiet-zone rule.
func quietZone(get func(i, x int) matrix.Color, i, from, to, width int) bool {
	for x := from; x < to; x++ {
		if x < 0 || x >= width {
			continue
		}
		if get(i, x) != matrix.Light {
			return false
		}
	}
	return true
}

// balancePenalty scores how far the dark/light ratio sits from 50%.
// CountDark only counts Mono Dark cells, so for a Poly symbol this
// stays flat across all eight mask candidates; poly's round-trip
// doesn't depend on which mask is chosen, so that's harmless here.
func balancePenalty(m *matrix.Matrix) int {
	dark := m.CountDark()
	w := m.Width()
	total := w * w
	ratio := dark * 200 / total
	if ratio < 100 {
		return 100 - ratio
	}
	return ratio - 100
}
