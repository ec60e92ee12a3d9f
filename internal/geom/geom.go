// Package geom implements the projective homography used to map
// between module coordinates and image pixels, the spiral alignment
// search, and the jiggle refinement that fine-tunes a symbol's fit.
package geom

import (
	"errors"
	"math"

	"github.com/qrforge/qrcode/internal/binarize"
)

// ErrDegenerate is returned when four correspondence points do not
// determine an invertible projective transform.
var ErrDegenerate = errors.New("geom: degenerate point correspondence")

// Point is an image-space coordinate.
type Point struct {
	X, Y float64
}

// Slope is the directed difference between two points, used for cross
// products when estimating module size and area thresholds.
type Slope struct {
	DX, DY float64
}

// NewSlope returns the slope from a to b.
func NewSlope(a, b Point) Slope { return Slope{DX: b.X - a.X, DY: b.Y - a.Y} }

// Cross returns the 2D cross product of two slopes.
func (s Slope) Cross(o Slope) float64 { return s.DX*o.DY - s.DY*o.DX }

// Homography is an 8-parameter projective transform: 8 coefficients
// a..h with the implicit 9th fixed at 1, mapping (x, y) -> ((ax+by+c)/
// (gx+hy+1), (dx+ey+f)/(gx+hy+1)).
type Homography struct {
	P [8]float64
}

// Compute solves for the homography mapping each src[i] to dst[i],
// i = 0..3, via Gaussian elimination on the 8x8 linear system.
func Compute(src, dst [4]Point) (*Homography, error) {
	var a [8][9]float64
	for i := 0; i < 4; i++ {
		x, y := src[i].X, src[i].Y
		u, v := dst[i].X, dst[i].Y

		a[2*i] = [9]float64{x, y, 1, 0, 0, 0, -u * x, -u * y, u}
		a[2*i+1] = [9]float64{0, 0, 0, x, y, 1, -v * x, -v * y, v}
	}

	sol, err := solve8x8(a)
	if err != nil {
		return nil, err
	}
	return &Homography{P: sol}, nil
}

func solve8x8(m [8][9]float64) ([8]float64, error) {
	var zero [8]float64
	for col := 0; col < 8; col++ {
		pivot := col
		best := math.Abs(m[col][col])
		for r := col + 1; r < 8; r++ {
			if v := math.Abs(m[r][col]); v > best {
				best = v
				pivot = r
			}
		}
		if best < 1e-12 {
			return zero, ErrDegenerate
		}
		m[col], m[pivot] = m[pivot], m[col]

		inv := 1 / m[col][col]
		for c := col; c < 9; c++ {
			m[col][c] *= inv
		}
		for r := 0; r < 8; r++ {
			if r == col {
				continue
			}
			factor := m[r][col]
			if factor == 0 {
				continue
			}
			for c := col; c < 9; c++ {
				m[r][c] -= factor * m[col][c]
			}
		}
	}
	var sol [8]float64
	for i := 0; i < 8; i++ {
		sol[i] = m[i][8]
	}
	return sol, nil
}

// Map applies the homography to a module-space coordinate, returning
// the corresponding image pixel.
func (h *Homography) Map(x, y float64) Point {
	denom := h.P[6]*x + h.P[7]*y + 1
	return Point{
		X: (h.P[0]*x + h.P[1]*y + h.P[2]) / denom,
		Y: (h.P[3]*x + h.P[4]*y + h.P[5]) / denom,
	}
}

// Unmap inverts Map by solving its 2x2 linear system for the module
// coordinate, returning (0, 0) when that system is singular; used to
// classify neighboring finders relative to a datum finder.
func (h *Homography) Unmap(p Point) (x, y float64) {
	a := h.P[0] - p.X*h.P[6]
	b := h.P[1] - p.X*h.P[7]
	c := p.X - h.P[2]
	d := h.P[3] - p.Y*h.P[6]
	e := h.P[4] - p.Y*h.P[7]
	f := p.Y - h.P[5]

	det := a*e - b*d
	if det == 0 {
		return 0, 0
	}
	x = (c*e - b*f) / det
	y = (a*f - c*d) / det
	return x, y
}

// LocateAlignmentPattern spirals outward from seed looking for a
// roughly-square black region of area below threshold that also
// passes a 1:1:1 run-length check in both directions, the standard
// way to pin down the alignment stone once the three finders are
// known.
func LocateAlignmentPattern(img *binarize.Image, seed Point, moduleWidth, threshold float64) (Point, bool) {
	dx := [4]int{1, 0, -1, 0}
	dy := [4]int{0, -1, 0, 1}

	x, y := int(seed.X), int(seed.Y)
	dir := 0
	runLen := 1
	rejected := map[[2]int]bool{}
	maxSteps := int(moduleWidth * 15)
	if maxSteps < 1 {
		maxSteps = 1
	}

	for runLen < maxSteps {
		for i := 0; i < runLen; i++ {
			if img.Dark(x, y) {
				region, err := img.GetRegion(x, y)
				if err == nil {
					cx, cy := region.Centre()
					key := [2]int{cx, cy}
					if !rejected[key] {
						if float64(region.Area) <= threshold &&
							verifyRun(img, cx, cy, moduleWidth, threshold, true) &&
							verifyRun(img, cx, cy, moduleWidth, threshold, false) {
							return Point{X: float64(cx), Y: float64(cy)}, true
						}
						rejected[key] = true
					}
				}
			}
			x += dx[dir]
			y += dy[dir]
		}
		dir = (dir + 1) & 3
		if dir&1 == 0 {
			runLen++
		}
	}
	return Point{}, false
}

// verifyRun checks a 1:1:1 light/dark/light run of width ~moduleWidth
// centered at (cx, cy), horizontally if horiz else vertically.
func verifyRun(img *binarize.Image, cx, cy int, moduleWidth, threshold float64, horiz bool) bool {
	tol := moduleWidth * 0.75
	center := img.Dark(cx, cy)
	for _, sign := range []int{-1, 1} {
		steps := 0
		for steps < int(moduleWidth+tol)+1 {
			steps++
			var px, py int
			if horiz {
				px, py = cx+sign*steps, cy
			} else {
				px, py = cx, cy+sign*steps
			}
			if img.Dark(px, py) != center {
				break
			}
		}
		if math.Abs(float64(steps)-moduleWidth) > tol {
			return false
		}
	}
	return true
}

// CellFitness samples a 3x3 sub-grid of a module cell (x, y) in module
// space and scores +1 per dark sample, -1 per light sample, the vote
// that the jiggle refinement and the initial symbol-fit check both
// build on.
func CellFitness(img *binarize.Image, h *Homography, x, y int) int {
	offsets := [3]float64{0.3, 0.5, 0.7}
	score := 0
	for _, dy := range offsets {
		for _, dx := range offsets {
			p := h.Map(float64(x)+dx, float64(y)+dy)
			if img.Dark(int(p.X), int(p.Y)) {
				score++
			} else {
				score--
			}
		}
	}
	return score
}

// RingFitness scores the square ring of radius r around (cx, cy); used
// to reward a finder/alignment pattern's light/dark ring structure.
func RingFitness(img *binarize.Image, h *Homography, cx, cy, r int) int {
	score := 0
	for i := 0; i < r*2; i++ {
		score += CellFitness(img, h, cx-r+i, cy-r)
		score += CellFitness(img, h, cx-r, cy+r-i)
		score += CellFitness(img, h, cx+r, cy-r+i)
		score += CellFitness(img, h, cx+r-i, cy+r)
	}
	return score
}

func finderFitness(img *binarize.Image, h *Homography, x, y int) int {
	x, y = x+3, y+3
	return CellFitness(img, h, x, y) + RingFitness(img, h, x, y, 1) - RingFitness(img, h, x, y, 2) + RingFitness(img, h, x, y, 3)
}

func alignmentFitness(img *binarize.Image, h *Homography, x, y int) int {
	return CellFitness(img, h, x, y) - RingFitness(img, h, x, y, 1) + RingFitness(img, h, x, y, 2)
}

// SymbolFitness scores the full candidate homography against the
// expected timing, finder, and alignment pattern cells for a symbol
// of the given module width, with alignmentCoords the per-axis
// alignment pattern center positions (empty for version 1).
func SymbolFitness(img *binarize.Image, h *Homography, width int, alignmentCoords []int) int {
	score := 0
	for i := 7; i < width-7; i++ {
		flip := 1
		if i&1 == 1 {
			flip = -1
		}
		score += CellFitness(img, h, i, 6) * flip
		score += CellFitness(img, h, 6, i) * flip
	}

	score += finderFitness(img, h, 0, 0)
	score += finderFitness(img, h, width-7, 0)
	score += finderFitness(img, h, 0, width-7)

	if len(alignmentCoords) == 0 {
		return score
	}
	inner := alignmentCoords[1 : len(alignmentCoords)-1]
	for _, i := range inner {
		score += alignmentFitness(img, h, 6, i)
		score += alignmentFitness(img, h, i, 6)
	}
	for _, i := range alignmentCoords[1:] {
		for _, j := range alignmentCoords[1:] {
			score += alignmentFitness(img, h, i, j)
		}
	}
	return score
}

// MaxFitnessScore returns the theoretical maximum of SymbolFitness for
// a symbol of the given module width whose alignment coordinate list
// has alignmentCount entries: every cell SymbolFitness checks scores
// the full 9 votes.
func MaxFitnessScore(width, alignmentCount int) int {
	cells := 49 * 3
	cells += (width - 14) * 2
	if alignmentCount >= 2 {
		// SymbolFitness visits (n-1)^2 + 2(n-2) = n^2-3 alignment patterns.
		cells += 25 * (alignmentCount*alignmentCount - 3)
	}
	return cells * 9
}

// JiggleHomography perturbs each of the 8 homography parameters by a
// shrinking delta over 6 passes, keeping any change that improves
// SymbolFitness, and accepts the result only if the final fitness
// reaches at least half the theoretical maximum.
func JiggleHomography(img *binarize.Image, h Homography, width int, alignmentCoords []int) (Homography, bool) {
	best := SymbolFitness(img, &h, width, alignmentCoords)

	var adjustments [8]float64
	for i := range adjustments {
		adjustments[i] = h.P[i] * 0.04
	}

	for pass := 0; pass < 6; pass++ {
		for i := 0; i < 8; i++ {
			old := h.P[i]
			step := adjustments[i]
			for j := 0; j < 2; j++ {
				if j&1 == 0 {
					h.P[i] = old - step
				} else {
					h.P[i] = old + step
				}
				test := SymbolFitness(img, &h, width, alignmentCoords)
				if test > best {
					best = test
					old = h.P[i]
				} else {
					h.P[i] = old
				}
			}
		}
		for i := range adjustments {
			adjustments[i] *= 0.5
		}
	}

	maxScore := MaxFitnessScore(width, len(alignmentCoords))
	if best >= maxScore/2 {
		return h, true
	}
	return Homography{}, false
}
