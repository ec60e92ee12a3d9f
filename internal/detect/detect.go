// Package detect locates finder patterns in a binarized image and
// groups them into triples that plausibly form one symbol.
package detect

import (
	"math"
	"sort"

	"github.com/qrforge/qrcode/internal/binarize"
	"github.com/qrforge/qrcode/internal/geom"
)

// Finder is one located finder pattern: its four outer corners, the
// homography mapping its own 7x7 module grid onto the image, and its
// center in image space.
type Finder struct {
	ID      int
	H       *geom.Homography
	Corners [4]geom.Point
	Center  geom.Point
}

type datumLine struct {
	left, stone, right, y int
}

// lineScanner accumulates the last 6 run lengths of a horizontal scan
// and flags a 1:1:3:1:1 ratio finder line as it completes.
type lineScanner struct {
	buffer      [6]int
	hasPrev     bool
	prevDark    bool
	transitions int
	pos         int
}

func (s *lineScanner) advance(dark bool) (datumLine, bool) {
	s.pos++
	if s.hasPrev && s.prevDark == dark {
		s.buffer[5]++
		return datumLine{}, false
	}
	copy(s.buffer[0:5], s.buffer[1:6])
	s.buffer[5] = 1
	s.prevDark = dark
	s.hasPrev = true
	s.transitions++

	if !s.isFinderLine() {
		return datumLine{}, false
	}
	sum5 := sumBuf(s.buffer[0:5])
	return datumLine{
		left:  s.pos - sum5,
		stone: s.pos - sumBuf(s.buffer[2:5]),
		right: s.pos - s.buffer[4],
	}, true
}

func (s *lineScanner) isFinderLine() bool {
	if !(s.hasPrev && !s.prevDark && s.transitions >= 5) {
		return false
	}
	sum5 := sumBuf(s.buffer[0:5])
	avg := sum5 / 7
	tol := avg * 3 / 4
	ratio := [5]int{1, 1, 3, 1, 1}
	for i, r := range ratio {
		if s.buffer[i] < r*avg-tol || s.buffer[i] > r*avg+tol {
			return false
		}
	}
	return true
}

func sumBuf(b []int) int {
	s := 0
	for _, v := range b {
		s += v
	}
	return s
}

// LocateFinders scans every row of img for 1:1:3:1:1 candidate lines,
// validates each against its stone/ring region, and extracts a Finder
// per match.
func LocateFinders(img *binarize.Image) []*Finder {
	var finders []*Finder
	for y := 0; y < img.H; y++ {
		var scanner lineScanner
		for x := 0; x < img.W; x++ {
			dl, ok := scanner.advance(img.Dark(x, y))
			if !ok {
				continue
			}
			dl.y = y
			if !isFinder(img, dl) {
				continue
			}
			if f := constructFinder(img, dl, len(finders)); f != nil {
				finders = append(finders, f)
			}
		}
	}
	return finders
}

// isFinder validates a candidate datum line: the stone and ring must
// be different regions (not connected), with the stone occupying
// 20%..50% of the ring's area, and the line's outer edges must belong
// to the same region (the outer ring is unbroken).
func isFinder(img *binarize.Image, d datumLine) bool {
	left, err := img.GetRegion(d.left, d.y)
	if err != nil {
		return false
	}
	ring, err := img.GetRegion(d.right, d.y)
	if err != nil || ring.Area == 0 || ring != left {
		return false
	}
	stone, err := img.GetRegion(d.stone, d.y)
	if err != nil || stone == ring {
		return false
	}
	ratio := stone.Area * 100 / ring.Area
	return ratio > 20 && ratio < 50
}

func constructFinder(img *binarize.Image, d datumLine, id int) *Finder {
	color := img.Dark(d.right, d.y)
	corners := floodExtremes(img, d.right, d.y, color)
	src := [4]geom.Point{{X: 0, Y: 0}, {X: 7, Y: 0}, {X: 7, Y: 7}, {X: 0, Y: 7}}
	h, err := geom.Compute(src, corners)
	if err != nil {
		return nil
	}
	return &Finder{ID: id, H: h, Corners: corners, Center: h.Map(3.5, 3.5)}
}

// floodExtremes walks the connected same-color region starting at
// (x0, y0) and returns its four extremal corners (top-left, top-right,
// bottom-right, bottom-left), found by extremizing x+y and x-y across
// every visited pixel.
func floodExtremes(img *binarize.Image, x0, y0 int, color bool) [4]geom.Point {
	type pt struct{ x, y int }
	visited := map[pt]bool{{x0, y0}: true}
	stack := []pt{{x0, y0}}

	tl, tr, br, bl := pt{x0, y0}, pt{x0, y0}, pt{x0, y0}, pt{x0, y0}
	minSum, maxSum := x0+y0, x0+y0
	minDiff, maxDiff := x0-y0, x0-y0

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s := p.x + p.y; s < minSum {
			minSum, tl = s, p
		}
		if s := p.x + p.y; s > maxSum {
			maxSum, br = s, p
		}
		if dd := p.x - p.y; dd < minDiff {
			minDiff, bl = dd, p
		}
		if dd := p.x - p.y; dd > maxDiff {
			maxDiff, tr = dd, p
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := pt{p.x + dx, p.y + dy}
				if visited[n] || img.Dark(n.x, n.y) != color {
					continue
				}
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}

	return [4]geom.Point{
		{X: float64(tl.x), Y: float64(tl.y)},
		{X: float64(tr.x), Y: float64(tr.y)},
		{X: float64(br.x), Y: float64(br.y)},
		{X: float64(bl.x), Y: float64(bl.y)},
	}
}

// Group is a plausible symbol: three finders ordered [vertical, datum,
// horizontal] relative to the datum finder.
type Group struct {
	Finders [3]*Finder
	Score   float64
}

type orientation int

const (
	orientNone orientation = iota
	orientHorizontal
	orientVertical
)

// GroupFinders pairs up every finder as a potential datum against its
// best horizontal and vertical neighbor (the two others most nearly
// equidistant from it), returning groups sorted by ascending score
// (closer to 0 is a better-formed symbol).
func GroupFinders(finders []*Finder) []Group {
	var groups []Group
	for i1, f1 := range finders {
		ih, iv := -1, -1
		bestScore := 2.5

		for i2, f2 := range finders {
			if i2 == i1 {
				continue
			}
			o2, d2 := relativePosition(f1, f2)
			if o2 == orientNone {
				continue
			}
			for i3, f3 := range finders {
				if i3 == i2 || i3 == i1 {
					continue
				}
				o3, d3 := relativePosition(f1, f3)
				switch {
				case o2 == orientHorizontal && o3 == orientVertical:
					if score := math.Abs(1 - d2/d3); score < bestScore {
						ih, iv, bestScore = i2, i3, score
					}
				case o2 == orientVertical && o3 == orientHorizontal:
					if score := math.Abs(1 - d2/d3); score < bestScore {
						ih, iv, bestScore = i3, i2, score
					}
				}
			}
		}

		if ih >= 0 && iv >= 0 {
			groups = append(groups, Group{
				Finders: [3]*Finder{finders[iv], f1, finders[ih]},
				Score:   bestScore,
			})
		}
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].Score < groups[j].Score })
	return groups
}

func relativePosition(f1, f2 *Finder) (orientation, float64) {
	x, y := f1.H.Unmap(f2.Center)
	x = math.Abs(x - 3.5)
	y = math.Abs(y - 3.5)
	if y < 0.2*x {
		return orientHorizontal, x
	}
	if x < 0.2*y {
		return orientVertical, y
	}
	return orientNone, 0
}
