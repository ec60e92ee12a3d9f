// Package binarize turns a grayscale raster into black/white pixels and
// labels its 8-connected regions on demand, the input stage feeding the
// finder detector.
package binarize

import (
	"errors"
	"image"
)

// ErrRegionTableFull is returned when the region label table is
// exhausted; the caller should treat the current detection attempt as
// rejected rather than fail the whole decode.
var ErrRegionTableFull = errors.New("binarize: region label table full")

const maxLabel = 65534

// Region is a labeled connected component: its pixel count, running
// centroid, and the seed pixel the flood fill started from.
type Region struct {
	Label int
	Area  int
	SumX  int
	SumY  int
	SrcX  int
	SrcY  int
}

// Centre returns the region's centroid, rounded toward the seed pixel
// on a degenerate (zero-area) region.
func (r *Region) Centre() (int, int) {
	if r.Area == 0 {
		return r.SrcX, r.SrcY
	}
	return r.SumX / r.Area, r.SumY / r.Area
}

// Image is a binarized raster with on-demand region labeling. Dark
// reports true for black pixels; label 0 means "not yet labeled".
// chanDark additionally holds an independent adaptive threshold per
// R/G/B channel, sampled only when decoding a polychrome symbol.
type Image struct {
	W, H     int
	dark     []bool
	chanDark [3][]bool
	labels   []int32
	regions  []*Region
}

const slideBias = 0.05

// slideThreshold runs an adaptive local-mean threshold over one
// channel plane: each pixel is compared against the running mean of a
// window of width max(w/8, 1), biased down by 5%, matching a scanner's
// usual tolerance for uneven illumination. The running mean decays by
// (window-1)/window per pixel and is accumulated both left-to-right and
// right-to-left, so a pixel's mean covers its neighbors on both sides.
func slideThreshold(plane [][]float64, w, h int) []bool {
	window := w / 8
	if window < 1 {
		window = 1
	}
	decay := float64(window-1) / float64(window)
	out := make([]bool, w*h)
	avg := make([]float64, w)
	for y := 0; y < h; y++ {
		var fwd, bwd float64
		for x := 0; x < w; x++ {
			fwd = fwd*decay + plane[y][x]
			avg[x] = fwd
		}
		for x := w - 1; x >= 0; x-- {
			bwd = bwd*decay + plane[y][x]
			avg[x] += bwd
		}
		for x := 0; x < w; x++ {
			mean := avg[x] / float64(2*window)
			out[y*w+x] = plane[y][x] < mean*(1-slideBias)
		}
	}
	return out
}

// Prepare binarizes img on luminance for finder detection, and keeps
// each R/G/B channel plane around so ChannelDark can threshold them
// independently once a polychrome symbol's palette is known.
func Prepare(img image.Image) *Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray := make([][]float64, h)
	planes := [3][][]float64{make([][]float64, h), make([][]float64, h), make([][]float64, h)}
	for y := 0; y < h; y++ {
		row := make([]float64, w)
		rRow := make([]float64, w)
		gRow := make([]float64, w)
		bRow := make([]float64, w)
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			rf, gf, bf := float64(r>>8), float64(g>>8), float64(b>>8)
			row[x] = 0.299*rf + 0.587*gf + 0.114*bf
			rRow[x], gRow[x], bRow[x] = rf, gf, bf
		}
		gray[y] = row
		planes[0][y], planes[1][y], planes[2][y] = rRow, gRow, bRow
	}

	dark := slideThreshold(gray, w, h)
	var chanDark [3][]bool
	for ch := 0; ch < 3; ch++ {
		chanDark[ch] = slideThreshold(planes[ch], w, h)
	}

	return &Image{W: w, H: h, dark: dark, chanDark: chanDark, labels: make([]int32, w*h)}
}

func (img *Image) idx(x, y int) int { return y*img.W + x }

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && x < img.W && y >= 0 && y < img.H
}

// Dark reports whether (x, y) is a black pixel.
func (img *Image) Dark(x, y int) bool {
	if !img.inBounds(x, y) {
		return false
	}
	return img.dark[img.idx(x, y)]
}

// ChannelDark reports whether channel ch (0=R, 1=G, 2=B) is below its
// own local-mean threshold at (x, y), for sampling a polychrome
// symbol's per-hue bits.
func (img *Image) ChannelDark(x, y, ch int) bool {
	if !img.inBounds(x, y) {
		return false
	}
	return img.chanDark[ch][img.idx(x, y)]
}

// GetRegion returns the connected region containing (x, y), flood
// filling and caching it on first touch (a single stack-based fill that
// labels each pixel and folds it into the centroid/area sums as it is
// visited; repeat lookups are O(1) via the cached label).
func (img *Image) GetRegion(x, y int) (*Region, error) {
	if !img.inBounds(x, y) {
		return nil, ErrRegionTableFull
	}
	if lbl := img.labels[img.idx(x, y)]; lbl != 0 {
		return img.regions[lbl-1], nil
	}
	if len(img.regions) >= maxLabel {
		return nil, ErrRegionTableFull
	}

	color := img.dark[img.idx(x, y)]
	label := int32(len(img.regions) + 1)
	region := &Region{Label: int(label), SrcX: x, SrcY: y}

	queue := []image.Point{{X: x, Y: y}}
	img.labels[img.idx(x, y)] = label
	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		region.Area++
		region.SumX += p.X
		region.SumY += p.Y

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.X+dx, p.Y+dy
				if !img.inBounds(nx, ny) || img.dark[img.idx(nx, ny)] != color {
					continue
				}
				ni := img.idx(nx, ny)
				if img.labels[ni] != 0 {
					continue
				}
				img.labels[ni] = label
				queue = append(queue, image.Point{X: nx, Y: ny})
			}
		}
	}

	img.regions = append(img.regions, region)
	return region, nil
}
