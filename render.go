package qrcode

import (
	"image"
	"image/color"

	"github.com/qrforge/qrcode/internal/matrix"
)

// Matrix is a built symbol: the module grid plus the metadata needed to
// decode it back. It is produced by Builder.Build and consumed by
// Render or, for testing, by sampling its modules directly.
type Matrix struct {
	inner   *matrix.Matrix
	version int
	ecLevel ECLevel
	palette Palette
	mask    int
}

// Metadata reports the symbol's version, EC level, palette, and chosen
// mask pattern.
func (m *Matrix) Metadata() Metadata {
	return Metadata{Version: m.version, ECLevel: m.ecLevel, Palette: m.palette, Mask: m.mask}
}

// Width returns the module width of the symbol (quiet zone excluded).
func (m *Matrix) Width() int { return m.inner.Width() }

// Render rasterizes the symbol at scale pixels per module, surrounding
// it with a 4-module quiet zone, the minimum specified by spec.md. Mono
// symbols render to grayscale; poly symbols render to RGB, one hue per
// module packed into its own color channel.
func (m *Matrix) Render(scale int) image.Image {
	const quietModules = 4
	w := m.inner.Width()
	side := (w + 2*quietModules) * scale

	if m.palette.IsMono() {
		img := image.NewGray(image.Rect(0, 0, side, side))
		for py := 0; py < side; py++ {
			for px := 0; px < side; px++ {
				img.SetGray(px, py, color.Gray{Y: pixelGray(m.inner, w, quietModules, scale, px, py)})
			}
		}
		return img
	}

	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for py := 0; py < side; py++ {
		for px := 0; px < side; px++ {
			img.SetRGBA(px, py, pixelRGBA(m.inner, w, quietModules, scale, px, py))
		}
	}
	return img
}

func moduleAt(m *matrix.Matrix, w, quietModules, scale, px, py int) (matrix.Module, bool) {
	mr := py/scale - quietModules
	mc := px/scale - quietModules
	if mr < 0 || mr >= w || mc < 0 || mc >= w {
		return matrix.Module{}, false
	}
	return m.Get(mr, mc), true
}

func pixelGray(m *matrix.Matrix, w, quietModules, scale, px, py int) uint8 {
	mod, ok := moduleAt(m, w, quietModules, scale, px, py)
	if !ok || !mod.Color.IsDark() {
		return 255
	}
	return 0
}

func pixelRGBA(m *matrix.Matrix, w, quietModules, scale, px, py int) color.RGBA {
	mod, ok := moduleAt(m, w, quietModules, scale, px, py)
	if !ok {
		return color.RGBA{255, 255, 255, 255}
	}
	if mod.Color == matrix.Light {
		return color.RGBA{255, 255, 255, 255}
	}
	if mod.Color == matrix.Dark {
		return color.RGBA{0, 0, 0, 255}
	}
	bits := int(mod.Color.Hue)
	chanValue := func(on bool) uint8 {
		if on {
			return 0
		}
		return 255
	}
	return color.RGBA{
		R: chanValue(bits&4 != 0),
		G: chanValue(bits&2 != 0),
		B: chanValue(bits&1 != 0),
		A: 255,
	}
}
