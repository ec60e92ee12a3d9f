package binarize

import (
	"image"
	"image/color"
	"testing"
)

func checkerboard(w, h, cell int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(255)
			if (x/cell+y/cell)%2 == 0 {
				v = 0
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

func TestPrepareThresholdsCheckerboard(t *testing.T) {
	img := checkerboard(64, 64, 8)
	bin := Prepare(img)
	if bin.W != 64 || bin.H != 64 {
		t.Fatalf("dims = %dx%d, want 64x64", bin.W, bin.H)
	}
	if !bin.Dark(0, 0) {
		t.Errorf("Dark(0,0) = false, want true (black cell)")
	}
	if bin.Dark(8, 0) {
		t.Errorf("Dark(8,0) = true, want false (white cell)")
	}
}

func TestDarkOutOfBounds(t *testing.T) {
	bin := Prepare(checkerboard(16, 16, 4))
	if bin.Dark(-1, 0) || bin.Dark(16, 0) || bin.Dark(0, 16) {
		t.Errorf("Dark() out of bounds should report false")
	}
}

func TestGetRegionGroupsConnectedPixels(t *testing.T) {
	// 80 pixels wide so the threshold window (w/8) spans more than the
	// pixel itself.
	img := image.NewGray(image.Rect(0, 0, 80, 80))
	for y := 0; y < 80; y++ {
		for x := 0; x < 80; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			img.SetGray(x, y, color.Gray{Y: 0})
		}
	}
	bin := Prepare(img)
	region, err := bin.GetRegion(3, 3)
	if err != nil {
		t.Fatalf("GetRegion: %v", err)
	}
	if region.Area != 9 {
		t.Errorf("Area = %d, want 9", region.Area)
	}
	cx, cy := region.Centre()
	if cx != 3 || cy != 3 {
		t.Errorf("Centre() = (%d,%d), want (3,3)", cx, cy)
	}
}

func TestGetRegionCachesLabel(t *testing.T) {
	bin := Prepare(checkerboard(16, 16, 4))
	r1, err := bin.GetRegion(0, 0)
	if err != nil {
		t.Fatalf("GetRegion: %v", err)
	}
	r2, err := bin.GetRegion(1, 1)
	if err != nil {
		t.Fatalf("GetRegion: %v", err)
	}
	if r1 != r2 {
		t.Errorf("same region fetched twice returned different pointers")
	}
}

func TestRegionCentreDegenerate(t *testing.T) {
	r := &Region{SrcX: 5, SrcY: 7}
	x, y := r.Centre()
	if x != 5 || y != 7 {
		t.Errorf("Centre() on zero-area region = (%d,%d), want (5,7)", x, y)
	}
}

func TestChannelDarkIndependentOfLuminance(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if x < 8 {
				img.SetRGBA(x, y, color.RGBA{R: 0, G: 255, B: 255, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{R: 255, G: 0, B: 0, A: 255})
			}
		}
	}
	bin := Prepare(img)
	if !bin.ChannelDark(2, 2, 0) {
		t.Errorf("ChannelDark(R) = false on low-R half, want true")
	}
	if bin.ChannelDark(12, 2, 0) {
		t.Errorf("ChannelDark(R) = true on high-R half, want false")
	}
}
