package qrcode

import (
	"image"
	"testing"
)

func TestDecodeAllEmpty(t *testing.T) {
	if got := DecodeAll(nil); len(got) != 0 {
		t.Errorf("DecodeAll(nil) = %v, want empty", got)
	}
}

func TestDecodeAllReportsPerImageErrors(t *testing.T) {
	blank := image.NewGray(image.Rect(0, 0, 50, 50))
	results := DecodeAll([]image.Image{blank, blank})
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	for i, r := range results {
		if r.Err == nil {
			t.Errorf("results[%d].Err = nil, want an error for a blank image", i)
		}
	}
}
