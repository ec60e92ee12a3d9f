package mask

import "testing"

func TestCheckerboard(t *testing.T) {
	cases := []struct {
		r, c int
		want bool
	}{
		{0, 0, true},
		{0, 1, false},
		{1, 1, true},
		{2, 3, false},
	}
	for _, c := range cases {
		if got := checkerboard(c.r, c.c); got != c.want {
			t.Errorf("checkerboard(%d,%d) = %v, want %v", c.r, c.c, got, c.want)
		}
	}
}

func TestHorizontalLines(t *testing.T) {
	if !horizontalLines(0, 5) || horizontalLines(1, 5) {
		t.Errorf("horizontalLines parity mismatch")
	}
}

func TestVerticalLines(t *testing.T) {
	if !verticalLines(5, 0) || !verticalLines(5, 3) || verticalLines(5, 1) {
		t.Errorf("verticalLines mod-3 mismatch")
	}
}

func TestModHandlesNegative(t *testing.T) {
	if mod(-1, 3) != 2 {
		t.Errorf("mod(-1,3) = %d, want 2", mod(-1, 3))
	}
}

func TestFloorDivHandlesNegative(t *testing.T) {
	if floorDiv(-1, 2) != -1 {
		t.Errorf("floorDiv(-1,2) = %d, want -1", floorDiv(-1, 2))
	}
	if floorDiv(3, 2) != 1 {
		t.Errorf("floorDiv(3,2) = %d, want 1", floorDiv(3, 2))
	}
}

func TestAllEightFunctionsDistinctOnSample(t *testing.T) {
	seen := map[string]bool{}
	for _, fn := range Functions {
		var bits []bool
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				bits = append(bits, fn(r, c))
			}
		}
		key := ""
		for _, b := range bits {
			if b {
				key += "1"
			} else {
				key += "0"
			}
		}
		if seen[key] {
			t.Errorf("two mask functions produced identical 4x4 patterns: %s", key)
		}
		seen[key] = true
	}
}
