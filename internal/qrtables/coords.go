package qrtables

// Coord is a (row, col) matrix coordinate using the Matrix's signed
// wrap-around convention (negative values index from the far edge).
type Coord struct{ R, C int }

// FormatInfoMainCoords returns the 15 coordinates of the main format
// info copy, in write/read (MSB-first) order.
func FormatInfoMainCoords() []Coord {
	return []Coord{
		{0, 8}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {7, 8},
		{8, 8},
		{8, 7}, {8, 5}, {8, 4}, {8, 3}, {8, 2}, {8, 1}, {8, 0},
	}
}

// FormatInfoSideCoords returns the 15 coordinates of the side (mirror)
// format info copy, in write/read (MSB-first) order. The always-dark
// module at (8,-8) is not part of the codeword and is drawn separately.
func FormatInfoSideCoords() []Coord {
	return []Coord{
		{8, -1}, {8, -2}, {8, -3}, {8, -4}, {8, -5}, {8, -6}, {8, -7},
		{-8, 8}, {-7, 8}, {-6, 8}, {-5, 8}, {-4, 8}, {-3, 8}, {-2, 8}, {-1, 8},
	}
}

// VersionInfoBLCoords returns the 18 coordinates of the bottom-left
// version info block, row-major, r descending within [0,5], c in
// {-9,-10,-11}.
func VersionInfoBLCoords() []Coord {
	coords := make([]Coord, 0, 18)
	for r := 5; r >= 0; r-- {
		for _, c := range []int{-9, -10, -11} {
			coords = append(coords, Coord{r, c})
		}
	}
	return coords
}

// VersionInfoTRCoords returns the 18 coordinates of the top-right
// version info block: the transpose of the BL block.
func VersionInfoTRCoords() []Coord {
	bl := VersionInfoBLCoords()
	tr := make([]Coord, len(bl))
	for i, c := range bl {
		tr[i] = Coord{c.C, c.R}
	}
	return tr
}

// PaletteInfoCoords returns the 12 coordinates for a polychrome palette
// info copy near either finder, selected with nearTopRight=true for the
// block just below the top-right finder and false for the block just
// right of the bottom-left finder (the TR block is the transpose of
// the BL block).
func PaletteInfoCoords(nearTopRight bool) []Coord {
	bl := []Coord{
		{-1, 10}, {-1, 9},
		{-2, 10}, {-2, 9},
		{-3, 10}, {-3, 9},
		{-4, 10}, {-4, 9},
		{-5, 10}, {-5, 9},
		{-6, 10}, {-6, 9},
	}
	if !nearTopRight {
		return bl
	}
	tr := make([]Coord, len(bl))
	for i, c := range bl {
		tr[i] = Coord{c.C, c.R}
	}
	return tr
}

// PaletteInfoBitCoord is the single always-dark reference bit used to
// distinguish mono from poly palettes.
var PaletteInfoBitCoord = Coord{8, -8}
