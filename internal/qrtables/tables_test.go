package qrtables

import "testing"

func TestWidth(t *testing.T) {
	cases := []struct {
		version int
		want    int
	}{
		{1, 21},
		{2, 25},
		{40, 177},
	}
	for _, c := range cases {
		if got := Width(c.version); got != c.want {
			t.Errorf("Width(%d) = %d, want %d", c.version, got, c.want)
		}
	}
}

func TestAlignmentPositionsVersion1Empty(t *testing.T) {
	if got := AlignmentPositions(1); len(got) != 0 {
		t.Errorf("AlignmentPositions(1) = %v, want empty", got)
	}
}

func TestAlignmentPositionsVersion40(t *testing.T) {
	want := []int16{6, 30, 58, 86, 114, 142, 170}
	got := AlignmentPositions(40)
	if len(got) != len(want) {
		t.Fatalf("AlignmentPositions(40) len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AlignmentPositions(40)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

// TestLayoutMatchesBitCapacity checks that every version/level's block
// layout totals exactly the byte capacity implied by VersionBitCapacity.
func TestLayoutMatchesBitCapacity(t *testing.T) {
	for v := 1; v <= 40; v++ {
		for ec := 0; ec < 4; ec++ {
			layout := Layout(v, ec)
			dataBytes := layout.Group1.Count*layout.Group1.DataCodewords + layout.Group2.Count*layout.Group2.DataCodewords
			wantBytes := BitCapacity(v, ec) / 8
			if dataBytes != wantBytes {
				t.Errorf("version %d level %d: layout data bytes = %d, want %d", v, ec, dataBytes, wantBytes)
			}
		}
	}
}

func TestFormatInfoTableSize(t *testing.T) {
	if len(FormatInfos) != 32 {
		t.Fatalf("FormatInfos has %d entries, want 32", len(FormatInfos))
	}
}

func TestVersionInfoCoordsTranspose(t *testing.T) {
	bl := VersionInfoBLCoords()
	tr := VersionInfoTRCoords()
	if len(bl) != 18 || len(tr) != 18 {
		t.Fatalf("expected 18 coords each, got bl=%d tr=%d", len(bl), len(tr))
	}
	for i := range bl {
		if tr[i].R != bl[i].C || tr[i].C != bl[i].R {
			t.Errorf("TR[%d] = %v is not transpose of BL[%d] = %v", i, tr[i], i, bl[i])
		}
	}
}
