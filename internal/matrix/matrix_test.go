package matrix

import "testing"

// debugString renders the matrix the way the reference implementation's
// test fixtures do: one character per module, '.' for Empty and a
// kind-specific upper/lower-case pair for dark/light otherwise.
func debugString(m *Matrix) string {
	out := make([]byte, 0, m.width*(m.width+1)+1)
	out = append(out, '\n')
	for r := 0; r < m.width; r++ {
		for c := 0; c < m.width; c++ {
			out = append(out, debugChar(m.Get(r, c)))
		}
		out = append(out, '\n')
	}
	return string(out)
}

func debugChar(mod Module) byte {
	dark := mod.Color == Dark
	switch mod.Kind {
	case Empty:
		return '.'
	case Func:
		if dark {
			return 'f'
		}
		return 'F'
	case Version:
		if dark {
			return 'v'
		}
		return 'V'
	case Format:
		if dark {
			return 'm'
		}
		return 'M'
	case Palette:
		if dark {
			return 'p'
		}
		return 'P'
	default:
		if dark {
			return 'd'
		}
		return 'D'
	}
}

func TestFinderPatternsVersion1(t *testing.T) {
	m := New(1)
	m.DrawFinderPatterns()
	want := "\n" +
		"fffffffF.....Ffffffff\n" +
		"fFFFFFfF.....FfFFFFFf\n" +
		"fFfffFfF.....FfFfffFf\n" +
		"fFfffFfF.....FfFfffFf\n" +
		"fFfffFfF.....FfFfffFf\n" +
		"fFFFFFfF.....FfFFFFFf\n" +
		"fffffffF.....Ffffffff\n" +
		"FFFFFFFF.....FFFFFFFF\n" +
		".....................\n" +
		".....................\n" +
		".....................\n" +
		".....................\n" +
		".....................\n" +
		"FFFFFFFF.............\n" +
		"fffffffF.............\n" +
		"fFFFFFfF.............\n" +
		"fFfffFfF.............\n" +
		"fFfffFfF.............\n" +
		"fFfffFfF.............\n" +
		"fFFFFFfF.............\n" +
		"fffffffF.............\n"
	if got := debugString(m); got != want {
		t.Errorf("DrawFinderPatterns() =\n%s\nwant\n%s", got, want)
	}
}

func TestTimingPatternVersion1(t *testing.T) {
	m := New(1)
	m.DrawTimingPattern()
	want := "\n" +
		".....................\n" +
		".....................\n" +
		".....................\n" +
		".....................\n" +
		".....................\n" +
		".....................\n" +
		"........fFfFf........\n" +
		".....................\n" +
		"......f..............\n" +
		"......F..............\n" +
		"......f..............\n" +
		"......F..............\n" +
		"......f..............\n" +
		".....................\n" +
		".....................\n" +
		".....................\n" +
		".....................\n" +
		".....................\n" +
		".....................\n" +
		".....................\n" +
		".....................\n"
	if got := debugString(m); got != want {
		t.Errorf("DrawTimingPattern() =\n%s\nwant\n%s", got, want)
	}
}

func TestAllFunctionPatternsVersion3(t *testing.T) {
	m := New(3)
	m.DrawAllFunctionPatterns()
	want := "\n" +
		"fffffffF.............Ffffffff\n" +
		"fFFFFFfF.............FfFFFFFf\n" +
		"fFfffFfF.............FfFfffFf\n" +
		"fFfffFfF.............FfFfffFf\n" +
		"fFfffFfF.............FfFfffFf\n" +
		"fFFFFFfF.............FfFFFFFf\n" +
		"fffffffFfFfFfFfFfFfFfFfffffff\n" +
		"FFFFFFFF.............FFFFFFFF\n" +
		"......f......................\n" +
		"......F......................\n" +
		"......f......................\n" +
		"......F......................\n" +
		"......f......................\n" +
		"......F......................\n" +
		"......f......................\n" +
		"......F......................\n" +
		"......f......................\n" +
		"......F......................\n" +
		"......f......................\n" +
		"......F......................\n" +
		"......f.............fffff....\n" +
		"FFFFFFFF............fFFFf....\n" +
		"fffffffF............fFfFf....\n" +
		"fFFFFFfF............fFFFf....\n" +
		"fFfffFfF............fffff....\n" +
		"fFfffFfF.....................\n" +
		"fFfffFfF.....................\n" +
		"fFFFFFfF.....................\n" +
		"fffffffF.....................\n"
	if got := debugString(m); got != want {
		t.Errorf("DrawAllFunctionPatterns() =\n%s\nwant\n%s", got, want)
	}
}

func TestReserveFormatAreaVersion1(t *testing.T) {
	m := New(1)
	m.ReserveFormatArea()
	want := "\n" +
		"........m............\n" +
		"........m............\n" +
		"........m............\n" +
		"........m............\n" +
		"........m............\n" +
		"........m............\n" +
		".....................\n" +
		"........m............\n" +
		"mmmmmm.mm....mmmmmmmm\n" +
		".....................\n" +
		".....................\n" +
		".....................\n" +
		".....................\n" +
		"........m............\n" +
		"........m............\n" +
		"........m............\n" +
		"........m............\n" +
		"........m............\n" +
		"........m............\n" +
		"........m............\n" +
		"........m............\n"
	if got := debugString(m); got != want {
		t.Errorf("ReserveFormatArea() =\n%s\nwant\n%s", got, want)
	}
}

func TestIndexWrapAround(t *testing.T) {
	m := New(1)
	w := m.Width()
	m.Set(-1, -1, Module{Kind: Func, Color: Dark})
	if got := m.Get(w-1, w-1); got.Kind != Func || got.Color != Dark {
		t.Errorf("Get(w-1,w-1) = %+v, want Func/Dark", got)
	}
	m.Set(0, 0, Module{Kind: Func, Color: Dark})
	if got := m.Get(-w, -w); got.Kind != Func || got.Color != Dark {
		t.Errorf("Get(-w,-w) = %+v, want Func/Dark", got)
	}
}

func TestEncRegionIterCountMatchesCapacity(t *testing.T) {
	m := New(1)
	m.DrawAllFunctionPatterns()
	m.ReserveFormatArea()

	it := NewEncRegionIter(1)
	count := 0
	for {
		r, c, ok := it.Next()
		if !ok {
			break
		}
		if m.Get(r, c).Kind == Empty {
			count++
		}
	}
	// version 1 L data capacity is 152 bits = 19 bytes.
	if count != 152+/* ecc bits for L at v1: 7 bytes */ 7*8 {
		t.Errorf("encoding region empty-cell count = %d, want %d", count, 152+7*8)
	}
}
