// Package qrtables holds the fixed per-version, per-error-level metadata
// tables that drive symbol layout, capacity checks, and block
// interleaving: alignment pattern coordinates, format/version info
// codewords, bit capacities, and data/ecc block layouts.
package qrtables

// Width returns the module width of a Normal(version) symbol.
func Width(version int) int {
	return version*4 + 17
}

// AlignmentPositions returns the alignment-pattern center coordinate list
// for the given version (1-40); version 1 has none.
func AlignmentPositions(version int) []int16 {
	return alignmentPatternPositions[version-1]
}

var alignmentPatternPositions = [40][]int16{
	{},
	{6, 18},
	{6, 22},
	{6, 26},
	{6, 30},
	{6, 34},
	{6, 22, 38},
	{6, 24, 42},
	{6, 26, 46},
	{6, 28, 50},
	{6, 30, 54},
	{6, 32, 58},
	{6, 34, 62},
	{6, 26, 46, 66},
	{6, 26, 48, 70},
	{6, 26, 50, 74},
	{6, 30, 54, 78},
	{6, 30, 56, 82},
	{6, 30, 58, 86},
	{6, 34, 62, 90},
	{6, 28, 50, 72, 94},
	{6, 26, 50, 74, 98},
	{6, 30, 54, 78, 102},
	{6, 28, 54, 80, 106},
	{6, 32, 58, 84, 110},
	{6, 30, 58, 86, 114},
	{6, 34, 62, 90, 118},
	{6, 26, 50, 74, 98, 122},
	{6, 30, 54, 78, 102, 126},
	{6, 26, 52, 78, 104, 130},
	{6, 30, 56, 82, 108, 134},
	{6, 34, 60, 86, 112, 138},
	{6, 30, 58, 86, 114, 142},
	{6, 34, 62, 90, 118, 146},
	{6, 30, 54, 78, 102, 126, 150},
	{6, 24, 50, 76, 102, 128, 154},
	{6, 28, 54, 80, 106, 132, 158},
	{6, 32, 58, 84, 110, 136, 162},
	{6, 26, 54, 82, 110, 138, 166},
	{6, 30, 58, 86, 114, 142, 170},
}

// VersionInfo returns the 18-bit BCH(18,6) codeword for versions 7..40.
func VersionInfo(version int) uint32 {
	return versionInfos[version-7]
}

// ParseVersionInfo recovers the version number from an already-
// rectified 18-bit version info codeword: the top 6 bits are the data.
func ParseVersionInfo(raw uint32) int {
	return int(raw >> 12)
}

// VersionInfos returns the fixed table of version info codewords, for
// callers that need it as a slice (e.g. rectification against a
// candidate list).
func VersionInfos() []uint32 {
	return versionInfos[:]
}

// VersionInfos is the fixed table of version info codewords, indexed
// from version 7 (index 0) to version 40 (index 33).
var versionInfos = [34]uint32{
	0x07c94, 0x085bc, 0x09a99, 0x0a4d3, 0x0bbf6, 0x0c762, 0x0d847, 0x0e60d, 0x0f928, 0x10b78,
	0x1145d, 0x12a17, 0x13532, 0x149a6, 0x15683, 0x168c9, 0x177ec, 0x18ec4, 0x191e1, 0x1afab,
	0x1b08e, 0x1cc1a, 0x1d33f, 0x1ed75, 0x1f250, 0x209d5, 0x216f0, 0x228ba, 0x2379f, 0x24b0b,
	0x2542e, 0x26a64, 0x27541, 0x28c69,
}

// FormatInfos is the fixed table of 32 format info codewords, indexed by
// ((ecLevel^1)<<3 | mask).
var FormatInfos = [32]uint32{
	0x5412, 0x5125, 0x5e7c, 0x5b4b, 0x45f9, 0x40ce, 0x4f97, 0x4aa0, 0x77c4, 0x72f3, 0x7daa, 0x789d,
	0x662f, 0x6318, 0x6c41, 0x6976, 0x1689, 0x13be, 0x1ce7, 0x19d0, 0x0762, 0x0255, 0x0d0c, 0x083b,
	0x355f, 0x3068, 0x3f31, 0x3a06, 0x24b4, 0x2183, 0x2eda, 0x2bed,
}

// FormatInfoMask is the XOR mask of the format info field. Every
// FormatInfos entry already has it applied, so the table values are
// written and read as they are.
const FormatInfoMask = 0x5412

// FormatInfo looks up the format info codeword for an EC level and mask
// pattern, with FormatInfoMask already applied.
func FormatInfo(ecLevel, mask int) uint32 {
	idx := ((ecLevel ^ 1) << 3) | mask
	return FormatInfos[idx]
}

// ParseFormatInfo inverts FormatInfo: given an already-rectified
// codeword (one of the FormatInfos table entries), it recovers the EC
// level and mask pattern that produced it.
func ParseFormatInfo(raw uint32) (ecLevel, mask int) {
	for idx, v := range FormatInfos {
		if v == raw {
			return (idx >> 3) ^ 1, idx & 7
		}
	}
	return 0, 0
}

// PaletteInfos is a (12,4) BCH-like table protecting the 4-bit
// polychrome channel-count index, using a degree-8 generator so 4 data
// bits plus 8 parity bits fill the 12-bit palette info field (see
// DESIGN.md: palette BCH table).
var PaletteInfos = func() [16]uint32 {
	var t [16]uint32
	for i := 0; i < 16; i++ {
		t[i] = bchEncode(uint32(i), 0x11D)
	}
	return t
}()

// bchEncode computes a systematic BCH codeword: data shifted into the
// high bits, followed by the remainder of division by poly over GF(2).
// bchEncode returns the systematic codeword for a 4-bit data value
// under an 8-degree generator: data occupies the top 4 bits, the
// 8-bit remainder of GF(2) division by poly fills the rest.
func bchEncode(data uint32, poly uint32) uint32 {
	degree := bitLen(poly) - 1
	val := data << uint(degree)
	rem := val
	for bitLen(rem) > degree {
		shift := bitLen(rem) - bitLen(poly)
		rem ^= poly << uint(shift)
	}
	return val | rem
}

// ParsePaletteInfo recovers the palette size from an already-rectified
// 12-bit palette info codeword: the top 4 bits are the data.
func ParsePaletteInfo(raw uint32) int {
	return int(raw >> 8)
}

func bitLen(v uint32) int {
	n := 0
	for v != 0 {
		n++
		v >>= 1
	}
	return n
}

// BitCapacity returns the total bit capacity of Normal(version) at the
// given EC level index (0=L,1=M,2=Q,3=H).
func BitCapacity(version, ecLevel int) int {
	return versionBitCapacity[version-1][ecLevel]
}

var versionBitCapacity = [40][4]int{
	{152, 128, 104, 72},
	{272, 224, 176, 128},
	{440, 352, 272, 208},
	{640, 512, 384, 288},
	{864, 688, 496, 368},
	{1088, 864, 608, 480},
	{1248, 992, 704, 528},
	{1552, 1232, 880, 688},
	{1856, 1456, 1056, 800},
	{2192, 1728, 1232, 976},
	{2592, 2032, 1440, 1120},
	{2960, 2320, 1648, 1264},
	{3424, 2672, 1952, 1440},
	{3688, 2920, 2088, 1576},
	{4184, 3320, 2360, 1784},
	{4712, 3624, 2600, 2024},
	{5176, 4056, 2936, 2264},
	{5768, 4504, 3176, 2504},
	{6360, 5016, 3560, 2728},
	{6888, 5352, 3880, 3080},
	{7456, 5712, 4096, 3248},
	{8048, 6256, 4544, 3536},
	{8752, 6880, 4912, 3712},
	{9392, 7312, 5312, 4112},
	{10208, 8000, 5744, 4304},
	{10960, 8496, 6032, 4768},
	{11744, 9024, 6464, 5024},
	{12248, 9544, 6968, 5288},
	{13048, 10136, 7288, 5608},
	{13880, 10984, 7880, 5960},
	{14744, 11640, 8264, 6344},
	{15640, 12328, 8920, 6760},
	{16568, 13048, 9368, 7208},
	{17528, 13800, 9848, 7688},
	{18448, 14496, 10288, 7888},
	{19472, 15312, 10832, 8432},
	{20528, 15936, 11408, 8768},
	{21616, 16816, 12016, 9136},
	{22496, 17728, 12656, 9776},
	{23648, 18672, 13328, 10208},
}

// BlockLayout describes how a version/ec-level's data codewords split
// across Reed-Solomon blocks.
type BlockLayout struct {
	ECPerBlock int
	Group1     BlockGroup
	Group2     BlockGroup // Count is 0 when a version/level has only one group.
}

// BlockGroup is a run of RS blocks sharing the same data codeword count.
type BlockGroup struct {
	Count          int
	DataCodewords  int
}

// Layout returns the block layout for Normal(version) at the given EC
// level index (0=L,1=M,2=Q,3=H). This reproduces ISO/IEC 18004 Annex D.
func Layout(version, ecLevel int) BlockLayout {
	return blockLayouts[version-1][ecLevel]
}

var blockLayouts = [40][4]BlockLayout{
	{ // v1
		{7, BlockGroup{1, 19}, BlockGroup{}},
		{10, BlockGroup{1, 16}, BlockGroup{}},
		{13, BlockGroup{1, 13}, BlockGroup{}},
		{17, BlockGroup{1, 9}, BlockGroup{}},
	},
	{ // v2
		{10, BlockGroup{1, 34}, BlockGroup{}},
		{16, BlockGroup{1, 28}, BlockGroup{}},
		{22, BlockGroup{1, 22}, BlockGroup{}},
		{28, BlockGroup{1, 16}, BlockGroup{}},
	},
	{ // v3
		{15, BlockGroup{1, 55}, BlockGroup{}},
		{26, BlockGroup{1, 44}, BlockGroup{}},
		{18, BlockGroup{2, 17}, BlockGroup{}},
		{22, BlockGroup{2, 13}, BlockGroup{}},
	},
	{ // v4
		{20, BlockGroup{1, 80}, BlockGroup{}},
		{18, BlockGroup{2, 32}, BlockGroup{}},
		{26, BlockGroup{2, 24}, BlockGroup{}},
		{16, BlockGroup{4, 9}, BlockGroup{}},
	},
	{ // v5
		{26, BlockGroup{1, 108}, BlockGroup{}},
		{24, BlockGroup{2, 43}, BlockGroup{}},
		{18, BlockGroup{2, 15}, BlockGroup{2, 16}},
		{22, BlockGroup{2, 11}, BlockGroup{2, 12}},
	},
	{ // v6
		{18, BlockGroup{2, 68}, BlockGroup{}},
		{16, BlockGroup{4, 27}, BlockGroup{}},
		{24, BlockGroup{4, 19}, BlockGroup{}},
		{28, BlockGroup{4, 15}, BlockGroup{}},
	},
	{ // v7
		{20, BlockGroup{2, 78}, BlockGroup{}},
		{18, BlockGroup{4, 31}, BlockGroup{}},
		{18, BlockGroup{2, 14}, BlockGroup{4, 15}},
		{26, BlockGroup{4, 13}, BlockGroup{1, 14}},
	},
	{ // v8
		{24, BlockGroup{2, 97}, BlockGroup{}},
		{22, BlockGroup{2, 38}, BlockGroup{2, 39}},
		{22, BlockGroup{4, 18}, BlockGroup{2, 19}},
		{26, BlockGroup{4, 14}, BlockGroup{2, 15}},
	},
	{ // v9
		{30, BlockGroup{2, 116}, BlockGroup{}},
		{22, BlockGroup{3, 36}, BlockGroup{2, 37}},
		{20, BlockGroup{4, 16}, BlockGroup{4, 17}},
		{24, BlockGroup{4, 12}, BlockGroup{4, 13}},
	},
	{ // v10
		{18, BlockGroup{2, 68}, BlockGroup{2, 69}},
		{26, BlockGroup{4, 43}, BlockGroup{1, 44}},
		{24, BlockGroup{6, 19}, BlockGroup{2, 20}},
		{28, BlockGroup{6, 15}, BlockGroup{2, 16}},
	},
	{ // v11
		{20, BlockGroup{4, 81}, BlockGroup{}},
		{30, BlockGroup{1, 50}, BlockGroup{4, 51}},
		{28, BlockGroup{4, 22}, BlockGroup{4, 23}},
		{24, BlockGroup{3, 12}, BlockGroup{8, 13}},
	},
	{ // v12
		{24, BlockGroup{2, 92}, BlockGroup{2, 93}},
		{22, BlockGroup{6, 36}, BlockGroup{2, 37}},
		{26, BlockGroup{4, 20}, BlockGroup{6, 21}},
		{28, BlockGroup{7, 14}, BlockGroup{4, 15}},
	},
	{ // v13
		{26, BlockGroup{4, 107}, BlockGroup{}},
		{22, BlockGroup{8, 37}, BlockGroup{1, 38}},
		{24, BlockGroup{8, 20}, BlockGroup{4, 21}},
		{22, BlockGroup{12, 11}, BlockGroup{4, 12}},
	},
	{ // v14
		{30, BlockGroup{3, 115}, BlockGroup{1, 116}},
		{24, BlockGroup{4, 40}, BlockGroup{5, 41}},
		{20, BlockGroup{11, 16}, BlockGroup{5, 17}},
		{24, BlockGroup{11, 12}, BlockGroup{5, 13}},
	},
	{ // v15
		{22, BlockGroup{5, 87}, BlockGroup{1, 88}},
		{24, BlockGroup{5, 41}, BlockGroup{5, 42}},
		{30, BlockGroup{5, 24}, BlockGroup{7, 25}},
		{24, BlockGroup{11, 12}, BlockGroup{7, 13}},
	},
	{ // v16
		{24, BlockGroup{5, 98}, BlockGroup{1, 99}},
		{28, BlockGroup{7, 45}, BlockGroup{3, 46}},
		{24, BlockGroup{15, 19}, BlockGroup{2, 20}},
		{30, BlockGroup{3, 15}, BlockGroup{13, 16}},
	},
	{ // v17
		{28, BlockGroup{1, 107}, BlockGroup{5, 108}},
		{28, BlockGroup{10, 46}, BlockGroup{1, 47}},
		{28, BlockGroup{1, 22}, BlockGroup{15, 23}},
		{28, BlockGroup{2, 14}, BlockGroup{17, 15}},
	},
	{ // v18
		{30, BlockGroup{5, 120}, BlockGroup{1, 121}},
		{26, BlockGroup{9, 43}, BlockGroup{4, 44}},
		{28, BlockGroup{17, 22}, BlockGroup{1, 23}},
		{28, BlockGroup{2, 14}, BlockGroup{19, 15}},
	},
	{ // v19
		{28, BlockGroup{3, 113}, BlockGroup{4, 114}},
		{26, BlockGroup{3, 44}, BlockGroup{11, 45}},
		{26, BlockGroup{17, 21}, BlockGroup{4, 22}},
		{26, BlockGroup{9, 13}, BlockGroup{16, 14}},
	},
	{ // v20
		{28, BlockGroup{3, 107}, BlockGroup{5, 108}},
		{26, BlockGroup{3, 41}, BlockGroup{13, 42}},
		{30, BlockGroup{15, 24}, BlockGroup{5, 25}},
		{28, BlockGroup{15, 15}, BlockGroup{10, 16}},
	},
	{ // v21
		{28, BlockGroup{4, 116}, BlockGroup{4, 117}},
		{26, BlockGroup{17, 42}, BlockGroup{}},
		{28, BlockGroup{17, 22}, BlockGroup{6, 23}},
		{30, BlockGroup{19, 16}, BlockGroup{6, 17}},
	},
	{ // v22
		{28, BlockGroup{2, 111}, BlockGroup{7, 112}},
		{28, BlockGroup{17, 46}, BlockGroup{}},
		{30, BlockGroup{7, 24}, BlockGroup{16, 25}},
		{24, BlockGroup{34, 13}, BlockGroup{}},
	},
	{ // v23
		{30, BlockGroup{4, 121}, BlockGroup{5, 122}},
		{28, BlockGroup{4, 47}, BlockGroup{14, 48}},
		{30, BlockGroup{11, 24}, BlockGroup{14, 25}},
		{30, BlockGroup{16, 15}, BlockGroup{14, 16}},
	},
	{ // v24
		{30, BlockGroup{6, 117}, BlockGroup{4, 118}},
		{28, BlockGroup{6, 45}, BlockGroup{14, 46}},
		{30, BlockGroup{11, 24}, BlockGroup{16, 25}},
		{30, BlockGroup{30, 16}, BlockGroup{2, 17}},
	},
	{ // v25
		{26, BlockGroup{8, 106}, BlockGroup{4, 107}},
		{28, BlockGroup{8, 47}, BlockGroup{13, 48}},
		{30, BlockGroup{7, 24}, BlockGroup{22, 25}},
		{30, BlockGroup{22, 15}, BlockGroup{13, 16}},
	},
	{ // v26
		{28, BlockGroup{10, 114}, BlockGroup{2, 115}},
		{28, BlockGroup{19, 46}, BlockGroup{4, 47}},
		{28, BlockGroup{28, 22}, BlockGroup{6, 23}},
		{30, BlockGroup{33, 16}, BlockGroup{4, 17}},
	},
	{ // v27
		{30, BlockGroup{8, 122}, BlockGroup{4, 123}},
		{28, BlockGroup{22, 45}, BlockGroup{3, 46}},
		{30, BlockGroup{8, 23}, BlockGroup{26, 24}},
		{30, BlockGroup{12, 15}, BlockGroup{28, 16}},
	},
	{ // v28
		{30, BlockGroup{3, 117}, BlockGroup{10, 118}},
		{28, BlockGroup{3, 45}, BlockGroup{23, 46}},
		{30, BlockGroup{4, 24}, BlockGroup{31, 25}},
		{30, BlockGroup{11, 15}, BlockGroup{31, 16}},
	},
	{ // v29
		{30, BlockGroup{7, 116}, BlockGroup{7, 117}},
		{28, BlockGroup{21, 45}, BlockGroup{7, 46}},
		{30, BlockGroup{1, 23}, BlockGroup{37, 24}},
		{30, BlockGroup{19, 15}, BlockGroup{26, 16}},
	},
	{ // v30
		{30, BlockGroup{5, 115}, BlockGroup{10, 116}},
		{28, BlockGroup{19, 47}, BlockGroup{10, 48}},
		{30, BlockGroup{15, 24}, BlockGroup{25, 25}},
		{30, BlockGroup{23, 15}, BlockGroup{25, 16}},
	},
	{ // v31
		{30, BlockGroup{13, 115}, BlockGroup{3, 116}},
		{28, BlockGroup{2, 46}, BlockGroup{29, 47}},
		{30, BlockGroup{42, 24}, BlockGroup{1, 25}},
		{30, BlockGroup{23, 15}, BlockGroup{28, 16}},
	},
	{ // v32
		{30, BlockGroup{17, 115}, BlockGroup{}},
		{28, BlockGroup{10, 46}, BlockGroup{23, 47}},
		{30, BlockGroup{10, 24}, BlockGroup{35, 25}},
		{30, BlockGroup{19, 15}, BlockGroup{35, 16}},
	},
	{ // v33
		{30, BlockGroup{17, 115}, BlockGroup{1, 116}},
		{28, BlockGroup{14, 46}, BlockGroup{21, 47}},
		{30, BlockGroup{29, 24}, BlockGroup{19, 25}},
		{30, BlockGroup{11, 15}, BlockGroup{46, 16}},
	},
	{ // v34
		{30, BlockGroup{13, 115}, BlockGroup{6, 116}},
		{28, BlockGroup{14, 46}, BlockGroup{23, 47}},
		{30, BlockGroup{44, 24}, BlockGroup{7, 25}},
		{30, BlockGroup{59, 16}, BlockGroup{1, 17}},
	},
	{ // v35
		{30, BlockGroup{12, 121}, BlockGroup{7, 122}},
		{28, BlockGroup{12, 47}, BlockGroup{26, 48}},
		{30, BlockGroup{39, 24}, BlockGroup{14, 25}},
		{30, BlockGroup{22, 15}, BlockGroup{41, 16}},
	},
	{ // v36
		{30, BlockGroup{6, 121}, BlockGroup{14, 122}},
		{28, BlockGroup{6, 47}, BlockGroup{34, 48}},
		{30, BlockGroup{46, 24}, BlockGroup{10, 25}},
		{30, BlockGroup{2, 15}, BlockGroup{64, 16}},
	},
	{ // v37
		{30, BlockGroup{17, 122}, BlockGroup{4, 123}},
		{28, BlockGroup{29, 46}, BlockGroup{14, 47}},
		{30, BlockGroup{49, 24}, BlockGroup{10, 25}},
		{30, BlockGroup{24, 15}, BlockGroup{46, 16}},
	},
	{ // v38
		{30, BlockGroup{4, 122}, BlockGroup{18, 123}},
		{28, BlockGroup{13, 46}, BlockGroup{32, 47}},
		{30, BlockGroup{48, 24}, BlockGroup{14, 25}},
		{30, BlockGroup{42, 15}, BlockGroup{32, 16}},
	},
	{ // v39
		{30, BlockGroup{20, 117}, BlockGroup{4, 118}},
		{28, BlockGroup{40, 47}, BlockGroup{7, 48}},
		{30, BlockGroup{43, 24}, BlockGroup{22, 25}},
		{30, BlockGroup{10, 15}, BlockGroup{67, 16}},
	},
	{ // v40
		{30, BlockGroup{19, 118}, BlockGroup{6, 119}},
		{28, BlockGroup{18, 47}, BlockGroup{31, 48}},
		{30, BlockGroup{34, 24}, BlockGroup{34, 25}},
		{30, BlockGroup{20, 15}, BlockGroup{61, 16}},
	},
}

// ErrorCorrectionCapacity returns floor((ecc_len-p)/2), the byte error
// correction capacity per block, where p is the codex protection offset
// for small versions (ISO/IEC 18004 Annex D footnote values).
func ErrorCorrectionCapacity(version, ecLevel int) int {
	p := 0
	switch {
	case version == 1 && ecLevel == 0:
		p = 3
	case version == 2 && ecLevel == 0, version == 1 && ecLevel == 1:
		p = 2
	case version == 1, version == 3 && ecLevel == 0:
		p = 1
	}
	return (Layout(version, ecLevel).ECPerBlock - p) / 2
}
