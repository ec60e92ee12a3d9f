package qrcode

import "errors"

// Error values returned by the encoder and decoder. All errors surface
// as ordinary function results; none of these represent a panic or an
// unwound control path.
var (
	// ErrEmptyData is returned when Encode is given zero-length input.
	ErrEmptyData = errors.New("qrcode: empty data")
	// ErrDataTooLong is returned when data cannot fit at version 40 of
	// the requested EC level and palette, or exceeds a caller-fixed
	// version's capacity.
	ErrDataTooLong = errors.New("qrcode: data too long")

	// ErrInvalidVersion is returned for a version outside [1,40].
	ErrInvalidVersion = errors.New("qrcode: invalid version")
	// ErrInvalidECLevel is returned for an EC level outside L/M/Q/H.
	ErrInvalidECLevel = errors.New("qrcode: invalid error correction level")
	// ErrInvalidPalette is returned for a palette size outside [1,16].
	ErrInvalidPalette = errors.New("qrcode: invalid color palette")
	// ErrInvalidColor names a sampled or constructed color that does not
	// fit the symbol's palette. No function in this package returns it.
	ErrInvalidColor = errors.New("qrcode: invalid color")
	// ErrInvalidChar names a byte that cannot be represented in the
	// segment mode assigned to it. No function in this package returns
	// it; Build wraps the segmentation package's own error instead.
	ErrInvalidChar = errors.New("qrcode: invalid character")
	// ErrInvalidMaskingPattern is returned for a mask index outside [0,7].
	ErrInvalidMaskingPattern = errors.New("qrcode: invalid masking pattern")

	// ErrInvalidFormatInfo is returned when neither the main nor the
	// side format info copy rectifies within its error capacity.
	ErrInvalidFormatInfo = errors.New("qrcode: invalid format info")
	// ErrInvalidVersionInfo is returned when neither the BL nor the TR
	// version info copy rectifies within its error capacity.
	ErrInvalidVersionInfo = errors.New("qrcode: invalid version info")
	// ErrInvalidPaletteInfo is returned when neither palette info copy
	// rectifies within its error capacity.
	ErrInvalidPaletteInfo = errors.New("qrcode: invalid palette info")

	// ErrPixelOutOfBounds is returned when the homography projects a
	// required sample coordinate outside the source image.
	ErrPixelOutOfBounds = errors.New("qrcode: pixel out of bounds")
	// ErrErrorUncorrectable is returned when a Reed-Solomon block has
	// more errors than its capacity can correct.
	ErrErrorUncorrectable = errors.New("qrcode: error correction failed, too many errors")
	// ErrInfoRectificationFailed names the case where the Hamming
	// distance from a sampled info codeword to its nearest valid entry
	// exceeds that table's error capacity. Decode does not return it; it
	// reports ErrInvalidFormatInfo, ErrInvalidVersionInfo or
	// ErrInvalidPaletteInfo instead.
	ErrInfoRectificationFailed = errors.New("qrcode: info rectification failed")

	// ErrRegionTableFull names an exhausted region label table in the
	// binarizer. Decode does not return it: detection treats a full
	// table as a rejected candidate and goes on.
	ErrRegionTableFull = errors.New("qrcode: region table full")
	// ErrNoSymbolFound is returned when no finder triple groups into a
	// plausible symbol in the source image.
	ErrNoSymbolFound = errors.New("qrcode: no symbol found")
)
