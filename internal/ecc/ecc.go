// Package ecc implements the Reed-Solomon codec used for payload error
// correction: blockifying data codewords, computing the remainder
// polynomial per block, and rectifying received blocks by full
// Berlekamp-Massey/Chien/Forney error correction.
package ecc

import (
	"errors"
	"fmt"

	"github.com/qrforge/qrcode/internal/gf"
	"github.com/qrforge/qrcode/internal/qrtables"
)

// ErrUncorrectable is returned when a block's syndromes are nonzero but
// no error locator of degree <= capacity reproduces them.
var ErrUncorrectable = errors.New("ecc: block has more errors than it can correct")

// Block pairs a data codeword run with its Reed-Solomon remainder.
type Block struct {
	Data []byte
	ECC  []byte
}

// Blockify splits data (exactly matching the version/level's total data
// codeword count) into the data blocks described by the version/level's
// layout table: Group1.Count blocks of Group1.DataCodewords bytes
// followed by Group2.Count blocks of Group2.DataCodewords bytes.
func Blockify(data []byte, version, ecLevel int) ([][]byte, error) {
	layout := qrtables.Layout(version, ecLevel)
	g1Size := layout.Group1.Count * layout.Group1.DataCodewords
	g2Size := layout.Group2.Count * layout.Group2.DataCodewords
	if len(data) != g1Size+g2Size {
		return nil, fmt.Errorf("ecc: data length %d does not match block layout total %d", len(data), g1Size+g2Size)
	}

	blocks := make([][]byte, 0, layout.Group1.Count+layout.Group2.Count)
	for i := 0; i < layout.Group1.Count; i++ {
		start := i * layout.Group1.DataCodewords
		blocks = append(blocks, data[start:start+layout.Group1.DataCodewords])
	}
	base := g1Size
	for i := 0; i < layout.Group2.Count; i++ {
		start := base + i*layout.Group2.DataCodewords
		blocks = append(blocks, data[start:start+layout.Group2.DataCodewords])
	}
	return blocks, nil
}

// Encode computes the data blocks and their Reed-Solomon ECC blocks for
// a version/level.
func Encode(data []byte, version, ecLevel int) (dataBlocks [][]byte, eccBlocks [][]byte, err error) {
	dataBlocks, err = Blockify(data, version, ecLevel)
	if err != nil {
		return nil, nil, err
	}
	eccLen := qrtables.Layout(version, ecLevel).ECPerBlock
	eccBlocks = make([][]byte, len(dataBlocks))
	for i, b := range dataBlocks {
		eccBlocks[i] = remainder(b, eccLen)
	}
	return dataBlocks, eccBlocks, nil
}

// remainder performs polynomial long division of block (padded with
// eccCount zeros) by the generator polynomial for eccCount, using the
// log-form shortcut: for each nonzero leading coefficient, XOR the
// log-indexed generator coefficients into the following eccCount
// positions.
func remainder(block []byte, eccCount int) []byte {
	gen := gf.Generator[eccCount]
	res := make([]byte, len(block)+eccCount)
	copy(res, block)

	for i := 0; i < len(block); i++ {
		lead := res[i]
		if lead == 0 {
			continue
		}
		logLead := int(gf.Log[lead])
		for j, v := range gen {
			logSum := int(v) + logLead
			if logSum >= 255 {
				logSum -= 255
			}
			res[i+1+j] ^= gf.Exp[logSum]
		}
	}
	return res[len(block):]
}

// Rectify corrects a received block (data followed by its received ECC
// bytes) on a copy of its input and returns the corrected data
// codewords; data and received are not modified. It computes
// syndromes first; a clean block (all-zero syndromes) is returned
// unchanged. A dirty block runs Berlekamp-Massey to find the error
// locator polynomial, Chien search to find error positions, and
// Forney's formula to compute error magnitudes.
func Rectify(data, received []byte, eccCount int) ([]byte, error) {
	full := make([]byte, len(data)+len(received))
	copy(full, data)
	copy(full[len(data):], received)

	syn := syndromes(full, eccCount)
	if allZero(syn) {
		return data, nil
	}

	locator := berlekampMassey(syn)
	positions := chienSearch(locator, len(full))
	if len(positions)*2 > eccCount || len(positions) == 0 {
		return nil, fmt.Errorf("ecc: %w", ErrUncorrectable)
	}

	magnitudes := forney(syn, locator, positions)
	for i, pos := range positions {
		full[len(full)-1-pos] ^= magnitudes[i]
	}

	return full[:len(data)], nil
}

// syndromes computes S_k = sum_j block[j] * alpha^(k*j) for k in
// [0,eccCount), indexing block from its LAST byte (j=0 is the lowest
// order term of the received polynomial, matching the reversed
// convention of the encoding side's remainder-at-the-tail layout).
func syndromes(block []byte, eccCount int) []byte {
	syn := make([]byte, eccCount)
	n := len(block)
	for k := 0; k < eccCount; k++ {
		var s byte
		for j := 0; j < n; j++ {
			c := block[n-1-j]
			if c == 0 {
				continue
			}
			logC := int(gf.Log[c])
			logSum := (k*j + logC) % 255
			s ^= gf.Exp[logSum]
		}
		syn[k] = s
	}
	return syn
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// berlekampMassey computes the error locator polynomial from the
// syndrome sequence, returned in ascending-degree coefficient order
// with sigma[0] == 1.
func berlekampMassey(syn []byte) []byte {
	n := len(syn)
	sigma := make([]byte, n+1)
	prevSigma := make([]byte, n+1)
	sigma[0] = 1
	prevSigma[0] = 1
	l := 0
	m := 1
	b := byte(1)

	for i := 0; i < n; i++ {
		delta := syn[i]
		for j := 1; j <= l; j++ {
			delta ^= gf.Mul(sigma[j], syn[i-j])
		}
		if delta == 0 {
			m++
			continue
		}
		t := make([]byte, len(sigma))
		copy(t, sigma)

		coef := gf.Div(delta, b)
		for j := 0; j <= n-m; j++ {
			if j+m < len(sigma) {
				sigma[j+m] ^= gf.Mul(coef, prevSigma[j])
			}
		}

		if 2*l <= i {
			l = i + 1 - l
			copy(prevSigma, t)
			b = delta
			m = 1
		} else {
			m++
		}
	}
	return sigma[:l+1]
}

// chienSearch evaluates the error locator polynomial at every inverse
// root candidate alpha^-i for i in [0,n) and returns the positions
// (counted from the end of the block, 0-based) where it evaluates to
// zero.
func chienSearch(sigma []byte, n int) []int {
	var positions []int
	for i := 0; i < n; i++ {
		var sum byte
		for j, coeff := range sigma {
			if coeff == 0 {
				continue
			}
			sum ^= gf.Mul(coeff, gf.Pow(-j*i))
		}
		if sum == 0 {
			positions = append(positions, i)
		}
	}
	return positions
}

// forney computes error magnitudes at the given positions using the
// error evaluator polynomial omega(x) = (S(x)*sigma(x)) mod x^eccCount
// and sigma's formal derivative.
func forney(syn, sigma []byte, positions []int) []byte {
	eccCount := len(syn)
	omega := make([]byte, eccCount)
	for i := 0; i < eccCount; i++ {
		var sum byte
		for j := 0; j <= i && j < len(sigma); j++ {
			sum ^= gf.Mul(sigma[j], syn[i-j])
		}
		omega[i] = sum
	}

	magnitudes := make([]byte, len(positions))
	for idx, pos := range positions {
		x := gf.Pow(pos)

		var omegaVal byte
		for j, coeff := range omega {
			omegaVal ^= gf.Mul(coeff, gf.Pow(-j*pos))
		}

		var sigmaDerivVal byte
		for j := 1; j < len(sigma); j += 2 {
			sigmaDerivVal ^= gf.Mul(sigma[j], gf.Pow(-(j-1)*pos))
		}

		if sigmaDerivVal == 0 {
			magnitudes[idx] = 0
			continue
		}
		magnitudes[idx] = gf.Mul(omegaVal, gf.Div(x, sigmaDerivVal))
	}
	return magnitudes
}

// RectifyInfo chooses the candidate in validNumbers that minimizes
// Hamming distance to info; it succeeds if that distance is within
// errCapacity.
func RectifyInfo(info uint32, validNumbers []uint32, errCapacity int) (uint32, error) {
	best := validNumbers[0]
	bestDist := popcount(info ^ best)
	for _, v := range validNumbers[1:] {
		d := popcount(info ^ v)
		if d < bestDist {
			bestDist = d
			best = v
		}
	}
	if bestDist <= errCapacity {
		return best, nil
	}
	return 0, fmt.Errorf("ecc: %w", ErrInfoRectificationFailed)
}

// ErrInfoRectificationFailed is returned when no candidate in the valid
// table is within the error capacity of a received info codeword.
var ErrInfoRectificationFailed = errors.New("ecc: info rectification failed")

func popcount(v uint32) int {
	n := 0
	for v != 0 {
		n += int(v & 1)
		v >>= 1
	}
	return n
}
