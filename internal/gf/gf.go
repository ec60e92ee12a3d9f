// Package gf implements arithmetic over GF(2^8), the field used by the
// Reed-Solomon codec for payload error correction and for rectifying
// format/version metadata.
//
// The field is generated by the primitive polynomial x^8+x^4+x^3+x^2+1
// (0x11D) with base alpha=2. Elements are represented as plain bytes;
// addition is XOR and multiplication/division go through 256-entry
// exp/log tables.
package gf

// Element is a value in GF(2^8).
type Element = byte

const primitivePoly = 0x11D

// Exp holds alpha^i for i in [0,255), plus Exp[255] == Exp[0]; callers
// reduce exponent sums modulo 255 before indexing.
var Exp [256]byte

// Log holds the inverse of Exp; Log[0] is unused (sentinel 0xFF).
var Log [256]byte

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		Exp[i] = byte(x)
		Log[x] = byte(i)
		x <<= 1
		if x&0x100 != 0 {
			x ^= primitivePoly
		}
	}
	Exp[255] = Exp[0]
	Log[0] = 0xFF
}

// Add returns a+b in GF(2^8) (equivalently a-b, since char=2).
func Add(a, b Element) Element { return a ^ b }

// Sub returns a-b in GF(2^8).
func Sub(a, b Element) Element { return a ^ b }

// Mul returns a*b in GF(2^8).
func Mul(a, b Element) Element {
	if a == 0 || b == 0 {
		return 0
	}
	logSum := int(Log[a]) + int(Log[b])
	if logSum >= 255 {
		logSum -= 255
	}
	return Exp[logSum]
}

// Div returns a/b in GF(2^8). Panics if b is zero.
func Div(a, b Element) Element {
	if b == 0 {
		panic("gf: division by zero")
	}
	if a == 0 {
		return 0
	}
	logA, logB := int(Log[a]), int(Log[b])
	logSum := logA - logB
	if logSum < 0 {
		logSum += 255
	}
	return Exp[logSum]
}

// Pow returns alpha^p, p taken modulo 255.
func Pow(p int) Element {
	return Exp[((p%255)+255)%255]
}
