// Package gf implements arithmetic over the finite field GF(2^8) with the
// reduction polynomial x^8 + x^4 + x^3 + x + 1 (0x11B), the field AES is
// defined over.
//
// In GF(2^8) addition is XOR and multiplication is carry-less polynomial
// multiplication reduced modulo 0x11B, so every operation stays within a
// single byte. The MixColumns transformation and its inverse only ever
// multiply by the fixed constants 2, 3, 9, 11, 13 and 14; this package
// provides a general multiply plus dedicated helpers for those constants.
//
// All functions are pure byte-in/byte-out with no error paths: every byte
// value is a valid field element.
package gf

// Double multiplies b by 2 in GF(2^8). This is the xtime operation every
// other multiplication is built from: shift left one bit and, if the shifted
// out bit was set, reduce by XORing with the low byte of the field
// polynomial (0x1B).
func Double(b byte) byte {
	r := b << 1
	if b&0x80 != 0 {
		r ^= 0x1B
	}
	return r
}

// Multiply computes the product a*b in GF(2^8) by peasant multiplication:
// walk the bits of b from least to most significant, accumulating a copy of
// a that is doubled once per bit. Commutative, and zero whenever either
// operand is zero.
func Multiply(a, b byte) byte {
	var product byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			product ^= a
		}
		a = Double(a)
		b >>= 1
	}
	return product
}

// MulBy3 multiplies b by 3: 3b = 2b + b.
func MulBy3(b byte) byte {
	return Double(b) ^ b
}

// MulBy9 multiplies b by 9: 9b = 8b + b.
func MulBy9(b byte) byte {
	return Double(Double(Double(b))) ^ b
}

// MulBy11 multiplies b by 11 (0x0B): 11b = 2(4b + b) + b.
func MulBy11(b byte) byte {
	return Double(Double(Double(b))^b) ^ b
}

// MulBy13 multiplies b by 13 (0x0D): 13b = 4(2b + b) + b.
func MulBy13(b byte) byte {
	return Double(Double(Double(b)^b)) ^ b
}

// MulBy14 multiplies b by 14 (0x0E): 14b = 2(2(2b + b) + b).
func MulBy14(b byte) byte {
	return Double(Double(Double(b)^b) ^ b)
}
