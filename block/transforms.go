package block

import (
	"github.com/salah55s/cipher/gf"
	"github.com/salah55s/cipher/sbox"
)

// SubBytes replaces every byte of the state through the forward S-box.
func SubBytes(s State) State {
	var out State
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = sbox.Sub(s[r][c])
		}
	}
	return out
}

// InvSubBytes replaces every byte of the state through the inverse S-box.
func InvSubBytes(s State) State {
	var out State
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = sbox.InvSub(s[r][c])
		}
	}
	return out
}

// ShiftRows rotates row r of the state left by r positions; row 0 is
// unchanged.
func ShiftRows(s State) State {
	var out State
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = s[r][(c+r)%4]
		}
	}
	return out
}

// InvShiftRows rotates row r of the state right by r positions, undoing
// ShiftRows.
func InvShiftRows(s State) State {
	var out State
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][(c+r)%4] = s[r][c]
		}
	}
	return out
}

// MixColumns replaces each column (s0..s3) by the fixed linear combination
// over GF(2^8):
//
//	s0' = 2*s0 ^ 3*s1 ^ s2 ^ s3
//	s1' = s0 ^ 2*s1 ^ 3*s2 ^ s3
//	s2' = s0 ^ s1 ^ 2*s2 ^ 3*s3
//	s3' = 3*s0 ^ s1 ^ s2 ^ 2*s3
func MixColumns(s State) State {
	var out State
	for c := 0; c < 4; c++ {
		s0, s1, s2, s3 := s[0][c], s[1][c], s[2][c], s[3][c]
		out[0][c] = gf.Double(s0) ^ gf.MulBy3(s1) ^ s2 ^ s3
		out[1][c] = s0 ^ gf.Double(s1) ^ gf.MulBy3(s2) ^ s3
		out[2][c] = s0 ^ s1 ^ gf.Double(s2) ^ gf.MulBy3(s3)
		out[3][c] = gf.MulBy3(s0) ^ s1 ^ s2 ^ gf.Double(s3)
	}
	return out
}

// InvMixColumns applies the matrix inverse of MixColumns over GF(2^8),
// using the coefficients 14, 11, 13, 9 in the analogous rotated pattern.
func InvMixColumns(s State) State {
	var out State
	for c := 0; c < 4; c++ {
		s0, s1, s2, s3 := s[0][c], s[1][c], s[2][c], s[3][c]
		out[0][c] = gf.MulBy14(s0) ^ gf.MulBy11(s1) ^ gf.MulBy13(s2) ^ gf.MulBy9(s3)
		out[1][c] = gf.MulBy9(s0) ^ gf.MulBy14(s1) ^ gf.MulBy11(s2) ^ gf.MulBy13(s3)
		out[2][c] = gf.MulBy13(s0) ^ gf.MulBy9(s1) ^ gf.MulBy14(s2) ^ gf.MulBy11(s3)
		out[3][c] = gf.MulBy11(s0) ^ gf.MulBy13(s1) ^ gf.MulBy9(s2) ^ gf.MulBy14(s3)
	}
	return out
}

// AddRoundKey XORs the state byte-by-byte with a round key. XOR is its own
// inverse, so the same operation serves encryption and decryption.
func AddRoundKey(s State, roundKey [4][4]byte) State {
	var out State
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = s[r][c] ^ roundKey[r][c]
		}
	}
	return out
}
