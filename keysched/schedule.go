// Package keysched implements the Rijndael key schedule: expanding a raw
// 16-, 24- or 32-byte key into the per-round subkeys consumed by the block
// pipeline, plus the passphrase-to-key derivation helpers that feed it.
package keysched

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/salah55s/cipher/sbox"
)

// ErrInvalidKeySize reports a raw key whose length is not 16, 24 or 32
// bytes. It is a configuration error raised before any data is touched.
var ErrInvalidKeySize = errors.New("invalid key size: must be 16, 24, or 32 bytes")

// Word is the 4-byte unit of key expansion.
type Word [4]byte

// rcon holds the round constants: rcon[i] = 2^i in GF(2^8). The table
// carries 30 entries although expansion never indexes past 9 (AES-128's
// last boundary word is 40, giving 40/4-1). The unreachable tail is kept
// rather than trimmed.
var rcon = [30]byte{
	0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1B, 0x36,
	0x6C, 0xD8, 0xAB, 0x4D, 0x9A, 0x2F, 0x5E, 0xBC, 0x63, 0xC6,
	0x97, 0x35, 0x6A, 0xD4, 0xB3, 0x7D, 0xFA, 0xEF, 0xC5, 0x91,
}

// params maps a raw key length in bytes to (rounds, key words).
func params(keyLen int) (rounds, nk int, err error) {
	switch keyLen {
	case 16:
		return 10, 4, nil
	case 24:
		return 12, 6, nil
	case 32:
		return 14, 8, nil
	default:
		return 0, 0, fmt.Errorf("%w: got %d bytes", ErrInvalidKeySize, keyLen)
	}
}

// Rounds returns the number of cipher rounds for a raw key of the given
// length in bytes.
func Rounds(keyLen int) (int, error) {
	rounds, _, err := params(keyLen)
	return rounds, err
}

// rotWord rotates a word left by one byte: [a0 a1 a2 a3] -> [a1 a2 a3 a0].
func rotWord(w Word) Word {
	return Word{w[1], w[2], w[3], w[0]}
}

// subWord substitutes every byte of a word through the forward S-box.
func subWord(w Word) Word {
	return Word{sbox.Sub(w[0]), sbox.Sub(w[1]), sbox.Sub(w[2]), sbox.Sub(w[3])}
}

// xorWords XORs two words byte-by-byte.
func xorWords(a, b Word) Word {
	return Word{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

// Expand derives the full expanded key from a raw key of 16, 24 or 32
// bytes. The result holds 4*(rounds+1) words: the first Nk words are the
// raw key itself, and each later word is the previous word - transformed on
// Nk boundaries by rotation, substitution and a round constant - XORed with
// the word Nk positions back. Expansion is deterministic: the same raw key
// always yields the same schedule.
func Expand(key []byte) ([]Word, error) {
	rounds, nk, err := params(len(key))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Expand",
			"key_len":  len(key),
		}).Error("Key expansion rejected raw key")
		return nil, err
	}

	numWords := 4 * (rounds + 1)
	words := make([]Word, 0, numWords)

	for i := 0; i < nk; i++ {
		words = append(words, Word{key[4*i], key[4*i+1], key[4*i+2], key[4*i+3]})
	}

	for i := nk; i < numWords; i++ {
		temp := words[i-1]

		switch {
		case i%nk == 0:
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon[i/nk-1]
		case nk > 6 && i%nk == 4:
			// AES-256 applies an extra substitution mid-key.
			temp = subWord(temp)
		}

		words = append(words, xorWords(words[i-nk], temp))
	}

	logrus.WithFields(logrus.Fields{
		"function":   "Expand",
		"key_len":    len(key),
		"rounds":     rounds,
		"num_words":  numWords,
		"round_keys": rounds + 1,
	}).Debug("Key expansion complete")

	return words, nil
}

// RoundKey extracts round key r from an expanded key as a 4x4 byte matrix.
// The four words at offset 4r form the columns of the matrix: byte b of
// word c lands at row b, column c.
func RoundKey(expanded []Word, round int) [4][4]byte {
	var rk [4][4]byte
	for c := 0; c < 4; c++ {
		w := expanded[4*round+c]
		for r := 0; r < 4; r++ {
			rk[r][c] = w[r]
		}
	}
	return rk
}
