// Package aes implements the instrumented low-level AES cipher: a
// from-scratch Rijndael engine at 128- and 256-bit key sizes that records
// every internal transformation as a structured trace for display.
//
// The engine derives its raw key from a passphrase, expands it once per
// call, processes the message in independent 16-byte blocks with PKCS#7
// padding, and frames the result as standard base64 text. It is
// deliberately deterministic - identical plaintext and passphrase always
// yield identical ciphertext, because there is no IV and no randomness.
// That makes it an instructional engine, not a replacement for an
// authenticated, randomized mode.
//
// Every call produces a fresh []trace.Step the caller owns; no state is
// shared between calls, so independent goroutines may each run their own
// calls without coordination.
package aes

import (
	"fmt"

	"github.com/salah55s/cipher/keysched"
)

// LowLevel is the from-scratch AES engine. A LowLevel is immutable after
// construction and safe for concurrent use.
type LowLevel struct {
	keyBits  int
	keyBytes int
	rounds   int
	name     string
}

// New constructs a LowLevel engine for a 128- or 256-bit key. Any other
// size fails with keysched.ErrInvalidKeySize before any data is processed.
func New(keyBits int) (*LowLevel, error) {
	switch keyBits {
	case 128, 256:
	default:
		return nil, fmt.Errorf("%w: key size must be 128 or 256 bits, got %d",
			keysched.ErrInvalidKeySize, keyBits)
	}

	keyBytes := keyBits / 8
	rounds, err := keysched.Rounds(keyBytes)
	if err != nil {
		return nil, err
	}

	return &LowLevel{
		keyBits:  keyBits,
		keyBytes: keyBytes,
		rounds:   rounds,
		name:     fmt.Sprintf("AES-%d (Low-Level)", keyBits),
	}, nil
}

// Name returns the engine's display name, e.g. "AES-128 (Low-Level)".
func (c *LowLevel) Name() string {
	return c.name
}

// KeyBits returns the configured key size in bits.
func (c *LowLevel) KeyBits() int {
	return c.keyBits
}

// Rounds returns the number of cipher rounds for the configured key size.
func (c *LowLevel) Rounds() int {
	return c.rounds
}
