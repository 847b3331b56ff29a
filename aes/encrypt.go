package aes

import (
	"encoding/base64"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/salah55s/cipher/block"
	"github.com/salah55s/cipher/keysched"
	"github.com/salah55s/cipher/trace"
)

// Encrypt derives a key from the passphrase, encrypts the plaintext and
// returns the ciphertext as standard base64 text together with the ordered
// trace of every step taken. Errors here indicate misconfiguration or
// internal failure and propagate to the caller; nothing is returned
// half-encrypted.
func (c *LowLevel) Encrypt(plaintext, passphrase string) (string, []trace.Step, error) {
	logrus.WithFields(logrus.Fields{
		"function":  "Encrypt",
		"cipher":    c.name,
		"input_len": len(plaintext),
	}).Info("Starting encryption")

	var rec trace.Recorder

	// Key derivation.
	rawKey := keysched.DeriveKey(passphrase, c.keyBytes)
	rec.Record(trace.Step{
		Title:       "Key Derivation",
		Description: fmt.Sprintf("Derive %d-bit key from passphrase using SHA-256", c.keyBits),
		Details:     fmt.Sprintf("Passphrase hashed to %d key bytes (%x...)", c.keyBytes, rawKey[:8]),
	})

	// Key expansion.
	expanded, err := keysched.Expand(rawKey)
	if err != nil {
		return "", rec.Steps(), fmt.Errorf("key expansion failed: %w", err)
	}
	rec.Record(trace.Step{
		Title:       "Key Expansion",
		Description: fmt.Sprintf("Expand key to %d round keys", c.rounds+1),
		Details:     fmt.Sprintf("Generated %d 32-bit words for %d round keys", len(expanded), c.rounds+1),
	})

	// Encoding and padding.
	plainBytes := []byte(plaintext)
	padded := pad(plainBytes)
	rec.Record(trace.Step{
		Title:       "Encoding and Padding",
		Description: "Convert text to bytes and apply PKCS#7 padding",
		Details: fmt.Sprintf("%d chars -> %d bytes -> %d bytes (padded)",
			len(plaintext), len(plainBytes), len(padded)),
	})

	// Block loop.
	numBlocks := len(padded) / block.Size
	ciphertext := make([]byte, 0, len(padded))
	for i := 0; i < numBlocks; i++ {
		blk := padded[i*block.Size : (i+1)*block.Size]
		encrypted, ops := c.encryptBlock(blk, expanded)
		ciphertext = append(ciphertext, encrypted...)

		rec.Record(trace.Step{
			Title:       fmt.Sprintf("Encrypt Block %d/%d", i+1, numBlocks),
			Description: fmt.Sprintf("Process 16-byte block through %d rounds", c.rounds),
			Details:     fmt.Sprintf("Block %d encrypted with %d operations", i+1, len(ops)),
			BlockOps:    ops,
		})
	}

	// Output encoding.
	encoded := base64.StdEncoding.EncodeToString(ciphertext)
	rec.Record(trace.Step{
		Title:       "Base64 Encoding",
		Description: "Encode binary output to text format",
		Details:     fmt.Sprintf("%d bytes -> %d characters", len(ciphertext), len(encoded)),
		Output:      encoded,
	})

	logrus.WithFields(logrus.Fields{
		"function":   "Encrypt",
		"cipher":     c.name,
		"num_blocks": numBlocks,
		"output_len": len(encoded),
	}).Info("Encryption complete")

	return encoded, rec.Steps(), nil
}

// encryptBlock runs one 16-byte block through the full forward round
// pipeline and returns the encrypted bytes plus the ordered per-transform
// trace operations.
func (c *LowLevel) encryptBlock(blk []byte, expanded []keysched.Word) ([]byte, []trace.BlockOp) {
	var ops []trace.BlockOp

	state := block.ToState(blk)
	ops = append(ops, trace.BlockOp{
		Round:       -1,
		Operation:   "Convert to State",
		Description: "Convert 16 bytes to 4x4 state matrix",
		After:       trace.Snapshot(state),
		Details:     "State is organized in column-major order",
	})

	roundKey := keysched.RoundKey(expanded, 0)
	before := state
	state = block.AddRoundKey(state, roundKey)
	ops = append(ops, trace.BlockOp{
		Round:       0,
		Operation:   "AddRoundKey",
		Description: "XOR state with round key 0",
		Before:      trace.SnapshotPtr(before),
		After:       trace.Snapshot(state),
		RoundKey:    trace.SnapshotPtr(roundKey),
		Details:     "Initial key injection before the main rounds",
	})

	for round := 1; round <= c.rounds; round++ {
		before = state
		state = block.SubBytes(state)
		ops = append(ops, trace.BlockOp{
			Round:       round,
			Operation:   "SubBytes",
			Description: "Apply S-box substitution to each byte",
			Before:      trace.SnapshotPtr(before),
			After:       trace.Snapshot(state),
			Details:     "Non-linear byte substitution using lookup table",
		})

		before = state
		state = block.ShiftRows(state)
		ops = append(ops, trace.BlockOp{
			Round:       round,
			Operation:   "ShiftRows",
			Description: "Cyclically shift rows left",
			Before:      trace.SnapshotPtr(before),
			After:       trace.Snapshot(state),
			Details:     "Row r rotates left by r positions",
		})

		// The final round skips column mixing.
		if round < c.rounds {
			before = state
			state = block.MixColumns(state)
			ops = append(ops, trace.BlockOp{
				Round:       round,
				Operation:   "MixColumns",
				Description: "Mix data within columns using GF(2^8) multiplication",
				Before:      trace.SnapshotPtr(before),
				After:       trace.Snapshot(state),
				Details:     "Linear mixing operation in the Galois field",
			})
		}

		roundKey = keysched.RoundKey(expanded, round)
		before = state
		state = block.AddRoundKey(state, roundKey)
		ops = append(ops, trace.BlockOp{
			Round:       round,
			Operation:   "AddRoundKey",
			Description: fmt.Sprintf("XOR state with round key %d", round),
			Before:      trace.SnapshotPtr(before),
			After:       trace.Snapshot(state),
			RoundKey:    trace.SnapshotPtr(roundKey),
			Details:     fmt.Sprintf("Round %d complete", round),
		})
	}

	return state.Bytes(), ops
}
