package aes

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/salah55s/cipher/block"
	"github.com/salah55s/cipher/keysched"
	"github.com/salah55s/cipher/trace"
)

// Decrypt reverses Encrypt: it decodes the base64 ciphertext, runs every
// block through the inverse round pipeline, strips the padding and decodes
// the recovered bytes as text.
//
// Decrypt is deliberately fail-soft: it is routinely fed untrusted or
// mistyped ciphertext, so data errors (malformed base64, a ciphertext that
// is not a whole number of blocks, corrupt padding, non-UTF-8 output) are
// caught here, recorded as a terminal trace step, and reported as an empty
// plaintext plus the returned error. A failed decrypt never yields partial
// or corrupted plaintext and never panics.
func (c *LowLevel) Decrypt(ciphertext, passphrase string) (string, []trace.Step, error) {
	logrus.WithFields(logrus.Fields{
		"function":  "Decrypt",
		"cipher":    c.name,
		"input_len": len(ciphertext),
	}).Info("Starting decryption")

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
		return c.fail(&rec, "Key Expansion", err)
	}
	rec.Record(trace.Step{
		Title:       "Key Expansion",
		Description: "Expand key for decryption",
		Details:     fmt.Sprintf("%d round keys generated", c.rounds+1),
	})

	// Input decoding.
	cipherBytes, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return c.fail(&rec, "Base64 Decoding", fmt.Errorf("malformed base64 input: %w", err))
	}
	if len(cipherBytes) == 0 || len(cipherBytes)%block.Size != 0 {
		return c.fail(&rec, "Base64 Decoding",
			fmt.Errorf("ciphertext length %d is not a positive multiple of the block size", len(cipherBytes)))
	}
	rec.Record(trace.Step{
		Title:       "Base64 Decoding",
		Description: "Decode text input to binary",
		Details:     fmt.Sprintf("%d characters -> %d bytes", len(ciphertext), len(cipherBytes)),
	})

	// Block loop.
	numBlocks := len(cipherBytes) / block.Size
	plainBytes := make([]byte, 0, len(cipherBytes))
	for i := 0; i < numBlocks; i++ {
		blk := cipherBytes[i*block.Size : (i+1)*block.Size]
		decrypted, ops := c.decryptBlock(blk, expanded)
		plainBytes = append(plainBytes, decrypted...)

		rec.Record(trace.Step{
			Title:       fmt.Sprintf("Decrypt Block %d/%d", i+1, numBlocks),
			Description: "Process 16-byte block through inverse rounds",
			Details:     fmt.Sprintf("Block %d decrypted with %d operations", i+1, len(ops)),
			BlockOps:    ops,
		})
	}

	// Unpad and decode.
	unpadded, err := unpad(plainBytes)
	if err != nil {
		return c.fail(&rec, "Remove Padding", fmt.Errorf("padding removal failed: %w", err))
	}
	if !utf8.Valid(unpadded) {
		return c.fail(&rec, "Decode Text", fmt.Errorf("decrypted bytes are not valid UTF-8"))
	}

	plaintext := string(unpadded)
	rec.Record(trace.Step{
		Title:       "Remove Padding and Decode",
		Description: "Strip PKCS#7 padding and convert bytes to text",
		Details:     fmt.Sprintf("%d bytes -> %d bytes", len(plainBytes), len(unpadded)),
		Output:      plaintext,
	})

	logrus.WithFields(logrus.Fields{
		"function":   "Decrypt",
		"cipher":     c.name,
		"num_blocks": numBlocks,
		"output_len": len(plaintext),
	}).Info("Decryption complete")

	return plaintext, rec.Steps(), nil
}

// fail records a terminal diagnostic step and returns the empty result.
// Nothing partial is ever surfaced.
func (c *LowLevel) fail(rec *trace.Recorder, stage string, err error) (string, []trace.Step, error) {
	logrus.WithFields(logrus.Fields{
		"function": "Decrypt",
		"cipher":   c.name,
		"stage":    stage,
		"error":    err.Error(),
	}).Error("Decryption failed")

	rec.RecordFailure(stage, err)
	return "", rec.Steps(), err
}

// decryptBlock runs one 16-byte block through the inverse round pipeline:
// key injection starts from the last round key, rows rotate right before
// bytes substitute through the inverse table, and inverse column mixing is
// applied for every round except round 0, mirroring the final-round skip on
// the forward path.
func (c *LowLevel) decryptBlock(blk []byte, expanded []keysched.Word) ([]byte, []trace.BlockOp) {
	var ops []trace.BlockOp

	state := block.ToState(blk)
	ops = append(ops, trace.BlockOp{
		Round:       -1,
		Operation:   "Convert to State",
		Description: "Convert 16 bytes to 4x4 state matrix",
		After:       trace.Snapshot(state),
		Details:     "State is organized in column-major order",
	})

	roundKey := keysched.RoundKey(expanded, c.rounds)
	before := state
	state = block.AddRoundKey(state, roundKey)
	ops = append(ops, trace.BlockOp{
		Round:       c.rounds,
		Operation:   "AddRoundKey",
		Description: fmt.Sprintf("XOR state with round key %d", c.rounds),
		Before:      trace.SnapshotPtr(before),
		After:       trace.Snapshot(state),
		RoundKey:    trace.SnapshotPtr(roundKey),
		Details:     "Starting decryption with the final round key",
	})

	for round := c.rounds - 1; round >= 0; round-- {
		before = state
		state = block.InvShiftRows(state)
		ops = append(ops, trace.BlockOp{
			Round:       round,
			Operation:   "InvShiftRows",
			Description: "Cyclically shift rows right (inverse)",
			Before:      trace.SnapshotPtr(before),
			After:       trace.Snapshot(state),
			Details:     "Reverse of the ShiftRows operation",
		})

		before = state
		state = block.InvSubBytes(state)
		ops = append(ops, trace.BlockOp{
			Round:       round,
			Operation:   "InvSubBytes",
			Description: "Apply inverse S-box substitution",
			Before:      trace.SnapshotPtr(before),
			After:       trace.Snapshot(state),
			Details:     "Inverse of SubBytes using the inverse table",
		})

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
			Details:     "XOR is its own inverse",
		})

		// Round 0 skips inverse mixing, matching the forward final round.
		if round > 0 {
			before = state
			state = block.InvMixColumns(state)
			ops = append(ops, trace.BlockOp{
				Round:       round,
				Operation:   "InvMixColumns",
				Description: "Inverse mix columns operation",
				Before:      trace.SnapshotPtr(before),
				After:       trace.Snapshot(state),
				Details:     "Inverse of MixColumns in the Galois field",
			})
		}
	}

	return state.Bytes(), ops
}
