package keysched

import (
	"crypto/sha256"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/pbkdf2"
)

// DeriveKey produces a raw key of the requested byte length from an
// arbitrary passphrase. The passphrase is hashed with SHA-256; if more
// bytes are needed than one digest provides, the accumulated bytes are
// re-hashed and the digest appended until enough material exists, then the
// result is truncated to exactly keyLen bytes.
//
// This is a convenience derivation, not a hardened KDF: there is no salt
// and no iteration count, so the same passphrase always yields the same
// key. Use DeriveKeySalted where brute-force resistance matters.
func DeriveKey(passphrase string, keyLen int) []byte {
	sum := sha256.Sum256([]byte(passphrase))
	key := sum[:]

	for len(key) < keyLen {
		next := sha256.Sum256(key)
		key = append(key, next[:]...)
	}

	logrus.WithFields(logrus.Fields{
		"function": "DeriveKey",
		"key_len":  keyLen,
	}).Debug("Derived raw key from passphrase")

	return key[:keyLen]
}

// PBKDF2Iterations is the iteration count for DeriveKeySalted.
const PBKDF2Iterations = 100000

// DeriveKeySalted produces a raw key of the requested byte length from a
// passphrase and caller-provided salt using PBKDF2-SHA256. Unlike
// DeriveKey this derivation is intentionally expensive and salt-dependent;
// it exists for callers that persist or exchange keys, and is never used by
// the deterministic low-level cipher path.
func DeriveKeySalted(passphrase string, salt []byte, keyLen int) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, PBKDF2Iterations, keyLen, sha256.New)
}
