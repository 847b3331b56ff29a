package aes

import (
	"testing"
	"unicode/utf8"
)

// FuzzRoundTrip checks that decrypt(encrypt(text, pass), pass) always
// recovers text for both supported key sizes.
func FuzzRoundTrip(f *testing.F) {
	f.Add("Hi", "password")
	f.Add("", "k")
	f.Add("0123456789abcdef", "longer passphrase with spaces")
	f.Add("\x00\x01\x02", "π")

	f.Fuzz(func(t *testing.T, plaintext, passphrase string) {
		// Bound input size to keep the trace allocation reasonable, and
		// skip byte sequences that are not text: Decrypt validates UTF-8
		// on the way out.
		if len(plaintext) > 4096 || !utf8.ValidString(plaintext) {
			return
		}

		for _, keyBits := range []int{128, 256} {
			c, err := New(keyBits)
			if err != nil {
				t.Fatalf("New(%d) error: %v", keyBits, err)
			}

			ciphertext, _, err := c.Encrypt(plaintext, passphrase)
			if err != nil {
				t.Fatalf("Encrypt() error: %v", err)
			}

			recovered, _, err := c.Decrypt(ciphertext, passphrase)
			if err != nil {
				t.Fatalf("Decrypt() error: %v", err)
			}
			if recovered != plaintext {
				t.Fatalf("round trip mismatch: got %q, want %q", recovered, plaintext)
			}
		}
	})
}

// FuzzDecryptNeverPanics feeds arbitrary text to Decrypt; any failure must
// come back as an empty result with a failure trace step, never a panic.
func FuzzDecryptNeverPanics(f *testing.F) {
	f.Add("not even base64", "password")
	f.Add("AAAAAAAAAAAAAAAAAAAAAA==", "password")
	f.Add("", "")

	f.Fuzz(func(t *testing.T, ciphertext, passphrase string) {
		c, err := New(128)
		if err != nil {
			t.Fatalf("New(128) error: %v", err)
		}

		plaintext, steps, err := c.Decrypt(ciphertext, passphrase)
		if err != nil {
			if plaintext != "" {
				t.Fatalf("failed Decrypt() returned non-empty plaintext %q", plaintext)
			}
			if len(steps) == 0 || !steps[len(steps)-1].Failed {
				t.Fatal("failed Decrypt() did not record a failure trace step")
			}
		}
	})
}
