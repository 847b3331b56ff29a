// Package cipher provides an instrumented, from-scratch implementation of
// the Rijndael/AES block cipher at 128- and 256-bit key sizes.
//
// Unlike the standard library's crypto/aes, this engine exists to be looked
// inside: every internal transformation - key derivation, key expansion,
// each round's byte substitution, row rotation, column mixing and key
// injection - is recorded as a structured trace record that a presentation
// layer can replay without re-deriving anything. The cost of that
// transparency is that the engine is deterministic (no IV, no randomness)
// and unauthenticated; it is an instructional cipher, not a substitute for
// a vetted AEAD mode.
//
// # Getting Started
//
// Construct an engine for one of the two supported key sizes and feed it
// text and a passphrase:
//
//	engine, err := cipher.NewAES128()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ciphertext, steps, err := engine.Encrypt("Hi", "password")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, _, err := engine.Decrypt(ciphertext, "password")
//	for _, step := range steps {
//	    fmt.Printf("%d. %s: %s\n", step.StepNumber, step.Title, step.Description)
//	}
//
// # Package Layout
//
// The engine is split into focused subpackages, each depending only on the
// layers beneath it:
//
//   - [github.com/salah55s/cipher/gf]: GF(2^8) field arithmetic
//   - [github.com/salah55s/cipher/sbox]: the fixed substitution tables
//   - [github.com/salah55s/cipher/keysched]: key expansion and passphrase derivation
//   - [github.com/salah55s/cipher/block]: the reversible per-round state transforms
//   - [github.com/salah55s/cipher/trace]: the step records handed to consumers
//   - [github.com/salah55s/cipher/aes]: the orchestrator tying it all together
//
// This root package holds the [Cipher] interface shared by all engine
// variants and convenience constructors for the two supported key sizes.
package cipher
