package cipher

import (
	"github.com/salah55s/cipher/aes"
	"github.com/salah55s/cipher/trace"
)

// Cipher is the contract shared by all engine variants: encrypt text with
// a key or passphrase, decrypt it back, and report a display name. Both
// operations return the ordered trace of every step taken, owned by the
// caller once the call returns.
//
// Implementations are distinct concrete types; there is no registry or
// runtime dispatch beyond this interface.
type Cipher interface {
	// Encrypt turns plaintext into base64 ciphertext. Errors are fatal
	// and propagate to the caller.
	Encrypt(plaintext, key string) (string, []trace.Step, error)

	// Decrypt reverses Encrypt. Data errors fail soft: the result is an
	// empty string, the trace ends in a failure step, and the error
	// describes the cause.
	Decrypt(ciphertext, key string) (string, []trace.Step, error)

	// Name returns the variant's display name.
	Name() string
}

// NewAES128 constructs the low-level AES engine with a 128-bit key.
func NewAES128() (*aes.LowLevel, error) {
	return aes.New(128)
}

// NewAES256 constructs the low-level AES engine with a 256-bit key.
func NewAES256() (*aes.LowLevel, error) {
	return aes.New(256)
}

// Interface conformance checks.
var (
	_ Cipher = (*aes.LowLevel)(nil)
)
