package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	c128, err := NewAES128()
	require.NoError(t, err)
	assert.Equal(t, "AES-128 (Low-Level)", c128.Name())

	c256, err := NewAES256()
	require.NoError(t, err)
	assert.Equal(t, "AES-256 (Low-Level)", c256.Name())
}

func TestRoundTripThroughInterface(t *testing.T) {
	engines := []func() (Cipher, error){
		func() (Cipher, error) { return NewAES128() },
		func() (Cipher, error) { return NewAES256() },
	}

	for _, newEngine := range engines {
		engine, err := newEngine()
		require.NoError(t, err)

		t.Run(engine.Name(), func(t *testing.T) {
			ciphertext, steps, err := engine.Encrypt("interface round trip", "pass phrase")
			require.NoError(t, err)
			assert.NotEmpty(t, ciphertext)
			assert.NotEmpty(t, steps)

			plaintext, _, err := engine.Decrypt(ciphertext, "pass phrase")
			require.NoError(t, err)
			assert.Equal(t, "interface round trip", plaintext)
		})
	}
}
