package aes

import (
	"fmt"

	"github.com/salah55s/cipher/block"
)

// pad appends PKCS#7 padding: pad = blockSize - (len mod blockSize) bytes,
// each holding the value pad. Padding is always added - a message that is
// already block-aligned gains a full extra block - so unpadding is never
// ambiguous.
func pad(data []byte) []byte {
	padLen := block.Size - len(data)%block.Size
	padded := make([]byte, 0, len(data)+padLen)
	padded = append(padded, data...)
	for i := 0; i < padLen; i++ {
		padded = append(padded, byte(padLen))
	}
	return padded
}

// unpad reads the final byte as the pad length and strips exactly that many
// trailing bytes. The pad length must be 1..block.Size and no larger than
// the buffer.
func unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot unpad empty buffer")
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > block.Size {
		return nil, fmt.Errorf("invalid padding length %d", padLen)
	}
	if padLen > len(data) {
		return nil, fmt.Errorf("padding length %d exceeds buffer length %d", padLen, len(data))
	}

	return data[:len(data)-padLen], nil
}
