// Package block implements the reversible per-round transformations of the
// Rijndael cipher on the 4x4 byte state matrix.
//
// A 16-byte block maps to the state in column-major order: byte i of the
// block lands at row i mod 4, column i div 4. Every transform here is pure
// and stateless - it returns a new State and never mutates its input, so a
// caller holding the prior value for tracing keeps it intact. Each forward
// transform has an exact inverse used only by decryption.
package block

// Size is the cipher block size in bytes.
const Size = 16

// State is the 4x4 byte matrix one block is processed as.
type State [4][4]byte

// ToState converts a 16-byte block to a State in column-major order.
// The slice must hold exactly Size bytes.
func ToState(data []byte) State {
	var s State
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = data[r+4*c]
		}
	}
	return s
}

// Bytes converts a State back to its 16-byte column-major representation.
func (s State) Bytes() []byte {
	out := make([]byte, 0, Size)
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out = append(out, s[r][c])
		}
	}
	return out
}
