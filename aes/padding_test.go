package aes

import (
	"bytes"
	"testing"
)

func TestPadAlwaysAdds(t *testing.T) {
	cases := []struct {
		name       string
		dataLen    int
		wantPadded int
	}{
		{"Empty gains a full block", 0, 16},
		{"One byte", 1, 16},
		{"Fifteen bytes", 15, 16},
		{"Exactly one block gains another", 16, 32},
		{"Two blocks minus one", 31, 32},
		{"Exactly two blocks", 32, 48},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := bytes.Repeat([]byte{0xAB}, tc.dataLen)
			padded := pad(data)

			if len(padded) != tc.wantPadded {
				t.Fatalf("pad(%d bytes) = %d bytes, want %d", tc.dataLen, len(padded), tc.wantPadded)
			}

			padLen := len(padded) - tc.dataLen
			for _, b := range padded[tc.dataLen:] {
				if int(b) != padLen {
					t.Fatalf("padding byte = %d, want %d", b, padLen)
				}
			}
		})
	}
}

func TestPadUnpadRoundTrip(t *testing.T) {
	for n := 0; n <= 48; n++ {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i + 1)
		}

		recovered, err := unpad(pad(data))
		if err != nil {
			t.Fatalf("unpad(pad(%d bytes)) error: %v", n, err)
		}
		if !bytes.Equal(recovered, data) {
			t.Fatalf("unpad(pad(%d bytes)) did not recover the original", n)
		}
	}
}

func TestUnpadRejectsCorruptPadding(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"Empty buffer", nil},
		{"Zero pad length", append(bytes.Repeat([]byte{1}, 15), 0)},
		{"Pad length over block size", append(bytes.Repeat([]byte{1}, 15), 17)},
		{"Pad length exceeds buffer", []byte{9, 9, 12}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := unpad(tc.data); err == nil {
				t.Errorf("unpad(%v) accepted corrupt padding", tc.data)
			}
		})
	}
}

func TestPadDoesNotMutateInput(t *testing.T) {
	data := []byte{1, 2, 3}
	snapshot := append([]byte(nil), data...)
	pad(data)
	if !bytes.Equal(data, snapshot) {
		t.Error("pad() mutated its input")
	}
}
