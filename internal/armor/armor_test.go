package armor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		hrp     string
		payload []byte
	}{
		{"empty", "sr", nil},
		{"single", "au", []byte{0x7f}},
		{"root-sized", "sr", bytes.Repeat([]byte{0xab}, 32)},
		{"oversized", "proof", bytes.Repeat([]byte{0x11, 0x22}, 200)},
	}

	for _, tc := range cases {
		s, err := Encode(tc.hrp, tc.payload)
		require.NoError(t, err, tc.name)

		got, err := Decode(tc.hrp, s)
		require.NoError(t, err, tc.name)
		require.True(t, bytes.Equal(tc.payload, got), tc.name)
	}
}

func TestDecodeRejectsWrongPrefix(t *testing.T) {
	s, err := Encode("sr", []byte{1, 2, 3})
	require.NoError(t, err)

	_, err = Decode("au", s)
	require.Error(t, err)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode("sr", "sr1notbech32m!!!")
	require.Error(t, err)
}
