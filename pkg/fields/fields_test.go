package fields

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/require"
)

func TestParseFormatRoundTrip(t *testing.T) {
	vec := []string{
		"0field",
		"1field",
		"42field",
		"8444461749428370424248824938781546531375899335154063827935233455917409239040field", // q-1
	}

	for _, s := range vec {
		e, err := Parse(s)
		require.NoError(t, err, s)
		require.Equal(t, s, Format(e), s)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	vec := []string{
		"",
		"field",
		"12",
		"12group",
		"-3field",
		"0x12field",
		"1 2field",
	}

	for _, s := range vec {
		_, err := Parse(s)
		require.ErrorIs(t, err, ErrInvalidEncoding, s)
	}
}

func TestParseReducesAboveModulus(t *testing.T) {
	// SetString reduces mod q; q parses to the same element as 0.
	e, err := Parse(fr.Modulus().String() + "field")
	require.NoError(t, err)
	require.True(t, e.IsZero())
}

func TestRootRoundTrip(t *testing.T) {
	var e fr.Element
	e.SetUint64(77)

	s := FormatRoot(e)
	require.Greater(t, len(s), 3)
	require.Equal(t, "sr1", s[:3])

	got, err := ParseRoot(s)
	require.NoError(t, err)
	require.True(t, got.Equal(&e))

	// Deterministic for a fixed element.
	require.Equal(t, s, FormatRoot(e))
}

func TestParseRootRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "sr1", "au1qqqqsl0v7tr", "sr1qqqqqqqq"} {
		_, err := ParseRoot(s)
		require.ErrorIs(t, err, ErrInvalidEncoding, s)
	}
}
