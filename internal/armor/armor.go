package armor

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Encode armors payload as a bech32m string with the given human-readable
// part. Armored values routinely exceed the 90-character address limit, so
// no length cap applies.
func Encode(hrp string, payload []byte) (string, error) {
	conv, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("armor %q: %w", hrp, err)
	}
	s, err := bech32.EncodeM(hrp, conv)
	if err != nil {
		return "", fmt.Errorf("armor %q: %w", hrp, err)
	}
	return s, nil
}

// Decode checks the human-readable part and returns the raw payload.
func Decode(hrp, s string) ([]byte, error) {
	got, data, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return nil, fmt.Errorf("unarmor %q: %w", hrp, err)
	}
	if got != hrp {
		return nil, fmt.Errorf("unarmor %q: unexpected prefix %q", hrp, got)
	}
	payload, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("unarmor %q: %w", hrp, err)
	}
	return payload, nil
}
