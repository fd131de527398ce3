package fields

import (
	"errors"
	"fmt"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/yourorg/snarkexec/internal/armor"
)

// ErrInvalidEncoding marks a textual value that does not parse in its
// canonical form.
var ErrInvalidEncoding = errors.New("invalid encoding")

const (
	fieldSuffix = "field"
	rootHRP     = "sr"
)

// Parse reads a scalar field element from its "<decimal>field" form.
func Parse(s string) (fr.Element, error) {
	var e fr.Element

	digits, ok := strings.CutSuffix(s, fieldSuffix)
	if !ok || digits == "" {
		return e, fmt.Errorf("%w: field element %q", ErrInvalidEncoding, s)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return e, fmt.Errorf("%w: field element %q", ErrInvalidEncoding, s)
		}
	}
	if _, err := e.SetString(digits); err != nil {
		return e, fmt.Errorf("%w: field element %q: %v", ErrInvalidEncoding, s, err)
	}
	return e, nil
}

// Format renders a field element in its canonical "<decimal>field" form.
func Format(e fr.Element) string {
	return e.Text(10) + fieldSuffix
}

// ParseRoot reads a global state root from its sr-armored form.
func ParseRoot(s string) (fr.Element, error) {
	var e fr.Element

	raw, err := armor.Decode(rootHRP, s)
	if err != nil {
		return e, fmt.Errorf("%w: state root: %v", ErrInvalidEncoding, err)
	}
	if len(raw) != fr.Bytes {
		return e, fmt.Errorf("%w: state root: %d bytes", ErrInvalidEncoding, len(raw))
	}
	if err := e.SetBytesCanonical(raw); err != nil {
		return e, fmt.Errorf("%w: state root: %v", ErrInvalidEncoding, err)
	}
	return e, nil
}

// FormatRoot renders a state root as an sr-armored string.
func FormatRoot(e fr.Element) string {
	b := e.Bytes()
	s, err := armor.Encode(rootHRP, b[:])
	if err != nil {
		// Encoding a fixed-width byte string cannot fail.
		panic(err)
	}
	return s
}
