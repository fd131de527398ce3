package program

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrMalformed         = errors.New("malformed program")
)

// Network is the only ledger namespace program ids may live in.
const Network = "aleo"

// Identifier is a lowercase name: a letter followed by up to 30 letters,
// digits or underscores.
type Identifier string

func ParseIdentifier(s string) (Identifier, error) {
	if len(s) == 0 || len(s) > 31 {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case i > 0 && (r == '_' || (r >= '0' && r <= '9')):
		default:
			return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
		}
	}
	return Identifier(s), nil
}

// ID is a namespaced program id, e.g. "credits.aleo".
type ID struct {
	Name Identifier
}

func ParseID(s string) (ID, error) {
	name, net, ok := strings.Cut(s, ".")
	if !ok || net != Network {
		return ID{}, fmt.Errorf("%w: program id %q", ErrInvalidIdentifier, s)
	}
	ident, err := ParseIdentifier(name)
	if err != nil {
		return ID{}, fmt.Errorf("program id %q: %w", s, err)
	}
	return ID{Name: ident}, nil
}

func (id ID) String() string {
	return string(id.Name) + "." + Network
}
