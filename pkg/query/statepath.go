package query

import (
	"encoding/binary"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr/mimc"

	"github.com/yourorg/snarkexec/internal/armor"
	"github.com/yourorg/snarkexec/pkg/fields"
)

const pathHRP = "path"

// StatePath is a Merkle authentication path: the siblings from a leaf
// commitment up to a state root, leaf first.
type StatePath struct {
	LeafIndex uint64
	Siblings  []fr.Element
}

// ParseStatePath reads a path from its path-armored form: an 8-byte
// big-endian leaf index followed by the 32-byte siblings.
func ParseStatePath(s string) (*StatePath, error) {
	raw, err := armor.Decode(pathHRP, s)
	if err != nil {
		return nil, fmt.Errorf("%w: state path: %v", fields.ErrInvalidEncoding, err)
	}
	if len(raw) < 8 || (len(raw)-8)%fr.Bytes != 0 {
		return nil, fmt.Errorf("%w: state path: %d bytes", fields.ErrInvalidEncoding, len(raw))
	}

	p := &StatePath{LeafIndex: binary.BigEndian.Uint64(raw[:8])}
	for off := 8; off < len(raw); off += fr.Bytes {
		var sib fr.Element
		if err := sib.SetBytesCanonical(raw[off : off+fr.Bytes]); err != nil {
			return nil, fmt.Errorf("%w: state path sibling: %v", fields.ErrInvalidEncoding, err)
		}
		p.Siblings = append(p.Siblings, sib)
	}
	return p, nil
}

// String renders the canonical armored form.
func (p *StatePath) String() string {
	raw := make([]byte, 8, 8+len(p.Siblings)*fr.Bytes)
	binary.BigEndian.PutUint64(raw, p.LeafIndex)
	for _, sib := range p.Siblings {
		b := sib.Bytes()
		raw = append(raw, b[:]...)
	}
	s, err := armor.Encode(pathHRP, raw)
	if err != nil {
		panic(err)
	}
	return s
}

// Authenticates reports whether walking the path from commitment reproduces
// root. The walk pairs each level with its sibling under mimc, taking the
// side from the leaf index bits.
func (p *StatePath) Authenticates(commitment, root *fr.Element) bool {
	cur := *commitment
	idx := p.LeafIndex
	for _, sib := range p.Siblings {
		if idx&1 == 1 {
			cur = hashPair(&sib, &cur)
		} else {
			cur = hashPair(&cur, &sib)
		}
		idx >>= 1
	}
	return cur.Equal(root)
}

func hashPair(left, right *fr.Element) fr.Element {
	h := mimc.NewMiMC()
	lb, rb := left.Bytes(), right.Bytes()
	h.Write(lb[:])
	h.Write(rb[:])

	var out fr.Element
	out.SetBytes(h.Sum(nil))
	return out
}
