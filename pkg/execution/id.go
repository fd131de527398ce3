package execution

import (
	"bytes"

	"golang.org/x/crypto/blake2b"

	"github.com/yourorg/snarkexec/internal/armor"
)

const idHRP = "au"

// Digest derives the transition id: the au-armored blake2b-256 digest of the
// transition's canonical bytes (everything but the id itself). Verification
// recomputes it; a transition whose id does not match its content is invalid.
func (t *Transition) Digest() (string, error) {
	var b bytes.Buffer
	b.WriteString(t.Program)
	b.WriteByte(0)
	b.WriteString(t.Function)
	b.WriteByte(0)
	for _, in := range t.Inputs {
		b.WriteString(in.Type)
		b.WriteByte(0)
		b.WriteString(in.ID)
		b.WriteByte(0)
		b.WriteString(in.Value)
		b.WriteByte(0)
	}
	for _, out := range t.Outputs {
		b.WriteString(out.Type)
		b.WriteByte(0)
		b.WriteString(out.ID)
		b.WriteByte(0)
		b.WriteString(out.Value)
		b.WriteByte(0)
	}
	b.WriteString(t.TCM)

	sum := blake2b.Sum256(b.Bytes())
	return armor.Encode(idHRP, sum[:])
}
