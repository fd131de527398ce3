package vm

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark/backend/groth16"

	"github.com/yourorg/snarkexec/circuits"
	"github.com/yourorg/snarkexec/internal/armor"
	"github.com/yourorg/snarkexec/pkg/fields"
)

const (
	keyHRP   = "verifier"
	proofHRP = "proof"
)

// VerifyingKey is the backend verifying key for one function's circuit
// shape. The binding to a (program id, function) pair is established by the
// caller at registration time.
type VerifyingKey struct {
	vk groth16.VerifyingKey
}

// ParseVerifyingKey reads a key from its verifier-armored form.
func ParseVerifyingKey(s string) (*VerifyingKey, error) {
	raw, err := armor.Decode(keyHRP, s)
	if err != nil {
		return nil, fmt.Errorf("%w: verifying key: %v", fields.ErrInvalidEncoding, err)
	}
	vk := groth16.NewVerifyingKey(circuits.Curve())
	if _, err := vk.ReadFrom(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("%w: verifying key: %v", fields.ErrInvalidEncoding, err)
	}
	return &VerifyingKey{vk: vk}, nil
}

// String renders the canonical armored form; deterministic for a fixed key.
func (k *VerifyingKey) String() string {
	var buf bytes.Buffer
	if _, err := k.vk.WriteTo(&buf); err != nil {
		panic(err)
	}
	s, err := armor.Encode(keyHRP, buf.Bytes())
	if err != nil {
		panic(err)
	}
	return s
}

func parseProof(s string) (groth16.Proof, error) {
	raw, err := armor.Decode(proofHRP, s)
	if err != nil {
		return nil, fmt.Errorf("%w: proof: %v", fields.ErrInvalidEncoding, err)
	}
	proof := groth16.NewProof(circuits.Curve())
	if _, err := proof.ReadFrom(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("%w: proof: %v", fields.ErrInvalidEncoding, err)
	}
	return proof, nil
}

func formatProof(proof groth16.Proof) (string, error) {
	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		return "", err
	}
	return armor.Encode(proofHRP, buf.Bytes())
}
