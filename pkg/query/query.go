// Package query supplies the Merkle inclusion data the verifier needs when a
// transition consumes record inputs: either from an offline store populated
// ahead of time, or from a live ledger endpoint.
package query

import (
	"context"
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// ErrPathNotFound marks a commitment with no stored state path.
var ErrPathNotFound = errors.New("state path not found for commitment")

// Query answers state-root and state-path lookups during verification. The
// Context variants exist for symmetry with the network client; the offline
// store completes them immediately.
type Query interface {
	CurrentStateRoot() (fr.Element, error)
	CurrentStateRootContext(ctx context.Context) (fr.Element, error)
	StatePathForCommitment(commitment *fr.Element) (*StatePath, error)
	StatePathForCommitmentContext(ctx context.Context, commitment *fr.Element) (*StatePath, error)
}
