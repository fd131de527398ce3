package query

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/yourorg/snarkexec/pkg/fields"
)

// OfflineQuery holds one trusted state root and the state paths needed to
// verify executions without a live ledger. Build it fully before sharing it
// across concurrent verifications; AddStatePath is not synchronized.
type OfflineQuery struct {
	statePaths map[fr.Element]*StatePath
	stateRoot  fr.Element
}

var _ Query = (*OfflineQuery)(nil)

// NewOfflineQuery creates an empty store for the given state root.
func NewOfflineQuery(stateRoot string) (*OfflineQuery, error) {
	root, err := fields.ParseRoot(stateRoot)
	if err != nil {
		return nil, err
	}
	return &OfflineQuery{statePaths: make(map[fr.Element]*StatePath), stateRoot: root}, nil
}

// AddStatePath parses both operands and stores the path under the
// commitment. A later insert for the same commitment overwrites the earlier
// path.
func (q *OfflineQuery) AddStatePath(commitment, statePath string) error {
	c, err := fields.Parse(commitment)
	if err != nil {
		return err
	}
	p, err := ParseStatePath(statePath)
	if err != nil {
		return err
	}
	q.statePaths[c] = p
	return nil
}

// CurrentStateRoot returns the fixed root; it never fails.
func (q *OfflineQuery) CurrentStateRoot() (fr.Element, error) {
	return q.stateRoot, nil
}

func (q *OfflineQuery) CurrentStateRootContext(_ context.Context) (fr.Element, error) {
	return q.stateRoot, nil
}

// StatePathForCommitment returns the stored path, or ErrPathNotFound if the
// commitment was never inserted.
func (q *OfflineQuery) StatePathForCommitment(commitment *fr.Element) (*StatePath, error) {
	p, ok := q.statePaths[*commitment]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, fields.Format(*commitment))
	}
	return p, nil
}

func (q *OfflineQuery) StatePathForCommitmentContext(_ context.Context, commitment *fr.Element) (*StatePath, error) {
	return q.StatePathForCommitment(commitment)
}

// offlineQueryJSON is the canonical wire form. encoding/json sorts the map
// keys, so String is deterministic for a fixed set of entries.
type offlineQueryJSON struct {
	StatePaths map[string]string `json:"state_paths"`
	StateRoot  string            `json:"state_root"`
}

// FromString reads a store from its canonical JSON form.
func FromString(s string) (*OfflineQuery, error) {
	var wire offlineQueryJSON
	if err := json.Unmarshal([]byte(s), &wire); err != nil {
		return nil, fmt.Errorf("%w: offline query: %v", fields.ErrInvalidEncoding, err)
	}
	q, err := NewOfflineQuery(wire.StateRoot)
	if err != nil {
		return nil, err
	}
	for c, p := range wire.StatePaths {
		if err := q.AddStatePath(c, p); err != nil {
			return nil, err
		}
	}
	return q, nil
}

// String renders the canonical JSON form.
func (q *OfflineQuery) String() string {
	wire := offlineQueryJSON{
		StatePaths: make(map[string]string, len(q.statePaths)),
		StateRoot:  fields.FormatRoot(q.stateRoot),
	}
	for c, p := range q.statePaths {
		wire.StatePaths[fields.Format(c)] = p.String()
	}
	b, err := json.Marshal(wire)
	if err != nil {
		panic(err)
	}
	return string(b)
}
