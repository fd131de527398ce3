package execution

import (
	"encoding/json"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/yourorg/snarkexec/pkg/fields"
)

// Input is one typed operand consumed by a transition. For record inputs the
// id is the record commitment whose membership under the global state root
// must be proven.
type Input struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Value string `json:"value,omitempty"`
}

// Output is one typed operand produced by a transition.
type Output struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Value string `json:"value,omitempty"`
}

// Transition is one atomic function call: its operands plus the transcript
// commitment binding them.
type Transition struct {
	ID       string   `json:"id"`
	Program  string   `json:"program"`
	Function string   `json:"function"`
	Inputs   []Input  `json:"inputs"`
	Outputs  []Output `json:"outputs"`
	TCM      string   `json:"tcm"`
}

// Record reports whether the input requires a state-path lookup.
func (in Input) Record() bool { return in.Type == "record" }

// Execution is the immutable record of having run a program function: its
// transitions, the ledger root they executed against, and the proof blob.
type Execution struct {
	Transitions     []Transition `json:"transitions"`
	GlobalStateRoot string       `json:"global_state_root"`
	Proof           string       `json:"proof"`
}

// FromString reads an execution from its canonical JSON form.
func FromString(s string) (*Execution, error) {
	var e Execution
	if err := json.Unmarshal([]byte(s), &e); err != nil {
		return nil, fmt.Errorf("%w: execution: %v", fields.ErrInvalidEncoding, err)
	}
	return &e, nil
}

// String renders the canonical JSON form; deterministic for a fixed value.
func (e *Execution) String() string {
	b, err := json.Marshal(e)
	if err != nil {
		// Marshalling a struct of strings cannot fail.
		panic(err)
	}
	return string(b)
}

// Root parses the execution's global state root.
func (e *Execution) Root() (fr.Element, error) {
	return fields.ParseRoot(e.GlobalStateRoot)
}
