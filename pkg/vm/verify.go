package vm

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"

	"github.com/yourorg/snarkexec/circuits"
	"github.com/yourorg/snarkexec/pkg/execution"
	"github.com/yourorg/snarkexec/pkg/fields"
	"github.com/yourorg/snarkexec/pkg/program"
)

// outcome is the engine-internal verdict. The public contract collapses
// every non-valid outcome into false; the enum exists for this package's
// tests only.
type outcome int

const (
	outcomeValid outcome = iota
	outcomeUnknownCall
	outcomeWrongArity
	outcomeMissingPath
	outcomeMissingKey
	outcomeInvalidProof
)

// VerifyExecution runs the cryptographic check. It returns false, never an
// error, for any cause of non-validity: malformed or multi-transition
// executions, unknown calls, arity mismatches, missing inclusion paths,
// missing keys, and proofs the backend rejects.
func (p *Process) VerifyExecution(exec *execution.Execution) bool {
	return p.verifyExecution(exec) == outcomeValid
}

func (p *Process) verifyExecution(exec *execution.Execution) outcome {
	// Exactly one transition of exactly one function.
	if exec == nil || len(exec.Transitions) != 1 {
		return outcomeUnknownCall
	}
	t := &exec.Transitions[0]

	prog, ok := p.programs[t.Program]
	if !ok {
		return outcomeUnknownCall
	}
	fnName, err := program.ParseIdentifier(t.Function)
	if err != nil {
		return outcomeUnknownCall
	}
	fn, ok := prog.Function(fnName)
	if !ok {
		return outcomeUnknownCall
	}
	if len(t.Inputs) != len(fn.Inputs) || len(t.Outputs) != len(fn.Outputs) {
		return outcomeWrongArity
	}

	// The id must be the digest of the transition content.
	id, err := t.Digest()
	if err != nil || id != t.ID {
		return outcomeInvalidProof
	}

	root, err := exec.Root()
	if err != nil {
		return outcomeInvalidProof
	}
	tcm, err := fields.Parse(t.TCM)
	if err != nil {
		return outcomeInvalidProof
	}
	inputIDs, err := operandIDs(len(t.Inputs), func(i int) string { return t.Inputs[i].ID })
	if err != nil {
		return outcomeInvalidProof
	}
	outputIDs, err := operandIDs(len(t.Outputs), func(i int) string { return t.Outputs[i].ID })
	if err != nil {
		return outcomeInvalidProof
	}

	// Record inputs must carry an inclusion path authenticating their
	// commitment under the execution's root.
	for i := range t.Inputs {
		if t.Inputs[i].Record() != fn.Inputs[i].Record() {
			return outcomeWrongArity
		}
		if !fn.Inputs[i].Record() {
			continue
		}
		if p.query == nil {
			return outcomeMissingPath
		}
		path, err := p.query.StatePathForCommitment(&inputIDs[i])
		if err != nil {
			return outcomeMissingPath
		}
		if !path.Authenticates(&inputIDs[i], &root) {
			return outcomeMissingPath
		}
	}

	vk, ok := p.keys[bindingKey(t.Program, fnName)]
	if !ok {
		return outcomeMissingKey
	}
	proof, err := parseProof(exec.Proof)
	if err != nil {
		return outcomeInvalidProof
	}

	pub := circuits.Shape(len(inputIDs), len(outputIDs))
	pub.TCM = tcm
	pub.Root = root
	for i, e := range inputIDs {
		pub.InputIDs[i] = e
	}
	for i, e := range outputIDs {
		pub.OutputIDs[i] = e
	}
	pubWitness, err := frontend.NewWitness(pub, circuits.Curve().ScalarField(), frontend.PublicOnly())
	if err != nil {
		return outcomeInvalidProof
	}
	if err := groth16.Verify(proof, vk.vk, pubWitness); err != nil {
		return outcomeInvalidProof
	}
	return outcomeValid
}

func operandIDs(n int, id func(int) string) ([]fr.Element, error) {
	out := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		e, err := fields.Parse(id(i))
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
