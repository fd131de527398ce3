package vm

import (
	"fmt"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr/mimc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/yourorg/snarkexec/circuits"
	"github.com/yourorg/snarkexec/pkg/execution"
	"github.com/yourorg/snarkexec/pkg/fields"
	"github.com/yourorg/snarkexec/pkg/program"
)

// Prove runs one function call through the proof backend: it compiles the
// function's circuit shape, performs setup, and assembles a canonical
// execution with a fresh random transition secret. The returned verifying
// key verifies exactly this function's shape.
func Prove(prog *program.Program, functionName string, root fr.Element, inputIDs, outputIDs []fr.Element) (*execution.Execution, *VerifyingKey, error) {
	fnName, err := program.ParseIdentifier(functionName)
	if err != nil {
		return nil, nil, err
	}
	fn, ok := prog.Function(fnName)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s/%s", ErrUnknownFunction, prog.ID(), fnName)
	}
	if len(inputIDs) != len(fn.Inputs) || len(outputIDs) != len(fn.Outputs) {
		return nil, nil, fmt.Errorf("%s/%s takes %d inputs and %d outputs",
			prog.ID(), fnName, len(fn.Inputs), len(fn.Outputs))
	}

	var tsk fr.Element
	if _, err := tsk.SetRandom(); err != nil {
		return nil, nil, err
	}
	tcm := transcriptCommitment(tsk, root, inputIDs, outputIDs)

	cs, err := frontend.Compile(circuits.Curve().ScalarField(), r1cs.NewBuilder,
		circuits.Shape(len(inputIDs), len(outputIDs)))
	if err != nil {
		return nil, nil, err
	}
	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, nil, err
	}

	full := circuits.Shape(len(inputIDs), len(outputIDs))
	full.TCM = tcm
	full.Root = root
	full.TSK = tsk
	for i, e := range inputIDs {
		full.InputIDs[i] = e
	}
	for i, e := range outputIDs {
		full.OutputIDs[i] = e
	}
	witness, err := frontend.NewWitness(full, circuits.Curve().ScalarField())
	if err != nil {
		return nil, nil, err
	}
	proof, err := groth16.Prove(cs, pk, witness)
	if err != nil {
		return nil, nil, err
	}
	proofStr, err := formatProof(proof)
	if err != nil {
		return nil, nil, err
	}

	t := execution.Transition{
		Program:  prog.ID().String(),
		Function: string(fnName),
		TCM:      fields.Format(tcm),
	}
	for i, op := range fn.Inputs {
		t.Inputs = append(t.Inputs, execution.Input{
			Type: wireType(op),
			ID:   fields.Format(inputIDs[i]),
		})
	}
	for i, op := range fn.Outputs {
		t.Outputs = append(t.Outputs, execution.Output{
			Type: wireType(op),
			ID:   fields.Format(outputIDs[i]),
		})
	}
	t.ID, err = t.Digest()
	if err != nil {
		return nil, nil, err
	}

	exec := &execution.Execution{
		Transitions:     []execution.Transition{t},
		GlobalStateRoot: fields.FormatRoot(root),
		Proof:           proofStr,
	}
	return exec, &VerifyingKey{vk: vk}, nil
}

// transcriptCommitment is the native twin of the circuit's transcript hash;
// the write order must match TransitionCircuit.Define.
func transcriptCommitment(tsk, root fr.Element, inputIDs, outputIDs []fr.Element) fr.Element {
	h := mimc.NewMiMC()
	write := func(e fr.Element) {
		b := e.Bytes()
		h.Write(b[:])
	}
	write(tsk)
	write(root)
	for _, e := range inputIDs {
		write(e)
	}
	for _, e := range outputIDs {
		write(e)
	}

	var tcm fr.Element
	tcm.SetBytes(h.Sum(nil))
	return tcm
}

// wireType maps a signature operand to its wire form: "record" for records,
// "future" for futures, otherwise the declared visibility.
func wireType(op program.Operand) string {
	if op.Record() {
		return "record"
	}
	if strings.HasPrefix(op.Type, "future.") || op.Type == "future" {
		return "future"
	}
	if i := strings.LastIndexByte(op.Type, '.'); i >= 0 {
		return op.Type[i+1:]
	}
	return op.Type
}
