package circuits

import (
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

func Curve() ecc.ID { return ecc.BLS12_377 }

// TransitionCircuit proves knowledge of the transition secret behind a
// transcript commitment. The public witness binds the commitment, the global
// state root and every operand id; the slice lengths fix the circuit shape,
// so a verifying key commits to one function signature.
type TransitionCircuit struct {
	TCM       frontend.Variable   `gnark:",public"`
	Root      frontend.Variable   `gnark:",public"`
	InputIDs  []frontend.Variable `gnark:",public"`
	OutputIDs []frontend.Variable `gnark:",public"`

	TSK frontend.Variable
}

func (c *TransitionCircuit) Define(api frontend.API) error {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}
	h.Write(c.TSK, c.Root)
	h.Write(c.InputIDs...)
	h.Write(c.OutputIDs...)
	api.AssertIsEqual(c.TCM, h.Sum())
	return nil
}

// Shape allocates the circuit blueprint for a function with the given arity.
func Shape(inputs, outputs int) *TransitionCircuit {
	return &TransitionCircuit{
		InputIDs:  make([]frontend.Variable, inputs),
		OutputIDs: make([]frontend.Variable, outputs),
	}
}
