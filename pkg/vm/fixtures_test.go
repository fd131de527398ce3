package vm

import (
	"sync"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/snarkexec/pkg/execution"
	"github.com/yourorg/snarkexec/pkg/program"
)

func elems(vals ...uint64) []fr.Element {
	out := make([]fr.Element, len(vals))
	for i, v := range vals {
		out[i].SetUint64(v)
	}
	return out
}

type fixture struct {
	exec *execution.Execution
	vk   *VerifyingKey
	root fr.Element
	err  error
}

// clone returns an independent copy of the fixture execution so tests can
// tamper freely.
func (f fixture) clone(t *testing.T) *execution.Execution {
	t.Helper()
	e, err := execution.FromString(f.exec.String())
	require.NoError(t, err)
	return e
}

// Setup and proving dominate test time, so genuine executions are built
// once per function and shared read-only.
var (
	tpOnce sync.Once
	tp     fixture

	altOnce sync.Once
	alt     fixture
)

// transferPublic is a genuine execution of credits.aleo/transfer_public.
func transferPublic(t *testing.T) fixture {
	t.Helper()
	tpOnce.Do(func() {
		tp.root.SetUint64(777)
		tp.exec, tp.vk, tp.err = Prove(program.Credits(), "transfer_public",
			tp.root, elems(11, 22), elems(33))
	})
	require.NoError(t, tp.err)
	return tp
}

// transferPublicToPrivate supplies a verifying key for a different function
// with the same input arity as transfer_public.
func transferPublicToPrivate(t *testing.T) fixture {
	t.Helper()
	altOnce.Do(func() {
		alt.root.SetUint64(777)
		alt.exec, alt.vk, alt.err = Prove(program.Credits(), "transfer_public_to_private",
			alt.root, elems(11, 22), elems(33, 44))
	})
	require.NoError(t, alt.err)
	return alt
}
