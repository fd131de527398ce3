package test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/snarkexec/pkg/execution"
	"github.com/yourorg/snarkexec/pkg/fields"
	"github.com/yourorg/snarkexec/pkg/program"
	"github.com/yourorg/snarkexec/pkg/query"
	"github.com/yourorg/snarkexec/pkg/vm"
)

// End-to-end over the public API only: prove transfer_public, push every
// artifact through its canonical string form as if it crossed a process
// boundary, then verify.
func TestEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e in short mode")
	}

	var root fr.Element
	root.SetUint64(20260829)

	var in0, in1, out0 fr.Element
	in0.SetUint64(1)
	in1.SetUint64(2)
	out0.SetUint64(3)

	exec, vk, err := vm.Prove(program.Credits(), "transfer_public",
		root, []fr.Element{in0, in1}, []fr.Element{out0})
	require.NoError(t, err)

	// Cross the wire.
	execAgain, err := execution.FromString(exec.String())
	require.NoError(t, err)
	vkAgain, err := vm.ParseVerifyingKey(vk.String())
	require.NoError(t, err)
	progAgain, err := program.Parse(program.Credits().String())
	require.NoError(t, err)

	ok, err := vm.VerifyFunctionExecution(execAgain, vkAgain, progAgain, "transfer_public")
	require.NoError(t, err)
	require.True(t, ok)

	// The same artifacts against another function's key: false, not error.
	execAlt, vkAlt, err := vm.Prove(program.Credits(), "transfer_public_to_private",
		root, []fr.Element{in0, in1}, []fr.Element{out0, out0})
	require.NoError(t, err)

	ok, err = vm.VerifyFunctionExecution(execAgain, vkAlt, progAgain, "transfer_public")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = vm.VerifyFunctionExecution(execAlt, vkAlt, progAgain, "transfer_public_to_private")
	require.NoError(t, err)
	require.True(t, ok)
}

// The offline store round-trips through its JSON form and still answers the
// verifier's lookups afterwards.
func TestOfflineQueryAcrossProcesses(t *testing.T) {
	var root, commitment fr.Element
	root.SetUint64(9001)
	commitment.SetUint64(17)

	store, err := query.NewOfflineQuery(fields.FormatRoot(root))
	require.NoError(t, err)

	var sibling fr.Element
	sibling.SetUint64(18)
	path := &query.StatePath{LeafIndex: 1, Siblings: []fr.Element{sibling}}
	require.NoError(t, store.AddStatePath(fields.Format(commitment), path.String()))

	carried, err := query.FromString(store.String())
	require.NoError(t, err)
	require.Equal(t, store.String(), carried.String())

	got, err := carried.StatePathForCommitment(&commitment)
	require.NoError(t, err)
	require.Equal(t, path, got)

	gotRoot, err := carried.CurrentStateRoot()
	require.NoError(t, err)
	require.True(t, gotRoot.Equal(&root))
}
