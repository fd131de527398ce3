package execution

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourorg/snarkexec/pkg/fields"
)

func sample() *Execution {
	return &Execution{
		Transitions: []Transition{{
			ID:       "au1placeholder",
			Program:  "credits.aleo",
			Function: "transfer_public",
			Inputs: []Input{
				{Type: "public", ID: "11field", Value: "aleo1rcv"},
				{Type: "public", ID: "22field", Value: "10000u64"},
			},
			Outputs: []Output{
				{Type: "future", ID: "33field"},
			},
			TCM: "44field",
		}},
		GlobalStateRoot: "sr1root",
		Proof:           "proof1blob",
	}
}

func TestStringRoundTrip(t *testing.T) {
	e := sample()

	s := e.String()
	require.Equal(t, s, e.String())

	got, err := FromString(s)
	require.NoError(t, err)
	require.Equal(t, e, got)
}

func TestStringFieldOrder(t *testing.T) {
	s := sample().String()
	require.True(t, strings.HasPrefix(s, `{"transitions":[`))
	require.Contains(t, s, `"global_state_root":"sr1root"`)
	require.True(t, strings.HasSuffix(s, `"proof":"proof1blob"}`))
}

func TestFromStringRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "{", "[]", `"x"`} {
		_, err := FromString(s)
		require.ErrorIs(t, err, fields.ErrInvalidEncoding, s)
	}
}

func TestTransitionDigest(t *testing.T) {
	tr := sample().Transitions[0]

	id, err := tr.Digest()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(id, "au1"))

	// Deterministic, and id-independent.
	tr.ID = id
	again, err := tr.Digest()
	require.NoError(t, err)
	require.Equal(t, id, again)

	// Any content change moves the digest.
	tr.TCM = "45field"
	moved, err := tr.Digest()
	require.NoError(t, err)
	require.NotEqual(t, id, moved)
}
