package solver_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/veitch/notation"
	"github.com/katalvlaran/veitch/solver"
)

// TestNewRequest verifies the wire shape: comma-joined variables,
// decimal-string terms, and the declared form type.
func TestNewRequest(t *testing.T) {
	fn, err := notation.Parse("F(a,b,c) = Σm(1,2,5)")
	require.NoError(t, err)

	req := solver.NewRequest(fn, []int{0, 7})
	require.Equal(t, "F", req.OutputName)
	require.Equal(t, "a,b,c", req.Variables)
	require.Equal(t, []string{"1", "2", "5"}, req.Minterms)
	require.Equal(t, []string{"0", "7"}, req.Dontcares)
	require.Equal(t, "SOP", req.FormType)
}

// TestNewRequest_EmptySets verifies empty term lists serialize as [],
// never null.
func TestNewRequest_EmptySets(t *testing.T) {
	fn, err := notation.Parse("F(a,b) = Σm()")
	require.NoError(t, err)

	raw, err := json.Marshal(solver.NewRequest(fn, nil))
	require.NoError(t, err)
	require.Contains(t, string(raw), `"minterms":[]`)
	require.Contains(t, string(raw), `"dontcares":[]`)
}

// TestResponse_Success verifies decoding a canonical success payload.
func TestResponse_Success(t *testing.T) {
	const payload = `{
		"solution": "b'c + a'b",
		"kmap": {
			"map": [["0","1","0","1"],["0","1","0","0"]],
			"row_labels": ["0","1"],
			"col_labels": ["00","01","11","10"],
			"row_vars": "a",
			"col_vars": "b,c",
			"output_name": "F",
			"groups": [[1,5],[2]],
			"explanations": ["..."],
			"form_type": "SOP"
		}
	}`

	var resp solver.Response
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	require.NoError(t, resp.Remote())
	require.Equal(t, "b'c + a'b", resp.Solution)
	require.Equal(t, [][]int{{1, 5}, {2}}, resp.Groups())
	require.Equal(t, "a", resp.KMap.RowVars)
}

// TestResponse_Failure verifies the error payload turns into a
// RemoteError and yields no groups.
func TestResponse_Failure(t *testing.T) {
	var resp solver.Response
	require.NoError(t, json.Unmarshal([]byte(`{"error":"5 variables not supported"}`), &resp))

	err := resp.Remote()
	require.Error(t, err)
	var remote *solver.RemoteError
	require.ErrorAs(t, err, &remote)
	require.Equal(t, "5 variables not supported", remote.Message)
	require.Nil(t, resp.Groups())
}

// TestFuncAdapter verifies the Func adapter satisfies Solver.
func TestFuncAdapter(t *testing.T) {
	var sv solver.Solver = solver.Func(func(_ context.Context, req solver.Request) (*solver.Response, error) {
		return &solver.Response{Solution: req.OutputName}, nil
	})

	resp, err := sv.Solve(context.Background(), solver.Request{OutputName: "G"})
	require.NoError(t, err)
	require.Equal(t, "G", resp.Solution)
}
