// Package solver defines request/response payloads and sentinel errors
// for the external minimizer contract.
package solver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/veitch/notation"
)

// ErrUnavailable indicates the minimizer could not be reached at all.
var ErrUnavailable = errors.New("solver: minimizer unavailable")

// RemoteError carries an error payload returned by the minimizer. The
// message is opaque and passed through for display, never interpreted.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("solver: remote error: %s", e.Message)
}

// Request is the minimizer request payload. Terms travel as decimal
// strings and the variable list as comma-joined text, per the contract.
type Request struct {
	OutputName string   `json:"output_name"`
	Variables  string   `json:"variables"`
	Minterms   []string `json:"minterms"`
	Dontcares  []string `json:"dontcares"`
	FormType   string   `json:"form_type"` // "SOP" or "POS"
}

// KMap is the map object inside a successful response.
type KMap struct {
	Map          [][]string `json:"map"`
	RowLabels    []string   `json:"row_labels"`
	ColLabels    []string   `json:"col_labels"`
	RowVars      string     `json:"row_vars"`
	ColVars      string     `json:"col_vars"`
	OutputName   string     `json:"output_name"`
	Groups       [][]int    `json:"groups"`
	Explanations []string   `json:"explanations"`
	FormType     string     `json:"form_type"`
}

// Response is the full minimizer answer. Exactly one of (Solution, KMap)
// or Err is populated.
type Response struct {
	Solution string `json:"solution"`
	KMap     *KMap  `json:"kmap"`
	Err      string `json:"error,omitempty"`
}

// Remote returns the response's error payload as a *RemoteError, or nil
// for a success response. Complexity: O(1).
func (r *Response) Remote() error {
	if r == nil || r.Err == "" {
		return nil
	}

	return &RemoteError{Message: r.Err}
}

// Groups returns the solver's group list, nil-safe on failure responses.
// Complexity: O(1).
func (r *Response) Groups() [][]int {
	if r == nil || r.KMap == nil {
		return nil
	}

	return r.KMap.Groups
}

// NewRequest builds the wire request for fn and its don't-care set.
// Complexity: O(|minterms| + |dontcares|).
func NewRequest(fn notation.Function, dontcares []int) Request {
	return Request{
		OutputName: fn.Name,
		Variables:  strings.Join(fn.Variables, ","),
		Minterms:   decimals(fn.Minterms),
		Dontcares:  decimals(dontcares),
		FormType:   string(fn.Form),
	}
}

// decimals renders terms as decimal strings, always non-nil so the
// payload serializes as [] rather than null.
func decimals(terms []int) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = strconv.Itoa(t)
	}

	return out
}

// Solver is the transport-agnostic minimizer interface. Implementations
// must honor ctx cancellation; timeouts and retries live with the caller.
type Solver interface {
	Solve(ctx context.Context, req Request) (*Response, error)
}

// Func adapts an ordinary function to the Solver interface.
type Func func(ctx context.Context, req Request) (*Response, error)

// Solve implements Solver.
func (f Func) Solve(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}
