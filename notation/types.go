// Package notation defines the function descriptor, normal-form markers
// and sentinel errors for Σ/Π parsing.
package notation

import "errors"

// Sentinel errors for notation parsing.
var (
	// ErrMalformedNotation indicates the input matches neither the Σ nor the Π grammar.
	ErrMalformedNotation = errors.New("notation: text matches neither sigma nor pi form")
	// ErrVariableCount indicates a variable count outside the supported 2..4 range.
	ErrVariableCount = errors.New("notation: variable count must be between 2 and 4")
	// ErrTermOutOfRange indicates a listed term outside [0, 2^n-1] for n variables.
	ErrTermOutOfRange = errors.New("notation: term out of range for variable count")
)

// Form identifies the normal form a function was declared in.
// Sigma notation yields sum-of-products, Pi notation product-of-sums.
// The values match the form_type strings of the minimizer wire contract.
type Form string

const (
	// FormSOP marks a sum-of-products (Σ minterm) declaration.
	FormSOP Form = "SOP"
	// FormPOS marks a product-of-sums (Π maxterm) declaration.
	FormPOS Form = "POS"
)

// Function is a parsed boolean-function descriptor.
//
// Variables is ordered most-significant bit first: with Variables[0] = "a"
// and n = 3, minterm 6 (binary 110) means a=1, b=1, c=0. Minterms is
// sorted ascending, deduplicated, and always a subset of [0, 2^n-1].
type Function struct {
	// Name is the declared output name, e.g. "F".
	Name string
	// Variables is the ordered variable list; its length n is in 2..4.
	Variables []string
	// Minterms holds every input combination for which the function is 1.
	Minterms []int
	// Form records whether the declaration was Σ (FormSOP) or Π (FormPOS).
	Form Form
}

// Universe returns 2^n, the number of input combinations over the
// function's variables. Complexity: O(1).
func (f Function) Universe() int {
	return 1 << len(f.Variables)
}
