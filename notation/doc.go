// Package notation parses canonical Σ/Π boolean-function notation into
// a structured function descriptor.
//
// What:
//
//   - Parse turns text such as "F(a,b,c) = Σm(1,2,5)" into a Function:
//     name, ordered variable list, sorted minterm set and normal form.
//   - Sigma form (Σm) lists minterms directly; Pi form (ΠM) lists
//     maxterms, which Parse complements within [0, 2^n−1].
//   - Keywords match case-insensitively; the Σ/σ and Π/π glyphs are
//     accepted as synonyms for "sigma" and "pi".
//
// Why:
//
//   - Σ/Π shorthand is how truth tables are dictated in logic-design
//     coursework and datasheets; everything downstream (grid assembly,
//     minimizer requests) starts from this descriptor.
//
// Grammar (whitespace-tolerant):
//
//	Name(v1,v2,...) = sigma m(t1,t2,...)
//	Name(v1,v2,...) = pi M(t1,t2,...)
//
// The numeric list may be empty: Σm() is the constant-0 function and
// ΠM() the constant-1 function over the declared variables.
//
// Errors:
//
//   - ErrMalformedNotation: text matches neither grammar.
//   - ErrVariableCount: fewer than 2 or more than 4 variables.
//   - ErrTermOutOfRange: a listed term falls outside [0, 2^n−1].
//
// Complexity: O(len(text) + 2^n) time, O(2^n) memory.
package notation
