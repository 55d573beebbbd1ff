package notation

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// The two accepted grammars share the "Name(v1,v2,...) =" head and the
// parenthesized decimal list tail; only the keyword between them differs.
// Case folding in Go regexp is Unicode-aware, so (?i:σ) also matches Σ.
const (
	reHead = `^\s*([A-Za-z_]\w*)\s*\(\s*([A-Za-z_]\w*(?:\s*,\s*[A-Za-z_]\w*)*)\s*\)\s*=\s*`
	reTail = `\s*(?i:m)\s*\(\s*(\d+(?:\s*,\s*\d+)*)?\s*\)\s*$`
)

var (
	sigmaRe = regexp.MustCompile(reHead + `(?i:sigma|σ)` + reTail)
	piRe    = regexp.MustCompile(reHead + `(?i:pi|π)` + reTail)
)

// Parse converts a textual Σ/Π declaration into a Function.
//
// Validation order is fixed: grammar match first (ErrMalformedNotation),
// then variable count (ErrVariableCount), then term range
// (ErrTermOutOfRange); minterm computation happens only after all three.
// Parse is a pure function of its input.
//
// Complexity: O(len(text) + 2^n) time, O(2^n) memory.
func Parse(text string) (Function, error) {
	form := FormSOP
	m := sigmaRe.FindStringSubmatch(text)
	if m == nil {
		form = FormPOS
		m = piRe.FindStringSubmatch(text)
	}
	if m == nil {
		return Function{}, fmt.Errorf("%w: %q", ErrMalformedNotation, strings.TrimSpace(text))
	}

	name, vars := m[1], splitNames(m[2])
	if len(vars) < 2 || len(vars) > 4 {
		return Function{}, fmt.Errorf("%w: got %d", ErrVariableCount, len(vars))
	}

	universe := 1 << len(vars)
	listed, err := parseTerms(m[3], universe)
	if err != nil {
		return Function{}, err
	}

	fn := Function{Name: name, Variables: vars, Form: form}
	if form == FormSOP {
		fn.Minterms = listed
	} else {
		fn.Minterms = complement(listed, universe)
	}

	return fn, nil
}

// splitNames splits the comma-separated variable list already vetted by
// the grammar, trimming the whitespace the grammar tolerates.
func splitNames(s string) []string {
	parts := strings.Split(s, ",")
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = strings.TrimSpace(p)
	}

	return names
}

// parseTerms converts the decimal list into a sorted, deduplicated term
// slice and rejects any term outside [0, universe-1]. An empty list is
// valid and yields an empty (non-nil) slice.
func parseTerms(list string, universe int) ([]int, error) {
	terms := make([]int, 0, universe)
	if strings.TrimSpace(list) == "" {
		return terms, nil
	}
	seen := make(map[int]bool, universe)
	for _, field := range strings.Split(list, ",") {
		t, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			// Unreachable once the grammar matched; kept as a guard.
			return nil, fmt.Errorf("%w: %q", ErrMalformedNotation, field)
		}
		if t >= universe {
			return nil, fmt.Errorf("%w: term %d with universe [0,%d]", ErrTermOutOfRange, t, universe-1)
		}
		if !seen[t] {
			seen[t] = true
			terms = append(terms, t)
		}
	}
	sort.Ints(terms)

	return terms, nil
}

// complement returns {0,...,universe-1} \ listed, sorted ascending.
// listed must itself be sorted, as produced by parseTerms.
func complement(listed []int, universe int) []int {
	out := make([]int, 0, universe-len(listed))
	next := 0
	for t := 0; t < universe; t++ {
		if next < len(listed) && listed[next] == t {
			next++
			continue
		}
		out = append(out, t)
	}

	return out
}
