package solver

import "sync"

// Sequencer issues monotonically increasing request tokens and decides
// which responses may still be applied. Rapid user edits can leave
// several solves in flight at once; completions may land in any order,
// and only a response newer than everything already applied is allowed
// to update displayed state.
//
// The zero value is ready to use. Safe for concurrent use.
type Sequencer struct {
	mu      sync.Mutex // guards issued and applied
	issued  uint64
	applied uint64
}

// Next reserves and returns the token for a new request. Tokens start at
// 1 so the zero token can never pass Accept. Complexity: O(1).
func (s *Sequencer) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++

	return s.issued
}

// Accept reports whether the response carrying tok may be applied, and
// records it if so. A token is accepted exactly when it is newer than
// every previously applied one; stale completions are rejected and the
// caller must discard them without touching displayed state.
// Complexity: O(1).
func (s *Sequencer) Accept(tok uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok <= s.applied || tok > s.issued {
		return false
	}
	s.applied = tok

	return true
}

// Latest returns the most recently issued token, 0 if none yet.
// Complexity: O(1).
func (s *Sequencer) Latest() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.issued
}
