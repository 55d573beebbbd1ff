package kmap_test

import (
	"testing"

	"github.com/katalvlaran/veitch/kmap"
	"github.com/katalvlaran/veitch/notation"
)

// BenchmarkAssemble measures full-grid assembly for the widest map.
// Complexity: O(2^n) with n=4.
func BenchmarkAssemble(b *testing.B) {
	fn := notation.Function{
		Name:      "F",
		Variables: []string{"a", "b", "c", "d"},
		Minterms:  []int{0, 1, 5, 7, 8, 10, 14, 15},
		Form:      notation.FormSOP,
	}
	dontcares := []int{2, 11}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kmap.Assemble(fn, dontcares); err != nil {
			b.Fatalf("Assemble failed: %v", err)
		}
	}
}

// BenchmarkCoordinate measures single-term placement.
func BenchmarkCoordinate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := kmap.Coordinate(i&15, 4); err != nil {
			b.Fatalf("Coordinate failed: %v", err)
		}
	}
}
