// File: kmap/example_test.go
package kmap_test

import (
	"fmt"

	"github.com/katalvlaran/veitch/kmap"
	"github.com/katalvlaran/veitch/notation"
)

// ExampleAssemble demonstrates building the 2×4 map for a three-variable
// function. Columns follow the Gray order 00,01,11,10, so minterm 2
// (binary 010) lands in the last column, not the third.
func ExampleAssemble() {
	fn, _ := notation.Parse("F(a,b,c) = Σm(1,2,5)")
	g, _ := kmap.Assemble(fn, nil)

	fmt.Println("rows:", g.RowVars, g.RowLabels)
	fmt.Println("cols:", g.ColVars, g.ColLabels)
	for _, row := range g.Cells {
		fmt.Println(row)
	}

	// Output:
	// rows: [a] [0 1]
	// cols: [b c] [00 01 11 10]
	// [0 1 0 1]
	// [0 1 0 0]
}

// ExampleCoordinate demonstrates the Gray placement of a single term.
func ExampleCoordinate() {
	c, _ := kmap.Coordinate(6, 3) // binary 110: row bit 1, column bits 10
	fmt.Printf("row=%d col=%d\n", c.Row, c.Col)

	// Output:
	// row=1 col=3
}
