// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridnav/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Neighbors lists the king-move neighbors of a cell next to a
// threat. Cells in the threat's 3×3 zone are skipped unless explicitly allowed.
//
// Scenario:
//
//   - 4×4 grid, walker at (1,1), threat at (3,3), destination (2,2).
//   - (2,2) lies in the threat zone but is allowed because it is the destination.
func ExampleGrid_Neighbors() {
	g := gridgraph.Grid{Rows: 4, Columns: 4}
	ex := gridgraph.NewExclusion([]gridgraph.Cell{{Row: 3, Column: 3}}, gridgraph.Cell{Row: 2, Column: 2})

	for _, n := range g.Neighbors(gridgraph.Cell{Row: 1, Column: 1}, ex, nil) {
		fmt.Print(n, " ")
	}
	fmt.Println()

	// Output:
	// (0,0) (1,0) (2,0) (0,1) (2,1) (0,2) (1,2) (2,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: Region
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Region shows a threat zone cutting a narrow board in two.
func ExampleGrid_Region() {
	g := gridgraph.Grid{Rows: 3, Columns: 5}
	ex := gridgraph.NewExclusion([]gridgraph.Cell{{Row: 1, Column: 2}})

	region, _ := g.Region(gridgraph.Cell{Row: 0, Column: 0}, ex)
	fmt.Println("reachable:", len(region))
	fmt.Println("connected:", g.Connected(gridgraph.Cell{Row: 0, Column: 0}, gridgraph.Cell{Row: 0, Column: 4}, ex))

	// Output:
	// reachable: 3
	// connected: false
}
