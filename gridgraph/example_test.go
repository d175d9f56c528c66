package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/crucible/gridgraph"
)

// ExampleRead builds a grid from raw puzzle text and inspects a few cells.
func ExampleRead() {
	g, err := gridgraph.Read(strings.NewReader("241\n321\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	c, _ := g.CostAt(2, 1)
	fmt.Printf("%dx%d, destination %v costs %d\n", g.Width, g.Height, g.Destination(), c)
	// Output: 3x2, destination {2 1} costs 1
}

// ExampleParseRows shows the error produced for a non-digit cell.
func ExampleParseRows() {
	_, err := gridgraph.ParseRows([]string{"12", "1?"})
	fmt.Println(err)
	// Output: gridgraph: cell must be a decimal digit (row 1, col 1)
}
