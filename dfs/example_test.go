package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/builder"
	"github.com/katalvlaran/graphsearch/dfs"
)

// ExampleDFS walks a 4-cycle 0-1-2-3-0. The closing edge (3,0) is the
// newest entry in the list of 0, so the walk goes round the "back" first.
func ExampleDFS() {
	g, err := builder.BuildGraph(nil, builder.Cycle(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dfs.DFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth[1])
	// Output:
	// [0 3 2 1]
	// 3
}
