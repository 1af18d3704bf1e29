// SPDX-License-Identifier: MIT

package pathfinding_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/grid"
	"github.com/katalvlaran/algoviz/pathfinding"
)

// ExampleRun walks Dijkstra across a three-cell corridor. Each step is
// applied to the grid before it is yielded.
func ExampleRun() {
	g, err := grid.FromLayout("S.E")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	seq, err := pathfinding.Run(g, pathfinding.Dijkstra)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for s := range seq {
		fmt.Println(s)
	}
	fmt.Println(g)
	// Output:
	// Visit(0,0)
	// Relax(0,1=1)
	// Visit(0,1)
	// Relax(0,2=2)
	// Visit(0,2)
	// PathMark(0,1)
	// PathFound(len=3)
	// S*E
}

// ExampleRun_exhausted shows the terminal step when End is walled off.
func ExampleRun_exhausted() {
	g, _ := grid.FromLayout("S#E")
	seq, _ := pathfinding.Run(g, pathfinding.AStar)
	var last fmt.Stringer
	for s := range seq {
		last = s
	}
	fmt.Println(last)
	// Output:
	// Exhausted
}
