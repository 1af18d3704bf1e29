// SPDX-License-Identifier: MIT

package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/step"
)

// ExampleRun prints every step of an insertion sort on two values.
func ExampleRun() {
	a := sorting.NewArray([]int{2, 1})
	seq, err := sorting.Run(a, sorting.Insertion)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for s := range seq {
		fmt.Println(s)
	}
	fmt.Println(a.Values)
	// Output:
	// Compare(0,1)
	// Overwrite(input[1]=2)
	// Overwrite(input[0]=1)
	// Done
	// [1 2]
}

// ExampleRun_counting sorts through the auxiliary buffer.
func ExampleRun_counting() {
	a := sorting.NewArray([]int{4, 2, 2, 8, 3, 3, 1})
	seq, _ := sorting.Run(a, sorting.Counting)
	tables := 0
	for s := range seq {
		if s.Kind == step.KindTable {
			tables++
		}
	}
	fmt.Println(a.Values, tables)
	// Output:
	// [1 2 2 3 3 4 8] 14
}
