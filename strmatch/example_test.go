// SPDX-License-Identifier: MIT

package strmatch_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/step"
	"github.com/katalvlaran/algoviz/strmatch"
)

// ExampleRun searches with KMP and prints the LPS table it built.
func ExampleRun() {
	tx, err := builder.NewText("ABABDABACDABABCABAB", "ABABCABAB")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	st := strmatch.NewState(tx)
	seq, _ := strmatch.Run(st, strmatch.KMP)
	for s := range seq {
		if s.Kind == step.KindMatchFound || s.Kind == step.KindDone {
			fmt.Println(s)
		}
	}
	fmt.Println(st.Table, st.Matches)
	// Output:
	// MatchFound(10)
	// Done
	// [0 0 1 2 0 1 2 3 4] [{10 9}]
}

// ExampleRun_z reports overlapping occurrences through the Z table.
func ExampleRun_z() {
	tx, _ := builder.NewText("abab", "ab")
	st := strmatch.NewState(tx)
	seq, _ := strmatch.Run(st, strmatch.Z)
	for range seq {
	}
	fmt.Println(st.Table, st.Matches)
	// Output:
	// [2 0 2 0] [{0 2} {2 2}]
}
