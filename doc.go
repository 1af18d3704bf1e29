// SPDX-License-Identifier: MIT

// Package algoviz is the execution core of an algorithm visualizer: it
// builds models, runs algorithms over them as step sequences and plays those
// sequences back at a controlled pace.
//
// What is in the box?
//
//	• Model builders: random grids, arrays and text/pattern pairs (builder/)
//	• Pathfinding: DFS, BFS, Dijkstra, A*, Bellman-Ford (pathfinding/)
//	• Sorting: Selection, Bubble, Insertion, Merge, Quick, Counting, Heap (sorting/)
//	• String matching: KMP, Rabin-Karp, Z, Aho-Corasick, LCS (strmatch/)
//	• Playback: single-run controller, pacing, cancellation, snapshots (playback/)
//
// Every engine produces an iter.Seq[step.Step] and mutates its model as it is
// ranged. The terminal model state is the result; the steps describe how it
// was reached and are what a renderer animates.
//
// Quick start
//
//	g, _ := algoviz.GenerateGrid(20, 20, 0.2, builder.WithSeed(7))
//	src, _ := algoviz.RunPathfinding(g, "astar")
//	rep, err := playback.Play(ctx, playback.New(), src, func(f playback.Frame[*grid.Grid]) error {
//		draw(f.State)
//		return nil
//	})
//
// Errors
//
// Invalid input (missing endpoints, empty pattern, non-positive sizes)
// wraps step.ErrConfiguration; an unknown algorithm name wraps
// step.ErrUnsupportedAlgorithm. Both are returned before any step runs.
// Exhausted and NoMatch are ordinary outcomes, not errors.
package algoviz
