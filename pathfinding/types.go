// SPDX-License-Identifier: MIT

// Package pathfinding defines the algorithm set, options and sentinel
// errors for grid searches.
package pathfinding

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/algoviz/step"
)

// Sentinel errors for pathfinding.
var (
	// ErrNilGrid is returned when a nil grid is passed to Run.
	ErrNilGrid = fmt.Errorf("%w: pathfinding: grid is nil", step.ErrConfiguration)

	// ErrInvalidGrid wraps a grid role-invariant violation (missing Start/End, ...).
	ErrInvalidGrid = fmt.Errorf("%w: pathfinding: invalid grid", step.ErrConfiguration)

	// ErrBrokenChain is carried by a Fault step when Previous links from End
	// do not lead back to Start.
	ErrBrokenChain = errors.New("pathfinding: predecessor chain does not reach start")
)

// Algorithm selects a search strategy. The set is closed.
type Algorithm int

const (
	// DFS is depth-first search with an explicit stack.
	DFS Algorithm = iota + 1
	// BFS is breadth-first search with a FIFO queue.
	BFS
	// Dijkstra is uniform-cost search with a binary heap.
	Dijkstra
	// AStar is best-first search on g + Manhattan heuristic.
	AStar
	// BellmanFord relaxes all edges in rounds.
	BellmanFord
)

var algorithmNames = map[Algorithm]string{
	DFS:         "dfs",
	BFS:         "bfs",
	Dijkstra:    "dijkstra",
	AStar:       "astar",
	BellmanFord: "bellman-ford",
}

// String returns the canonical algorithm name.
func (a Algorithm) String() string {
	if n, ok := algorithmNames[a]; ok {
		return n
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{DFS, BFS, Dijkstra, AStar, BellmanFord}
}

// ParseAlgorithm maps a user-facing name to an Algorithm. Matching is
// case-insensitive; "a*", "a-star", "bellmanford" and "bellman_ford" are
// accepted aliases.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "depth-first":
		return DFS, nil
	case "bfs", "breadth-first":
		return BFS, nil
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	case "bellman-ford", "bellmanford", "bellman_ford":
		return BellmanFord, nil
	}

	return 0, fmt.Errorf("%w: pathfinding %q", step.ErrUnsupportedAlgorithm, name)
}

// Option configures a run.
type Option func(*Options)

// Options holds run limits.
type Options struct {
	Limits step.Limits
}

// DefaultOptions returns step.DefaultLimits. MaxDepth is unused because no
// search recurses.
func DefaultOptions() Options {
	return Options{Limits: step.DefaultLimits()}
}

// WithStepBudget caps the number of steps; 0 disables the cap.
// Panics on a negative budget.
func WithStepBudget(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("pathfinding: WithStepBudget(%d) is negative", n))
	}

	return func(o *Options) {
		o.Limits.StepBudget = n
	}
}
