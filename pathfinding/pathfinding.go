// SPDX-License-Identifier: MIT

package pathfinding

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/algoviz/grid"
	"github.com/katalvlaran/algoviz/step"
)

// searcher holds the mutable state of one run.
type searcher struct {
	g   *grid.Grid
	e   *step.Emitter
	nbr []int // neighbor scratch buffer, reused per expansion
}

// Run validates g and algo and returns the step sequence of the search.
// The sequence is single-use: ranging it resets g's search metadata, runs
// the search and leaves g in the state described by the last step received.
func Run(g *grid.Grid, algo Algorithm, opts ...Option) (iter.Seq[step.Step], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrid, err)
	}

	var body func(*searcher)
	switch algo {
	case DFS:
		body = (*searcher).dfs
	case BFS:
		body = (*searcher).bfs
	case Dijkstra:
		body = (*searcher).dijkstra
	case AStar:
		body = (*searcher).astar
	case BellmanFord:
		body = (*searcher).bellmanFord
	default:
		return nil, fmt.Errorf("%w: pathfinding %v", step.ErrUnsupportedAlgorithm, algo)
	}

	return step.Sequence(cfg.Limits, func(e *step.Emitter) {
		g.Reset()
		s := &searcher{g: g, e: e, nbr: make([]int, 0, 4)}
		body(s)
	}), nil
}

// neighbors refreshes the scratch buffer with the neighbors of u.
func (s *searcher) neighbors(u int) []int {
	s.nbr = s.g.Neighbors(u, s.nbr[:0])

	return s.nbr
}

// visit closes u and reports it.
func (s *searcher) visit(u int) bool {
	s.g.Nodes[u].Visited = true

	return s.e.Emit(step.Visit(s.g.Coord(u)))
}

// exhausted reports that End cannot be reached.
func (s *searcher) exhausted() {
	s.e.Emit(step.Exhausted())
}

// reconstruct follows Previous from End back to Start, emitting PathMark for
// every intermediate node and finally PathFound with the Start→End path.
// A chain that does not reach Start within len(Nodes) hops faults.
func (s *searcher) reconstruct() {
	g := s.g
	start, end := g.StartIndex(), g.EndIndex()

	chain := make([]int, 0, 16)
	for cur := end; ; {
		chain = append(chain, cur)
		if cur == start {
			break
		}
		prev := g.Nodes[cur].Previous
		if prev == grid.NoPrevious || len(chain) > len(g.Nodes) {
			s.e.Fail(fmt.Errorf("%w: stuck at %v", ErrBrokenChain, g.Coord(cur)))

			return
		}
		cur = prev
	}

	// chain runs End..Start; intermediates are chain[1 : len-1].
	for i := 1; i < len(chain)-1; i++ {
		n := &g.Nodes[chain[i]]
		n.OnPath = true
		if !s.e.Emit(step.PathMark(n.Coord())) {
			return
		}
	}

	path := make([]grid.Coord, len(chain))
	for i, idx := range chain {
		path[i] = g.Coord(idx)
	}
	slices.Reverse(path)
	s.e.Emit(step.PathFound(path))
}

// frontier builds the Frontier step for arena index v.
func frontier(g *grid.Grid, v int) step.Step {
	return step.Frontier(g.Coord(v))
}

// relax builds the Relax step for arena index v with tentative distance d.
func relax(g *grid.Grid, v, d int) step.Step {
	return step.Relax(g.Coord(v), d)
}
