// SPDX-License-Identifier: MIT

package pathfinding

// dfs pops the most recently pushed node first. A node may be pushed several
// times; its Previous belongs to the last pusher, which is the one that pops
// it. Distance records the depth along the resulting tree.
func (s *searcher) dfs() {
	g := s.g
	start, end := g.StartIndex(), g.EndIndex()
	g.Nodes[start].Distance = 0

	stack := make([]int, 0, len(g.Nodes))
	stack = append(stack, start)
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &g.Nodes[u]
		if n.Visited {
			continue
		}
		if !s.visit(u) {
			return
		}
		if u == end {
			s.reconstruct()

			return
		}
		for _, v := range s.neighbors(u) {
			m := &g.Nodes[v]
			if !m.Passable() || m.Visited {
				continue
			}
			m.Previous = u
			m.Distance = n.Distance + 1
			stack = append(stack, v)
			if !s.e.Emit(frontier(g, v)) {
				return
			}
		}
	}
	s.exhausted()
}

// bfs discovers each node once; Previous is fixed at first discovery, so
// the reconstructed path has the minimum number of edges.
func (s *searcher) bfs() {
	g := s.g
	start, end := g.StartIndex(), g.EndIndex()
	g.Nodes[start].Distance = 0

	discovered := make([]bool, len(g.Nodes))
	discovered[start] = true
	queue := make([]int, 0, len(g.Nodes))
	queue = append(queue, start)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		n := &g.Nodes[u]
		if !s.visit(u) {
			return
		}
		if u == end {
			s.reconstruct()

			return
		}
		for _, v := range s.neighbors(u) {
			m := &g.Nodes[v]
			if !m.Passable() || discovered[v] {
				continue
			}
			discovered[v] = true
			m.Previous = u
			m.Distance = n.Distance + 1
			queue = append(queue, v)
			if !s.e.Emit(frontier(g, v)) {
				return
			}
		}
	}
	s.exhausted()
}
