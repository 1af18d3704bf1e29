// SPDX-License-Identifier: MIT

package pathfinding

import (
	"container/heap"

	"github.com/katalvlaran/algoviz/grid"
)

// frontierQueue wraps nodePQ with the insertion counter.
type frontierQueue struct {
	pq  nodePQ
	seq int
}

func (q *frontierQueue) push(idx, key int) {
	heap.Push(&q.pq, nodeItem{idx: idx, key: key, seq: q.seq})
	q.seq++
}

func (q *frontierQueue) pop() nodeItem {
	return heap.Pop(&q.pq).(nodeItem)
}

func (q *frontierQueue) empty() bool { return q.pq.Len() == 0 }

// dijkstra extracts nodes by tentative distance. Every edge costs 1.
// Stale entries (closed node or outdated distance) are skipped.
func (s *searcher) dijkstra() {
	g := s.g
	start, end := g.StartIndex(), g.EndIndex()
	g.Nodes[start].Distance = 0

	q := &frontierQueue{pq: make(nodePQ, 0, len(g.Nodes))}
	q.push(start, 0)
	for !q.empty() {
		it := q.pop()
		n := &g.Nodes[it.idx]
		if n.Visited || it.key != n.Distance {
			continue
		}
		if !s.visit(it.idx) {
			return
		}
		if it.idx == end {
			s.reconstruct()

			return
		}
		for _, v := range s.neighbors(it.idx) {
			m := &g.Nodes[v]
			if !m.Passable() || m.Visited {
				continue
			}
			nd := n.Distance + 1
			if nd >= m.Distance {
				continue
			}
			m.Distance = nd
			m.Previous = it.idx
			if !s.e.Emit(relax(g, v, nd)) {
				return
			}
			q.push(v, nd)
		}
	}
	s.exhausted()
}

// astar extracts nodes by f = g + h with h the Manhattan distance to End.
// Distance holds g, Heuristic h and TotalCost f.
func (s *searcher) astar() {
	g := s.g
	start, end := g.StartIndex(), g.EndIndex()
	goal := g.End()

	sn := &g.Nodes[start]
	sn.Distance = 0
	sn.Heuristic = sn.Coord().Manhattan(goal)
	sn.TotalCost = sn.Heuristic

	q := &frontierQueue{pq: make(nodePQ, 0, len(g.Nodes))}
	q.push(start, sn.TotalCost)
	for !q.empty() {
		it := q.pop()
		n := &g.Nodes[it.idx]
		if n.Visited || it.key != n.TotalCost {
			continue
		}
		if !s.visit(it.idx) {
			return
		}
		if it.idx == end {
			s.reconstruct()

			return
		}
		for _, v := range s.neighbors(it.idx) {
			m := &g.Nodes[v]
			if !m.Passable() || m.Visited {
				continue
			}
			ng := n.Distance + 1
			if ng >= m.Distance {
				continue
			}
			m.Distance = ng
			m.Heuristic = m.Coord().Manhattan(goal)
			m.TotalCost = ng + m.Heuristic
			m.Previous = it.idx
			if !s.e.Emit(relax(g, v, ng)) {
				return
			}
			q.push(v, m.TotalCost)
		}
	}
	s.exhausted()
}

// bellmanFord relaxes every edge out of every reached node, row-major, in
// rounds. It stops after |V|−1 rounds or the first round without updates.
// A node counts as visited once it is first reached.
func (s *searcher) bellmanFord() {
	g := s.g
	start, end := g.StartIndex(), g.EndIndex()
	g.Nodes[start].Distance = 0
	if !s.visit(start) {
		return
	}

	rounds := g.Passable() - 1
	for round := 0; round < rounds; round++ {
		updated := false
		for u := range g.Nodes {
			n := &g.Nodes[u]
			if !n.Passable() || n.Distance == grid.Infinity {
				continue
			}
			for _, v := range s.neighbors(u) {
				m := &g.Nodes[v]
				if !m.Passable() {
					continue
				}
				nd := n.Distance + 1
				if nd >= m.Distance {
					continue
				}
				m.Distance = nd
				m.Previous = u
				updated = true
				if !s.e.Emit(relax(g, v, nd)) {
					return
				}
				if !m.Visited && !s.visit(v) {
					return
				}
			}
		}
		if !updated {
			break
		}
	}

	if g.Nodes[end].Distance == grid.Infinity {
		s.exhausted()

		return
	}
	s.reconstruct()
}
