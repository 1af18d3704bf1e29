// SPDX-License-Identifier: MIT

package strmatch

import (
	"maps"
	"slices"

	"github.com/katalvlaran/algoviz/step"
)

// acNode is one trie state of the automaton.
type acNode struct {
	next  map[rune]int
	fail  int
	depth int
	out   []int // word indices ending here, longest first
}

// buildAutomaton builds the trie over words and links failure transitions
// breadth-first, visiting children in rune order.
func buildAutomaton(words [][]rune) []acNode {
	nodes := []acNode{{next: make(map[rune]int)}}
	for wi, w := range words {
		cur := 0
		for _, c := range w {
			nx, ok := nodes[cur].next[c]
			if !ok {
				nodes = append(nodes, acNode{next: make(map[rune]int), depth: nodes[cur].depth + 1})
				nx = len(nodes) - 1
				nodes[cur].next[c] = nx
			}
			cur = nx
		}
		nodes[cur].out = append(nodes[cur].out, wi)
	}

	queue := make([]int, 0, len(nodes))
	for _, c := range slices.Sorted(maps.Keys(nodes[0].next)) {
		queue = append(queue, nodes[0].next[c])
	}
	for h := 0; h < len(queue); h++ {
		u := queue[h]
		for _, c := range slices.Sorted(maps.Keys(nodes[u].next)) {
			v := nodes[u].next[c]
			f := nodes[u].fail
			for f != 0 {
				if _, ok := nodes[f].next[c]; ok {
					break
				}
				f = nodes[f].fail
			}
			if nx, ok := nodes[f].next[c]; ok {
				f = nx
			}
			nodes[v].fail = f
			nodes[v].out = append(nodes[v].out, nodes[f].out...)
			queue = append(queue, v)
		}
	}

	return nodes
}

// dictionary returns the pattern followed by the extra words, duplicates
// removed.
func (m *matcher) dictionary() [][]rune {
	seen := map[string]bool{string(m.p): true}
	words := [][]rune{m.p}
	for _, w := range m.dict {
		if seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, []rune(w))
	}

	return words
}

// ahoCorasick feeds the text through the automaton one character at a
// time. CompareChar(i, d) reports that after text[i] the longest suffix
// matching a trie path has length d. Every word ending at i is reported.
// A run where every word is longer than the text ends as NoMatch, Done.
func (m *matcher) ahoCorasick() bool {
	words := m.dictionary()
	if !slices.ContainsFunc(words, func(w []rune) bool { return len(w) <= len(m.t) }) {
		return true
	}
	nodes := buildAutomaton(words)

	state := 0
	for i, c := range m.t {
		for state != 0 {
			if _, ok := nodes[state].next[c]; ok {
				break
			}
			state = nodes[state].fail
		}
		state = nodes[state].next[c] // missing edge from the root stays at 0

		d := nodes[state].depth
		m.st.I, m.st.J = i, d
		if !m.e.Emit(step.CompareChar(i, d)) {
			return false
		}
		for _, wi := range nodes[state].out {
			length := len(words[wi])
			if !m.match(i-length+1, length) {
				return false
			}
		}
	}

	return true
}
