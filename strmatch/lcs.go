// SPDX-License-Identifier: MIT

package strmatch

import "github.com/katalvlaran/algoviz/step"

// lcs finds the longest substring shared by text and pattern with the
// classic suffix-length DP, two rows of length m+1. Table holds the current
// row. Table(i, best) is emitted whenever a longer common substring ending
// at text[i] appears; the first longest one is reported as the match.
func (m *matcher) lcs() bool {
	k := len(m.p)
	prev, cur := make([]int, k+1), make([]int, k+1)
	best, end := 0, -1
	for i := range m.t {
		m.st.Table = cur
		for j := 0; j < k; j++ {
			eq, ok := m.compare(i, j)
			if !ok {
				return false
			}
			if !eq {
				cur[j+1] = 0

				continue
			}
			cur[j+1] = prev[j] + 1
			if cur[j+1] > best {
				best, end = cur[j+1], i
				if !m.e.Emit(step.Table(i, best)) {
					return false
				}
			}
		}
		prev, cur = cur, prev
	}
	if best == 0 {
		return true
	}

	return m.match(end-best+1, best)
}
