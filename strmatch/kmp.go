// SPDX-License-Identifier: MIT

package strmatch

// kmp builds the longest-proper-prefix-suffix table, then scans the text
// once. After a full match the scan falls back to LPS[m−1], so overlapping
// occurrences are reported too.
func (m *matcher) kmp() bool {
	p, t := m.p, m.t
	lps := make([]int, len(p))
	m.st.Table = lps
	if !m.table(0, 0) {
		return false
	}
	for i, k := 1, 0; i < len(p); {
		switch {
		case p[i] == p[k]:
			k++
			if !m.table(i, k) {
				return false
			}
			i++
		case k > 0:
			k = lps[k-1]
		default:
			if !m.table(i, 0) {
				return false
			}
			i++
		}
	}

	for i, j := 0, 0; i < len(t); {
		eq, ok := m.compare(i, j)
		if !ok {
			return false
		}
		switch {
		case eq:
			i++
			j++
			if j == len(p) {
				if !m.match(i-j, j) {
					return false
				}
				j = lps[j-1]
			}
		case j > 0:
			j = lps[j-1]
		default:
			i++
		}
	}

	return true
}
