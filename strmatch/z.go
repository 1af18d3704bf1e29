// SPDX-License-Identifier: MIT

package strmatch

// zSentinel separates pattern and text. Decoded strings never contain a
// negative rune, so it matches nothing.
const zSentinel rune = -1

// z computes the Z array of pattern⧺sentinel⧺text. Comparisons inside the
// pattern prefix are silent; comparisons against text positions are
// reported. Table[i] receives the Z value of text position i, and a value
// equal to the pattern length is a match.
func (m *matcher) z() bool {
	k, n := len(m.p), len(m.t)
	s := make([]rune, 0, k+1+n)
	s = append(s, m.p...)
	s = append(s, zSentinel)
	s = append(s, m.t...)

	z := make([]int, len(s))
	m.st.Table = make([]int, n)
	l, r := 0, 0
	for q := 1; q < len(s); q++ {
		if q < r {
			z[q] = min(r-q, z[q-l])
		}
		inText := q > k
		// inside the Z-box a copied value short of the box edge is final
		extend := q >= r || z[q] == r-q
		for extend && q+z[q] < len(s) && z[q] < k {
			if inText {
				eq, ok := m.compare(q+z[q]-k-1, z[q])
				if !ok {
					return false
				}
				if !eq {
					break
				}
			} else if s[z[q]] != s[q+z[q]] {
				break
			}
			z[q]++
		}
		if q+z[q] > r {
			l, r = q, q+z[q]
		}
		if inText {
			ti := q - k - 1
			if !m.table(ti, z[q]) {
				return false
			}
			if z[q] == k && !m.match(ti, k) {
				return false
			}
		}
	}

	return true
}
