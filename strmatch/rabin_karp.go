// SPDX-License-Identifier: MIT

package strmatch

import "github.com/katalvlaran/algoviz/step"

// Rolling hash parameters: h(s) = Σ s[j]·base^(m−1−j) mod modulus.
const (
	rkBase    = 256
	rkModulus = 101
)

// roll appends r to hash h.
func roll(h int, r rune) int {
	return (h*rkBase + int(r)) % rkModulus
}

// rabinKarp slides a window of the pattern's length over the text. Each
// window is reported with its hash; a hash equal to the pattern's is
// verified character by character. Table[0] holds the pattern hash.
func (m *matcher) rabinKarp() bool {
	n, k := len(m.t), len(m.p)
	pow := 1
	for i := 1; i < k; i++ {
		pow = pow * rkBase % rkModulus
	}
	ph, th := 0, 0
	for i := 0; i < k; i++ {
		ph = roll(ph, m.p[i])
		th = roll(th, m.t[i])
	}
	m.st.Table = []int{ph}

	for i := 0; ; i++ {
		m.st.Hash = th
		if !m.e.Emit(step.Window(i, th)) {
			return false
		}
		if th == ph {
			full := true
			for j := 0; j < k; j++ {
				eq, ok := m.compare(i+j, j)
				if !ok {
					return false
				}
				if !eq {
					full = false

					break
				}
			}
			if full && !m.match(i, k) {
				return false
			}
		}
		if i+k >= n {
			return true
		}
		lead := int(m.t[i]) % rkModulus * pow % rkModulus
		th = roll((th+rkModulus-lead)%rkModulus, m.t[i+k])
	}
}
