// SPDX-License-Identifier: MIT

package sorting

import (
	"slices"

	"github.com/katalvlaran/algoviz/step"
)

// counting histograms v over [min, max], turns the histogram into prefix
// sums and places elements right-to-left into Aux, which keeps equal values
// in input order. Aux is then written back into Values.
// Table(b, c) reports count c for bucket b = value − min.
func (s *sorter) counting() bool {
	lo := slices.Min(s.v)
	hi := slices.Max(s.v)
	count := make([]int, hi-lo+1)

	for _, x := range s.v {
		b := x - lo
		count[b]++
		if !s.e.Emit(step.Table(b, count[b])) {
			return false
		}
	}
	for b := 1; b < len(count); b++ {
		count[b] += count[b-1]
		if !s.e.Emit(step.Table(b, count[b])) {
			return false
		}
	}

	s.a.Aux = make([]int, len(s.v))
	for i := len(s.v) - 1; i >= 0; i-- {
		x := s.v[i]
		b := x - lo
		count[b]--
		pos := count[b]
		s.a.Aux[pos] = x
		if !s.e.Emit(step.Overwrite(pos, x, step.BufferAux)) {
			return false
		}
	}

	for i, x := range s.a.Aux {
		if !s.write(i, x) {
			return false
		}
	}

	return true
}
