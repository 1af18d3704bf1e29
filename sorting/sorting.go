// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/algoviz/step"
)

// sorter holds the mutable state of one run.
type sorter struct {
	a *Array
	v []int // alias of a.Values
	e *step.Emitter

	tmp []int // merge sort scratch
}

// Run validates a and algo and returns the step sequence of the sort.
// The sequence is single-use and sorts a.Values in place while ranged.
func Run(a *Array, algo Algorithm, opts ...Option) (iter.Seq[step.Step], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if a == nil || len(a.Values) == 0 {
		return nil, ErrEmptyArray
	}

	var body func(*sorter) bool
	switch algo {
	case Selection:
		body = (*sorter).selection
	case Bubble:
		body = (*sorter).bubble
	case Insertion:
		body = (*sorter).insertion
	case Merge:
		body = (*sorter).merge
	case Quick:
		body = (*sorter).quick
	case Counting:
		lo, hi := slices.Min(a.Values), slices.Max(a.Values)
		if span := hi - lo + 1; span > cfg.MaxCountingRange || span <= 0 {
			return nil, fmt.Errorf("%w: [%d, %d] exceeds %d", ErrCountingRange, lo, hi, cfg.MaxCountingRange)
		}
		body = (*sorter).counting
	case Heap:
		body = (*sorter).heap
	default:
		return nil, fmt.Errorf("%w: sorting %v", step.ErrUnsupportedAlgorithm, algo)
	}

	return step.Sequence(cfg.Limits, func(e *step.Emitter) {
		a.Aux = nil
		s := &sorter{a: a, v: a.Values, e: e}
		if body(s) {
			e.Emit(step.Done())
		}
	}), nil
}

// compare reports positions i and j.
func (s *sorter) compare(i, j int) bool {
	return s.e.Emit(step.Compare(i, j))
}

// swap exchanges positions i and j and reports it.
func (s *sorter) swap(i, j int) bool {
	s.v[i], s.v[j] = s.v[j], s.v[i]

	return s.e.Emit(step.Swap(i, j))
}

// write stores x at position i of Values and reports it.
func (s *sorter) write(i, x int) bool {
	s.v[i] = x

	return s.e.Emit(step.Overwrite(i, x, step.BufferInput))
}
