// SPDX-License-Identifier: MIT

package strmatch

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/algoviz/step"
)

// matcher holds the mutable state of one run.
type matcher struct {
	st   *State
	t, p []rune
	e    *step.Emitter
	dict []string
}

// Run validates st and algo and returns the step sequence of the search.
// The sequence is single-use; ranging it resets st's run metadata first.
func Run(st *State, algo Algorithm, opts ...Option) (iter.Seq[step.Step], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if st == nil {
		return nil, ErrNilState
	}
	if len(st.Pattern) == 0 {
		return nil, ErrEmptyPattern
	}

	var body func(*matcher) bool
	switch algo {
	case KMP:
		body = (*matcher).kmp
	case RabinKarp:
		body = (*matcher).rabinKarp
	case Z:
		body = (*matcher).z
	case AhoCorasick:
		body = (*matcher).ahoCorasick
	case LCS:
		body = (*matcher).lcs
	default:
		return nil, fmt.Errorf("%w: strmatch %v", step.ErrUnsupportedAlgorithm, algo)
	}

	return step.Sequence(cfg.Limits, func(e *step.Emitter) {
		st.reset()
		m := &matcher{st: st, t: st.Text, p: st.Pattern, e: e, dict: cfg.Dictionary}
		if fixedLength(algo) && len(m.p) > len(m.t) {
			m.finish()

			return
		}
		if body(m) {
			m.finish()
		}
	}), nil
}

// fixedLength reports whether algo only finds the whole pattern, which then
// cannot occur in a shorter text.
func fixedLength(algo Algorithm) bool {
	return algo != AhoCorasick && algo != LCS
}

// finish emits NoMatch when nothing matched, then Done.
func (m *matcher) finish() {
	if len(m.st.Matches) == 0 && !m.e.Emit(step.NoMatch()) {
		return
	}
	m.e.Emit(step.Done())
}

// compare moves the cursor to (i, j), reports it and returns whether the
// characters are equal. ok is false once the run must stop.
func (m *matcher) compare(i, j int) (equal, ok bool) {
	m.st.I, m.st.J = i, j
	if !m.e.Emit(step.CompareChar(i, j)) {
		return false, false
	}

	return m.t[i] == m.p[j], true
}

// match records and reports an occurrence.
func (m *matcher) match(i, length int) bool {
	m.st.Matches = append(m.st.Matches, Match{Index: i, Length: length})

	return m.e.Emit(step.MatchFound(i, length))
}

// table stores v at Table[i] and reports it.
func (m *matcher) table(i, v int) bool {
	m.st.Table[i] = v

	return m.e.Emit(step.Table(i, v))
}
