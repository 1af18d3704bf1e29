// SPDX-License-Identifier: MIT

package strmatch

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/step"
)

// Sentinel errors for strmatch.
var (
	// ErrNilState is returned when Run receives a nil State.
	ErrNilState = fmt.Errorf("%w: strmatch: state is nil", step.ErrConfiguration)

	// ErrEmptyPattern is returned for a State without a pattern.
	ErrEmptyPattern = fmt.Errorf("%w: strmatch: pattern is empty", step.ErrConfiguration)
)

// Match is one reported occurrence.
type Match struct {
	Index  int // text offset in runes
	Length int
}

// State is the string matching model. Text and Pattern are fixed for the
// life of the State; the remaining fields are run metadata.
type State struct {
	Text    []rune
	Pattern []rune

	I, J    int     // last compared text and pattern positions, -1 before the first
	Table   []int   // LPS, Z values or the current DP row, per algorithm
	Hash    int     // current window hash (RabinKarp)
	Matches []Match // occurrences reported so far
}

// NewState copies a validated text/pattern pair into a fresh State.
func NewState(t builder.Text) *State {
	return &State{Text: t.Text(), Pattern: t.Pattern(), I: -1, J: -1}
}

// Clone returns a deep copy of st.
func (st *State) Clone() *State {
	if st == nil {
		return nil
	}
	cp := *st
	cp.Text = slices.Clone(st.Text)
	cp.Pattern = slices.Clone(st.Pattern)
	cp.Table = slices.Clone(st.Table)
	cp.Matches = slices.Clone(st.Matches)

	return &cp
}

// reset clears run metadata.
func (st *State) reset() {
	st.I, st.J = -1, -1
	st.Table = nil
	st.Hash = 0
	st.Matches = nil
}

// Algorithm selects a matching strategy. The set is closed.
type Algorithm int

const (
	// KMP is Knuth-Morris-Pratt.
	KMP Algorithm = iota + 1
	// RabinKarp uses a rolling hash.
	RabinKarp
	// Z uses the Z array.
	Z
	// AhoCorasick runs a multi-pattern automaton.
	AhoCorasick
	// LCS finds the longest common substring.
	LCS
)

var algorithmNames = map[Algorithm]string{
	KMP:         "kmp",
	RabinKarp:   "rabin-karp",
	Z:           "z",
	AhoCorasick: "aho-corasick",
	LCS:         "lcs",
}

// String returns the canonical algorithm name.
func (a Algorithm) String() string {
	if n, ok := algorithmNames[a]; ok {
		return n
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{KMP, RabinKarp, Z, AhoCorasick, LCS}
}

// ParseAlgorithm maps names such as "kmp", "rabinKarp", "zAlgorithm",
// "aho-corasick" or "longestCommonSubstring" to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	switch key {
	case "kmp", "knuthmorrispratt":
		return KMP, nil
	case "rabinkarp", "rk":
		return RabinKarp, nil
	case "z", "zalgorithm":
		return Z, nil
	case "ahocorasick", "ac":
		return AhoCorasick, nil
	case "lcs", "longestcommonsubstring":
		return LCS, nil
	}

	return 0, fmt.Errorf("%w: strmatch %q", step.ErrUnsupportedAlgorithm, name)
}

// Option configures a run.
type Option func(*Options)

// Options holds run limits and extra AhoCorasick words.
type Options struct {
	Limits     step.Limits
	Dictionary []string
}

// DefaultOptions returns step.DefaultLimits and no dictionary.
func DefaultOptions() Options {
	return Options{Limits: step.DefaultLimits()}
}

// WithStepBudget caps the number of steps; 0 disables the cap.
// Panics on a negative budget.
func WithStepBudget(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("strmatch: WithStepBudget(%d) is negative", n))
	}

	return func(o *Options) {
		o.Limits.StepBudget = n
	}
}

// WithDictionary adds words searched alongside the pattern by AhoCorasick.
// Other algorithms ignore it. Panics on an empty word.
func WithDictionary(words ...string) Option {
	for _, w := range words {
		if w == "" {
			panic("strmatch: WithDictionary: empty word")
		}
	}
	words = slices.Clone(words)

	return func(o *Options) {
		o.Dictionary = append(o.Dictionary, words...)
	}
}
