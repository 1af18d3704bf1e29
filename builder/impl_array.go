// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_array.go - GenerateArray(n, maxValue) and NewText(text, pattern).

package builder

import "fmt"

const (
	methodArray = "GenerateArray"
	methodText  = "NewText"
)

// GenerateArray returns n independent values uniform in [0, maxValue).
// Complexity: O(n).
func GenerateArray(n, maxValue int, opts ...Option) ([]int, error) {
	if n < 1 || maxValue < 1 {
		return nil, fmt.Errorf("%s: n=%d maxValue=%d: %w", methodArray, n, maxValue, ErrTooSmall)
	}
	cfg := newBuilderConfig(opts...)
	out := make([]int, n)
	for i := range out {
		out[i] = cfg.rng.Intn(maxValue)
	}

	return out, nil
}

// Text is an immutable text/pattern pair. Accessors return copies.
type Text struct {
	text    []rune
	pattern []rune
}

// NewText validates and freezes a text/pattern pair. An empty pattern is a
// configuration error; a pattern longer than the text is accepted and simply
// cannot match.
func NewText(text, pattern string) (Text, error) {
	if pattern == "" {
		return Text{}, fmt.Errorf("%s: %w", methodText, ErrEmptyPattern)
	}

	return Text{text: []rune(text), pattern: []rune(pattern)}, nil
}

// Text returns a copy of the text runes.
func (t Text) Text() []rune { return append([]rune(nil), t.text...) }

// Pattern returns a copy of the pattern runes.
func (t Text) Pattern() []rune { return append([]rune(nil), t.pattern...) }

// Len returns the text and pattern lengths in runes.
func (t Text) Len() (n, m int) { return len(t.text), len(t.pattern) }

// Matchable reports whether the pattern can occur in the text at all.
func (t Text) Matchable() bool { return len(t.pattern) >= 1 && len(t.pattern) <= len(t.text) }
