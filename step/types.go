// SPDX-License-Identifier: MIT

package step

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/algoviz/grid"
)

// Error taxonomy shared by all engines.
var (
	// ErrConfiguration indicates invalid input: missing endpoints, empty
	// pattern, non-positive sizes and the like.
	ErrConfiguration = errors.New("step: invalid configuration")

	// ErrUnsupportedAlgorithm indicates an unknown algorithm name.
	ErrUnsupportedAlgorithm = errors.New("step: unsupported algorithm")

	// ErrStepBudget indicates a run emitted more steps than allowed.
	ErrStepBudget = errors.New("step: step budget exceeded")

	// ErrRecursionDepth indicates a recursive engine nested too deeply.
	ErrRecursionDepth = errors.New("step: recursion depth exceeded")

	// ErrConsumed indicates a sequence was ranged more than once.
	ErrConsumed = errors.New("step: sequence already consumed")
)

// Kind tags a Step.
type Kind uint8

const (
	// KindVisit: a grid node was finalised (Cell).
	KindVisit Kind = iota + 1
	// KindFrontier: a grid node was pushed onto a stack or queue (Cell).
	KindFrontier
	// KindRelax: a grid node's distance improved (Cell, Value=distance).
	KindRelax
	// KindPathMark: an intermediate node joined the path (Cell).
	KindPathMark
	// KindPathFound: terminal, the Start→End path (Path).
	KindPathFound
	// KindExhausted: terminal, End is unreachable.
	KindExhausted
	// KindCompare: two array positions were compared (I, J).
	KindCompare
	// KindSwap: two array positions were exchanged (I, J).
	KindSwap
	// KindOverwrite: a buffer position received a value (I, Value, Buffer).
	KindOverwrite
	// KindTable: an auxiliary table entry was computed (I, Value).
	KindTable
	// KindCompareChar: text[I] was compared with pattern[J].
	KindCompareChar
	// KindWindow: a text window starting at I hashed to Value.
	KindWindow
	// KindMatchFound: an occurrence at text index I of length Value.
	KindMatchFound
	// KindNoMatch: no occurrence exists.
	KindNoMatch
	// KindDone: terminal, a sort or match run completed.
	KindDone
	// KindFault: terminal, the run aborted with Err.
	KindFault
)

var kindNames = [...]string{
	KindVisit:       "Visit",
	KindFrontier:    "Frontier",
	KindRelax:       "Relax",
	KindPathMark:    "PathMark",
	KindPathFound:   "PathFound",
	KindExhausted:   "Exhausted",
	KindCompare:     "Compare",
	KindSwap:        "Swap",
	KindOverwrite:   "Overwrite",
	KindTable:       "Table",
	KindCompareChar: "CompareChar",
	KindWindow:      "Window",
	KindMatchFound:  "MatchFound",
	KindNoMatch:     "NoMatch",
	KindDone:        "Done",
	KindFault:       "Fault",
}

// String returns the Step constructor name for k.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Terminal reports whether k ends a run.
func (k Kind) Terminal() bool {
	switch k {
	case KindPathFound, KindExhausted, KindDone, KindFault:
		return true
	}

	return false
}

// Buffer names the array an Overwrite targets.
type Buffer uint8

const (
	// BufferInput is the array being sorted.
	BufferInput Buffer = iota
	// BufferAux is the Counting Sort output buffer.
	BufferAux
)

// String returns "input" or "aux".
func (b Buffer) String() string {
	if b == BufferAux {
		return "aux"
	}

	return "input"
}

// Step is one observable transition. Steps are values; none of their
// fields alias engine state.
type Step struct {
	Kind   Kind
	Cell   grid.Coord // grid operand
	I, J   int        // index operands
	Value  int        // distance, value, hash or length
	Buffer Buffer     // Overwrite target
	Err    error      // Fault cause

	path []grid.Coord
}

// Path returns a copy of the PathFound path, Start first.
func (s Step) Path() []grid.Coord {
	return slices.Clone(s.path)
}

// String renders s in constructor form, e.g. "Swap(1,3)".
func (s Step) String() string {
	switch s.Kind {
	case KindVisit, KindFrontier, KindPathMark:
		return fmt.Sprintf("%s(%d,%d)", s.Kind, s.Cell.Row, s.Cell.Col)
	case KindRelax:
		return fmt.Sprintf("Relax(%d,%d=%d)", s.Cell.Row, s.Cell.Col, s.Value)
	case KindPathFound:
		return fmt.Sprintf("PathFound(len=%d)", len(s.path))
	case KindCompare, KindSwap, KindCompareChar:
		return fmt.Sprintf("%s(%d,%d)", s.Kind, s.I, s.J)
	case KindOverwrite:
		return fmt.Sprintf("Overwrite(%s[%d]=%d)", s.Buffer, s.I, s.Value)
	case KindTable, KindWindow:
		return fmt.Sprintf("%s(%d=%d)", s.Kind, s.I, s.Value)
	case KindMatchFound:
		return fmt.Sprintf("MatchFound(%d)", s.I)
	case KindFault:
		return fmt.Sprintf("Fault(%v)", s.Err)
	default:
		return s.Kind.String()
	}
}

// Visit records that c was finalised.
func Visit(c grid.Coord) Step { return Step{Kind: KindVisit, Cell: c} }

// Frontier records that c was pushed onto the search frontier.
func Frontier(c grid.Coord) Step { return Step{Kind: KindFrontier, Cell: c} }

// Relax records that c's distance improved to dist.
func Relax(c grid.Coord, dist int) Step { return Step{Kind: KindRelax, Cell: c, Value: dist} }

// PathMark records that c lies on the reconstructed path.
func PathMark(c grid.Coord) Step { return Step{Kind: KindPathMark, Cell: c} }

// PathFound ends a search with path (Start first). The slice is copied.
func PathFound(path []grid.Coord) Step {
	return Step{Kind: KindPathFound, Value: len(path), path: slices.Clone(path)}
}

// Exhausted ends a search that could not reach End.
func Exhausted() Step { return Step{Kind: KindExhausted} }

// Compare records a comparison of positions i and j.
func Compare(i, j int) Step { return Step{Kind: KindCompare, I: i, J: j} }

// Swap records an exchange of positions i and j.
func Swap(i, j int) Step { return Step{Kind: KindSwap, I: i, J: j} }

// Overwrite records buf[i] = v.
func Overwrite(i, v int, buf Buffer) Step {
	return Step{Kind: KindOverwrite, I: i, Value: v, Buffer: buf}
}

// Table records an auxiliary table entry table[i] = v.
func Table(i, v int) Step { return Step{Kind: KindTable, I: i, Value: v} }

// CompareChar records a comparison of text[i] and pattern[j].
func CompareChar(i, j int) Step { return Step{Kind: KindCompareChar, I: i, J: j} }

// Window records the hash of the text window starting at i.
func Window(i, hash int) Step { return Step{Kind: KindWindow, I: i, Value: hash} }

// MatchFound records an occurrence at text index i spanning length runes.
func MatchFound(i, length int) Step { return Step{Kind: KindMatchFound, I: i, Value: length} }

// NoMatch records that no occurrence exists.
func NoMatch() Step { return Step{Kind: KindNoMatch} }

// Done ends a sort or match run.
func Done() Step { return Step{Kind: KindDone} }

// Fault ends a run with err.
func Fault(err error) Step { return Step{Kind: KindFault, Err: err} }
