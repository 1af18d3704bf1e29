// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/algoviz/step"
)

// Sentinel errors for sorting.
var (
	// ErrEmptyArray is returned for a nil or zero-length Array.
	ErrEmptyArray = fmt.Errorf("%w: sorting: array is empty", step.ErrConfiguration)

	// ErrCountingRange is returned when max−min+1 exceeds the counting range limit.
	ErrCountingRange = fmt.Errorf("%w: sorting: value range too wide for counting sort", step.ErrConfiguration)
)

// DefaultMaxCountingRange bounds the histogram size of Counting sort.
const DefaultMaxCountingRange = 1 << 16

// Array is the sorting model: the values being sorted and an auxiliary
// buffer used by Counting sort. Aux is nil for every other algorithm.
type Array struct {
	Values []int
	Aux    []int
}

// NewArray copies values into a fresh Array.
func NewArray(values []int) *Array {
	return &Array{Values: slices.Clone(values)}
}

// Clone returns a deep copy of a.
func (a *Array) Clone() *Array {
	if a == nil {
		return nil
	}

	return &Array{Values: slices.Clone(a.Values), Aux: slices.Clone(a.Aux)}
}

// Sorted reports whether Values is non-decreasing.
func (a *Array) Sorted() bool {
	return slices.IsSorted(a.Values)
}

// Len returns len(Values).
func (a *Array) Len() int { return len(a.Values) }

// Algorithm selects a sorting strategy. The set is closed.
type Algorithm int

const (
	// Selection sort.
	Selection Algorithm = iota + 1
	// Bubble sort.
	Bubble
	// Insertion sort.
	Insertion
	// Merge sort.
	Merge
	// Quick sort.
	Quick
	// Counting sort.
	Counting
	// Heap sort.
	Heap
)

var algorithmNames = map[Algorithm]string{
	Selection: "selection",
	Bubble:    "bubble",
	Insertion: "insertion",
	Merge:     "merge",
	Quick:     "quick",
	Counting:  "counting",
	Heap:      "heap",
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
	return []Algorithm{Selection, Bubble, Insertion, Merge, Quick, Counting, Heap}
}

// ParseAlgorithm maps a name such as "quick", "QuickSort" or "quick-sort"
// to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	key = strings.TrimSuffix(key, "sort")
	for a, n := range algorithmNames {
		if n == key {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: sorting %q", step.ErrUnsupportedAlgorithm, name)
}

// Option configures a run.
type Option func(*Options)

// Options holds run limits and the counting-sort range cap.
type Options struct {
	Limits           step.Limits
	MaxCountingRange int
}

// DefaultOptions returns step.DefaultLimits and DefaultMaxCountingRange.
func DefaultOptions() Options {
	return Options{Limits: step.DefaultLimits(), MaxCountingRange: DefaultMaxCountingRange}
}

// WithStepBudget caps the number of steps; 0 disables the cap.
// Panics on a negative budget.
func WithStepBudget(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("sorting: WithStepBudget(%d) is negative", n))
	}

	return func(o *Options) {
		o.Limits.StepBudget = n
	}
}

// WithMaxDepth caps the recursion depth of Merge and Quick; 0 disables it.
// Panics on a negative depth.
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic(fmt.Sprintf("sorting: WithMaxDepth(%d) is negative", d))
	}

	return func(o *Options) {
		o.Limits.MaxDepth = d
	}
}

// WithMaxCountingRange caps max−min+1 for Counting sort. Panics if n < 1.
func WithMaxCountingRange(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("sorting: WithMaxCountingRange(%d) must be positive", n))
	}

	return func(o *Options) {
		o.MaxCountingRange = n
	}
}
