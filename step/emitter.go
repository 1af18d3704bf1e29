// SPDX-License-Identifier: MIT

package step

import (
	"fmt"
	"iter"
	"sync/atomic"
)

// Defaults for Limits. Toy inputs stay far below both.
const (
	// DefaultStepBudget caps the number of non-fault steps in one run.
	DefaultStepBudget = 1 << 20
	// DefaultMaxDepth caps recursion depth for recursive engines.
	DefaultMaxDepth = 1 << 12
)

// Limits bounds a single run. A non-positive field disables that guard.
type Limits struct {
	StepBudget int
	MaxDepth   int
}

// DefaultLimits returns Limits{DefaultStepBudget, DefaultMaxDepth}.
func DefaultLimits() Limits {
	return Limits{StepBudget: DefaultStepBudget, MaxDepth: DefaultMaxDepth}
}

// Emitter forwards steps to a consumer and enforces Limits.
// Engines stop as soon as Emit (or Enter) returns false.
type Emitter struct {
	yield  func(Step) bool
	limits Limits
	count  int
	depth  int
	halted bool
}

// NewEmitter wraps yield with the given limits.
func NewEmitter(yield func(Step) bool, limits Limits) *Emitter {
	return &Emitter{yield: yield, limits: limits}
}

// Emit delivers s. It returns false once the consumer stopped ranging, the
// budget is exhausted, or a Fault was emitted; the engine must return
// without touching its model again.
func (e *Emitter) Emit(s Step) bool {
	if e.halted {
		return false
	}
	if e.limits.StepBudget > 0 && e.count >= e.limits.StepBudget {
		e.Fail(fmt.Errorf("%w: limit %d", ErrStepBudget, e.limits.StepBudget))

		return false
	}
	e.count++
	if !e.yield(s) {
		e.halted = true

		return false
	}

	return true
}

// Fail emits a terminal Fault carrying err and halts the emitter.
func (e *Emitter) Fail(err error) {
	if e.halted {
		return
	}
	e.halted = true
	e.yield(Fault(err))
}

// Enter records one level of recursion. It fails the run and returns false
// when MaxDepth would be exceeded.
func (e *Emitter) Enter() bool {
	if e.halted {
		return false
	}
	e.depth++
	if e.limits.MaxDepth > 0 && e.depth > e.limits.MaxDepth {
		e.Fail(fmt.Errorf("%w: limit %d", ErrRecursionDepth, e.limits.MaxDepth))

		return false
	}

	return true
}

// Leave undoes one Enter.
func (e *Emitter) Leave() {
	e.depth--
}

// Halted reports whether the run stopped early.
func (e *Emitter) Halted() bool { return e.halted }

// Count returns the number of steps delivered, faults excluded.
func (e *Emitter) Count() int { return e.count }

// Sequence turns an engine body into a single-use iter.Seq[Step].
// The body runs lazily while the sequence is ranged; ranging it a second
// time yields one Fault carrying ErrConsumed, because the model the body
// mutates is already spent.
func Sequence(limits Limits, body func(e *Emitter)) iter.Seq[Step] {
	var used atomic.Bool

	return func(yield func(Step) bool) {
		if used.Swap(true) {
			yield(Fault(ErrConsumed))

			return
		}
		body(NewEmitter(yield, limits))
	}
}

// Terminal returns the last step of steps, or false when steps is empty.
func Terminal(steps []Step) (Step, bool) {
	if len(steps) == 0 {
		return Step{}, false
	}

	return steps[len(steps)-1], true
}

// Count returns how many steps of kind k appear in steps.
func Count(steps []Step, k Kind) int {
	n := 0
	for i := range steps {
		if steps[i].Kind == k {
			n++
		}
	}

	return n
}
