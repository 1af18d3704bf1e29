// SPDX-License-Identifier: MIT

// Package step is the vocabulary every engine speaks: an immutable Step
// record per observable transition, the Emitter that engines drive, and the
// shared error taxonomy.
//
// What:
//
//   - Step is a tagged value (Kind + operands). It holds no references into
//     a model; PathFound copies its path on construction and on read.
//   - Sequence wraps an engine body into an iter.Seq[Step]. Ranging the
//     sequence runs the engine; each yield is a suspension point, and a
//     consumer that stops ranging halts the engine right after the last
//     delivered Step.
//   - Emitter enforces a step budget and a recursion-depth guard. Exceeding
//     either emits one terminal Fault step and halts the run.
//
// Errors:
//
//   - ErrConfiguration:        invalid input, reported before any Step.
//   - ErrUnsupportedAlgorithm: unknown algorithm name, reported before any Step.
//   - ErrStepBudget:           carried by a Fault step.
//   - ErrRecursionDepth:       carried by a Fault step.
//   - ErrConsumed:             carried by a Fault step when a sequence is ranged twice.
//
// Exhausted and NoMatch are outcomes, not errors.
package step
