// SPDX-License-Identifier: MIT

package playback

import (
	"errors"
	"iter"
	"time"

	"github.com/katalvlaran/algoviz/step"
)

// Sentinel errors for playback.
var (
	// ErrBusy is returned when a run is requested while another is active.
	ErrBusy = errors.New("playback: a run is already active")

	// ErrNoSteps is returned for a Source without a step sequence.
	ErrNoSteps = errors.New("playback: source has no steps")

	// ErrNilSink is returned when Play gets a nil sink.
	ErrNilSink = errors.New("playback: sink is nil")
)

// Source is a playable run: a step sequence, usually single-use, and a
// function returning a deep copy of the model the sequence mutates.
// Snapshot may be nil, in which case frames carry the zero S.
type Source[S any] struct {
	Name     string
	Steps    iter.Seq[step.Step]
	Snapshot func() S
}

// Frame is one delivered step and the model state right after it.
type Frame[S any] struct {
	Seq   int // 0-based position in the run
	Step  step.Step
	State S
}

// Sink receives frames in order. A non-nil error ends the run.
type Sink[S any] func(Frame[S]) error

// Outcome labels a finished run.
type Outcome string

// Run outcomes, also used as the metrics "outcome" label.
const (
	OutcomeCompleted Outcome = "completed"
	OutcomeFault     Outcome = "fault"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeAborted   Outcome = "aborted"
)

// Report summarises a finished run.
type Report struct {
	RunID     string
	Source    string
	Steps     int       // frames delivered
	Terminal  step.Step // last delivered step, zero if none
	Outcome   Outcome
	Cancelled bool
	Elapsed   time.Duration
}
