// SPDX-License-Identifier: MIT

package playback

import (
	"context"
	"time"

	"github.com/katalvlaran/algoviz/step"
)

// Play runs src on the calling goroutine, delivering every step to sink
// together with a fresh snapshot. It returns when the sequence ends, the
// sink fails, a Fault step arrives or the run is cancelled.
//
// Errors:
//   - ErrBusy if c already has an active run (nothing is consumed).
//   - ErrNoSteps, ErrNilSink for unusable arguments.
//   - the Fault step's error, the sink's error, or the context error on
//     cancellation. The Report is filled in every case but ErrBusy.
func Play[S any](ctx context.Context, c *Controller, src Source[S], sink Sink[S]) (Report, error) {
	if src.Steps == nil {
		return Report{Source: src.Name}, ErrNoSteps
	}
	if sink == nil {
		return Report{Source: src.Name}, ErrNilSink
	}
	runCtx, r, err := c.acquire(ctx, src.Name)
	if err != nil {
		return Report{Source: src.Name}, err
	}
	defer c.release(r)

	return play(runCtx, c, r, src, sink)
}

// play is the run loop shared by Play and Start. A context that is already
// done stops the run before the source is ranged. Afterwards cancellation is
// checked only once a frame was handed to the sink, so the engine never runs
// past the step being delivered. With Play the model therefore equals the
// last delivered snapshot; with Start the step whose send lost to
// cancellation is complete in the model but never delivered.
func play[S any](ctx context.Context, c *Controller, r *run, src Source[S], sink Sink[S]) (Report, error) {
	rep := Report{RunID: r.id, Source: src.Name}
	c.logger.Debug("playback started", "run_id", r.id, "source", src.Name, "delay", c.delay)
	began := time.Now()

	var runErr error
	if ctx.Err() != nil {
		rep.Cancelled = true
	} else {
		runErr = drive(ctx, c, src, sink, &rep)
	}
	rep.Elapsed = time.Since(began)

	switch {
	case rep.Cancelled:
		rep.Outcome = OutcomeCancelled
		runErr = context.Cause(ctx)
	case rep.Terminal.Kind == step.KindFault:
		rep.Outcome = OutcomeFault
	case runErr == nil && rep.Terminal.Kind.Terminal():
		rep.Outcome = OutcomeCompleted
	default:
		rep.Outcome = OutcomeAborted
	}
	c.metrics.observe(rep)

	attrs := []any{
		"run_id", rep.RunID,
		"source", rep.Source,
		"steps", rep.Steps,
		"outcome", rep.Outcome,
		"elapsed", rep.Elapsed,
	}
	if runErr != nil {
		c.logger.Info("playback finished", append(attrs, "error", runErr)...)
	} else {
		c.logger.Info("playback finished", attrs...)
	}

	return rep, runErr
}

// drive ranges src and feeds sink, filling rep as frames are delivered.
func drive[S any](ctx context.Context, c *Controller, src Source[S], sink Sink[S], rep *Report) error {
	for s := range src.Steps {
		f := Frame[S]{Seq: rep.Steps, Step: s}
		if src.Snapshot != nil {
			f.State = src.Snapshot()
		}
		if err := sink(f); err != nil {
			if ctx.Err() != nil {
				rep.Cancelled = true

				return nil
			}

			return err
		}
		rep.Steps++
		rep.Terminal = s
		if s.Kind == step.KindFault {
			return s.Err
		}
		if s.Kind.Terminal() {
			return nil
		}
		if !c.pause(ctx) {
			rep.Cancelled = true

			return nil
		}
	}

	return nil
}

// Stream is an asynchronous run started by Start.
type Stream[S any] struct {
	frames chan Frame[S]
	cancel context.CancelFunc
	done   chan struct{}
	report Report
	err    error
}

// Start admits src on c and plays it on a new goroutine. Frames are
// delivered unbuffered on Frames(), which is closed when the run ends; the
// caller must drain it or call Cancel. ErrBusy is returned synchronously.
func Start[S any](ctx context.Context, c *Controller, src Source[S]) (*Stream[S], error) {
	if src.Steps == nil {
		return nil, ErrNoSteps
	}
	runCtx, r, err := c.acquire(ctx, src.Name)
	if err != nil {
		return nil, err
	}

	st := &Stream[S]{
		frames: make(chan Frame[S]),
		cancel: r.cancel,
		done:   make(chan struct{}),
	}
	sink := func(f Frame[S]) error {
		if err := runCtx.Err(); err != nil {
			return err
		}
		select {
		case st.frames <- f:
			return nil
		case <-runCtx.Done():
			return runCtx.Err()
		}
	}
	go func() {
		defer close(st.done)
		defer close(st.frames)
		defer c.release(r)
		st.report, st.err = play(runCtx, c, r, src, sink)
	}()

	return st, nil
}

// Frames returns the frame channel.
func (s *Stream[S]) Frames() <-chan Frame[S] { return s.frames }

// Cancel stops the run at its next suspension point.
func (s *Stream[S]) Cancel() { s.cancel() }

// Done is closed once the run has ended.
func (s *Stream[S]) Done() <-chan struct{} { return s.done }

// Wait blocks until the run ends and returns its outcome as Play would.
// Undelivered frames are discarded.
func (s *Stream[S]) Wait() (Report, error) {
	for {
		select {
		case <-s.done:
			return s.report, s.err
		case _, ok := <-s.frames:
			if !ok {
				<-s.done

				return s.report, s.err
			}
		}
	}
}
