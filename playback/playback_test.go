// SPDX-License-Identifier: MIT

package playback_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/algoviz/playback"
	"github.com/katalvlaran/algoviz/step"
)

// counter is a toy engine whose model is the number of completed steps.
// The model is read from the test goroutine while Start plays it.
type counter struct {
	model atomic.Int64
}

func (c *counter) value() int { return int(c.model.Load()) }

// source emits n Compare steps, each after incrementing the model, then Done.
func (c *counter) source(name string, n int, limits step.Limits) playback.Source[int] {
	return playback.Source[int]{
		Name: name,
		Steps: step.Sequence(limits, func(e *step.Emitter) {
			for i := 0; i < n; i++ {
				c.model.Add(1)
				if !e.Emit(step.Compare(i, i)) {
					return
				}
			}
			e.Emit(step.Done())
		}),
		Snapshot: c.value,
	}
}

type PlaybackSuite struct {
	suite.Suite
	reg     *prometheus.Registry
	metrics *playback.Metrics
	logs    *bytes.Buffer
	ctrl    *playback.Controller
}

func (s *PlaybackSuite) SetupTest() {
	s.reg = prometheus.NewRegistry()
	s.metrics = playback.NewMetrics(s.reg)
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.ctrl = playback.New(playback.WithMetrics(s.metrics), playback.WithLogger(logger))
}

func (s *PlaybackSuite) TestPlay_DeliversEveryFrameWithSnapshot() {
	c := &counter{}
	rec := &playback.Recorder[int]{}
	rep, err := playback.Play(context.Background(), s.ctrl, c.source("counter", 4, step.DefaultLimits()), rec.Record)
	s.Require().NoError(err)

	frames := rec.Frames()
	s.Require().Len(frames, 5)
	for i, f := range frames[:4] {
		s.Equal(i, f.Seq)
		s.Equal(step.Compare(i, i), f.Step)
		s.Equal(i+1, f.State, "snapshot taken right after step %d", i)
	}
	s.Equal(step.KindDone, frames[4].Step.Kind)

	s.Equal(5, rep.Steps)
	s.Equal(playback.OutcomeCompleted, rep.Outcome)
	s.False(rep.Cancelled)
	s.Equal(step.KindDone, rep.Terminal.Kind)
	_, perr := uuid.Parse(rep.RunID)
	s.NoError(perr)
	s.False(s.ctrl.Busy())

	s.Equal(1.0, testutil.ToFloat64(s.metrics.Runs.WithLabelValues("counter", "completed")))
	s.Equal(5.0, testutil.ToFloat64(s.metrics.Steps.WithLabelValues("counter")))
	s.Contains(s.logs.String(), "playback finished")
	s.Contains(s.logs.String(), rep.RunID)
}

func (s *PlaybackSuite) TestSecondRunIsRejected() {
	first := &counter{}
	st, err := playback.Start(context.Background(), s.ctrl, first.source("first", 3, step.DefaultLimits()))
	s.Require().NoError(err)
	s.True(s.ctrl.Busy())

	// the first run is parked on its first frame until we read it
	second := &counter{}
	_, err = playback.Play(context.Background(), s.ctrl, second.source("second", 3, step.DefaultLimits()),
		func(playback.Frame[int]) error { return nil })
	s.Require().ErrorIs(err, playback.ErrBusy)
	_, err = playback.Start(context.Background(), s.ctrl, second.source("second", 3, step.DefaultLimits()))
	s.Require().ErrorIs(err, playback.ErrBusy)
	s.Zero(second.value(), "rejected source is never ranged")
	s.Equal(2.0, testutil.ToFloat64(s.metrics.Rejected))

	var got []int
	for f := range st.Frames() {
		got = append(got, f.State)
	}
	s.Equal([]int{1, 2, 3, 3}, got)
	rep, err := st.Wait()
	s.Require().NoError(err)
	s.Equal(playback.OutcomeCompleted, rep.Outcome)
	s.Equal(4, rep.Steps)
	s.False(s.ctrl.Busy())
}

func (s *PlaybackSuite) TestControllerCancelStopsAtLastDeliveredStep() {
	c := &counter{}
	sink := func(f playback.Frame[int]) error {
		if f.Seq == 2 {
			s.True(s.ctrl.Cancel())
		}

		return nil
	}
	rep, err := playback.Play(context.Background(), s.ctrl, c.source("counter", 10, step.DefaultLimits()), sink)
	s.Require().ErrorIs(err, context.Canceled)
	s.True(rep.Cancelled)
	s.Equal(playback.OutcomeCancelled, rep.Outcome)
	s.Equal(3, rep.Steps)
	s.Equal(3, c.value(), "model reflects exactly the delivered steps")
	s.False(s.ctrl.Cancel(), "nothing left to cancel")
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Runs.WithLabelValues("counter", "cancelled")))
}

func (s *PlaybackSuite) TestContextCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	c := &counter{}
	sink := func(f playback.Frame[int]) error {
		if f.Seq == 0 {
			cancel()
		}

		return nil
	}
	rep, err := playback.Play(ctx, s.ctrl, c.source("counter", 10, step.DefaultLimits()), sink)
	s.Require().ErrorIs(err, context.Canceled)
	s.Equal(1, rep.Steps)
	s.Equal(1, c.value())
}

func (s *PlaybackSuite) TestStreamCancel_DuringPause() {
	ctrl := playback.New(playback.WithDelay(time.Hour))
	c := &counter{}
	st, err := playback.Start(context.Background(), ctrl, c.source("counter", 100, step.DefaultLimits()))
	s.Require().NoError(err)
	f := <-st.Frames()
	s.Equal(1, f.State)
	st.Cancel()
	<-st.Done()
	rep, err := st.Wait()
	s.Require().ErrorIs(err, context.Canceled)
	s.True(rep.Cancelled)
	s.Equal(1, rep.Steps)
	s.Equal(1, c.value(), "engine parked in the pause after the delivered step")
	s.False(ctrl.Busy())
}

func (s *PlaybackSuite) TestStreamCancel_PendingFrameIsDropped() {
	c := &counter{}
	st, err := playback.Start(context.Background(), s.ctrl, c.source("counter", 100, step.DefaultLimits()))
	s.Require().NoError(err)
	f := <-st.Frames()
	s.Equal(1, f.State)

	// with no delay the engine completes the next step and blocks sending it
	s.Eventually(func() bool { return c.value() == 2 }, time.Second, time.Millisecond)
	st.Cancel()
	<-st.Done()
	rep, err := st.Wait()
	s.Require().ErrorIs(err, context.Canceled)
	s.Equal(playback.OutcomeCancelled, rep.Outcome)
	s.Equal(1, rep.Steps, "the blocked frame is never delivered")
	s.Equal(2, c.value(), "its step is already applied to the model")
	s.False(s.ctrl.Busy())
}

func (s *PlaybackSuite) TestAlreadyCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := &counter{}
	rec := &playback.Recorder[int]{}
	rep, err := playback.Play(ctx, s.ctrl, c.source("counter", 5, step.DefaultLimits()), rec.Record)
	s.Require().ErrorIs(err, context.Canceled)
	s.Equal(playback.OutcomeCancelled, rep.Outcome)
	s.Zero(rep.Steps)
	s.Zero(rec.Len())
	s.Zero(c.value(), "source is never ranged")
	s.False(s.ctrl.Busy())

	st, err := playback.Start(ctx, s.ctrl, c.source("counter", 5, step.DefaultLimits()))
	s.Require().NoError(err)
	_, err = st.Wait()
	s.Require().ErrorIs(err, context.Canceled)
	s.Zero(c.value())
}

func (s *PlaybackSuite) TestFaultEndsRun() {
	c := &counter{}
	rec := &playback.Recorder[int]{}
	rep, err := playback.Play(context.Background(), s.ctrl,
		c.source("counter", 10, step.Limits{StepBudget: 2}), rec.Record)
	s.Require().ErrorIs(err, step.ErrStepBudget)
	s.Equal(playback.OutcomeFault, rep.Outcome)
	s.Equal(3, rep.Steps)
	s.Equal(step.KindFault, rep.Terminal.Kind)
	s.Equal(3, rec.Len())
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Runs.WithLabelValues("counter", "fault")))
}

func (s *PlaybackSuite) TestSinkErrorAborts() {
	boom := errors.New("boom")
	c := &counter{}
	rep, err := playback.Play(context.Background(), s.ctrl, c.source("counter", 10, step.DefaultLimits()),
		func(f playback.Frame[int]) error {
			if f.Seq == 1 {
				return boom
			}

			return nil
		})
	s.Require().ErrorIs(err, boom)
	s.Equal(playback.OutcomeAborted, rep.Outcome)
	s.Equal(1, rep.Steps)
	s.Contains(s.logs.String(), "boom")
}

func (s *PlaybackSuite) TestReplayReproducesRecording() {
	c := &counter{}
	rec := &playback.Recorder[int]{}
	_, err := playback.Play(context.Background(), s.ctrl, c.source("counter", 3, step.DefaultLimits()), rec.Record)
	s.Require().NoError(err)

	src := playback.Replay("replay", rec.Frames())
	for range 2 {
		again := &playback.Recorder[int]{}
		rep, err := playback.Play(context.Background(), s.ctrl, src, again.Record)
		s.Require().NoError(err)
		s.Equal(playback.OutcomeCompleted, rep.Outcome)
		s.Equal(rec.Frames(), again.Frames())
	}
}

func (s *PlaybackSuite) TestDelayPacesNonTerminalFrames() {
	ctrl := playback.New(playback.WithDelay(5 * time.Millisecond))
	c := &counter{}
	rep, err := playback.Play(context.Background(), ctrl, c.source("counter", 2, step.DefaultLimits()),
		func(playback.Frame[int]) error { return nil })
	s.Require().NoError(err)
	s.GreaterOrEqual(rep.Elapsed, 10*time.Millisecond)
	s.Equal(5*time.Millisecond, ctrl.Delay())
}

func (s *PlaybackSuite) TestArgumentErrors() {
	_, err := playback.Play(context.Background(), s.ctrl, playback.Source[int]{Name: "x"},
		func(playback.Frame[int]) error { return nil })
	s.ErrorIs(err, playback.ErrNoSteps)

	c := &counter{}
	_, err = playback.Play(context.Background(), s.ctrl, c.source("counter", 1, step.DefaultLimits()), nil)
	s.ErrorIs(err, playback.ErrNilSink)
	s.False(s.ctrl.Busy())

	_, err = playback.Start(context.Background(), s.ctrl, playback.Source[int]{})
	s.ErrorIs(err, playback.ErrNoSteps)

	s.Panics(func() { playback.WithDelay(-time.Second) })
	s.Panics(func() { playback.WithLogger(nil) })
	s.Panics(func() { playback.WithMetrics(nil) })
}

func TestPlaybackSuite(t *testing.T) {
	suite.Run(t, new(PlaybackSuite))
}

func TestRecorderTee(t *testing.T) {
	rec := &playback.Recorder[string]{}
	var forwarded int
	sink := rec.Tee(func(playback.Frame[string]) error {
		forwarded++

		return nil
	})
	require.NoError(t, sink(playback.Frame[string]{Seq: 0, State: "a"}))
	require.NoError(t, sink(playback.Frame[string]{Seq: 1, State: "b"}))
	require.Equal(t, 2, forwarded)
	require.Equal(t, 2, rec.Len())
	require.Equal(t, "b", rec.Frames()[1].State)
}
