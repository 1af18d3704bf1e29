// SPDX-License-Identifier: MIT

package playback

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/algoviz/internal/logging"
)

// Controller admits at most one run at a time and paces it.
// The zero value is not usable; call New.
type Controller struct {
	delay   time.Duration
	logger  *slog.Logger
	metrics *Metrics

	mu     sync.Mutex
	active *run
}

// run is the state of the active run.
type run struct {
	id     string
	source string
	cancel context.CancelFunc
}

// Option configures a Controller.
type Option func(*Controller)

// WithDelay pauses d after every non-terminal frame. Panics if d < 0.
func WithDelay(d time.Duration) Option {
	if d < 0 {
		panic(fmt.Sprintf("playback: WithDelay(%v) is negative", d))
	}

	return func(c *Controller) {
		c.delay = d
	}
}

// WithLogger sets the run logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("playback: WithLogger(nil)")
	}

	return func(c *Controller) {
		c.logger = l
	}
}

// WithMetrics sets the collectors runs are counted on. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("playback: WithMetrics(nil)")
	}

	return func(c *Controller) {
		c.metrics = m
	}
}

// New returns a Controller with no delay, a discarding logger and metrics
// on a private registry, then applies opts.
func New(opts ...Option) *Controller {
	c := &Controller{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	if c.metrics == nil {
		c.metrics = NewMetrics(nil)
	}

	return c
}

// Delay returns the inter-step pause.
func (c *Controller) Delay() time.Duration { return c.delay }

// Busy reports whether a run is active.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.active != nil
}

// Cancel asks the active run to stop at its next suspension point.
// It reports whether a run was active.
func (c *Controller) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return false
	}
	c.logger.Info("playback cancel requested", "run_id", c.active.id, "source", c.active.source)
	c.active.cancel()

	return true
}

// acquire installs a new active run or fails with ErrBusy.
func (c *Controller) acquire(ctx context.Context, source string) (context.Context, *run, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active != nil {
		c.metrics.Rejected.Inc()
		c.logger.Warn("playback rejected", "source", source, "active_run_id", c.active.id)

		return nil, nil, fmt.Errorf("%w: %s", ErrBusy, c.active.source)
	}
	runCtx, cancel := context.WithCancel(ctx)
	r := &run{id: uuid.NewString(), source: source, cancel: cancel}
	c.active = r

	return runCtx, r, nil
}

// release clears r if it is still the active run.
func (c *Controller) release(r *run) {
	c.mu.Lock()
	defer c.mu.Unlock()
	r.cancel()
	if c.active == r {
		c.active = nil
	}
}

// pause waits out the delay. It returns false once ctx is done.
func (c *Controller) pause(ctx context.Context) bool {
	if c.delay <= 0 {
		select {
		case <-ctx.Done():
			return false
		default:
			return true
		}
	}
	t := time.NewTimer(c.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
