// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// options.go - functional options and the internal builder config.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     builders themselves only return sentinel errors.
//   • Later options override earlier ones.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WallPolicy decides what happens to wall draws that hit an occupied cell.
type WallPolicy int

const (
	// WallsIgnoreDuplicates drops draws that land on Start, End or a wall.
	WallsIgnoreDuplicates WallPolicy = iota
	// WallsResample redraws until the target count of distinct walls is placed.
	WallsResample
)

// String returns "ignore" or "resample".
func (p WallPolicy) String() string {
	if p == WallsResample {
		return "resample"
	}

	return "ignore"
}

// ParseWallPolicy maps "ignore"/"resample" to a WallPolicy.
func ParseWallPolicy(s string) (WallPolicy, error) {
	switch s {
	case "", "ignore":
		return WallsIgnoreDuplicates, nil
	case "resample":
		return WallsResample, nil
	}

	return 0, fmt.Errorf("%w: wall policy %q", ErrBadOption, s)
}

// Defaults mirrored from the visualizer pages.
const (
	DefaultRows        = 20
	DefaultCols        = 20
	DefaultWallDensity = 0.2
	DefaultArrayLength = 20
	DefaultMaxValue    = 100
)

// Option customizes a builder call.
type Option func(*builderConfig)

// builderConfig aggregates all knobs. It is resolved once per call.
type builderConfig struct {
	rng         *rand.Rand
	wallDensity float64
	wallPolicy  WallPolicy
}

// newBuilderConfig applies opts over deterministic defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		wallDensity: DefaultWallDensity,
		wallPolicy:  WallsIgnoreDuplicates,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}

	return cfg
}

// WithSeed seeds a fresh RNG. Seed 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand injects an RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithWallDensity sets the fraction of cells drawn as walls.
// Panics unless 0 ≤ d < 1.
func WithWallDensity(d float64) Option {
	if d < 0 || d >= 1 || math.IsNaN(d) {
		panic(fmt.Sprintf("builder: WithWallDensity(%v) outside [0,1)", d))
	}

	return func(c *builderConfig) {
		c.wallDensity = d
	}
}

// WithWallPolicy selects how colliding wall draws are handled.
func WithWallPolicy(p WallPolicy) Option {
	if p != WallsIgnoreDuplicates && p != WallsResample {
		panic(fmt.Sprintf("builder: WithWallPolicy(%d) unknown", int(p)))
	}

	return func(c *builderConfig) {
		c.wallPolicy = p
	}
}
