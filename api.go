// SPDX-License-Identifier: MIT

package algoviz

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/grid"
	"github.com/katalvlaran/algoviz/pathfinding"
	"github.com/katalvlaran/algoviz/playback"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/step"
	"github.com/katalvlaran/algoviz/strmatch"
)

// ErrWallDensity is returned for a wall density outside [0, 1).
var ErrWallDensity = fmt.Errorf("%w: algoviz: wall density outside [0,1)", step.ErrConfiguration)

// GenerateGrid builds a rows×cols grid with one Start, one End and about
// wallDensity·rows·cols walls. wallDensity takes precedence over any
// builder.WithWallDensity in opts.
func GenerateGrid(rows, cols int, wallDensity float64, opts ...builder.Option) (*grid.Grid, error) {
	if wallDensity < 0 || wallDensity >= 1 || math.IsNaN(wallDensity) {
		return nil, fmt.Errorf("%w: %v", ErrWallDensity, wallDensity)
	}
	opts = append(opts[:len(opts):len(opts)], builder.WithWallDensity(wallDensity))

	return builder.GenerateGrid(rows, cols, opts...)
}

// GenerateArray returns n values drawn uniformly from [0, maxValue).
func GenerateArray(n, maxValue int, opts ...builder.Option) ([]int, error) {
	return builder.GenerateArray(n, maxValue, opts...)
}

// RunPathfinding prepares a search of g with the named algorithm. The
// returned Source mutates g while it is played; snapshots are clones.
func RunPathfinding(g *grid.Grid, name string, opts ...pathfinding.Option) (playback.Source[*grid.Grid], error) {
	algo, err := pathfinding.ParseAlgorithm(name)
	if err != nil {
		return playback.Source[*grid.Grid]{}, err
	}
	seq, err := pathfinding.Run(g, algo, opts...)
	if err != nil {
		return playback.Source[*grid.Grid]{}, err
	}

	return playback.Source[*grid.Grid]{Name: algo.String(), Steps: seq, Snapshot: g.Clone}, nil
}

// RunSort prepares a sort of a copy of values with the named algorithm.
func RunSort(values []int, name string, opts ...sorting.Option) (playback.Source[sorting.Array], error) {
	algo, err := sorting.ParseAlgorithm(name)
	if err != nil {
		return playback.Source[sorting.Array]{}, err
	}
	a := sorting.NewArray(values)
	seq, err := sorting.Run(a, algo, opts...)
	if err != nil {
		return playback.Source[sorting.Array]{}, err
	}

	return playback.Source[sorting.Array]{
		Name:     algo.String(),
		Steps:    seq,
		Snapshot: func() sorting.Array { return *a.Clone() },
	}, nil
}

// RunStringMatch prepares a search for pattern in text with the named
// algorithm.
func RunStringMatch(text, pattern, name string, opts ...strmatch.Option) (playback.Source[strmatch.State], error) {
	algo, err := strmatch.ParseAlgorithm(name)
	if err != nil {
		return playback.Source[strmatch.State]{}, err
	}
	t, err := builder.NewText(text, pattern)
	if err != nil {
		return playback.Source[strmatch.State]{}, err
	}
	st := strmatch.NewState(t)
	seq, err := strmatch.Run(st, algo, opts...)
	if err != nil {
		return playback.Source[strmatch.State]{}, err
	}

	return playback.Source[strmatch.State]{
		Name:     algo.String(),
		Steps:    seq,
		Snapshot: func() strmatch.State { return *st.Clone() },
	}, nil
}

// Family lists the algorithm names of one engine.
type Family struct {
	Name       string
	Algorithms []string
}

// Catalog returns the canonical algorithm names of every engine.
func Catalog() []Family {
	fams := []Family{{Name: "pathfinding"}, {Name: "sorting"}, {Name: "strmatch"}}
	for _, a := range pathfinding.Algorithms() {
		fams[0].Algorithms = append(fams[0].Algorithms, a.String())
	}
	for _, a := range sorting.Algorithms() {
		fams[1].Algorithms = append(fams[1].Algorithms, a.String())
	}
	for _, a := range strmatch.Algorithms() {
		fams[2].Algorithms = append(fams[2].Algorithms, a.String())
	}

	return fams
}
