// SPDX-License-Identifier: MIT

package algoviz_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz"
	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/grid"
	"github.com/katalvlaran/algoviz/playback"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/step"
	"github.com/katalvlaran/algoviz/strmatch"
)

func TestGenerateGrid(t *testing.T) {
	a, err := algoviz.GenerateGrid(8, 9, 0.25, builder.WithSeed(3))
	require.NoError(t, err)
	b, err := algoviz.GenerateGrid(8, 9, 0.25, builder.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, a.String(), b.String(), "same seed, same grid")
	require.NoError(t, a.Validate())
	require.LessOrEqual(t, a.Walls(), 18)

	empty, err := algoviz.GenerateGrid(8, 9, 0, builder.WithSeed(3), builder.WithWallDensity(0.5))
	require.NoError(t, err)
	require.Zero(t, empty.Walls(), "density argument wins over options")

	for _, d := range []float64{-0.1, 1, math.NaN()} {
		_, err = algoviz.GenerateGrid(8, 9, d)
		require.ErrorIs(t, err, algoviz.ErrWallDensity)
		require.ErrorIs(t, err, step.ErrConfiguration)
	}
	_, err = algoviz.GenerateGrid(1, 1, 0.2)
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestGenerateArray(t *testing.T) {
	vals, err := algoviz.GenerateArray(30, 7, builder.WithSeed(9))
	require.NoError(t, err)
	require.Len(t, vals, 30)
	for _, v := range vals {
		require.True(t, v >= 0 && v < 7)
	}
	_, err = algoviz.GenerateArray(0, 7)
	require.ErrorIs(t, err, step.ErrConfiguration)
}

func TestRunPathfinding_SnapshotsAreIndependent(t *testing.T) {
	g, err := grid.FromLayout(
		"S...",
		".##.",
		"...E",
	)
	require.NoError(t, err)
	src, err := algoviz.RunPathfinding(g, "A*")
	require.NoError(t, err)
	require.Equal(t, "astar", src.Name)

	rec := &playback.Recorder[*grid.Grid]{}
	rep, err := playback.Play(context.Background(), playback.New(), src, rec.Record)
	require.NoError(t, err)
	require.Equal(t, step.KindPathFound, rep.Terminal.Kind)

	frames := rec.Frames()
	first, last := frames[0].State, frames[len(frames)-1].State
	require.NotSame(t, first, last)
	require.Equal(t, 1, countVisited(first), "first snapshot sees only the first visit")
	require.Equal(t, g.String(), last.String())
}

func countVisited(g *grid.Grid) int {
	n := 0
	for i := range g.Nodes {
		if g.Nodes[i].Visited {
			n++
		}
	}

	return n
}

func TestRunSort_LeavesInputUntouched(t *testing.T) {
	in := []int{4, 2, 2, 8, 3, 3, 1}
	src, err := algoviz.RunSort(in, "CountingSort")
	require.NoError(t, err)

	rec := &playback.Recorder[sorting.Array]{}
	_, err = playback.Play(context.Background(), playback.New(), src, rec.Record)
	require.NoError(t, err)
	frames := rec.Frames()
	require.Equal(t, []int{1, 2, 2, 3, 3, 4, 8}, frames[len(frames)-1].State.Values)
	require.Equal(t, []int{4, 2, 2, 8, 3, 3, 1}, in)
}

func TestRunStringMatch(t *testing.T) {
	src, err := algoviz.RunStringMatch("abcabc", "bc", "z-algorithm")
	require.NoError(t, err)
	rec := &playback.Recorder[strmatch.State]{}
	_, err = playback.Play(context.Background(), playback.New(), src, rec.Record)
	require.NoError(t, err)
	frames := rec.Frames()
	require.Equal(t, []strmatch.Match{{Index: 1, Length: 2}, {Index: 4, Length: 2}},
		frames[len(frames)-1].State.Matches)
}

func TestRunErrors(t *testing.T) {
	g, err := grid.FromLayout("S.E")
	require.NoError(t, err)
	_, err = algoviz.RunPathfinding(g, "teleport")
	require.ErrorIs(t, err, step.ErrUnsupportedAlgorithm)
	_, err = algoviz.RunPathfinding(nil, "bfs")
	require.ErrorIs(t, err, step.ErrConfiguration)

	_, err = algoviz.RunSort(nil, "quick")
	require.ErrorIs(t, err, sorting.ErrEmptyArray)
	_, err = algoviz.RunSort([]int{1}, "bogo")
	require.ErrorIs(t, err, step.ErrUnsupportedAlgorithm)

	_, err = algoviz.RunStringMatch("abc", "", "kmp")
	require.ErrorIs(t, err, step.ErrConfiguration)
	_, err = algoviz.RunStringMatch("abc", "a", "boyer-moore")
	require.ErrorIs(t, err, step.ErrUnsupportedAlgorithm)
}
