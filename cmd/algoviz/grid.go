// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz"
	"github.com/katalvlaran/algoviz/grid"
	"github.com/katalvlaran/algoviz/internal/render"
	"github.com/katalvlaran/algoviz/pathfinding"
	"github.com/katalvlaran/algoviz/playback"
)

func newGridCmd(a *app) *cobra.Command {
	var (
		algo   string
		layout []string
	)
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Search a grid from Start to End",
		Long: `Generates a random grid (or parses --layout rows of '.', '#', 'S', 'E')
and plays the chosen search over it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				g   *grid.Grid
				err error
			)
			if len(layout) > 0 {
				g, err = grid.FromLayout(layout...)
			} else {
				g, err = algoviz.GenerateGrid(a.cfg.Rows, a.cfg.Cols, a.cfg.WallDensity, a.builderOpts()...)
			}
			if err != nil {
				return err
			}
			src, err := algoviz.RunPathfinding(g, algo, pathfinding.WithStepBudget(a.cfg.StepBudget))
			if err != nil {
				return err
			}

			return run(cmd.Context(), a, cmd.OutOrStdout(), src,
				func(r *render.Renderer) playback.Sink[*grid.Grid] { return r.Grid })
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&algo, "algo", pathfinding.AStar.String(), "dfs, bfs, dijkstra, astar or bellman-ford")
	fs.StringSliceVar(&layout, "layout", nil, "grid rows, e.g. S..,.#.,..E")
	fs.IntVar(&a.flags.Rows, "rows", a.flags.Rows, "grid rows")
	fs.IntVar(&a.flags.Cols, "cols", a.flags.Cols, "grid columns")
	fs.Float64Var(&a.flags.WallDensity, "density", a.flags.WallDensity, "fraction of cells drawn as walls, in [0,1)")
	fs.StringVar(&a.flags.WallPolicy, "wall-policy", a.flags.WallPolicy, "ignore or resample colliding wall draws")

	return cmd
}
