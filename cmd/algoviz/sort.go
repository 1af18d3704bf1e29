// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz"
	"github.com/katalvlaran/algoviz/internal/render"
	"github.com/katalvlaran/algoviz/playback"
	"github.com/katalvlaran/algoviz/sorting"
)

func newSortCmd(a *app) *cobra.Command {
	var (
		algo   string
		values []int
	)
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort an array step by step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(values) == 0 {
				var err error
				values, err = algoviz.GenerateArray(a.cfg.ArrayLength, a.cfg.MaxValue, a.builderOpts()...)
				if err != nil {
					return err
				}
			}
			src, err := algoviz.RunSort(values, algo, sorting.WithStepBudget(a.cfg.StepBudget))
			if err != nil {
				return err
			}

			return run(cmd.Context(), a, cmd.OutOrStdout(), src,
				func(r *render.Renderer) playback.Sink[sorting.Array] { return r.Array })
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&algo, "algo", sorting.Quick.String(), "selection, bubble, insertion, merge, quick, counting or heap")
	fs.IntSliceVar(&values, "values", nil, "values to sort instead of a random array")
	fs.IntVar(&a.flags.ArrayLength, "length", a.flags.ArrayLength, "random array length")
	fs.IntVar(&a.flags.MaxValue, "max-value", a.flags.MaxValue, "random values are below this bound")

	return cmd
}
