// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz"
	"github.com/katalvlaran/algoviz/internal/render"
	"github.com/katalvlaran/algoviz/playback"
	"github.com/katalvlaran/algoviz/step"
	"github.com/katalvlaran/algoviz/strmatch"
)

func newMatchCmd(a *app) *cobra.Command {
	var (
		algo, text, pattern string
		words               []string
	)
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Search a text for a pattern",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []strmatch.Option{strmatch.WithStepBudget(a.cfg.StepBudget)}
			if len(words) > 0 {
				if slices.Contains(words, "") {
					return fmt.Errorf("%w: --words has an empty entry", step.ErrConfiguration)
				}
				opts = append(opts, strmatch.WithDictionary(words...))
			}
			src, err := algoviz.RunStringMatch(text, pattern, algo, opts...)
			if err != nil {
				return err
			}

			return run(cmd.Context(), a, cmd.OutOrStdout(), src,
				func(r *render.Renderer) playback.Sink[strmatch.State] { return r.Text })
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&algo, "algo", strmatch.KMP.String(), "kmp, rabin-karp, z, aho-corasick or lcs")
	fs.StringVar(&text, "text", "", "text to search")
	fs.StringVar(&pattern, "pattern", "", "pattern to find")
	fs.StringSliceVar(&words, "words", nil, "extra aho-corasick dictionary words")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}
