// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/internal/config"
	"github.com/katalvlaran/algoviz/internal/logging"
	"github.com/katalvlaran/algoviz/internal/render"
	"github.com/katalvlaran/algoviz/playback"
)

// app is the state shared by every subcommand.
type app struct {
	cfgPath string
	json    bool
	flags   config.Config // flag values, applied over the file when set
	cfg     config.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{flags: config.Default()}
	root := &cobra.Command{
		Use:           "algoviz",
		Short:         "Step through pathfinding, sorting and string matching algorithms",
		Long:          `algoviz runs an algorithm over a generated or given model and plays every step back at a fixed pace.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.Flags(), cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML or JSONC settings file")
	pf.BoolVar(&a.json, "json", false, "write steps as JSON lines instead of drawing frames")
	pf.Int64Var(&a.flags.Seed, "seed", 0, "random seed; 0 picks one from the clock")
	pf.DurationVar(&a.flags.Delay, "delay", a.flags.Delay, "pause between steps")
	pf.IntVar(&a.flags.StepBudget, "step-budget", 0, "abort after this many steps; 0 is unlimited")
	pf.StringVar(&a.flags.Color, "color", a.flags.Color, "auto, always or never")
	pf.StringVar(&a.flags.LogLevel, "log-level", a.flags.LogLevel, "debug, info, warn or error")

	root.AddCommand(
		newGridCmd(a),
		newSortCmd(a),
		newMatchCmd(a),
		newAlgorithmsCmd(),
	)

	return root
}

// overrides maps flag names to the Config field they set.
var overrides = map[string]func(dst *config.Config, src config.Config){
	"seed":        func(d *config.Config, s config.Config) { d.Seed = s.Seed },
	"delay":       func(d *config.Config, s config.Config) { d.Delay = s.Delay },
	"step-budget": func(d *config.Config, s config.Config) { d.StepBudget = s.StepBudget },
	"color":       func(d *config.Config, s config.Config) { d.Color = s.Color },
	"log-level":   func(d *config.Config, s config.Config) { d.LogLevel = s.LogLevel },
	"rows":        func(d *config.Config, s config.Config) { d.Rows = s.Rows },
	"cols":        func(d *config.Config, s config.Config) { d.Cols = s.Cols },
	"density":     func(d *config.Config, s config.Config) { d.WallDensity = s.WallDensity },
	"wall-policy": func(d *config.Config, s config.Config) { d.WallPolicy = s.WallPolicy },
	"length":      func(d *config.Config, s config.Config) { d.ArrayLength = s.ArrayLength },
	"max-value":   func(d *config.Config, s config.Config) { d.MaxValue = s.MaxValue },
}

// load reads the config file, applies explicitly set flags and builds the
// logger.
func (a *app) load(fs *pflag.FlagSet, stderr io.Writer) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *pflag.Flag) {
		if apply, ok := overrides[f.Name]; ok {
			apply(&cfg, a.flags)
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	level, _ := logging.ParseLevel(cfg.LogLevel)
	a.cfg = cfg
	if stderr == os.Stderr {
		a.logger = logging.New(level)
	} else {
		a.logger = logging.NewWriter(stderr, level)
	}
	a.logger.Debug("settings loaded", "config", a.cfgPath, "seed", cfg.Seed, "delay", cfg.Delay)

	return nil
}

// builderOpts returns the seed and wall policy as builder options.
func (a *app) builderOpts() []builder.Option {
	return []builder.Option{builder.WithSeed(a.cfg.Seed), builder.WithWallPolicy(a.cfg.Policy())}
}

// run plays src to draw, or to a JSON sink under --json, and prints the
// summary. An interrupted run is not an error.
func run[S any](ctx context.Context, a *app, out io.Writer, src playback.Source[S], draw func(*render.Renderer) playback.Sink[S]) error {
	ctrl := playback.New(playback.WithDelay(a.cfg.Delay), playback.WithLogger(a.logger))
	r := render.New(out, a.cfg.Color)
	sink := draw(r)
	if a.json {
		sink = render.JSONSink[S](out)
	}

	rep, err := playback.Play(ctx, ctrl, src, sink)
	if !a.json {
		if serr := r.Summary(rep); serr != nil && err == nil {
			err = serr
		}
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
