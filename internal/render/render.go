// SPDX-License-Identifier: MIT

// Package render draws playback frames on a terminal and encodes steps as
// JSON lines.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/algoviz/grid"
	"github.com/katalvlaran/algoviz/internal/config"
	"github.com/katalvlaran/algoviz/playback"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/step"
	"github.com/katalvlaran/algoviz/strmatch"
)

// Palette, matching the visualizer colours.
const (
	colorStart  = "#22c55e"
	colorEnd    = "#ef4444"
	colorWall   = "#64748b"
	colorPath   = "#facc15"
	colorSeen   = "#818cf8"
	colorActive = "#f472b6"
	colorMatch  = "#34d399"
	colorFault  = "#fb7185"
)

// Renderer writes human-readable frames.
type Renderer struct {
	w       io.Writer
	profile termenv.Profile
}

// New returns a Renderer on w. mode is one of the config color modes;
// "auto" inspects w and the environment.
func New(w io.Writer, mode string) *Renderer {
	var p termenv.Profile
	switch mode {
	case config.ColorNever:
		p = termenv.Ascii
	case config.ColorAlways:
		p = termenv.ANSI256
	default:
		p = termenv.NewOutput(w).EnvColorProfile()
	}

	return &Renderer{w: w, profile: p}
}

// paint colours s with hex, or returns it unchanged under the Ascii profile.
func (r *Renderer) paint(s, hex string) string {
	return r.profile.String(s).Foreground(r.profile.Color(hex)).String()
}

// header prints the frame number and step.
func (r *Renderer) header(f int, s step.Step) error {
	label := s.String()
	if s.Kind == step.KindFault {
		label = r.paint(label, colorFault)
	}
	_, err := fmt.Fprintf(r.w, "#%d %s\n", f, label)

	return err
}

// Grid renders a pathfinding frame; the stepped cell is highlighted.
func (r *Renderer) Grid(f playback.Frame[*grid.Grid]) error {
	if err := r.header(f.Seq, f.Step); err != nil {
		return err
	}
	g := f.State
	if g == nil {
		return nil
	}
	var sb strings.Builder
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			c := grid.Coord{Row: row, Col: col}
			n := g.At(c)
			glyph := string(n.Glyph())
			switch {
			case c == f.Step.Cell && cellStep(f.Step.Kind):
				glyph = r.paint(glyph, colorActive)
			case n.Role == grid.RoleStart:
				glyph = r.paint(glyph, colorStart)
			case n.Role == grid.RoleEnd:
				glyph = r.paint(glyph, colorEnd)
			case n.Role == grid.RoleWall:
				glyph = r.paint(glyph, colorWall)
			case n.OnPath:
				glyph = r.paint(glyph, colorPath)
			case n.Visited:
				glyph = r.paint(glyph, colorSeen)
			}
			sb.WriteString(glyph)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(r.w, sb.String())

	return err
}

// cellStep reports whether k carries a grid cell.
func cellStep(k step.Kind) bool {
	switch k {
	case step.KindVisit, step.KindFrontier, step.KindRelax, step.KindPathMark:
		return true
	}

	return false
}

// Array renders a sorting frame as one value per column, highlighting the
// positions the step touched.
func (r *Renderer) Array(f playback.Frame[sorting.Array]) error {
	if err := r.header(f.Seq, f.Step); err != nil {
		return err
	}
	active := map[int]bool{}
	switch f.Step.Kind {
	case step.KindCompare, step.KindSwap:
		active[f.Step.I], active[f.Step.J] = true, true
	case step.KindOverwrite:
		if f.Step.Buffer == step.BufferInput {
			active[f.Step.I] = true
		}
	}
	if err := r.values("values", f.State.Values, active); err != nil {
		return err
	}
	if f.State.Aux == nil {
		return nil
	}
	auxActive := map[int]bool{}
	if f.Step.Kind == step.KindOverwrite && f.Step.Buffer == step.BufferAux {
		auxActive[f.Step.I] = true
	}

	return r.values("aux", f.State.Aux, auxActive)
}

func (r *Renderer) values(label string, vals []int, active map[int]bool) error {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%3d", v)
		if active[i] {
			parts[i] = r.paint(parts[i], colorActive)
		}
	}
	_, err := fmt.Fprintf(r.w, "%-6s [%s]\n", label, strings.Join(parts, " "))

	return err
}

// Text renders a string matching frame: the text with the cursor and found
// matches highlighted, and the pattern aligned under the cursor.
func (r *Renderer) Text(f playback.Frame[strmatch.State]) error {
	if err := r.header(f.Seq, f.Step); err != nil {
		return err
	}
	st := f.State
	matched := make([]bool, len(st.Text))
	for _, m := range st.Matches {
		for k := m.Index; k < m.Index+m.Length && k < len(matched); k++ {
			matched[k] = true
		}
	}
	var sb strings.Builder
	for i, c := range st.Text {
		ch := string(c)
		switch {
		case i == st.I:
			ch = r.paint(ch, colorActive)
		case matched[i]:
			ch = r.paint(ch, colorMatch)
		}
		sb.WriteString(ch)
	}
	sb.WriteByte('\n')
	if off := st.I - st.J; st.I >= 0 && st.J >= 0 && off >= 0 && st.J < len(st.Pattern) {
		sb.WriteString(strings.Repeat(" ", off))
		sb.WriteString(string(st.Pattern))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(r.w, sb.String())

	return err
}

// Summary prints the run report.
func (r *Renderer) Summary(rep playback.Report) error {
	_, err := fmt.Fprintf(r.w, "%s: %s after %d steps in %v (run %s)\n",
		rep.Source, rep.Outcome, rep.Steps, rep.Elapsed.Round(time.Millisecond), rep.RunID)

	return err
}
