// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/internal/render"
	"github.com/katalvlaran/algoviz/step"
)

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

// events decodes JSON-lines output.
func events(t *testing.T, out string) []render.Event {
	t.Helper()
	var evs []render.Event
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var ev render.Event
		require.NoError(t, sonic.UnmarshalString(line, &ev), line)
		evs = append(evs, ev)
	}

	return evs
}

func TestSort_JSON(t *testing.T) {
	out, _, err := execute(t, "sort", "--algo", "insertion", "--values", "3,1,2", "--json", "--delay", "0")
	require.NoError(t, err)
	evs := events(t, out)
	require.Equal(t, "Done", evs[len(evs)-1].Kind)
	for i, ev := range evs {
		require.Equal(t, i, ev.Seq)
	}
}

func TestGrid_Layout(t *testing.T) {
	out, _, err := execute(t, "grid", "--algo", "bfs", "--layout", "S.E", "--delay", "0", "--color", "never")
	require.NoError(t, err)
	require.Contains(t, out, "PathFound(len=3)")
	require.Contains(t, out, "bfs: completed")
}

func TestGrid_Generated(t *testing.T) {
	out, _, err := execute(t, "grid", "--rows", "6", "--cols", "7", "--seed", "5", "--json", "--delay", "0")
	require.NoError(t, err)
	last := events(t, out)
	kind := last[len(last)-1].Kind
	require.True(t, kind == "PathFound" || kind == "Exhausted", kind)
}

func TestMatch_Text(t *testing.T) {
	out, _, err := execute(t, "match", "--text", "ushers", "--pattern", "he",
		"--algo", "aho-corasick", "--words", "she,hers", "--delay", "0", "--color", "never")
	require.NoError(t, err)
	require.Contains(t, out, "MatchFound(1)")
	require.Contains(t, out, "aho-corasick: completed")
}

func TestMatch_EmptyDictionaryWord(t *testing.T) {
	_, _, err := execute(t, "match", "--text", "abc", "--pattern", "a",
		"--algo", "aho-corasick", "--words", "b,,c", "--delay", "0")
	require.ErrorIs(t, err, step.ErrConfiguration)
	require.ErrorContains(t, err, "--words")
}

func TestStepBudget_Faults(t *testing.T) {
	_, errOut, err := execute(t, "sort", "--values", "4,3,2,1", "--step-budget", "2", "--delay", "0",
		"--color", "never", "--log-level", "debug")
	require.Error(t, err)
	require.Contains(t, err.Error(), "step budget")
	require.Contains(t, errOut, "settings loaded")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "algoviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("array_length: 5\nmax_value: 3\ndelay: 0s\ncolor: never\n"), 0o600))

	out, _, err := execute(t, "sort", "--config", path, "--algo", "counting", "--json")
	require.NoError(t, err)
	evs := events(t, out)
	require.Equal(t, "Done", evs[len(evs)-1].Kind)

	// flags win over the file
	_, _, err = execute(t, "sort", "--config", path, "--length", "0")
	require.Error(t, err)
}

func TestErrors(t *testing.T) {
	_, _, err := execute(t, "sort", "--algo", "bogo", "--values", "1")
	require.ErrorContains(t, err, "unsupported algorithm")

	_, _, err = execute(t, "grid", "--density", "1.5")
	require.ErrorContains(t, err, "wall_density")

	_, _, err = execute(t, "match", "--text", "abc")
	require.Error(t, err, "pattern is required")

	_, _, err = execute(t, "algorithms", "--config", "settings.toml")
	require.Error(t, err)
}

func TestAlgorithms(t *testing.T) {
	out, _, err := execute(t, "algorithms")
	require.NoError(t, err)
	require.Contains(t, out, "pathfinding")
	require.Contains(t, out, "bellman-ford")
	require.Contains(t, out, "aho-corasick")
}
