// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/internal/logging"
)

func TestNewWriter_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWriter(&buf, slog.LevelInfo)
	log.Info("run failed", "error", errors.New("boom"))
	log.Debug("hidden")

	out := buf.String()
	require.Contains(t, out, "err=boom")
	require.NotContains(t, out, "error=")
	require.NotContains(t, out, "hidden")
}

func TestNew_Level(t *testing.T) {
	log := logging.New(slog.LevelWarn)
	require.False(t, log.Enabled(context.Background(), slog.LevelInfo))
	require.True(t, log.Enabled(context.Background(), slog.LevelError))
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := logging.ParseLevel("loud")
	require.Error(t, err)
}

func TestNewNop(t *testing.T) {
	require.NotPanics(t, func() { logging.NewNop().Error("dropped") })
}
