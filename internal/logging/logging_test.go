package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContextRoundTrip(t *testing.T) {
	logger := New("debug")

	ctx := IntoContext(context.Background(), logger)
	require.Same(t, logger, FromContext(ctx))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestNewLevels(t *testing.T) {
	ctx := context.Background()

	require.True(t, New("debug").Enabled(ctx, slog.LevelDebug))
	require.False(t, New("info").Enabled(ctx, slog.LevelDebug))
	require.False(t, New("warn").Enabled(ctx, slog.LevelInfo))
	require.False(t, New("error").Enabled(ctx, slog.LevelWarn))
}
