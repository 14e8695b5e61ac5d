package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwhitfield/ember-api/internal/config"
)

func TestSetupLevels(t *testing.T) {
	testCases := []struct {
		level   string
		debugOn bool
	}{
		{level: "debug", debugOn: true},
		{level: "info", debugOn: false},
		{level: "warn", debugOn: false},
		{level: "error", debugOn: false},
		{level: "DEBUG", debugOn: true},  // case-insensitive
		{level: "bogus", debugOn: false}, // falls back to info
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.level})
			require.NoError(t, err)
			require.NotNil(t, log)

			assert.Equal(t, tc.debugOn, log.Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestWithLoggerAndFromContext(t *testing.T) {
	t.Parallel()

	base := slog.Default().With("test_attr", "value")
	ctx := WithLogger(context.Background(), base)

	assert.Same(t, base, FromContext(ctx))
	assert.Same(t, base, FromContextOrDefault(ctx, nil))

	// Without a stored logger, FromContext falls back to the default and
	// FromContextOrDefault prefers the provided fallback.
	empty := context.Background()
	assert.NotNil(t, FromContext(empty))

	fallback := slog.Default().With("component", "test")
	assert.Same(t, fallback, FromContextOrDefault(empty, fallback))
}
