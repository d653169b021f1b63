package logger_test

import (
	"advent/pkg/logger"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
	}{
		{
			name:        "Development Environment",
			environment: logger.DevelopmentEnvironment,
		},
		{
			name:        "Production Environment",
			environment: logger.ProductionEnvironment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(tt.environment)
			})

			l := logger.Get(context.Background())
			require.NotNil(t, l)
		})
	}
}

func TestGet(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "Should return default logger when context has no logger")

	customLogger, _ := zap.NewDevelopment()
	require.Equal(t, customLogger, logger.Get(logger.WithLogger(ctx, customLogger)))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.Int("year", 2024), zap.Int("day", 7))
	logger.Info(ctx, "solved")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "solved", entry.Message)
	require.Equal(t, int64(2024), entry.ContextMap()["year"])
	require.Equal(t, int64(7), entry.ContextMap()["day"])
}

func TestSetDebug(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	logger.SetDebug(false)
	require.False(t, logger.IsDebug(ctx))

	logger.SetDebug(true)
	require.True(t, logger.IsDebug(ctx))

	logger.SetDebug(false)
	require.False(t, logger.IsDebug(ctx))
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message", zap.String("key", "value"))
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	require.Equal(t, 4, logs.Len())
	require.Equal(t, zapcore.WarnLevel, logs.All()[2].Level)
}
