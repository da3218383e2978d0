package logger_test

import (
	"context"
	"studyshare/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level zapcore.Level) (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(level)

	return logger.WithLogger(context.Background(), zap.New(core)), logs
}

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment, "staging"} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() { logger.Setup(env) })
			require.NotNil(t, logger.Get(context.Background()))
		})
	}

	logger.Setup(logger.DevelopmentEnvironment)
	require.True(t, logger.IsDebug(context.Background()))
	logger.Setup(logger.ProductionEnvironment)
	require.False(t, logger.IsDebug(context.Background()))
}

func TestSetupWithLevel(t *testing.T) {
	require.NoError(t, logger.SetupWithLevel(logger.ProductionEnvironment, "warn"))
	ctx := context.Background()
	require.False(t, logger.Get(ctx).Core().Enabled(zap.InfoLevel))
	require.True(t, logger.Get(ctx).Core().Enabled(zap.WarnLevel))

	// the environment default is still installed
	require.Error(t, logger.SetupWithLevel(logger.DevelopmentEnvironment, "loud"))
	require.True(t, logger.IsDebug(ctx))
}

func TestGet_FromContext(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx, _ := observed(zap.InfoLevel)

	require.NotSame(t, logger.Get(context.Background()), logger.Get(ctx))
	require.False(t, logger.IsDebug(ctx))
}

func TestWithFields(t *testing.T) {
	ctx, logs := observed(zap.DebugLevel)
	ctx = logger.WithFields(ctx, zap.String("requestID", "abc"))
	ctx = logger.Named(ctx, "worker")

	logger.Info(ctx, "uploaded", zap.Int("files", 2))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "worker", entries[0].LoggerName)
	require.Equal(t, map[string]any{"requestID": "abc", "files": int64(2)}, entries[0].ContextMap())
}

func TestLevels(t *testing.T) {
	ctx, logs := observed(zap.InfoLevel)

	logger.Debug(ctx, "hidden")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	var levels []zapcore.Level
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{zap.InfoLevel, zap.WarnLevel, zap.ErrorLevel}, levels)
}

func TestSlog(t *testing.T) {
	ctx, logs := observed(zap.DebugLevel)

	logger.Slog(ctx).Warn("from slog", "queue", "review")

	entries := logs.FilterMessage("from slog").All()
	require.Len(t, entries, 1)
	require.Equal(t, zap.WarnLevel, entries[0].Level)
	require.Equal(t, "review", entries[0].ContextMap()["queue"])
}
