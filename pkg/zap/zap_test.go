package zap

import (
	"context"
	"testing"

	logpkg "github.com/LerianStudio/mini-ledger/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewRespectsConfiguredLevel(t *testing.T) {
	t.Parallel()

	logger, level, err := New(Config{Environment: EnvironmentLocal, Level: "warn"})
	require.NoError(t, err)

	assert.Equal(t, zapcore.WarnLevel, level.Level())
	assert.True(t, logger.Enabled(logpkg.LevelError))
	assert.True(t, logger.Enabled(logpkg.LevelWarn))
	assert.False(t, logger.Enabled(logpkg.LevelInfo))
	assert.False(t, logger.Enabled(logpkg.LevelDebug))
}

func TestNewDefaultLevels(t *testing.T) {
	t.Parallel()

	logger, _, err := New(Config{Environment: EnvironmentProduction})
	require.NoError(t, err)
	assert.True(t, logger.Enabled(logpkg.LevelInfo))
	assert.False(t, logger.Enabled(logpkg.LevelDebug))

	logger, _, err = New(Config{Environment: EnvironmentDevelopment})
	require.NoError(t, err)
	assert.True(t, logger.Enabled(logpkg.LevelDebug))
}

func TestNewRejectsBadConfig(t *testing.T) {
	t.Parallel()

	_, _, err := New(Config{Environment: "qa"})
	require.Error(t, err)

	_, _, err = New(Config{Environment: EnvironmentLocal, Level: "loud"})
	require.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var logger *Logger

	// Every call must be a safe no-op on a nil receiver.
	logger.Log(context.Background(), logpkg.LevelInfo, "dropped")
	assert.False(t, logger.Enabled(logpkg.LevelError))
	assert.NoError(t, logger.Sync(context.Background()))

	child := logger.With(logpkg.String("k", "v"))
	assert.NotNil(t, child)
	child.Log(context.Background(), logpkg.LevelInfo, "dropped")

	child = logger.WithZapFields(zap.String("k", "v"))
	assert.NotNil(t, child)
	child.Log(context.Background(), logpkg.LevelInfo, "dropped")

	assert.NotNil(t, logger.Raw())
	assert.Equal(t, zap.AtomicLevel{}, logger.Level())
}

func TestLoggerAccessors(t *testing.T) {
	t.Parallel()

	logger, level, err := New(Config{Environment: EnvironmentLocal, Level: "info"})
	require.NoError(t, err)

	assert.Equal(t, level, logger.Level())
	assert.NotNil(t, logger.Raw())

	child := logger.WithZapFields(zap.String("component", "ledger"))
	require.NotNil(t, child)
	assert.Equal(t, level, child.Level())
	assert.True(t, child.Enabled(logpkg.LevelInfo))
}

func TestLevelConversionRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zapcore.DebugLevel, logLevelToZap(logpkg.LevelDebug))
	assert.Equal(t, zapcore.InfoLevel, logLevelToZap(logpkg.LevelInfo))
	assert.Equal(t, zapcore.WarnLevel, logLevelToZap(logpkg.LevelWarn))
	assert.Equal(t, zapcore.ErrorLevel, logLevelToZap(logpkg.LevelError))
	assert.Equal(t, zapcore.InfoLevel, logLevelToZap(logpkg.Level(9)))
}
