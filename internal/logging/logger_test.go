package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return FromZap(zap.New(core)), logs
}

func TestFieldsFromKeyValues(t *testing.T) {
	log, logs := observed(LevelDebug)
	log.With("match_id", "1-abc").Info("fetched", "status", 200, "err", errors.New("boom"))

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "1-abc", ctx["match_id"])
	assert.EqualValues(t, 200, ctx["status"])
	assert.Equal(t, "boom", ctx["err"])
}

func TestOddArgsAndBadKeys(t *testing.T) {
	log, logs := observed(LevelDebug)
	log.Info("msg", 42, "v", "dangling")

	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "v", ctx["arg"])
	assert.Contains(t, ctx, "dangling")
}

func TestLevelFiltering(t *testing.T) {
	log, logs := observed(LevelWarn)
	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestContextFields(t *testing.T) {
	log, logs := observed(LevelDebug)
	ctx := ContextWith(context.Background(), "cmd", "match")
	ctx = ContextWith(ctx, "match_id", "1-abc")
	log.DebugContext(ctx, "request", "path", "/matches/1-abc")

	ctxMap := logs.All()[0].ContextMap()
	assert.Equal(t, "match", ctxMap["cmd"])
	assert.Equal(t, "1-abc", ctxMap["match_id"])
	assert.Equal(t, "/matches/1-abc", ctxMap["path"])
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	log, logs := observed(LevelDebug)
	SetDefault(log)
	t.Cleanup(func() { SetDefault(nil) })

	var nilLogger *Logger
	nilLogger.Info("via default")
	assert.Equal(t, 1, logs.Len())
}

func TestConsoleWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsole(&buf, LevelInfo)
	log.Info("cache hit", "key", "matches/1-abc")
	require.NoError(t, log.Sync())

	assert.Contains(t, buf.String(), "cache hit")
	assert.Contains(t, buf.String(), "matches/1-abc")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
