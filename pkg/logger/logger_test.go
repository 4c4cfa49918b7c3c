package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	prev := Log
	Log = zap.New(core)
	t.Cleanup(func() { Log = prev })
	return logs
}

func TestInitialize_InvalidLevel(t *testing.T) {
	err := Initialize(Config{Level: "loud"})
	require.Error(t, err)
}

func TestInitialize_ProductionWritesRotatedFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, Initialize(Config{
		Level:       "info",
		LogDir:      dir,
		Environment: "production",
		ServiceName: "readme-generator",
		Output:      zapcore.AddSync(os.Stderr),
	}))

	Info("hello")
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"service":"readme-generator"`)
}

func TestLogHTTPRequest_LevelByStatus(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	LogHTTPRequest(context.Background(), "GET", "/", 200, 0.01)
	LogHTTPRequest(context.Background(), "POST", "/", 400, 0.01)
	LogHTTPRequest(context.Background(), "POST", "/", 500, 0.01)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestLogHTTPRequest_AddsTraceIDs(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{1, 2, 3},
		SpanID:  trace.SpanID{4, 5, 6},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	LogHTTPRequest(ctx, "GET", "/", 200, 0.01)

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, spanCtx.TraceID().String(), fields["trace_id"])
	assert.Equal(t, spanCtx.SpanID().String(), fields["span_id"])
}

func TestLogHTTPRequest_NoSpan(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	LogHTTPRequest(context.Background(), "GET", "/", 200, 0.01)

	_, ok := logs.All()[0].ContextMap()["trace_id"]
	assert.False(t, ok)
}
