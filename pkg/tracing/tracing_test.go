package tracing

import (
	"context"
	"testing"

	"github.com/getmentor/readme-generator/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInitTracer_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := InitTracer(config.ObservabilityConfig{ServiceName: "readme-generator"}, "test")
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestStartSpan_NoTracer(t *testing.T) {
	prev := tracer
	tracer = nil
	t.Cleanup(func() { tracer = prev })

	ctx, span := StartSpan(context.Background(), "readme.generate")
	defer span.End()

	assert.NotNil(t, ctx)
	assert.False(t, span.IsRecording())
}

func TestStartSpan_RecordsWithTracer(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := tracer
	tracer = tp.Tracer("test")
	t.Cleanup(func() {
		tracer = prev
		_ = tp.Shutdown(context.Background())
	})

	_, span := StartSpan(context.Background(), "readme.generate")
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "readme.generate", spans[0].Name)
}
