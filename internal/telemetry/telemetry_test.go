package telemetry

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/flash/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracing_Disabled(t *testing.T) {
	tracer, shutdown, err := InitTracing(context.Background(), "", "test")
	require.NoError(t, err)

	_, span := tracer.Start(context.Background(), "noop")
	span.End()
	assert.False(t, span.SpanContext().IsValid())
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracing_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces.log")

	tracer, shutdown, err := InitTracing(context.Background(), path, "test")
	require.NoError(t, err)

	_, span := tracer.Start(context.Background(), "node chat_bot")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "node chat_bot")
	assert.Contains(t, string(data), ServiceName)
}

func TestMetrics_Hooks(t *testing.T) {
	m := NewMetrics()
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnNodeEnter(ctx, &domain.NodeEvent{NodeID: "chat_bot"})
	hooks.OnNodeLeave(ctx, &domain.NodeEvent{NodeID: "chat_bot", Duration: 20 * time.Millisecond})
	hooks.OnNodeEnter(ctx, &domain.NodeEvent{NodeID: "chat_bot"})
	hooks.OnNodeLeave(ctx, &domain.NodeEvent{NodeID: "chat_bot", Err: errors.New("boom")})

	path := filepath.Join(t.TempDir(), "flash.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `flash_node_invocations_total{node="chat_bot"} 2`)
	assert.Contains(t, out, `flash_node_errors_total{node="chat_bot"} 1`)
	assert.Contains(t, out, `flash_node_duration_seconds_count{node="chat_bot"} 2`)
}
