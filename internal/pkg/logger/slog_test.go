package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackTraceHandler(t *testing.T) {
	var buf bytes.Buffer

	handler := &StackTraceHandler{Handler: slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})}
	log := slog.New(handler).With(slog.String("component", "test"))

	ctx := WithRequestID(context.Background(), "req-1")

	log.InfoContext(ctx, "hello")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "req-1", record["request_id"])
	assert.Equal(t, "test", record["component"])
	assert.NotContains(t, record, "stack_trace")

	buf.Reset()
	log.ErrorContext(ctx, "failed")

	record = map[string]interface{}{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Contains(t, record, "stack_trace")
}
