package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("debug"))
}

func TestLogLevel_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")
	assert.Equal(t, slog.LevelError, LogLevel())
}

func TestNewLogger_JSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo, "json")

	WithDevice(WithRequestID(logger, "req-1"), "cec").Info("sent")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "sent", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "cec", entry["device"])
}

func TestNewLogger_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelWarn, "text")

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestFromContext(t *testing.T) {
	logger := NewLogger(&bytes.Buffer{}, slog.LevelInfo, "text")
	ctx := WithLogger(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestStubMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStubMetrics(reg)

	m.Observe("GET /cec/power-on", 200, 5*time.Millisecond)
	m.Observe("GET /cec/power-on", 200, time.Millisecond)
	m.Observe("GET /cec/power-on", 400, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET /cec/power-on", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET /cec/power-on", "400")))
}
