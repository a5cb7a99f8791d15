package llog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, flush, err := InitLogger(
		WithLevel("info"),
		WithEncoding("json"),
		WithOutput(&buf),
		WithServiceName("strstack"),
	)
	require.NoError(t, err)
	defer flush()

	logger.Debugw("hidden")
	logger.Infow("pushed", "value", "Hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "pushed", entry["msg"])
	assert.Equal(t, "Hello", entry["value"])
	assert.Equal(t, "strstack", entry["service"])
	assert.Contains(t, entry, "time")
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	_, _, err := InitLogger(WithLevel("loud"), WithOutput(&bytes.Buffer{}))
	require.Error(t, err)
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := InitLogger(WithLevel("warn"), WithOutput(&buf))
	require.NoError(t, err)

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	require.NoError(t, SetLevel("debug"))
	logger.Debug("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestWithRunID(t *testing.T) {
	var buf bytes.Buffer
	_, _, err := InitLogger(WithEncoding("json"), WithOutput(&buf))
	require.NoError(t, err)

	ctx, runID := WithRunID(context.Background(), "")
	assert.NotEmpty(t, runID)
	FromContext(ctx).Info("start")
	assert.Contains(t, buf.String(), `"runId":"`+runID+`"`)

	_, fixed := WithRunID(context.Background(), "run-1")
	assert.Equal(t, "run-1", fixed)
}

func TestInitLoggerFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "strstack.log")
	logger, flush, err := InitLogger(WithFilename(filename), WithOutput(io.Discard))
	require.NoError(t, err)

	logger.Infow("popped", "value", "OpenAI")
	flush()

	data, err := os.ReadFile(filename)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "popped", entry["msg"])
	assert.Equal(t, "OpenAI", entry["value"])
}

func TestGetLogger(t *testing.T) {
	logger, _, err := InitLogger(WithOutput(io.Discard))
	require.NoError(t, err)
	assert.Same(t, logger, GetLogger())
	assert.Same(t, logger, FromContext(context.Background()))
}
