package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		out = append(out, entry)
	}
	return out
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Output: &buf, Site: "multistream"})
	require.NoError(t, err)

	Category(logger, CategoryGeneral).Printf("hello %s", "world")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello world", entries[0]["msg"])
	assert.Equal(t, "general", entries[0]["category"])
	assert.Equal(t, "multistream", entries[0]["site"])
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Output: &buf, Level: "warn"})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
	_, err = New(Options{Format: "xml"})
	assert.Error(t, err)
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Output: &buf, Format: "text"})
	require.NoError(t, err)
	logger.Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}

func TestCategoryNilSafe(t *testing.T) {
	Category(nil, CategoryHTTP).Printf("dropped")
}

func TestWithHTTPLogging(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Output: &buf})
	require.NoError(t, err)

	var seenID string
	handler := WithHTTPLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	}), logger)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/streams.json?x=1", nil))

	require.NotEmpty(t, seenID)
	assert.Equal(t, strings.ToUpper(seenID), seenID)
	assert.Equal(t, seenID, rr.Header().Get(RequestIDHeader))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "http", entry["category"])
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "/streams.json", entry["path"])
	assert.Equal(t, "x=1", entry["query"])
	assert.EqualValues(t, http.StatusNotFound, entry["status"])
	assert.EqualValues(t, len("missing"), entry["bytes"])
	assert.Equal(t, seenID, entry["request_id"])
}

func TestWithHTTPLoggingNilLogger(t *testing.T) {
	next := http.NotFoundHandler()
	assert.NotNil(t, WithHTTPLogging(next, nil))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
