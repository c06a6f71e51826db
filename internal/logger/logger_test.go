package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelTrace, ParseLevel("TRACE"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, LevelFail, ParseLevel("fail"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("whatever"))
}

func TestHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, slog.LevelInfo))

	l.With("uid", "800000001").Info("card rendered", "bytes", 1234)
	line := strings.TrimRight(buf.String(), "\n")

	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z \[INFO\] card rendered \| uid=800000001, bytes=1234$`)
	assert.Regexp(t, re, line)
}

func TestHandler_LevelFilterAndGroup(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, slog.LevelWarn))

	l.Info("dropped")
	assert.Empty(t, buf.String())

	l.WithGroup("http").Warn("slow", "ms", 900)
	assert.Contains(t, buf.String(), "[WARN] slow | http.ms=900")

	buf.Reset()
	Fail(l, "boom")
	assert.Contains(t, buf.String(), "[FAIL] boom")

	buf.Reset()
	Trace(l, "hidden")
	assert.Empty(t, buf.String())
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "server.log")
	l, closer, err := New(path, slog.LevelDebug, 1)
	require.NoError(t, err)

	l.Debug("hello", "k", "v")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] hello | k=v")
}

func TestNew_Stderr(t *testing.T) {
	l, closer, err := New("", slog.LevelInfo, 1)
	require.NoError(t, err)
	assert.NotNil(t, l)
	assert.NoError(t, closer.Close())
}
