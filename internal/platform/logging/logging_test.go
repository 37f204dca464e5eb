package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/m-mizutani/masq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{ReplaceAttr: NewReplaceAttr()}))
}

func decodeEntry(t *testing.T, b []byte) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(b, &entry))

	return entry
}

func TestFromContext(t *testing.T) {
	stored := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		ctx  context.Context
		want *slog.Logger
	}{
		{name: "nil context", ctx: nil, want: slog.Default()},
		{name: "no logger", ctx: context.Background(), want: slog.Default()},
		{name: "stored logger", ctx: WithContext(context.Background(), stored), want: stored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, FromContext(tt.ctx))
		})
	}
}

func TestWith_AccumulatesAttributes(t *testing.T) {
	var buf bytes.Buffer

	ctx := WithContext(context.Background(), jsonLogger(&buf))
	ctx = With(ctx, KeyRequestID, "req-1")
	ctx = With(ctx, KeyCorrelationID, "corr-1", KeyTraceID, "trace-1")

	FromContext(ctx).Info("quote added", slog.Int64("quote_id", 7))

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "req-1", entry[KeyRequestID])
	assert.Equal(t, "corr-1", entry[KeyCorrelationID])
	assert.Equal(t, "trace-1", entry[KeyTraceID])
	assert.InDelta(t, 7, entry["quote_id"], 0)
}

func TestWith_NoArgsKeepsContext(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, ctx, With(ctx))
}

func TestWith_DoesNotLeakToParent(t *testing.T) {
	var buf bytes.Buffer

	parent := WithContext(context.Background(), jsonLogger(&buf))
	_ = With(parent, KeyRequestID, "child-only")

	FromContext(parent).Info("parent")

	assert.NotContains(t, buf.String(), "child-only")
}

func TestNewWithWriter_Formats(t *testing.T) {
	tests := []struct {
		format string
		check  func(t *testing.T, out string)
	}{
		{
			format: "json",
			check: func(t *testing.T, out string) {
				entry := decodeEntry(t, []byte(out))
				assert.Equal(t, "listing quotes", entry["msg"])
				assert.Equal(t, "quote-service", entry["service_name"])
				assert.Equal(t, "1.4.0", entry["service_version"])
			},
		},
		{
			format: "text",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, `msg="listing quotes"`)
				assert.Contains(t, out, "service_name=quote-service")
			},
		},
		{
			format: "pretty",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "listing quotes")
				assert.Contains(t, out, "quote-service")
			},
		},
		{
			format: "",
			check: func(t *testing.T, out string) {
				assert.Equal(t, "listing quotes", decodeEntry(t, []byte(out))["msg"])
			},
		},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithWriter(&Config{
				Level:   "info",
				Format:  tt.format,
				Service: "quote-service",
				Version: "1.4.0",
			}, &buf)

			logger.Info("listing quotes")

			tt.check(t, buf.String())
		})
	}
}

func TestNewWithWriter_FileCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.log")

	var console bytes.Buffer
	logger := NewWithWriter(&Config{
		Level:   "info",
		Format:  "pretty",
		Service: "quote-service",
		File: FileConfig{
			Enabled:    true,
			Path:       path,
			MaxSizeMB:  1,
			MaxBackups: 1,
			MaxAgeDays: 1,
		},
	}, &console)

	logger.Info("sample quotes loaded", slog.Int("count", 30))

	assert.Contains(t, console.String(), "sample quotes loaded")

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	entry := decodeEntry(t, content)
	assert.Equal(t, "sample quotes loaded", entry["msg"])
	assert.InDelta(t, 30, entry["count"], 0)
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	tests := []struct {
		level     string
		wantTrace bool
		wantDebug bool
		wantInfo  bool
	}{
		{level: "trace", wantTrace: true, wantDebug: true, wantInfo: true},
		{level: "debug", wantDebug: true, wantInfo: true},
		{level: "INFO", wantInfo: true},
		{level: "warning"},
		{level: "bogus", wantInfo: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithWriter(&Config{Level: tt.level}, &buf)
			ctx := context.Background()

			logger.Log(ctx, LevelTrace, "trace-line")
			logger.DebugContext(ctx, "debug-line")
			logger.InfoContext(ctx, "info-line")

			out := buf.String()
			assert.Equal(t, tt.wantTrace, strings.Contains(out, "trace-line"))
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug-line"))
			assert.Equal(t, tt.wantInfo, strings.Contains(out, "info-line"))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   LevelTrace,
		"Debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"":        slog.LevelInfo,
	}

	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), "parseLevel(%q)", in)
	}
}

func TestSlogToCharmLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want log.Level
	}{
		{in: LevelTrace, want: log.DebugLevel},
		{in: slog.LevelDebug, want: log.DebugLevel},
		{in: slog.LevelInfo, want: log.InfoLevel},
		{in: slog.LevelInfo + 2, want: log.InfoLevel},
		{in: slog.LevelWarn, want: log.WarnLevel},
		{in: slog.LevelError, want: log.ErrorLevel},
		{in: slog.LevelError + 4, want: log.ErrorLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slogToCharmLevel(tt.in), "level %v", tt.in)
	}
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { //nolint:gocritic // slog.Handler signature
	return errors.New("disk full")
}

func TestTee(t *testing.T) {
	var info, debug bytes.Buffer

	h := Tee(
		slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	logger := slog.New(h).With(slog.String("variant", "memory")).WithGroup("quote")

	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, h.Enabled(context.Background(), LevelTrace))

	logger.Debug("cache miss", slog.Int64("id", 3))
	logger.Info("stored", slog.Int64("id", 4))

	assert.NotContains(t, info.String(), "cache miss")
	assert.Contains(t, info.String(), `"quote":{"id":4}`)
	assert.Contains(t, debug.String(), "cache miss")
	assert.Contains(t, debug.String(), `"variant":"memory"`)
}

func TestTee_SingleHandlerUnwrapped(t *testing.T) {
	h := slog.NewTextHandler(io.Discard, nil)

	assert.Same(t, h, Tee(h))
}

func TestTee_JoinsErrors(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, nil)

	h := Tee(base, failingHandler{base})
	err := h.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "still written", 0))

	require.ErrorContains(t, err, "disk full")
	assert.Contains(t, buf.String(), "still written")
}

func TestNewReplaceAttr(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  string
		redact bool
	}{
		{name: "dsn field", key: "dsn", value: "file:quotes.db", redact: true},
		{name: "password field", key: "password", value: "hunter2", redact: true},
		{name: "secret prefix", key: "secret_salt", value: "pepper", redact: true},
		{name: "url dsn value", key: "target", value: "postgres://quotes:hunter2@db:5432/quotes", redact: true},
		{name: "keyword dsn value", key: "target", value: "host=db user=quotes password=hunter2", redact: true},
		{name: "bearer header", key: "header", value: "Bearer abc.def", redact: true},
		{name: "url without credentials", key: "target", value: "postgres://db:5432/quotes", redact: false},
		{name: "quote text", key: "text", value: "Simple is better than complex.", redact: false},
		{name: "attribution", key: "attributedTo", value: "Tim Peters", redact: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			jsonLogger(&buf).Info("event", slog.String(tt.key, tt.value))

			entry := decodeEntry(t, buf.Bytes())
			require.Contains(t, entry, tt.key)

			if tt.redact {
				assert.NotEqual(t, tt.value, entry[tt.key])
				assert.NotContains(t, buf.String(), "hunter2")
			} else {
				assert.Equal(t, tt.value, entry[tt.key])
			}
		})
	}
}

func TestNewReplaceAttr_ExtraOptions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: NewReplaceAttr(masq.WithFieldName("adminKey")),
	}))

	logger.Info("loading samples", slog.String("adminKey", "letmein"), slog.String("dsn", "file:x.db"))

	assert.NotContains(t, buf.String(), "letmein")
	assert.NotContains(t, buf.String(), "file:x.db")
}

func TestNew_UsesConfiguredRedaction(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&Config{Format: "text", Service: "quote-service"}, &buf)

	ctx := With(WithContext(context.Background(), logger), KeyRequestID, "req-9")
	FromContext(ctx).InfoContext(ctx, "opening database", slog.String("dsn", "postgres://u:topsecret@db/quotes"))

	assert.Contains(t, buf.String(), "request_id=req-9")
	assert.NotContains(t, buf.String(), "topsecret")
}
