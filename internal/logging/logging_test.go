package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/leengari/schema-columns/internal/config"
)

func TestSetupLoggerConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := setupLogger(config.LoggingConfig{Level: "info"}, &buf)
	if err != nil {
		t.Fatalf("setupLogger failed: %v", err)
	}
	defer closeFn()

	logger.Debug("hidden")
	logger.Info("schema document loaded", "table_count", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record should be filtered at info level: %s", out)
	}
	if !strings.Contains(out, "schema document loaded") || !strings.Contains(out, "table_count=3") {
		t.Errorf("expected info record in output, got: %s", out)
	}
}

func TestSetupLoggerInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	if _, _, err := setupLogger(config.LoggingConfig{Level: "loud"}, &buf); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestMultiHandlerFansOut(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	multi := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}

	if !multi.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected debug enabled through the debug handler")
	}

	logger := slog.New(multi).With("run_id", "abc").WithGroup("lookup")
	logger.Debug("table not found", "table", "transactions")
	logger.Warn("slow read", "ms", 12)

	if !strings.Contains(debugBuf.String(), "lookup.table=transactions") {
		t.Errorf("debug handler missing grouped attr: %s", debugBuf.String())
	}
	if !strings.Contains(debugBuf.String(), "run_id=abc") {
		t.Errorf("debug handler missing run_id: %s", debugBuf.String())
	}
	if strings.Contains(warnBuf.String(), "table not found") {
		t.Errorf("warn handler should not receive debug records: %s", warnBuf.String())
	}
	if !strings.Contains(warnBuf.String(), "slow read") {
		t.Errorf("warn handler missing warn record: %s", warnBuf.String())
	}
}

func TestMultiHandlerDisabled(t *testing.T) {
	multi := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
	}}
	if multi.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled when every handler is at error")
	}
}
