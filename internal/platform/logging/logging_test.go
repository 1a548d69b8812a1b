package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kickclock/internal/platform/logging"
)

func TestNewWritesJSONLinesAtLevel(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "logs", "kickclock.log")
	logger, closer, err := logging.New(path, "info")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug().Msg("hidden")
	logger.Info().Str("timer", "fg").Msg("timer stopped")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered: %s", out)
	}
	if !strings.Contains(out, `"timer":"fg"`) || !strings.Contains(out, `"message":"timer stopped"`) {
		t.Fatalf("missing structured fields: %s", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()
	if _, _, err := logging.New(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Fatalf("expected parse error")
	}
}
