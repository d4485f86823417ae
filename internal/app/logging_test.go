package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerDiscardsByDefault(t *testing.T) {
	logger, closeFn := NewLogger(func(string) string { return "" })
	if logger == nil {
		t.Fatalf("expected a logger")
	}
	logger.Info("ignored")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNewLoggerWritesDebugFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)
	t.Setenv("TMP", tmp)
	t.Setenv("TEMP", tmp)

	logger, closeFn := NewLogger(func(key string) string {
		if key == envDebug {
			return "1"
		}
		return ""
	})
	logger.Debug("shortcut_scan_skip", "path", "/locked")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmp, debugLogName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "shortcut_scan_skip") || !strings.Contains(string(data), "/locked") {
		t.Fatalf("unexpected log contents %q", data)
	}
}
