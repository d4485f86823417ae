package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/kk-code-lab/rlaunch/internal/search"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    cliOptions
		wantErr string
	}{
		{"interactive", nil, cliOptions{}, ""},
		{"query", []string{"-q", "note"}, cliOptions{query: "note", queryMode: true}, ""},
		{"empty query", []string{"--query="}, cliOptions{queryMode: true}, ""},
		{"config and json", []string{"--config=/x.toml", "--query", "a", "--json"}, cliOptions{query: "a", queryMode: true, configPath: "/x.toml", json: true}, ""},
		{"launch", []string{"-q", "calc", "-l"}, cliOptions{query: "calc", queryMode: true, launch: true}, ""},
		{"setup", []string{"--setup"}, cliOptions{setup: true}, ""},
		{"setup shell", []string{"-s", "fish"}, cliOptions{setup: true, setupShell: "fish"}, ""},
		{"setup equals", []string{"--setup=zsh"}, cliOptions{setup: true, setupShell: "zsh"}, ""},
		{"missing value", []string{"--query"}, cliOptions{}, "requires a value"},
		{"json without query", []string{"--json"}, cliOptions{}, "require --query"},
		{"unknown", []string{"--hotkey"}, cliOptions{}, "unknown option"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestParseArgsHelp(t *testing.T) {
	if _, err := parseArgs([]string{"-q", "x", "--help"}); !errors.Is(err, errHelp) {
		t.Fatalf("expected help error, got %v", err)
	}
}

func TestPrintResultsPlain(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() {
		color.NoColor = prev
	}()

	var buf bytes.Buffer
	err := printResults(&buf, []search.SearchResult{
		{DisplayName: "Notepad", IconRef: "application", Location: "/apps/Notepad.lnk"},
	}, false)
	if err != nil {
		t.Fatalf("printResults: %v", err)
	}
	if got := buf.String(); got != "[application] Notepad  /apps/Notepad.lnk\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func writeTestConfig(t *testing.T, root string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "roots = [" + tomlLiteral(root) + "]\nextension = \".lnk\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// tomlLiteral produces a TOML literal string, which keeps Windows
// backslashes intact.
func tomlLiteral(s string) string {
	return "'" + s + "'"
}

func TestRunQueryJSON(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"Notepad.lnk", "Calculator.lnk", "Note.lnk"} {
		if err := os.WriteFile(filepath.Join(root, name), nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	t.Setenv("RLAUNCH_ROOTS", "")
	t.Setenv("RLAUNCH_EXT", "")
	t.Setenv("RLAUNCH_LIMIT", "")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", writeTestConfig(t, root), "--query", "not", "--json"}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, stderr.String())
	}

	var names []string
	for _, line := range strings.Split(strings.TrimSpace(stdout.String()), "\n") {
		var r search.SearchResult
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		names = append(names, r.DisplayName)
	}
	if strings.Join(names, ",") != "Note,Notepad" {
		t.Fatalf("expected Note,Notepad got %v", names)
	}
}

func TestRunUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--bogus"}, &stdout, &stderr); code != exitUsage {
		t.Fatalf("expected usage exit code, got %d", code)
	}
	if !strings.Contains(stderr.String(), "USAGE") {
		t.Fatalf("expected help on stderr, got %q", stderr.String())
	}
}

func TestRunMissingConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", filepath.Join(t.TempDir(), "nope.toml"), "-q", "x"}, &stdout, &stderr)
	if code != exitError {
		t.Fatalf("expected error exit code, got %d", code)
	}
}

func TestRunSetup(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--setup", "zsh"}, &stdout, &stderr); code != exitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(stdout.String(), "bindkey") {
		t.Fatalf("expected zsh snippet, got %q", stdout.String())
	}
}
