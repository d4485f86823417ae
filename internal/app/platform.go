package app

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

const envOpener = "RLAUNCH_OPENER"

// commandBuilder is swapped in tests to avoid spawning real openers.
var commandBuilder = exec.Command

// Opener starts the application behind a shortcut location.
type Opener interface {
	Open(location string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(location string) error

// Open calls f(location).
func (f OpenerFunc) Open(location string) error {
	return f(location)
}

// commandOpener runs an external command with the location appended.
type commandOpener struct {
	goos    string
	base    []string
	desktop []string
}

// DetectOpener picks the system opener for the running platform. The
// RLAUNCH_OPENER environment variable overrides detection.
func DetectOpener() Opener {
	return detectOpenerInternal(runtime.GOOS, os.Getenv, exec.LookPath)
}

func detectOpenerInternal(goos string, getenv func(string) string, lookPath func(string) (string, error)) *commandOpener {
	opener := &commandOpener{goos: goos}
	if args := parseCommandLine(getenv(envOpener)); len(args) > 0 {
		if resolved, ok := resolveExecutable(args[0], lookPath); ok {
			args[0] = resolved
			opener.base = args
			return opener
		}
	}
	opener.base = detectOpenCommand(goos, lookPath)
	opener.desktop = detectDesktopLauncher(goos, lookPath)
	return opener
}

// detectOpenCommand returns the generic "open this file" command for goos.
func detectOpenCommand(goos string, lookPath func(string) (string, error)) []string {
	switch {
	case strings.EqualFold(goos, "windows"):
		// The empty argument is the window title expected by start.
		return []string{"cmd", "/C", "start", ""}
	case strings.EqualFold(goos, "darwin"):
		return []string{"open"}
	}

	for _, candidate := range []string{"xdg-open", "gio", "kde-open5", "exo-open"} {
		path, ok := resolveExecutable(candidate, lookPath)
		if !ok {
			continue
		}
		if candidate == "gio" {
			return []string{path, "open"}
		}
		return []string{path}
	}
	return nil
}

// detectDesktopLauncher finds a command able to execute .desktop entries
// rather than opening them in an editor, which is what xdg-open does.
func detectDesktopLauncher(goos string, lookPath func(string) (string, error)) []string {
	if strings.EqualFold(goos, "windows") || strings.EqualFold(goos, "darwin") {
		return nil
	}
	if path, ok := resolveExecutable("gio", lookPath); ok {
		return []string{path, "launch"}
	}
	if path, ok := resolveExecutable("dex", lookPath); ok {
		return []string{path}
	}
	return nil
}

// args builds the command line used to open location.
func (o *commandOpener) args(location string) []string {
	base := o.base
	if len(o.desktop) > 0 && strings.EqualFold(filepath.Ext(location), ".desktop") {
		base = o.desktop
	}
	if len(base) == 0 {
		return nil
	}
	args := make([]string, len(base)+1)
	copy(args, base)
	args[len(base)] = location
	return args
}

// Open starts the opener without waiting for the launched application.
func (o *commandOpener) Open(location string) error {
	args := o.args(location)
	if len(args) == 0 {
		return fmt.Errorf("no opener available for %s", filepath.Base(location))
	}

	cmd := commandBuilder(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%s failed: %w", filepath.Base(args[0]), err)
	}
	if cmd.Process != nil {
		// Reap in the background so short-lived openers do not linger as zombies.
		go func() {
			_ = cmd.Wait()
		}()
	}
	return nil
}

func resolveExecutable(cmd string, lookPath func(string) (string, error)) (string, bool) {
	if cmd == "" || lookPath == nil {
		return "", false
	}
	cmd = expandUserPath(cmd)
	path, err := lookPath(cmd)
	if err != nil || path == "" {
		return "", false
	}
	return path, true
}

// parseCommandLine splits a command string honoring single and double quotes.
func parseCommandLine(cmd string) []string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	var args []string
	var current strings.Builder
	inSingle, inDouble := false, false

	for _, r := range cmd {
		switch {
		case r == '\'' && !inDouble:
			inSingle = !inSingle
		case r == '"' && !inSingle:
			inDouble = !inDouble
		case unicode.IsSpace(r) && !inSingle && !inDouble:
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}

func expandUserPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) > 1 && path[1] != '/' && path[1] != '\\' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if len(path) == 1 {
		return home
	}
	return filepath.Join(home, path[2:])
}
