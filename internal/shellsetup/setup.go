// Package shellsetup prints shell snippets that bind Alt+Space to the
// launcher prompt, so it can be summoned from any interactive shell.
package shellsetup

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
)

type ParentShellFunc func() string

type Config struct {
	DetectParent ParentShellFunc
	// Executable is the launcher path embedded in the snippet. Empty means
	// os.Executable.
	Executable string
}

// PrintSetup writes the key binding snippet for shellOverride, or for the
// detected shell when the override is empty. It returns the shell used.
func PrintSetup(w io.Writer, shellOverride string, cfg Config) string {
	parent := cfg.DetectParent
	if parent == nil {
		parent = DetectParentShellName
	}

	shell := canonicalShellName(normalizeShellName(shellOverride))
	if shell == "" {
		shell = detectShell(parent)
	}

	exe := cfg.Executable
	if exe == "" {
		var err error
		if exe, err = os.Executable(); err != nil {
			exe = "rlaunch"
		}
	}

	switch shell {
	case "zsh":
		fmt.Fprintf(w, `rlaunch-widget() {
    command %s </dev/tty
    zle reset-prompt
}
zle -N rlaunch-widget
bindkey '^[ ' rlaunch-widget
`, posixQuote(exe))
	case "fish":
		fmt.Fprintf(w, `function __rlaunch
    command %s </dev/tty
    commandline -f repaint
end
bind \e\x20 __rlaunch
`, fishQuote(exe))
	case "pwsh":
		fmt.Fprintf(w, `Set-PSReadLineKeyHandler -Chord Alt+Spacebar -ScriptBlock {
    & %s
    [Microsoft.PowerShell.PSConsoleReadLine]::InvokePrompt()
}
`, pwshQuote(exe))
	case "tcsh", "csh":
		fmt.Fprintf(w, "bindkey -c '^[ ' %s\n", posixQuote(exe))
	case "cmd":
		fmt.Fprintf(w, ":: cmd.exe has no key bindings; add this macro instead.\ndoskey rl=\"%s\" $*\n", exe)
	default:
		// bash, sh, ksh and unknown shells get the readline binding.
		fmt.Fprintf(w, `rlaunch_widget() {
    command %s </dev/tty
}
bind -x '"\e ": rlaunch_widget'
`, posixQuote(exe))
	}
	return shell
}

// posixQuote single-quotes s for sh-family shells; nothing inside is expanded.
func posixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// fishQuote single-quotes s for fish, where backslash escapes quote and
// backslash inside single quotes.
func fishQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

// pwshQuote produces a PowerShell verbatim string.
func pwshQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func detectShell(parent ParentShellFunc) string {
	return detectShellInternal(runtime.GOOS, os.Getenv, parent)
}

func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}

	if parent != nil {
		if shell := canonicalShellName(normalizeShellName(parent())); shell != "" {
			return shell
		}
	}

	if strings.EqualFold(goos, "windows") {
		switch shell := canonicalShellName(normalizeShellName(getenv("COMSPEC"))); shell {
		case "pwsh", "cmd":
			return shell
		}
		return "pwsh"
	}

	return "bash"
}

func canonicalShellName(name string) string {
	if name == "powershell" {
		return "pwsh"
	}
	return name
}

// normalizeShellName reduces a shell path or command line such as
// `"C:\Program Files\PowerShell\pwsh.exe" -NoLogo` to its bare name.
func normalizeShellName(value string) string {
	value = extractExecutable(strings.TrimSpace(value))
	if value == "" {
		return ""
	}
	value = strings.ReplaceAll(value, "\\", "/")
	base := strings.ToLower(path.Base(value))
	return strings.TrimSpace(strings.TrimSuffix(base, ".exe"))
}

func extractExecutable(value string) string {
	if value == "" {
		return ""
	}
	if quote := value[0]; quote == '"' || quote == '\'' {
		value = value[1:]
		if idx := strings.IndexByte(value, quote); idx >= 0 {
			return value[:idx]
		}
		return value
	}
	if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		return value[:idx]
	}
	return value
}
