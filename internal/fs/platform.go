package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	windowsShortcutExt = ".lnk"
	darwinShortcutExt  = ".app"
	xdgShortcutExt     = ".desktop"

	defaultXDGDataDirs = "/usr/local/share:/usr/share"
)

// ShortcutExt returns the shortcut file extension used on goos.
func ShortcutExt(goos string) string {
	switch {
	case strings.EqualFold(goos, "windows"):
		return windowsShortcutExt
	case strings.EqualFold(goos, "darwin"):
		return darwinShortcutExt
	default:
		return xdgShortcutExt
	}
}

// BundleShortcuts reports whether shortcuts on goos are directories
// (application bundles) rather than plain files.
func BundleShortcuts(goos string) bool {
	return strings.EqualFold(goos, "darwin")
}

// DefaultRoots lists the directories holding application shortcuts for the
// current user on this machine.
func DefaultRoots() []string {
	home, _ := os.UserHomeDir()
	return DefaultRootsFor(runtime.GOOS, os.Getenv, home)
}

// DefaultRootsFor resolves the shortcut roots for goos using getenv and the
// user's home directory. Roots that cannot be resolved are omitted; the
// returned paths are not checked for existence.
func DefaultRootsFor(goos string, getenv func(string) string, home string) []string {
	var roots []string

	switch {
	case strings.EqualFold(goos, "windows"):
		startMenu := filepath.Join("Microsoft", "Windows", "Start Menu", "Programs")
		programData := getenv("ProgramData")
		if programData == "" {
			programData = getenv("ALLUSERSPROFILE")
		}
		if programData != "" {
			roots = append(roots, filepath.Join(programData, startMenu))
		}
		appData := getenv("APPDATA")
		if appData == "" && home != "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		if appData != "" {
			roots = append(roots, filepath.Join(appData, startMenu))
		}

	case strings.EqualFold(goos, "darwin"):
		roots = append(roots, "/Applications", "/System/Applications")
		if home != "" {
			roots = append(roots, filepath.Join(home, "Applications"))
		}

	default:
		dataHome := getenv("XDG_DATA_HOME")
		if dataHome == "" && home != "" {
			dataHome = filepath.Join(home, ".local", "share")
		}
		if dataHome != "" {
			roots = append(roots, filepath.Join(dataHome, "applications"))
		}
		dataDirs := getenv("XDG_DATA_DIRS")
		if dataDirs == "" {
			dataDirs = defaultXDGDataDirs
		}
		for _, dir := range strings.Split(dataDirs, ":") {
			if dir = strings.TrimSpace(dir); dir != "" {
				roots = append(roots, filepath.Join(dir, "applications"))
			}
		}
	}

	return uniquePaths(roots)
}

func uniquePaths(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		key := filepath.Clean(p)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out
}
