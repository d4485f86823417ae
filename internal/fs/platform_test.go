package fs

import (
	"path/filepath"
	"reflect"
	"testing"
)

func fakeEnv(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func cleanAll(paths ...string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Clean(p)
	}
	return out
}

func TestShortcutExt(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"windows", ".lnk"},
		{"Windows", ".lnk"},
		{"darwin", ".app"},
		{"linux", ".desktop"},
		{"freebsd", ".desktop"},
	}
	for _, tt := range tests {
		if got := ShortcutExt(tt.goos); got != tt.want {
			t.Fatalf("ShortcutExt(%q)=%q want %q", tt.goos, got, tt.want)
		}
	}
	if !BundleShortcuts("darwin") || BundleShortcuts("linux") {
		t.Fatalf("only darwin should use bundle shortcuts")
	}
}

func TestDefaultRootsWindows(t *testing.T) {
	env := fakeEnv(map[string]string{
		"ProgramData": `C:\ProgramData`,
		"APPDATA":     `C:\Users\alex\AppData\Roaming`,
	})
	startMenu := filepath.Join("Microsoft", "Windows", "Start Menu", "Programs")
	want := []string{
		filepath.Join(`C:\ProgramData`, startMenu),
		filepath.Join(`C:\Users\alex\AppData\Roaming`, startMenu),
	}
	if got := DefaultRootsFor("windows", env, `C:\Users\alex`); !reflect.DeepEqual(got, want) {
		t.Fatalf("roots=%v want %v", got, want)
	}
}

func TestDefaultRootsWindowsFallsBackToHome(t *testing.T) {
	got := DefaultRootsFor("windows", fakeEnv(nil), "/home/alex")
	want := []string{filepath.Join("/home/alex", "AppData", "Roaming", "Microsoft", "Windows", "Start Menu", "Programs")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("roots=%v want %v", got, want)
	}
}

func TestDefaultRootsDarwin(t *testing.T) {
	got := DefaultRootsFor("darwin", fakeEnv(nil), "/Users/alex")
	want := cleanAll("/Applications", "/System/Applications", "/Users/alex/Applications")
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("roots=%v want %v", got, want)
	}
}

func TestDefaultRootsXDG(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		got := DefaultRootsFor("linux", fakeEnv(nil), "/home/alex")
		want := cleanAll(
			"/home/alex/.local/share/applications",
			"/usr/local/share/applications",
			"/usr/share/applications",
		)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("roots=%v want %v", got, want)
		}
	})

	t.Run("env overrides and duplicates", func(t *testing.T) {
		env := fakeEnv(map[string]string{
			"XDG_DATA_HOME": "/data/home",
			"XDG_DATA_DIRS": "/opt/share: :/data/home/:/opt/share",
		})
		got := DefaultRootsFor("linux", env, "")
		want := cleanAll(
			"/data/home/applications",
			"/opt/share/applications",
		)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("roots=%v want %v", got, want)
		}
	})
}
