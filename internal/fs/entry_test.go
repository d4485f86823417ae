package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewEntryFromDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Editor.desktop"), nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "Tools"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	items, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(items))
	}

	file := NewEntry(dir, items[0])
	if file.Name != "Editor.desktop" || file.IsDir || file.IsSymlink {
		t.Fatalf("unexpected file entry %+v", file)
	}
	if file.FullPath != filepath.Join(dir, "Editor.desktop") {
		t.Fatalf("unexpected full path %q", file.FullPath)
	}

	sub := NewEntry(dir, items[1])
	if !sub.IsDir || sub.Name != "Tools" {
		t.Fatalf("unexpected dir entry %+v", sub)
	}
}
