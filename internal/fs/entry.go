package fs

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Entry is a filesystem entry met while scanning a shortcut root.
type Entry struct {
	Name      string
	FullPath  string
	IsDir     bool
	IsSymlink bool
}

// NewEntry describes d, which was read from the directory dir.
func NewEntry(dir string, d fs.DirEntry) Entry {
	return Entry{
		Name:      d.Name(),
		FullPath:  filepath.Join(dir, d.Name()),
		IsDir:     d.IsDir(),
		IsSymlink: d.Type()&os.ModeSymlink != 0,
	}
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.FullPath, e.Name)
}
