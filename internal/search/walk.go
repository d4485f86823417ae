package search

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	fsutil "github.com/kk-code-lab/rlaunch/internal/fs"
)

// shouldHideFromListingFn mirrors fs.ShouldHideFromListing for test overrides.
var shouldHideFromListingFn = fsutil.ShouldHideFromListing

// readDirFn mirrors os.ReadDir for test overrides.
var readDirFn = os.ReadDir

type rootWalk struct {
	searcher *ShortcutSearcher
	root     string
	stats    *ScanStats
}

// run walks the root breadth-first and hands every shortcut entry to visit.
// It stops when visit returns false and reports whether that happened.
func (w *rootWalk) run(visit func(FileEntry) bool) bool {
	info, err := os.Stat(w.root)
	if err != nil || !info.IsDir() {
		w.stats.MissingRoots++
		attrs := []any{slog.String("root", w.root)}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		w.searcher.log.Debug("shortcut_root_missing", attrs...)
		return false
	}
	w.stats.RootsScanned++

	queue := []string{w.root}
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := readDirFn(dir)
		if err != nil {
			// os.ReadDir returns what it managed to read alongside the error.
			w.skip(dir, err)
			if len(entries) == 0 {
				continue
			}
		} else {
			w.stats.DirsRead++
		}

		for _, d := range entries {
			w.stats.EntriesSeen++
			entry := fsutil.NewEntry(dir, d)

			if w.shouldSkip(entry) {
				continue
			}

			isShortcut := w.searcher.isShortcutName(entry.Name)
			if entry.IsDir {
				if isShortcut && w.searcher.matchBundles {
					if !visit(entry) {
						return true
					}
					continue
				}
				queue = append(queue, entry.FullPath)
				continue
			}

			if !isShortcut {
				continue
			}
			if entry.IsSymlink && !w.targetIsFile(entry) {
				continue
			}
			if !visit(entry) {
				return true
			}
		}
	}
	return false
}

func (w *rootWalk) shouldSkip(entry FileEntry) bool {
	if shouldHideFromListingFn(entry.FullPath, entry.Name) {
		return true
	}
	if w.searcher.skipHidden && entry.IsHidden() {
		return true
	}
	return false
}

// targetIsFile resolves a symlinked shortcut. Broken links are skipped, and
// links to directories are only accepted as bundles.
func (w *rootWalk) targetIsFile(entry FileEntry) bool {
	info, err := os.Stat(entry.FullPath)
	if err != nil {
		w.skip(entry.FullPath, err)
		return false
	}
	if info.IsDir() {
		return w.searcher.matchBundles
	}
	return true
}

func (w *rootWalk) skip(path string, err error) {
	w.stats.SkippedEntries++
	level := slog.LevelDebug
	if errors.Is(err, fs.ErrPermission) {
		level = slog.LevelInfo
	}
	w.searcher.log.Log(context.Background(), level, "shortcut_scan_skip",
		slog.String("path", path),
		slog.String("error", err.Error()),
	)
}
