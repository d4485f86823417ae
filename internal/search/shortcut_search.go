package search

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"
)

const (
	// DefaultLimit caps the number of results returned by a search.
	DefaultLimit = 5
	// DefaultIconRef is the placeholder icon attached to every result.
	DefaultIconRef = "application"
)

// Options configures a ShortcutSearcher.
type Options struct {
	// Extension identifies shortcut files, e.g. ".lnk". Compared
	// case-insensitively against the end of each entry name.
	Extension string
	// Limit caps the result count; values below 1 mean DefaultLimit.
	Limit int
	// IconRef is copied into every result; empty means DefaultIconRef.
	IconRef string
	// SkipHidden drops hidden entries and does not descend into hidden dirs.
	SkipHidden bool
	// MatchBundles treats directories carrying Extension as shortcuts
	// (macOS .app bundles) instead of descending into them.
	MatchBundles bool
	// Logger receives skip diagnostics. Nil discards them.
	Logger *slog.Logger
}

// ShortcutSearcher scans shortcut roots for names containing a query.
// It holds no state between calls and is safe for concurrent use.
type ShortcutSearcher struct {
	ext          string
	limit        int
	iconRef      string
	skipHidden   bool
	matchBundles bool
	log          *slog.Logger
}

// NewShortcutSearcher creates a searcher from opts, filling in defaults.
func NewShortcutSearcher(opts Options) *ShortcutSearcher {
	ext := opts.Extension
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	limit := opts.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	iconRef := opts.IconRef
	if iconRef == "" {
		iconRef = DefaultIconRef
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &ShortcutSearcher{
		ext:          ext,
		limit:        limit,
		iconRef:      iconRef,
		skipHidden:   opts.SkipHidden,
		matchBundles: opts.MatchBundles,
		log:          logger,
	}
}

// Search is a convenience wrapper running a default searcher for ext.
func Search(query string, roots []string, ext string) []SearchResult {
	return NewShortcutSearcher(Options{Extension: ext}).Search(query, roots)
}

// Extension returns the shortcut extension the searcher matches.
func (s *ShortcutSearcher) Extension() string {
	return s.ext
}

// Limit returns the maximum number of results per search.
func (s *ShortcutSearcher) Limit() int {
	return s.limit
}

// Search returns up to Limit shortcuts under roots whose file name contains
// query, ignoring case. Results follow walk order. Unreadable or missing
// paths are skipped; the returned slice is never nil.
func (s *ShortcutSearcher) Search(query string, roots []string) []SearchResult {
	results, _ := s.SearchWithStats(query, roots)
	return results
}

// SearchWithStats is Search plus a summary of skipped paths.
func (s *ShortcutSearcher) SearchWithStats(query string, roots []string) ([]SearchResult, ScanStats) {
	results := make([]SearchResult, 0, s.limit)
	var stats ScanStats
	if s.ext == "" {
		s.log.Warn("shortcut_search_no_extension")
		return results, stats
	}

	folder := newNameFolder()
	needle := folder.fold(query)
	seen := make(map[string]struct{}, s.limit)

	for _, root := range roots {
		if len(results) >= s.limit {
			stats.Truncated = true
			break
		}
		if root == "" {
			continue
		}
		absRoot, err := filepath.Abs(root)
		if err != nil {
			stats.MissingRoots++
			s.log.Debug("shortcut_root_unresolved", slog.String("root", root), slog.String("error", err.Error()))
			continue
		}

		w := &rootWalk{searcher: s, root: absRoot, stats: &stats}
		done := w.run(func(entry FileEntry) bool {
			if !strings.Contains(folder.fold(entry.Name), needle) {
				return true
			}
			if _, dup := seen[entry.FullPath]; dup {
				return true
			}
			seen[entry.FullPath] = struct{}{}
			results = append(results, s.makeResult(entry))
			return len(results) < s.limit
		})
		if done {
			stats.Truncated = true
			break
		}
	}

	if stats.Partial() {
		s.log.Debug("shortcut_search_partial",
			slog.String("query", query),
			slog.Int("missing_roots", stats.MissingRoots),
			slog.Int("skipped_entries", stats.SkippedEntries),
		)
	}
	return results, stats
}

func (s *ShortcutSearcher) isShortcutName(name string) bool {
	if len(name) < len(s.ext) {
		return false
	}
	return strings.EqualFold(name[len(name)-len(s.ext):], s.ext)
}

func (s *ShortcutSearcher) makeResult(entry FileEntry) SearchResult {
	return SearchResult{
		DisplayName: s.displayName(entry.Name),
		IconRef:     s.iconRef,
		Location:    entry.FullPath,
	}
}

// displayName strips the extension suffix. A name consisting only of the
// extension is returned whole so the result always has a label.
func (s *ShortcutSearcher) displayName(name string) string {
	trimmed := name[:len(name)-len(s.ext)]
	if trimmed == "" {
		return name
	}
	return trimmed
}
