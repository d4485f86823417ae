package search

import (
	fsutil "github.com/kk-code-lab/rlaunch/internal/fs"
)

type FileEntry = fsutil.Entry

// SearchResult is a single shortcut matching a query.
type SearchResult struct {
	DisplayName string `json:"name"`
	IconRef     string `json:"icon"`
	Location    string `json:"path"`
}

// ScanStats summarizes what a search walked and what it had to skip.
// A non-zero SkippedEntries or MissingRoots means the result list may be
// incomplete.
type ScanStats struct {
	RootsScanned   int
	MissingRoots   int
	DirsRead       int
	EntriesSeen    int
	SkippedEntries int
	// Truncated is set when the walk stopped because the cap was reached.
	Truncated bool
}

// Partial reports whether any part of the configured roots could not be read.
func (s ScanStats) Partial() bool {
	return s.MissingRoots > 0 || s.SkippedEntries > 0
}
