package app

import (
	"unicode"
	"unicode/utf8"

	"github.com/kk-code-lab/rlaunch/internal/search"
)

// promptState is everything the renderer needs to draw one frame.
type promptState struct {
	Query    string
	Results  []search.SearchResult
	Stats    search.ScanStats
	Selected int
	Pending  bool
	Status   string
	Width    int
	Height   int
}

func (s *promptState) insertRune(r rune) {
	s.Query += string(r)
}

// backspace removes the last rune and reports whether the query changed.
func (s *promptState) backspace() bool {
	if s.Query == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(s.Query)
	s.Query = s.Query[:len(s.Query)-size]
	return true
}

// deleteWord removes trailing spaces and the word before them, like Ctrl+W
// in a shell.
func (s *promptState) deleteWord() bool {
	if s.Query == "" {
		return false
	}
	runes := []rune(s.Query)
	end := len(runes)
	for end > 0 && unicode.IsSpace(runes[end-1]) {
		end--
	}
	for end > 0 && !unicode.IsSpace(runes[end-1]) {
		end--
	}
	s.Query = string(runes[:end])
	return true
}

func (s *promptState) clearQuery() bool {
	if s.Query == "" {
		return false
	}
	s.Query = ""
	return true
}

// moveSelection moves the cursor by delta, wrapping at both ends.
func (s *promptState) moveSelection(delta int) {
	n := len(s.Results)
	if n == 0 {
		s.Selected = 0
		return
	}
	s.Selected = ((s.Selected+delta)%n + n) % n
}

func (s *promptState) setResults(results []search.SearchResult, stats search.ScanStats) {
	s.Results = results
	s.Stats = stats
	s.Pending = false
	if s.Selected >= len(results) {
		s.Selected = 0
	}
}

func (s *promptState) selected() (search.SearchResult, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Results) {
		return search.SearchResult{}, false
	}
	return s.Results[s.Selected], true
}
