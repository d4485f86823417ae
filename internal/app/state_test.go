package app

import (
	"strings"
	"testing"

	"github.com/kk-code-lab/rlaunch/internal/search"
)

func TestBackspaceRemovesWholeRune(t *testing.T) {
	s := &promptState{Query: "café"}
	if !s.backspace() || s.Query != "caf" {
		t.Fatalf("expected caf, got %q", s.Query)
	}
	s.Query = ""
	if s.backspace() {
		t.Fatalf("backspace on empty query should report no change")
	}
}

func TestDeleteWord(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"visual studio", "visual "},
		{"visual studio  ", "visual "},
		{"single", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		s := &promptState{Query: tt.in}
		s.deleteWord()
		if s.Query != tt.want {
			t.Fatalf("deleteWord(%q)=%q want %q", tt.in, s.Query, tt.want)
		}
	}
}

func TestMoveSelectionWithoutResults(t *testing.T) {
	s := &promptState{Selected: 3}
	s.moveSelection(1)
	if s.Selected != 0 {
		t.Fatalf("expected selection reset, got %d", s.Selected)
	}
	if _, ok := s.selected(); ok {
		t.Fatalf("expected no selection without results")
	}
}

func TestStatusLine(t *testing.T) {
	s := &promptState{Pending: true}
	if !strings.HasPrefix(statusLine(s), "searching") {
		t.Fatalf("expected pending status, got %q", statusLine(s))
	}

	s.setResults([]search.SearchResult{{DisplayName: "A"}, {DisplayName: "B"}}, search.ScanStats{SkippedEntries: 2, MissingRoots: 1})
	line := statusLine(s)
	if !strings.HasPrefix(line, "2 matches") || !strings.Contains(line, "3 unreadable") {
		t.Fatalf("unexpected status %q", line)
	}
}

func TestIconGlyphFallback(t *testing.T) {
	if iconGlyph("application") != "◆" {
		t.Fatalf("expected application glyph")
	}
	if iconGlyph("unknown") != "•" {
		t.Fatalf("expected fallback glyph")
	}
}
