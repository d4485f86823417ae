package app

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rlaunch/internal/textutil"
)

const promptPrefix = "❯ "

var iconGlyphs = map[string]string{
	"application": "◆",
	"folder":      "▸",
	"link":        "↗",
}

var (
	stylePrompt   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleQuery    = tcell.StyleDefault
	styleItem     = tcell.StyleDefault
	styleSelected = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite).Bold(true)
	styleLocation = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleError    = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

func iconGlyph(ref string) string {
	if glyph, ok := iconGlyphs[ref]; ok {
		return glyph
	}
	return "•"
}

// renderer draws promptState onto a tcell screen.
type renderer struct {
	screen tcell.Screen
}

func (r *renderer) render(s *promptState) {
	if r.screen == nil {
		return
	}
	r.screen.Clear()
	w, h := s.Width, s.Height
	if w <= 0 || h <= 0 {
		return
	}

	x := r.drawText(0, 0, w, promptPrefix, stylePrompt)
	query := textutil.SanitizeTerminalText(s.Query)
	end := r.drawText(x, 0, w-x, textutil.TruncateLeft(query, w-x-1), styleQuery)
	r.screen.ShowCursor(end, 0)

	rows := h - 2
	for i, result := range s.Results {
		if i >= rows {
			break
		}
		r.drawResult(1+i, w, result.IconRef, result.DisplayName, result.Location, i == s.Selected)
	}

	r.drawStatus(h-1, w, s)
	r.screen.Show()
}

func (r *renderer) drawResult(y, w int, icon, name, location string, selected bool) {
	style := styleItem
	locStyle := styleLocation
	if selected {
		style = styleSelected
		locStyle = styleSelected.Bold(false)
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	label := fmt.Sprintf(" %s %s", iconGlyph(icon), textutil.SanitizeTerminalText(name))
	label = textutil.TruncateToWidth(label, w)
	x := r.drawText(0, y, w, label, style)

	remaining := w - x - 2
	if remaining < 8 {
		return
	}
	loc := textutil.TruncateLeft(textutil.SanitizeTerminalText(location), remaining)
	r.drawText(w-textutil.DisplayWidth(loc)-1, y, remaining, loc, locStyle)
}

func (r *renderer) drawStatus(y, w int, s *promptState) {
	if y <= 0 {
		return
	}
	if s.Status != "" {
		r.drawText(0, y, w, textutil.TruncateToWidth(s.Status, w), styleError)
		return
	}
	r.drawText(0, y, w, textutil.TruncateToWidth(statusLine(s), w), styleStatus)
}

func statusLine(s *promptState) string {
	var parts []string
	switch {
	case s.Pending:
		parts = append(parts, "searching…")
	case len(s.Results) == 1:
		parts = append(parts, "1 match")
	default:
		parts = append(parts, fmt.Sprintf("%d matches", len(s.Results)))
	}
	if s.Stats.Partial() {
		parts = append(parts, fmt.Sprintf("%d unreadable", s.Stats.SkippedEntries+s.Stats.MissingRoots))
	}
	parts = append(parts, "↑↓ select", "enter launch", "esc close")
	return strings.Join(parts, " · ")
}

// drawText writes text starting at x and returns the column after it.
func (r *renderer) drawText(x, y, maxWidth int, text string, style tcell.Style) int {
	limit := x + maxWidth
	for _, ru := range text {
		width := textutil.DisplayWidth(string(ru))
		if width == 0 {
			continue
		}
		if x+width > limit {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		x += width
	}
	return x
}
