package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

func runeCells(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	return w
}

// DisplayWidth reports the number of terminal cells text occupies.
func DisplayWidth(text string) int {
	width := 0
	for _, r := range text {
		width += runeCells(r)
	}
	return width
}

// TruncateToWidth shortens text to at most maxWidth cells, ending it with an
// ellipsis when something was cut.
func TruncateToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if DisplayWidth(text) <= maxWidth {
		return text
	}

	ellipsisWidth := DisplayWidth(ellipsis)
	if maxWidth <= ellipsisWidth {
		return ellipsis
	}

	available := maxWidth - ellipsisWidth
	var b strings.Builder
	used := 0
	for _, r := range text {
		w := runeCells(r)
		if used+w > available {
			break
		}
		b.WriteRune(r)
		used += w
	}
	b.WriteString(ellipsis)
	return b.String()
}

// TruncateLeft keeps the end of text, which is the informative part of a
// long path, prefixing it with an ellipsis.
func TruncateLeft(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if DisplayWidth(text) <= maxWidth {
		return text
	}

	ellipsisWidth := DisplayWidth(ellipsis)
	if maxWidth <= ellipsisWidth {
		return ellipsis
	}

	runes := []rune(text)
	available := maxWidth - ellipsisWidth
	used := 0
	start := len(runes)
	for start > 0 {
		w := runeCells(runes[start-1])
		if used+w > available {
			break
		}
		used += w
		start--
	}
	return ellipsis + string(runes[start:])
}
