package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText greedily wraps text to the given display width, breaking on
// spaces. Words wider than the width are emitted on their own line.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	var current strings.Builder
	currentWidth := 0
	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth > 0 && currentWidth+1+wordWidth > width {
			lines = append(lines, current.String())
			current.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			current.WriteByte(' ')
			currentWidth++
		}
		current.WriteString(word)
		currentWidth += wordWidth
	}
	lines = append(lines, current.String())
	return lines
}
