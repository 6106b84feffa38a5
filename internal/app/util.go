package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// truncate fits a string to the given terminal width.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "")
}

// padBlock normalizes content to a fixed width and height so old UI text is cleared.
func padBlock(content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		line = truncate(line, width)
		visible := lipgloss.Width(line)
		if visible < width {
			line += strings.Repeat(" ", width-visible)
		}
		lines[i] = line
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// cellLeft pads or cuts plain text to exactly width columns, left aligned.
// Wide glyphs such as ㎡ count as two columns.
func cellLeft(text string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(text, width, ""), width)
}

// cellRight is cellLeft with right alignment.
func cellRight(text string, width int) string {
	return runewidth.FillLeft(runewidth.Truncate(text, width, ""), width)
}

// clamp bounds a value between minVal and maxVal.
func clamp(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
