package view

import (
	"github.com/mattn/go-runewidth"
)

// Wrap breaks s into lines no wider than width cells, preferring spaces.
func Wrap(s string, width int) []string {
	return WrapTextToWidths(s, width, width)
}

// WrapTextToWidths wraps text using firstWidth for the first line and
// otherWidth for the rest.
func WrapTextToWidths(s string, firstWidth, otherWidth int) []string {
	if firstWidth <= 0 || otherWidth <= 0 {
		return []string{""}
	}

	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	lines := make([]string, 0, 4)
	width := firstWidth
	lineStart := 0
	lastSpace := -1
	lineWidth := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' {
			lines = append(lines, string(runes[lineStart:i]))
			lineStart = i + 1
			width = otherWidth
			lastSpace = -1
			lineWidth = 0
			continue
		}
		if r == ' ' {
			lastSpace = i
		}

		rw := runewidth.RuneWidth(r)
		if lineWidth+rw > width {
			switch {
			case lastSpace >= lineStart:
				lines = append(lines, string(runes[lineStart:lastSpace]))
				i = lastSpace
				lineStart = lastSpace + 1
			case i > lineStart:
				lines = append(lines, string(runes[lineStart:i]))
				lineStart = i
				i--
			default:
				// A single rune wider than the line still gets a line.
				lines = append(lines, string(r))
				lineStart = i + 1
			}
			width = otherWidth
			lastSpace = -1
			lineWidth = 0
			continue
		}
		lineWidth += rw
	}

	if lineStart < len(runes) || len(lines) == 0 {
		lines = append(lines, string(runes[lineStart:]))
	}
	return lines
}

// ClampLines keeps at most maxLines lines and marks the cut with an ellipsis.
func ClampLines(lines []string, maxLines, width int) []string {
	if maxLines <= 0 {
		return nil
	}
	if len(lines) <= maxLines {
		return lines
	}

	clamped := append([]string(nil), lines[:maxLines]...)
	clamped[maxLines-1] = addEllipsis(clamped[maxLines-1], width)
	return clamped
}

func addEllipsis(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if width <= 3 {
		return "..."[:width]
	}
	if runewidth.StringWidth(s)+3 > width {
		return runewidth.Truncate(s, width-3, "") + "..."
	}
	return s + "..."
}
