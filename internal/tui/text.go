package tui

import "strings"

// CenterLine left-pads text so it starts at the centered offset for width.
// The offset is floor((width-len(text))/2), measured in bytes, and clamped at
// zero. No trailing padding is added.
func CenterLine(text string, width int, fg Color, emphasis Emphasis) Line {
	return Line{
		Text:     strings.Repeat(" ", centerPadding(text, width)) + text,
		Fg:       fg,
		Emphasis: emphasis,
	}
}

func centerPadding(text string, width int) int {
	return max(0, width-len(text)) / 2
}
