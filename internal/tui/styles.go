package tui

import "github.com/charmbracelet/lipgloss"

// Color is any lipgloss color, including lipgloss.NoColor for the terminal default.
type Color = lipgloss.TerminalColor

// AppTheme uses the 16-color ANSI palette so the installer looks the same on
// a bare console as in a graphical terminal.
type AppTheme struct {
	Header    Color
	Title     Color
	Heading   Color
	Success   Color
	Accent    Color
	Subtle    Color
	Border    Color
	Plain     Color
	Spinner   Color
	Highlight Color
}

func EndeavourTheme() AppTheme {
	return AppTheme{
		Header:    lipgloss.Color("14"), // light cyan
		Title:     lipgloss.Color("5"),  // magenta
		Heading:   lipgloss.Color("6"),  // cyan
		Success:   lipgloss.Color("10"), // light green
		Accent:    lipgloss.Color("14"),
		Subtle:    lipgloss.Color("7"), // gray
		Border:    lipgloss.Color("15"),
		Plain:     lipgloss.NoColor{},
		Spinner:   lipgloss.Color("7"),
		Highlight: lipgloss.Color("10"),
	}
}

// Emphasis is a set of text attributes layered on top of a line's color.
type Emphasis uint8

const EmphasisNone Emphasis = 0

const (
	EmphasisBold Emphasis = 1 << iota
	EmphasisDim
	EmphasisItalic
	EmphasisUnderline
)

func (e Emphasis) Has(flag Emphasis) bool {
	return e&flag != 0
}

// Line is one styled row of a screen. Text already includes any leading
// padding produced by CenterLine.
type Line struct {
	Text     string
	Fg       Color
	Emphasis Emphasis
}

func (l Line) Style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if l.Fg != nil {
		s = s.Foreground(l.Fg)
	}
	return s.
		Bold(l.Emphasis.Has(EmphasisBold)).
		Faint(l.Emphasis.Has(EmphasisDim)).
		Italic(l.Emphasis.Has(EmphasisItalic)).
		Underline(l.Emphasis.Has(EmphasisUnderline))
}
