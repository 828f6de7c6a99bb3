package tui

import "github.com/charmbracelet/bubbles/spinner"

const headerText = "🚀 EndeavourOS Installer"

// spinnerFrames is the classic | / - \ cycle, one glyph per spinner phase.
var spinnerFrames = spinner.Line.Frames

func spinnerGlyph(phase int) string {
	return spinnerFrames[phase%len(spinnerFrames)]
}

// renderHeader and renderFooter center against the whole frame width, not the
// inner width of the bordered panel between them.
func renderHeader(width int) ScreenContent {
	theme := EndeavourTheme()
	return ScreenContent{
		Borders: BorderBottom,
		Lines:   []Line{CenterLine(headerText, width, theme.Header, EmphasisBold)},
	}
}

func renderFooter(phase, width int) ScreenContent {
	theme := EndeavourTheme()
	return ScreenContent{
		Borders: BorderTop,
		Lines:   []Line{CenterLine(spinnerGlyph(phase), width, theme.Spinner, EmphasisNone)},
	}
}
