package tui

const languageSelectionTitle = "🌐 Language Selection"

// Only the marker is drawn. Arrow keys are advertised in the help line but
// nothing moves the selection, so English is always the marked option.
var languageOptions = []string{"English", "Français", "Español"}

const (
	selectedMarker   = "→ "
	unselectedMarker = "  "
)

func languageSelectionScreen(width int) ScreenContent {
	theme := EndeavourTheme()

	defs := []lineDef{
		{"Select your language:", theme.Heading, EmphasisBold},
		{"", theme.Plain, EmphasisNone},
	}

	for i, option := range languageOptions {
		if i == 0 {
			defs = append(defs, lineDef{selectedMarker + option, theme.Highlight, EmphasisNone})
		} else {
			defs = append(defs, lineDef{unselectedMarker + option, theme.Subtle, EmphasisNone})
		}
	}

	defs = append(defs,
		lineDef{"", theme.Plain, EmphasisNone},
		lineDef{"Use arrow keys to navigate and 'Enter' to select.", theme.Subtle, EmphasisNone},
	)

	return ScreenContent{
		Title:   languageSelectionTitle,
		Borders: BordersAll,
		Lines:   centerLines(defs, width),
	}
}
