package tui

const welcomeTitle = "🌟 Welcome"

func welcomeScreen(width int) ScreenContent {
	theme := EndeavourTheme()

	return ScreenContent{
		Title:   welcomeTitle,
		Borders: BordersAll,
		Lines: centerLines([]lineDef{
			{"Welcome to EndeavourOS!", theme.Title, EmphasisBold},
			{"", theme.Plain, EmphasisNone},
			{"This installer will guide you through the installation process.", theme.Subtle, EmphasisNone},
			{"", theme.Plain, EmphasisNone},
			{"Press 'Enter' to proceed to the next step.", theme.Success, EmphasisNone},
		}, width),
	}
}
