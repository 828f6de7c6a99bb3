package tui

const completionTitle = "✅ Completion"

func completionScreen(width int) ScreenContent {
	theme := EndeavourTheme()

	return ScreenContent{
		Title:   completionTitle,
		Borders: BordersAll,
		Lines: centerLines([]lineDef{
			{"Installation Complete! 🎉", theme.Success, EmphasisBold},
			{"", theme.Plain, EmphasisNone},
			{"You can now restart your system and enjoy EndeavourOS.", theme.Subtle, EmphasisNone},
			{"", theme.Plain, EmphasisNone},
			{"Press 'Q' to exit.", theme.Accent, EmphasisNone},
		}, width),
	}
}
