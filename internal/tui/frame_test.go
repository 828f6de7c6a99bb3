package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionHeights(t *testing.T) {
	tests := []struct {
		height                  int
		header, content, footer int
	}{
		{40, 4, 30, 6},
		{24, 2, 18, 4},
		{10, 1, 7, 2},
		{3, 0, 2, 1},
		{0, 0, 0, 0},
		{-5, 0, 0, 0},
	}
	for _, tt := range tests {
		h, c, f := regionHeights(tt.height)
		assert.Equal(t, []int{tt.header, tt.content, tt.footer}, []int{h, c, f}, "height %d", tt.height)
	}
}

func TestRenderPanelAllBorders(t *testing.T) {
	c := ScreenContent{
		Title:   "Hi",
		Borders: BordersAll,
		Lines:   []Line{{Text: "abc"}, {Text: strings.Repeat("x", 40)}},
	}

	rows := renderPanel(c, 20, 5, lipgloss.NoColor{})
	require.Len(t, rows, 5)

	assert.Equal(t, "┌Hi"+strings.Repeat("─", 16)+"┐", rows[0])
	assert.Equal(t, "│abc"+strings.Repeat(" ", 15)+"│", rows[1])
	assert.Equal(t, "│"+strings.Repeat("x", 18)+"│", rows[2], "wide lines are clipped")
	assert.Equal(t, "│"+strings.Repeat(" ", 18)+"│", rows[3])
	assert.Equal(t, "└"+strings.Repeat("─", 18)+"┘", rows[4])
}

func TestRenderPanelSingleEdges(t *testing.T) {
	header := renderPanel(ScreenContent{Borders: BorderBottom, Lines: []Line{{Text: " hi"}}}, 6, 2, lipgloss.NoColor{})
	assert.Equal(t, []string{" hi   ", "──────"}, header)

	footer := renderPanel(ScreenContent{Borders: BorderTop, Lines: []Line{{Text: "  |"}}}, 6, 3, lipgloss.NoColor{})
	assert.Equal(t, []string{"──────", "  |   ", "      "}, footer)
}

func TestRenderPanelDegenerateSizes(t *testing.T) {
	c := RenderScreen(ScreenWelcome, 80)

	assert.Nil(t, renderPanel(c, 0, 10, lipgloss.NoColor{}))
	assert.Nil(t, renderPanel(c, 10, 0, lipgloss.NoColor{}))

	rows := renderPanel(c, 10, 1, lipgloss.NoColor{})
	require.Len(t, rows, 1, "top border wins when only one row is available")

	rows = renderPanel(c, 1, 3, lipgloss.NoColor{})
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.Equal(t, 1, lipgloss.Width(r))
	}

	rows = renderPanel(c, 2, 3, lipgloss.NoColor{})
	assert.Equal(t, "││", rows[1])
}

func TestComposeFrameUsesFullWidth(t *testing.T) {
	theme := EndeavourTheme()
	f := ComposeFrame(LoopState{Step: 1, SpinnerPhase: 2}, 80)

	assert.Equal(t, CenterLine(headerText, 80, theme.Header, EmphasisBold), f.Header.Lines[0])
	assert.Equal(t, RenderScreen(ScreenLanguageSelection, 80), f.Content)
	assert.Equal(t, CenterLine("-", 80, theme.Spinner, EmphasisNone), f.Footer.Lines[0])
	assert.Equal(t, BorderBottom, f.Header.Borders)
	assert.Equal(t, BorderTop, f.Footer.Borders)
}

func TestSpinnerGlyphs(t *testing.T) {
	var got []string
	for phase := 0; phase < 5; phase++ {
		got = append(got, spinnerGlyph(phase))
	}
	assert.Equal(t, []string{"|", "/", "-", "\\", "|"}, got)
}

func TestFrameRenderSmallTerminal(t *testing.T) {
	f := ComposeFrame(LoopState{}, 30)

	assert.NotPanics(t, func() {
		out := f.Render(30, 5)
		assert.Len(t, strings.Split(out, "\n"), 5)
	})
	assert.Equal(t, "", f.Render(30, 0))
}
