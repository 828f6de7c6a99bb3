package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	headerPercent  = 10
	contentPercent = 75
)

// Frame is one complete redraw: three panels stacked top to bottom.
type Frame struct {
	Header  ScreenContent
	Content ScreenContent
	Footer  ScreenContent
}

// ComposeFrame builds the frame for state. Every panel is laid out against
// the full terminal width.
func ComposeFrame(state LoopState, width int) Frame {
	return Frame{
		Header:  renderHeader(width),
		Content: RenderScreen(state.Screen(), width),
		Footer:  renderFooter(state.SpinnerPhase, width),
	}
}

// regionHeights splits height 10/75/15; the footer takes the rounding slack.
func regionHeights(height int) (header, content, footer int) {
	if height <= 0 {
		return 0, 0, 0
	}
	header = height * headerPercent / 100
	content = height * contentPercent / 100
	footer = height - header - content
	return header, content, footer
}

// Render draws f into exactly height rows of width columns.
func (f Frame) Render(width, height int) string {
	theme := EndeavourTheme()
	hh, ch, fh := regionHeights(height)

	var rows []string
	rows = append(rows, renderPanel(f.Header, width, hh, theme.Border)...)
	rows = append(rows, renderPanel(f.Content, width, ch, theme.Plain)...)
	rows = append(rows, renderPanel(f.Footer, width, fh, theme.Border)...)

	return strings.Join(rows, "\n")
}

// renderPanel lays c out in a width x height box. Lines beyond the inner
// width are clipped and lines beyond the inner height are dropped.
func renderPanel(c ScreenContent, width, height int, borderColor Color) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	border := lipgloss.NormalBorder()
	bs := lipgloss.NewStyle().Foreground(borderColor)

	left := c.Borders.Has(BorderLeft)
	right := c.Borders.Has(BorderRight) && width > boolInt(left)
	top := c.Borders.Has(BorderTop)
	bottom := c.Borders.Has(BorderBottom) && height > boolInt(top)

	innerW := width - boolInt(left) - boolInt(right)
	innerH := max(0, height-boolInt(top)-boolInt(bottom))

	rows := make([]string, 0, height)
	if top {
		rows = append(rows, bs.Render(horizontalEdge(width, left, right, border.TopLeft, border.Top, border.TopRight, c.Title)))
	}

	for i := 0; i < innerH; i++ {
		var b strings.Builder
		if left {
			b.WriteString(bs.Render(border.Left))
		}
		if i < len(c.Lines) {
			b.WriteString(fitLine(c.Lines[i], innerW))
		} else {
			b.WriteString(strings.Repeat(" ", innerW))
		}
		if right {
			b.WriteString(bs.Render(border.Right))
		}
		rows = append(rows, b.String())
	}

	if bottom {
		rows = append(rows, bs.Render(horizontalEdge(width, left, right, border.BottomLeft, border.Bottom, border.BottomRight, "")))
	}

	return rows
}

func horizontalEdge(width int, left, right bool, leftCorner, fill, rightCorner, title string) string {
	var b strings.Builder
	n := width

	if left {
		b.WriteString(leftCorner)
		n--
	}
	if right {
		n--
	}
	if title != "" && n > 0 {
		t := truncate.String(title, uint(n))
		b.WriteString(t)
		n -= lipgloss.Width(t)
	}
	b.WriteString(strings.Repeat(fill, max(0, n)))
	if right {
		b.WriteString(rightCorner)
	}

	return b.String()
}

func fitLine(l Line, width int) string {
	if width <= 0 {
		return ""
	}
	clipped := truncate.String(l.Text, uint(width))
	pad := max(0, width-lipgloss.Width(clipped))
	return l.Style().Render(clipped) + strings.Repeat(" ", pad)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
