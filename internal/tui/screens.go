package tui

// Screen is one of the static installer views. The zero value is the
// welcome screen.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenLanguageSelection
	ScreenCompletion

	screenCount
)

func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenLanguageSelection:
		return "language-selection"
	case ScreenCompletion:
		return "completion"
	default:
		return "unknown"
	}
}

// ScreenForStep maps a loop step onto a screen by step mod 3.
func ScreenForStep(step int) Screen {
	return Screen((step%int(screenCount) + int(screenCount)) % int(screenCount))
}

// Borders selects which sides of a panel get a border.
type Borders uint8

const (
	BorderTop Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BordersAll = BorderTop | BorderRight | BorderBottom | BorderLeft
)

func (b Borders) Has(side Borders) bool {
	return b&side != 0
}

// ScreenContent is the declarative description of a panel: its lines, title
// and borders. It is built fresh for every frame.
type ScreenContent struct {
	Title   string
	Borders Borders
	Lines   []Line
}

type lineDef struct {
	text     string
	fg       Color
	emphasis Emphasis
}

func centerLines(defs []lineDef, width int) []Line {
	lines := make([]Line, 0, len(defs))
	for _, d := range defs {
		lines = append(lines, CenterLine(d.text, width, d.fg, d.emphasis))
	}
	return lines
}

// RenderScreen builds the content panel for screen at the given width. It has
// no side effects; equal arguments give equal results.
func RenderScreen(screen Screen, width int) ScreenContent {
	switch screen {
	case ScreenLanguageSelection:
		return languageSelectionScreen(width)
	case ScreenCompletion:
		return completionScreen(width)
	default:
		return welcomeScreen(width)
	}
}
