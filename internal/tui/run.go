package tui

import (
	"errors"

	"github.com/AvengeMedia/eosinstall/internal/errdefs"
	tea "github.com/charmbracelet/bubbletea"
)

// Run owns the terminal for the life of the program. The bubbletea runtime
// enters raw mode and the alternate screen (when requested) on start and
// restores both on every return path, panics included.
func Run(m Model, opts ...tea.ProgramOption) (Model, error) {
	p := tea.NewProgram(m, opts...)
	final, err := p.Run()

	fm, ok := final.(Model)
	if !ok {
		fm = m
	}
	return fm, classifyRunError(fm, err)
}

func classifyRunError(final Model, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrProgramPanic):
		return errdefs.Wrap(errdefs.ErrTypeRender, "rendering frame", err)
	case !final.Started():
		return errdefs.Wrap(errdefs.ErrTypeTerminalSetup, "setting up terminal", err)
	default:
		return errdefs.Wrap(errdefs.ErrTypeInputRead, "reading input", err)
	}
}
