package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AvengeMedia/eosinstall/internal/errdefs"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestClassifyRunError(t *testing.T) {
	fresh := NewModel("test")
	started, _ := fresh.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.NoError(t, classifyRunError(fresh, nil))

	panicked := fmt.Errorf("%w: %w", tea.ErrProgramKilled, tea.ErrProgramPanic)
	err := classifyRunError(started.(Model), panicked)
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypeRender))
	assert.ErrorIs(t, err, tea.ErrProgramPanic)

	setup := errors.New("could not open tty")
	err = classifyRunError(fresh, setup)
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypeTerminalSetup))
	assert.ErrorIs(t, err, setup)

	read := errors.New("read /dev/stdin: input/output error")
	err = classifyRunError(started.(Model), read)
	assert.True(t, errdefs.IsType(err, errdefs.ErrTypeInputRead))
}
