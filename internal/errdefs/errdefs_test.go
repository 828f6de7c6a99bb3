package errdefs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorMessage(t *testing.T) {
	err := NewCustomError(ErrTypeRender, "frame too small")
	assert.Equal(t, "frame too small", err.Error())

	wrapped := Wrap(ErrTypeInputRead, "reading key event", errors.New("EOF"))
	assert.Equal(t, "reading key event: EOF", wrapped.Error())
}

func TestIsType(t *testing.T) {
	cause := errors.New("ioctl failed")
	err := fmt.Errorf("starting program: %w", Wrap(ErrTypeTerminalSetup, "entering raw mode", cause))

	assert.True(t, IsType(err, ErrTypeTerminalSetup))
	assert.False(t, IsType(err, ErrTypeRender))
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsType(cause, ErrTypeGeneric))
	assert.True(t, IsType(ErrNotATerminal, ErrTypeTerminalSetup))
}

func TestErrorTypeString(t *testing.T) {
	assert.Equal(t, "terminal setup", ErrTypeTerminalSetup.String())
	assert.Equal(t, "render", ErrTypeRender.String())
	assert.Equal(t, "input read", ErrTypeInputRead.String())
	assert.Equal(t, "generic", ErrTypeGeneric.String())
}
