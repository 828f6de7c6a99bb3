package tui

import "golang.org/x/exp/constraints"

const spinnerPhases = 4

// Key is an input event reduced to what the loop reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyEnter
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeyQuit:
		return "quit"
	default:
		return "other"
	}
}

// LoopState is everything the loop remembers between ticks. Step stays in
// [0,3) and SpinnerPhase in [0,4).
type LoopState struct {
	Step         int
	SpinnerPhase int
}

// Screen is the screen selected by the current step.
func (s LoopState) Screen() Screen {
	return ScreenForStep(s.Step)
}

// Tick applies one processed input event. Enter advances the step; every
// event except quit then advances the spinner. On quit the state is left
// untouched and Tick reports true.
func (s *LoopState) Tick(k Key) (quit bool) {
	switch k {
	case KeyQuit:
		return true
	case KeyEnter:
		s.Step = cycle(s.Step, int(screenCount))
	}

	s.SpinnerPhase = cycle(s.SpinnerPhase, spinnerPhases)
	return false
}

func cycle[T constraints.Integer](v, n T) T {
	return (v + 1) % n
}
