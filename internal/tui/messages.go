package tui

// settleMsg marks the end of the pause that follows each processed tick.
type settleMsg struct{}
