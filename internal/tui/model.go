package tui

import (
	"time"

	"github.com/AvengeMedia/eosinstall/internal/log"
	tea "github.com/charmbracelet/bubbletea"
)

const DefaultTickDelay = 200 * time.Millisecond

// Model drives the installer screens. Every input event (each key, and each
// resize after the first size report) is one tick: it is dispatched, the
// spinner advances, and the next event waits until the settle delay has
// passed. Nothing advances without input.
type Model struct {
	version string
	keys    keyMap
	delay   time.Duration

	state  LoopState
	width  int
	height int

	started  bool
	settling bool
	pending  []Key
	quitting bool
}

type Option func(*Model)

// WithTickDelay sets the pause after each processed event.
func WithTickDelay(d time.Duration) Option {
	return func(m *Model) {
		m.delay = d
	}
}

func NewModel(version string, opts ...Option) Model {
	m := Model{
		version: version,
		keys:    defaultKeyMap(),
		delay:   DefaultTickDelay,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) State() LoopState { return m.state }

// Started reports whether the terminal delivered anything to the program.
func (m Model) Started() bool { return m.started }

func (m Model) Quitting() bool { return m.quitting }

func (m Model) Init() tea.Cmd {
	log.Debug("installer starting", "version", m.version, "screen", m.state.Screen())
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// The runtime reports the size once at startup. Later reports are
		// resizes and count as ticks like any other event.
		if !m.started {
			m.started = true
			return m, nil
		}
		return m.enqueue(KeyOther)

	case tea.KeyMsg:
		m.started = true
		var keys []Key
		for _, k := range splitRunes(msg) {
			keys = append(keys, m.keys.classify(k))
		}
		return m.enqueue(keys...)

	case settleMsg:
		m.settling = false
		if m.quitting || len(m.pending) == 0 {
			return m, nil
		}
		return m.dequeue()
	}

	return m, nil
}

// enqueue queues events in arrival order and processes the oldest one unless
// the previous tick is still settling.
func (m Model) enqueue(keys ...Key) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.pending = append(m.pending, keys...)
	if m.settling || len(m.pending) == 0 {
		return m, nil
	}
	return m.dequeue()
}

func (m Model) dequeue() (tea.Model, tea.Cmd) {
	k := m.pending[0]
	m.pending = m.pending[1:]

	if m.state.Tick(k) {
		m.quitting = true
		m.pending = nil
		log.Info("quit requested", "step", m.state.Step, "spinner", m.state.SpinnerPhase)
		return m, tea.Quit
	}

	log.Debug("tick",
		"key", k,
		"step", m.state.Step,
		"spinner", m.state.SpinnerPhase,
		"screen", m.state.Screen(),
	)

	m.settling = true
	return m, m.settle()
}

func (m Model) settle() tea.Cmd {
	if m.delay <= 0 {
		return func() tea.Msg { return settleMsg{} }
	}
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return settleMsg{}
	})
}

func (m Model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}
	return ComposeFrame(m.state, m.width).Render(m.width, m.height)
}
