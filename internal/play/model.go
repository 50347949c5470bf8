package play

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/tursodatabase/blocks/internal/tetris"
)

// DefaultFrame is the time between two redraws
const DefaultFrame = 16 * time.Millisecond

type frameMsg time.Time

// Model drives one engine from the bubbletea event loop
type Model struct {
	engine   *tetris.Engine
	keys     KeyMap
	frame    time.Duration
	last     time.Time
	width    int
	height   int
	quitting bool
	logger   logrus.FieldLogger
}

// NewModel wraps engine. A nil logger discards everything.
func NewModel(engine *tetris.Engine, logger logrus.FieldLogger) Model {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return Model{
		engine: engine,
		keys:   DefaultKeyMap(),
		frame:  DefaultFrame,
		logger: logger,
	}
}

// WithKeys replaces the key bindings
func (m Model) WithKeys(keys KeyMap) Model {
	m.keys = keys
	return m
}

// WithFrame changes the redraw period
func (m Model) WithFrame(frame time.Duration) Model {
	if frame > 0 {
		m.frame = frame
	}
	return m
}

// Engine returns the driven engine
func (m Model) Engine() *tetris.Engine {
	return m.engine
}

// Quitting reports whether the player asked to leave
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case frameMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			m.engine.Tick(now.Sub(m.last))
		}
		m.last = now
		return m, m.tick()

	case tea.KeyMsg:
		action := m.keys.Lookup(m.engine.Mode(), msg.String())
		switch action {
		case ActionNone:
			return m, nil
		case ActionQuit:
			m.quitting = true
			m.logger.WithField("mode", m.engine.Mode()).Debug("quit")
			return m, tea.Quit
		}
		Apply(m.engine, action)
		m.logger.WithFields(logrus.Fields{
			"key":    msg.String(),
			"action": action,
		}).Trace("key")
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return Render(m.engine.Snapshot(), m.width, m.height)
}
