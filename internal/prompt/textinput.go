package prompt

import (
	"errors"
	"fmt"
	"strings"

	ti "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrCancelled = errors.New("cancelled by user")

// MaxNameLength bounds the names stored in the high score table
const MaxNameLength = 24

type textinput struct {
	textInput ti.Model
	err       error
	done      bool
	prompt    string
}

func newTextinput(prompt, placeholder, value string) textinput {
	ti := ti.New()
	ti.SetValue(value)
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = MaxNameLength
	ti.Width = MaxNameLength

	return textinput{
		textInput: ti,
		prompt:    prompt,
	}
}

func (m textinput) Init() tea.Cmd {
	return ti.Blink
}

func (m textinput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCancelled
			fallthrough
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		}

	case error:
		m.err = msg
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textinput) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s\n",
		m.prompt,
		m.textInput.View(),
		"(press <enter> to save, <esc> to skip)",
	)
}

// Value is the trimmed input, or the placeholder when nothing was typed
func (m textinput) Value() string {
	value := strings.TrimSpace(m.textInput.Value())
	if value == "" {
		return m.textInput.Placeholder
	}
	return value
}

func TextInput(prompt, placeholder, value string) (string, error) {
	p := tea.NewProgram(newTextinput(prompt, placeholder, value))
	m, err := p.Run()
	if err != nil {
		return "", err
	}

	model, ok := m.(textinput)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model %T", m)
	}

	return model.Value(), model.err
}

// PlayerName asks for the name to record a high score under.
// The suggestion is offered as the placeholder.
func PlayerName(score int, suggestion string) (string, error) {
	title := fmt.Sprintf("New high score: %d! Enter your name:", score)
	return TextInput(title, suggestion, "")
}
