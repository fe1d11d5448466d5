// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#623CE4")).Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ADD8"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5484D"))
	defaultStyle  = lipgloss.NewStyle().Faint(true)
)

// TeaPrompter runs one Bubble Tea program per question.
type TeaPrompter struct {
	opts []tea.ProgramOption
}

// NewTeaPrompter returns a Prompter bound to the terminal. Program options
// such as tea.WithInput and tea.WithOutput are passed through to every
// program.
func NewTeaPrompter(opts ...tea.ProgramOption) *TeaPrompter {
	return &TeaPrompter{opts: opts}
}

// Input implements Prompter.
func (tp *TeaPrompter) Input(ctx context.Context, q Question) (string, error) {
	final, err := tp.run(ctx, newInputModel(q))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.input.Value(), nil
}

// Confirm implements Prompter.
func (tp *TeaPrompter) Confirm(ctx context.Context, message string, def bool) (bool, error) {
	final, err := tp.run(ctx, confirmModel{message: message, def: def})
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.value, nil
}

func (tp *TeaPrompter) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, tp.opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}
	return final, nil
}

// inputModel is a single-line text question.
type inputModel struct {
	q       Question
	input   textinput.Model
	done    bool
	aborted bool
}

func newInputModel(q Question) inputModel {
	ti := textinput.New()
	ti.Placeholder = q.Default
	ti.CharLimit = 2048
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorBlink)
	ti.Focus()
	return inputModel{q: q, input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	head := questionStyle.Render("? " + m.q.Message)
	if m.done || m.aborted {
		return head + " " + answerStyle.Render(m.input.Value()) + "\n"
	}

	s := head + " " + m.input.View()
	if m.q.Hint != "" {
		s += "\n" + hintStyle.Render("  ✗ "+m.q.Hint)
	}
	return s + "\n"
}

// confirmModel is a yes/no question. Enter accepts the default.
type confirmModel struct {
	message string
	def     bool
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.value, m.done = true, true
		return m, tea.Quit
	case "n", "N":
		m.value, m.done = false, true
		return m, tea.Quit
	case "enter":
		m.value, m.done = m.def, true
		return m, tea.Quit
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	head := questionStyle.Render("? " + m.message)
	if m.done {
		answer := "no"
		if m.value {
			answer = "yes"
		}
		return head + " " + answerStyle.Render(answer) + "\n"
	}

	choices := "(y/N)"
	if m.def {
		choices = "(Y/n)"
	}
	return head + " " + defaultStyle.Render(choices) + "\n"
}
