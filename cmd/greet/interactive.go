package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wasmlab/greetmem/arena"
	"github.com/wasmlab/greetmem/host"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	rt       *host.Runtime
	greeter  *host.Greeter
	inputs   []textinput.Model
	message  string
	memSize  uint32
	focusIdx int
}

type loadedMsg struct {
	err     error
	rt      *host.Runtime
	greeter *host.Greeter
}

type greetResultMsg struct {
	err     error
	message string
	memSize uint32
}

func newInteractiveModel() *interactiveModel {
	inputs := make([]textinput.Model, 2)
	for i, label := range []string{"salutation", "name"} {
		ti := textinput.New()
		ti.Prompt = label + ": "
		ti.CharLimit = arena.InputCapacity
		ti.Width = 24
		inputs[i] = ti
	}
	inputs[0].SetValue("Ahoy there")
	inputs[1].SetValue("Testy McTestface")
	inputs[0].Focus()
	return &interactiveModel{inputs: inputs}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.load
}

func (m *interactiveModel) load() tea.Msg {
	ctx := context.Background()

	rt, err := host.New(ctx)
	if err != nil {
		return loadedMsg{err: err}
	}
	g, err := rt.Instantiate(ctx)
	if err != nil {
		rt.Close(ctx)
		return loadedMsg{err: err}
	}
	return loadedMsg{rt: rt, greeter: g}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			ctx := context.Background()
			if m.greeter != nil {
				m.greeter.Close(ctx)
			}
			if m.rt != nil {
				m.rt.Close(ctx)
			}
			return m, tea.Quit

		case "tab":
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
			m.inputs[m.focusIdx].Focus()
			return m, nil

		case "enter":
			if m.greeter != nil {
				return m, m.greet
			}
			return m, nil
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.rt = msg.rt
		m.greeter = msg.greeter
		m.memSize = msg.greeter.MemorySize()
		return m, nil

	case greetResultMsg:
		m.err = msg.err
		m.message = msg.message
		m.memSize = msg.memSize
		return m, nil
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *interactiveModel) greet() tea.Msg {
	ctx := context.Background()

	message, err := m.greeter.Greet(ctx, m.inputs[0].Value(), m.inputs[1].Value())
	return greetResultMsg{
		err:     err,
		message: message,
		memSize: m.greeter.MemorySize(),
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("greetmem"))
	b.WriteString("\n\n")

	if m.greeter == nil && m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc quit"))
		return b.String()
	}
	if m.greeter == nil {
		b.WriteString("Loading guest...\n")
		return b.String()
	}

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else if m.message != "" {
		b.WriteString(labelStyle.Render("message: "))
		b.WriteString(resultStyle.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("memory: "))
	b.WriteString(fmt.Sprintf("%d bytes", m.memSize))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab switch field • enter greet • esc quit"))

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
