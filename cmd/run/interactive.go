package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lua "github.com/yuin/gopher-lua"

	"github.com/wippyai/lua-runtime/errors"
	"github.com/wippyai/lua-runtime/transcoder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2563EB")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2563EB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	l        *lua.LState
	filename string
	result   string
	globals  []globalInfo
	input    textinput.Model
	selected int
	state    modelState
}

type modelState int

const (
	stateSelectGlobal modelState = iota
	stateInputArgs
	stateShowResult
)

func newInteractiveModel(filename string) *interactiveModel {
	return &interactiveModel{
		filename: filename,
		state:    stateSelectGlobal,
	}
}

type loadedMsg struct {
	err     error
	l       *lua.LState
	globals []globalInfo
}

type callResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadScript
}

func (m *interactiveModel) loadScript() tea.Msg {
	l := lua.NewState()

	baseline := globalNames(l)
	if err := l.DoFile(m.filename); err != nil {
		l.Close()
		return loadedMsg{err: errors.Script("load "+m.filename, err)}
	}

	return loadedMsg{l: l, globals: scriptGlobals(l, baseline)}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateInputArgs && msg.String() == "q" {
				break // "q" is a legitimate argument character
			}
			if m.l != nil {
				m.l.Close()
			}
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectGlobal && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectGlobal && m.selected < len(m.globals)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectGlobal:
				if len(m.globals) == 0 {
					break
				}
				g := m.globals[m.selected]
				if !g.callable {
					return m, m.inspectGlobal
				}
				m.prepareInput()
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.callFunction

			case stateShowResult:
				m.state = stateSelectGlobal
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectGlobal
			case stateShowResult:
				m.state = stateSelectGlobal
				m.result = ""
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.l = msg.l
		m.globals = msg.globals

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = "1, 2.5, true, hello"
	ti.Prompt = "args: "
	ti.Width = 48
	ti.Focus()
	m.input = ti
}

func (m *interactiveModel) inspectGlobal() tea.Msg {
	g := transcoder.NewStackGuard(m.l)
	defer g.Restore()

	name := m.globals[m.selected].name
	m.l.Push(m.l.GetGlobal(name))
	return callResultMsg{result: formatSlot(m.l, -1)}
}

func (m *interactiveModel) callFunction() tea.Msg {
	name := m.globals[m.selected].name
	results, err := callGlobal(m.l, name, splitArgs(m.input.Value()))
	if err != nil {
		return callResultMsg{err: err}
	}
	if len(results) == 0 {
		return callResultMsg{result: "no results"}
	}
	return callResultMsg{result: strings.Join(results, "\n")}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.l == nil {
		return "Loading script..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Lua Runner"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectGlobal:
		if len(m.globals) == 0 {
			b.WriteString("The script defined no globals.\n\n")
			b.WriteString(helpStyle.Render("q quit"))
			break
		}
		b.WriteString("Select a global to inspect or call:\n\n")
		for i, g := range m.globals {
			line := m.formatGlobal(g)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter inspect/call • q quit"))

	case stateInputArgs:
		g := m.globals[m.selected]
		b.WriteString(fmt.Sprintf("Calling %s\n\n", nameStyle.Render(g.name)))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter call • esc back"))

	case stateShowResult:
		g := m.globals[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", nameStyle.Render(g.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatGlobal(g globalInfo) string {
	suffix := ""
	if g.callable {
		suffix = "()"
	}
	return nameStyle.Render(g.name+suffix) + " " + typeStyle.Render(g.typeName)
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInteractiveModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
