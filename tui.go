package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type model struct {
	regimen  *Regimen
	names    []string
	idx      int
	input    textinput.Model
	progress progress.Model
	feedback string
	entering bool
	quit     bool
}

func initialModel(r *Regimen) model {
	m := model{regimen: r, progress: newBar()}
	for _, s := range r.List() {
		m.names = append(m.names, s.Name)
	}
	m.input = textinput.New()
	m.input.Placeholder = "reps done"
	m.input.CharLimit = 6
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) View() string {
	st := lipgloss.NewStyle().Margin(1, 2)
	if len(m.names) == 0 {
		return st.Render("No exercises yet. Add one with: swole add <name> <goal>")
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Today") + "\n\n")
	statuses := m.regimen.List()
	width := nameWidth(statuses)
	for i, s := range statuses {
		cursor := "  "
		if i == m.idx {
			cursor = countStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%s  %s  %s\n", cursor,
			nameStyle.Width(width).Render(s.Name),
			countLabel(s.Current, s.Desired),
			m.progress.ViewAs(ratio(s.Current, s.Desired)))
	}
	b.WriteString("\n")
	hint := "(↑/↓ select, enter=log reps, q=quit)"
	if m.entering {
		b.WriteString(m.input.View() + "\n\n")
		hint = "(enter=save, esc=cancel)"
	}
	if m.feedback != "" {
		b.WriteString(m.feedback + "\n")
	}
	b.WriteString(dimStyle.Render(hint))
	return st.Render(b.String())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		m.quit = true
		return m, tea.Quit
	}
	if m.entering {
		return m.updateInput(key)
	}
	switch key.String() {
	case "q", "esc":
		m.quit = true
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.names)-1 {
			m.idx++
		}
	case "enter":
		if len(m.names) == 0 {
			return m, tea.Quit
		}
		m.entering = true
		m.feedback = ""
		m.input.SetValue("")
		return m, m.input.Focus()
	}
	return m, nil
}

func (m model) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.entering = false
		m.input.Blur()
		return m, nil
	case "enter":
		p, err := m.regimen.Done(m.names[m.idx], m.input.Value())
		if err != nil {
			m.feedback = errStyle.Render("✘ " + err.Error())
			return m, nil
		}
		m.feedback = "✔ " + progressLine(p)
		m.entering = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

// RunTUI opens the tracking screen and saves the regimen when it closes.
func RunTUI(t *Tracker) error {
	return t.Session(func(r *Regimen, _ time.Time) error {
		p := tea.NewProgram(initialModel(r))
		_, err := p.Run()
		return err
	})
}
