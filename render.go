package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true)
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	metStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const barWidth = 24

func newBar() progress.Model {
	return progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth))
}

func ratio(current, desired int) float64 {
	if desired <= 0 {
		return 1
	}
	f := float64(current) / float64(desired)
	if f > 1 {
		return 1
	}
	return f
}

func countLabel(current, desired int) string {
	s := fmt.Sprintf("%d/%d", current, desired)
	if current >= desired {
		return metStyle.Render(s)
	}
	return countStyle.Render(s)
}

func nameWidth(statuses []Status) int {
	w := 0
	for _, s := range statuses {
		if n := lipgloss.Width(s.Name); n > w {
			w = n
		}
	}
	return w
}

func renderList(w io.Writer, statuses []Status) {
	if len(statuses) == 0 {
		_, _ = fmt.Fprintln(w, dimStyle.Render("No exercises yet. Add one with: swole add <name> <goal>"))
		return
	}
	bar := newBar()
	width := nameWidth(statuses)
	for _, s := range statuses {
		_, _ = fmt.Fprintf(w, "%s  %s  %s\n",
			nameStyle.Width(width).Render(s.Name),
			countLabel(s.Current, s.Desired),
			bar.ViewAs(ratio(s.Current, s.Desired)))
	}
}

// progressLine describes where today's count stands against the goal.
func progressLine(p Progress) string {
	var tail string
	switch p.Compare() {
	case -1:
		tail = fmt.Sprintf("%d to go", p.Remaining())
	case 0:
		tail = "goal reached"
	default:
		tail = fmt.Sprintf("%d over goal", -p.Remaining())
	}
	return fmt.Sprintf("%s %s, %s", nameStyle.Render(p.Name), countLabel(p.Current, p.Desired), tail)
}

func renderProgress(w io.Writer, p Progress) {
	_, _ = fmt.Fprintln(w, progressLine(p))
}

func renderHistory(w io.Writer, name string, ex Exercise) {
	_, _ = fmt.Fprintln(w, nameStyle.Render(name)+dimStyle.Render(fmt.Sprintf(" (goal %d)", ex.Desired)))
	bar := newBar()
	day := ex.Created.In(time.Local)
	for i, n := range ex.History {
		date := day.AddDate(0, 0, i).Format("2006-01-02")
		_, _ = fmt.Fprintf(w, "  %s  %s  %s\n", dimStyle.Render(date), countLabel(n, ex.Desired), bar.ViewAs(ratio(n, ex.Desired)))
	}
}
