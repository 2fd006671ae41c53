package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type theme struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Muted lipgloss.Style
	Good  lipgloss.Style
	Warn  lipgloss.Style
	Card  lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title: lipgloss.NewStyle().Bold(true),
		Label: lipgloss.NewStyle().Faint(true),
		Muted: lipgloss.NewStyle().Faint(true),
		Good:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Card: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}

type row struct {
	label string
	value string
}

// card renders a titled block of aligned label/value rows.
func (t theme) card(title string, rows []row) string {
	width := 0
	for _, r := range rows {
		if n := lipgloss.Width(r.label); n > width {
			width = n
		}
	}

	lines := []string{t.Title.Render(title)}
	for _, r := range rows {
		pad := strings.Repeat(" ", width-lipgloss.Width(r.label))
		lines = append(lines, t.Label.Render(r.label+":")+pad+" "+r.value)
	}
	return t.Card.Render(strings.Join(lines, "\n"))
}

func (t theme) printCard(w io.Writer, title string, rows []row) {
	fmt.Fprintln(w, t.card(title, rows))
}

func num(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
