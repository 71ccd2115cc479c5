// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

// summary describes a finished run.
type summary struct {
	RunID       string
	Topology    string
	Nodes       int
	Connections int
	WorstPathMs int
	Outputs     []string

	// Printed holds connection records destined for stdout.
	Printed []string
}

// Render formats the summary as a bordered box.
func (s *summary) Render() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("latgen"))
	b.WriteString("\n")
	row := func(k, v string) {
		fmt.Fprintf(&b, "%s %s\n", keyStyle.Render(fmt.Sprintf("%-12s", k)), v)
	}
	row("run", s.RunID)
	row("topology", s.Topology)
	row("nodes", fmt.Sprint(s.Nodes))
	row("connections", fmt.Sprint(s.Connections))
	row("worst path", fmt.Sprintf("%d ms", s.WorstPathMs))
	for _, out := range s.Outputs {
		row("wrote", out)
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}
