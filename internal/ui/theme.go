package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles and symbols the painter pulls from.
type Theme struct {
	Name string

	Title    lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Danger   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Focused  lipgloss.Style
	Label    lipgloss.Style
	Help     lipgloss.Style
	InputBox lipgloss.Style
	Panel    lipgloss.Style

	SymPlus, SymMinus string
}

// ThemeNames lists the themes ThemeByName accepts.
var ThemeNames = []string{"classic", "neon", "mono"}

// ThemeByName returns the named theme. Unknown names give classic.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		border := lipgloss.Color("13")
		return Theme{
			Name:     "neon",
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Danger:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Focused:  lipgloss.NewStyle().Bold(true).Reverse(true),
			Label:    lipgloss.NewStyle(),
			Help:     lipgloss.NewStyle().Faint(true),
			InputBox: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
			Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(1, 2),
			SymPlus:  "◼ +",
			SymMinus: "◻ -",
		}
	case "mono":
		return Theme{
			Name:     "mono",
			Title:    lipgloss.NewStyle().Bold(true),
			Muted:    lipgloss.NewStyle(),
			Accent:   lipgloss.NewStyle(),
			Danger:   lipgloss.NewStyle(),
			Success:  lipgloss.NewStyle(),
			Error:    lipgloss.NewStyle(),
			Focused:  lipgloss.NewStyle().Reverse(true),
			Label:    lipgloss.NewStyle(),
			Help:     lipgloss.NewStyle(),
			InputBox: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
			Panel:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2),
			SymPlus:  "[+]",
			SymMinus: "[-]",
		}
	default:
		border := lipgloss.Color("8")
		return Theme{
			Name:     "classic",
			Title:    lipgloss.NewStyle().Bold(true),
			Muted:    lipgloss.NewStyle().Faint(true),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Danger:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Focused:  lipgloss.NewStyle().Bold(true).Reverse(true),
			Label:    lipgloss.NewStyle(),
			Help:     lipgloss.NewStyle().Faint(true),
			InputBox: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
			Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(1, 2),
			SymPlus:  "+",
			SymMinus: "−",
		}
	}
}
