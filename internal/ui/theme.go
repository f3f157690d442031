package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done                                          lipgloss.Style
	BoxUnchecked, BoxChecked                      string
	SymDone, SymPending                           string
	BarFilled, BarEmpty                           string
	Border                                        lipgloss.Border
	BorderColor                                   lipgloss.TerminalColor
}

var current = classic()

// Themes lists the names SetTheme understands.
func Themes() []string { return []string{"classic", "neon", "mono"} }

// SetTheme switches the palette; unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = Theme{
			Name:    "neon",
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f4d125")),
			Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true),
			Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Done:    lipgloss.NewStyle().Faint(true).Strikethrough(true),

			BoxUnchecked: "◻", BoxChecked: "◼",
			SymDone: "✔", SymPending: "•",
			BarFilled: "█", BarEmpty: "░",
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("#f4d125"),
		}
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain, Pending: plain,
			Done:         plain,
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymDone: "x", SymPending: "-",
			BarFilled: "#", BarEmpty: ".",
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Name:    "classic",
		Title:   lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Done:    lipgloss.NewStyle().Faint(true).Strikethrough(true),

		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•",
		BarFilled: "█", BarEmpty: "░",
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
	}
}

// Current returns the active theme.
func Current() Theme { return current }

// Good picks the success or error style for a signed change.
func (t Theme) Good(ok bool) lipgloss.Style {
	if ok {
		return t.Success
	}
	return t.Error
}

// KPI picks the style for a monitoring status.
func (t Theme) KPI(status string) lipgloss.Style {
	switch status {
	case "ok":
		return t.Success
	case "alerta":
		return t.Pending
	case "critico":
		return t.Error
	case "excelente":
		return t.Accent
	}
	return t.Muted
}
