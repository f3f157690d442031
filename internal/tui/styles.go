package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/dashboard/internal/ui"
)

// ------- styling derived from the active ui theme -------
type styles struct {
	title, muted, accent, success, pending, err lipgloss.Style
	selected, done, help                       lipgloss.Style
	tab, activeTab, card                       lipgloss.Style
	boxChecked, boxUnchecked                   string
}

func newStyles() styles {
	t := ui.Current()
	return styles{
		title:    t.Title,
		muted:    t.Muted,
		accent:   t.Accent,
		success:  t.Success,
		pending:  t.Pending,
		err:      t.Error,
		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		done:     t.Done,
		help:     t.Muted,
		tab:      lipgloss.NewStyle().Padding(0, 2).Faint(true),
		activeTab: lipgloss.NewStyle().Padding(0, 2).Bold(true).
			Underline(true),
		card: lipgloss.NewStyle().
			Border(t.Border).
			BorderForeground(t.BorderColor).
			Padding(0, 1).
			Width(24),
		boxChecked:   t.BoxChecked,
		boxUnchecked: t.BoxUnchecked,
	}
}
