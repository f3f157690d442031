package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/dashboard/internal/chart"
	"github.com/idilsaglam/dashboard/internal/format"
	"github.com/idilsaglam/dashboard/internal/model"
	"github.com/idilsaglam/dashboard/internal/ui"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")

	switch m.tab {
	case tabChecklist:
		b.WriteString(m.list.View())
		b.WriteString("\n\n")
		b.WriteString(m.progressView())
	default:
		b.WriteString(m.view.View())
	}
	b.WriteString("\n")

	if m.confirming {
		b.WriteString(m.st.accent.Render("Tem certeza que deseja resetar todo o progresso do checklist? (y/n)"))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.st.muted.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keyHelp{k: m.keys, tab: m.tab}))
	return b.String()
}

func (m Model) tabsView() string {
	parts := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if tab(i) == m.tab {
			parts = append(parts, m.st.activeTab.Render(name))
		} else {
			parts = append(parts, m.st.tab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// progressView is the checklist footer: bar plus either the progress text
// or the celebration message while one is active.
func (m Model) progressView() string {
	p := m.app.Checklist().Progress()
	bar := ui.ProgressBar(p.Percent, 30)
	text := m.celebration.Text(p)
	if m.celebration.Active() {
		return m.st.success.Render(bar) + "\n" + m.st.success.Render(text)
	}
	return bar + "\n" + m.st.muted.Render(text)
}

func (m Model) contentWidth() int {
	if m.width > 4 {
		return m.width - 4
	}
	return 76
}

func (m Model) overviewView() string {
	var b strings.Builder
	if failed := m.app.Failed(); len(failed) > 0 {
		names := make([]string, 0, len(failed))
		for n := range failed {
			names = append(names, n)
		}
		sort.Strings(names)
		b.WriteString(m.st.err.Render("falha ao carregar: " + strings.Join(names, ", ")))
		b.WriteString("\n\n")
	}
	metrics := m.app.Metrics()
	if len(metrics) == 0 {
		b.WriteString(m.st.muted.Render("sem métricas"))
	}
	cards := make([]string, 0, len(metrics))
	for _, mt := range metrics {
		change := m.st.err.Render(format.Change(mt.Change))
		if format.Positive(mt.Change) {
			change = m.st.success.Render(format.Change(mt.Change))
		}
		cards = append(cards, m.st.card.Render(
			m.st.muted.Render(mt.Label)+"\n"+
				m.st.title.Render(format.MetricValue(mt.Value, mt.Type))+"\n"+
				change))
	}
	perRow := max(1, m.contentWidth()/26)
	for i := 0; i < len(cards); i += perRow {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards[i:min(i+perRow, len(cards))]...))
		b.WriteString("\n")
	}

	for _, name := range []string{chart.Traffic, chart.Category, chart.Campaign} {
		h, ok := m.app.Charts().Get(name)
		if !ok {
			continue
		}
		b.WriteString("\n")
		b.WriteString(h.Render(m.contentWidth()))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) planView() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", m.st.muted.Render("Filtro:"), m.st.accent.Render(m.app.Filter()))

	plan := m.app.Plan()
	visible := m.app.VisiblePhases()
	if len(visible) == 0 {
		b.WriteString(m.st.muted.Render("nenhuma fase"))
		return b.String()
	}
	selected := m.app.SelectedPhase()
	for row, pi := range visible {
		p := plan[pi]
		arrow := "▸"
		if m.app.PhaseExpanded(pi) {
			arrow = "▾"
		}
		head := fmt.Sprintf("%s %s  %s  %s", arrow, p.Fase, m.st.muted.Render(p.Prazo), m.statusBadge(p.Status))
		if pi == selected {
			head = m.st.accent.Render("● ") + head
		} else {
			head = "  " + head
		}
		if row == m.planCursor {
			head = m.st.selected.Render(">") + head
		} else {
			head = " " + head
		}
		b.WriteString(head)
		b.WriteString("\n")
		if !m.app.PhaseExpanded(pi) {
			continue
		}
		for ti, t := range p.Tarefas {
			marker := "   "
			if row == m.planCursor && ti == m.taskCursor {
				marker = " » "
			}
			fmt.Fprintf(&b, "  %s%s %s  %s\n", marker, m.st.muted.Render(t.ID), t.Titulo, m.st.muted.Render(t.Responsavel+" · "+t.Prazo))
			if m.app.TaskDetailsOpen(pi, ti) {
				b.WriteString(m.taskDetails(t))
			}
		}
	}
	return b.String()
}

func (m Model) statusBadge(status string) string {
	label := format.PhaseStatus(status)
	if status == model.PhaseInProgress {
		return m.st.accent.Render(label)
	}
	return m.st.pending.Render(label)
}

// taskDetails renders the subtasks of one task as markdown.
func (m Model) taskDetails(t model.Task) string {
	var md strings.Builder
	fmt.Fprintf(&md, "**Métrica:** %s\n\n", t.Metrica)
	for _, s := range t.Subtarefas {
		fmt.Fprintf(&md, "- %s\n", s)
	}
	if m.md == nil {
		return md.String()
	}
	out, err := m.md.Render(md.String())
	if err != nil {
		return md.String()
	}
	return out
}

func (m Model) monitoringView() string {
	mon := m.app.Monitoring()
	t := ui.Current()
	var b strings.Builder

	b.WriteString(m.st.title.Render("KPIs Mensais"))
	b.WriteString("\n")
	for _, c := range mon.KPIs.Metricas {
		b.WriteString("\n" + m.st.accent.Render(c.Categoria) + "\n")
		for _, ind := range c.Indicadores {
			fmt.Fprintf(&b, "  %-28s meta %-10s atual %-10s %s\n",
				ind.Nome, ind.Meta, ind.Atual, t.KPI(ind.Status).Render(ind.Status))
		}
	}

	b.WriteString("\n" + m.st.title.Render("Ações Prioritárias") + "\n")
	for _, a := range mon.Actions.Acoes {
		fmt.Fprintf(&b, "\n%s %s  %s\n", format.ActionBadge(a.Status), a.Metrica, m.st.muted.Render("gap "+a.Gap))
		for _, s := range a.Acoes {
			fmt.Fprintf(&b, "   • %s\n", s)
		}
	}

	b.WriteString("\n" + m.st.title.Render("Timeline de Metas") + "\n")
	for _, p := range mon.Timeline.Periodos {
		fmt.Fprintf(&b, "\n%s  %s  %s\n", m.st.accent.Render(p.Mes), p.Objetivo, m.st.success.Render(p.FaturamentoProjetado))
		for _, g := range p.Metas {
			fmt.Fprintf(&b, "   ◦ %s\n", g)
		}
	}
	return b.String()
}

var _ help.KeyMap = keyHelp{}
