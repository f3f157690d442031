package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/idilsaglam/dashboard/internal/checklist"
	"github.com/idilsaglam/dashboard/internal/dashboard"
	"github.com/idilsaglam/dashboard/internal/fixture"
	"github.com/idilsaglam/dashboard/internal/model"
)

type tab int

const (
	tabOverview tab = iota
	tabChecklist
	tabPlan
	tabMonitoring
	tabCount
)

var tabNames = [tabCount]string{"Visão Geral", "Checklist", "Plano de Execução", "Monitoramento"}

// celebrationEndMsg fires when a celebration's delay has passed.
type celebrationEndMsg struct{ gen uint64 }

// fixtureChangedMsg is sent by the watcher when a fixture file changes.
type fixtureChangedMsg struct{ name string }

// listItem adapts a checklist item to bubbles/list.Item. index is the
// position in the checklist, which differs from the list row while
// filtering.
type listItem struct {
	index int
	item  model.ChecklistItem
}

func (i listItem) FilterValue() string { return i.item.Task }

// Custom delegate to control how items render (single line)
type itemDelegate struct{ st styles }

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := d.st.muted.Render(d.st.boxUnchecked)
	text := it.item.Task
	if it.item.Completed {
		box = d.st.success.Render(d.st.boxChecked)
		text = d.st.done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}

// Options tune the program.
type Options struct {
	CelebrationDelay time.Duration
	// MarkdownStyle is a glamour standard style name ("dark", "light",
	// "notty").
	MarkdownStyle string
}

// Model is the Bubble Tea model of the dashboard.
type Model struct {
	ctx         context.Context
	app         *dashboard.App
	celebration *checklist.Celebration
	st          styles
	keys        keyMap
	help        help.Model
	list        list.Model
	view        viewport.Model
	md          *glamour.TermRenderer

	tab        tab
	confirming bool
	planCursor int
	taskCursor int
	status     string
	width      int
	height     int
}

// New builds the model over an already loaded app.
func New(ctx context.Context, app *dashboard.App, opt Options) Model {
	st := newStyles()
	l := list.New(nil, itemDelegate{st: st}, 80, 14)
	l.Title = "Checklist"
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.Styles.Title = st.title
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("tarefa", "tarefas")

	style := opt.MarkdownStyle
	if style == "" {
		style = "dark"
	}
	// a nil renderer shows task details as raw markdown
	md, _ := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(76))

	m := Model{
		ctx:         ctx,
		app:         app,
		celebration: checklist.NewCelebration(opt.CelebrationDelay),
		st:          st,
		keys:        defaultKeys(),
		help:        help.New(),
		list:        l,
		view:        viewport.New(80, 18),
		md:          md,
		width:       80,
		height:      24,
	}
	m.syncChecklist()
	m.refresh()
	return m
}

// Init celebrates a checklist that is already complete when shown.
func (m Model) Init() tea.Cmd {
	return m.celebrate(m.app.Checklist().Progress())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-10)
		m.view.Width = msg.Width - 4
		m.view.Height = msg.Height - 6
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case celebrationEndMsg:
		if m.celebration.Expire(msg.gen) {
			// revert using whatever the durable tier now holds; a list
			// still at 100% does not celebrate again
			if err := m.app.Reload(m.ctx, fixture.Checklist); err != nil {
				m.status = err.Error()
			}
			m.syncChecklist()
		}
		return m, nil

	case fixtureChangedMsg:
		if err := m.app.Reload(m.ctx, msg.name); err != nil {
			m.status = err.Error()
		} else {
			m.status = "recarregado: " + msg.name
		}
		m.syncChecklist()
		m.refresh()
		if msg.name != fixture.Checklist {
			return m, nil
		}
		return m, m.celebrate(m.app.Checklist().Progress())

	case tea.KeyMsg:
		if m.tab == tabChecklist && m.list.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
		if m.confirming {
			return m.updateConfirm(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % tabCount
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			if err := m.app.Load(m.ctx); err != nil {
				m.status = "falha ao recarregar: " + firstLine(err.Error())
			} else {
				m.status = "dados recarregados"
			}
			m.syncChecklist()
			m.refresh()
			return m, m.celebrate(m.app.Checklist().Progress())
		}
		switch m.tab {
		case tabChecklist:
			return m.updateChecklist(msg)
		case tabPlan:
			return m.updatePlan(msg)
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m Model) updateChecklist(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		it, ok := m.list.SelectedItem().(listItem)
		if !ok {
			return m, nil
		}
		st, err := m.app.ToggleItem(m.ctx, it.index, !it.item.Completed)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = ""
		m.syncChecklist()
		return m, m.celebrate(st.Progress())

	case key.Matches(msg, m.keys.Reset):
		m.confirming = true
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateConfirm handles the reset prompt: only an explicit yes resets.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirming = false
	yes := key.Matches(msg, m.keys.Confirm)
	_, done, err := m.app.ResetChecklist(m.ctx, func() bool { return yes })
	switch {
	case err != nil:
		m.status = err.Error()
	case done:
		m.status = "checklist resetado"
	default:
		m.status = "reset cancelado"
	}
	m.syncChecklist()
	return m, nil
}

// celebrate starts the transient message at 100% and schedules its end.
func (m Model) celebrate(p checklist.Progress) tea.Cmd {
	gen, ok := m.celebration.Trigger(p)
	if !ok {
		return nil
	}
	return tea.Tick(m.celebration.Delay(), func(time.Time) tea.Msg {
		return celebrationEndMsg{gen: gen}
	})
}

func (m Model) updatePlan(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.app.VisiblePhases()
	phase := -1
	if m.planCursor < len(visible) {
		phase = visible[m.planCursor]
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.planCursor > 0 {
			m.planCursor--
			m.taskCursor = 0
		}
	case key.Matches(msg, m.keys.Down):
		if m.planCursor < len(visible)-1 {
			m.planCursor++
			m.taskCursor = 0
		}
	case key.Matches(msg, m.keys.Left):
		if m.taskCursor > 0 {
			m.taskCursor--
		}
	case key.Matches(msg, m.keys.Right):
		if phase >= 0 && m.taskCursor < len(m.app.Plan()[phase].Tarefas)-1 {
			m.taskCursor++
		}
	case key.Matches(msg, m.keys.Expand):
		if phase >= 0 {
			_, _ = m.app.TogglePhase(phase)
		}
	case key.Matches(msg, m.keys.Navigate):
		if phase >= 0 {
			_ = m.app.NavigateToPhase(phase)
		}
	case key.Matches(msg, m.keys.Filter):
		f := m.app.NextFilter()
		m.planCursor, m.taskCursor = 0, 0
		m.status = "filtro: " + f
	case key.Matches(msg, m.keys.Details):
		if phase >= 0 {
			if _, err := m.app.ToggleTaskDetails(phase, m.taskCursor); err != nil {
				m.status = err.Error()
			}
		}
	default:
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}
	m.refresh()
	return m, nil
}

// syncChecklist copies the app's checklist into the list widget.
func (m *Model) syncChecklist() {
	st := m.app.Checklist()
	items := make([]list.Item, len(st.Items))
	for i, it := range st.Items {
		items[i] = listItem{index: i, item: it}
	}
	m.list.SetItems(items)
	p := st.Progress()
	m.list.Title = fmt.Sprintf("Checklist   %s %d  %s %d  Total %d",
		m.st.success.Render("✔"), p.Done, m.st.pending.Render("•"), p.Total-p.Done, p.Total)
}

// refresh re-renders the scrollable content of the non-list tabs.
func (m *Model) refresh() {
	var content string
	switch m.tab {
	case tabOverview:
		content = m.overviewView()
	case tabPlan:
		content = m.planView()
	case tabMonitoring:
		content = m.monitoringView()
	default:
		return
	}
	m.view.SetContent(content)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
