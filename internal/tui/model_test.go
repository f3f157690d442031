package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/dashboard/internal/checklist"
	"github.com/idilsaglam/dashboard/internal/dashboard"
	"github.com/idilsaglam/dashboard/internal/fixture"
	"github.com/idilsaglam/dashboard/internal/fixture/fixturetest"
	"github.com/idilsaglam/dashboard/internal/logging"
	"github.com/idilsaglam/dashboard/internal/model"
	"github.com/idilsaglam/dashboard/internal/store/jsonstore"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newModel(t *testing.T) (Model, *dashboard.App, string) {
	t.Helper()
	return newModelWith(t, nil)
}

func newModelWith(t *testing.T, overrides map[string]string) (Model, *dashboard.App, string) {
	t.Helper()
	dir := fixturetest.WriteDir(t, overrides)
	src, err := fixture.New(dir)
	require.NoError(t, err)
	st, err := jsonstore.New(filepath.Join(t.TempDir(), "state"))
	require.NoError(t, err)
	tr := checklist.NewTracker(st, src, "mantovan-checklist", logging.Discard())
	app := dashboard.New(src, tr, logging.Discard())
	t.Cleanup(app.Close)
	require.NoError(t, app.Load(context.Background()))

	m := New(context.Background(), app, Options{CelebrationDelay: time.Millisecond, MarkdownStyle: "notty"})
	return m, app, dir
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	space = tea.KeyMsg{Type: tea.KeySpace}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	right = tea.KeyMsg{Type: tea.KeyRight}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	next  = tea.KeyMsg{Type: tea.KeyTab}
	prev  = tea.KeyMsg{Type: tea.KeyShiftTab}
)

// send feeds msgs in order and returns the model plus the last command.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func flags(app *dashboard.App) []bool {
	var out []bool
	for _, it := range app.Checklist().Items {
		out = append(out, it.Completed)
	}
	return out
}

func TestTabsCycle(t *testing.T) {
	m, _, _ := newModel(t)
	assert.Equal(t, tabOverview, m.tab)

	m, _ = send(t, m, next, next)
	assert.Equal(t, tabPlan, m.tab)
	m, _ = send(t, m, prev, prev, prev)
	assert.Equal(t, tabMonitoring, m.tab)
	assert.Contains(t, m.View(), "Ações Prioritárias")
}

func TestToggleFromChecklistTab(t *testing.T) {
	m, app, _ := newModel(t)
	m, cmd := send(t, m, next, space)

	assert.Nil(t, cmd)
	assert.Equal(t, []bool{true, true, false}, flags(app))
	assert.Equal(t, checklist.OriginSnapshot, app.Checklist().Origin)
	assert.Contains(t, m.View(), "2 de 3 concluídas (67%)")

	// the snapshot survives a reload
	require.NoError(t, app.Reload(context.Background(), fixture.Checklist))
	assert.Equal(t, []bool{true, true, false}, flags(app))
}

func TestCompletingTheChecklistCelebrates(t *testing.T) {
	m, app, _ := newModel(t)
	m, _ = send(t, m, next, space, down, down)
	m, cmd := send(t, m, space)

	require.NotNil(t, cmd)
	assert.Equal(t, []bool{true, true, true}, flags(app))
	assert.True(t, m.celebration.Active())
	assert.Contains(t, m.View(), checklist.CelebrationMessage)

	// toggling while celebrating does not start another one
	m, again := send(t, m, space, space)
	assert.Nil(t, again)

	m, _ = send(t, m, cmd())
	assert.False(t, m.celebration.Active())
	assert.NotContains(t, m.View(), checklist.CelebrationMessage)
	assert.Contains(t, m.View(), "3 de 3 concluídas (100%)")
}

func TestStaleCelebrationEndIsIgnored(t *testing.T) {
	m, _, _ := newModel(t)
	m, _ = send(t, m, next, space, down, down)
	m, cmd := send(t, m, space)
	require.NotNil(t, cmd)

	m, _ = send(t, m, celebrationEndMsg{gen: 99})
	assert.True(t, m.celebration.Active())
}

func TestResetRequiresConfirmation(t *testing.T) {
	m, app, _ := newModel(t)
	m, _ = send(t, m, next, space)
	require.Equal(t, []bool{true, true, false}, flags(app))

	m, _ = send(t, m, runes("r"))
	assert.True(t, m.confirming)
	assert.Contains(t, m.View(), "(y/n)")

	m, _ = send(t, m, runes("n"))
	assert.False(t, m.confirming)
	assert.Equal(t, "reset cancelado", m.status)
	assert.Equal(t, []bool{true, true, false}, flags(app))

	m, _ = send(t, m, runes("r"), runes("y"))
	assert.Equal(t, "checklist resetado", m.status)
	assert.Equal(t, []bool{false, false, false}, flags(app))
	assert.Contains(t, m.View(), "0 de 3 concluídas (0%)")
}

func TestPlanNavigation(t *testing.T) {
	m, app, _ := newModel(t)
	m, _ = send(t, m, next, next)
	require.Equal(t, tabPlan, m.tab)

	m, _ = send(t, m, enter)
	assert.True(t, app.PhaseExpanded(0))
	assert.Contains(t, m.View(), "Auditar pixel")

	m, _ = send(t, m, down, runes("n"))
	assert.Equal(t, 1, app.SelectedPhase())
	assert.False(t, app.PhaseExpanded(0))
	assert.True(t, app.PhaseExpanded(1))

	m, _ = send(t, m, right, runes("d"))
	assert.True(t, app.TaskDetailsOpen(1, 1))
	assert.Contains(t, m.View(), "Gravar vídeos")

	m, _ = send(t, m, runes("f"))
	assert.Equal(t, model.PhaseInProgress, app.Filter())
	assert.Equal(t, []int{0}, app.VisiblePhases())
	assert.Equal(t, 0, m.planCursor)
	assert.NotContains(t, m.View(), "Fase 2")
}

func TestFixtureChangeReloadsSection(t *testing.T) {
	m, app, dir := newModel(t)
	fixturetest.Rewrite(t, dir, fixture.Checklist, `[{"task": "Nova tarefa", "completed": true}]`)

	m, _ = send(t, m, fixtureChangedMsg{name: fixture.Checklist})
	assert.Equal(t, "recarregado: "+fixture.Checklist, m.status)
	require.Len(t, app.Checklist().Items, 1)
	assert.Equal(t, "Nova tarefa", app.Checklist().Items[0].Task)
}

func TestFailedSectionShownOnOverview(t *testing.T) {
	m, app, dir := newModel(t)
	fixturetest.Rewrite(t, dir, fixture.Metrics, `{"not": "a list"}`)

	m, _ = send(t, m, fixtureChangedMsg{name: fixture.Metrics})
	assert.Contains(t, app.Failed(), fixture.Metrics)
	assert.Contains(t, m.View(), "falha ao carregar: "+fixture.Metrics)
}

const completeChecklist = `[
  {"task": "Configurar pixel", "completed": true},
  {"task": "Revisar checkout", "completed": true}
]`

func TestCompleteChecklistCelebratesOnStart(t *testing.T) {
	m, _, _ := newModelWith(t, map[string]string{fixture.Checklist: completeChecklist})
	assert.False(t, m.celebration.Active())

	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.True(t, m.celebration.Active())
	m, _ = send(t, m, next)
	assert.Contains(t, m.View(), checklist.CelebrationMessage)

	m, _ = send(t, m, cmd())
	assert.False(t, m.celebration.Active())
	assert.Contains(t, m.View(), "2 de 2 concluídas (100%)")
}

func TestIncompleteChecklistDoesNotCelebrateOnStart(t *testing.T) {
	m, _, _ := newModel(t)
	assert.Nil(t, m.Init())
	assert.False(t, m.celebration.Active())
}

func TestReloadingCompleteChecklistCelebrates(t *testing.T) {
	m, _, dir := newModel(t)
	require.Nil(t, m.Init())

	fixturetest.Rewrite(t, dir, fixture.Checklist, completeChecklist)
	m, cmd := send(t, m, fixtureChangedMsg{name: fixture.Checklist})
	require.NotNil(t, cmd)
	assert.True(t, m.celebration.Active())

	// a second reload while celebrating does not restart it
	_, again := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Nil(t, again)

	// other sections never celebrate
	m, _ = send(t, m, cmd())
	_, cmd = send(t, m, fixtureChangedMsg{name: fixture.Metrics})
	assert.Nil(t, cmd)
}
