package dashboard

import (
	"fmt"

	"github.com/idilsaglam/dashboard/internal/model"
)

// Plan returns the full execution plan.
func (a *App) Plan() []model.Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]model.Phase(nil), a.plan...)
}

// Filter is the active status filter.
func (a *App) Filter() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.filter
}

// SetFilter shows only phases whose status equals f, or every phase for
// FilterAll. An empty filter means FilterAll.
func (a *App) SetFilter(f string) {
	if f == "" {
		f = FilterAll
	}
	a.mu.Lock()
	a.filter = f
	a.mu.Unlock()
}

// Filters lists FilterAll followed by each distinct status in plan order.
func (a *App) Filters() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := []string{FilterAll}
	seen := map[string]bool{}
	for _, p := range a.plan {
		if !seen[p.Status] {
			seen[p.Status] = true
			out = append(out, p.Status)
		}
	}
	return out
}

// NextFilter cycles to the filter after the current one.
func (a *App) NextFilter() string {
	fs := a.Filters()
	cur := a.Filter()
	next := fs[0]
	for i, f := range fs {
		if f == cur {
			next = fs[(i+1)%len(fs)]
			break
		}
	}
	a.SetFilter(next)
	return next
}

// VisiblePhases returns the indexes of phases passing the filter.
func (a *App) VisiblePhases() []int {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []int
	for i, p := range a.plan {
		if a.filter == FilterAll || p.Status == a.filter {
			out = append(out, i)
		}
	}
	return out
}

// TogglePhase flips whether a phase's tasks are shown and returns the new
// state.
func (a *App) TogglePhase(i int) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.checkPhase(i); err != nil {
		return false, err
	}
	a.expanded[i] = !a.expanded[i]
	return a.expanded[i], nil
}

func (a *App) PhaseExpanded(i int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.expanded[i]
}

// NavigateToPhase selects phase i, expands it and collapses every other
// phase.
func (a *App) NavigateToPhase(i int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.checkPhase(i); err != nil {
		return err
	}
	a.selected = i
	a.expanded = map[int]bool{i: true}
	return nil
}

// SelectedPhase is the phase last navigated to, or -1.
func (a *App) SelectedPhase() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selected
}

// ToggleTaskDetails flips the subtask list of one task.
func (a *App) ToggleTaskDetails(phase, task int) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.checkPhase(phase); err != nil {
		return false, err
	}
	if task < 0 || task >= len(a.plan[phase].Tarefas) {
		return false, fmt.Errorf("task %d: out of range (phase %d has %d)", task, phase, len(a.plan[phase].Tarefas))
	}
	ref := taskRef{phase, task}
	a.details[ref] = !a.details[ref]
	return a.details[ref], nil
}

func (a *App) TaskDetailsOpen(phase, task int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.details[taskRef{phase, task}]
}

func (a *App) checkPhase(i int) error {
	if i < 0 || i >= len(a.plan) {
		return fmt.Errorf("phase %d: out of range (have %d)", i, len(a.plan))
	}
	return nil
}
