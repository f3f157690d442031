// Package dashboard holds the application state behind every view: the
// loaded fixture sections, the checklist, chart handles and execution plan
// navigation. One App is built at startup and closed on exit.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/idilsaglam/dashboard/internal/chart"
	"github.com/idilsaglam/dashboard/internal/checklist"
	"github.com/idilsaglam/dashboard/internal/fixture"
	"github.com/idilsaglam/dashboard/internal/model"
)

// Sections is the read side of the fixture directory.
type Sections interface {
	Metrics(ctx context.Context) ([]model.Metric, error)
	Traffic(ctx context.Context) (model.Series, error)
	Categories(ctx context.Context) (model.Series, error)
	Campaigns(ctx context.Context) (model.Campaign, error)
	ExecutionPlan(ctx context.Context) ([]model.Phase, error)
	Monitoring(ctx context.Context) (model.Monitoring, error)
}

// FilterAll shows every phase.
const FilterAll = "all"

// App is the dashboard state. Methods are safe for concurrent use.
type App struct {
	sections Sections
	tracker  *checklist.Tracker
	charts   *chart.Registry
	logger   *log.Logger

	mu         sync.Mutex
	metrics    []model.Metric
	traffic    model.Series
	categories model.Series
	campaign   model.Campaign
	list       checklist.State
	plan       []model.Phase
	monitoring model.Monitoring
	failed     map[string]error

	filter   string
	selected int
	expanded map[int]bool
	details  map[taskRef]bool
}

type taskRef struct{ phase, task int }

func New(sections Sections, tracker *checklist.Tracker, logger *log.Logger) *App {
	return &App{
		sections: sections,
		tracker:  tracker,
		charts:   chart.NewRegistry(),
		logger:   logger,
		failed:   make(map[string]error),
		filter:   FilterAll,
		selected: -1,
		expanded: make(map[int]bool),
		details:  make(map[taskRef]bool),
	}
}

// Close releases every chart handle.
func (a *App) Close() { a.charts.Close() }

func (a *App) Charts() *chart.Registry { return a.charts }

// Load fetches every section independently. A failing section is logged
// and left empty; the others still load. The returned error joins the
// individual failures.
func (a *App) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	var (
		mu   sync.Mutex
		errs []error
	)
	for _, name := range fixture.Names() {
		name := name
		g.Go(func() error {
			if err := a.Reload(gctx, name); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

// Reload refreshes the section backed by one fixture file.
func (a *App) Reload(ctx context.Context, name string) error {
	var err error
	switch name {
	case fixture.Metrics:
		var v []model.Metric
		if v, err = a.sections.Metrics(ctx); err == nil {
			a.mu.Lock()
			a.metrics = v
			a.mu.Unlock()
		}
	case fixture.Traffic:
		var v model.Series
		if v, err = a.sections.Traffic(ctx); err == nil {
			a.mu.Lock()
			a.traffic = v
			a.mu.Unlock()
			a.charts.Replace(chart.Traffic, chart.NewShare("Origem do Tráfego", v))
		}
	case fixture.Categories:
		var v model.Series
		if v, err = a.sections.Categories(ctx); err == nil {
			a.mu.Lock()
			a.categories = v
			a.mu.Unlock()
			a.charts.Replace(chart.Category, chart.NewBars("Faturamento por Categoria", v, nil))
		}
	case fixture.Campaigns:
		var v model.Campaign
		if v, err = a.sections.Campaigns(ctx); err == nil {
			a.mu.Lock()
			a.campaign = v
			a.mu.Unlock()
			a.charts.Replace(chart.Campaign, chart.NewTrend("Desempenho das Campanhas", v))
		}
	case fixture.Checklist:
		var st checklist.State
		st, err = a.tracker.Load(ctx)
		a.mu.Lock()
		a.list = st
		a.mu.Unlock()
	case fixture.ExecutionPlan:
		var v []model.Phase
		if v, err = a.sections.ExecutionPlan(ctx); err == nil {
			a.mu.Lock()
			a.plan = v
			a.expanded = make(map[int]bool)
			a.details = make(map[taskRef]bool)
			a.selected = -1
			a.mu.Unlock()
		}
	case fixture.Monitoring:
		var v model.Monitoring
		if v, err = a.sections.Monitoring(ctx); err == nil {
			a.mu.Lock()
			a.monitoring = v
			a.mu.Unlock()
		}
	default:
		return fmt.Errorf("%w: %s", fixture.ErrUnknownFixture, name)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		// the checklist tracker logs its own failures
		if name != fixture.Checklist {
			a.logger.Error("loading section", "fixture", name, "err", err)
		}
		a.failed[name] = err
		return fmt.Errorf("%s: %w", name, err)
	}
	delete(a.failed, name)
	return nil
}

// Failed returns the sections whose last load failed.
func (a *App) Failed() map[string]error {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[string]error, len(a.failed))
	for k, v := range a.failed {
		out[k] = v
	}
	return out
}

func (a *App) Metrics() []model.Metric {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]model.Metric(nil), a.metrics...)
}

func (a *App) Monitoring() model.Monitoring {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.monitoring
}

// Checklist returns the displayed list.
func (a *App) Checklist() checklist.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return checklist.State{Items: model.CloneItems(a.list.Items), Origin: a.list.Origin}
}

// ToggleItem updates one checklist flag and refreshes the displayed list.
// On failure the displayed list is left as it was.
func (a *App) ToggleItem(ctx context.Context, index int, completed bool) (checklist.State, error) {
	st, err := a.tracker.Toggle(ctx, index, completed)
	if err != nil {
		return a.Checklist(), err
	}
	a.mu.Lock()
	a.list = st
	a.mu.Unlock()
	return st, nil
}

// ResetChecklist clears progress after confirm agrees.
func (a *App) ResetChecklist(ctx context.Context, confirm func() bool) (checklist.State, bool, error) {
	st, done, err := a.tracker.Reset(ctx, confirm)
	if !done {
		return a.Checklist(), false, nil
	}
	a.mu.Lock()
	if err == nil {
		a.list = st
	} else {
		a.list = checklist.State{Items: []model.ChecklistItem{}}
	}
	a.mu.Unlock()
	return st, true, err
}

// Snapshot is a point-in-time copy of every section, for export.
type Snapshot struct {
	Metrics    []model.Metric        `json:"metrics" yaml:"metrics"`
	Traffic    model.Series          `json:"traffic" yaml:"traffic"`
	Categories model.Series          `json:"categories" yaml:"categories"`
	Campaigns  model.Campaign        `json:"campaigns" yaml:"campaigns"`
	Checklist  []model.ChecklistItem `json:"checklist" yaml:"checklist"`
	Progress   checklist.Progress    `json:"progress" yaml:"progress"`
	Plan       []model.Phase         `json:"execution_plan" yaml:"execution_plan"`
	Monitoring model.Monitoring      `json:"monitoring" yaml:"monitoring"`
}

func (a *App) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Snapshot{
		Metrics:    append([]model.Metric(nil), a.metrics...),
		Traffic:    a.traffic,
		Categories: a.categories,
		Campaigns:  a.campaign,
		Checklist:  model.CloneItems(a.list.Items),
		Progress:   a.list.Progress(),
		Plan:       append([]model.Phase(nil), a.plan...),
		Monitoring: a.monitoring,
	}
}
