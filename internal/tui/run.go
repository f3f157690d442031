package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/dashboard/internal/dashboard"
	"github.com/idilsaglam/dashboard/internal/fixture"
)

// RunOptions configure an interactive session.
type RunOptions struct {
	Options
	// WatchDir, when set, reloads sections whose fixture file changes.
	WatchDir string
	Logger   *log.Logger
}

// Run starts the interactive dashboard and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, app *dashboard.App, opt RunOptions) error {
	m := New(ctx, app, opt.Options)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if opt.WatchDir != "" {
		w, err := fixture.NewWatcher(opt.WatchDir, 200*time.Millisecond, opt.Logger, func(name string) {
			p.Send(fixtureChangedMsg{name: name})
		})
		if err != nil {
			return fmt.Errorf("watching %s: %w", opt.WatchDir, err)
		}
		if err := w.Start(ctx); err != nil {
			w.Stop()
			return fmt.Errorf("watching %s: %w", opt.WatchDir, err)
		}
		defer w.Stop()
	}

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
