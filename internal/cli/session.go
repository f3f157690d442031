package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/dashboard/internal/checklist"
	"github.com/idilsaglam/dashboard/internal/config"
	"github.com/idilsaglam/dashboard/internal/dashboard"
	"github.com/idilsaglam/dashboard/internal/fixture"
	"github.com/idilsaglam/dashboard/internal/logging"
	"github.com/idilsaglam/dashboard/internal/store"
	"github.com/idilsaglam/dashboard/internal/ui"
)

// session is everything a subcommand needs, wired from configuration.
type session struct {
	cfg     *config.Config
	logger  *log.Logger
	store   store.Store
	source  *fixture.Source
	tracker *checklist.Tracker
	app     *dashboard.App
}

// resolveConfig loads the config file and environment, then applies the
// flags the user actually set.
func resolveConfig(g *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(g.config)
	if err != nil {
		return nil, err
	}
	if g.data != "" {
		cfg.DataDir = g.data
	}
	if g.state != "" {
		cfg.StateDir = g.state
	}
	if g.store != "" {
		cfg.Store = g.store
	}
	if g.theme != "" {
		cfg.Theme = g.theme
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, usageError{err}
	}
	return cfg, nil
}

// openSession wires config, logging, the durable store and the fixture
// source. logOut receives log lines.
func openSession(g *globalFlags, logOut io.Writer) (*session, error) {
	cfg, err := resolveConfig(g)
	if err != nil {
		return nil, err
	}
	ui.SetTheme(cfg.Theme)
	logger := logging.New(logOut, cfg.LogLevel)
	if cfg.Source != "" {
		logger.Debug("config loaded", "file", cfg.Source)
	}

	st, err := store.Open(cfg.Store, cfg.StateDir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	src, err := fixture.New(cfg.DataDir)
	if err != nil {
		st.Close()
		return nil, err
	}
	tr := checklist.NewTracker(st, src, cfg.SnapshotKey, logger)
	return &session{
		cfg:     cfg,
		logger:  logger,
		store:   st,
		source:  src,
		tracker: tr,
		app:     dashboard.New(src, tr, logger),
	}, nil
}

func (s *session) Close() {
	s.app.Close()
	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing store", "err", err)
	}
}

// loadApp loads every section. Failures are already logged by the app, so
// callers only look at the sections they print.
func (s *session) loadApp(ctx context.Context) {
	_ = s.app.Load(ctx)
}

// sectionErr reports the load failure of one fixture, if any.
func (s *session) sectionErr(name string) error {
	if err, ok := s.app.Failed()[name]; ok {
		return err
	}
	return nil
}
