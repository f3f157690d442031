package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/dashboard/internal/tui"
	"github.com/idilsaglam/dashboard/internal/ui"
)

const logFileName = "dashboard.log"

func newTUICmd(g *globalFlags) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive dashboard (default)",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, g, watch)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload sections when their fixture file changes")
	return cmd
}

// runTUI logs to a file in the state directory so log lines do not tear
// the alternate screen.
func runTUI(cmd *cobra.Command, g *globalFlags, watch bool) error {
	cfg, err := resolveConfig(g)
	if err != nil {
		return err
	}
	logOut := io.Discard
	if err := os.MkdirAll(cfg.StateDir, 0o755); err == nil {
		if f, err := os.OpenFile(filepath.Join(cfg.StateDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			defer f.Close()
			logOut = f
		}
	}

	s, err := openSession(g, logOut)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.app.Load(cmd.Context()); err != nil {
		s.logger.Warn("some sections failed to load", "err", err)
	}

	style := "dark"
	if ui.Current().Name == "mono" {
		style = "notty"
	}
	opt := tui.RunOptions{
		Options: tui.Options{
			CelebrationDelay: s.cfg.CelebrationDelay.Duration,
			MarkdownStyle:    style,
		},
		Logger: s.logger,
	}
	if watch || s.cfg.Watch {
		opt.WatchDir = s.cfg.DataDir
	}
	if err := tui.Run(cmd.Context(), s.app, opt); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
