// Package cli is the dashboard command line: an interactive TUI by default
// plus scripting subcommands over the same state.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/dashboard/internal/ui"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks errors caused by how the command was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, a ...any) error { return usageError{fmt.Errorf(format, a...)} }

// hintError carries a follow-up line printed under the failure.
type hintError struct {
	err  error
	hint string
}

func (e hintError) Error() string { return e.err.Error() }
func (e hintError) Unwrap() error { return e.err }

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	config   string
	data     string
	state    string
	store    string
	theme    string
	logLevel string
}

// Run executes the command line and returns an exit code (0 ok, 1 error,
// 2 usage).
func Run(ctx context.Context, args []string) int {
	return run(ctx, args, os.Stdin)
}

func run(ctx context.Context, args []string, stdin io.Reader) int {
	root := newRootCmd(stdin)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	ui.Fail(err.Error())
	var h hintError
	if errors.As(err, &h) {
		ui.Hint(h.hint)
	}
	var u usageError
	if errors.As(err, &u) {
		return ExitUsage
	}
	return ExitError
}

func newRootCmd(stdin io.Reader) *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "dashboard",
		Short: "Marketing dashboard with a durable launch checklist",
		Long: `dashboard reads the marketing fixtures (metrics, traffic, categories,
campaigns, checklist, execution plan, monitoring) from a data directory
and shows them in an interactive terminal UI.

Checklist progress is kept in a durable store and survives restarts.
Run without arguments to start the interactive UI.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		// stray words are a usage error
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, g, false)
		},
	}
	root.SetIn(stdin)
	root.SetOut(ui.Out)
	root.SetErr(ui.Err)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	pf := root.PersistentFlags()
	pf.StringVar(&g.config, "config", "", "config file (default dashboard.toml, then ~/.dashboard/dashboard.toml)")
	pf.StringVar(&g.data, "data", "", "fixture directory")
	pf.StringVar(&g.state, "state", "", "durable store directory")
	pf.StringVar(&g.store, "store", "", "durable store backend (file or sqlite)")
	pf.StringVar(&g.theme, "theme", "", "color theme ("+strings.Join(ui.Themes(), ", ")+")")
	pf.StringVar(&g.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newTUICmd(g),
		newChecklistCmd(g),
		newMetricsCmd(g),
		newPlanCmd(g),
		newMonitorCmd(g),
		newExportCmd(g),
		newValidateCmd(g),
	)
	return root
}

// noArgs is cobra.NoArgs reported as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}

// exactIndex accepts one 1-based index argument.
func exactIndex(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return usagef("usage: %s", cmd.UseLine())
	}
	return nil
}
