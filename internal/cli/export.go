package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/dashboard/internal/fixture"
	"github.com/idilsaglam/dashboard/internal/render"
	"github.com/idilsaglam/dashboard/internal/ui"
)

func newExportCmd(g *globalFlags) *cobra.Command {
	var formatName, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole dashboard as JSON, YAML or a static HTML page",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch formatName {
			case render.FormatJSON, render.FormatYAML, "yml", render.FormatHTML:
			default:
				return usagef("unknown format %q (want json, yaml or html)", formatName)
			}
			s, err := openSession(g, ui.Err)
			if err != nil {
				return err
			}
			defer s.Close()
			s.loadApp(cmd.Context())

			var w io.Writer = ui.Out
			if out != "" {
				if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
					return fmt.Errorf("mkdir: %w", err)
				}
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			if err := render.Write(w, formatName, s.app.Snapshot()); err != nil {
				return err
			}
			if out != "" {
				ui.OK("exportado: " + out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&formatName, "format", render.FormatJSON, "output format (json, yaml, html)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	return cmd
}

func newValidateCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every fixture against its schema",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(g, ui.Err)
			if err != nil {
				return err
			}
			defer s.Close()

			problems := s.source.Validate(cmd.Context())
			for _, p := range problems {
				ui.Fail(p.Err.Error())
			}
			if len(problems) > 0 {
				return fmt.Errorf("%d fixture(s) invalid in %s", len(problems), s.source.Dir())
			}
			ui.OK(fmt.Sprintf("%d fixtures válidos em %s", len(fixture.Names()), s.source.Dir()))
			return nil
		},
	}
}
