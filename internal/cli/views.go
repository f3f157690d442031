package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/dashboard/internal/chart"
	"github.com/idilsaglam/dashboard/internal/fixture"
	"github.com/idilsaglam/dashboard/internal/format"
	"github.com/idilsaglam/dashboard/internal/ui"
)

const chartWidth = 72

func newMetricsCmd(g *globalFlags) *cobra.Command {
	var charts bool
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print the headline metrics and charts",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(g, ui.Err)
			if err != nil {
				return err
			}
			defer s.Close()
			s.loadApp(cmd.Context())

			t := ui.Current()
			var lines []string
			for _, m := range s.app.Metrics() {
				lines = append(lines, fmt.Sprintf("%-24s %16s  %s",
					m.Label,
					t.Title.Render(format.MetricValue(m.Value, m.Type)),
					t.Good(format.Positive(m.Change)).Render(format.Change(m.Change))))
			}
			if len(lines) == 0 {
				lines = append(lines, t.Muted.Render("sem métricas"))
			}
			ui.Panel(lines)

			if charts {
				for _, name := range []string{chart.Traffic, chart.Category, chart.Campaign} {
					if h, ok := s.app.Charts().Get(name); ok {
						fmt.Fprintln(ui.Out, ui.Box(h.Render(chartWidth)))
					}
				}
			}
			return s.sectionErr(fixture.Metrics)
		},
	}
	cmd.Flags().BoolVar(&charts, "charts", true, "also draw the traffic, category and campaign charts")
	return cmd
}

func newPlanCmd(g *globalFlags) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the execution plan",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(g, ui.Err)
			if err != nil {
				return err
			}
			defer s.Close()
			s.loadApp(cmd.Context())
			if err := s.sectionErr(fixture.ExecutionPlan); err != nil {
				return err
			}

			if filter != "" {
				if !slices.Contains(s.app.Filters(), filter) {
					return usagef("unknown filter %q (want %s)", filter, strings.Join(s.app.Filters(), ", "))
				}
				s.app.SetFilter(filter)
			}

			t := ui.Current()
			plan := s.app.Plan()
			var lines []string
			for _, i := range s.app.VisiblePhases() {
				p := plan[i]
				if len(lines) > 0 {
					lines = append(lines, "")
				}
				lines = append(lines, fmt.Sprintf("%s  %s  %s",
					t.Title.Render(p.Fase), t.Muted.Render(p.Prazo), t.Accent.Render(format.PhaseStatus(p.Status))))
				for _, task := range p.Tarefas {
					lines = append(lines, fmt.Sprintf("  %s %s  %s",
						t.Muted.Render(task.ID), task.Titulo,
						t.Muted.Render(task.Responsavel+" · "+task.Prazo+" · "+task.Metrica)))
					for _, sub := range task.Subtarefas {
						lines = append(lines, "      "+t.SymPending+" "+sub)
					}
				}
			}
			if len(lines) == 0 {
				lines = append(lines, t.Muted.Render("nenhuma fase"))
			}
			ui.Panel(lines)
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "only phases with this status (all, em-andamento, pendente)")
	return cmd
}

func newMonitorCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Print monthly KPIs, priority actions and the goal timeline",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(g, ui.Err)
			if err != nil {
				return err
			}
			defer s.Close()
			s.loadApp(cmd.Context())
			if err := s.sectionErr(fixture.Monitoring); err != nil {
				return err
			}

			t := ui.Current()
			mon := s.app.Monitoring()

			var kpis []string
			for _, c := range mon.KPIs.Metricas {
				kpis = append(kpis, t.Accent.Render(c.Categoria))
				for _, ind := range c.Indicadores {
					kpis = append(kpis, fmt.Sprintf("  %-28s meta %-10s atual %-10s %s",
						ind.Nome, ind.Meta, ind.Atual, t.KPI(ind.Status).Render(ind.Status)))
				}
			}
			fmt.Fprintln(ui.Out, t.Title.Render("KPIs Mensais"))
			ui.Panel(kpis)

			var actions []string
			for _, a := range mon.Actions.Acoes {
				actions = append(actions, fmt.Sprintf("%s %s  %s", format.ActionBadge(a.Status), a.Metrica, t.Muted.Render("gap "+a.Gap)))
				for _, step := range a.Acoes {
					actions = append(actions, "   "+t.SymPending+" "+step)
				}
			}
			fmt.Fprintln(ui.Out, t.Title.Render("Ações Prioritárias"))
			ui.Panel(actions)

			var timeline []string
			for _, p := range mon.Timeline.Periodos {
				timeline = append(timeline, fmt.Sprintf("%s  %s  %s", t.Accent.Render(p.Mes), p.Objetivo, t.Success.Render(p.FaturamentoProjetado)))
				for _, goal := range p.Metas {
					timeline = append(timeline, "   "+goal)
				}
			}
			fmt.Fprintln(ui.Out, t.Title.Render("Timeline de Metas"))
			ui.Panel(timeline)
			return nil
		},
	}
}
