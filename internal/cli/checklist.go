package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/dashboard/internal/checklist"
	"github.com/idilsaglam/dashboard/internal/model"
	"github.com/idilsaglam/dashboard/internal/ui"
)

func newChecklistCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checklist",
		Aliases: []string{"cl"},
		Short:   "Show and update the launch checklist",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listChecklist(cmd, g)
		},
	}

	ls := &cobra.Command{
		Use:   "ls",
		Short: "List checklist items with progress",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listChecklist(cmd, g)
		},
	}
	done := &cobra.Command{
		Use:   "done <index>",
		Short: "Mark the item at a 1-based index as completed",
		Args:  exactIndex,
		RunE: func(cmd *cobra.Command, args []string) error {
			return toggleChecklist(cmd, g, args[0], true)
		},
	}
	undo := &cobra.Command{
		Use:   "undo <index>",
		Short: "Mark the item at a 1-based index as not completed",
		Args:  exactIndex,
		RunE: func(cmd *cobra.Command, args []string) error {
			return toggleChecklist(cmd, g, args[0], false)
		},
	}

	var yes bool
	reset := &cobra.Command{
		Use:   "reset",
		Short: "Clear all progress and start again from the fixture",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetChecklist(cmd, g, yes)
		},
	}
	reset.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	cmd.AddCommand(ls, done, undo, reset)
	return cmd
}

func listChecklist(cmd *cobra.Command, g *globalFlags) error {
	s, err := openSession(g, ui.Err)
	if err != nil {
		return err
	}
	defer s.Close()

	st, loadErr := s.tracker.Load(cmd.Context())
	ui.Panel(checklistLines(st))
	if loadErr != nil {
		return fmt.Errorf("load checklist: %w", loadErr)
	}
	return nil
}

func toggleChecklist(cmd *cobra.Command, g *globalFlags, arg string, completed bool) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return usagef("%s: not a number: %s", cmd.Name(), arg)
	}
	s, err := openSession(g, ui.Err)
	if err != nil {
		return err
	}
	defer s.Close()

	st, err := s.tracker.Toggle(cmd.Context(), n-1, completed)
	if errors.Is(err, checklist.ErrIndexOutOfRange) {
		cur, _ := s.tracker.Load(cmd.Context())
		return hintError{
			err:  usagef("index out of range: have %d, got %d", len(cur.Items), n),
			hint: "Hint: run `dashboard checklist ls` to see valid indexes",
		}
	}
	if err != nil {
		return err
	}

	p := st.Progress()
	c := checklist.NewCelebration(s.cfg.CelebrationDelay.Duration)
	c.Trigger(p)
	if completed {
		ui.OK("concluída: " + st.Items[n-1].Task)
	} else {
		ui.OK("reaberta: " + st.Items[n-1].Task)
	}
	fmt.Fprintln(ui.Out, c.Text(p))
	return nil
}

func resetChecklist(cmd *cobra.Command, g *globalFlags, yes bool) error {
	s, err := openSession(g, ui.Err)
	if err != nil {
		return err
	}
	defer s.Close()

	confirm := func() bool {
		return yes || ask(cmd.InOrStdin(), ui.Err, "Tem certeza que deseja resetar todo o progresso do checklist? [y/N] ")
	}
	st, done, err := s.tracker.Reset(cmd.Context(), confirm)
	if !done {
		ui.Hint("reset cancelado")
		return nil
	}
	if err != nil {
		return err
	}
	ui.OK("checklist resetado")
	fmt.Fprintln(ui.Out, st.Progress().Text())
	return nil
}

// ask prints prompt and reads one line; only an explicit yes agrees.
func ask(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "sim":
		return true
	}
	return false
}

func checklistLines(st checklist.State) []string {
	t := ui.Current()
	p := st.Progress()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Checklist"),
		t.Success.Render(t.SymDone), p.Done,
		t.Pending.Render(t.SymPending), p.Total-p.Done,
		t.Accent.Render("Total"), p.Total,
	)

	lines := []string{header, ui.ProgressBar(p.Percent, 28), ""}
	lines = append(lines, itemLines(st.Items)...)
	lines = append(lines, "", t.Muted.Render(p.Text()))
	if st.Origin != checklist.OriginNone {
		lines = append(lines, t.Muted.Render("fonte: "+st.Origin.String()))
	}
	return lines
}

func itemLines(items []model.ChecklistItem) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("nenhuma tarefa")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		box := t.Muted.Render(t.BoxUnchecked)
		task := it.Task
		if len([]rune(task)) > 80 {
			task = string([]rune(task)[:77]) + "..."
		}
		if it.Completed {
			box = t.Success.Render(t.BoxChecked)
			task = t.Done.Render(task)
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(fmt.Sprintf("%2d.", i+1)), box, task))
	}
	return out
}
