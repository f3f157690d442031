package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Out and Err are where command output goes; tests swap them.
var (
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

func OK(msg string)   { fmt.Fprintln(Out, current.Success.Render(current.SymDone+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(Err, current.Error.Render("✖ "+msg)) }
func Hint(msg string) { fmt.Fprintln(Err, current.Muted.Render(msg)) }

// ProgressBar renders a bar of width cells followed by the percentage.
func ProgressBar(percent, width int) string {
	if width < 5 {
		width = 5
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	bar := current.Success.Render(strings.Repeat(current.BarFilled, filled)) +
		current.Muted.Render(strings.Repeat(current.BarEmpty, width-filled))
	return fmt.Sprintf("%s %3d%%", bar, percent)
}

// Box frames content with the theme's border.
func Box(content string) string {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1).
		Render(content)
}

// Panel prints lines inside a framed box.
func Panel(lines []string) {
	fmt.Fprintln(Out, Box(strings.Join(lines, "\n")))
}
