package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("classic")

	SetTheme("NEON")
	assert.Equal(t, "neon", Current().Name)
	assert.Equal(t, "◼", Current().BoxChecked)

	SetTheme("mono")
	assert.Equal(t, "[x]", Current().BoxChecked)

	SetTheme("unknown")
	assert.Equal(t, "classic", Current().Name)
	assert.Len(t, Themes(), 3)
}

func TestProgressBar(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	assert.Equal(t, "#####.....  50%", ProgressBar(50, 10))
	assert.Equal(t, ".....   0%", ProgressBar(-3, 2))
	assert.Equal(t, "########## 100%", ProgressBar(250, 10))
	assert.Equal(t, "######....  67%", ProgressBar(67, 10))
}

func TestMessagesAndPanel(t *testing.T) {
	var out, errb bytes.Buffer
	prevOut, prevErr := Out, Err
	Out, Err = &out, &errb
	defer func() { Out, Err = prevOut, prevErr }()
	SetTheme("mono")
	defer SetTheme("classic")

	OK("toggled")
	Fail("index out of range")
	Hint("run `dashboard checklist ls`")
	Panel([]string{"a", "bb"})

	assert.Equal(t, "x toggled\n", strings.SplitAfter(out.String(), "\n")[0])
	assert.Contains(t, errb.String(), "✖ index out of range")
	assert.Contains(t, errb.String(), "dashboard checklist ls")
	assert.Contains(t, out.String(), "│ bb │")
}

func TestThemeStylePickers(t *testing.T) {
	th := Current()
	assert.Equal(t, th.Success, th.Good(true))
	assert.Equal(t, th.Error, th.Good(false))
	assert.Equal(t, th.Pending, th.KPI("alerta"))
	assert.Equal(t, th.Muted, th.KPI("??"))
}
