package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/idilsaglam/dashboard/internal/format"
	"github.com/idilsaglam/dashboard/internal/model"
)

var (
	// Series colors, in dataset order.
	palette = []lipgloss.Color{"#f4d125", "#3b82f6", "#10b981", "#8b5cf6", "#f59e0b", "#ef4444"}

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	titleStyle = lipgloss.NewStyle().Bold(true)
	emptyStyle = lipgloss.NewStyle().Faint(true)
)

const sparkRunes = "▁▂▃▄▅▆▇█"

func color(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(palette[i%len(palette)])
}

func labelWidth(labels []string) int {
	w := 0
	for _, l := range labels {
		if n := lipgloss.Width(l); n > w {
			w = n
		}
	}
	return w
}

func pad(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

// barCells scales v against max into at most width cells.
func barCells(v, max float64, width int) int {
	if max <= 0 || v <= 0 || width <= 0 {
		return 0
	}
	n := int(math.Round(v / max * float64(width)))
	if n > width {
		n = width
	}
	return n
}

// Share draws a part-of-whole breakdown (the traffic doughnut): one row per
// label with a bar proportional to its share of the total.
type Share struct {
	lifecycle
	Title  string
	Series model.Series
}

func NewShare(title string, s model.Series) *Share { return &Share{Title: title, Series: s} }

func (c *Share) Render(width int) string {
	if c.Destroyed() {
		return ""
	}
	var total float64
	for _, v := range c.Series.Values {
		total += v
	}
	lw := labelWidth(c.Series.Labels)
	barW := width - lw - 8
	if barW < 5 {
		barW = 5
	}
	lines := []string{titleStyle.Render(c.Title)}
	if total <= 0 {
		return strings.Join(append(lines, emptyStyle.Render("sem dados")), "\n")
	}
	for i, label := range c.Series.Labels {
		if i >= len(c.Series.Values) {
			break
		}
		v := c.Series.Values[i]
		n := barCells(v, total, barW)
		bar := color(i).Render(strings.Repeat("█", n)) + strings.Repeat("░", barW-n)
		lines = append(lines, fmt.Sprintf("%s %s %s", labelStyle.Render(pad(label, lw)), bar, format.Percent(v)))
	}
	return strings.Join(lines, "\n")
}

// Bars draws horizontal bars scaled to the largest value (the category
// revenue chart).
type Bars struct {
	lifecycle
	Title  string
	Series model.Series
	Label  func(float64) string
}

func NewBars(title string, s model.Series, label func(float64) string) *Bars {
	if label == nil {
		label = format.BRL
	}
	return &Bars{Title: title, Series: s, Label: label}
}

func (c *Bars) Render(width int) string {
	if c.Destroyed() {
		return ""
	}
	var max float64
	for _, v := range c.Series.Values {
		max = math.Max(max, v)
	}
	lw := labelWidth(c.Series.Labels)
	barW := width - lw - 14
	if barW < 5 {
		barW = 5
	}
	lines := []string{titleStyle.Render(c.Title)}
	if len(c.Series.Values) == 0 {
		return strings.Join(append(lines, emptyStyle.Render("sem dados")), "\n")
	}
	for i, label := range c.Series.Labels {
		if i >= len(c.Series.Values) {
			break
		}
		v := c.Series.Values[i]
		bar := color(i).Render(strings.Repeat("■", barCells(v, max, barW)))
		lines = append(lines, fmt.Sprintf("%s %s %s", labelStyle.Render(pad(label, lw)), bar, c.Label(v)))
	}
	return strings.Join(lines, "\n")
}

// Trend draws each campaign dataset as a sparkline over the shared x
// labels, scaled to the overall maximum so lines compare.
type Trend struct {
	lifecycle
	Title    string
	Campaign model.Campaign
}

func NewTrend(title string, c model.Campaign) *Trend { return &Trend{Title: title, Campaign: c} }

func (c *Trend) Render(width int) string {
	if c.Destroyed() {
		return ""
	}
	var max float64
	for _, ds := range c.Campaign.Datasets {
		for _, v := range ds.Data {
			max = math.Max(max, v)
		}
	}
	names := make([]string, len(c.Campaign.Datasets))
	for i, ds := range c.Campaign.Datasets {
		names[i] = ds.Label
	}
	lw := labelWidth(names)
	lines := []string{titleStyle.Render(c.Title)}
	if len(c.Campaign.Datasets) == 0 {
		return strings.Join(append(lines, emptyStyle.Render("sem dados")), "\n")
	}
	for i, ds := range c.Campaign.Datasets {
		last := ""
		if n := len(ds.Data); n > 0 {
			last = format.BRL(ds.Data[n-1])
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			labelStyle.Render(pad(ds.Label, lw)), color(i).Render(Sparkline(ds.Data, max)), last))
	}
	if len(c.Campaign.Labels) > 0 {
		lines = append(lines, labelStyle.Render(pad("", lw)+" "+c.Campaign.Labels[0]+" → "+c.Campaign.Labels[len(c.Campaign.Labels)-1]))
	}
	return strings.Join(lines, "\n")
}

// Sparkline maps each value to one of eight block heights relative to max.
func Sparkline(values []float64, max float64) string {
	runes := []rune(sparkRunes)
	var b strings.Builder
	for _, v := range values {
		idx := 0
		if max > 0 && v > 0 {
			idx = int(math.Round(v / max * float64(len(runes)-1)))
			if idx >= len(runes) {
				idx = len(runes) - 1
			}
		}
		b.WriteRune(runes[idx])
	}
	return b.String()
}
