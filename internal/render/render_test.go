package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/dashboard/internal/checklist"
	"github.com/idilsaglam/dashboard/internal/dashboard"
	"github.com/idilsaglam/dashboard/internal/model"
)

func sampleSnapshot(items ...model.ChecklistItem) dashboard.Snapshot {
	return dashboard.Snapshot{
		Metrics: []model.Metric{
			{Label: "Faturamento", Value: 1260000, Type: model.MetricCurrency, Change: 12.5},
			{Label: "Ticket", Value: 349.5, Type: model.MetricCurrency, Change: -2},
		},
		Traffic:    model.Series{Labels: []string{"Meta Ads"}, Values: []float64{60}},
		Categories: model.Series{Labels: []string{"Principal"}, Values: []float64{850000}},
		Campaigns: model.Campaign{Labels: []string{"Jan"}, Datasets: []model.Dataset{
			{Label: "Retorno", Data: []float64{45000}},
		}},
		Checklist: items,
		Progress:  checklist.ProgressOf(items),
		Plan: []model.Phase{{Fase: "Fase 1", Status: model.PhaseInProgress, Tarefas: []model.Task{
			{ID: "F1-T1", Titulo: "Auditar <pixel>", Subtarefas: []string{"Validar"}},
		}}},
		Monitoring: model.Monitoring{
			Actions: model.Actions{Acoes: []model.Action{{Metrica: "CPA", Status: model.KPIAlert}}},
		},
	}
}

// findByID walks the parsed document for an element id.
func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f := findByID(c, id); f != nil {
			return f
		}
	}
	return nil
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func parse(t *testing.T, snap dashboard.Snapshot) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatHTML, snap))
	doc, err := html.Parse(&buf)
	require.NoError(t, err)
	return doc
}

func TestHTMLChecklistContract(t *testing.T) {
	doc := parse(t, sampleSnapshot(
		model.ChecklistItem{Task: "Pixel", Completed: true},
		model.ChecklistItem{Task: "Checkout"},
		model.ChecklistItem{Task: "Orçamento", Completed: true},
	))

	require.NotNil(t, findByID(doc, "checklist"))
	first := findByID(doc, "task-0")
	require.NotNil(t, first)
	assert.True(t, hasAttr(first, "checked"))
	assert.False(t, hasAttr(findByID(doc, "task-1"), "checked"))

	progress := findByID(doc, "progress-text")
	require.NotNil(t, progress)
	assert.Equal(t, "2 de 3 concluídas (67%)", text(progress))

	fill := findByID(doc, "progress-bar-fill")
	require.NotNil(t, fill)
	assert.Equal(t, "67%", attr(fill, "data-progress"))
	assert.Contains(t, attr(fill, "style"), "width: 67%")
	assert.NotContains(t, attr(fill, "class"), "complete")
}

func TestHTMLCompleteChecklist(t *testing.T) {
	doc := parse(t, sampleSnapshot(model.ChecklistItem{Task: "Pixel", Completed: true}))
	assert.Equal(t, "1 de 1 concluídas (100%)", text(findByID(doc, "progress-text")))
	assert.NotContains(t, text(doc), checklist.CelebrationMessage)
	fill := findByID(doc, "progress-bar-fill")
	assert.Equal(t, "complete", attr(fill, "class"))
	assert.Equal(t, "100%", attr(fill, "data-progress"))
}

func TestHTMLSectionsAndEscaping(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, sampleSnapshot()))
	out := buf.String()

	assert.Contains(t, out, "R$ 1,3M")
	assert.Contains(t, out, "text-red-400")
	assert.Contains(t, out, "Auditar &lt;pixel&gt;")
	assert.Contains(t, out, "Em Andamento")
	assert.Contains(t, out, "⚠️ Alerta")
	assert.Contains(t, out, "0 de 0 concluídas (0%)")

	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)
	for _, id := range []string{"metrics", "trafficChart", "categoryChart", "campaignChart",
		"executionPlanContainer", "monitoringKPIs", "priorityActions", "timelineMetas"} {
		assert.NotNil(t, findByID(doc, id), id)
	}
	assert.Contains(t, text(findByID(doc, "metrics")), "+12.5%")
	assert.Contains(t, text(findByID(doc, "campaignChart")), "Retorno · Jan")
}

func TestJSONAndYAML(t *testing.T) {
	snap := sampleSnapshot(model.ChecklistItem{Task: "Pixel", Completed: true}, model.ChecklistItem{Task: "Checkout"})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, snap))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, map[string]any{"done": 1.0, "total": 2.0, "percent": 50.0}, decoded["progress"])
	assert.Contains(t, decoded, "execution_plan")

	buf.Reset()
	require.NoError(t, Write(&buf, "YAML", snap))
	var y struct {
		Checklist []model.ChecklistItem `yaml:"checklist"`
		Progress  checklist.Progress    `yaml:"progress"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &y))
	assert.Equal(t, snap.Checklist, y.Checklist)
	assert.Equal(t, 50, y.Progress.Percent)

	assert.Error(t, Write(&buf, "csv", snap))
}
