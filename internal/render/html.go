package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/idilsaglam/dashboard/internal/dashboard"
	"github.com/idilsaglam/dashboard/internal/format"
	"github.com/idilsaglam/dashboard/internal/model"
)

// The checklist block keeps the element ids the page scripts expect:
// #checklist, #progress-text and #progress-bar-fill carrying the fill
// width and a data-progress mirror.
const pageTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Dashboard</title>
</head>
<body>
<section id="metrics">
{{- range .Metrics}}
  <div class="metric-card">
    <p class="metric-label">{{.Label}}</p>
    <p class="metric-value">{{metricValue .Value .Type}}</p>
    <p class="{{if positive .Change}}text-green-400{{else}}text-red-400{{end}}">{{change .Change}}</p>
  </div>
{{- end}}
</section>

<section id="charts">
{{- range .Charts}}
  <figure class="chart" id="{{.ID}}">
    <figcaption>{{.Title}}</figcaption>
    <table>
    {{- range .Rows}}
      <tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>
    {{- end}}
    </table>
  </figure>
{{- end}}
</section>

<section id="checklist-section">
  <div id="checklist">
  {{- range $i, $it := .Checklist}}
    <label class="{{if $it.Completed}}opacity-60{{end}}">
      <input type="checkbox" id="task-{{$i}}"{{if $it.Completed}} checked{{end}}>
      <span class="{{if $it.Completed}}line-through{{end}}">{{$it.Task}}</span>
    </label>
  {{- end}}
  </div>
  <p id="progress-text">{{.ProgressText}}</p>
  <div class="progress-bar">
    <div id="progress-bar-fill" class="{{if .Progress.Complete}}complete{{end}}" style="width: {{.Progress.Width}}" data-progress="{{.Progress.Width}}"></div>
  </div>
</section>

<section id="executionPlanContainer">
{{- range $p, $phase := .Plan}}
  <div class="phase-card" data-status="{{$phase.Status}}">
    <h3>{{$phase.Fase}}</h3>
    <span>Prazo: {{$phase.Prazo}}</span>
    <span>Status: {{phaseStatus $phase.Status}}</span>
    <span>{{len $phase.Tarefas}} tarefas</span>
    {{- range $phase.Tarefas}}
    <div class="task">
      <span class="task-id">{{.ID}}</span>
      <h4>{{.Titulo}}</h4>
      <span>{{.Responsavel}}</span> <span>{{.Prazo}}</span>
      <div>Meta: {{.Metrica}}</div>
      <ul>{{range .Subtarefas}}<li>{{.}}</li>{{end}}</ul>
    </div>
    {{- end}}
  </div>
{{- end}}
</section>

<section id="monitoringKPIs">
{{- range .Monitoring.KPIs.Metricas}}
  <div class="kpi-category">
    <h3>{{.Categoria}}</h3>
    {{- range .Indicadores}}
    <div class="kpi" data-status="{{.Status}}"><span>{{.Nome}}</span> <span>Meta: {{.Meta}}</span> <span>{{.Atual}}</span></div>
    {{- end}}
  </div>
{{- end}}
</section>

<section id="priorityActions">
{{- range .Monitoring.Actions.Acoes}}
  <div class="action" data-status="{{.Status}}">
    <h3>{{.Metrica}}</h3>
    <span>{{actionBadge .Status}}</span>
    <div>{{.Gap}}</div>
    <ul>{{range .Acoes}}<li>{{.}}</li>{{end}}</ul>
  </div>
{{- end}}
</section>

<section id="timelineMetas">
{{- range .Monitoring.Timeline.Periodos}}
  <div class="timeline-card">
    <h3>{{.Mes}}</h3>
    <p>{{.Objetivo}}</p>
    <ul>{{range .Metas}}<li>{{.}}</li>{{end}}</ul>
    <span>{{.FaturamentoProjetado}}</span>
  </div>
{{- end}}
</section>
</body>
</html>
`

var page = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"metricValue": format.MetricValue,
	"change":      format.Change,
	"positive":    format.Positive,
	"phaseStatus": format.PhaseStatus,
	"actionBadge": format.ActionBadge,
}).Parse(pageTemplate))

type chartRow struct{ Label, Value string }

type chartView struct {
	ID, Title string
	Rows      []chartRow
}

type pageData struct {
	dashboard.Snapshot
	ProgressText string
	Charts       []chartView
}

// HTML writes the static page. A complete checklist is marked by the
// progress bar's complete class; the progress line always shows counts.
func HTML(w io.Writer, snap dashboard.Snapshot) error {
	data := pageData{
		Snapshot:     snap,
		ProgressText: snap.Progress.Text(),
		Charts: []chartView{
			seriesView("trafficChart", "Origem do Tráfego", snap.Traffic, format.Percent),
			seriesView("categoryChart", "Faturamento por Categoria", snap.Categories, format.BRL),
			campaignView(snap.Campaigns),
		},
	}
	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func seriesView(id, title string, s model.Series, label func(float64) string) chartView {
	v := chartView{ID: id, Title: title}
	for i, l := range s.Labels {
		if i < len(s.Values) {
			v.Rows = append(v.Rows, chartRow{Label: l, Value: label(s.Values[i])})
		}
	}
	return v
}

func campaignView(c model.Campaign) chartView {
	v := chartView{ID: "campaignChart", Title: "Desempenho das Campanhas"}
	for _, ds := range c.Datasets {
		for i, x := range ds.Data {
			label := ds.Label
			if i < len(c.Labels) {
				label = ds.Label + " · " + c.Labels[i]
			}
			v.Rows = append(v.Rows, chartRow{Label: label, Value: format.BRL(x)})
		}
	}
	return v
}
