package model

// Metric is a headline card: a labelled value plus its period change.
type Metric struct {
	Label  string  `json:"label" yaml:"label"`
	Value  float64 `json:"value" yaml:"value"`
	Type   string  `json:"type" yaml:"type"`
	Change float64 `json:"change" yaml:"change"`
}

// Metric value kinds understood by the formatter.
const (
	MetricCurrency   = "currency"
	MetricPercentage = "percentage"
	MetricNumber     = "number"
)

// Series is a labelled one-dimensional dataset (traffic sources,
// revenue per category).
type Series struct {
	Labels []string  `json:"labels" yaml:"labels"`
	Values []float64 `json:"values" yaml:"values"`
}

// Dataset is one line of the campaign trend chart.
type Dataset struct {
	Label string    `json:"label" yaml:"label"`
	Data  []float64 `json:"data" yaml:"data"`
}

type Campaign struct {
	Labels   []string  `json:"labels" yaml:"labels"`
	Datasets []Dataset `json:"datasets" yaml:"datasets"`
}

// Phase statuses used by the execution plan filter.
const (
	PhaseInProgress = "em-andamento"
	PhasePending    = "pendente"
)

// Phase is a block of the execution plan.
type Phase struct {
	Fase    string `json:"fase" yaml:"fase"`
	Prazo   string `json:"prazo" yaml:"prazo"`
	Status  string `json:"status" yaml:"status"`
	Tarefas []Task `json:"tarefas" yaml:"tarefas"`
}

type Task struct {
	ID          string   `json:"id" yaml:"id"`
	Titulo      string   `json:"titulo" yaml:"titulo"`
	Responsavel string   `json:"responsavel" yaml:"responsavel"`
	Prazo       string   `json:"prazo" yaml:"prazo"`
	Metrica     string   `json:"metrica" yaml:"metrica"`
	Subtarefas  []string `json:"subtarefas" yaml:"subtarefas"`
}

// KPI statuses.
const (
	KPIOK        = "ok"
	KPIAlert     = "alerta"
	KPICritical  = "critico"
	KPIExcellent = "excelente"
)

// Monitoring mirrors monitoring.json.
type Monitoring struct {
	KPIs     KPIBoard `json:"kpis_mensais" yaml:"kpis_mensais"`
	Actions  Actions  `json:"acoes_prioritarias" yaml:"acoes_prioritarias"`
	Timeline Timeline `json:"timeline_metas" yaml:"timeline_metas"`
}

type KPIBoard struct {
	Metricas []KPICategory `json:"metricas" yaml:"metricas"`
}

type KPICategory struct {
	Categoria   string      `json:"categoria" yaml:"categoria"`
	Indicadores []Indicator `json:"indicadores" yaml:"indicadores"`
}

type Indicator struct {
	Nome   string `json:"nome" yaml:"nome"`
	Meta   string `json:"meta" yaml:"meta"`
	Atual  string `json:"atual" yaml:"atual"`
	Status string `json:"status" yaml:"status"`
}

type Actions struct {
	Acoes []Action `json:"acoes" yaml:"acoes"`
}

// Action is a priority action attached to a lagging metric.
type Action struct {
	Metrica string   `json:"metrica" yaml:"metrica"`
	Status  string   `json:"status" yaml:"status"`
	Gap     string   `json:"gap" yaml:"gap"`
	Acoes   []string `json:"acoes" yaml:"acoes"`
}

type Timeline struct {
	Periodos []Period `json:"periodos" yaml:"periodos"`
}

type Period struct {
	Mes                  string   `json:"mes" yaml:"mes"`
	Objetivo             string   `json:"objetivo" yaml:"objetivo"`
	Metas                []string `json:"metas" yaml:"metas"`
	FaturamentoProjetado string   `json:"faturamento_projetado" yaml:"faturamento_projetado"`
}
