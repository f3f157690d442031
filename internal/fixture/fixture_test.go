package fixture_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/dashboard/internal/fixture"
	"github.com/idilsaglam/dashboard/internal/fixture/fixturetest"
	"github.com/idilsaglam/dashboard/internal/model"
)

func newSource(t *testing.T, overrides map[string]string) *fixture.Source {
	t.Helper()
	src, err := fixture.New(fixturetest.WriteDir(t, overrides))
	require.NoError(t, err)
	return src
}

func TestDecodeAllSections(t *testing.T) {
	ctx := context.Background()
	src := newSource(t, nil)

	items, err := src.Checklist(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.ChecklistItem{
		{Task: "Configurar pixel"},
		{Task: "Revisar checkout", Completed: true},
		{Task: "Definir orçamento"},
	}, items)

	metrics, err := src.Metrics(ctx)
	require.NoError(t, err)
	require.Len(t, metrics, 2)
	assert.Equal(t, model.MetricCurrency, metrics[0].Type)
	assert.Equal(t, -2.0, metrics[1].Change)

	traffic, err := src.Traffic(ctx)
	require.NoError(t, err)
	assert.Equal(t, []float64{75, 25}, traffic.Values)

	cats, err := src.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Principal", "Upsells"}, cats.Labels)

	camp, err := src.Campaigns(ctx)
	require.NoError(t, err)
	require.Len(t, camp.Datasets, 2)
	assert.Equal(t, "Retorno", camp.Datasets[1].Label)

	plan, err := src.ExecutionPlan(ctx)
	require.NoError(t, err)
	require.Len(t, plan, 3)
	assert.Equal(t, model.PhaseInProgress, plan[0].Status)
	assert.Equal(t, []string{"Validar eventos", "Testar compra"}, plan[0].Tarefas[0].Subtarefas)

	mon, err := src.Monitoring(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.KPIExcellent, mon.KPIs.Metricas[0].Indicadores[1].Status)
	assert.Equal(t, "R$ 1,3M", mon.Timeline.Periodos[0].FaturamentoProjetado)
}

func TestChecklistReturnsFreshCopies(t *testing.T) {
	ctx := context.Background()
	src := newSource(t, nil)

	a, err := src.Checklist(ctx)
	require.NoError(t, err)
	a[0].Completed = true

	b, err := src.Checklist(ctx)
	require.NoError(t, err)
	assert.False(t, b[0].Completed)
}

func TestEmptyChecklistIsNotNil(t *testing.T) {
	src := newSource(t, map[string]string{fixture.Checklist: `[]`})
	items, err := src.Checklist(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestReadErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		src := newSource(t, map[string]string{fixture.Checklist: ""})
		_, err := src.Checklist(ctx)
		assert.ErrorContains(t, err, "checklist.json")
	})
	t.Run("malformed json", func(t *testing.T) {
		src := newSource(t, map[string]string{fixture.Checklist: `[{"task":`})
		_, err := src.Checklist(ctx)
		assert.ErrorIs(t, err, fixture.ErrInvalid)
	})
	t.Run("schema violation", func(t *testing.T) {
		src := newSource(t, map[string]string{fixture.Checklist: `[{"task": 1, "completed": "yes"}]`})
		_, err := src.Checklist(ctx)
		assert.ErrorIs(t, err, fixture.ErrInvalid)
		assert.ErrorContains(t, err, "/0/")
	})
	t.Run("unknown kpi status", func(t *testing.T) {
		src := newSource(t, map[string]string{fixture.Monitoring: `{
  "kpis_mensais": {"metricas": [{"categoria": "x", "indicadores": [{"nome": "a", "atual": "1", "status": "bad"}]}]},
  "acoes_prioritarias": {"acoes": []},
  "timeline_metas": {"periodos": []}
}`})
		_, err := src.Monitoring(ctx)
		assert.ErrorIs(t, err, fixture.ErrInvalid)
	})
	t.Run("unknown fixture", func(t *testing.T) {
		src := newSource(t, nil)
		_, err := src.Read(ctx, "secrets.json")
		assert.ErrorIs(t, err, fixture.ErrUnknownFixture)
	})
	t.Run("cancelled context", func(t *testing.T) {
		src := newSource(t, nil)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := src.Checklist(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestValidateReportsEveryProblem(t *testing.T) {
	src := newSource(t, map[string]string{
		fixture.Traffic:   `{"labels": "nope"}`,
		fixture.Campaigns: "",
	})
	problems := src.Validate(context.Background())
	names := make([]string, 0, len(problems))
	for _, p := range problems {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{fixture.Traffic, fixture.Campaigns}, names)

	clean := newSource(t, nil)
	assert.Empty(t, clean.Validate(context.Background()))
}

func TestNamesAndPath(t *testing.T) {
	assert.Len(t, fixture.Names(), 7)
	assert.Contains(t, fixture.Names(), fixture.ExecutionPlan)

	src, err := fixture.New("/srv/data")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/srv/data", "checklist.json"), src.Path(fixture.Checklist))
}
