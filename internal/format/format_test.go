package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/dashboard/internal/model"
)

func TestMetricValue(t *testing.T) {
	cases := []struct {
		value float64
		kind  string
		want  string
	}{
		{1260000, model.MetricCurrency, "R$ 1,3M"},
		{1200000, model.MetricCurrency, "R$ 1,2M"},
		{3450, model.MetricCurrency, "R$ 3,5k"},
		{349.5, model.MetricCurrency, "R$ 349,5"},
		{349, model.MetricCurrency, "R$ 349"},
		{4.8, model.MetricPercentage, "4.8%"},
		{12, model.MetricPercentage, "12.0%"},
		{2500000, model.MetricNumber, "2,5M"},
		{150000, model.MetricNumber, "150,0k"},
		{999, model.MetricNumber, "999"},
		{3.25, model.MetricNumber, "3,25"},
		{42.5, "ratio", "42.5"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MetricValue(tc.value, tc.kind), "%v %s", tc.value, tc.kind)
	}
}

func TestChange(t *testing.T) {
	assert.Equal(t, "+12.5%", Change(12.5))
	assert.Equal(t, "+0.0%", Change(0))
	assert.Equal(t, "-2.0%", Change(-2))
	assert.True(t, Positive(0))
	assert.False(t, Positive(-0.1))
}

func TestAxisLabels(t *testing.T) {
	assert.Equal(t, "R$ 45.000", BRL(45000))
	assert.Equal(t, "R$ 45k", KiloBRL(45000))
	assert.Equal(t, "R$ 2.5k", KiloBRL(2500))
	assert.Equal(t, "60%", Percent(60))
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Em Andamento", PhaseStatus(model.PhaseInProgress))
	assert.Equal(t, "Pendente", PhaseStatus(model.PhasePending))
	assert.Equal(t, "Pendente", PhaseStatus("whatever"))
	assert.Equal(t, "⚠️ Alerta", ActionBadge(model.KPIAlert))
	assert.Equal(t, "🔴 Crítico", ActionBadge(model.KPICritical))
}
