package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/dashboard/internal/model"
)

func items(flags ...bool) []model.ChecklistItem {
	out := make([]model.ChecklistItem, len(flags))
	for i, f := range flags {
		out[i] = model.ChecklistItem{Task: "t", Completed: f}
	}
	return out
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		name  string
		items []model.ChecklistItem
		want  int
	}{
		{"empty", nil, 0},
		{"two of three", items(true, false, true), 67},
		{"one of three", items(true, false, false), 33},
		{"half rounds up", items(true, false, false, false, false, false, false, false), 13},
		{"five of eight", items(true, true, true, true, true, false, false, false), 63},
		{"none", items(false, false), 0},
		{"all", items(true, true, true), 100},
		{"one of two hundred", append(items(true), items(make([]bool, 199)...)...), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Percentage(tc.items))
		})
	}
}

func TestProgressText(t *testing.T) {
	p := ProgressOf(items(true, false, true))
	assert.Equal(t, Progress{Done: 2, Total: 3, Percent: 67}, p)
	assert.Equal(t, "2 de 3 concluídas (67%)", p.Text())
	assert.Equal(t, "67%", p.Width())
	assert.False(t, p.Complete())
	assert.True(t, ProgressOf(items(true)).Complete())
	assert.Equal(t, "0 de 0 concluídas (0%)", ProgressOf(nil).Text())
}
