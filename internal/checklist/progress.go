package checklist

import (
	"fmt"

	"github.com/idilsaglam/dashboard/internal/model"
)

// Progress is the completion summary shown above the checklist.
type Progress struct {
	Done    int `json:"done" yaml:"done"`
	Total   int `json:"total" yaml:"total"`
	Percent int `json:"percent" yaml:"percent"`
}

// ProgressOf counts completed items.
func ProgressOf(items []model.ChecklistItem) Progress {
	done := 0
	for _, it := range items {
		if it.Completed {
			done++
		}
	}
	return Progress{Done: done, Total: len(items), Percent: percent(done, len(items))}
}

// Percentage is round-half-up of 100*completed/total, 0 for an empty list.
func Percentage(items []model.ChecklistItem) int {
	return ProgressOf(items).Percent
}

func percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*done + total) / (2 * total)
}

// Complete is true only at exactly 100%.
func (p Progress) Complete() bool { return p.Percent == 100 }

// Text is the progress line: "2 de 3 concluídas (67%)".
func (p Progress) Text() string {
	return fmt.Sprintf("%d de %d concluídas (%d%%)", p.Done, p.Total, p.Percent)
}

// Width is the progress bar fill as a CSS width value.
func (p Progress) Width() string { return fmt.Sprintf("%d%%", p.Percent) }
