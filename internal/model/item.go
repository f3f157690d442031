package model

// ChecklistItem is one launch task. Task is fixed once created; only
// Completed changes.
type ChecklistItem struct {
	Task      string `json:"task" yaml:"task"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// CloneItems returns a copy that can be mutated without touching src.
func CloneItems(src []ChecklistItem) []ChecklistItem {
	out := make([]ChecklistItem, len(src))
	copy(out, src)
	return out
}
