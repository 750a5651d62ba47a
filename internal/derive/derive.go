// Package derive computes every value the views show from stored entities.
// Nothing here mutates the store; derived numbers are recomputed on demand
// so they can never drift out of sync with the collections.
package derive

import (
	"evalboard/internal/domain"
	"evalboard/internal/store"
)

// CountBy tallies items into buckets chosen by key.
func CountBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	out := make(map[K]int, len(items))
	for _, it := range items {
		out[key(it)]++
	}
	return out
}

// Count returns how many items satisfy pred.
func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}

// SumBy totals f over items.
func SumBy[T any](items []T, f func(T) int) int {
	total := 0
	for _, it := range items {
		total += f(it)
	}
	return total
}

// Percent returns part as a percentage of whole. An empty whole yields 0
// rather than dividing by zero.
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// ---------------------------------------------------------------------------

// WorkbenchStats is the dashboard's aggregate snapshot.
type WorkbenchStats struct {
	ActiveTasks int
	TotalTasks  int

	ModelsByCategory map[domain.ModelCategory]int
	RuntimeModels    int
	DevModels        int // pretraining, finetuning, reinforcement

	TasksByCategory map[domain.TaskCategory]int

	ToolUpdates  int
	TotalMetrics int // metric rows across all strategies
	TotalSamples int // samples across all datasets
	ReportCount  int
}

// Workbench recomputes the dashboard aggregates from the current store
// contents.
func Workbench(s *store.Store) WorkbenchStats {
	models := s.Models.All()
	tasks := s.Tasks.All()

	runtime := Count(models, func(m domain.TargetModel) bool {
		return m.Stage == domain.StageRuntime
	})

	return WorkbenchStats{
		ActiveTasks: Count(tasks, func(t domain.EvaluationTask) bool {
			return t.Status == domain.TaskRunning
		}),
		TotalTasks: len(tasks),

		ModelsByCategory: CountBy(models, func(m domain.TargetModel) domain.ModelCategory {
			return m.Category
		}),
		RuntimeModels: runtime,
		DevModels:     len(models) - runtime,

		TasksByCategory: CountBy(tasks, func(t domain.EvaluationTask) domain.TaskCategory {
			return t.Category
		}),

		ToolUpdates: Count(s.Tools.All(), func(t domain.EvaluationTool) bool {
			return t.Status == domain.ToolUpdateAvailable
		}),
		TotalMetrics: SumBy(s.Strategies.All(), func(st domain.EvaluationStrategy) int {
			return len(st.Metrics)
		}),
		TotalSamples: SumBy(s.Datasets.All(), func(d domain.Dataset) int {
			return d.SampleCount
		}),
		ReportCount: s.Reports.Len(),
	}
}

// RuntimeShare is the percentage of models in the runtime stage; 0 when no
// models are registered.
func (w WorkbenchStats) RuntimeShare() float64 {
	return Percent(w.RuntimeModels, w.RuntimeModels+w.DevModels)
}
