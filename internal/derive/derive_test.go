package derive

import (
	"testing"

	"evalboard/internal/domain"
	"evalboard/internal/store"
)

func TestCountBy(t *testing.T) {
	items := []string{"a", "bb", "cc", "d"}
	got := CountBy(items, func(s string) int { return len(s) })
	if got[1] != 2 || got[2] != 2 {
		t.Errorf("CountBy = %v", got)
	}
	if len(CountBy(nil, func(s string) int { return len(s) })) != 0 {
		t.Error("CountBy(nil) should be empty")
	}
}

func TestSumBy(t *testing.T) {
	ds := []domain.Dataset{{SampleCount: 100}, {SampleCount: 250}}
	if got := SumBy(ds, func(d domain.Dataset) int { return d.SampleCount }); got != 350 {
		t.Errorf("SumBy = %d", got)
	}
	if got := SumBy(nil, func(d domain.Dataset) int { return d.SampleCount }); got != 0 {
		t.Errorf("SumBy(nil) = %d", got)
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		part, whole int
		want        float64
	}{
		{1, 4, 25},
		{3, 3, 100},
		{0, 5, 0},
		{5, 0, 0}, // empty denominator must not divide
		{0, 0, 0},
	}
	for _, tc := range cases {
		if got := Percent(tc.part, tc.whole); got != tc.want {
			t.Errorf("Percent(%d, %d) = %v, want %v", tc.part, tc.whole, got, tc.want)
		}
	}
}

func TestWorkbench(t *testing.T) {
	s, err := store.Seeded()
	if err != nil {
		t.Fatalf("Seeded: %v", err)
	}
	w := Workbench(s)

	if w.TotalTasks != 1 || w.ActiveTasks != 0 {
		t.Errorf("task counts = %d/%d", w.ActiveTasks, w.TotalTasks)
	}
	if w.ModelsByCategory[domain.ModelLLM] != 1 ||
		w.ModelsByCategory[domain.ModelMultimodal] != 1 ||
		w.ModelsByCategory[domain.ModelVertical] != 1 {
		t.Errorf("models by category = %v", w.ModelsByCategory)
	}
	if w.RuntimeModels != 1 || w.DevModels != 2 {
		t.Errorf("stage split = %d runtime / %d dev", w.RuntimeModels, w.DevModels)
	}
	if w.TasksByCategory[domain.TaskCompliance] != 1 {
		t.Errorf("tasks by category = %v", w.TasksByCategory)
	}
	if w.TotalMetrics != 2 {
		t.Errorf("TotalMetrics = %d", w.TotalMetrics)
	}
	if w.TotalSamples != 32900 {
		t.Errorf("TotalSamples = %d", w.TotalSamples)
	}
	if w.ReportCount != 1 {
		t.Errorf("ReportCount = %d", w.ReportCount)
	}
}

func TestWorkbenchEmptyStore(t *testing.T) {
	w := Workbench(&store.Store{})
	if w.RuntimeShare() != 0 {
		t.Errorf("RuntimeShare on empty store = %v", w.RuntimeShare())
	}
	if w.TotalTasks != 0 || w.TotalSamples != 0 {
		t.Errorf("empty store produced counts: %+v", w)
	}
}
