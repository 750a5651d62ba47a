package wizard

import (
	"testing"
	"time"

	"evalboard/internal/domain"
	"evalboard/internal/probe"
	"evalboard/internal/store"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func testGen() probe.Generator {
	return probe.Fixed{LatencyMS: 120, Samples: 2000}
}

func TestModelDraftGating(t *testing.T) {
	cases := []struct {
		name string
		d    ModelDraft
		want bool
	}{
		{"empty", NewModelDraft(), false},
		{"name only", ModelDraft{Name: "GPT-X"}, false},
		{"endpoint only", ModelDraft{Endpoint: "https://x"}, false},
		{"complete", ModelDraft{Name: "GPT-X", Endpoint: "https://x"}, true},
	}
	for _, tc := range cases {
		if got := tc.d.CanCommit(); got != tc.want {
			t.Errorf("%s: CanCommit() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestModelDraftCommit(t *testing.T) {
	s := &store.Store{}
	d := NewModelDraft()
	d.Name = "GPT-X"
	d.Endpoint = "https://x.example.com"
	d.APIKey = "sk-secret"

	m := d.Commit(s, testGen(), testNow)

	if m.Status != domain.StatusHealthy || m.LatencyMS != 120 {
		t.Errorf("commit defaults: %+v", m)
	}
	if m.Category != domain.ModelLLM || m.Stage != domain.StageRuntime {
		t.Errorf("draft defaults lost: %+v", m)
	}
	got, ok := s.Models.First()
	if !ok || got.ID != m.ID {
		t.Error("model not prepended to store")
	}
}

func TestTaskDraftDefaultsBindings(t *testing.T) {
	s, err := store.Seeded()
	if err != nil {
		t.Fatalf("Seeded: %v", err)
	}
	d := NewTaskDraft()
	d.Name = "新建扫描"

	task := d.Commit(s, testNow)

	// Unset bindings fall back to the newest model and strategy.
	if task.ModelID != "m1" || task.StrategyID != "s1" {
		t.Errorf("bindings = %q, %q", task.ModelID, task.StrategyID)
	}
	if task.Status != domain.TaskPending || task.Progress != 0 {
		t.Errorf("fresh task state: %+v", task)
	}
	if got, _ := s.Tasks.First(); got.ID != task.ID {
		t.Error("task not prepended")
	}
}

func TestTaskDraftEmptyStoreBindings(t *testing.T) {
	s := &store.Store{}
	d := NewTaskDraft()
	d.Name = "裸任务"

	task := d.Commit(s, testNow)
	if task.ModelID != "" || task.StrategyID != "" {
		t.Errorf("bindings on empty store = %q, %q", task.ModelID, task.StrategyID)
	}
}

func TestDatasetDraftTags(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"a, b ,c", []string{"a", "b", "c"}},
		{" 提示注入 ,, 数据投毒 ", []string{"提示注入", "数据投毒"}},
		{"", nil},
		{" , ,", nil},
	}
	for _, tc := range cases {
		d := DatasetDraft{TagsText: tc.raw}
		got := d.Tags()
		if len(got) != len(tc.want) {
			t.Errorf("Tags(%q) = %v, want %v", tc.raw, got, tc.want)
			continue
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("Tags(%q)[%d] = %q, want %q", tc.raw, i, got[i], tc.want[i])
			}
		}
	}
}

func TestDatasetDraftCommit(t *testing.T) {
	s := &store.Store{}
	d := NewDatasetDraft()
	if d.CanCommit() {
		t.Error("empty draft committable")
	}
	d.Name = "新题库"
	if d.CanCommit() {
		t.Error("draft without sub-category committable")
	}
	d.SubCategory = "拒答场景题"
	if !d.CanCommit() {
		t.Error("complete draft not committable")
	}
	d.TagsText = "红线, 敏感"

	ds := d.Commit(s, testGen(), testNow)
	if ds.SampleCount != 2000 {
		t.Errorf("SampleCount = %d", ds.SampleCount)
	}
	if len(ds.Tags) != 2 {
		t.Errorf("Tags = %v", ds.Tags)
	}
	if s.Datasets.Len() != 1 {
		t.Error("dataset not stored")
	}
}

func TestToolDraftCommit(t *testing.T) {
	s := &store.Store{}
	d := NewToolDraft()
	if d.CanCommit() {
		t.Error("empty draft committable")
	}
	d.Name = "PromptGuard"

	tool := d.Commit(s)
	if tool.Version != "1.0.0" {
		t.Errorf("blank version not defaulted: %q", tool.Version)
	}
	if tool.Status != domain.ToolActive || tool.Author != "User" {
		t.Errorf("commit defaults: %+v", tool)
	}

	d.Version = "3.2.1"
	if got := d.Commit(s); got.Version != "3.2.1" {
		t.Errorf("explicit version lost: %q", got.Version)
	}
}
