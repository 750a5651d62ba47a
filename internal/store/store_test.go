package store

import (
	"testing"

	"evalboard/internal/domain"
)

func model(id, name string) domain.TargetModel {
	return domain.TargetModel{ID: id, Name: name, Category: domain.ModelLLM}
}

func TestCollectionAppendPrepends(t *testing.T) {
	var c Collection[domain.TargetModel]
	c.Append(model("a", "first"))
	c.Append(model("b", "second"))
	c.Append(model("c", "third"))

	got := c.All()
	want := []string{"c", "b", "a"} // newest first
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("All()[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestCollectionAllReturnsCopy(t *testing.T) {
	c := NewCollection(model("a", "first"), model("b", "second"))
	snapshot := c.All()
	c.Append(model("c", "third"))

	if len(snapshot) != 2 {
		t.Fatalf("snapshot mutated, len = %d", len(snapshot))
	}
	// Writing into the returned slice must not touch the collection.
	snapshot[0] = model("x", "overwritten")
	if got, _ := c.ByID("a"); got.Name != "first" {
		t.Errorf("collection entry changed through snapshot: %+v", got)
	}
}

func TestCollectionReplace(t *testing.T) {
	c := NewCollection(model("a", "first"), model("b", "second"), model("c", "third"))

	if !c.Replace(model("b", "renamed")) {
		t.Fatal("Replace reported miss for existing id")
	}
	got := c.All()
	if got[1].ID != "b" || got[1].Name != "renamed" {
		t.Errorf("Replace moved or missed the entry: %+v", got[1])
	}

	// Unknown id: no-op, reported as a miss.
	if c.Replace(model("zz", "ghost")) {
		t.Error("Replace reported hit for unknown id")
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d after missed Replace", c.Len())
	}
}

func TestCollectionByID(t *testing.T) {
	c := NewCollection(model("a", "first"))
	if _, ok := c.ByID("a"); !ok {
		t.Error("ByID missed existing entry")
	}
	if _, ok := c.ByID("nope"); ok {
		t.Error("ByID hit for unknown id")
	}
	var empty Collection[domain.TargetModel]
	if _, ok := empty.ByID("a"); ok {
		t.Error("ByID hit on empty collection")
	}
}

func TestCollectionFirst(t *testing.T) {
	var c Collection[domain.TargetModel]
	if _, ok := c.First(); ok {
		t.Error("First reported hit on empty collection")
	}
	c.Append(model("a", "first"))
	c.Append(model("b", "second"))
	got, ok := c.First()
	if !ok || got.ID != "b" {
		t.Errorf("First() = %+v, %v", got, ok)
	}
}

func TestSeeded(t *testing.T) {
	s, err := Seeded()
	if err != nil {
		t.Fatalf("Seeded: %v", err)
	}

	if n := s.Models.Len(); n != 3 {
		t.Errorf("seeded models = %d, want 3", n)
	}
	if n := s.Datasets.Len(); n != 13 {
		t.Errorf("seeded datasets = %d, want 13", n)
	}
	if n := s.Strategies.Len(); n != 1 {
		t.Errorf("seeded strategies = %d, want 1", n)
	}
	if n := s.Reports.Len(); n != 1 {
		t.Errorf("seeded reports = %d, want 1", n)
	}
	if len(s.Templates) != 2 {
		t.Errorf("template catalog = %d, want 2", len(s.Templates))
	}

	m, ok := s.Models.ByID("m1")
	if !ok {
		t.Fatal("model m1 missing from seed")
	}
	if m.Name != "Gemini 2.5 Flash" || m.Category != domain.ModelLLM || m.Stage != domain.StageRuntime {
		t.Errorf("m1 decoded wrong: %+v", m)
	}
	if m.AddedAt.Year() != 2024 {
		t.Errorf("m1 added_at year = %d", m.AddedAt.Year())
	}

	st, ok := s.Strategies.ByID("s1")
	if !ok {
		t.Fatal("strategy s1 missing from seed")
	}
	if len(st.Metrics) != 2 || st.Metrics[0].Operator != domain.OpLess {
		t.Errorf("s1 metrics decoded wrong: %+v", st.Metrics)
	}
	if len(st.DatasetIDs) != 2 || st.TemplateID != "tpl-safety" {
		t.Errorf("s1 bindings decoded wrong: %+v", st)
	}

	r, ok := s.Reports.ByID("r-LLM-20251215-001")
	if !ok {
		t.Fatal("seed report missing")
	}
	if r.TaskID != "t1" || r.OverallScore != 88 {
		t.Errorf("report decoded wrong: %+v", r)
	}
	if len(r.Metrics) == 0 || len(r.History) == 0 || len(r.Failures) == 0 {
		t.Errorf("report detail sections empty: %+v", r)
	}

	if s.Infra.ActiveNodes != 12 {
		t.Errorf("infra decoded wrong: %+v", s.Infra)
	}
	if len(s.Agents) != 1 || s.Agents[0].State != domain.AgentIdle {
		t.Errorf("agents decoded wrong: %+v", s.Agents)
	}
}

func TestTemplateByID(t *testing.T) {
	s, err := Seeded()
	if err != nil {
		t.Fatalf("Seeded: %v", err)
	}
	tpl, ok := s.TemplateByID("tpl-capability")
	if !ok || tpl.Name != "模型能力基准报告" {
		t.Errorf("TemplateByID = %+v, %v", tpl, ok)
	}
	if _, ok := s.TemplateByID("tpl-nope"); ok {
		t.Error("TemplateByID hit for unknown id")
	}
}
