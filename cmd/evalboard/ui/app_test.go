package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"evalboard/internal/analyze"
	"evalboard/internal/nav"
	"evalboard/internal/probe"
	"evalboard/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	s, err := store.Seeded()
	if err != nil {
		t.Fatalf("Seeded: %v", err)
	}
	analyzer := analyze.New(context.Background(), "", nil)
	return NewApp(s, analyzer, probe.Fixed{LatencyMS: 100, Samples: 1200}, "logo.png", nil)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(a *App, msgs ...tea.Msg) {
	for _, m := range msgs {
		a.Update(m)
	}
}

func TestHotkeysSwitchViews(t *testing.T) {
	tests := []struct {
		key  string
		want nav.View
	}{
		{"2", nav.ViewModels},
		{"4", nav.ViewTasks},
		{"7", nav.ViewReports},
		{"8", nav.ViewSettings},
		{"1", nav.ViewDashboard},
	}
	a := newTestApp(t)
	for _, tt := range tests {
		press(a, keyRunes(tt.key))
		if got := a.nav.View(); got != tt.want {
			t.Errorf("key %q: view = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestLeavingReportsClearsSelection(t *testing.T) {
	a := newTestApp(t)
	press(a, keyRunes("7"), tea.KeyMsg{Type: tea.KeyEnter})
	if !a.nav.ShowingDetail() {
		t.Fatal("enter on the report list should open the detail view")
	}
	press(a, keyRunes("2"))
	if a.nav.SelectedReportID() != "" {
		t.Error("switching views should clear the report selection")
	}
	// Returning to reports lands on the list, not a stale detail.
	press(a, keyRunes("7"))
	if a.nav.ShowingDetail() {
		t.Error("re-entering reports should start on the list")
	}
}

func TestOpenDialogCapturesKeys(t *testing.T) {
	a := newTestApp(t)
	press(a, keyRunes("2"), keyRunes("n"))
	if !a.models.capturing() {
		t.Fatal("model dialog should capture keys")
	}
	// "q" is quit globally but plain text while a dialog is open.
	press(a, keyRunes("q"))
	if !a.models.capturing() {
		t.Error("dialog should stay open after typing q")
	}
	press(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.models.capturing() {
		t.Error("esc should close the dialog")
	}
}

func TestModelDialogCommit(t *testing.T) {
	a := newTestApp(t)
	press(a, keyRunes("2"), keyRunes("n"))

	// Name field is focused first; endpoint sits three rows below.
	press(a, keyRunes("边界探针"))
	press(a, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	press(a, keyRunes("https://api.example.com/v1"))
	press(a, tea.KeyMsg{Type: tea.KeyEnter})

	if a.models.capturing() {
		t.Fatal("a valid commit should close the dialog")
	}
	if got := a.store.Models.Len(); got != 4 {
		t.Fatalf("models after commit = %d, want 4", got)
	}
	m, ok := a.store.Models.First()
	if !ok || m.Name != "边界探针" {
		t.Errorf("newest model = %+v, want the committed one first", m)
	}
	if m.LatencyMS != 100 {
		t.Errorf("latency = %d, want the probe's 100", m.LatencyMS)
	}
}

func TestModelDialogCommitGate(t *testing.T) {
	a := newTestApp(t)
	press(a, keyRunes("2"), keyRunes("n"))
	// Name without endpoint: enter must be a no-op.
	press(a, keyRunes("缺接口模型"), tea.KeyMsg{Type: tea.KeyEnter})
	if !a.models.capturing() {
		t.Error("dialog should stay open while the commit gate fails")
	}
	if got := a.store.Models.Len(); got != 3 {
		t.Errorf("models = %d, want no change", got)
	}
}

func TestToolDialogCommitDefaults(t *testing.T) {
	a := newTestApp(t)
	press(a, keyRunes("3"), keyRunes("n"))
	press(a, keyRunes("PromptScan"), tea.KeyMsg{Type: tea.KeyEnter})

	tool, ok := a.store.Tools.First()
	if !ok || tool.Name != "PromptScan" {
		t.Fatalf("newest tool = %+v, want PromptScan first", tool)
	}
	if tool.Version != "1.0.0" {
		t.Errorf("version = %q, want default 1.0.0", tool.Version)
	}
	if tool.Author != "User" {
		t.Errorf("author = %q, want User", tool.Author)
	}
}

func TestStrategyEditRoundTrip(t *testing.T) {
	a := newTestApp(t)
	press(a, keyRunes("5"), keyRunes("e"))
	if !a.strategies.capturing() {
		t.Fatal("e should open the wizard on the selected strategy")
	}
	if !a.strategies.draft.Editing() {
		t.Fatal("wizard should be in edit mode")
	}

	// Walk all three steps without touching anything.
	press(a, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})
	if a.strategies.capturing() {
		t.Fatal("the last step's enter should commit and close")
	}

	if got := a.store.Strategies.Len(); got != 1 {
		t.Fatalf("strategies = %d, want the edit to replace in place", got)
	}
	s, ok := a.store.Strategies.ByID("s1")
	if !ok {
		t.Fatal("edited strategy should keep its id")
	}
	if s.Name != "通用 LLM V1.0 - 安全加强版" {
		t.Errorf("name = %q, want it preserved through the form round trip", s.Name)
	}
	if len(s.Metrics) != 2 {
		t.Errorf("metrics = %d, want the existing rows preserved", len(s.Metrics))
	}
}

func TestStrategyCreatePrepends(t *testing.T) {
	a := newTestApp(t)
	press(a, keyRunes("5"), keyRunes("n"))
	press(a, keyRunes("红队快测"))
	press(a, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})

	if got := a.store.Strategies.Len(); got != 2 {
		t.Fatalf("strategies = %d, want 2", got)
	}
	s, _ := a.store.Strategies.First()
	if s.Name != "红队快测" {
		t.Errorf("newest strategy = %q, want the created one first", s.Name)
	}
	if s.TemplateID == "" {
		t.Error("created strategy should carry the selected template")
	}
}

func TestDatasetFilterKeys(t *testing.T) {
	a := newTestApp(t)
	press(a, keyRunes("6"))

	press(a, tea.KeyMsg{Type: tea.KeyRight})
	if got := a.datasets.filter.Category; string(got) != "security" {
		t.Errorf("category after → = %q, want security", got)
	}

	// f steps the sub-category off All onto the first concrete module.
	press(a, keyRunes("f"))
	if a.datasets.filter.SubCategory == "All" {
		t.Error("f should advance the sub-category selection")
	}

	// Moving the category resets the drill-down.
	press(a, tea.KeyMsg{Type: tea.KeyLeft})
	if a.datasets.filter.SubCategory != "All" {
		t.Error("category change should reset the sub-category")
	}
}

func TestDatasetSearchCapture(t *testing.T) {
	a := newTestApp(t)
	press(a, keyRunes("6"), keyRunes("/"))
	if !a.datasets.capturing() {
		t.Fatal("search box should capture keys")
	}
	press(a, keyRunes("owasp"))
	if a.datasets.filter.Search != "owasp" {
		t.Errorf("search = %q, want the typed query", a.datasets.filter.Search)
	}
	got := a.datasets.filter.Apply(a.store.Datasets.All())
	if len(got) != 1 || got[0].ID != "d6" {
		t.Errorf("filtered = %v, want only d6", got)
	}
	// Enter keeps the query, esc clears it.
	press(a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.datasets.capturing() || a.datasets.filter.Search != "owasp" {
		t.Error("enter should close the box and keep the query")
	}
	press(a, keyRunes("/"), tea.KeyMsg{Type: tea.KeyEsc})
	if a.datasets.filter.Search != "" {
		t.Error("esc should clear the query")
	}
}

func TestAnalysisStaleResultDropped(t *testing.T) {
	a := newTestApp(t)
	press(a, keyRunes("7"), tea.KeyMsg{Type: tea.KeyEnter})
	reportID := a.nav.SelectedReportID()

	_, cmd := a.Update(keyRunes("a"))
	if cmd == nil {
		t.Fatal("a should start analysis")
	}
	result := cmd()

	// Navigate away before the answer lands.
	press(a, tea.KeyMsg{Type: tea.KeyEsc})
	press(a, result)
	if a.reports.analysis != "" {
		t.Error("stale analysis should be dropped")
	}

	// With the report open the same answer is kept.
	press(a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.nav.SelectedReportID() != reportID {
		t.Fatalf("expected the same report selected again")
	}
	_, cmd = a.Update(keyRunes("a"))
	press(a, cmd())
	if a.reports.analysis != analyze.MsgUnavailable {
		t.Errorf("analysis = %q, want the no-credential message", a.reports.analysis)
	}
}

func TestCycleOption(t *testing.T) {
	opts := []string{"All", "a", "b"}
	tests := []struct {
		cur  string
		want string
	}{
		{"All", "a"},
		{"a", "b"},
		{"b", "All"}, // wraps
		{"gone", "All"},
	}
	for _, tt := range tests {
		if got := cycleOption(opts, tt.cur); got != tt.want {
			t.Errorf("cycleOption(%q) = %q, want %q", tt.cur, got, tt.want)
		}
	}
	if got := cycleOption(nil, "x"); got != "All" {
		t.Errorf("cycleOption(nil) = %q, want the open sentinel", got)
	}
}

func TestViewRendersWithoutSelection(t *testing.T) {
	a := newTestApp(t)
	for key := range viewHotkeys {
		press(a, keyRunes(key))
		if out := a.View(); !strings.Contains(out, "AI 模型测评工作台") {
			t.Errorf("view %q: header missing", key)
		}
	}
}
