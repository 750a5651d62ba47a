package export

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"evalboard/internal/domain"
	"evalboard/internal/store"
)

var exportNow = time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)

func seedReport(t *testing.T) (domain.EvaluationReport, *domain.EvaluationTask) {
	t.Helper()
	s, err := store.Seeded()
	if err != nil {
		t.Fatalf("Seeded: %v", err)
	}
	r, ok := s.Reports.First()
	if !ok {
		t.Fatal("no seed report")
	}
	task, _ := s.Tasks.ByID(r.TaskID)
	return r, &task
}

func TestGenerateBundleFiles(t *testing.T) {
	r, task := seedReport(t)
	b, err := GenerateBundle(r, task, exportNow)
	if err != nil {
		t.Fatalf("GenerateBundle: %v", err)
	}

	want := []string{"manifest.yaml", "report.md", "report.yaml"}
	got := b.Paths()
	if len(got) != len(want) {
		t.Fatalf("Paths() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Paths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestManifestDigestMatchesData(t *testing.T) {
	r, task := seedReport(t)
	b, err := GenerateBundle(r, task, exportNow)
	if err != nil {
		t.Fatalf("GenerateBundle: %v", err)
	}

	raw, _ := b.File("manifest.yaml")
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal manifest: %v", err)
	}
	if m.Version != 1 || m.ReportID != r.ID || m.Data.Path != "report.yaml" {
		t.Errorf("manifest = %+v", m)
	}
	if m.ExportedAt != "2025-06-01T08:30:00Z" {
		t.Errorf("ExportedAt = %q", m.ExportedAt)
	}

	data, _ := b.File("report.yaml")
	sum := sha256.Sum256(data)
	if m.Data.SHA256 != hex.EncodeToString(sum[:]) {
		t.Error("manifest digest does not match report.yaml")
	}
}

func TestReportDataRoundTrips(t *testing.T) {
	r, task := seedReport(t)
	b, err := GenerateBundle(r, task, exportNow)
	if err != nil {
		t.Fatalf("GenerateBundle: %v", err)
	}

	data, _ := b.File("report.yaml")
	var decoded domain.EvaluationReport
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal report.yaml: %v", err)
	}
	if decoded.ID != r.ID || decoded.OverallScore != r.OverallScore {
		t.Errorf("round trip lost fields: %+v", decoded)
	}
	if len(decoded.Failures) != len(r.Failures) {
		t.Errorf("failures = %d, want %d", len(decoded.Failures), len(r.Failures))
	}
}

func TestReportPageContents(t *testing.T) {
	r, task := seedReport(t)
	b, err := GenerateBundle(r, task, exportNow)
	if err != nil {
		t.Fatalf("GenerateBundle: %v", err)
	}

	raw, _ := b.File("report.md")
	page := string(raw)
	for _, want := range []string{
		"# 测评报告 " + r.ID,
		"Gemini 2.5 Flash",
		"## 指标明细",
		"内容合规率",
		"## 得分趋势",
		"## 失败案例",
		"[Critical]",
		"合规性例行扫描", // linked task name
	} {
		if !strings.Contains(page, want) {
			t.Errorf("report.md missing %q", want)
		}
	}
}

func TestReportPageWithoutTask(t *testing.T) {
	r, _ := seedReport(t)
	b, err := GenerateBundle(r, nil, exportNow)
	if err != nil {
		t.Fatalf("GenerateBundle: %v", err)
	}
	raw, _ := b.File("report.md")
	if strings.Contains(string(raw), "关联任务") {
		t.Error("dangling task rendered a task line")
	}
}

func TestWriteBundle(t *testing.T) {
	r, task := seedReport(t)
	b, err := GenerateBundle(r, task, exportNow)
	if err != nil {
		t.Fatalf("GenerateBundle: %v", err)
	}

	dir := t.TempDir()
	if err := WriteBundle(b, filepath.Join(dir, "out")); err != nil {
		t.Fatalf("WriteBundle: %v", err)
	}
	for _, p := range b.Paths() {
		onDisk, err := os.ReadFile(filepath.Join(dir, "out", p))
		if err != nil {
			t.Fatalf("read %s: %v", p, err)
		}
		want, _ := b.File(p)
		if string(onDisk) != string(want) {
			t.Errorf("%s differs on disk", p)
		}
	}
}
