// Package export renders an evaluation report into a distributable bundle:
// a human-readable Markdown page, the raw report as YAML, and a manifest
// carrying a SHA-256 of the data file so recipients can verify integrity.
//
// Bundle layout:
//   report.md      — formatted report page
//   report.yaml    — the report record itself
//   manifest.yaml  — version, generation info, data-file digest
package export

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"evalboard/internal/domain"
)

// Bundle holds pre-generated file content (path → bytes). Paths are
// relative to the output directory, forward slashes. No files are written
// until WriteBundle, so generation stays a pure function.
type Bundle struct {
	files map[string][]byte
}

// Manifest describes the bundle to its recipient.
type Manifest struct {
	Version    int      `yaml:"version"`
	ReportID   string   `yaml:"report_id"`
	ModelName  string   `yaml:"model_name"`
	ExportedAt string   `yaml:"exported_at"`
	Data       FileMeta `yaml:"data"`
}

// FileMeta identifies one bundled file by path and content digest.
type FileMeta struct {
	Path   string `yaml:"path"`
	SHA256 string `yaml:"sha256"`
}

// GenerateBundle builds all bundle files for the report. The task is
// optional context; reports may outlive the task that produced them.
func GenerateBundle(r domain.EvaluationReport, task *domain.EvaluationTask, now time.Time) (*Bundle, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal report %s: %w", r.ID, err)
	}
	sum := sha256.Sum256(data)

	manifest, err := yaml.Marshal(Manifest{
		Version:    1,
		ReportID:   r.ID,
		ModelName:  r.ModelName,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Data: FileMeta{
			Path:   "report.yaml",
			SHA256: hex.EncodeToString(sum[:]),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}

	return &Bundle{files: map[string][]byte{
		"report.md":     []byte(buildReportPage(r, task)),
		"report.yaml":   data,
		"manifest.yaml": manifest,
	}}, nil
}

// File returns a bundled file's content.
func (b *Bundle) File(path string) ([]byte, bool) {
	c, ok := b.files[path]
	return c, ok
}

// Paths lists the bundled files in sorted order.
func (b *Bundle) Paths() []string {
	paths := make([]string, 0, len(b.files))
	for p := range b.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// WriteBundle writes every file in bundle to outputDir, in sorted path
// order so repeated exports touch the filesystem identically.
func WriteBundle(bundle *Bundle, outputDir string) error {
	for _, p := range bundle.Paths() {
		abs := filepath.Join(outputDir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", filepath.Dir(abs), err)
		}
		if err := os.WriteFile(abs, bundle.files[p], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", abs, err)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Page builder
// ---------------------------------------------------------------------------

// buildReportPage renders report.md.
func buildReportPage(r domain.EvaluationReport, task *domain.EvaluationTask) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# 测评报告 %s\n\n", r.ID)
	fmt.Fprintf(&b, "- **模型**: %s\n", r.ModelName)
	fmt.Fprintf(&b, "- **生成时间**: %s\n", r.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "- **综合得分**: %.1f\n", r.OverallScore)
	if task != nil {
		fmt.Fprintf(&b, "- **关联任务**: %s (%s)\n", task.Name, task.Category.Label())
	}

	if len(r.Metrics) > 0 {
		b.WriteString("\n## 指标明细\n\n")
		b.WriteString("| 指标 | 得分 | 满分 | 状态 |\n")
		b.WriteString("|------|------|------|------|\n")
		for _, m := range r.Metrics {
			fmt.Fprintf(&b, "| %s | %.1f | %.0f | %s |\n", m.Name, m.Score, m.MaxScore, m.StatusLabel())
		}
	}

	if len(r.History) > 0 {
		b.WriteString("\n## 得分趋势\n\n")
		b.WriteString("| Epoch | 得分 |\n")
		b.WriteString("|-------|------|\n")
		for _, h := range r.History {
			fmt.Fprintf(&b, "| %d | %.1f |\n", h.Epoch, h.Score)
		}
	}

	if len(r.Failures) > 0 {
		b.WriteString("\n## 失败案例\n\n")
		for _, f := range r.Failures {
			fmt.Fprintf(&b, "### [%s] %s\n\n", f.Severity, f.ID)
			fmt.Fprintf(&b, "- **提示词**: %s\n", f.Prompt)
			fmt.Fprintf(&b, "- **模型输出**: %s\n", f.Response)
			fmt.Fprintf(&b, "- **判定原因**: %s\n\n", f.Reason)
		}
	}

	return b.String()
}
