// reports.go — report list and detail views. The detail view can request an
// AI summary; generation runs as a command and the result carries the report
// id so answers arriving after the user navigated away are dropped.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"evalboard/internal/analyze"
	"evalboard/internal/domain"
	"evalboard/internal/nav"
	"evalboard/internal/store"
)

// analysisTimeout bounds one summary request.
const analysisTimeout = 60 * time.Second

// analysisResultMsg delivers a finished AI summary to the page that asked
// for it.
type analysisResultMsg struct {
	reportID string
	text     string
}

type reportsPage struct {
	store    *store.Store
	analyzer *analyze.Analyzer
	styles   Styles
	log      *zap.Logger

	cursor int

	// analysis holds the summary for analysisFor; analyzing marks an
	// in-flight request.
	analysis    string
	analysisFor string
	analyzing   bool
}

func newReportsPage(s *store.Store, analyzer *analyze.Analyzer, styles Styles, log *zap.Logger) *reportsPage {
	return &reportsPage{store: s, analyzer: analyzer, styles: styles, log: log}
}

func (p *reportsPage) update(n *nav.State, msg tea.KeyMsg) tea.Cmd {
	if n.ShowingDetail() {
		switch msg.String() {
		case "esc":
			n.ClearReport()
			return nil
		case "a":
			return p.requestAnalysis(n.SelectedReportID())
		}
		return nil
	}

	reports := p.store.Reports.All()
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(reports)-1 {
			p.cursor++
		}
	case "enter":
		if len(reports) > 0 {
			n.SelectReport(reports[p.cursor].ID)
		}
	}
	return nil
}

// requestAnalysis starts summary generation for the report. Repeated requests
// for a report whose summary is already present or in flight are ignored.
func (p *reportsPage) requestAnalysis(id string) tea.Cmd {
	if p.analyzing || (p.analysisFor == id && p.analysis != "") {
		return nil
	}
	r, ok := p.store.Reports.ByID(id)
	if !ok {
		return nil
	}
	p.analyzing = true
	p.analysisFor = id
	p.analysis = ""
	analyzer, log := p.analyzer, p.log
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), analysisTimeout)
		defer cancel()
		log.Info("generating report analysis", zap.String("report_id", id))
		return analysisResultMsg{reportID: id, text: analyzer.Summarize(ctx, r)}
	}
}

// receiveAnalysis stores an arrived summary. Results for a report other than
// the one currently open are stale and dropped.
func (p *reportsPage) receiveAnalysis(n *nav.State, msg analysisResultMsg) {
	if msg.reportID != n.SelectedReportID() {
		p.log.Debug("dropping stale analysis", zap.String("report_id", msg.reportID))
		if msg.reportID == p.analysisFor {
			p.analyzing = false
			p.analysisFor = ""
		}
		return
	}
	p.analyzing = false
	p.analysis = msg.text
}

func (p *reportsPage) view(n *nav.State) string {
	if n.ShowingDetail() {
		if r, ok := p.store.Reports.ByID(n.SelectedReportID()); ok {
			return p.detailView(r)
		}
		n.ClearReport()
	}
	return p.listView()
}

func (p *reportsPage) listView() string {
	st := p.styles
	var b strings.Builder
	b.WriteString(st.Title.Render("测评报告管理") + "\n")
	b.WriteString(st.Muted.Render("查看已生成的测评报告，支持 AI 智能分析。") + "\n\n")

	reports := p.store.Reports.All()
	if len(reports) == 0 {
		b.WriteString(st.Muted.Render("（暂无报告）") + "\n")
		return b.String()
	}
	for i, r := range reports {
		marker := "  "
		if i == p.cursor {
			marker = st.Title.Render("❯ ")
		}
		score := scoreCell(st, r.OverallScore)
		fmt.Fprintf(&b, "%s%s  %s\n  综合得分 %s · 指标 %d · 失败样本 %d · %s\n",
			marker, st.Bold.Render(r.ID), st.Muted.Render(r.ModelName),
			score, len(r.Metrics), len(r.Failures),
			st.Muted.Render(r.GeneratedAt.Format("2006-01-02 15:04")))
	}
	return b.String()
}

func (p *reportsPage) detailView(r domain.EvaluationReport) string {
	st := p.styles
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", st.Title.Render("测评报告 "+r.ID), st.Muted.Render(r.GeneratedAt.Format("2006-01-02 15:04")))
	fmt.Fprintf(&b, "%s %s   %s %s", st.Label.Render("目标模型:"), r.ModelName,
		st.Label.Render("综合得分:"), scoreCell(st, r.OverallScore))
	if t, ok := p.store.Tasks.ByID(r.TaskID); ok {
		fmt.Fprintf(&b, "   %s %s", st.Label.Render("关联任务:"), t.Name)
	}
	b.WriteString("\n\n")

	b.WriteString(st.Bold.Render("指标明细") + "\n")
	tbl := NewTable("指标", "得分", "满分", "判定")
	for _, m := range r.Metrics {
		verdict := st.Success.Render(m.StatusLabel())
		if !m.Passed {
			verdict = st.Error.Render(m.StatusLabel())
		}
		tbl.AddRow(m.Name, fmt.Sprintf("%.1f", m.Score), fmt.Sprintf("%.0f", m.MaxScore), verdict)
	}
	b.WriteString(tbl.View(st) + "\n")

	if len(r.History) > 0 {
		b.WriteString(st.Bold.Render("得分趋势") + "\n")
		for _, h := range r.History {
			bar := strings.Repeat("█", int(h.Score)/4)
			fmt.Fprintf(&b, "  Epoch %d %s %.0f\n", h.Epoch, st.Info.Render(bar), h.Score)
		}
		b.WriteString("\n")
	}

	if len(r.Failures) > 0 {
		b.WriteString(st.Bold.Render("失败样本") + "\n")
		for _, f := range r.Failures {
			fmt.Fprintf(&b, "  %s %s\n    提示词: %s\n    响应: %s\n    原因: %s\n",
				severityCell(st, f.Severity), st.Bold.Render(f.ID), f.Prompt, st.Muted.Render(f.Response), f.Reason)
		}
		b.WriteString("\n")
	}

	b.WriteString(st.Bold.Render("AI 智能分析") + "\n")
	switch {
	case p.analyzing && p.analysisFor == r.ID:
		b.WriteString(st.Info.Render("正在生成 AI 分析...") + "\n")
	case p.analysisFor == r.ID && p.analysis != "":
		b.WriteString(p.analysis + "\n")
	case !p.analyzer.Available():
		b.WriteString(st.Warning.Render(analyze.MsgUnavailable) + "\n")
	default:
		b.WriteString(st.Muted.Render("按 a 生成本报告的 AI 分析。") + "\n")
	}
	return b.String()
}

func scoreCell(st Styles, score float64) string {
	s := fmt.Sprintf("%.0f", score)
	switch {
	case score >= 85:
		return st.Success.Render(s)
	case score >= 60:
		return st.Warning.Render(s)
	default:
		return st.Error.Render(s)
	}
}

func severityCell(st Styles, s domain.Severity) string {
	label := fmt.Sprintf("[%s]", s)
	switch s {
	case domain.SeverityCritical, domain.SeverityHigh:
		return st.Error.Render(label)
	case domain.SeverityMedium:
		return st.Warning.Render(label)
	default:
		return st.Muted.Render(label)
	}
}
