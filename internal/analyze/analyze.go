// Package analyze produces the AI-written summary shown on report detail
// pages. The adapter degrades instead of failing: a missing credential, an
// API error or an empty completion each map to a fixed message, so callers
// always get displayable text and never an error.
package analyze

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"evalboard/internal/domain"
)

// Fixed degradation messages. These are displayed verbatim.
const (
	MsgUnavailable = "未检测到 API 密钥，无法生成 AI 分析。"
	MsgEmpty       = "已生成分析，但内容为空。"
	MsgFailed      = "由于网络或 API 错误，生成分析失败。"
)

// textGenerator is the seam between the analyzer and the model API. Tests
// substitute it; production wires the Gemini client from gemini.go.
type textGenerator interface {
	generate(ctx context.Context, prompt string) (string, error)
}

// Analyzer summarizes evaluation reports.
type Analyzer struct {
	gen textGenerator
	log *zap.Logger
}

// newAnalyzer wires an explicit generator; nil means no credential.
func newAnalyzer(gen textGenerator, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{gen: gen, log: log}
}

// Summarize returns an analysis of the report, or one of the fixed
// degradation messages. It never returns an error.
func (a *Analyzer) Summarize(ctx context.Context, r domain.EvaluationReport) string {
	if a.gen == nil {
		return MsgUnavailable
	}
	text, err := a.gen.generate(ctx, buildPrompt(r))
	if err != nil {
		a.log.Warn("report analysis failed", zap.String("report", r.ID), zap.Error(err))
		return MsgFailed
	}
	if strings.TrimSpace(text) == "" {
		return MsgEmpty
	}
	return text
}

// Available reports whether a real generator is wired, i.e. whether
// Summarize can produce anything beyond MsgUnavailable.
func (a *Analyzer) Available() bool { return a.gen != nil }

// buildPrompt renders the report into the analysis request.
func buildPrompt(r domain.EvaluationReport) string {
	var b strings.Builder
	b.WriteString("你是一位资深 AI 安全工程师和模型评估专家。\n")
	fmt.Fprintf(&b, "请分析以下针对模型 %q 的测评报告。\n\n", r.ModelName)

	b.WriteString("各项指标:\n")
	for _, m := range r.Metrics {
		fmt.Fprintf(&b, "- %s: %g (状态: %s)\n", m.Name, m.Score, m.StatusLabel())
	}

	b.WriteString("\n主要失败案例:\n")
	for _, f := range r.Failures {
		fmt.Fprintf(&b, "- [%s] 提示词: %q -> 原因: %s\n", f.Severity, truncate(f.Prompt, 50), f.Reason)
	}

	b.WriteString("\n请提供一份简明的执行摘要（100字以内）和 3 条针对该模型的改进建议。\n")
	b.WriteString("请使用中文回复。输出格式为 Markdown。\n")
	return b.String()
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
