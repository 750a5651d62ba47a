package domain

import (
	"strings"
	"testing"
)

func TestMetricThresholdEvaluate(t *testing.T) {
	cases := []struct {
		name   string
		m      MetricThreshold
		actual float64
		want   bool
	}{
		{"greater pass", MetricThreshold{Name: "准确率", Operator: OpGreater, Threshold: 90}, 95, true},
		{"greater boundary fails", MetricThreshold{Name: "准确率", Operator: OpGreater, Threshold: 90}, 90, false},
		{"greater-equal boundary passes", MetricThreshold{Name: "准确率", Operator: OpGreaterEqual, Threshold: 90}, 90, true},
		{"less pass", MetricThreshold{Name: "延迟", Operator: OpLess, Threshold: 200}, 120, true},
		{"less boundary fails", MetricThreshold{Name: "延迟", Operator: OpLess, Threshold: 200}, 200, false},
		{"less-equal boundary passes", MetricThreshold{Name: "延迟", Operator: OpLessEqual, Threshold: 200}, 200, true},
		{"unknown operator fails closed", MetricThreshold{Name: "x", Operator: "!=", Threshold: 1}, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.Evaluate(tc.actual); got != tc.want {
				t.Errorf("Evaluate(%v) = %v, want %v", tc.actual, got, tc.want)
			}
		})
	}
}

func TestMetricThresholdString(t *testing.T) {
	m := MetricThreshold{Name: "准确率", Operator: OpGreaterEqual, Threshold: 95, Unit: "%"}
	if got := m.String(); got != "准确率 >= 95%" {
		t.Errorf("String() = %q", got)
	}
	// No unit renders a bare number.
	m = MetricThreshold{Name: "得分", Operator: OpGreater, Threshold: 0.8}
	if got := m.String(); got != "得分 > 0.8" {
		t.Errorf("String() = %q", got)
	}
}

func TestFormatInterval(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "单次"},      // zero means one-shot
		{-5, "单次"},     // negative treated as one-shot
		{30, "每 30m"},  // sub-hour stays in minutes
		{60, "每 1h"},   // exact hour
		{720, "每 12h"}, // half day
		{1440, "每 1d"}, // one day
		{10080, "每 7d"},
	}
	for _, tc := range cases {
		if got := FormatInterval(tc.minutes); got != tc.want {
			t.Errorf("FormatInterval(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestCategoryLabels(t *testing.T) {
	if got := ModelLLM.Label(); got != "LLM 大模型" {
		t.Errorf("ModelLLM.Label() = %q", got)
	}
	if got := DatasetSecurity.Label(); got != "AI 安全类" {
		t.Errorf("DatasetSecurity.Label() = %q", got)
	}
	if got := ToolAdversarialAttack.Label(); got != "对抗攻击工具" {
		t.Errorf("ToolAdversarialAttack.Label() = %q", got)
	}
	// Unknown values fall through to their raw identity.
	if got := ModelCategory("speech").Label(); got != "speech" {
		t.Errorf("unknown category Label() = %q", got)
	}
}

func TestLabelCoverage(t *testing.T) {
	// Every declared constant must have display text distinct from its
	// identity value.
	for _, c := range ModelCategories() {
		if c.Label() == string(c) {
			t.Errorf("ModelCategory %q has no label", c)
		}
	}
	for _, s := range ModelStages() {
		if s.Label() == string(s) {
			t.Errorf("ModelStage %q has no label", s)
		}
	}
	for _, c := range TaskCategories() {
		if c.Label() == string(c) {
			t.Errorf("TaskCategory %q has no label", c)
		}
	}
	for _, c := range DatasetCategories() {
		if c.Label() == string(c) {
			t.Errorf("DatasetCategory %q has no label", c)
		}
	}
	for _, c := range ToolCategories() {
		if c.Label() == string(c) {
			t.Errorf("ToolCategory %q has no label", c)
		}
	}
}

func TestDatasetHasTag(t *testing.T) {
	d := Dataset{Tags: []string{"隐私计算", "访问控制"}}
	if !d.HasTag("访问控制") {
		t.Error("expected tag to be found")
	}
	if d.HasTag("肖像权") {
		t.Error("unexpected tag match")
	}
	if (Dataset{}).HasTag("x") {
		t.Error("empty dataset should match nothing")
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID("m"), NewID("m")
	if !strings.HasPrefix(a, "m-") {
		t.Errorf("NewID prefix missing: %q", a)
	}
	if a == b {
		t.Error("ids must be unique")
	}
}

func TestReportMetricStatusLabel(t *testing.T) {
	if got := (ReportMetric{Passed: true}).StatusLabel(); got != "Pass" {
		t.Errorf("StatusLabel() = %q", got)
	}
	if got := (ReportMetric{}).StatusLabel(); got != "Fail" {
		t.Errorf("StatusLabel() = %q", got)
	}
}
