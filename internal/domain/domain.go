// Package domain defines the six core entity types of the evaluation
// dashboard: target models, evaluation tasks, strategies, datasets, tools
// and reports.
//
// Enumerated categories are typed string constants; presentation text lives
// in separate label tables (labels.go) so identity never depends on display
// wording.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Target models
// ---------------------------------------------------------------------------

// ModelCategory classifies a registered model.
type ModelCategory string

const (
	ModelLLM        ModelCategory = "llm"
	ModelMultimodal ModelCategory = "multimodal"
	ModelVertical   ModelCategory = "vertical"
)

// ModelCategories lists all model categories in display order.
func ModelCategories() []ModelCategory {
	return []ModelCategory{ModelLLM, ModelMultimodal, ModelVertical}
}

// ModelStage is the lifecycle stage a model is evaluated in.
type ModelStage string

const (
	StagePretraining   ModelStage = "pretraining"
	StageFinetuning    ModelStage = "finetuning"
	StageReinforcement ModelStage = "reinforcement"
	StageRuntime       ModelStage = "runtime"
)

// ModelStages lists all lifecycle stages in pipeline order.
func ModelStages() []ModelStage {
	return []ModelStage{StagePretraining, StageFinetuning, StageReinforcement, StageRuntime}
}

// ModelStatus is the last observed health of a model endpoint.
type ModelStatus string

const (
	StatusHealthy  ModelStatus = "Healthy"
	StatusDegraded ModelStatus = "Degraded"
	StatusOffline  ModelStatus = "Offline"
)

// TargetModel is a model registered for evaluation.
//
// Status and LatencyMS are placeholder measurements produced by an injected
// generator at registration time; a real health-check collaborator would
// replace them.
type TargetModel struct {
	ID        string        `yaml:"id"`
	Name      string        `yaml:"name"`
	Category  ModelCategory `yaml:"category"`
	Stage     ModelStage    `yaml:"stage"`
	Endpoint  string        `yaml:"endpoint"`
	Status    ModelStatus   `yaml:"status"`
	AddedAt   time.Time     `yaml:"added_at"`
	LatencyMS int           `yaml:"latency_ms"`
}

// EntityID implements store.Entity.
func (m TargetModel) EntityID() string { return m.ID }

// ---------------------------------------------------------------------------
// Evaluation tasks
// ---------------------------------------------------------------------------

// TaskCategory classifies an evaluation task.
type TaskCategory string

const (
	TaskCompliance TaskCategory = "compliance"
	TaskCapability TaskCategory = "capability"
	TaskSecurity   TaskCategory = "security"
)

// TaskCategories lists all task categories in display order.
func TaskCategories() []TaskCategory {
	return []TaskCategory{TaskCompliance, TaskCapability, TaskSecurity}
}

// TaskStatus is the execution state of a task.
type TaskStatus string

const (
	TaskPending   TaskStatus = "Pending"
	TaskRunning   TaskStatus = "Running"
	TaskCompleted TaskStatus = "Completed"
	TaskFailed    TaskStatus = "Failed"
)

// EvaluationTask is one scheduled or executed evaluation run.
//
// PollingIntervalMin of 0 means a one-shot task; a positive value is a
// declared re-run cadence for an external executor, nothing in this core
// drives it. Progress must be monotonically non-decreasing while the status
// is Running — a contract on the executor, not enforced here.
type EvaluationTask struct {
	ID                   string       `yaml:"id"`
	Name                 string       `yaml:"name"`
	Category             TaskCategory `yaml:"category"`
	ModelID              string       `yaml:"model_id"`
	StrategyID           string       `yaml:"strategy_id"`
	Status               TaskStatus   `yaml:"status"`
	Progress             int          `yaml:"progress"` // 0-100
	StartedAt            time.Time    `yaml:"started_at"`
	PollingIntervalMin   int          `yaml:"polling_interval_min,omitempty"`
	RequiresManualReview bool         `yaml:"requires_manual_review"`
}

// EntityID implements store.Entity.
func (t EvaluationTask) EntityID() string { return t.ID }

// FormatInterval renders a polling interval in minutes as a short cadence
// label ("单次", "每 30m", "每 6h", "每 2d").
func FormatInterval(minutes int) string {
	switch {
	case minutes <= 0:
		return "单次"
	case minutes < 60:
		return fmt.Sprintf("每 %dm", minutes)
	case minutes < 1440:
		return fmt.Sprintf("每 %dh", (minutes+30)/60)
	default:
		return fmt.Sprintf("每 %dd", (minutes+720)/1440)
	}
}

// ---------------------------------------------------------------------------
// Evaluation strategies
// ---------------------------------------------------------------------------

// EvaluationStrategy bundles metrics, datasets and a report template into a
// reusable evaluation configuration.
type EvaluationStrategy struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Stages      []string          `yaml:"stages"`
	Metrics     []MetricThreshold `yaml:"metrics"`
	DatasetIDs  []string          `yaml:"dataset_ids"`
	TemplateID  string            `yaml:"template_id"`
}

// EntityID implements store.Entity.
func (s EvaluationStrategy) EntityID() string { return s.ID }

// ReportTemplate is one entry of the fixed report-template catalog.
type ReportTemplate struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ---------------------------------------------------------------------------
// Datasets
// ---------------------------------------------------------------------------

// DatasetCategory is the top level of the dataset classification hierarchy.
type DatasetCategory string

const (
	DatasetCompliance DatasetCategory = "compliance"
	DatasetSecurity   DatasetCategory = "security"
	DatasetCapability DatasetCategory = "capability"
)

// DatasetCategories lists all dataset categories in display order.
func DatasetCategories() []DatasetCategory {
	return []DatasetCategory{DatasetCompliance, DatasetSecurity, DatasetCapability}
}

// Dataset is one evaluation corpus. SubCategory and Tags form the second and
// third classification levels; both are free text, the filter hierarchy is
// derived from observed values rather than stored anywhere.
type Dataset struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Category    DatasetCategory `yaml:"category"`
	SubCategory string          `yaml:"sub_category"`
	SampleCount int             `yaml:"sample_count"`
	Tags        []string        `yaml:"tags"`
	UpdatedAt   time.Time       `yaml:"updated_at"`
}

// EntityID implements store.Entity.
func (d Dataset) EntityID() string { return d.ID }

// HasTag reports whether tag is among the dataset's tags.
func (d Dataset) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Evaluation tools
// ---------------------------------------------------------------------------

// ToolCategory is one of the six fixed tool categories.
type ToolCategory string

const (
	ToolComplianceVerification ToolCategory = "compliance-verification"
	ToolSecurityPenetration    ToolCategory = "security-penetration"
	ToolRiskDetection          ToolCategory = "risk-detection"
	ToolCapabilityAssessment   ToolCategory = "capability-assessment"
	ToolAdversarialAttack      ToolCategory = "adversarial-attack"
	ToolPerformanceTesting     ToolCategory = "performance-testing"
)

// ToolCategories lists all tool categories in display order.
func ToolCategories() []ToolCategory {
	return []ToolCategory{
		ToolComplianceVerification,
		ToolSecurityPenetration,
		ToolRiskDetection,
		ToolCapabilityAssessment,
		ToolAdversarialAttack,
		ToolPerformanceTesting,
	}
}

// ToolStatus is the operational state of a tool integration.
type ToolStatus string

const (
	ToolActive          ToolStatus = "Active"
	ToolInactive        ToolStatus = "Inactive"
	ToolUpdateAvailable ToolStatus = "Update Available"
)

// EvaluationTool is one integrated evaluation tool.
type EvaluationTool struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Category    ToolCategory `yaml:"category"`
	Version     string       `yaml:"version"`
	Description string       `yaml:"description"`
	Status      ToolStatus   `yaml:"status"`
	Author      string       `yaml:"author"`
}

// EntityID implements store.Entity.
func (t EvaluationTool) EntityID() string { return t.ID }

// ---------------------------------------------------------------------------
// Reports
// ---------------------------------------------------------------------------

// Severity grades a report failure case.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// ReportMetric is one scored metric inside a report.
type ReportMetric struct {
	Name     string  `yaml:"name"`
	Score    float64 `yaml:"score"`
	MaxScore float64 `yaml:"max_score"`
	Passed   bool    `yaml:"passed"`
}

// StatusLabel renders the pass/fail flag the way report views print it.
func (m ReportMetric) StatusLabel() string {
	if m.Passed {
		return "Pass"
	}
	return "Fail"
}

// ReportFailure is one failed sample recorded in a report.
type ReportFailure struct {
	ID       string   `yaml:"id"`
	Prompt   string   `yaml:"prompt"`
	Response string   `yaml:"response"`
	Reason   string   `yaml:"reason"`
	Severity Severity `yaml:"severity"`
}

// HistoryPoint is one entry of a report's score-over-epoch series.
type HistoryPoint struct {
	Epoch int     `yaml:"epoch"`
	Score float64 `yaml:"score"`
}

// EvaluationReport is a finished evaluation result. Reports are read-only in
// this core: the collection is seeded and never appended to by user action.
// TaskID may dangle; lookups must tolerate a missing task.
type EvaluationReport struct {
	ID           string          `yaml:"id"`
	TaskID       string          `yaml:"task_id"`
	ModelName    string          `yaml:"model_name"`
	GeneratedAt  time.Time       `yaml:"generated_at"`
	OverallScore float64         `yaml:"overall_score"`
	Metrics      []ReportMetric  `yaml:"metrics"`
	History      []HistoryPoint  `yaml:"history"`
	Failures     []ReportFailure `yaml:"failures"`
}

// EntityID implements store.Entity.
func (r EvaluationReport) EntityID() string { return r.ID }

// ---------------------------------------------------------------------------
// Identifiers
// ---------------------------------------------------------------------------

// NewID returns a fresh collision-free entity id with a short type prefix
// ("m", "t", "ds", ...).
func NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
