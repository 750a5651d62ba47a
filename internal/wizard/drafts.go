// drafts.go — per-entity creation drafts. Each draft starts from the same
// defaults its dialog shows, reports commit readiness, and builds the final
// entity on Commit. Commit must only be called when CanCommit allows it;
// the dialogs keep their confirm action disabled otherwise.
package wizard

import (
	"strings"
	"time"

	"evalboard/internal/domain"
	"evalboard/internal/probe"
	"evalboard/internal/store"
)

// ---------------------------------------------------------------------------
// Model registration
// ---------------------------------------------------------------------------

// ModelDraft collects the fields of the model registration dialog. APIKey is
// accepted for completeness but not persisted: credentials never enter the
// store.
type ModelDraft struct {
	Name     string
	Category domain.ModelCategory
	Stage    domain.ModelStage
	Endpoint string
	APIKey   string
}

// NewModelDraft returns the dialog defaults.
func NewModelDraft() ModelDraft {
	return ModelDraft{Category: domain.ModelLLM, Stage: domain.StageRuntime}
}

// CanCommit requires a name and an endpoint.
func (d ModelDraft) CanCommit() bool {
	return d.Name != "" && d.Endpoint != ""
}

// Commit registers the model, newest-first. Status starts Healthy and the
// latency comes from the probe; a follow-up health check would overwrite
// both.
func (d ModelDraft) Commit(s *store.Store, gen probe.Generator, now time.Time) domain.TargetModel {
	m := domain.TargetModel{
		ID:        domain.NewID("m"),
		Name:      d.Name,
		Category:  d.Category,
		Stage:     d.Stage,
		Endpoint:  d.Endpoint,
		Status:    domain.StatusHealthy,
		AddedAt:   now,
		LatencyMS: gen.Latency(),
	}
	s.Models.Append(m)
	return m
}

// ---------------------------------------------------------------------------
// Task creation
// ---------------------------------------------------------------------------

// TaskDraft collects the fields of the task creation dialog.
type TaskDraft struct {
	Name                 string
	Category             domain.TaskCategory
	ModelID              string
	StrategyID           string
	PollingIntervalMin   int
	RequiresManualReview bool
}

// NewTaskDraft returns the dialog defaults: compliance category, one-shot.
func NewTaskDraft() TaskDraft {
	return TaskDraft{Category: domain.TaskCompliance}
}

// CanCommit requires a name.
func (d TaskDraft) CanCommit() bool { return d.Name != "" }

// Commit creates the task in Pending at zero progress. Unset model or
// strategy bindings fall back to the newest registered entry; the ids stay
// empty only when the respective collection is empty too.
func (d TaskDraft) Commit(s *store.Store, now time.Time) domain.EvaluationTask {
	modelID := d.ModelID
	if modelID == "" {
		if m, ok := s.Models.First(); ok {
			modelID = m.ID
		}
	}
	strategyID := d.StrategyID
	if strategyID == "" {
		if st, ok := s.Strategies.First(); ok {
			strategyID = st.ID
		}
	}
	t := domain.EvaluationTask{
		ID:                   domain.NewID("t"),
		Name:                 d.Name,
		Category:             d.Category,
		ModelID:              modelID,
		StrategyID:           strategyID,
		Status:               domain.TaskPending,
		Progress:             0,
		StartedAt:            now,
		PollingIntervalMin:   d.PollingIntervalMin,
		RequiresManualReview: d.RequiresManualReview,
	}
	s.Tasks.Append(t)
	return t
}

// ---------------------------------------------------------------------------
// Dataset import
// ---------------------------------------------------------------------------

// DatasetDraft collects the fields of the corpus import dialog. TagsText is
// the raw comma-separated tag input; it is split on Commit.
type DatasetDraft struct {
	Name        string
	Category    domain.DatasetCategory
	SubCategory string
	TagsText    string
}

// NewDatasetDraft returns the dialog defaults.
func NewDatasetDraft() DatasetDraft {
	return DatasetDraft{Category: domain.DatasetCompliance}
}

// CanCommit requires a name and a sub-category.
func (d DatasetDraft) CanCommit() bool {
	return d.Name != "" && d.SubCategory != ""
}

// Tags splits the raw tag input on commas, trimming whitespace and dropping
// blanks.
func (d DatasetDraft) Tags() []string {
	var tags []string
	for _, t := range strings.Split(d.TagsText, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Commit imports the dataset. The sample count comes from the probe until a
// real corpus scan replaces it.
func (d DatasetDraft) Commit(s *store.Store, gen probe.Generator, now time.Time) domain.Dataset {
	ds := domain.Dataset{
		ID:          domain.NewID("d"),
		Name:        d.Name,
		Category:    d.Category,
		SubCategory: d.SubCategory,
		SampleCount: gen.SampleCount(),
		Tags:        d.Tags(),
		UpdatedAt:   now,
	}
	s.Datasets.Append(ds)
	return ds
}

// ---------------------------------------------------------------------------
// Tool integration
// ---------------------------------------------------------------------------

// ToolDraft collects the fields of the tool integration dialog.
type ToolDraft struct {
	Name        string
	Category    domain.ToolCategory
	Version     string
	Description string
}

// NewToolDraft returns the dialog defaults.
func NewToolDraft() ToolDraft {
	return ToolDraft{Category: domain.ToolComplianceVerification}
}

// CanCommit requires a name.
func (d ToolDraft) CanCommit() bool { return d.Name != "" }

// Commit integrates the tool as Active. A blank version means 1.0.0.
func (d ToolDraft) Commit(s *store.Store) domain.EvaluationTool {
	version := d.Version
	if version == "" {
		version = "1.0.0"
	}
	t := domain.EvaluationTool{
		ID:          domain.NewID("tool"),
		Name:        d.Name,
		Category:    d.Category,
		Version:     version,
		Description: d.Description,
		Status:      domain.ToolActive,
		Author:      "User",
	}
	s.Tools.Append(t)
	return t
}
