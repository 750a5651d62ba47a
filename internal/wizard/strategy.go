// strategy.go — the three-step strategy configuration wizard: metric rows,
// dataset selection, report template. Unlike the single-step dialogs the
// strategy dialog also edits existing entries, so its draft carries the id
// of the strategy being reconfigured.
package wizard

import (
	"evalboard/internal/domain"
	"evalboard/internal/store"
)

// StrategyStepCount is the number of wizard pages.
const StrategyStepCount = 3

// StrategySteps are the wizard page titles in order.
var StrategySteps = []string{"测评指标设置", "选择测评题集", "报告模版设置"}

// defaultStages is the pipeline a fresh strategy starts with.
func defaultStages() []string {
	return []string{"预测评", "主测评", "结果分析"}
}

// StrategyDraft is the working copy edited across the wizard steps. Commit
// is intentionally not gated: an empty strategy is a valid, if useless,
// configuration the user may flesh out later by editing.
type StrategyDraft struct {
	editID string

	Name        string
	Description string
	Stages      []string
	Metrics     []domain.MetricThreshold
	DatasetIDs  []string
	TemplateID  string
}

// NewStrategyDraft starts a blank draft for creating a strategy.
func NewStrategyDraft() StrategyDraft {
	return StrategyDraft{Stages: defaultStages()}
}

// EditStrategyDraft starts a draft pre-filled from an existing strategy.
// Slices are copied so wizard edits stay invisible until Commit.
func EditStrategyDraft(s domain.EvaluationStrategy) StrategyDraft {
	d := StrategyDraft{
		editID:      s.ID,
		Name:        s.Name,
		Description: s.Description,
		Stages:      make([]string, len(s.Stages)),
		Metrics:     make([]domain.MetricThreshold, len(s.Metrics)),
		DatasetIDs:  make([]string, len(s.DatasetIDs)),
		TemplateID:  s.TemplateID,
	}
	copy(d.Stages, s.Stages)
	copy(d.Metrics, s.Metrics)
	copy(d.DatasetIDs, s.DatasetIDs)
	return d
}

// EditID is the id of the strategy being reconfigured, empty when creating.
func (d StrategyDraft) EditID() string { return d.editID }

// Editing reports whether Commit will replace an existing strategy.
func (d StrategyDraft) Editing() bool { return d.editID != "" }

// AddMetric appends a blank metric row with the dialog's defaults.
func (d *StrategyDraft) AddMetric() {
	d.Metrics = append(d.Metrics, domain.MetricThreshold{
		Operator: domain.OpGreater,
		Unit:     "%",
	})
}

// RemoveMetric deletes the metric row at i. Out-of-range indexes are
// ignored.
func (d *StrategyDraft) RemoveMetric(i int) {
	if i < 0 || i >= len(d.Metrics) {
		return
	}
	d.Metrics = append(d.Metrics[:i], d.Metrics[i+1:]...)
}

// ToggleDataset adds the dataset to the selection, or removes it when
// already selected.
func (d *StrategyDraft) ToggleDataset(id string) {
	for i, did := range d.DatasetIDs {
		if did == id {
			d.DatasetIDs = append(d.DatasetIDs[:i], d.DatasetIDs[i+1:]...)
			return
		}
	}
	d.DatasetIDs = append(d.DatasetIDs, id)
}

// HasDataset reports whether the dataset is currently selected.
func (d StrategyDraft) HasDataset(id string) bool {
	for _, did := range d.DatasetIDs {
		if did == id {
			return true
		}
	}
	return false
}

// Commit writes the draft into the store: editing replaces the existing
// strategy in place under its original id, creating prepends a new one.
// Editing a strategy that has vanished from the store is a no-op.
func (d StrategyDraft) Commit(s *store.Store) domain.EvaluationStrategy {
	st := domain.EvaluationStrategy{
		ID:          d.editID,
		Name:        d.Name,
		Description: d.Description,
		Stages:      d.Stages,
		Metrics:     d.Metrics,
		DatasetIDs:  d.DatasetIDs,
		TemplateID:  d.TemplateID,
	}
	if d.editID != "" {
		s.Strategies.Replace(st)
		return st
	}
	st.ID = domain.NewID("s")
	s.Strategies.Append(st)
	return st
}
