// metric.go — metric thresholds carried by evaluation strategies.
package domain

import "fmt"

// ThresholdOp compares an observed metric value against a target.
type ThresholdOp string

const (
	OpGreater      ThresholdOp = ">"
	OpGreaterEqual ThresholdOp = ">="
	OpLess         ThresholdOp = "<"
	OpLessEqual    ThresholdOp = "<="
)

// ThresholdOps lists the supported comparison operators.
func ThresholdOps() []ThresholdOp {
	return []ThresholdOp{OpGreater, OpGreaterEqual, OpLess, OpLessEqual}
}

// MetricThreshold is one metric row of a strategy: a named measurement and
// the comparison a run must satisfy to pass it.
type MetricThreshold struct {
	Name      string      `yaml:"name"`
	Operator  ThresholdOp `yaml:"operator"`
	Threshold float64     `yaml:"threshold"`
	Unit      string      `yaml:"unit,omitempty"` // "%", "ms", "" for a bare score
}

// Evaluate reports whether an observed value satisfies the threshold.
// Unknown operators fail closed.
func (m MetricThreshold) Evaluate(actual float64) bool {
	switch m.Operator {
	case OpGreater:
		return actual > m.Threshold
	case OpGreaterEqual:
		return actual >= m.Threshold
	case OpLess:
		return actual < m.Threshold
	case OpLessEqual:
		return actual <= m.Threshold
	default:
		return false
	}
}

// String renders the threshold as it appears in strategy listings,
// e.g. "准确率 >= 95%".
func (m MetricThreshold) String() string {
	return fmt.Sprintf("%s %s %g%s", m.Name, m.Operator, m.Threshold, m.Unit)
}
