// system.go — dashboard-only system status types. These are display data, not
// stored entities: the dashboard snapshots them from a probe on each refresh.
package domain

// AgentState is the reported condition of an evaluation agent.
type AgentState string

const (
	AgentIdle    AgentState = "Idle"
	AgentWorking AgentState = "Working"
	AgentError   AgentState = "Error"
)

// AgentStatus is one evaluation agent's current condition.
type AgentStatus struct {
	Name        string
	State       AgentState
	CurrentTask string
}

// InfrastructureStats summarizes cluster utilization for the dashboard.
type InfrastructureStats struct {
	GPUUsage     int // percent
	MemoryUsage  int // percent
	StorageUsage int // percent
	ActiveNodes  int
}
