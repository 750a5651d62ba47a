// seed.go — embedded seed data loaded at startup.
package store

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"evalboard/internal/domain"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Models     []domain.TargetModel       `yaml:"models"`
	Strategies []domain.EvaluationStrategy `yaml:"strategies"`
	Templates  []domain.ReportTemplate    `yaml:"templates"`
	Tasks      []domain.EvaluationTask    `yaml:"tasks"`
	Datasets   []domain.Dataset           `yaml:"datasets"`
	Tools      []domain.EvaluationTool    `yaml:"tools"`
	Reports    []domain.EvaluationReport  `yaml:"reports"`
	Agents     []struct {
		Name  string `yaml:"name"`
		State string `yaml:"state"`
	} `yaml:"agents"`
	Infra struct {
		GPUUsage     int `yaml:"gpu_usage"`
		MemoryUsage  int `yaml:"memory_usage"`
		StorageUsage int `yaml:"storage_usage"`
		ActiveNodes  int `yaml:"active_nodes"`
	} `yaml:"infra"`
}

// Seeded builds a store populated from the embedded seed file.
func Seeded() (*Store, error) {
	var f seedFile
	if err := yaml.Unmarshal(seedYAML, &f); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}

	s := &Store{
		Models:     *NewCollection(f.Models...),
		Strategies: *NewCollection(f.Strategies...),
		Tasks:      *NewCollection(f.Tasks...),
		Datasets:   *NewCollection(f.Datasets...),
		Tools:      *NewCollection(f.Tools...),
		Reports:    *NewCollection(f.Reports...),
		Templates:  f.Templates,
		Infra: domain.InfrastructureStats{
			GPUUsage:     f.Infra.GPUUsage,
			MemoryUsage:  f.Infra.MemoryUsage,
			StorageUsage: f.Infra.StorageUsage,
			ActiveNodes:  f.Infra.ActiveNodes,
		},
	}
	for _, a := range f.Agents {
		s.Agents = append(s.Agents, domain.AgentStatus{
			Name:  a.Name,
			State: domain.AgentState(a.State),
		})
	}
	return s, nil
}
