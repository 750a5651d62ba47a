// labels.go — display text for enumerated categories. Identity values stay
// machine-oriented; every user-visible rendering goes through a Label method
// so wording can change without touching stored data.
package domain

var modelCategoryLabels = map[ModelCategory]string{
	ModelLLM:        "LLM 大模型",
	ModelMultimodal: "多模态模型",
	ModelVertical:   "垂直大模型",
}

// Label returns the display name of the category. Unknown values render
// as their raw identity.
func (c ModelCategory) Label() string {
	if l, ok := modelCategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

var modelStageLabels = map[ModelStage]string{
	StagePretraining:   "预训练阶段",
	StageFinetuning:    "微调阶段",
	StageReinforcement: "强化阶段",
	StageRuntime:       "运行阶段",
}

// Label returns the display name of the stage.
func (s ModelStage) Label() string {
	if l, ok := modelStageLabels[s]; ok {
		return l
	}
	return string(s)
}

var taskCategoryLabels = map[TaskCategory]string{
	TaskCompliance: "合规性测评",
	TaskCapability: "能力测评",
	TaskSecurity:   "安全测评",
}

// Label returns the display name of the task category.
func (c TaskCategory) Label() string {
	if l, ok := taskCategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

var datasetCategoryLabels = map[DatasetCategory]string{
	DatasetCompliance: "AI 合规类",
	DatasetSecurity:   "AI 安全类",
	DatasetCapability: "AI 能力类",
}

// Label returns the display name of the dataset category.
func (c DatasetCategory) Label() string {
	if l, ok := datasetCategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

var toolCategoryLabels = map[ToolCategory]string{
	ToolComplianceVerification: "合规验证工具",
	ToolSecurityPenetration:    "安全渗透工具",
	ToolRiskDetection:          "风险检测工具",
	ToolCapabilityAssessment:   "能力评估工具",
	ToolAdversarialAttack:      "对抗攻击工具",
	ToolPerformanceTesting:     "性能测试工具",
}

// Label returns the display name of the tool category.
func (c ToolCategory) Label() string {
	if l, ok := toolCategoryLabels[c]; ok {
		return l
	}
	return string(c)
}
