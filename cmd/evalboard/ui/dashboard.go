// dashboard.go — the portal view: workbench aggregates, agent status and
// infrastructure utilization, all recomputed from the store on every render.
package ui

import (
	"fmt"
	"strings"

	"evalboard/internal/derive"
	"evalboard/internal/domain"
	"evalboard/internal/store"
)

type dashboardPage struct {
	store  *store.Store
	styles Styles
}

func newDashboardPage(s *store.Store, styles Styles) *dashboardPage {
	return &dashboardPage{store: s, styles: styles}
}

func (p *dashboardPage) view() string {
	w := derive.Workbench(p.store)
	st := p.styles

	var b strings.Builder
	b.WriteString(st.Title.Render("我的工作台") + "\n\n")

	// KPI row.
	fmt.Fprintf(&b, "%s %s    %s %s    %s %s    %s %s\n\n",
		st.Label.Render("活跃测评任务"),
		st.Bold.Render(fmt.Sprintf("%d / %d", w.ActiveTasks, w.TotalTasks)),
		st.Label.Render("已接入模型"),
		st.Bold.Render(fmt.Sprintf("%d", w.RuntimeModels+w.DevModels)),
		st.Label.Render("题库样本总量"),
		st.Bold.Render(fmt.Sprintf("%d", w.TotalSamples)),
		st.Label.Render("已生成报告"),
		st.Bold.Render(fmt.Sprintf("%d", w.ReportCount)),
	)

	// Model breakdown.
	b.WriteString(st.Bold.Render("测评对象") + "\n")
	fmt.Fprintf(&b, "  运行阶段 %d（%.0f%%） · 研发阶段 %d\n",
		w.RuntimeModels, w.RuntimeShare(), w.DevModels)
	for _, c := range domain.ModelCategories() {
		fmt.Fprintf(&b, "  %s: %d\n", c.Label(), w.ModelsByCategory[c])
	}
	b.WriteString("\n")

	// Task breakdown.
	b.WriteString(st.Bold.Render("测评任务") + "\n")
	for _, c := range domain.TaskCategories() {
		fmt.Fprintf(&b, "  %s: %d\n", c.Label(), w.TasksByCategory[c])
	}
	fmt.Fprintf(&b, "  策略指标总数: %d · 待更新工具: %d\n\n", w.TotalMetrics, w.ToolUpdates)

	// Agents.
	if len(p.store.Agents) > 0 {
		b.WriteString(st.Bold.Render("智能体状态") + "\n")
		for _, a := range p.store.Agents {
			mark := st.Muted.Render(string(a.State))
			switch a.State {
			case domain.AgentWorking:
				mark = st.Info.Render(string(a.State))
			case domain.AgentError:
				mark = st.Error.Render(string(a.State))
			}
			fmt.Fprintf(&b, "  %s %s\n", a.Name, mark)
		}
		b.WriteString("\n")
	}

	// Infrastructure.
	infra := p.store.Infra
	b.WriteString(st.Bold.Render("基础设施") + "\n")
	fmt.Fprintf(&b, "  GPU %s  内存 %s  存储 %s  节点 %d\n",
		usageGauge(st, infra.GPUUsage),
		usageGauge(st, infra.MemoryUsage),
		usageGauge(st, infra.StorageUsage),
		infra.ActiveNodes,
	)
	return b.String()
}

// usageGauge colors a utilization percentage by load.
func usageGauge(st Styles, pct int) string {
	text := fmt.Sprintf("%d%%", pct)
	switch {
	case pct >= 90:
		return st.Error.Render(text)
	case pct >= 75:
		return st.Warning.Render(text)
	default:
		return st.Success.Render(text)
	}
}
