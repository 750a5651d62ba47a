// tasks.go — task list and the creation dialog, including execution cadence
// and the manual-review toggle.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"evalboard/internal/domain"
	"evalboard/internal/store"
	"evalboard/internal/wizard"
)

// pollingOptions are the offered re-run cadences, in minutes.
var pollingOptions = []int{0, 30, 60, 720, 1440, 10080}

var pollingLabels = []string{
	"单次执行", "每 30 分钟", "每 1 小时", "每 12 小时", "每 24 小时 (每天)", "每 7 天 (每周)",
}

type tasksPage struct {
	store  *store.Store
	styles Styles

	dialog  wizard.Machine
	form    *Form
	name    *Field
	cat     *Field
	model   *Field
	strat   *Field
	polling *Field
	review  *Field

	modelIDs    []string
	strategyIDs []string
}

func newTasksPage(s *store.Store, styles Styles) *tasksPage {
	return &tasksPage{store: s, styles: styles, dialog: wizard.NewMachine(1)}
}

func (p *tasksPage) capturing() bool { return p.dialog.IsOpen() }

// OpenDialog starts the creation dialog. The layout's "新建任务" action jumps
// here from any view.
func (p *tasksPage) OpenDialog() {
	modelNames := []string{}
	p.modelIDs = nil
	for _, m := range p.store.Models.All() {
		modelNames = append(modelNames, m.Name)
		p.modelIDs = append(p.modelIDs, m.ID)
	}
	stratNames := []string{}
	p.strategyIDs = nil
	for _, s := range p.store.Strategies.All() {
		stratNames = append(stratNames, s.Name)
		p.strategyIDs = append(p.strategyIDs, s.ID)
	}

	p.form = NewForm()
	p.name = p.form.AddText("任务名称", "如 合规性例行扫描")
	p.cat = p.form.AddChoice("测评类型", enumLabels(domain.TaskCategories()))
	p.model = p.form.AddChoice("目标模型", modelNames)
	p.strat = p.form.AddChoice("测评策略", stratNames)
	p.polling = p.form.AddChoice("执行频率", pollingLabels)
	p.review = p.form.AddBool("需要人工复核")
	p.dialog.Open("")
}

func (p *tasksPage) draft() wizard.TaskDraft {
	d := wizard.NewTaskDraft()
	d.Name = p.name.Value()
	d.Category = domain.TaskCategories()[p.cat.Choice()]
	if len(p.modelIDs) > 0 {
		d.ModelID = p.modelIDs[p.model.Choice()]
	}
	if len(p.strategyIDs) > 0 {
		d.StrategyID = p.strategyIDs[p.strat.Choice()]
	}
	d.PollingIntervalMin = pollingOptions[p.polling.Choice()]
	d.RequiresManualReview = p.review.Bool()
	return d
}

func (p *tasksPage) update(msg tea.KeyMsg) tea.Cmd {
	if p.dialog.IsOpen() {
		switch msg.Type {
		case tea.KeyEsc:
			p.dialog.Cancel()
			return nil
		case tea.KeyEnter:
			d := p.draft()
			if !d.CanCommit() {
				return nil
			}
			d.Commit(p.store, time.Now())
			p.dialog.Cancel()
			return nil
		}
		return p.form.Update(msg)
	}
	if msg.String() == "n" {
		p.OpenDialog()
	}
	return nil
}

func (p *tasksPage) view() string {
	st := p.styles
	var b strings.Builder
	b.WriteString(st.Title.Render("测评任务管理") + "\n")
	b.WriteString(st.Muted.Render("创建、调度并跟踪测评任务的执行状态。") + "\n\n")

	if p.dialog.IsOpen() {
		d := p.draft()
		confirm := st.Muted.Render("enter 创建并启动（需填写任务名称）")
		if d.CanCommit() {
			confirm = st.Success.Render("enter 创建并启动")
		}
		body := st.Bold.Render("新建测评任务") + "\n\n" + p.form.View(st) + "\n" +
			confirm + st.Muted.Render(" · esc 取消")
		b.WriteString(st.Dialog.Render(body) + "\n")
		return b.String()
	}

	table := NewTable("名称", "类型", "目标模型", "状态", "进度", "频率", "人工复核")
	for _, t := range p.store.Tasks.All() {
		modelName := t.ModelID
		if m, ok := p.store.Models.ByID(t.ModelID); ok {
			modelName = m.Name
		}
		review := "—"
		if t.RequiresManualReview {
			review = st.Warning.Render("需复核")
		}
		table.AddRow(
			t.Name,
			t.Category.Label(),
			modelName,
			taskStatusCell(st, t.Status),
			fmt.Sprintf("%d%%", t.Progress),
			domain.FormatInterval(t.PollingIntervalMin),
			review,
		)
	}
	b.WriteString(table.View(st))
	return b.String()
}

func taskStatusCell(st Styles, s domain.TaskStatus) string {
	switch s {
	case domain.TaskCompleted:
		return st.Success.Render(string(s))
	case domain.TaskRunning:
		return st.Info.Render(string(s))
	case domain.TaskFailed:
		return st.Error.Render(string(s))
	default:
		return st.Muted.Render(string(s))
	}
}
