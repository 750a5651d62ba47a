// strategies.go — strategy cards plus the three-step configuration wizard:
// metric thresholds, dataset selection, report template. The wizard edits a
// draft copy; the store only changes when the final step commits.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"evalboard/internal/domain"
	"evalboard/internal/store"
	"evalboard/internal/wizard"
)

type metricRowFields struct {
	name *Field
	op   *Field
	val  *Field
	unit *Field
}

type strategiesPage struct {
	store  *store.Store
	styles Styles

	cursor int // selected card in the list

	dialog wizard.Machine
	draft  wizard.StrategyDraft

	// Step 0: basics and metric rows.
	form       *Form
	nameField  *Field
	descField  *Field
	metricRows []metricRowFields

	// Step 1: dataset toggle cursor.
	dsCursor int

	// Step 2: template cursor.
	tplCursor int
}

func newStrategiesPage(s *store.Store, styles Styles) *strategiesPage {
	return &strategiesPage{store: s, styles: styles, dialog: wizard.NewMachine(wizard.StrategyStepCount)}
}

func (p *strategiesPage) capturing() bool { return p.dialog.IsOpen() }

func (p *strategiesPage) openDialog(edit *domain.EvaluationStrategy) {
	if edit != nil {
		p.draft = wizard.EditStrategyDraft(*edit)
		p.dialog.Open(edit.ID)
	} else {
		p.draft = wizard.NewStrategyDraft()
		p.dialog.Open("")
	}
	p.dsCursor = 0
	p.tplCursor = p.templateIndex(p.draft.TemplateID)
	p.rebuildBasicsForm()
}

// templateIndex finds the catalog position of a template id, defaulting to
// the first entry.
func (p *strategiesPage) templateIndex(id string) int {
	for i, t := range p.store.Templates {
		if t.ID == id {
			return i
		}
	}
	return 0
}

// rebuildBasicsForm regenerates the step-0 form from the draft. Called on
// open and whenever a metric row is added or removed.
func (p *strategiesPage) rebuildBasicsForm() {
	p.form = NewForm()
	p.nameField = p.form.AddText("策略名称", "如 通用 LLM 安全套件")
	p.nameField.SetValue(p.draft.Name)
	p.descField = p.form.AddText("策略描述", "适用场景与侧重点")
	p.descField.SetValue(p.draft.Description)

	ops := make([]string, len(domain.ThresholdOps()))
	for i, op := range domain.ThresholdOps() {
		ops[i] = string(op)
	}

	p.metricRows = p.metricRows[:0]
	for i, m := range p.draft.Metrics {
		row := metricRowFields{
			name: p.form.AddText(fmt.Sprintf("指标名 #%d", i+1), "如 有害内容率"),
			op:   p.form.AddChoice("  运算符", ops),
			val:  p.form.AddText("  目标值", "0"),
			unit: p.form.AddText("  单位  ", "%"),
		}
		row.name.SetValue(m.Name)
		for j, op := range domain.ThresholdOps() {
			if op == m.Operator {
				row.op.SetChoice(j)
			}
		}
		if m.Threshold != 0 {
			row.val.SetValue(strconv.FormatFloat(m.Threshold, 'g', -1, 64))
		}
		row.unit.SetValue(m.Unit)
		p.metricRows = append(p.metricRows, row)
	}
}

// syncDraftFromForm copies the step-0 fields back into the draft.
func (p *strategiesPage) syncDraftFromForm() {
	p.draft.Name = p.nameField.Value()
	p.draft.Description = p.descField.Value()
	for i, row := range p.metricRows {
		if i >= len(p.draft.Metrics) {
			break
		}
		p.draft.Metrics[i].Name = row.name.Value()
		p.draft.Metrics[i].Operator = domain.ThresholdOps()[row.op.Choice()]
		v, _ := strconv.ParseFloat(row.val.Value(), 64)
		p.draft.Metrics[i].Threshold = v
		p.draft.Metrics[i].Unit = row.unit.Value()
	}
}

func (p *strategiesPage) update(msg tea.KeyMsg) tea.Cmd {
	if !p.dialog.IsOpen() {
		return p.updateList(msg)
	}

	switch msg.Type {
	case tea.KeyEsc:
		p.dialog.Cancel()
		return nil
	case tea.KeyEnter:
		if p.dialog.Step() == 0 {
			p.syncDraftFromForm()
		}
		if p.dialog.AtLast() {
			if len(p.store.Templates) > 0 {
				p.draft.TemplateID = p.store.Templates[p.tplCursor].ID
			}
			p.draft.Commit(p.store)
			p.dialog.Cancel()
			return nil
		}
		p.dialog.Next()
		return nil
	case tea.KeyCtrlB:
		if p.dialog.Step() == 0 {
			p.syncDraftFromForm()
		}
		p.dialog.Back()
		return nil
	}

	switch p.dialog.Step() {
	case 0:
		switch msg.Type {
		case tea.KeyCtrlA:
			p.syncDraftFromForm()
			p.draft.AddMetric()
			p.rebuildBasicsForm()
			return nil
		case tea.KeyCtrlD:
			p.syncDraftFromForm()
			p.draft.RemoveMetric(len(p.draft.Metrics) - 1)
			p.rebuildBasicsForm()
			return nil
		}
		return p.form.Update(msg)

	case 1:
		datasets := p.store.Datasets.All()
		switch msg.String() {
		case "up", "k":
			if p.dsCursor > 0 {
				p.dsCursor--
			}
		case "down", "j":
			if p.dsCursor < len(datasets)-1 {
				p.dsCursor++
			}
		case " ":
			if len(datasets) > 0 {
				p.draft.ToggleDataset(datasets[p.dsCursor].ID)
			}
		}
		return nil

	case 2:
		switch msg.String() {
		case "up", "k":
			if p.tplCursor > 0 {
				p.tplCursor--
			}
		case "down", "j":
			if p.tplCursor < len(p.store.Templates)-1 {
				p.tplCursor++
			}
		}
		return nil
	}
	return nil
}

func (p *strategiesPage) updateList(msg tea.KeyMsg) tea.Cmd {
	strategies := p.store.Strategies.All()
	switch msg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(strategies)-1 {
			p.cursor++
		}
	case "n":
		p.openDialog(nil)
	case "e":
		if len(strategies) > 0 {
			s := strategies[p.cursor]
			p.openDialog(&s)
		}
	}
	return nil
}

func (p *strategiesPage) view() string {
	st := p.styles
	var b strings.Builder
	b.WriteString(st.Title.Render("测评策略管理") + "\n")
	b.WriteString(st.Muted.Render("定义测评的规则、指标和阈值。关联高质量题库并配置报告呈现模版。") + "\n\n")

	if p.dialog.IsOpen() {
		b.WriteString(st.Dialog.Render(p.dialogView()) + "\n")
		return b.String()
	}

	strategies := p.store.Strategies.All()
	if len(strategies) == 0 {
		b.WriteString(st.Muted.Render("（暂无策略）") + "\n")
		return b.String()
	}
	for i, s := range strategies {
		marker := "  "
		if i == p.cursor {
			marker = st.Title.Render("❯ ")
		}
		tpl := s.TemplateID
		if t, ok := p.store.TemplateByID(s.TemplateID); ok {
			tpl = t.Name
		}
		card := fmt.Sprintf("%s\n%s\n指标 %d · 题库 %d · 模版 %s\n流程: %s",
			st.Bold.Render(s.Name),
			st.Muted.Render(s.Description),
			len(s.Metrics), len(s.DatasetIDs), tpl,
			strings.Join(s.Stages, " → "),
		)
		b.WriteString(marker + strings.ReplaceAll(st.Card.Render(card), "\n", "\n  ") + "\n")
	}
	return b.String()
}

func (p *strategiesPage) dialogView() string {
	st := p.styles
	var b strings.Builder

	title := "创建策略"
	if p.draft.Editing() {
		title = "编辑策略"
	}
	b.WriteString(st.Bold.Render(title) + "\n")

	// Step indicator.
	var steps []string
	for i, label := range wizard.StrategySteps {
		mark := fmt.Sprintf("%d %s", i+1, label)
		switch {
		case i == p.dialog.Step():
			steps = append(steps, st.Active.Render(mark))
		case i < p.dialog.Step():
			steps = append(steps, st.Success.Render(mark))
		default:
			steps = append(steps, st.Muted.Render(mark))
		}
	}
	b.WriteString(strings.Join(steps, st.Muted.Render(" → ")) + "\n\n")

	switch p.dialog.Step() {
	case 0:
		b.WriteString(p.form.View(st))
		b.WriteString("\n" + st.Muted.Render("ctrl+a 添加指标 · ctrl+d 删除末行 · enter 下一步 · esc 取消"))
	case 1:
		for i, d := range p.store.Datasets.All() {
			cursor := "  "
			if i == p.dsCursor {
				cursor = st.Title.Render("❯ ")
			}
			mark := st.Muted.Render("[ ]")
			if p.draft.HasDataset(d.ID) {
				mark = st.Success.Render("[✓]")
			}
			fmt.Fprintf(&b, "%s%s %s %s\n", cursor, mark, d.Name,
				st.Muted.Render(fmt.Sprintf("(%s · %d 题)", d.Category.Label(), d.SampleCount)))
		}
		b.WriteString("\n" + st.Muted.Render("空格 选择 · enter 下一步 · ctrl+b 上一步 · esc 取消"))
	case 2:
		for i, t := range p.store.Templates {
			cursor := "  "
			if i == p.tplCursor {
				cursor = st.Title.Render("❯ ")
			}
			fmt.Fprintf(&b, "%s%s\n   %s\n", cursor, st.Bold.Render(t.Name), st.Muted.Render(t.Description))
		}
		b.WriteString("\n" + st.Success.Render("enter 保存策略") + st.Muted.Render(" · ctrl+b 上一步 · esc 取消"))
	}
	return b.String()
}
