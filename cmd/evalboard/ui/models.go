// models.go — registered model list plus the registration dialog.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"evalboard/internal/domain"
	"evalboard/internal/probe"
	"evalboard/internal/store"
	"evalboard/internal/wizard"
)

type modelsPage struct {
	store  *store.Store
	gen    probe.Generator
	styles Styles

	dialog wizard.Machine
	form   *Form
	name   *Field
	cat    *Field
	stage  *Field
	endp   *Field
	apiKey *Field
}

func newModelsPage(s *store.Store, gen probe.Generator, styles Styles) *modelsPage {
	return &modelsPage{store: s, gen: gen, styles: styles, dialog: wizard.NewMachine(1)}
}

func (p *modelsPage) capturing() bool { return p.dialog.IsOpen() }

func (p *modelsPage) openDialog() {
	p.form = NewForm()
	p.name = p.form.AddText("模型名称    ", "如 Gemini 2.5 Flash")
	p.cat = p.form.AddChoice("模型类型    ", enumLabels(domain.ModelCategories()))
	p.stage = p.form.AddChoice("测评阶段    ", enumLabels(domain.ModelStages()))
	p.endp = p.form.AddText("API Endpoint", "https://")
	p.apiKey = p.form.AddText("API Key     ", "可选")
	p.dialog.Open("")
}

func (p *modelsPage) draft() wizard.ModelDraft {
	d := wizard.NewModelDraft()
	d.Name = p.name.Value()
	d.Category = domain.ModelCategories()[p.cat.Choice()]
	d.Stage = domain.ModelStages()[p.stage.Choice()]
	d.Endpoint = p.endp.Value()
	d.APIKey = p.apiKey.Value()
	return d
}

func (p *modelsPage) update(msg tea.KeyMsg) tea.Cmd {
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
			d.Commit(p.store, p.gen, time.Now())
			p.dialog.Cancel()
			return nil
		}
		return p.form.Update(msg)
	}
	if msg.String() == "n" {
		p.openDialog()
	}
	return nil
}

func (p *modelsPage) view() string {
	st := p.styles
	var b strings.Builder
	b.WriteString(st.Title.Render("测评对象管理") + "\n")
	b.WriteString(st.Muted.Render("管理和监控已接入的 AI 模型及其所处的测评阶段。") + "\n\n")

	if p.dialog.IsOpen() {
		d := p.draft()
		confirm := st.Muted.Render("enter 确认接入（需填写名称与 Endpoint）")
		if d.CanCommit() {
			confirm = st.Success.Render("enter 确认接入")
		}
		body := st.Bold.Render("接入新模型") + "\n\n" + p.form.View(st) + "\n" +
			confirm + st.Muted.Render(" · esc 取消")
		b.WriteString(st.Dialog.Render(body) + "\n")
		return b.String()
	}

	table := NewTable("名称", "类型", "阶段", "状态", "延迟", "接入时间")
	for _, m := range p.store.Models.All() {
		table.AddRow(
			m.Name,
			m.Category.Label(),
			m.Stage.Label(),
			modelStatusCell(st, m.Status),
			fmt.Sprintf("%dms", m.LatencyMS),
			m.AddedAt.Format("2006-01-02"),
		)
	}
	b.WriteString(table.View(st))
	return b.String()
}

func modelStatusCell(st Styles, s domain.ModelStatus) string {
	switch s {
	case domain.StatusHealthy:
		return st.Success.Render(string(s))
	case domain.StatusDegraded:
		return st.Warning.Render(string(s))
	default:
		return st.Error.Render(string(s))
	}
}

// enumLabels renders enum display names for choice fields.
func enumLabels[T interface{ Label() string }](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.Label()
	}
	return out
}
