// tools.go — evaluation tool catalog: category tabs, free-text search over
// name and description, and the integration dialog.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"evalboard/internal/domain"
	"evalboard/internal/store"
	"evalboard/internal/wizard"
)

type toolsPage struct {
	store  *store.Store
	styles Styles

	// category filters the catalog; -1 selects every category.
	category  int
	searching bool
	search    textinput.Model

	dialog    wizard.Machine
	form      *Form
	nameField *Field
	catField  *Field
	verField  *Field
	descField *Field
}

func newToolsPage(s *store.Store, styles Styles) *toolsPage {
	search := textinput.New()
	search.Placeholder = "搜索工具名称或描述..."
	search.CharLimit = 64
	return &toolsPage{store: s, styles: styles, category: -1, search: search, dialog: wizard.NewMachine(1)}
}

func (p *toolsPage) capturing() bool { return p.dialog.IsOpen() || p.searching }

func (p *toolsPage) openDialog() {
	p.form = NewForm()
	p.nameField = p.form.AddText("工具名称", "如 ContentShield Pro")
	p.catField = p.form.AddChoice("工具类型", enumLabels(domain.ToolCategories()))
	p.verField = p.form.AddText("版本", "默认 1.0.0")
	p.descField = p.form.AddText("描述", "工具能力简介")
	p.dialog.Open("")
}

func (p *toolsPage) draft() wizard.ToolDraft {
	return wizard.ToolDraft{
		Name:        p.nameField.Value(),
		Category:    domain.ToolCategories()[p.catField.Choice()],
		Version:     strings.TrimSpace(p.verField.Value()),
		Description: p.descField.Value(),
	}
}

func (p *toolsPage) update(msg tea.KeyMsg) tea.Cmd {
	if p.dialog.IsOpen() {
		switch msg.Type {
		case tea.KeyEsc:
			p.dialog.Cancel()
			return nil
		case tea.KeyEnter:
			if d := p.draft(); d.CanCommit() {
				d.Commit(p.store)
				p.dialog.Cancel()
			}
			return nil
		}
		return p.form.Update(msg)
	}

	if p.searching {
		switch msg.Type {
		case tea.KeyEsc:
			p.searching = false
			p.search.SetValue("")
			p.search.Blur()
			return nil
		case tea.KeyEnter:
			p.searching = false
			p.search.Blur()
			return nil
		}
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "left":
		if p.category > -1 {
			p.category--
		}
	case "right":
		if p.category < len(domain.ToolCategories())-1 {
			p.category++
		}
	case "/":
		p.searching = true
		p.search.Focus()
	case "n":
		p.openDialog()
	}
	return nil
}

// filtered applies the category tab and the search query. Search matches name
// or description, case-insensitive.
func (p *toolsPage) filtered() []domain.EvaluationTool {
	q := strings.ToLower(p.search.Value())
	var out []domain.EvaluationTool
	for _, t := range p.store.Tools.All() {
		if p.category >= 0 && t.Category != domain.ToolCategories()[p.category] {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Name), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (p *toolsPage) view() string {
	st := p.styles
	var b strings.Builder
	b.WriteString(st.Title.Render("测评工具管理") + "\n")
	b.WriteString(st.Muted.Render("接入与管理测评执行所依赖的工具链。") + "\n\n")

	if p.dialog.IsOpen() {
		var d strings.Builder
		d.WriteString(st.Bold.Render("接入工具") + "\n\n")
		d.WriteString(p.form.View(st))
		hint := st.Muted.Render("enter 接入 · esc 取消")
		if p.draft().CanCommit() {
			hint = st.Success.Render("enter 接入") + st.Muted.Render(" · esc 取消")
		}
		d.WriteString("\n" + hint)
		b.WriteString(st.Dialog.Render(d.String()) + "\n")
		return b.String()
	}

	tabs := []string{" 全部 "}
	for _, c := range domain.ToolCategories() {
		tabs = append(tabs, " "+c.Label()+" ")
	}
	for i := range tabs {
		if i-1 == p.category {
			tabs[i] = st.Active.Render(tabs[i])
		} else {
			tabs[i] = st.Muted.Render(tabs[i])
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n")
	if p.searching {
		b.WriteString(st.Label.Render("搜索: ") + p.search.View() + "\n")
	} else if p.search.Value() != "" {
		b.WriteString(st.Label.Render("搜索: ") + st.Info.Render(p.search.Value()) + "\n")
	}
	b.WriteString("\n")

	tbl := NewTable("名称", "类型", "版本", "状态", "提供方", "描述")
	for _, t := range p.filtered() {
		tbl.AddRow(t.Name, t.Category.Label(), t.Version, p.toolStatusCell(t.Status), t.Author, t.Description)
	}
	b.WriteString(tbl.View(st))
	return b.String()
}

func (p *toolsPage) toolStatusCell(s domain.ToolStatus) string {
	switch s {
	case domain.ToolActive:
		return p.styles.Success.Render(string(s))
	case domain.ToolUpdateAvailable:
		return p.styles.Warning.Render(string(s))
	default:
		return p.styles.Muted.Render(string(s))
	}
}
