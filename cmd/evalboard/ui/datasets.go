// datasets.go — corpus browser with the three-level filter (category tabs,
// sub-category, tag) plus free-text search, and the import dialog. When an
// import names a local file the sample count comes from scanning it; blank
// paths fall back to the probe.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"evalboard/internal/corpus"
	"evalboard/internal/derive"
	"evalboard/internal/domain"
	"evalboard/internal/probe"
	"evalboard/internal/store"
	"evalboard/internal/wizard"
)

type datasetsPage struct {
	store  *store.Store
	gen    probe.Generator
	styles Styles

	filter    derive.DatasetFilter
	searching bool
	search    textinput.Model

	dialog    wizard.Machine
	form      *Form
	nameField *Field
	catField  *Field
	subField  *Field
	tagsField *Field
	pathField *Field
}

func newDatasetsPage(s *store.Store, gen probe.Generator, styles Styles) *datasetsPage {
	search := textinput.New()
	search.Placeholder = "搜索题库名称或模块..."
	search.CharLimit = 64
	return &datasetsPage{
		store:  s,
		gen:    gen,
		styles: styles,
		filter: derive.NewDatasetFilter(),
		search: search,
		dialog: wizard.NewMachine(1),
	}
}

func (p *datasetsPage) capturing() bool { return p.dialog.IsOpen() || p.searching }

func (p *datasetsPage) openDialog() {
	p.form = NewForm()
	p.nameField = p.form.AddText("题库名称", "如 金融行业合规题集")
	p.catField = p.form.AddChoice("所属大类", enumLabels(domain.DatasetCategories()))
	p.subField = p.form.AddText("所属模块", "如 数据安全题")
	p.tagsField = p.form.AddText("标签", "逗号分隔，如 隐私计算, 脱敏")
	p.pathField = p.form.AddText("语料文件", "可选 .jsonl 或 .csv 路径")
	p.dialog.Open("")
}

func (p *datasetsPage) draft() wizard.DatasetDraft {
	return wizard.DatasetDraft{
		Name:        p.nameField.Value(),
		Category:    domain.DatasetCategories()[p.catField.Choice()],
		SubCategory: p.subField.Value(),
		TagsText:    p.tagsField.Value(),
	}
}

func (p *datasetsPage) update(msg tea.KeyMsg) tea.Cmd {
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
			gen := p.gen
			if path := strings.TrimSpace(p.pathField.Value()); path != "" {
				gen = probe.Fixed{Samples: corpus.CountOrSimulate(path, p.gen)}
			}
			d.Commit(p.store, gen, time.Now())
			p.dialog.Cancel()
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
			p.filter.SetSearch("")
			return nil
		case tea.KeyEnter:
			p.searching = false
			p.search.Blur()
			return nil
		}
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		p.filter.SetSearch(p.search.Value())
		return cmd
	}

	datasets := p.store.Datasets.All()
	switch msg.String() {
	case "left":
		p.filter.SetCategory(cycleCategory(p.filter.Category, -1))
	case "right":
		p.filter.SetCategory(cycleCategory(p.filter.Category, +1))
	case "f":
		opts := p.filter.SubCategoryOptions(datasets)
		p.filter.SetSubCategory(cycleOption(opts, p.filter.SubCategory))
	case "t":
		opts := p.filter.TagOptions(datasets)
		p.filter.SetTag(cycleOption(opts, p.filter.Tag))
	case "/":
		p.searching = true
		p.search.Focus()
	case "n":
		p.openDialog()
	}
	return nil
}

// cycleCategory steps through the fixed category order, wrapping.
func cycleCategory(cur domain.DatasetCategory, dir int) domain.DatasetCategory {
	cats := domain.DatasetCategories()
	for i, c := range cats {
		if c == cur {
			return cats[(i+dir+len(cats))%len(cats)]
		}
	}
	return cats[0]
}

// cycleOption advances to the next entry after cur, wrapping to the front.
// Unknown values restart at the front as well.
func cycleOption(opts []string, cur string) string {
	if len(opts) == 0 {
		return derive.FilterAll
	}
	for i, o := range opts {
		if o == cur {
			return opts[(i+1)%len(opts)]
		}
	}
	return opts[0]
}

func (p *datasetsPage) view() string {
	st := p.styles
	var b strings.Builder
	b.WriteString(st.Title.Render("测评题库管理") + "\n")
	b.WriteString(st.Muted.Render("按大类、模块与标签逐级筛选测评语料。") + "\n\n")

	if p.dialog.IsOpen() {
		var d strings.Builder
		d.WriteString(st.Bold.Render("导入题库") + "\n\n")
		d.WriteString(p.form.View(st))
		hint := st.Muted.Render("enter 导入 · esc 取消")
		if p.draft().CanCommit() {
			hint = st.Success.Render("enter 导入") + st.Muted.Render(" · esc 取消")
		}
		d.WriteString("\n" + hint)
		b.WriteString(st.Dialog.Render(d.String()) + "\n")
		return b.String()
	}

	datasets := p.store.Datasets.All()

	// Category tabs.
	var tabs []string
	for _, c := range domain.DatasetCategories() {
		label := fmt.Sprintf(" %s ", c.Label())
		if c == p.filter.Category {
			tabs = append(tabs, st.Active.Render(label))
		} else {
			tabs = append(tabs, st.Muted.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n")

	b.WriteString(st.Label.Render("模块: ") + filterLabel(st, p.filter.SubCategory))
	b.WriteString("   " + st.Label.Render("标签: ") + filterLabel(st, p.filter.Tag))
	if p.searching {
		b.WriteString("\n" + st.Label.Render("搜索: ") + p.search.View())
	} else if p.filter.Search != "" {
		b.WriteString("   " + st.Label.Render("搜索: ") + st.Info.Render(p.filter.Search))
	}
	b.WriteString("\n\n")

	tbl := NewTable("名称", "模块", "题量", "标签", "更新时间")
	for _, d := range p.filter.Apply(datasets) {
		tbl.AddRow(d.Name, d.SubCategory, fmt.Sprintf("%d", d.SampleCount),
			strings.Join(d.Tags, " / "), d.UpdatedAt.Format("2006-01-02"))
	}
	b.WriteString(tbl.View(st))
	return b.String()
}

// filterLabel renders a drill-down value, showing the wide-open sentinel as
// 全部.
func filterLabel(st Styles, v string) string {
	if v == derive.FilterAll {
		return st.Muted.Render("全部")
	}
	return st.Info.Render(v)
}
