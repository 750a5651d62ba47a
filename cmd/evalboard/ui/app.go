// app.go — root model: owns the store, the navigation state and one page
// model per view. All keyboard input flows through Update; pages that have a
// dialog or search box open capture keys before global shortcuts apply.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"evalboard/internal/analyze"
	"evalboard/internal/nav"
	"evalboard/internal/probe"
	"evalboard/internal/store"
)

// App is the workbench root model.
type App struct {
	store    *store.Store
	nav      nav.State
	styles   Styles
	log      *zap.Logger
	logoPath string

	width  int
	height int

	dashboard  *dashboardPage
	models     *modelsPage
	tasks      *tasksPage
	strategies *strategiesPage
	datasets   *datasetsPage
	tools      *toolsPage
	reports    *reportsPage
	settings   *settingsPage
}

// NewApp wires the root model. The analyzer may be in degraded mode; the
// reports page shows its fixed messages either way.
func NewApp(s *store.Store, analyzer *analyze.Analyzer, gen probe.Generator, logoPath string, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	styles := DefaultStyles()
	a := &App{
		store:    s,
		styles:   styles,
		log:      log,
		logoPath: logoPath,
	}
	a.dashboard = newDashboardPage(s, styles)
	a.models = newModelsPage(s, gen, styles)
	a.tasks = newTasksPage(s, styles)
	a.strategies = newStrategiesPage(s, styles)
	a.datasets = newDatasetsPage(s, gen, styles)
	a.tools = newToolsPage(s, styles)
	a.reports = newReportsPage(s, analyzer, styles, log)
	a.settings = newSettingsPage(logoPath, styles)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd { return nil }

// viewHotkeys maps number keys to sidebar views.
var viewHotkeys = map[string]nav.View{
	"1": nav.ViewDashboard,
	"2": nav.ViewModels,
	"3": nav.ViewTools,
	"4": nav.ViewTasks,
	"5": nav.ViewStrategies,
	"6": nav.ViewDatasets,
	"7": nav.ViewReports,
	"8": nav.ViewSettings,
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case analysisResultMsg:
		// Results for a report that is no longer open are dropped.
		a.reports.receiveAnalysis(&a.nav, msg)
		return a, nil

	case tea.KeyMsg:
		if a.currentCapturing() {
			return a, a.routeKey(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		}
		if v, ok := viewHotkeys[msg.String()]; ok {
			a.nav.SetView(v)
			return a, nil
		}
		return a, a.routeKey(msg)
	}
	return a, nil
}

// currentCapturing reports whether the active page wants raw keys.
func (a *App) currentCapturing() bool {
	switch a.nav.View() {
	case nav.ViewModels:
		return a.models.capturing()
	case nav.ViewTasks:
		return a.tasks.capturing()
	case nav.ViewStrategies:
		return a.strategies.capturing()
	case nav.ViewDatasets:
		return a.datasets.capturing()
	case nav.ViewTools:
		return a.tools.capturing()
	default:
		return false
	}
}

// routeKey hands one key to the active page.
func (a *App) routeKey(msg tea.KeyMsg) tea.Cmd {
	switch a.nav.View() {
	case nav.ViewModels:
		return a.models.update(msg)
	case nav.ViewTasks:
		return a.tasks.update(msg)
	case nav.ViewStrategies:
		return a.strategies.update(msg)
	case nav.ViewDatasets:
		return a.datasets.update(msg)
	case nav.ViewTools:
		return a.tools.update(msg)
	case nav.ViewReports:
		return a.reports.update(&a.nav, msg)
	case nav.ViewSettings:
		return a.settings.update(msg)
	default:
		return nil
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.headerView())
	b.WriteString("\n\n")

	switch a.nav.View() {
	case nav.ViewDashboard:
		b.WriteString(a.dashboard.view())
	case nav.ViewModels:
		b.WriteString(a.models.view())
	case nav.ViewTasks:
		b.WriteString(a.tasks.view())
	case nav.ViewStrategies:
		b.WriteString(a.strategies.view())
	case nav.ViewDatasets:
		b.WriteString(a.datasets.view())
	case nav.ViewTools:
		b.WriteString(a.tools.view())
	case nav.ViewReports:
		b.WriteString(a.reports.view(&a.nav))
	case nav.ViewSettings:
		b.WriteString(a.settings.view())
	}

	b.WriteString("\n")
	b.WriteString(a.footerView())
	return b.String()
}

// headerView draws the brand bar and the view tabs.
func (a *App) headerView() string {
	title := a.styles.Header.Render(" AI 模型测评工作台 ")

	var tabs []string
	for i, v := range nav.Views() {
		label := fmt.Sprintf("%d %s", i+1, v.Title())
		if v == a.nav.View() {
			tabs = append(tabs, a.styles.Active.Render(label))
		} else {
			tabs = append(tabs, a.styles.Muted.Render(label))
		}
	}
	return title + "\n" + strings.Join(tabs, a.styles.Muted.Render("  ·  "))
}

// footerView draws the key hints for the active view.
func (a *App) footerView() string {
	hint := "1-7 切换视图 · 8 设置 · q 退出"
	switch a.nav.View() {
	case nav.ViewModels, nav.ViewTasks:
		hint = "n 新建 · " + hint
	case nav.ViewTools:
		hint = "n 接入 · ←/→ 分类 · / 搜索 · " + hint
	case nav.ViewStrategies:
		hint = "n 新建 · e 编辑 · ↑/↓ 选择 · " + hint
	case nav.ViewDatasets:
		hint = "n 导入 · ←/→ 大类 · f 模块 · t 标签 · / 搜索 · " + hint
	case nav.ViewReports:
		if a.nav.ShowingDetail() {
			hint = "a AI 分析 · esc 返回列表 · " + hint
		} else {
			hint = "↑/↓ 选择 · enter 查看 · " + hint
		}
	}
	return a.styles.Footer.Render(hint)
}
