// Package nav tracks which view is showing and which report, if any, is
// opened in detail. Report selection only survives inside the reports view:
// navigating anywhere else clears it, so a stale detail page can never
// reappear.
package nav

// View identifies one top-level view.
type View string

const (
	ViewDashboard  View = "dashboard"
	ViewModels     View = "models"
	ViewTools      View = "tools"
	ViewTasks      View = "tasks"
	ViewStrategies View = "strategies"
	ViewDatasets   View = "datasets"
	ViewReports    View = "reports"
	ViewSettings   View = "settings"
)

// Views lists the sidebar entries in display order. Settings is reached
// from the layout footer rather than the sidebar.
func Views() []View {
	return []View{
		ViewDashboard,
		ViewModels,
		ViewTools,
		ViewTasks,
		ViewStrategies,
		ViewDatasets,
		ViewReports,
	}
}

var viewTitles = map[View]string{
	ViewDashboard:  "测评门户",
	ViewModels:     "测评对象管理",
	ViewTools:      "测评工具管理",
	ViewTasks:      "测评任务管理",
	ViewStrategies: "测评策略管理",
	ViewDatasets:   "测评题库管理",
	ViewReports:    "测评报告管理",
	ViewSettings:   "系统设置",
}

// Title returns the view's sidebar caption.
func (v View) Title() string {
	if t, ok := viewTitles[v]; ok {
		return t
	}
	return string(v)
}

// State is the navigation position. Zero value starts on the dashboard with
// nothing selected.
type State struct {
	view             View
	selectedReportID string
}

// View returns the active view, defaulting to the dashboard.
func (s *State) View() View {
	if s.view == "" {
		return ViewDashboard
	}
	return s.view
}

// SetView switches views. Entering any view other than reports drops the
// report selection.
func (s *State) SetView(v View) {
	s.view = v
	if v != ViewReports {
		s.selectedReportID = ""
	}
}

// SelectReport opens a report in detail. Selection is only meaningful in
// the reports view; callers switch there first.
func (s *State) SelectReport(id string) { s.selectedReportID = id }

// ClearReport returns from the detail page to the report list.
func (s *State) ClearReport() { s.selectedReportID = "" }

// SelectedReportID returns the open report's id, empty when the list is
// showing.
func (s *State) SelectedReportID() string { return s.selectedReportID }

// ShowingDetail reports whether the reports view should render a detail
// page.
func (s *State) ShowingDetail() bool {
	return s.View() == ViewReports && s.selectedReportID != ""
}
