// table.go — column-aligned table with optional row selection.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders static rows under a header, sized to the widest cell of each
// column. Selected marks the highlighted row; -1 disables highlighting.
type Table struct {
	Headers  []string
	Rows     [][]string
	Selected int
}

// NewTable builds an empty table with no selection.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers, Selected: -1}
}

// AddRow appends one row.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// View renders the table.
func (t *Table) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return styles.Muted.Render("（暂无数据）") + "\n"
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := lipgloss.Width(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}

	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)
	selectedStyle := styles.Active.Padding(0, 1)
	sep := styles.Muted.Render("│")

	var b strings.Builder
	for i, h := range t.Headers {
		b.WriteString(headerStyle.Width(widths[i]).Render(h))
		if i < len(t.Headers)-1 {
			b.WriteString(sep)
		}
	}
	b.WriteString("\n")

	total := len(t.Headers) - 1
	for _, w := range widths {
		total += w
	}
	b.WriteString(styles.RenderDivider(total) + "\n")

	for r, row := range t.Rows {
		cell := rowStyle
		if r == t.Selected {
			cell = selectedStyle
		}
		for i, c := range row {
			if i < len(widths) {
				b.WriteString(cell.Width(widths[i]).Render(c))
				if i < len(row)-1 {
					b.WriteString(sep)
				}
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
