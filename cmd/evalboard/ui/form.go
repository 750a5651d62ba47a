// form.go — field list used by the modal dialogs. Tab cycles focus, text
// fields edit in place, choice fields flip with ←/→. The form never commits
// anything itself; pages read the values out when their dialog confirms.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type fieldKind int

const (
	textField fieldKind = iota
	choiceField
	boolField
)

// Field is one dialog row.
type Field struct {
	Label string

	kind    fieldKind
	input   textinput.Model
	options []string
	choice  int
	on      bool
}

// Value returns a text field's current content.
func (f *Field) Value() string { return strings.TrimSpace(f.input.Value()) }

// SetValue overwrites a text field's content.
func (f *Field) SetValue(v string) { f.input.SetValue(v) }

// Choice returns the selected option index of a choice field.
func (f *Field) Choice() int { return f.choice }

// SetChoice selects an option by index, clamped into range.
func (f *Field) SetChoice(i int) {
	if i >= 0 && i < len(f.options) {
		f.choice = i
	}
}

// Bool returns a toggle field's state.
func (f *Field) Bool() bool { return f.on }

// SetBool sets a toggle field's state.
func (f *Field) SetBool(v bool) { f.on = v }

// Form is an ordered set of fields with one focus.
type Form struct {
	fields []*Field
	focus  int
}

// NewForm returns an empty form.
func NewForm() *Form { return &Form{} }

// AddText appends an editable text row.
func (f *Form) AddText(label, placeholder string) *Field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	fl := &Field{Label: label, kind: textField, input: ti}
	f.fields = append(f.fields, fl)
	f.syncFocus()
	return fl
}

// AddChoice appends a row cycling through options.
func (f *Form) AddChoice(label string, options []string) *Field {
	fl := &Field{Label: label, kind: choiceField, options: options}
	f.fields = append(f.fields, fl)
	f.syncFocus()
	return fl
}

// AddBool appends an on/off row.
func (f *Form) AddBool(label string) *Field {
	fl := &Field{Label: label, kind: boolField}
	f.fields = append(f.fields, fl)
	f.syncFocus()
	return fl
}

// syncFocus focuses the text input under the cursor and blurs the rest.
func (f *Form) syncFocus() {
	for i, fl := range f.fields {
		if fl.kind != textField {
			continue
		}
		if i == f.focus {
			fl.input.Focus()
		} else {
			fl.input.Blur()
		}
	}
}

// Update handles one key. Tab and shift+tab move focus; ←/→ flip the focused
// choice or toggle; anything else edits the focused text field.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyTab, tea.KeyDown:
			f.focus = (f.focus + 1) % len(f.fields)
			f.syncFocus()
			return textinput.Blink
		case tea.KeyShiftTab, tea.KeyUp:
			f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
			f.syncFocus()
			return textinput.Blink
		case tea.KeyLeft, tea.KeyRight:
			fl := f.fields[f.focus]
			switch fl.kind {
			case choiceField:
				if len(fl.options) > 0 {
					if key.Type == tea.KeyRight {
						fl.choice = (fl.choice + 1) % len(fl.options)
					} else {
						fl.choice = (fl.choice - 1 + len(fl.options)) % len(fl.options)
					}
				}
				return nil
			case boolField:
				fl.on = !fl.on
				return nil
			}
		}
	}
	fl := f.fields[f.focus]
	if fl.kind != textField {
		return nil
	}
	var cmd tea.Cmd
	fl.input, cmd = fl.input.Update(msg)
	return cmd
}

// View renders all rows, marking the focused one.
func (f *Form) View(styles Styles) string {
	var b strings.Builder
	for i, fl := range f.fields {
		cursor := "  "
		label := styles.Label.Render(fl.Label)
		if i == f.focus {
			cursor = styles.Title.Render("❯ ")
		}
		switch fl.kind {
		case textField:
			fmt.Fprintf(&b, "%s%s %s\n", cursor, label, fl.input.View())
		case choiceField:
			val := ""
			if len(fl.options) > 0 {
				val = fl.options[fl.choice]
			}
			fmt.Fprintf(&b, "%s%s ◂ %s ▸\n", cursor, label, styles.Body.Render(val))
		case boolField:
			mark := styles.Muted.Render("[ ]")
			if fl.on {
				mark = styles.Success.Render("[✓]")
			}
			fmt.Fprintf(&b, "%s%s %s\n", cursor, label, mark)
		}
	}
	return b.String()
}
