// Package wizard models the modal creation dialogs: a bounded step machine
// plus one draft type per entity. Drafts accumulate field edits and gate
// Commit on their required fields; the step machine only tracks position, it
// knows nothing about what each step shows.
package wizard

// Machine is the step state of one open dialog. Zero value is a closed
// single-step dialog; construct with NewMachine.
type Machine struct {
	steps  int
	step   int
	open   bool
	editID string
}

// NewMachine builds a closed machine with the given number of steps.
// Single-field dialogs use steps = 1.
func NewMachine(steps int) Machine {
	if steps < 1 {
		steps = 1
	}
	return Machine{steps: steps}
}

// Open starts the dialog at the first step. A non-empty editID marks the
// dialog as editing an existing entity rather than creating one.
func (m *Machine) Open(editID string) {
	m.open = true
	m.step = 0
	m.editID = editID
}

// Next advances one step, stopping at the last.
func (m *Machine) Next() {
	if m.open && m.step < m.steps-1 {
		m.step++
	}
}

// Back retreats one step, stopping at the first.
func (m *Machine) Back() {
	if m.open && m.step > 0 {
		m.step--
	}
}

// Cancel closes the dialog, discarding position and edit target.
func (m *Machine) Cancel() {
	m.open = false
	m.step = 0
	m.editID = ""
}

// IsOpen reports whether the dialog is showing.
func (m Machine) IsOpen() bool { return m.open }

// Step is the zero-based current step.
func (m Machine) Step() int { return m.step }

// Steps is the total step count.
func (m Machine) Steps() int { return m.steps }

// EditID is the id of the entity being edited, empty when creating.
func (m Machine) EditID() string { return m.editID }

// Editing reports whether the dialog targets an existing entity.
func (m Machine) Editing() bool { return m.editID != "" }

// AtLast reports whether the dialog is on its final step.
func (m Machine) AtLast() bool { return m.step == m.steps-1 }

// AtFirst reports whether the dialog is on its first step.
func (m Machine) AtFirst() bool { return m.step == 0 }
