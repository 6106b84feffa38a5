package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/room-area/internal/area"
)

// setFocus points the cell editor at f without formatting the field being
// left. Used at startup and after reset, when the previous field is gone.
func (m *Model) setFocus(f area.Focus) {
	m.focus = area.Clamp(m.sheet, f)
	row, _ := m.sheet.Row(m.focus.Row)
	m.input.SetValue(row.Field(m.focus.Key))
	m.input.CursorEnd()
	m.adjustRowOffset()
}

// moveFocus blurs the current field, formatting it, then focuses f.
func (m *Model) moveFocus(f area.Focus) tea.Cmd {
	cmd := m.blurField()
	m.setFocus(f)
	return cmd
}

// blurField applies two-decimal formatting to the focused field.
func (m *Model) blurField() tea.Cmd {
	if !m.sheet.FormatField(m.focus.Row, m.focus.Key) {
		return nil
	}
	return m.markChanged()
}

// advance moves to the next field, appending a row when leaving the last
// field of the last row. Focus moves only after the row exists.
func (m *Model) advance() tea.Cmd {
	blur := m.blurField()
	before := m.sheet.Len()
	next, ok := area.Next(m.sheet, m.focus)
	if !ok {
		return blur
	}
	var grew tea.Cmd
	if m.sheet.Len() != before {
		grew = m.markChanged()
	}
	m.setFocus(next)
	return tea.Batch(blur, grew)
}

// editField forwards a key to the cell editor and applies the result. An
// edit that fails the keystroke check is reverted. A completed two-decimal
// value auto-advances.
func (m *Model) editField(msg tea.KeyMsg) tea.Cmd {
	before := m.input.Value()
	pos := m.input.Position()

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	after := m.input.Value()
	if after == before {
		return inputCmd
	}
	if !area.ValidKeystroke(after) {
		m.input.SetValue(before)
		m.input.SetCursor(pos)
		return inputCmd
	}

	var saveCmd tea.Cmd
	if m.sheet.SetField(m.focus.Row, m.focus.Key, after) {
		saveCmd = m.markChanged()
	}
	if area.Complete(after) {
		return tea.Batch(inputCmd, saveCmd, m.advance())
	}
	return tea.Batch(inputCmd, saveCmd)
}

// nextVisible moves forward like advance but stops at the last field of the
// sheet instead of appending a row.
func (m *Model) nextVisible() tea.Cmd {
	row, _ := m.sheet.Row(m.focus.Row)
	order := area.Order(row.Expanded)
	if m.focus.Row == m.sheet.Len()-1 && m.focus.Key == order[len(order)-1] {
		return m.blurField()
	}
	return m.advance()
}

func (m *Model) prevVisible() tea.Cmd {
	prev, ok := area.Prev(m.sheet, m.focus)
	if !ok {
		return nil
	}
	return m.moveFocus(prev)
}

func (m *Model) rowUp() tea.Cmd {
	up, ok := area.Up(m.sheet, m.focus)
	if !ok {
		return nil
	}
	return m.moveFocus(up)
}

func (m *Model) rowDown() tea.Cmd {
	down, ok := area.Down(m.sheet, m.focus)
	if !ok {
		return nil
	}
	return m.moveFocus(down)
}

// toggleExpand flips the focused row. Collapsing while an extra field has
// focus moves focus to the matching main/post field.
func (m *Model) toggleExpand() tea.Cmd {
	if !m.sheet.ToggleExpanded(m.focus.Row) {
		return nil
	}
	cmd := m.markChanged()
	row, _ := m.sheet.Row(m.focus.Row)
	if !row.Expanded && m.focus.Key.Part.Extra() {
		return tea.Batch(cmd, m.moveFocus(area.Clamp(m.sheet, m.focus)))
	}
	m.adjustRowOffset()
	return cmd
}
