package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// saveTickMsg fires when a save's quiet window elapses. gen identifies the
// save so that superseded windows are ignored.
type saveTickMsg struct {
	gen uint64
}

// markChanged schedules a save after the quiet window. Each call supersedes
// any pending save; after a reset the first call is skipped.
func (m *Model) markChanged() tea.Cmd {
	gen, ok := m.saves.Schedule()
	if !ok {
		return nil
	}
	return tea.Tick(m.saveDelay, func(time.Time) tea.Msg {
		return saveTickMsg{gen: gen}
	})
}

// handleSaveTick writes the sheet if msg is the newest pending save.
func (m *Model) handleSaveTick(msg saveTickMsg) (tea.Model, tea.Cmd) {
	if !m.saves.Fire(msg.gen) {
		return m, nil
	}
	m.save()
	return m, nil
}

// flushSave writes a pending save immediately. Called on quit so the last
// edits inside the quiet window are not lost.
func (m *Model) flushSave() {
	if !m.saves.Pending() {
		return
	}
	m.saves.Cancel()
	m.save()
}

func (m *Model) save() {
	if err := m.persist.Save(m.sheet.Rows()); err != nil {
		m.setStatusError("Save failed", err, "rows", m.sheet.Len())
	}
}
