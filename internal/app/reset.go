package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/room-area/internal/area"
)

// resetDisarmMsg ends the confirmation window opened by the first reset
// press. seq ties it to that press.
type resetDisarmMsg struct {
	seq int
}

// handleReset implements the two-step reset. The first press arms it for
// resetDelay; a second press inside the window clears storage and restores
// the default sheet.
func (m *Model) handleReset() (tea.Model, tea.Cmd) {
	if !m.resetArmed {
		m.resetArmed = true
		m.resetSeq++
		seq := m.resetSeq
		m.status = fmt.Sprintf("Press %s again within %s to reset all rows",
			m.primaryActionKey(actionReset, "Ctrl+R"), m.resetDelay)
		return m, tea.Tick(m.resetDelay, func(time.Time) tea.Msg {
			return resetDisarmMsg{seq: seq}
		})
	}

	m.resetArmed = false
	m.resetSeq++

	// Clear storage and rebuild in one step; the rebuild itself must not
	// re-persist anything.
	m.saves.Cancel()
	m.saves.SkipNext()
	if err := m.persist.Clear(); err != nil {
		m.setStatusError("Reset could not clear storage", err)
	} else {
		m.status = "Sheet reset"
	}
	m.sheet.Reset()
	cmd := m.markChanged()
	m.setFocus(area.Focus{Row: 0, Key: area.MainW})
	m.rowOffset = 0
	return m, cmd
}

func (m *Model) handleResetDisarm(msg resetDisarmMsg) (tea.Model, tea.Cmd) {
	if !m.resetArmed || msg.seq != m.resetSeq {
		return m, nil
	}
	m.resetArmed = false
	m.status = "Reset cancelled"
	return m, nil
}
