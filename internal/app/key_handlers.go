package app

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/room-area/internal/config"
)

// handleKey routes a key press: the help overlay first, then bound actions,
// and anything else goes to the focused cell.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.showHelp {
		return m.handleHelpKey(msg)
	}

	switch m.actionForKey(key) {
	case actionQuit:
		m.flushSave()
		return m, tea.Quit
	case actionHelp:
		return m.toggleHelp()
	case actionSubmit:
		return m, m.advance()
	case actionNextField:
		return m, m.nextVisible()
	case actionPrevField:
		return m, m.prevVisible()
	case actionRowUp:
		return m, m.rowUp()
	case actionRowDown:
		return m, m.rowDown()
	case actionToggleExpand:
		return m, m.toggleExpand()
	case actionAddRows:
		return m.handleAddRows()
	case actionCycleAddCount:
		m.cycleAddCount()
		return m, nil
	case actionReset:
		return m.handleReset()
	case actionCopyTotal:
		m.copyTotalToClipboard()
		return m, nil
	}

	return m, m.editField(msg)
}

// handleHelpKey scrolls or closes the help overlay.
func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.actionForKey(msg.String()); {
	case action == actionQuit:
		m.flushSave()
		return m, tea.Quit
	case action == actionHelp, msg.String() == "esc", msg.String() == "q":
		return m.toggleHelp()
	}
	var cmd tea.Cmd
	m.help, cmd = m.help.Update(msg)
	return m, cmd
}

func (m *Model) toggleHelp() (tea.Model, tea.Cmd) {
	m.showHelp = !m.showHelp
	if m.showHelp {
		m.refreshHelp()
		m.help.GotoTop()
		m.status = ""
	}
	return m, nil
}

func (m *Model) handleAddRows() (tea.Model, tea.Cmd) {
	if !m.sheet.Append(m.addCount) {
		return m, nil
	}
	m.status = fmt.Sprintf("Added %d rows", m.addCount)
	return m, m.markChanged()
}

// cycleAddCount steps to the next entry of config.AddCountOptions.
func (m *Model) cycleAddCount() {
	idx := slices.Index(config.AddCountOptions, m.addCount)
	m.addCount = config.AddCountOptions[(idx+1)%len(config.AddCountOptions)]
	m.status = fmt.Sprintf("Add %d rows at a time", m.addCount)
}
