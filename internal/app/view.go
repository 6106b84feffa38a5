package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/room-area/internal/area"
)

var fieldHeaders = map[area.FieldKey]string{
	area.MainW: "Room W (m)",
	area.MainH: "Room H (m)",
	area.PostW: "Post W (m)",
	area.PostH: "Post H (m)",
}

// View draws header, summary bar, table, footer total and status line.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.showHelp {
		body := popupStyle.Width(max(0, m.width-popupStyle.GetHorizontalFrameSize())).Render(m.help.View())
		body = padBlock(body, m.width, max(0, m.height-1))
		return body + "\n" + m.renderStatus(m.width)
	}

	total := area.FormatArea(m.sheet.Total())
	lines := []string{
		titleStyle.Render("Room area calculator"),
		subtitleStyle.Render("Most rooms need one line. Expand (▸) only irregular rooms."),
		m.renderSummary(total),
		m.renderTableHeader(),
	}
	lines = append(lines, m.renderTable(m.tableHeight())...)
	body := padBlock(strings.Join(lines, "\n"), m.width, max(0, m.height-FooterRows))

	footer := lipgloss.PlaceHorizontal(m.width, lipgloss.Right, totalLabel.Render("(All) total ㎡ ")+totalValue.Render(total))
	return padBlock(body+"\n"+footer+"\n"+m.renderStatus(m.width), m.width, m.height)
}

// renderSummary shows the live total and the add/reset controls.
func (m *Model) renderSummary(total string) string {
	reset := controlStyle.Render("Reset " + m.primaryActionKey(actionReset, "Ctrl+R"))
	if m.resetArmed {
		reset = armedStyle.Render("Confirm reset " + m.primaryActionKey(actionReset, "Ctrl+R"))
	}
	parts := []string{
		totalLabel.Render("Total ㎡ ") + totalValue.Render(total),
		controlStyle.Render("Add " + strconv.Itoa(m.addCount) + " rows " + m.primaryActionKey(actionAddRows, "Ctrl+N")),
		mutedStyle.Render("(" + m.primaryActionKey(actionCycleAddCount, "Ctrl+O") + " to change)"),
		reset,
	}
	return truncate(summaryStyle.Render(strings.Join(parts, "   ")), m.width)
}

func (m *Model) renderTableHeader() string {
	cells := []string{
		cellRight("#", IndexColumnWidth),
		cellLeft("", ToggleColumnWidth),
	}
	for _, key := range area.Order(false) {
		cells = append(cells, cellLeft(fieldHeaders[key], FieldColumnWidth))
	}
	cells = append(cells, cellRight("Area ㎡", AreaColumnWidth))
	return headerStyle.Render(strings.Join(cells, strings.Repeat(" ", ColumnGap)))
}

// renderTable returns at most height lines starting at rowOffset. Expanded
// rows take two lines.
func (m *Model) renderTable(height int) []string {
	lines := make([]string, 0, height)
	areas := m.sheet.Areas()
	for i := m.rowOffset; i < m.sheet.Len() && len(lines) < height; i++ {
		row, _ := m.sheet.Row(i)
		lines = append(lines, m.renderRowLine(i, row, areas[i]))
		if row.Expanded {
			lines = append(lines, m.renderExtraLine(i, row))
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return lines
}

func (m *Model) renderRowLine(i int, row area.Row, rowArea float64) string {
	marker := "▸"
	if row.Expanded {
		marker = "▾"
	}
	cells := []string{
		mutedStyle.Render(cellRight(strconv.Itoa(i+1), IndexColumnWidth)),
		cellLeft(" "+marker, ToggleColumnWidth),
	}
	for _, key := range area.Order(false) {
		cells = append(cells, m.renderField(i, key, row.Field(key)))
	}
	cells = append(cells, areaStyle.Render(cellRight(area.FormatArea(rowArea), AreaColumnWidth)))
	return strings.Join(cells, strings.Repeat(" ", ColumnGap))
}

func (m *Model) renderExtraLine(i int, row area.Row) string {
	cells := []string{
		cellLeft("", IndexColumnWidth),
		mutedStyle.Render(cellLeft(" +", ToggleColumnWidth)),
	}
	for _, key := range area.Order(true)[len(area.Order(false)):] {
		cells = append(cells, m.renderField(i, key, row.Field(key)))
	}
	return extraRowStyle.Render(strings.Join(cells, strings.Repeat(" ", ColumnGap)))
}

func (m *Model) renderField(i int, key area.FieldKey, text string) string {
	if m.focus == (area.Focus{Row: i, Key: key}) {
		return focusStyle.Width(FieldColumnWidth).Render(truncate(m.input.View(), FieldColumnWidth))
	}
	if text == "" {
		return mutedStyle.Render(cellLeft(Placeholder, FieldColumnWidth))
	}
	return cellLeft(text, FieldColumnWidth)
}

func (m *Model) renderStatus(width int) string {
	help := m.primaryActionKey(actionHelp, "?") + " help  " +
		m.primaryActionKey(actionSubmit, "Enter") + " next  " + m.primaryActionKey(actionToggleExpand, "Ctrl+T") + " expand  " +
		m.primaryActionKey(actionQuit, "Ctrl+C") + " quit"
	line := help
	if m.status != "" {
		line = help + " | " + m.status
	}
	return statusStyle.Width(width).Render(truncate(line, width))
}

func (m *Model) tableHeight() int {
	return max(1, m.height-HeaderRows-FooterRows)
}

// rowLines is the number of table lines row i occupies.
func (m *Model) rowLines(i int) int {
	row, ok := m.sheet.Row(i)
	if ok && row.Expanded {
		return 2
	}
	return 1
}

// adjustRowOffset scrolls the table so the focused row is fully visible.
func (m *Model) adjustRowOffset() {
	m.rowOffset = clamp(m.rowOffset, 0, max(0, m.sheet.Len()-1))
	if m.focus.Row < m.rowOffset {
		m.rowOffset = m.focus.Row
	}
	if m.height == 0 {
		return
	}
	budget := m.tableHeight()
	for m.rowOffset < m.focus.Row {
		used := 0
		for i := m.rowOffset; i <= m.focus.Row; i++ {
			used += m.rowLines(i)
		}
		if used <= budget {
			break
		}
		m.rowOffset++
	}
}
