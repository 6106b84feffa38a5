package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
)

// helpMarkdown builds the help page from the active keybindings so remapped
// keys show up correctly.
func (m *Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Room area calculator\n\n")
	b.WriteString("Each row is one room: **room width × height** minus the **post** (column) ")
	b.WriteString("rectangle. Irregular rooms can be expanded to a second line with another ")
	b.WriteString("room/post pair that is added to the same row.\n\n")
	b.WriteString("Fields accept digits with up to two decimals. Typing a full value such as ")
	b.WriteString("`4.25` jumps to the next field.\n\n")
	b.WriteString("## Keys\n\n")
	b.WriteString("| Key | Action |\n|-----|--------|\n")

	entries := []struct {
		action string
		label  string
	}{
		{actionSubmit, "Format field and move on (adds a row after the last one)"},
		{actionNextField, "Next field"},
		{actionPrevField, "Previous field"},
		{actionRowUp, "Same field, row above"},
		{actionRowDown, "Same field, row below"},
		{actionToggleExpand, "Expand or collapse the second line of a room"},
		{actionAddRows, fmt.Sprintf("Add rows (currently %d)", m.addCount)},
		{actionCycleAddCount, "Change how many rows are added"},
		{actionReset, "Reset all rows (press twice)"},
		{actionCopyTotal, "Copy the total to the clipboard"},
		{actionHelp, "Toggle this help"},
		{actionQuit, "Quit"},
	}
	for _, e := range entries {
		fmt.Fprintf(&b, "| %s | %s |\n", m.allActionKeys(e.action, "unbound"), e.label)
	}
	b.WriteString("\nRows are saved automatically.\n")
	return b.String()
}

// refreshHelp sizes the help viewport to the window and re-renders it.
func (m *Model) refreshHelp() {
	width := max(20, m.width-popupStyle.GetHorizontalFrameSize())
	height := max(3, m.height-popupStyle.GetVerticalFrameSize()-1)
	m.help.Width = width
	m.help.Height = height
	m.help.SetContent(renderMarkdown(m.helpMarkdown(), width))
}

// renderMarkdown converts Markdown to ANSI output. On failure the raw text is
// returned so the user still sees the content.
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamourStyleOption(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		appLog.Error("create markdown renderer", "width", width, "error", err)
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		appLog.Error("render markdown content", "width", width, "error", err)
		return content
	}
	return out
}

// glamourStyleOption resolves the style from ROOM_AREA_GLAMOUR_STYLE, then
// GLAMOUR_STYLE, then "dark". "auto" queries the terminal background.
func glamourStyleOption() glamour.TermRendererOption {
	style := strings.ToLower(strings.TrimSpace(os.Getenv("ROOM_AREA_GLAMOUR_STYLE")))
	if style == "" {
		style = strings.ToLower(strings.TrimSpace(os.Getenv("GLAMOUR_STYLE")))
	}
	if style == "auto" {
		return glamour.WithAutoStyle()
	}
	switch style {
	case "dark", "light", "notty":
		return glamour.WithStandardStyle(style)
	default:
		return glamour.WithStandardStyle("dark")
	}
}
