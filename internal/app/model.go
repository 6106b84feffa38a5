package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/room-area/internal/area"
	"github.com/treykane/room-area/internal/config"
	"github.com/treykane/room-area/internal/store"
)

// Model holds the Bubble Tea state for the sheet UI. It owns the row
// collection, the persistence adapter and both timers; nothing is global.
type Model struct {
	// Sheet state
	sheet *area.Sheet
	focus area.Focus

	// Persistence
	persist   *store.Adapter
	saves     store.Debouncer
	saveDelay time.Duration

	// Two-step reset
	resetDelay time.Duration
	resetArmed bool
	resetSeq   int

	// Controls
	addCount int

	// UI widgets
	input    textinput.Model
	help     viewport.Model
	showHelp bool
	status   string

	// Keybindings
	keyForAction map[string][]string
	keyToAction  map[string]string

	// Layout sizing
	width     int
	height    int
	rowOffset int
}

// New builds the model from cfg, loading stored rows through persist. Missing
// or unusable stored data yields the default sheet.
func New(cfg config.Config, persist *store.Adapter) *Model {
	rows, loaded := persist.Load()
	sheet := area.New(rows)

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = Placeholder
	input.Width = FieldColumnWidth - 1
	input.Cursor.Style = focusStyle
	input.TextStyle = focusStyle
	input.PlaceholderStyle = focusStyle
	input.Focus()

	m := &Model{
		sheet:      sheet,
		persist:    persist,
		saveDelay:  cfg.SaveDebounce(),
		resetDelay: cfg.ResetConfirm(),
		addCount:   cfg.AddCount,
		input:      input,
		help:       viewport.New(0, 0),
		status:     "Ready",
	}
	if m.addCount <= 0 {
		m.addCount = config.DefaultAddCount
	}
	if loaded {
		m.status = fmt.Sprintf("Loaded %d rows", sheet.Len())
	}
	m.loadKeybindings(cfg)
	m.setFocus(area.Focus{Row: 0, Key: area.MainW})
	return m
}

// Init starts the cursor blink of the focused cell.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case saveTickMsg:
		return m.handleSaveTick(msg)
	case resetDisarmMsg:
		return m.handleResetDisarm(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleWindowResize updates layout dimensions after terminal resize.
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.adjustRowOffset()
	if m.showHelp {
		m.refreshHelp()
	}
	return m, nil
}

// Total returns the live sheet total.
func (m *Model) Total() float64 {
	return m.sheet.Total()
}
