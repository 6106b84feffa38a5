package app

import (
	"encoding/json"
	"os"
	"slices"
	"strings"

	"github.com/treykane/room-area/internal/config"
)

// Actions are the layer between physical keys and behavior: a key is looked
// up in keyToAction and the resulting action is dispatched in handleKey.
// Users override defaults via "keybindings" in config.json or a keymap file
// (default ~/.room-area/keymap.json).
const (
	// actionSubmit formats the focused field and advances, creating a row
	// when leaving the last field of the last row.
	actionSubmit = "field.submit"

	// actionNextField moves to the next visible field without creating rows.
	actionNextField = "field.next"

	// actionPrevField moves to the previous visible field.
	actionPrevField = "field.prev"

	actionRowUp   = "row.up"
	actionRowDown = "row.down"

	// actionToggleExpand shows or hides the extra sub-row of the focused room.
	actionToggleExpand = "row.expand.toggle"

	// actionAddRows appends the selected number of rows.
	actionAddRows = "rows.add"

	// actionCycleAddCount steps through config.AddCountOptions.
	actionCycleAddCount = "rows.count.cycle"

	// actionReset arms the reset; a second press inside the window resets.
	actionReset = "sheet.reset"

	// actionCopyTotal copies the formatted total to the system clipboard.
	actionCopyTotal = "total.copy"

	actionHelp = "help.toggle"
	actionQuit = "app.quit"
)

// defaultActionKeys maps each action to its factory-default keys, in Bubble
// Tea notation. Printable keys other than digits and "." are safe to bind
// since the field validator rejects them anyway.
var defaultActionKeys = map[string][]string{
	actionSubmit:        {"enter"},
	actionNextField:     {"tab"},
	actionPrevField:     {"shift+tab"},
	actionRowUp:         {"up"},
	actionRowDown:       {"down"},
	actionToggleExpand:  {"ctrl+t"},
	actionAddRows:       {"ctrl+n"},
	actionCycleAddCount: {"ctrl+o"},
	actionReset:         {"ctrl+r"},
	actionCopyTotal:     {"ctrl+y"},
	actionHelp:          {"?", "f1"},
	actionQuit:          {"ctrl+c", "ctrl+q"},
}

// loadKeybindings builds the key↔action maps from, in increasing priority:
// defaultActionKeys, cfg.Keybindings and the keymap file at cfg.KeymapFile.
// An override replaces the action's whole default key set. Unknown actions
// and key conflicts are logged and ignored.
func (m *Model) loadKeybindings(cfg config.Config) {
	m.keyForAction = map[string][]string{}
	for action, keys := range defaultActionKeys {
		m.keyForAction[action] = append([]string(nil), keys...)
	}

	for action, key := range cfg.Keybindings {
		m.applyKeybindingOverride(action, key)
	}

	for action, key := range loadKeymapFile(cfg.KeymapFile) {
		m.applyKeybindingOverride(action, key)
	}

	m.rebuildActionKeyIndex()
}

// loadKeymapFile reads a flat JSON object of action → key. A missing file is
// not an error.
func loadKeymapFile(path string) map[string]string {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			appLog.Warn("read keymap file", "path", path, "error", err)
		}
		return nil
	}
	overrides := map[string]string{}
	if err := json.Unmarshal(data, &overrides); err != nil {
		appLog.Warn("parse keymap file", "path", path, "error", err)
		return nil
	}
	return overrides
}

func (m *Model) applyKeybindingOverride(action, key string) {
	action = strings.TrimSpace(action)
	key = normalizeKeyString(key)
	if action == "" || key == "" {
		return
	}
	if _, ok := defaultActionKeys[action]; !ok {
		appLog.Warn("ignore unknown keybinding action", "action", action)
		return
	}
	m.keyForAction[action] = []string{key}
}

// rebuildActionKeyIndex builds keyToAction. Actions are visited in sorted
// order so that on a conflict the same action wins on every start.
func (m *Model) rebuildActionKeyIndex() {
	actions := make([]string, 0, len(m.keyForAction))
	for action := range m.keyForAction {
		actions = append(actions, action)
	}
	slices.Sort(actions)

	m.keyToAction = map[string]string{}
	for _, action := range actions {
		for _, key := range m.keyForAction[action] {
			if key == "" {
				continue
			}
			if existing, ok := m.keyToAction[key]; ok && existing != action {
				appLog.Warn("keybinding conflict ignored", "key", key, "action", action, "existing_action", existing)
				continue
			}
			m.keyToAction[key] = action
		}
	}
}

// normalizeKeyString lowercases a key and maps a single uppercase letter
// ("Y") to "shift+y", matching how Bubble Tea may report shifted letters.
func normalizeKeyString(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if len([]rune(key)) == 1 && strings.ToUpper(key) == key && strings.ToLower(key) != key {
		return "shift+" + strings.ToLower(key)
	}
	return strings.ToLower(key)
}

// actionForKey returns the action bound to key, or "".
func (m *Model) actionForKey(key string) string {
	if m.keyToAction == nil {
		return ""
	}
	return m.keyToAction[normalizeKeyString(key)]
}

func (m *Model) actionKeyLabels(action string) []string {
	keys, ok := m.keyForAction[action]
	if !ok || len(keys) == 0 {
		return nil
	}
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		label := humanizeKeyLabel(key)
		if label == "" || slices.Contains(labels, label) {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

func (m *Model) primaryActionKey(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return keys[0]
}

func (m *Model) allActionKeys(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return strings.Join(keys, ", ")
}

func humanizeKeyLabel(key string) string {
	normalized := normalizeKeyString(key)
	if normalized == "" {
		return ""
	}
	special := map[string]string{
		"up":    "↑",
		"down":  "↓",
		"left":  "←",
		"right": "→",
		"enter": "Enter",
		"esc":   "Esc",
		"tab":   "Tab",
		"space": "Space",
	}
	parts := strings.Split(normalized, "+")
	for i, part := range parts {
		switch part {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		default:
			if label, ok := special[part]; ok {
				parts[i] = label
				continue
			}
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "+")
}
