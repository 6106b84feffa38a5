package app

import (
	"github.com/atotto/clipboard"

	"github.com/treykane/room-area/internal/area"
)

// clipboardWrite is swapped in tests; CI machines have no clipboard.
var clipboardWrite = clipboard.WriteAll

// copyTotalToClipboard copies the formatted sheet total.
func (m *Model) copyTotalToClipboard() {
	total := area.FormatArea(m.sheet.Total())
	if err := clipboardWrite(total); err != nil {
		m.setStatusError("Clipboard copy failed", err)
		return
	}
	m.status = "Copied total " + total
}
