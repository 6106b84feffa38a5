package app

import (
	"log/slog"

	"github.com/treykane/room-area/internal/logging"
)

// appLog is the package-level logger, tagged component=app. Output goes
// wherever the logging package is configured (stderr or ROOM_AREA_LOG_FILE).
var appLog = logging.New("app")

// setStatusError shows status on the status line and logs err with any
// extra slog key-value attrs.
//
//	m.setStatusError("Save failed", err, "rows", m.sheet.Len())
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	fields := make([]any, 0, len(attrs)+2)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}
