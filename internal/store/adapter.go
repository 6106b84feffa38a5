package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/treykane/room-area/internal/area"
)

// StorageKey names the stored sheet. The suffix is bumped when the payload
// changes incompatibly.
const StorageKey = "room_area_rows_v10"

// payload is the stored JSON shape: {"rows": [...]}.
type payload struct {
	Rows []area.Row `json:"rows"`
}

// storedPayload mirrors payload with every member optional so older or
// hand-edited data decodes field by field.
type storedPayload struct {
	Rows []storedRow `json:"rows"`
}

// storedRow keeps each member raw so a mistyped member defaults on its own
// instead of failing the whole payload.
type storedRow struct {
	Main      json.RawMessage `json:"main"`
	Post      json.RawMessage `json:"post"`
	ExtraMain json.RawMessage `json:"extraMain"`
	ExtraPost json.RawMessage `json:"extraPost"`
	Expanded  json.RawMessage `json:"expanded"`
}

type storedPair struct {
	W json.RawMessage `json:"w"`
	H json.RawMessage `json:"h"`
}

var errNoRows = errors.New("no rows")

// Encode serializes rows as the stored JSON payload.
func Encode(rows []area.Row) (string, error) {
	if rows == nil {
		rows = []area.Row{}
	}
	data, err := json.Marshal(payload{Rows: rows})
	if err != nil {
		return "", fmt.Errorf("encode rows: %w", err)
	}
	return string(data), nil
}

// Decode parses a stored payload. Missing or mistyped pairs become empty
// pairs, pair members that are not valid field text become empty, and
// expanded follows JSON truthiness (missing is false). Malformed JSON, a
// wrong shape or an empty row list is an error.
func Decode(raw string) ([]area.Row, error) {
	var stored storedPayload
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	if len(stored.Rows) == 0 {
		return nil, errNoRows
	}

	rows := make([]area.Row, len(stored.Rows))
	for i, r := range stored.Rows {
		rows[i] = area.Row{
			Main:      pairValue(r.Main),
			Post:      pairValue(r.Post),
			ExtraMain: pairValue(r.ExtraMain),
			ExtraPost: pairValue(r.ExtraPost),
			Expanded:  truthy(r.Expanded),
		}
	}
	return rows, nil
}

func pairValue(raw json.RawMessage) area.Pair {
	var p storedPair
	if len(raw) == 0 || json.Unmarshal(raw, &p) != nil {
		return area.Pair{}
	}
	return area.Pair{W: fieldText(p.W), H: fieldText(p.H)}
}

// truthy reports whether raw is a JSON value other than false, null, 0 or
// "". Older payloads may carry non-boolean flags.
func truthy(raw json.RawMessage) bool {
	var v any
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return false
	}
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	default:
		return true
	}
}

func fieldText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	if !area.ValidKeystroke(s) {
		return ""
	}
	return s
}

// Adapter reads and writes the sheet under StorageKey.
type Adapter struct {
	kv KV
}

// NewAdapter wraps kv.
func NewAdapter(kv KV) *Adapter {
	return &Adapter{kv: kv}
}

// Load returns the stored rows. Missing or unusable data reports ok=false so
// the caller falls back to the default sheet; errors are logged, never
// returned.
func (a *Adapter) Load() ([]area.Row, bool) {
	raw, found, err := a.kv.Get(StorageKey)
	if err != nil {
		storeLog.Warn("read stored rows", "key", StorageKey, "error", err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	rows, err := Decode(raw)
	if err != nil {
		storeLog.Warn("discard stored rows", "key", StorageKey, "error", err)
		return nil, false
	}
	storeLog.Debug("loaded rows", "count", len(rows))
	return rows, true
}

// Save writes rows under StorageKey.
func (a *Adapter) Save(rows []area.Row) error {
	raw, err := Encode(rows)
	if err != nil {
		return err
	}
	if err := a.kv.Set(StorageKey, raw); err != nil {
		return fmt.Errorf("save rows: %w", err)
	}
	storeLog.Debug("saved rows", "count", len(rows))
	return nil
}

// Clear removes the stored entry.
func (a *Adapter) Clear() error {
	if err := a.kv.Remove(StorageKey); err != nil {
		return fmt.Errorf("clear rows: %w", err)
	}
	return nil
}
