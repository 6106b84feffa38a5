package area

// DefaultRowCount is the number of empty rows a new or reset sheet holds.
const DefaultRowCount = 10

// Sheet is the ordered collection of rooms. Row index is display order and
// storage order. Rows are appended, never removed individually.
type Sheet struct {
	rows []Row
}

// New adopts rows loaded from storage. An empty slice yields the default
// sheet of DefaultRowCount empty rows.
func New(rows []Row) *Sheet {
	s := &Sheet{}
	if len(rows) == 0 {
		s.Reset()
		return s
	}
	s.rows = append([]Row(nil), rows...)
	return s
}

// Len returns the number of rows.
func (s *Sheet) Len() int {
	return len(s.rows)
}

// Row returns a copy of row i. ok is false when i is out of range.
func (s *Sheet) Row(i int) (Row, bool) {
	if i < 0 || i >= len(s.rows) {
		return Row{}, false
	}
	return s.rows[i], true
}

// Rows returns a copy of every row, suitable for serialization.
func (s *Sheet) Rows() []Row {
	return append([]Row(nil), s.rows...)
}

// Append adds n empty rows to the end.
func (s *Sheet) Append(n int) bool {
	if n <= 0 {
		return false
	}
	s.rows = append(s.rows, make([]Row, n)...)
	return true
}

// EnsureLength appends just enough empty rows to reach min.
func (s *Sheet) EnsureLength(min int) bool {
	return s.Append(min - len(s.rows))
}

// SetField stores text in one field. Out-of-range rows are ignored; callers
// extend the sheet with EnsureLength first.
func (s *Sheet) SetField(row int, key FieldKey, text string) bool {
	if row < 0 || row >= len(s.rows) {
		return false
	}
	if s.rows[row].Field(key) == text {
		return false
	}
	s.rows[row].SetField(key, text)
	return true
}

// FormatField applies blur formatting to one field.
func (s *Sheet) FormatField(row int, key FieldKey) bool {
	r, ok := s.Row(row)
	if !ok {
		return false
	}
	return s.SetField(row, key, Format(r.Field(key)))
}

// ToggleExpanded flips the expanded flag of a row.
func (s *Sheet) ToggleExpanded(row int) bool {
	if row < 0 || row >= len(s.rows) {
		return false
	}
	s.rows[row].ToggleExpanded()
	return true
}

// Areas returns the net area of every row.
func (s *Sheet) Areas() []float64 {
	areas := make([]float64, len(s.rows))
	for i, r := range s.rows {
		areas[i] = r.NetArea()
	}
	return areas
}

// Total sums the current net areas. It is computed from row state on every
// call.
func (s *Sheet) Total() float64 {
	var sum float64
	for _, r := range s.rows {
		sum += r.NetArea()
	}
	return Round2(sum)
}

// Reset replaces every row with DefaultRowCount empty rows.
func (s *Sheet) Reset() {
	s.rows = make([]Row, DefaultRowCount)
}
