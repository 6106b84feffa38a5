package area

// Focus identifies the field that receives input.
type Focus struct {
	Row int
	Key FieldKey
}

var (
	collapsedOrder = []FieldKey{MainW, MainH, PostW, PostH}
	expandedOrder  = []FieldKey{MainW, MainH, PostW, PostH, ExtraMainW, ExtraMainH, ExtraPostW, ExtraPostH}
)

// Order returns the active field order for a row in the given mode.
func Order(expanded bool) []FieldKey {
	if expanded {
		return expandedOrder
	}
	return collapsedOrder
}

func indexOf(order []FieldKey, key FieldKey) int {
	for i, k := range order {
		if k == key {
			return i
		}
	}
	return -1
}

// Next returns the field after f. From the last active field of a row it
// moves to main.w of the following row, appending that row when f is on the
// last one. A key outside the row's active order does not move.
func Next(s *Sheet, f Focus) (Focus, bool) {
	row, ok := s.Row(f.Row)
	if !ok {
		return f, false
	}
	order := Order(row.Expanded)
	idx := indexOf(order, f.Key)
	if idx < 0 {
		return f, false
	}
	if idx < len(order)-1 {
		return Focus{Row: f.Row, Key: order[idx+1]}, true
	}
	s.EnsureLength(f.Row + 2)
	return Focus{Row: f.Row + 1, Key: MainW}, true
}

// Prev returns the field before f, wrapping to the last active field of the
// previous row. It never creates rows.
func Prev(s *Sheet, f Focus) (Focus, bool) {
	row, ok := s.Row(f.Row)
	if !ok {
		return f, false
	}
	idx := indexOf(Order(row.Expanded), f.Key)
	switch {
	case idx > 0:
		return Focus{Row: f.Row, Key: Order(row.Expanded)[idx-1]}, true
	case idx == 0 && f.Row > 0:
		prev, _ := s.Row(f.Row - 1)
		order := Order(prev.Expanded)
		return Focus{Row: f.Row - 1, Key: order[len(order)-1]}, true
	}
	return f, false
}

// Up moves to the same column of the previous row.
func Up(s *Sheet, f Focus) (Focus, bool) {
	if f.Row <= 0 || f.Row >= s.Len() {
		return f, false
	}
	return Clamp(s, Focus{Row: f.Row - 1, Key: f.Key}), true
}

// Down moves to the same column of the next row. It never creates rows.
func Down(s *Sheet, f Focus) (Focus, bool) {
	if f.Row < 0 || f.Row >= s.Len()-1 {
		return f, false
	}
	return Clamp(s, Focus{Row: f.Row + 1, Key: f.Key}), true
}

// Clamp pulls f onto an existing row and onto a field that row shows. A
// collapsed row maps extra fields to their main/post counterparts.
func Clamp(s *Sheet, f Focus) Focus {
	if s.Len() == 0 {
		return Focus{Key: MainW}
	}
	f.Row = max(0, min(f.Row, s.Len()-1))
	row, _ := s.Row(f.Row)
	if !row.Expanded && f.Key.Part.Extra() {
		f.Key.Part -= PartExtraMain
	}
	return f
}
