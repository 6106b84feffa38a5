package area

import "testing"

func TestNextCollapsedOrder(t *testing.T) {
	s := New(nil)
	f := Focus{Row: 0, Key: MainW}
	want := []FieldKey{MainH, PostW, PostH}
	for _, key := range want {
		var ok bool
		f, ok = Next(s, f)
		if !ok || f.Row != 0 || f.Key != key {
			t.Fatalf("expected row 0 %s, got %+v (ok=%v)", key, f, ok)
		}
	}

	f, ok := Next(s, f)
	if !ok || f != (Focus{Row: 1, Key: MainW}) {
		t.Fatalf("expected wrap to row 1 main.w, got %+v", f)
	}
	if s.Len() != DefaultRowCount {
		t.Fatalf("wrap inside sheet should not append, got %d rows", s.Len())
	}
}

func TestNextExpandedOrder(t *testing.T) {
	s := New(nil)
	s.ToggleExpanded(2)

	f, _ := Next(s, Focus{Row: 2, Key: PostH})
	if f != (Focus{Row: 2, Key: ExtraMainW}) {
		t.Fatalf("expected extraMain.w after post.h on expanded row, got %+v", f)
	}
	f, _ = Next(s, Focus{Row: 2, Key: ExtraPostH})
	if f != (Focus{Row: 3, Key: MainW}) {
		t.Fatalf("expected row 3 main.w after extraPost.h, got %+v", f)
	}
}

func TestNextFromLastRowAppends(t *testing.T) {
	s := New(nil)
	last := s.Len() - 1

	f, ok := Next(s, Focus{Row: last, Key: PostH})
	if !ok {
		t.Fatal("expected a move")
	}
	if s.Len() != DefaultRowCount+1 {
		t.Fatalf("expected a row to be appended, got %d rows", s.Len())
	}
	if f != (Focus{Row: last + 1, Key: MainW}) {
		t.Fatalf("expected focus on new row main.w, got %+v", f)
	}
}

func TestNextIgnoresHiddenExtraField(t *testing.T) {
	s := New(nil)
	f, ok := Next(s, Focus{Row: 0, Key: ExtraPostH})
	if ok || f != (Focus{Row: 0, Key: ExtraPostH}) {
		t.Fatalf("expected no move from hidden field, got %+v (ok=%v)", f, ok)
	}
	if s.Len() != DefaultRowCount {
		t.Fatal("hidden field must not append rows")
	}
}

func TestPrevWrapsToPreviousRowLastField(t *testing.T) {
	s := New(nil)
	s.ToggleExpanded(0)

	f, ok := Prev(s, Focus{Row: 1, Key: MainW})
	if !ok || f != (Focus{Row: 0, Key: ExtraPostH}) {
		t.Fatalf("expected row 0 extraPost.h, got %+v", f)
	}
	f, ok = Prev(s, Focus{Row: 0, Key: MainW})
	if ok || f != (Focus{Row: 0, Key: MainW}) {
		t.Fatalf("expected no move before the first field, got %+v", f)
	}
}

func TestUpDownClampHiddenFields(t *testing.T) {
	s := New(nil)
	s.ToggleExpanded(4)

	f, ok := Down(s, Focus{Row: 4, Key: ExtraMainH})
	if !ok || f != (Focus{Row: 5, Key: MainH}) {
		t.Fatalf("expected row 5 main.h, got %+v", f)
	}
	f, ok = Up(s, Focus{Row: 4, Key: ExtraPostW})
	if !ok || f != (Focus{Row: 3, Key: PostW}) {
		t.Fatalf("expected row 3 post.w, got %+v", f)
	}
	if _, ok := Down(s, Focus{Row: s.Len() - 1, Key: MainW}); ok {
		t.Fatal("Down past the last row should not move")
	}
	if _, ok := Up(s, Focus{Row: 0, Key: MainW}); ok {
		t.Fatal("Up from the first row should not move")
	}
}

func TestClampOutOfRangeRow(t *testing.T) {
	s := New(nil)
	f := Clamp(s, Focus{Row: 40, Key: ExtraMainW})
	if f != (Focus{Row: s.Len() - 1, Key: MainW}) {
		t.Fatalf("unexpected clamp result %+v", f)
	}
}
