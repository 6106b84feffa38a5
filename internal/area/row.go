package area

import "fmt"

// Part selects one of the four pairs of a row.
type Part int

const (
	PartMain Part = iota
	PartPost
	PartExtraMain
	PartExtraPost
)

var partNames = [...]string{"main", "post", "extraMain", "extraPost"}

func (p Part) String() string {
	if p < PartMain || p > PartExtraPost {
		return fmt.Sprintf("Part(%d)", int(p))
	}
	return partNames[p]
}

// Extra reports whether the part belongs to the expanded sub-row.
func (p Part) Extra() bool {
	return p == PartExtraMain || p == PartExtraPost
}

// Side selects width or height within a pair.
type Side int

const (
	SideW Side = iota
	SideH
)

func (s Side) String() string {
	if s == SideH {
		return "h"
	}
	return "w"
}

// FieldKey addresses a single text field of a row, e.g. "post.h".
type FieldKey struct {
	Part Part
	Side Side
}

// Field keys in display order.
var (
	MainW      = FieldKey{PartMain, SideW}
	MainH      = FieldKey{PartMain, SideH}
	PostW      = FieldKey{PartPost, SideW}
	PostH      = FieldKey{PartPost, SideH}
	ExtraMainW = FieldKey{PartExtraMain, SideW}
	ExtraMainH = FieldKey{PartExtraMain, SideH}
	ExtraPostW = FieldKey{PartExtraPost, SideW}
	ExtraPostH = FieldKey{PartExtraPost, SideH}
)

func (k FieldKey) String() string {
	return k.Part.String() + "." + k.Side.String()
}

// Row is one room: a main rectangle minus a post rectangle, plus an optional
// second main/post pair for irregular rooms. The extra pairs keep their text
// while the row is collapsed.
type Row struct {
	Main      Pair `json:"main"`
	Post      Pair `json:"post"`
	ExtraMain Pair `json:"extraMain"`
	ExtraPost Pair `json:"extraPost"`
	Expanded  bool `json:"expanded"`
}

// NetArea is the rounded area of the room. Extra pairs always take part;
// left empty they contribute zero.
func (r Row) NetArea() float64 {
	return Round2(r.Main.Area() - r.Post.Area() + r.ExtraMain.Area() - r.ExtraPost.Area())
}

// ToggleExpanded flips visibility of the extra pairs without touching them.
func (r *Row) ToggleExpanded() {
	r.Expanded = !r.Expanded
}

// Field returns the text stored under key.
func (r Row) Field(key FieldKey) string {
	return *r.pair(key.Part).side(key.Side)
}

// SetField stores text under key.
func (r *Row) SetField(key FieldKey, text string) {
	*r.pair(key.Part).side(key.Side) = text
}

func (r *Row) pair(p Part) *Pair {
	switch p {
	case PartPost:
		return &r.Post
	case PartExtraMain:
		return &r.ExtraMain
	case PartExtraPost:
		return &r.ExtraPost
	default:
		return &r.Main
	}
}
