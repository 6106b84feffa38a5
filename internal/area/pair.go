package area

// Pair is a width/height measurement kept as raw text so in-progress input
// like "3." survives until the field is formatted.
type Pair struct {
	W string `json:"w"`
	H string `json:"h"`
}

// Area returns width times height. An empty or unparseable side counts as
// zero area rather than unknown.
func (p Pair) Area() float64 {
	w, ok := Parse(p.W)
	if !ok {
		return 0
	}
	h, ok := Parse(p.H)
	if !ok {
		return 0
	}
	return w * h
}

func (p *Pair) side(s Side) *string {
	if s == SideH {
		return &p.H
	}
	return &p.W
}
