package circuit

import "fmt"

// JointKind classifies the cable shape inside a resolved cell.
type JointKind uint8

const (
	Invalid JointKind = iota
	None
	Terminal
	Curve
	Line
	Tee
	Cross
)

var jointKindNames = [...]string{"invalid", "none", "terminal", "curve", "line", "tee", "cross"}

// JointKinds lists every kind in declaration order.
var JointKinds = [...]JointKind{Invalid, None, Terminal, Curve, Line, Tee, Cross}

func (k JointKind) String() string {
	if int(k) < len(jointKindNames) {
		return jointKindNames[k]
	}
	return fmt.Sprintf("JointKind(%d)", uint8(k))
}

// Pattern holds one concrete state per side, indexed by Side.
type Pattern [4]SideState

// P builds a pattern from N, E, S, W states.
func P(n, e, s, w SideState) Pattern { return Pattern{n, e, s, w} }

// Key packs the pattern into 0..15 with north as the high bit. ok is false
// when a state is out of range.
func (p Pattern) Key() (key uint8, ok bool) {
	for _, st := range p {
		if !st.valid() {
			return 0, false
		}
		key = key<<1 | uint8(st)
	}
	return key, true
}

// Rotate turns the pattern q quarter turns clockwise: the state on side i
// moves to side i+q.
func (p Pattern) Rotate(q int) Pattern {
	q = ((q % 4) + 4) % 4
	var out Pattern
	for i, st := range p {
		out[(i+q)%4] = st
	}
	return out
}

// Count returns the number of Present sides.
func (p Pattern) Count() int {
	n := 0
	for _, st := range p {
		if st == Present {
			n++
		}
	}
	return n
}

func (p Pattern) String() string {
	return fmt.Sprintf("N%s E%s S%s W%s", p[North], p[East], p[South], p[West])
}

// Template maps one exact pattern to its classification.
type Template struct {
	Pattern  Pattern
	Kind     JointKind
	Rotation int
	// Variants is the number of visual variants; the caller picks one.
	Variants int
}

// NoMatch returns the template Classify yields for patterns outside the
// table.
func NoMatch() Template {
	return Template{Kind: Invalid, Rotation: 0, Variants: 1}
}

type templateBase struct {
	kind      JointKind
	base      Pattern
	rotations int
	variants  int
}

var templateBases = []templateBase{
	{None, P(Absent, Absent, Absent, Absent), 1, 1},
	{Terminal, P(Present, Absent, Absent, Absent), 4, 1},
	{Curve, P(Present, Present, Absent, Absent), 4, 1},
	{Line, P(Present, Absent, Present, Absent), 2, 1},
	{Tee, P(Present, Present, Present, Absent), 4, 1},
	{Cross, P(Present, Present, Present, Present), 1, 2},
}

var (
	templates     = buildTemplates()
	templateIndex = indexTemplates(templates)
)

func buildTemplates() []Template {
	var out []Template
	for _, b := range templateBases {
		for r := 0; r < b.rotations; r++ {
			out = append(out, Template{
				Pattern:  b.base.Rotate(r),
				Kind:     b.kind,
				Rotation: r,
				Variants: b.variants,
			})
		}
	}
	return out
}

func indexTemplates(ts []Template) [16]*Template {
	var idx [16]*Template
	for i := range ts {
		key, _ := ts[i].Pattern.Key()
		if idx[key] == nil {
			idx[key] = &ts[i]
		}
	}
	return idx
}

// Templates returns a copy of the ordered template catalog.
func Templates() []Template {
	return append([]Template(nil), templates...)
}

// Classify looks up the template for p. Unknown patterns yield NoMatch().
func Classify(p Pattern) Template {
	key, ok := p.Key()
	if !ok || templateIndex[key] == nil {
		return NoMatch()
	}
	return *templateIndex[key]
}

// Joint is the resolved shape of a cell.
type Joint struct {
	Kind     JointKind
	Rotation int
	Variant  int
	// Raw is the side pattern the joint was classified from.
	Raw Pattern
}

func (j Joint) String() string {
	return fmt.Sprintf("%s r%d v%d [%s]", j.Kind, j.Rotation, j.Variant, j.Raw)
}
