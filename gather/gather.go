// Package gather implements the style gathering pass: folding an element's
// attribute list into accumulated render state, compacting pending transform
// and effect state into shared classes, and deduplicating the rules collected
// across a whole render into one stylesheet.
package gather

import (
	"trellis/style"
)

// Gathered accumulates the result of folding one element's attribute list.
// It is created empty, filled in authoring order by Gather and consumed
// exactly once by Finalize.
type Gathered struct {
	Attrs   []style.RawAttr
	Classes []string
	Rules   []style.Rule
	Nearbys []style.Nearby
	Link    *style.Link

	moved      bool
	translate  triple
	scaled     bool
	scale      triple
	rotation   string
	filter     string
	boxShadow  string
	textShadow string

	claimed map[string]struct{}
}

type triple struct {
	x, y, z style.Axis
}

// fill sets only the axes still unset. The first value per axis wins.
func (t *triple) fill(x, y, z style.Axis) {
	if !t.x.Set && x.Set {
		t.x = x
	}
	if !t.y.Set && y.Set {
		t.y = y
	}
	if !t.z.Set && z.Set {
		t.z = z
	}
}

// Gather folds attrs left to right. Authoring order is precedence order:
// class keys are claimed by the first directive carrying them, transform axes
// keep the first value they receive, a later rotation replaces an earlier
// one, filters and shadows prepend so the last authored entry renders first.
func Gather(attrs []style.Attribute) *Gathered {
	g := &Gathered{claimed: make(map[string]struct{})}
	for _, a := range attrs {
		g.apply(a)
	}
	return g
}

func (g *Gathered) apply(a style.Attribute) {
	switch at := a.(type) {
	case style.NoAttr:

	case style.RawAttr:
		g.Attrs = append(g.Attrs, at)

	case style.Class:
		if g.claim(at.Key) {
			g.Classes = append(g.Classes, at.Name)
		}

	case style.Styled:
		g.Classes = append(g.Classes, at.Rule.Identity())
		g.Rules = append(g.Rules, at.Rule)

	case style.Link:
		g.Link = &at

	case style.Nearby:
		g.Nearbys = append(g.Nearbys, at)

	case style.Move:
		g.moved = true
		g.translate.fill(at.X, at.Y, at.Z)

	case style.Scale:
		g.scaled = true
		g.scale.fill(at.X, at.Y, at.Z)

	case style.Rotate:
		g.rotation = "rotate3d(" +
			style.FormatFloat(at.X) + ", " +
			style.FormatFloat(at.Y) + ", " +
			style.FormatFloat(at.Z) + ", " +
			style.FormatFloat(at.Angle) + "rad)"

	case style.Filtered:
		g.filter = prepend(style.FormatFilter(at.Filter), g.filter, " ")

	case style.BoxShadowed:
		g.boxShadow = prepend(style.FormatBoxShadow(at.Shadow), g.boxShadow, ", ")

	case style.TextShadowed:
		g.textShadow = prepend(style.FormatTextShadow(at.Shadow), g.textShadow, ", ")

	default:
		// the attribute union is closed, this should never happen
		panic("unknown attribute type")
	}
}

// claim reports whether key was still free and marks it taken.
func (g *Gathered) claim(key string) bool {
	if _, ok := g.claimed[key]; ok {
		return false
	}
	g.claimed[key] = struct{}{}
	return true
}

func prepend(entry, list, sep string) string {
	if len(list) == 0 {
		return entry
	}
	return entry + sep + list
}
