package style

// Attribute is a single decoration on an element: a raw markup attribute, a
// class toggle, a style rule, a link, a nearby child or one of the composable
// transform and effect directives. The set of implementations is closed and
// every consumer switches over the concrete types.
type Attribute interface {
	isAttribute()
}

// NoAttr has no effect. It lets callers drop a decoration conditionally
// without branching at the call site.
type NoAttr struct{}

// RawAttr is an opaque markup attribute (href, src, id and the like) passed
// through to the renderer untouched.
type RawAttr struct {
	Key   string
	Value string
}

// Class toggles a literal class name. Key is the invalidation key: the first
// directive to claim a key wins and later directives sharing it are dropped.
type Class struct {
	Key  string
	Name string
}

// Styled attaches a style rule. It always contributes the rule to the
// stylesheet and the rule's identity to the element's class list, there is no
// invalidation check.
type Styled struct {
	Rule Rule
}

// LinkKind tells the renderer how a link target should open.
type LinkKind int

const (
	LinkPlain LinkKind = iota
	LinkNewTab
	LinkDownload
)

// Link carries a link target for the renderer. The gathering pass records it
// without interpreting it.
type Link struct {
	Kind LinkKind
	URL  string
}

// Location places a nearby child relative to its anchor element.
type Location int

const (
	Above Location = iota
	Below
	OnLeft
	OnRight
	Overlay
)

// Nearby positions a child element outside the normal flow of the element
// carrying the attribute. Child is the element-layer node, the renderer
// asserts its concrete type; the gathering pass only carries it through.
type Nearby struct {
	Location Location
	Child    any
}

// Axis is an optional transform component. The zero value means unset.
type Axis struct {
	Set   bool
	Value float64
}

// Ax builds a set axis value.
func Ax(v float64) Axis {
	return Axis{Set: true, Value: v}
}

// Move translates the element. Axes compose across several Move attributes by
// filling only the axes still unset, the first value per axis wins.
type Move struct {
	X Axis
	Y Axis
	Z Axis
}

// Scale resizes the element. Axes compose the same way Move axes do.
type Scale struct {
	X Axis
	Y Axis
	Z Axis
}

// Rotate turns the element around the given axis vector by Angle radians.
// Unlike Move and Scale a later Rotate replaces an earlier one wholesale.
type Rotate struct {
	X     float64
	Y     float64
	Z     float64
	Angle float64
}

// Filtered adds one CSS filter function. Filters accumulate newest first.
type Filtered struct {
	Filter Filter
}

// BoxShadowed adds one box shadow. Shadows accumulate newest first.
type BoxShadowed struct {
	Shadow Shadow
}

// TextShadowed adds one text shadow. Shadows accumulate newest first.
type TextShadowed struct {
	Shadow Shadow
}

func (NoAttr) isAttribute()       {}
func (RawAttr) isAttribute()      {}
func (Class) isAttribute()        {}
func (Styled) isAttribute()       {}
func (Link) isAttribute()         {}
func (Nearby) isAttribute()       {}
func (Move) isAttribute()         {}
func (Scale) isAttribute()        {}
func (Rotate) isAttribute()       {}
func (Filtered) isAttribute()     {}
func (BoxShadowed) isAttribute()  {}
func (TextShadowed) isAttribute() {}

// LocationClass returns the wrapper class for a nearby location.
func LocationClass(l Location) string {
	switch l {
	case Above:
		return "above"
	case Below:
		return "below"
	case OnLeft:
		return "on-left"
	case OnRight:
		return "on-right"
	case Overlay:
		return "overlay"
	default:
		// the set of locations is closed, this should never happen
		panic("unknown nearby location")
	}
}
