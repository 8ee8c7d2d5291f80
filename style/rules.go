package style

import "strconv"

// Prop is a single property/value pair inside a rule.
type Prop struct {
	Name  string
	Value string
}

// Rule is one stylesheet contribution attached to an element. The set of
// implementations is closed, consumers switch over the concrete types and
// treat anything else as a programming error.
//
// Identity returns the deduplication key of the rule. Two rules sharing an
// identity are assumed semantically identical and only the first one reaches
// the rendered stylesheet. ClassRule is the exception, see its comment.
type Rule interface {
	Identity() string
	isRule()
}

// ClassRule is a freeform rule: a caller-supplied selector with an ordered
// property list. It serves one-off custom blocks rather than shared atomic
// classes, so it is never deduplicated and its selector is rendered verbatim.
type ClassRule struct {
	Selector string
	Props    []Prop
}

// SingleRule is a one-property rule whose class name embeds the value, for
// example "width-px-5" setting "width: 5px".
type SingleRule struct {
	Class string
	Prop  string
	Value string
}

// ColorRule is a one-property rule carrying a color value.
type ColorRule struct {
	Class string
	Prop  string
	Color Color
}

// SpacingRule requests gaps between the children of a container: X pixels
// horizontally and Y pixels vertically. It expands into a fixed rule family
// covering row, column, page, paragraph and grid containers.
type SpacingRule struct {
	X int
	Y int
}

// PaddingRule requests container padding for each edge. It expands into a
// fixed rule family: the padding itself plus negative-margin compensation
// that lets fill-sized children extend into the padded area.
type PaddingRule struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

func (r ClassRule) Identity() string { return r.Selector }
func (r ClassRule) isRule()          {}

func (r SingleRule) Identity() string { return r.Class }
func (r SingleRule) isRule()          {}

func (r ColorRule) Identity() string { return r.Class }
func (r ColorRule) isRule()          {}

func (r SpacingRule) Identity() string {
	return "spacing-" + strconv.Itoa(r.X) + "-" + strconv.Itoa(r.Y)
}
func (r SpacingRule) isRule() {}

func (r PaddingRule) Identity() string {
	return "pad-" + strconv.Itoa(r.Top) + "-" + strconv.Itoa(r.Right) + "-" +
		strconv.Itoa(r.Bottom) + "-" + strconv.Itoa(r.Left)
}
func (r PaddingRule) isRule() {}
