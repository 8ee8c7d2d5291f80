package gather

import (
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/natural"

	"trellis/css"
	"trellis/style"
)

// Sheet accumulates the style rules contributed by every element of one
// render pass. It is owned by the top level render call and passed explicitly
// through the tree walk; independent renders must use independent sheets
// since selector identities are only meaningful within one pass.
type Sheet struct {
	rules []style.Rule
}

// NewSheet creates an empty accumulator.
func NewSheet() *Sheet {
	return &Sheet{}
}

// Add appends rules in contribution order. Deduplication happens at
// compaction, not here, callers may add the same rule any number of times.
func (s *Sheet) Add(rules ...style.Rule) {
	s.rules = append(s.rules, rules...)
}

// Len returns the number of contributions collected so far.
func (s *Sheet) Len() int {
	return len(s.rules)
}

// Compact folds the collected rules into a flat stylesheet in contribution
// order, expanding spacing and padding families and skipping every rule
// whose selector identity has already been rendered. ClassRule entries are
// the exception: they render verbatim every time they appear.
func (s *Sheet) Compact() *css.Stylesheet {
	sheet := &css.Stylesheet{}
	seen := make(map[string]struct{}, len(s.rules))
	for _, r := range s.rules {
		if cr, ok := r.(style.ClassRule); ok {
			sheet.Append(css.Rule{Selector: cr.Selector, Props: cr.Props})
			continue
		}
		id := r.Identity()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		sheet.Append(expand(r)...)
	}
	return sheet
}

// Render compacts and renders the stylesheet text. An empty accumulator
// renders to an empty string so that callers know to skip the style node.
func (s *Sheet) Render() string {
	sheet := s.Compact()
	if sheet.Empty() {
		return ""
	}
	return sheet.String()
}

// DebugDump lists the compacted selectors in natural order, one per line.
func (s *Sheet) DebugDump() string {
	sheet := s.Compact()
	keys := make([]string, 0, len(sheet.Rules))
	for _, r := range sheet.Rules {
		keys = append(keys, r.Selector)
	}
	sort.Sort(natural.StringSlice(keys))
	return strings.Join(keys, "\n")
}

// classSelector turns a bare class identity into a class selector. Identities
// that already look like selectors are kept as they are, the prefix is never
// applied twice.
func classSelector(id string) string {
	if strings.HasPrefix(id, ".") {
		return id
	}
	return "." + id
}

// expand lowers one deduplicated rule into flat stylesheet rules. ClassRule
// never reaches this point, the compaction loop renders it directly.
func expand(r style.Rule) []css.Rule {
	switch rr := r.(type) {
	case style.SingleRule:
		return []css.Rule{{
			Selector: classSelector(rr.Class),
			Props:    []style.Prop{{Name: rr.Prop, Value: rr.Value}},
		}}
	case style.ColorRule:
		return []css.Rule{{
			Selector: classSelector(rr.Class),
			Props:    []style.Prop{{Name: rr.Prop, Value: style.FormatColor(rr.Color)}},
		}}
	case style.SpacingRule:
		return spacingFamily(rr)
	case style.PaddingRule:
		return paddingFamily(rr)
	default:
		// the rule union is closed, this should never happen
		panic("unknown rule type")
	}
}

// spacingFamily expands a spacing request into the container rules it
// controls: gaps between row, column and page children, wrapped row margins,
// paragraph line height and grid gaps.
func spacingFamily(r style.SpacingRule) []css.Rule {
	var (
		base  = classSelector(r.Identity())
		x     = strconv.Itoa(r.X) + "px"
		y     = strconv.Itoa(r.Y) + "px"
		halfX = style.Pixels(float64(r.X) / 2)
		halfY = style.Pixels(float64(r.Y) / 2)
	)
	return []css.Rule{
		{Selector: base + ".row > * + *", Props: []style.Prop{
			{Name: "margin-left", Value: x},
		}},
		{Selector: base + ".wrapped.row", Props: []style.Prop{
			{Name: "margin", Value: "-" + halfY + " -" + halfX},
		}},
		{Selector: base + ".wrapped.row > *", Props: []style.Prop{
			{Name: "margin", Value: halfY + " " + halfX},
		}},
		{Selector: base + ".column > * + *", Props: []style.Prop{
			{Name: "margin-top", Value: y},
		}},
		{Selector: base + ".page > * + *", Props: []style.Prop{
			{Name: "margin-top", Value: y},
		}},
		{Selector: base + ".page > .align-left", Props: []style.Prop{
			{Name: "margin-right", Value: x},
		}},
		{Selector: base + ".page > .align-right", Props: []style.Prop{
			{Name: "margin-left", Value: x},
		}},
		{Selector: base + ".paragraph", Props: []style.Prop{
			{Name: "line-height", Value: "calc(1em + " + y + ")"},
		}},
		{Selector: base + ".grid", Props: []style.Prop{
			{Name: "grid-column-gap", Value: x},
			{Name: "grid-row-gap", Value: y},
		}},
	}
}

// paddingFamily expands a padding request into the base padding rule plus
// negative margin compensation letting fill-sized children reach into the
// padded area. Nearby wrappers precede content children, hence the
// ".nearby + " variants for the first content child; an only child matches
// both the first-child and the last-child rule.
func paddingFamily(r style.PaddingRule) []css.Rule {
	var (
		base = classSelector(r.Identity())
		t    = strconv.Itoa(r.Top) + "px"
		rt   = strconv.Itoa(r.Right) + "px"
		b    = strconv.Itoa(r.Bottom) + "px"
		l    = strconv.Itoa(r.Left) + "px"
	)
	return []css.Rule{
		{Selector: base, Props: []style.Prop{
			{Name: "padding", Value: t + " " + rt + " " + b + " " + l},
		}},
		{Selector: base + ".column > .width-fill", Props: []style.Prop{
			{Name: "margin-left", Value: "-" + l},
			{Name: "margin-right", Value: "-" + rt},
		}},
		{Selector: base + ".column > .height-fill:first-child", Props: []style.Prop{
			{Name: "margin-top", Value: "-" + t},
		}},
		{Selector: base + ".column > .height-fill:last-child", Props: []style.Prop{
			{Name: "margin-bottom", Value: "-" + b},
		}},
		{Selector: base + ".column > .nearby + .height-fill", Props: []style.Prop{
			{Name: "margin-top", Value: "-" + t},
		}},
		{Selector: base + ".row > .height-fill", Props: []style.Prop{
			{Name: "margin-top", Value: "-" + t},
			{Name: "margin-bottom", Value: "-" + b},
		}},
		{Selector: base + ".row > .width-fill:first-child", Props: []style.Prop{
			{Name: "margin-left", Value: "-" + l},
		}},
		{Selector: base + ".row > .width-fill:last-child", Props: []style.Prop{
			{Name: "margin-right", Value: "-" + rt},
		}},
		{Selector: base + ".row > .nearby + .width-fill", Props: []style.Prop{
			{Name: "margin-left", Value: "-" + l},
		}},
		{Selector: base + ".page > .width-fill", Props: []style.Prop{
			{Name: "margin-left", Value: "-" + l},
			{Name: "margin-right", Value: "-" + rt},
		}},
		{Selector: base + ".page > .height-fill:first-child", Props: []style.Prop{
			{Name: "margin-top", Value: "-" + t},
		}},
		{Selector: base + ".page > .height-fill:last-child", Props: []style.Prop{
			{Name: "margin-bottom", Value: "-" + b},
		}},
	}
}
