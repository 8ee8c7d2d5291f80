package element

import (
	"fmt"
	"strconv"
	"strings"

	"trellis/style"
)

// treeWriter produces the indented dumps below, two spaces per depth level.
type treeWriter struct {
	w strings.Builder
}

func (tw *treeWriter) line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(&tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw *treeWriter) text(depth int, label, value string) {
	for range depth {
		tw.w.WriteString("  ")
	}
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}

// String returns a readable tree of the element and everything under it,
// nearby children included. It exists solely for manual inspection during
// debugging.
func (e *Element) String() string {
	if e == nil {
		return "<nil Element>"
	}
	tw := &treeWriter{}
	dumpElement(tw, 0, e)
	return tw.w.String()
}

func dumpElement(tw *treeWriter, depth int, e *Element) {
	if e == nil {
		tw.line(depth, "<nil>")
		return
	}

	head := e.Kind.String()
	if len(e.Tag) > 0 {
		head += " tag=" + e.Tag
	}
	tw.line(depth, "%s", head)

	if len(e.Text) > 0 {
		tw.text(depth+1, "text", e.Text)
	}
	for _, a := range e.Attrs {
		dumpAttr(tw, depth+1, a)
	}
	for _, c := range e.Children {
		dumpElement(tw, depth+1, c)
	}
}

func dumpAttr(tw *treeWriter, depth int, a style.Attribute) {
	switch at := a.(type) {
	case style.NoAttr:
		// carries no information
	case style.RawAttr:
		tw.text(depth, "attr "+at.Key, at.Value)
	case style.Class:
		tw.line(depth, "class %q key=%q", at.Name, at.Key)
	case style.Styled:
		tw.line(depth, "styled %q", at.Rule.Identity())
	case style.Link:
		tw.line(depth, "link %s url=%q", linkKindName(at.Kind), at.URL)
	case style.Nearby:
		tw.line(depth, "nearby %s", style.LocationClass(at.Location))
		if child, ok := at.Child.(*Element); ok {
			dumpElement(tw, depth+1, child)
		} else {
			tw.line(depth+1, "<unexpected child %T>", at.Child)
		}
	case style.Move:
		tw.line(depth, "move %s", formatAxes(at.X, at.Y, at.Z))
	case style.Scale:
		tw.line(depth, "scale %s", formatAxes(at.X, at.Y, at.Z))
	case style.Rotate:
		tw.line(depth, "rotate x=%g y=%g z=%g angle=%g", at.X, at.Y, at.Z, at.Angle)
	case style.Filtered:
		tw.line(depth, "filter %T", at.Filter)
	case style.BoxShadowed:
		tw.line(depth, "box-shadow")
	case style.TextShadowed:
		tw.line(depth, "text-shadow")
	default:
		// the set of attributes is closed, this should never happen
		tw.line(depth, "<unexpected attribute %T>", a)
	}
}

func linkKindName(k style.LinkKind) string {
	switch k {
	case style.LinkPlain:
		return "plain"
	case style.LinkNewTab:
		return "new-tab"
	case style.LinkDownload:
		return "download"
	default:
		// the set of link kinds is closed, this should never happen
		panic("unknown link kind")
	}
}

func formatAxes(x, y, z style.Axis) string {
	format := func(name string, a style.Axis) string {
		if !a.Set {
			return name + "=unset"
		}
		return name + "=" + strconv.FormatFloat(a.Value, 'g', -1, 64)
	}
	return format("x", x) + " " + format("y", y) + " " + format("z", z)
}
