// Package element is the construction API for the abstract visual tree:
// containers, text, images and links decorated with style attributes. It
// builds nodes only, rendering them to markup is the render package's job.
package element

import (
	"github.com/gosimple/slug"

	"trellis/style"
)

// Kind tells the renderer what a node is and which structural class family
// applies to it.
type Kind int

const (
	KindNone Kind = iota
	KindText
	KindEl
	KindRow
	KindWrappedRow
	KindColumn
	KindPage
	KindParagraph
	KindGrid
	KindImage
	KindLink
)

// String implements fmt.Stringer for debug dumps.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindText:
		return "text"
	case KindEl:
		return "el"
	case KindRow:
		return "row"
	case KindWrappedRow:
		return "wrapped-row"
	case KindColumn:
		return "column"
	case KindPage:
		return "page"
	case KindParagraph:
		return "paragraph"
	case KindGrid:
		return "grid"
	case KindImage:
		return "image"
	case KindLink:
		return "link"
	default:
		// the set of kinds is closed, this should never happen
		panic("unknown element kind")
	}
}

// Element is one abstract visual node. Tag overrides the markup tag the
// renderer would pick for the kind, empty means use the default. Text is only
// meaningful for KindText nodes, which never have attributes or children.
type Element struct {
	Kind     Kind
	Tag      string
	Text     string
	Attrs    []style.Attribute
	Children []*Element
}

// WithTag overrides the markup tag and returns the element for chaining.
func (e *Element) WithTag(tag string) *Element {
	e.Tag = tag
	return e
}

// Reserved invalidation keys. Constructors and attribute helpers claim these
// so that structural classes and single-valued concerns stay first-write-wins.
const (
	KeyKind   = "kind"
	KeyWidth  = "width"
	KeyHeight = "height"
	KeyHAlign = "halign"
	KeyVAlign = "valign"
)

// None renders to nothing. It lets callers drop a child conditionally without
// branching at the call site.
func None() *Element {
	return &Element{Kind: KindNone}
}

// Text is a leaf carrying literal text.
func Text(s string) *Element {
	return &Element{Kind: KindText, Text: s}
}

// El wraps a single child in a plain container.
func El(attrs []style.Attribute, child *Element) *Element {
	return &Element{Kind: KindEl, Attrs: attrs, Children: []*Element{child}}
}

// Row lays children out horizontally.
func Row(attrs []style.Attribute, children ...*Element) *Element {
	return container(KindRow, "row", attrs, children)
}

// WrappedRow lays children out horizontally and wraps them onto new lines
// when they run out of space.
func WrappedRow(attrs []style.Attribute, children ...*Element) *Element {
	return container(KindWrappedRow, "wrapped row", attrs, children)
}

// Column lays children out vertically.
func Column(attrs []style.Attribute, children ...*Element) *Element {
	return container(KindColumn, "column", attrs, children)
}

// Page is the top level container of a document body.
func Page(attrs []style.Attribute, children ...*Element) *Element {
	return container(KindPage, "page", attrs, children)
}

// Paragraph lays children out as flowing inline text.
func Paragraph(attrs []style.Attribute, children ...*Element) *Element {
	return container(KindParagraph, "paragraph", attrs, children)
}

// Grid lays children out in a fixed number of equal columns.
func Grid(columns int, attrs []style.Attribute, children ...*Element) *Element {
	e := container(KindGrid, "grid", attrs, children)
	e.Attrs = append(e.Attrs, GridColumns(columns))
	return e
}

// Image is a leaf rendering an image tag with the given source and
// alternative text.
func Image(attrs []style.Attribute, src, alt string) *Element {
	attrs = append(attrs,
		style.RawAttr{Key: "src", Value: src},
		style.RawAttr{Key: "alt", Value: alt},
	)
	return &Element{Kind: KindImage, Attrs: attrs}
}

// Link wraps a label in an anchor opening in the same tab.
func Link(attrs []style.Attribute, url string, label *Element) *Element {
	return link(style.LinkPlain, attrs, url, label)
}

// NewTabLink wraps a label in an anchor opening in a new tab.
func NewTabLink(attrs []style.Attribute, url string, label *Element) *Element {
	return link(style.LinkNewTab, attrs, url, label)
}

// DownloadLink wraps a label in an anchor downloading its target.
func DownloadLink(attrs []style.Attribute, url string, label *Element) *Element {
	return link(style.LinkDownload, attrs, url, label)
}

// Heading renders a heading tag of the given level carrying a slugified
// anchor id derived from the title, so sections can be linked to by name.
// Levels outside 1 through 6 are clamped.
func Heading(level int, attrs []style.Attribute, title string) *Element {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	attrs = append(attrs, style.RawAttr{Key: "id", Value: slug.Make(title)})
	e := El(attrs, Text(title))
	e.Tag = "h" + string(rune('0'+level))
	return e
}

func container(kind Kind, class string, attrs []style.Attribute, children []*Element) *Element {
	all := make([]style.Attribute, 0, len(attrs)+1)
	all = append(all, style.Class{Key: KeyKind, Name: class})
	all = append(all, attrs...)
	return &Element{Kind: kind, Attrs: all, Children: children}
}

func link(kind style.LinkKind, attrs []style.Attribute, url string, label *Element) *Element {
	all := make([]style.Attribute, 0, len(attrs)+1)
	all = append(all, style.Link{Kind: kind, URL: url})
	all = append(all, attrs...)
	return &Element{Kind: KindLink, Attrs: all, Children: []*Element{label}}
}
