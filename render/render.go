// Package render turns an element tree into markup plus one deduplicated
// stylesheet. It owns tag resolution, class attribute assembly, nearby
// wrapper placement and the embedding modes, while the gathering pass in
// the gather package decides what each element contributes.
package render

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"trellis/css"
	"trellis/element"
	"trellis/gather"
	"trellis/style"
)

// Options control one renderer instance.
type Options struct {
	// InlineImages replaces file image sources with data URIs. SourceDir is
	// the directory image paths are resolved against.
	InlineImages bool
	SourceDir    string
}

// Renderer renders element trees. A single renderer may serve any number of
// renders, each render call owns its stylesheet accumulator.
type Renderer struct {
	log  *zap.Logger
	opts Options
}

// NewRenderer creates a renderer. A nil logger is replaced with a nop one.
func NewRenderer(log *zap.Logger, opts Options) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{log: log.Named("render"), opts: opts}
}

// RenderInto renders el and its whole subtree under parent, adding every
// gathered style rule to sheet. It is the building block the embedding modes
// are assembled from and is exported for callers composing their own
// documents.
func (r *Renderer) RenderInto(parent *etree.Element, el *element.Element, sheet *gather.Sheet) error {
	if el == nil || el.Kind == element.KindNone {
		return nil
	}
	if el.Kind == element.KindText {
		appendText(parent, el.Text)
		return nil
	}

	g := gather.Gather(el.Attrs)
	classes, rules := g.Finalize()
	sheet.Add(rules...)

	node := parent.CreateElement(tagFor(el))

	if g.Link != nil {
		applyLink(node, g.Link)
	}

	if len(g.Nearbys) > 0 {
		// nearby wrappers are positioned absolutely against this node
		classes = append(classes, "has-nearby")
	}
	for _, a := range g.Attrs {
		if a.Key == "class" {
			classes = append(classes, a.Value)
			continue
		}
		node.CreateAttr(a.Key, a.Value)
	}
	if cls := strings.Join(classes, " "); cls != "" {
		node.CreateAttr("class", cls)
	}

	if el.Kind == element.KindImage && r.opts.InlineImages {
		if err := r.inlineImage(node); err != nil {
			return err
		}
	}

	// nearby wrappers come before content children, the padding compensation
	// rules rely on this order
	for _, n := range g.Nearbys {
		child, ok := n.Child.(*element.Element)
		if !ok {
			// element helpers only ever attach elements, this should never happen
			panic(fmt.Sprintf("nearby child is %T, not an element", n.Child))
		}
		wrapper := node.CreateElement("div")
		wrapper.CreateAttr("class", "nearby "+style.LocationClass(n.Location))
		if err := r.RenderInto(wrapper, child, sheet); err != nil {
			return err
		}
	}

	for _, child := range el.Children {
		if err := r.RenderInto(node, child, sheet); err != nil {
			return err
		}
	}
	return nil
}

// tagFor resolves the markup tag: an explicit override wins, otherwise the
// kind picks its default.
func tagFor(el *element.Element) string {
	if el.Tag != "" {
		return el.Tag
	}
	switch el.Kind {
	case element.KindImage:
		return "img"
	case element.KindLink:
		return "a"
	default:
		return "div"
	}
}

// appendText adds literal text under parent, either as the element text when
// nothing precedes it or as the tail of the last child.
func appendText(parent *etree.Element, text string) {
	children := parent.ChildElements()
	if len(children) == 0 {
		parent.SetText(parent.Text() + text)
		return
	}
	last := children[len(children)-1]
	last.SetTail(last.Tail() + text)
}

func applyLink(node *etree.Element, l *style.Link) {
	node.CreateAttr("href", l.URL)
	switch l.Kind {
	case style.LinkNewTab:
		node.CreateAttr("target", "_blank")
		node.CreateAttr("rel", "noopener noreferrer")
	case style.LinkDownload:
		node.CreateAttr("download", "")
	}
}

// renderFragment serializes a single element subtree without a document
// prolog.
func renderFragment(root *etree.Element) (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(root)
	return doc.WriteToString()
}

// stylesheetText assembles the text of one style node: the generated sheet
// followed by extra user rules. Empty when there is nothing to render.
func stylesheetText(sheet *gather.Sheet, extra *css.Stylesheet) string {
	generated := sheet.Compact()
	generated.Merge(extra)
	if generated.Empty() {
		return ""
	}
	return generated.String()
}
