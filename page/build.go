package page

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"trellis/css"
	"trellis/element"
	"trellis/style"
)

// builder carries per-document build state: the stylesheet collecting
// freeform css and the counter naming anonymous styled blocks.
type builder struct {
	parser  *css.Parser
	extra   *css.Stylesheet
	counter int
	log     *zap.Logger
}

// Build turns the document body into an element tree. Freeform css from the
// document and its blocks comes back as a stylesheet to be appended after the
// generated rules. The body is wrapped into a page container unless it is one
// already.
func (d *Document) Build(log *zap.Logger) (*element.Element, *css.Stylesheet, error) {
	if log == nil {
		log = zap.NewNop()
	}

	b := &builder{
		parser: css.NewParser(log),
		extra:  &css.Stylesheet{},
		log:    log,
	}

	if len(d.CSS) > 0 {
		b.extra.Merge(b.parser.Parse([]byte(d.CSS), "document css"))
	}

	root, err := b.block(d.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("body: %w", err)
	}
	if d.Body.Kind != "page" {
		root = element.Page(nil, root)
	}
	return root, b.extra, nil
}

func (b *builder) block(blk *Block) (*element.Element, error) {
	if blk == nil {
		return element.None(), nil
	}

	kind := blk.Kind
	if len(kind) == 0 && len(blk.Text) > 0 && len(blk.Children) == 0 {
		kind = "text"
	}

	switch kind {
	case "none":
		return element.None(), nil
	case "text":
		return element.Text(blk.Text), nil
	}

	attrs, err := b.attributes(blk)
	if err != nil {
		return nil, err
	}

	children, err := b.children(blk, kind)
	if err != nil {
		return nil, err
	}

	var el *element.Element
	switch kind {
	case "el":
		if len(children) > 1 {
			return nil, fmt.Errorf("el block holds at most one child, got %d", len(children))
		}
		child := element.None()
		if len(children) == 1 {
			child = children[0]
		}
		el = element.El(attrs, child)

	case "row":
		el = element.Row(attrs, children...)

	case "wrapped-row":
		el = element.WrappedRow(attrs, children...)

	case "column":
		el = element.Column(attrs, children...)

	case "page":
		el = element.Page(attrs, children...)

	case "paragraph":
		el = element.Paragraph(attrs, children...)

	case "grid":
		if blk.Columns < 1 {
			return nil, fmt.Errorf("grid block needs a positive column count")
		}
		el = element.Grid(blk.Columns, attrs, children...)

	case "image":
		if len(blk.Src) == 0 {
			return nil, fmt.Errorf("image block has no src")
		}
		el = element.Image(attrs, blk.Src, blk.Alt)

	case "link":
		if len(blk.URL) == 0 {
			return nil, fmt.Errorf("link block has no url")
		}
		if len(children) > 1 {
			return nil, fmt.Errorf("link block holds at most one label child, got %d", len(children))
		}
		label := element.Text(blk.Text)
		if len(children) == 1 {
			label = children[0]
		}
		switch blk.Target {
		case "":
			el = element.Link(attrs, blk.URL, label)
		case "new-tab":
			el = element.NewTabLink(attrs, blk.URL, label)
		case "download":
			el = element.DownloadLink(attrs, blk.URL, label)
		default:
			return nil, fmt.Errorf("unknown link target %q", blk.Target)
		}

	case "heading":
		level := blk.Level
		if level == 0 {
			level = 1
		}
		el = element.Heading(level, attrs, blk.Text)

	case "":
		return nil, fmt.Errorf("block has no kind")

	default:
		return nil, fmt.Errorf("unknown block kind %q", blk.Kind)
	}

	if len(blk.Tag) > 0 {
		el.WithTag(blk.Tag)
	}
	return el, nil
}

// children builds the nested blocks, prepending the block text as a text
// child for container kinds. Kinds which consume the text themselves (link
// labels, heading titles, image alts) skip that.
func (b *builder) children(blk *Block, kind string) ([]*element.Element, error) {
	var out []*element.Element

	textAsChild := len(blk.Text) > 0
	switch kind {
	case "heading", "link", "image":
		textAsChild = false
	}
	if textAsChild {
		out = append(out, element.Text(blk.Text))
	}

	for i, c := range blk.Children {
		el, err := b.block(c)
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		out = append(out, el)
	}
	return out, nil
}

func (b *builder) attributes(blk *Block) ([]style.Attribute, error) {
	var attrs []style.Attribute

	if len(blk.ID) > 0 {
		attrs = append(attrs, element.ID(blk.ID))
	}

	classes := strings.Fields(blk.Class)
	for _, c := range classes {
		attrs = append(attrs, element.WithClass(c, c))
	}

	if len(blk.CSS) > 0 {
		name := ""
		if len(classes) > 0 {
			name = classes[0]
		} else {
			b.counter++
			name = "custom-" + strconv.Itoa(b.counter)
			attrs = append(attrs, element.WithClass(name, name))
		}
		if props := b.parser.ParseBlock(blk.CSS); len(props) > 0 {
			b.extra.Append(css.Rule{Selector: "." + name, Props: props})
		}
	}

	if len(blk.Width) > 0 {
		l, err := parseLength(blk.Width)
		if err != nil {
			return nil, fmt.Errorf("width: %w", err)
		}
		attrs = append(attrs, element.Width(l))
	}
	if len(blk.Height) > 0 {
		l, err := parseLength(blk.Height)
		if err != nil {
			return nil, fmt.Errorf("height: %w", err)
		}
		attrs = append(attrs, element.Height(l))
	}

	if len(blk.AlignX) > 0 {
		a, err := parseAlignX(blk.AlignX)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}
	if len(blk.AlignY) > 0 {
		a, err := parseAlignY(blk.AlignY)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}

	switch len(blk.Spacing) {
	case 0:
	case 1:
		attrs = append(attrs, element.SpacingXY(blk.Spacing[0]))
	case 2:
		attrs = append(attrs, element.Spacing(blk.Spacing[0], blk.Spacing[1]))
	default:
		return nil, fmt.Errorf("spacing takes one or two values, got %d", len(blk.Spacing))
	}

	switch len(blk.Padding) {
	case 0:
	case 1:
		attrs = append(attrs, element.Padding(blk.Padding[0]))
	case 2:
		attrs = append(attrs, element.PaddingXY(blk.Padding[0], blk.Padding[1]))
	case 4:
		attrs = append(attrs, element.PaddingEach(blk.Padding[0], blk.Padding[1], blk.Padding[2], blk.Padding[3]))
	default:
		return nil, fmt.Errorf("padding takes one, two or four values, got %d", len(blk.Padding))
	}

	if len(blk.Background) > 0 {
		c, err := style.ParseHex(blk.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		attrs = append(attrs, element.BackgroundColor(c))
	}
	if len(blk.Color) > 0 {
		c, err := style.ParseHex(blk.Color)
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		attrs = append(attrs, element.FontColor(c))
	}
	if len(blk.BorderColor) > 0 {
		c, err := style.ParseHex(blk.BorderColor)
		if err != nil {
			return nil, fmt.Errorf("border_color: %w", err)
		}
		attrs = append(attrs, element.BorderColor(c))
	}

	if blk.FontSize > 0 {
		attrs = append(attrs, element.FontSize(blk.FontSize))
	}
	if blk.Border > 0 {
		attrs = append(attrs, element.BorderWidth(blk.Border))
	}
	if blk.Rounded > 0 {
		attrs = append(attrs, element.Rounded(blk.Rounded))
	}
	if blk.Opacity != nil {
		attrs = append(attrs, element.Opacity(*blk.Opacity))
	}

	switch len(blk.Move) {
	case 0:
	case 2:
		attrs = append(attrs, element.MoveRight(blk.Move[0]), element.MoveDown(blk.Move[1]))
	default:
		return nil, fmt.Errorf("move takes two values, got %d", len(blk.Move))
	}
	if blk.Rotate != nil {
		attrs = append(attrs, element.RotateBy(*blk.Rotate))
	}
	if blk.Scale != nil {
		attrs = append(attrs, element.Scaled(*blk.Scale))
	}

	if blk.Blur != nil {
		attrs = append(attrs, element.Blur(*blk.Blur))
	}
	if blk.Grayscale != nil {
		attrs = append(attrs, element.Grayscale(*blk.Grayscale))
	}

	if blk.Shadow != nil {
		s, err := parseShadow(blk.Shadow)
		if err != nil {
			return nil, fmt.Errorf("shadow: %w", err)
		}
		if s.Inset {
			attrs = append(attrs, element.InnerShadow(s))
		} else {
			attrs = append(attrs, element.Shadow(s))
		}
	}
	if blk.TextShadow != nil {
		s, err := parseShadow(blk.TextShadow)
		if err != nil {
			return nil, fmt.Errorf("text_shadow: %w", err)
		}
		attrs = append(attrs, element.TextShadow(s))
	}

	// deterministic order for raw markup attributes
	keys := make([]string, 0, len(blk.Attrs))
	for k := range blk.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, element.Attr(k, blk.Attrs[k]))
	}

	for i, n := range blk.Nearby {
		a, err := b.nearby(n)
		if err != nil {
			return nil, fmt.Errorf("nearby %d: %w", i, err)
		}
		attrs = append(attrs, a)
	}

	return attrs, nil
}

func (b *builder) nearby(n NearbyBlock) (style.Attribute, error) {
	child, err := b.block(n.Child)
	if err != nil {
		return nil, err
	}
	switch n.Location {
	case "above":
		return element.Above(child), nil
	case "below":
		return element.Below(child), nil
	case "on-left":
		return element.OnLeft(child), nil
	case "on-right":
		return element.OnRight(child), nil
	case "overlay":
		return element.Overlay(child), nil
	default:
		return nil, fmt.Errorf("unknown nearby location %q", n.Location)
	}
}

func parseShadow(s *ShadowSpec) (style.Shadow, error) {
	c, err := style.ParseHex(s.Color)
	if err != nil {
		return style.Shadow{}, err
	}
	return style.Shadow{
		Inset:   s.Inset,
		OffsetX: s.X,
		OffsetY: s.Y,
		Blur:    s.Blur,
		Size:    s.Size,
		Color:   c,
	}, nil
}

// parseLength reads a length word: "content", "fill", "fill-N" for weighted
// portions or a pixel count with an optional px suffix.
func parseLength(s string) (element.Length, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "content":
		return element.Content{}, nil
	case s == "fill":
		return element.Fill{}, nil
	case strings.HasPrefix(s, "fill-"):
		w, err := strconv.Atoi(strings.TrimPrefix(s, "fill-"))
		if err != nil || w < 1 {
			return nil, fmt.Errorf("unable to parse portion %q", s)
		}
		return element.Portion{Weight: w}, nil
	default:
		n, err := strconv.Atoi(strings.TrimSuffix(s, "px"))
		if err != nil {
			return nil, fmt.Errorf("unable to parse length %q", s)
		}
		return element.Px{Value: n}, nil
	}
}

func parseAlignX(s string) (style.Attribute, error) {
	switch s {
	case "left":
		return element.AlignLeft(), nil
	case "center":
		return element.CenterX(), nil
	case "right":
		return element.AlignRight(), nil
	default:
		return nil, fmt.Errorf("unknown align_x %q", s)
	}
}

func parseAlignY(s string) (style.Attribute, error) {
	switch s {
	case "top":
		return element.AlignTop(), nil
	case "center":
		return element.CenterY(), nil
	case "bottom":
		return element.AlignBottom(), nil
	default:
		return nil, fmt.Errorf("unknown align_y %q", s)
	}
}
