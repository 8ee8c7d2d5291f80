package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"

	"trellis/element"
	"trellis/gather"
	"trellis/style"
)

func renderUnder(t *testing.T, r *Renderer, el *element.Element) (*etree.Element, *gather.Sheet) {
	t.Helper()
	holder := etree.NewElement("holder")
	sheet := gather.NewSheet()
	if err := r.RenderInto(holder, el, sheet); err != nil {
		t.Fatalf("RenderInto: %v", err)
	}
	return holder, sheet
}

func TestRenderInto_TagResolution(t *testing.T) {
	r := NewRenderer(nil, Options{})
	cases := []struct {
		name string
		el   *element.Element
		tag  string
	}{
		{"plain el", element.El(nil, element.Text("x")), "div"},
		{"row", element.Row(nil), "div"},
		{"image", element.Image(nil, "a.png", "a"), "img"},
		{"link", element.Link(nil, "https://example.com/", element.Text("x")), "a"},
		{"override", element.El(nil, element.Text("x")).WithTag("section"), "section"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			holder, _ := renderUnder(t, r, c.el)
			children := holder.ChildElements()
			if len(children) != 1 {
				t.Fatalf("children = %d, want 1", len(children))
			}
			if children[0].Tag != c.tag {
				t.Fatalf("tag = %q, want %q", children[0].Tag, c.tag)
			}
		})
	}
}

func TestRenderInto_NoneRendersNothing(t *testing.T) {
	r := NewRenderer(nil, Options{})
	holder, sheet := renderUnder(t, r, element.None())
	if n := len(holder.ChildElements()); n != 0 {
		t.Fatalf("children = %d, want none", n)
	}
	if sheet.Len() != 0 {
		t.Fatalf("sheet rules = %d, want none", sheet.Len())
	}
}

func TestRenderInto_ClassAttribute(t *testing.T) {
	r := NewRenderer(nil, Options{})
	el := element.El([]style.Attribute{
		element.Width(element.Px{Value: 5}),
		element.Attr("class", "extra"),
		element.Blur(2),
	}, element.Text("x"))
	holder, _ := renderUnder(t, r, el)
	node := holder.ChildElements()[0]
	want := "filter-blur2px width-px-5 extra"
	if got := node.SelectAttrValue("class", ""); got != want {
		t.Fatalf("class = %q, want %q", got, want)
	}
}

func TestRenderInto_RawAttrsPassThrough(t *testing.T) {
	r := NewRenderer(nil, Options{})
	el := element.El([]style.Attribute{
		element.ID("intro"),
		element.Attr("data-kind", "note"),
	}, element.Text("x"))
	holder, _ := renderUnder(t, r, el)
	node := holder.ChildElements()[0]
	if got := node.SelectAttrValue("id", ""); got != "intro" {
		t.Fatalf("id = %q, want %q", got, "intro")
	}
	if got := node.SelectAttrValue("data-kind", ""); got != "note" {
		t.Fatalf("data-kind = %q, want %q", got, "note")
	}
}

func TestRenderInto_TextAndTails(t *testing.T) {
	r := NewRenderer(nil, Options{})
	el := element.Paragraph(nil,
		element.Text("Hello "),
		element.El(nil, element.Text("bold")),
		element.Text(" world"),
	)
	holder, _ := renderUnder(t, r, el)
	para := holder.ChildElements()[0]
	if got := para.Text(); got != "Hello " {
		t.Fatalf("leading text = %q, want %q", got, "Hello ")
	}
	children := para.ChildElements()
	if len(children) != 1 {
		t.Fatalf("children = %d, want 1", len(children))
	}
	if got := children[0].Tail(); got != " world" {
		t.Fatalf("tail = %q, want %q", got, " world")
	}
}

func TestRenderInto_NearbyBeforeChildren(t *testing.T) {
	r := NewRenderer(nil, Options{})
	el := element.Column([]style.Attribute{
		element.Below(element.El(nil, element.Text("note"))),
	}, element.El(nil, element.Text("content")))
	holder, _ := renderUnder(t, r, el)
	column := holder.ChildElements()[0]

	if cls := column.SelectAttrValue("class", ""); !strings.Contains(cls, "has-nearby") {
		t.Fatalf("class = %q, want the nearby anchor marker", cls)
	}
	children := column.ChildElements()
	if len(children) != 2 {
		t.Fatalf("children = %d, want wrapper plus content", len(children))
	}
	if got := children[0].SelectAttrValue("class", ""); got != "nearby below" {
		t.Fatalf("wrapper class = %q, want %q", got, "nearby below")
	}
}

func TestRenderInto_NearbyStylesFlowUp(t *testing.T) {
	r := NewRenderer(nil, Options{})
	badge := element.El([]style.Attribute{
		element.BackgroundColor(style.Rgb255(204, 0, 0)),
	}, element.Text("1"))
	el := element.El([]style.Attribute{element.OnRight(badge)}, element.Text("inbox"))
	_, sheet := renderUnder(t, r, el)
	if !strings.Contains(sheet.Render(), ".bg-204-0-0-100") {
		t.Fatal("nearby child rule missing from the shared sheet")
	}
}

func TestRenderInto_LinkAttrs(t *testing.T) {
	r := NewRenderer(nil, Options{})

	holder, _ := renderUnder(t, r, element.NewTabLink(nil, "https://example.com/", element.Text("x")))
	a := holder.ChildElements()[0]
	if got := a.SelectAttrValue("href", ""); got != "https://example.com/" {
		t.Fatalf("href = %q, want %q", got, "https://example.com/")
	}
	if got := a.SelectAttrValue("target", ""); got != "_blank" {
		t.Fatalf("target = %q, want %q", got, "_blank")
	}
	if got := a.SelectAttrValue("rel", ""); got != "noopener noreferrer" {
		t.Fatalf("rel = %q, want %q", got, "noopener noreferrer")
	}

	holder, _ = renderUnder(t, r, element.DownloadLink(nil, "files/a.zip", element.Text("x")))
	a = holder.ChildElements()[0]
	if a.SelectAttr("download") == nil {
		t.Fatal("download attribute missing")
	}
}

func TestInlineImage(t *testing.T) {
	dir := t.TempDir()
	png := append([]byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 16)...)
	if err := os.WriteFile(filepath.Join(dir, "dot.png"), png, 0644); err != nil {
		t.Fatal(err)
	}

	r := NewRenderer(nil, Options{InlineImages: true, SourceDir: dir})
	holder, _ := renderUnder(t, r, element.Image(nil, "dot.png", "a dot"))
	img := holder.ChildElements()[0]
	src := img.SelectAttrValue("src", "")
	if !strings.HasPrefix(src, "data:image/png;base64,") {
		t.Fatalf("src = %q, want a png data URI", src)
	}
}

func TestInlineImage_RemoteAndDataLeftAlone(t *testing.T) {
	r := NewRenderer(nil, Options{InlineImages: true, SourceDir: t.TempDir()})
	for _, src := range []string{"https://example.com/a.png", "data:image/png;base64,AAAA"} {
		holder, _ := renderUnder(t, r, element.Image(nil, src, "x"))
		img := holder.ChildElements()[0]
		if got := img.SelectAttrValue("src", ""); got != src {
			t.Fatalf("src = %q, want %q untouched", got, src)
		}
	}
}

func TestInlineImage_MissingFile(t *testing.T) {
	r := NewRenderer(nil, Options{InlineImages: true, SourceDir: t.TempDir()})
	holder := etree.NewElement("holder")
	err := r.RenderInto(holder, element.Image(nil, "missing.png", "x"), gather.NewSheet())
	if err == nil {
		t.Fatal("expected an error for a missing image file")
	}
}
