package render

import (
	_ "embed"

	"github.com/beevik/etree"

	"trellis/css"
	"trellis/element"
	"trellis/gather"
	"trellis/misc"
)

//go:embed base.css
var baseCSS string

// BaseCSS returns the static plumbing stylesheet: flex layout for the
// container kinds, fill growth, alignment and nearby positioning. Generated
// rules assume it is present on the page.
func BaseCSS() string {
	return baseCSS
}

// Embedded renders root into a container div that carries the generated
// stylesheet in a style node ahead of the rendered tree. With nothing to
// style no style node is emitted. The host page is expected to include
// BaseCSS separately.
func (r *Renderer) Embedded(root *element.Element, extra *css.Stylesheet) (string, error) {
	sheet := gather.NewSheet()
	container := etree.NewElement("div")
	container.CreateAttr("class", "trellis-root")
	if err := r.RenderInto(container, root, sheet); err != nil {
		return "", err
	}
	if text := stylesheetText(sheet, extra); text != "" {
		styleEl := etree.NewElement("style")
		styleEl.SetText(text)
		container.InsertChildAt(0, styleEl)
	}
	return renderFragment(container)
}

// Standalone renders root and returns the markup and the generated
// stylesheet text separately, leaving placement to the caller.
func (r *Renderer) Standalone(root *element.Element, extra *css.Stylesheet) (markup, stylesheet string, err error) {
	sheet := gather.NewSheet()
	holder := etree.NewElement("holder")
	if err = r.RenderInto(holder, root, sheet); err != nil {
		return "", "", err
	}
	stylesheet = stylesheetText(sheet, extra)
	children := holder.ChildElements()
	if len(children) == 0 {
		return "", stylesheet, nil
	}
	markup, err = renderFragment(children[0])
	return markup, stylesheet, err
}

// DocInfo describes a complete page document.
type DocInfo struct {
	Title string
	Lang  string

	// LinkCSS references the stylesheet from the head instead of inlining
	// it; CSSHref is the referenced name, empty means "<app>.css".
	LinkCSS bool
	CSSHref string
}

// Document renders root as a complete XHTML document. The returned text is
// the stylesheet the caller must place next to the document when LinkCSS is
// set, empty otherwise since everything is inside the document already.
func (r *Renderer) Document(info DocInfo, root *element.Element, extra *css.Stylesheet) (*etree.Document, string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	html := doc.CreateElement("html")
	html.CreateAttr("xmlns", "http://www.w3.org/1999/xhtml")
	if info.Lang != "" {
		html.CreateAttr("xml:lang", info.Lang)
		html.CreateAttr("lang", info.Lang)
	}

	head := html.CreateElement("head")
	body := html.CreateElement("body")

	sheet := gather.NewSheet()
	if err := r.RenderInto(body, root, sheet); err != nil {
		return nil, "", err
	}

	cssText := BaseCSS()
	if generated := stylesheetText(sheet, extra); generated != "" {
		cssText += "\n" + generated
	}

	meta := head.CreateElement("meta")
	meta.CreateAttr("http-equiv", "Content-Type")
	meta.CreateAttr("content", "text/html; charset=utf-8")

	if info.LinkCSS {
		href := info.CSSHref
		if href == "" {
			href = misc.GetAppName() + ".css"
		}
		link := head.CreateElement("link")
		link.CreateAttr("rel", "stylesheet")
		link.CreateAttr("type", "text/css")
		link.CreateAttr("href", href)
	} else {
		styleEl := head.CreateElement("style")
		styleEl.SetText(cssText)
		cssText = ""
	}

	titleElem := head.CreateElement("title")
	titleElem.SetText(info.Title)

	return doc, cssText, nil
}
