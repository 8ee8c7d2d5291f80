package element

import (
	"strconv"

	"trellis/style"
)

// Attr passes an opaque markup attribute through to the renderer.
func Attr(key, value string) style.Attribute {
	return style.RawAttr{Key: key, Value: value}
}

// ID sets the markup id attribute.
func ID(id string) style.Attribute {
	return style.RawAttr{Key: "id", Value: id}
}

// Spacing requests gaps between the children of a container, x pixels
// horizontally and y pixels vertically.
func Spacing(x, y int) style.Attribute {
	return style.Styled{Rule: style.SpacingRule{X: x, Y: y}}
}

// SpacingXY is Spacing with a single gap for both directions.
func SpacingXY(n int) style.Attribute {
	return Spacing(n, n)
}

// Padding pads every edge by the same amount.
func Padding(n int) style.Attribute {
	return PaddingEach(n, n, n, n)
}

// PaddingXY pads the left/right edges by x and the top/bottom edges by y.
func PaddingXY(x, y int) style.Attribute {
	return PaddingEach(y, x, y, x)
}

// PaddingEach pads each edge individually.
func PaddingEach(top, right, bottom, left int) style.Attribute {
	return style.Styled{Rule: style.PaddingRule{
		Top:    top,
		Right:  right,
		Bottom: bottom,
		Left:   left,
	}}
}

// BackgroundColor fills the element background.
func BackgroundColor(c style.Color) style.Attribute {
	return style.Styled{Rule: style.ColorRule{
		Class: "bg-" + style.FormatColorClass(c),
		Prop:  "background-color",
		Color: c,
	}}
}

// FontColor colors the element text.
func FontColor(c style.Color) style.Attribute {
	return style.Styled{Rule: style.ColorRule{
		Class: "fc-" + style.FormatColorClass(c),
		Prop:  "color",
		Color: c,
	}}
}

// BorderColor colors the element border.
func BorderColor(c style.Color) style.Attribute {
	return style.Styled{Rule: style.ColorRule{
		Class: "bc-" + style.FormatColorClass(c),
		Prop:  "border-color",
		Color: c,
	}}
}

// FontSize sets the text size in pixels.
func FontSize(n int) style.Attribute {
	s := strconv.Itoa(n)
	return style.Styled{Rule: style.SingleRule{
		Class: "font-size-" + s,
		Prop:  "font-size",
		Value: s + "px",
	}}
}

// BorderWidth draws a solid border of the given width on every edge.
func BorderWidth(n int) style.Attribute {
	s := strconv.Itoa(n)
	return style.Styled{Rule: style.SingleRule{
		Class: "border-" + s,
		Prop:  "border-width",
		Value: s + "px",
	}}
}

// Rounded rounds the element corners by the given radius.
func Rounded(n int) style.Attribute {
	s := strconv.Itoa(n)
	return style.Styled{Rule: style.SingleRule{
		Class: "rounded-" + s,
		Prop:  "border-radius",
		Value: s + "px",
	}}
}

// Opacity fades the whole element, zero transparent through one opaque.
func Opacity(f float64) style.Attribute {
	return style.Styled{Rule: style.SingleRule{
		Class: "opacity-" + style.FloatClass(f),
		Prop:  "opacity",
		Value: style.FormatFloat(f),
	}}
}

// GridColumns sets the column count of a grid container. The Grid
// constructor attaches it, standalone use only makes sense together with the
// grid structural class.
func GridColumns(n int) style.Attribute {
	s := strconv.Itoa(n)
	return style.Styled{Rule: style.SingleRule{
		Class: "grid-cols-" + s,
		Prop:  "grid-template-columns",
		Value: "repeat(" + s + ", 1fr)",
	}}
}

// AlignLeft aligns the element against the start of the horizontal axis.
func AlignLeft() style.Attribute {
	return style.Class{Key: KeyHAlign, Name: "align-left"}
}

// CenterX centers the element on the horizontal axis.
func CenterX() style.Attribute {
	return style.Class{Key: KeyHAlign, Name: "align-center-x"}
}

// AlignRight aligns the element against the end of the horizontal axis.
func AlignRight() style.Attribute {
	return style.Class{Key: KeyHAlign, Name: "align-right"}
}

// AlignTop aligns the element against the start of the vertical axis.
func AlignTop() style.Attribute {
	return style.Class{Key: KeyVAlign, Name: "align-top"}
}

// CenterY centers the element on the vertical axis.
func CenterY() style.Attribute {
	return style.Class{Key: KeyVAlign, Name: "align-center-y"}
}

// AlignBottom aligns the element against the end of the vertical axis.
func AlignBottom() style.Attribute {
	return style.Class{Key: KeyVAlign, Name: "align-bottom"}
}

// MoveRight shifts the rendered element right without affecting layout.
func MoveRight(x float64) style.Attribute {
	return style.Move{X: style.Ax(x)}
}

// MoveLeft shifts the rendered element left without affecting layout.
func MoveLeft(x float64) style.Attribute {
	return style.Move{X: style.Ax(-x)}
}

// MoveDown shifts the rendered element down without affecting layout.
func MoveDown(y float64) style.Attribute {
	return style.Move{Y: style.Ax(y)}
}

// MoveUp shifts the rendered element up without affecting layout.
func MoveUp(y float64) style.Attribute {
	return style.Move{Y: style.Ax(-y)}
}

// Scaled resizes the rendered element uniformly around its center.
func Scaled(s float64) style.Attribute {
	return style.Scale{X: style.Ax(s), Y: style.Ax(s), Z: style.Ax(1)}
}

// RotateBy turns the rendered element clockwise by the given angle in
// radians.
func RotateBy(angle float64) style.Attribute {
	return style.Rotate{Z: 1, Angle: angle}
}

// Blur blurs the element by the given radius.
func Blur(radius float64) style.Attribute {
	return style.Filtered{Filter: style.Blur{Radius: radius}}
}

// Grayscale desaturates the element by the given percentage.
func Grayscale(percent float64) style.Attribute {
	return style.Filtered{Filter: style.Grayscale{Percent: percent}}
}

// Sepia tints the element by the given percentage.
func Sepia(percent float64) style.Attribute {
	return style.Filtered{Filter: style.Sepia{Percent: percent}}
}

// Invert inverts the element colors by the given percentage.
func Invert(percent float64) style.Attribute {
	return style.Filtered{Filter: style.Invert{Percent: percent}}
}

// Saturate adjusts element saturation, 100 being neutral.
func Saturate(percent float64) style.Attribute {
	return style.Filtered{Filter: style.Saturate{Percent: percent}}
}

// Brightness adjusts element brightness, 100 being neutral.
func Brightness(percent float64) style.Attribute {
	return style.Filtered{Filter: style.Brightness{Percent: percent}}
}

// Contrast adjusts element contrast, 100 being neutral.
func Contrast(percent float64) style.Attribute {
	return style.Filtered{Filter: style.Contrast{Percent: percent}}
}

// HueRotate shifts all element hues by the given angle in degrees.
func HueRotate(degrees float64) style.Attribute {
	return style.Filtered{Filter: style.HueRotate{Degrees: degrees}}
}

// Shadow adds an outer box shadow.
func Shadow(s style.Shadow) style.Attribute {
	return style.BoxShadowed{Shadow: s}
}

// InnerShadow adds an inset box shadow.
func InnerShadow(s style.Shadow) style.Attribute {
	s.Inset = true
	return style.BoxShadowed{Shadow: s}
}

// TextShadow adds a text shadow.
func TextShadow(s style.Shadow) style.Attribute {
	return style.TextShadowed{Shadow: s}
}

// Above positions a child over the top edge of the element, outside normal
// flow.
func Above(child *Element) style.Attribute {
	return style.Nearby{Location: style.Above, Child: child}
}

// Below positions a child under the bottom edge of the element, outside
// normal flow.
func Below(child *Element) style.Attribute {
	return style.Nearby{Location: style.Below, Child: child}
}

// OnLeft positions a child against the left edge of the element, outside
// normal flow.
func OnLeft(child *Element) style.Attribute {
	return style.Nearby{Location: style.OnLeft, Child: child}
}

// OnRight positions a child against the right edge of the element, outside
// normal flow.
func OnRight(child *Element) style.Attribute {
	return style.Nearby{Location: style.OnRight, Child: child}
}

// Overlay positions a child covering the element, outside normal flow.
func Overlay(child *Element) style.Attribute {
	return style.Nearby{Location: style.Overlay, Child: child}
}

// StyleRule attaches an arbitrary rule. It is the escape hatch for one-off
// custom CSS blocks.
func StyleRule(r style.Rule) style.Attribute {
	return style.Styled{Rule: r}
}

// WithClass toggles a literal class under the caller's invalidation key.
func WithClass(key, name string) style.Attribute {
	return style.Class{Key: key, Name: name}
}
