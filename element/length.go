package element

import (
	"strconv"

	"trellis/style"
)

// Length is a sizing request for one dimension. The set of implementations
// is closed, Width and Height handle every one of them.
type Length interface {
	isLength()
}

// Px is a fixed pixel size.
type Px struct {
	Value int
}

// Content sizes the dimension to fit the children.
type Content struct{}

// Fill takes all remaining space, shared equally with sibling fills.
type Fill struct{}

// Portion takes remaining space in proportion to its weight relative to the
// other fills and portions among its siblings. Fill is Portion one.
type Portion struct {
	Weight int
}

func (Px) isLength()      {}
func (Content) isLength() {}
func (Fill) isLength()    {}
func (Portion) isLength() {}

// portionScale keeps portion weights dominant over the flex growth of plain
// fills, which the base stylesheet sets to 100000.
const portionScale = 100000

// Width sizes the horizontal dimension.
func Width(l Length) style.Attribute {
	switch lt := l.(type) {
	case Px:
		n := strconv.Itoa(lt.Value)
		return style.Styled{Rule: style.SingleRule{
			Class: "width-px-" + n,
			Prop:  "width",
			Value: n + "px",
		}}
	case Content:
		return style.Class{Key: KeyWidth, Name: "width-content"}
	case Fill:
		return style.Class{Key: KeyWidth, Name: "width-fill"}
	case Portion:
		n := strconv.Itoa(lt.Weight)
		return style.Styled{Rule: style.SingleRule{
			Class: "width-fill-" + n,
			Prop:  "flex-grow",
			Value: strconv.Itoa(lt.Weight * portionScale),
		}}
	default:
		// the length union is closed, this should never happen
		panic("unknown length type")
	}
}

// Height sizes the vertical dimension.
func Height(l Length) style.Attribute {
	switch lt := l.(type) {
	case Px:
		n := strconv.Itoa(lt.Value)
		return style.Styled{Rule: style.SingleRule{
			Class: "height-px-" + n,
			Prop:  "height",
			Value: n + "px",
		}}
	case Content:
		return style.Class{Key: KeyHeight, Name: "height-content"}
	case Fill:
		return style.Class{Key: KeyHeight, Name: "height-fill"}
	case Portion:
		n := strconv.Itoa(lt.Weight)
		return style.Styled{Rule: style.SingleRule{
			Class: "height-fill-" + n,
			Prop:  "flex-grow",
			Value: strconv.Itoa(lt.Weight * portionScale),
		}}
	default:
		// the length union is closed, this should never happen
		panic("unknown length type")
	}
}
