package style

// Filter is a single CSS filter function. The set of implementations is
// closed, FormatFilter handles every one of them.
type Filter interface {
	isFilter()
}

// Blur blurs the element by the given radius in pixels.
type Blur struct {
	Radius float64
}

// Brightness adjusts brightness, 100 being the neutral value.
type Brightness struct {
	Percent float64
}

// Contrast adjusts contrast, 100 being the neutral value.
type Contrast struct {
	Percent float64
}

// Grayscale desaturates the element by the given percentage.
type Grayscale struct {
	Percent float64
}

// Invert inverts colors by the given percentage.
type Invert struct {
	Percent float64
}

// Saturate adjusts saturation, 100 being the neutral value.
type Saturate struct {
	Percent float64
}

// Sepia applies a sepia tint by the given percentage.
type Sepia struct {
	Percent float64
}

// HueRotate shifts all hues by the given angle in degrees.
type HueRotate struct {
	Degrees float64
}

// OpacityFilter fades the element by the given percentage. Named this way to
// keep it apart from a plain opacity property.
type OpacityFilter struct {
	Percent float64
}

// DropShadow renders a shadow following the element's alpha mask. Spread and
// inset are not representable in the drop-shadow function and are ignored.
type DropShadow struct {
	Shadow Shadow
}

func (Blur) isFilter()          {}
func (Brightness) isFilter()    {}
func (Contrast) isFilter()      {}
func (Grayscale) isFilter()     {}
func (Invert) isFilter()        {}
func (Saturate) isFilter()      {}
func (Sepia) isFilter()         {}
func (HueRotate) isFilter()     {}
func (OpacityFilter) isFilter() {}
func (DropShadow) isFilter()    {}

// FormatFilter renders the filter as a CSS filter function.
func FormatFilter(f Filter) string {
	switch ft := f.(type) {
	case Blur:
		return "blur(" + Pixels(ft.Radius) + ")"
	case Brightness:
		return "brightness(" + FormatFloat(ft.Percent) + "%)"
	case Contrast:
		return "contrast(" + FormatFloat(ft.Percent) + "%)"
	case Grayscale:
		return "grayscale(" + FormatFloat(ft.Percent) + "%)"
	case Invert:
		return "invert(" + FormatFloat(ft.Percent) + "%)"
	case Saturate:
		return "saturate(" + FormatFloat(ft.Percent) + "%)"
	case Sepia:
		return "sepia(" + FormatFloat(ft.Percent) + "%)"
	case HueRotate:
		return "hue-rotate(" + FormatFloat(ft.Degrees) + "deg)"
	case OpacityFilter:
		return "opacity(" + FormatFloat(ft.Percent) + "%)"
	case DropShadow:
		return "drop-shadow(" +
			Pixels(ft.Shadow.OffsetX) + " " +
			Pixels(ft.Shadow.OffsetY) + " " +
			Pixels(ft.Shadow.Blur) + " " +
			FormatColor(ft.Shadow.Color) + ")"
	default:
		// the union is closed, this should never happen
		panic("unknown filter type")
	}
}
