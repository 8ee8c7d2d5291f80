package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an RGBA color. Red, green and blue channels are kept in the 0..1
// range and scaled to 0..255 only when formatting, alpha stays 0..1.
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// Rgb builds an opaque color from 0..1 channel values.
func Rgb(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Rgba builds a color from 0..1 channel values and 0..1 alpha.
func Rgba(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Rgb255 builds an opaque color from the usual 0..255 channel values.
func Rgb255(r, g, b int) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

func channel(v float64) int {
	return int(math.Round(v * 255))
}

// FormatColor renders the color as a stylesheet property value. Channels are
// rounded to 0..255, alpha keeps full precision.
func FormatColor(c Color) string {
	return "rgba(" +
		strconv.Itoa(channel(c.R)) + "," +
		strconv.Itoa(channel(c.G)) + "," +
		strconv.Itoa(channel(c.B)) + "," +
		FormatFloat(c.A) + ")"
}

// FormatColorClass renders the color as a class name fragment. Unlike
// FormatColor the alpha is rounded to a whole percent so that fragments stay
// short and class safe.
func FormatColorClass(c Color) string {
	return strconv.Itoa(channel(c.R)) + "-" +
		strconv.Itoa(channel(c.G)) + "-" +
		strconv.Itoa(channel(c.B)) + "-" +
		FloatClass(c.A)
}

// ParseHex parses "#rgb", "#rrggbb" and "#rrggbbaa" color notations, with or
// without the leading hash.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	byteAt := func(i int) (float64, error) {
		v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		return float64(v) / 255, err
	}
	switch len(hex) {
	case 3:
		var c Color
		c.A = 1
		for i, dst := range []*float64{&c.R, &c.G, &c.B} {
			v, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return Color{}, fmt.Errorf("unable to parse color %q: %w", s, err)
			}
			*dst = float64(v*16+v) / 255
		}
		return c, nil
	case 6, 8:
		var c Color
		c.A = 1
		for i, dst := range []*float64{&c.R, &c.G, &c.B} {
			v, err := byteAt(i * 2)
			if err != nil {
				return Color{}, fmt.Errorf("unable to parse color %q: %w", s, err)
			}
			*dst = v
		}
		if len(hex) == 8 {
			v, err := byteAt(6)
			if err != nil {
				return Color{}, fmt.Errorf("unable to parse color %q: %w", s, err)
			}
			c.A = v
		}
		return c, nil
	default:
		return Color{}, fmt.Errorf("unable to parse color %q: expected 3, 6 or 8 hex digits", s)
	}
}
