package style

import (
	"math"
	"strconv"
	"strings"
)

// ClassName derives a class-safe token from an arbitrary value string: the
// input is lowercased and every character outside [a-z0-9_-] is dropped. The
// mapping is pure and total, identical inputs always produce identical names,
// which is what makes content-addressed rule sharing work.
func ClassName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatFloat renders a number at full precision in its shortest decimal form,
// "5" rather than "5.000000".
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FloatClass renders a number as a class name fragment: scaled by 100 and
// rounded to an integer, so 0.25 becomes "25".
func FloatClass(f float64) string {
	return strconv.Itoa(int(math.Round(f * 100)))
}

// Pixels renders a number as a pixel dimension.
func Pixels(f float64) string {
	return FormatFloat(f) + "px"
}
