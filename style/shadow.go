package style

// Shadow describes one box or text shadow. Size and Inset only matter for box
// shadows, text shadows ignore them.
type Shadow struct {
	Inset   bool
	OffsetX float64
	OffsetY float64
	Blur    float64
	Size    float64
	Color   Color
}

// FormatBoxShadow renders the shadow as one entry of a box-shadow list.
func FormatBoxShadow(s Shadow) string {
	var prefix string
	if s.Inset {
		prefix = "inset "
	}
	return prefix +
		Pixels(s.OffsetX) + " " +
		Pixels(s.OffsetY) + " " +
		Pixels(s.Blur) + " " +
		Pixels(s.Size) + " " +
		FormatColor(s.Color)
}

// FormatTextShadow renders the shadow as one entry of a text-shadow list,
// which has no inset or spread component.
func FormatTextShadow(s Shadow) string {
	return Pixels(s.OffsetX) + " " +
		Pixels(s.OffsetY) + " " +
		Pixels(s.Blur) + " " +
		FormatColor(s.Color)
}
