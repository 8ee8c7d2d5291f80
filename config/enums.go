package config

// Specification of requested stylesheet placement.
// ENUM(embed, link)
type StylesheetMode int

// Specification of requested output type.
// ENUM(html, bundle)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtHtml:
		return ".html"
	case OutputFmtBundle:
		return ".zip"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
