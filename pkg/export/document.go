// Package export assembles the printable grouped price report. The document
// model here is renderer-agnostic, the binary format is the renderer's
// concern.
package export

import (
	"strconv"
	"strings"
)

// Row is one priced item line inside a group table.
type Row struct {
	Number      string // hierarchical numbering, e.g. "2.1"
	Name        string
	ClientPrice string // formatted, 4 fractional digits
	VendorPrice string
}

// Table is one group section: a bold heading followed by item rows.
type Table struct {
	Heading string
	Headers []string
	Rows    []Row
}

// Document is the assembled report handed to a Renderer.
type Document struct {
	Title       string   // top line, largest and bold
	Subtitles   []string // centered bold lines under the title
	AddressLine string
	BodyLines   []string // appendix, company info, date line
	Tables      []Table
	Footer      string
}

// Renderer turns a document model into an opaque byte stream.
type Renderer interface {
	Render(doc *Document) ([]byte, error)
}

// FormatPrice parses a decimal price and renders it with exactly four
// fractional digits. Unparsable values render as zero, not an error.
func FormatPrice(value string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		f = 0
	}
	return strconv.FormatFloat(f, 'f', 4, 64)
}
