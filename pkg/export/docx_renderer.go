package export

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"
)

// Column widths of the group tables in twips (№, name, client price,
// vendor price), matching the printed form the report replaces.
var columnWidthsTwips = []int64{850, 4536, 1701, 1701}

const tableWidthTwips = 8788

type DocxRenderer struct{}

func NewDocxRenderer() Renderer {
	return &DocxRenderer{}
}

func (r *DocxRenderer) Render(doc *Document) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	title := w.AddParagraph().Justification("center")
	title.AddText(doc.Title).Size("28").Bold()

	for _, line := range doc.Subtitles {
		p := w.AddParagraph().Justification("center")
		p.AddText(line).Size("24").Bold()
	}

	sep := w.AddParagraph().Justification("center")
	sep.AddText("________________________________________________")

	if doc.AddressLine != "" {
		p := w.AddParagraph().Justification("center")
		p.AddText(doc.AddressLine)
	}

	for _, line := range doc.BodyLines {
		w.AddParagraph().AddText(line)
	}

	w.AddParagraph()

	for _, table := range doc.Tables {
		heading := w.AddParagraph()
		heading.AddText(table.Heading).Bold()

		rowCount := len(table.Rows) + 1
		tbl := w.AddTableTwips(make([]int64, rowCount), columnWidthsTwips, tableWidthTwips, nil)

		header := tbl.TableRows[0]
		for i, text := range table.Headers {
			if i >= len(header.TableCells) {
				break
			}
			p := header.TableCells[i].AddParagraph().Justification("center")
			p.AddText(text).Bold()
		}

		for ri, row := range table.Rows {
			cells := tbl.TableRows[ri+1].TableCells
			if len(cells) < 4 {
				return nil, fmt.Errorf("table row %d has %d cells, want 4", ri+1, len(cells))
			}
			cells[0].AddParagraph().Justification("center").AddText(row.Number)
			cells[1].AddParagraph().AddText(row.Name)
			cells[2].AddParagraph().Justification("right").AddText(row.ClientPrice)
			cells[3].AddParagraph().Justification("right").AddText(row.VendorPrice)
		}

		w.AddParagraph()
	}

	if doc.Footer != "" {
		// The format keeps no real footer part, the closing line stands in.
		f := w.AddParagraph()
		f.AddText(doc.Footer).Size("18")
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}
	return buf.Bytes(), nil
}
