// Package csvreader reads a delimited export of the legacy pricing table.
// The header row defines the field set, rows become map-backed records in
// file order.
package csvreader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"pricebook-be/pkg/catalog"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// IdField is the header column holding the record identifier.
const IdField = "id"

type Reader struct {
	decodeWin1251 bool
}

type Option func(*Reader)

// WithWindows1251 decodes the file from cp1251, the encoding the legacy
// table exports carry.
func WithWindows1251() Option {
	return func(r *Reader) { r.decodeWin1251 = true }
}

func New(opts ...Option) *Reader {
	r := &Reader{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Reader) Read(ctx context.Context, source string) ([]catalog.Record, []string, error) {
	file, err := os.Open(source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open catalog source: %w", err)
	}
	defer file.Close()

	var in io.Reader = file
	if r.decodeWin1251 {
		in = transform.NewReader(file, charmap.Windows1251.NewDecoder())
	}

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read source headers: %w", err)
	}

	var records []catalog.Record
	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read source row: %w", err)
		}

		fields := make(map[string]string, len(headers))
		for i, value := range row {
			if i < len(headers) {
				fields[headers[i]] = value
			}
		}

		records = append(records, catalog.Record{
			Id:     fields[IdField],
			Fields: fields,
		})
	}

	return records, headers, nil
}
