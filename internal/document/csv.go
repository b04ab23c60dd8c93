package document

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
)

// decodeDelimited reads a header record followed by data records. Every
// column is auto aligned and numeric cells become numbers.
func decodeDelimited(r io.Reader, comma rune) (*Document, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	if comma == '\t' {
		cr.LazyQuotes = true
	}

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &Document{}, nil
	}
	if err != nil {
		return nil, err
	}
	doc := &Document{Columns: make([]Column, len(header))}
	for i, h := range header {
		doc.Columns[i] = Column{Header: h}
	}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make([]any, len(record))
		for i, cell := range record {
			row[i] = parseCell(cell)
		}
		doc.Rows = append(doc.Rows, row)
	}
	return doc, nil
}

func parseCell(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return s
}
