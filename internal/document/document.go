// Package document decodes table documents: files that describe the columns,
// render options and rows of a table in YAML, JSON, TOML, CSV or TSV.
package document

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/prettylist"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrDecode            = errors.New("decode document")
)

// Format is the encoding of a document.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
	TOML Format = "toml"
	CSV  Format = "csv"
	TSV  Format = "tsv"
)

var formats = []Format{YAML, JSON, TOML, CSV, TSV}

var extensions = map[string]Format{
	".yaml": YAML,
	".yml":  YAML,
	".json": JSON,
	".toml": TOML,
	".csv":  CSV,
	".tsv":  TSV,
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) (Format, bool) {
	f, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// Document describes a table.
type Document struct {
	Columns []Column `yaml:"columns" json:"columns" toml:"columns"`
	Options Options  `yaml:"options" json:"options" toml:"options"`
	Rows    [][]any  `yaml:"rows" json:"rows" toml:"rows"`
}

// Column is one column definition. Align accepts any name
// [prettylist.ParseAlignment] understands; empty means auto.
type Column struct {
	Header string `yaml:"header" json:"header" toml:"header"`
	Align  string `yaml:"align" json:"align" toml:"align"`
}

// Options mirror the table options. Nil separators keep the defaults.
type Options struct {
	Header  bool    `yaml:"header" json:"header" toml:"header"`
	Sort    string  `yaml:"sort" json:"sort" toml:"sort"`
	Reverse bool    `yaml:"reverse" json:"reverse" toml:"reverse"`
	Sep     *string `yaml:"sep" json:"sep" toml:"sep"`
	LineSep *string `yaml:"line_sep" json:"line_sep" toml:"line_sep"`
}

// Decode reads a document in format f from r.
func Decode(r io.Reader, f Format) (*Document, error) {
	var (
		doc *Document
		err error
	)
	switch f {
	case YAML:
		doc, err = decodeYAML(r)
	case JSON:
		doc, err = decodeJSON(r)
	case TOML:
		doc, err = decodeTOML(r)
	case CSV:
		doc, err = decodeDelimited(r, ',')
	case TSV:
		doc, err = decodeDelimited(r, '\t')
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, f, err)
	}
	return doc, nil
}

func decodeYAML(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &doc, nil
}

func decodeJSON(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	for _, row := range doc.Rows {
		for i, v := range row {
			if n, ok := v.(json.Number); ok {
				row[i] = number(n)
			}
		}
	}
	return &doc, nil
}

// number keeps integral JSON numbers integral so they render without a
// decimal point.
func number(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

func decodeTOML(r io.Reader) (*Document, error) {
	var doc Document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Table builds a table from the document and appends its rows. Overrides are
// applied after the document's own options.
func (d *Document) Table(overrides ...prettylist.Option) (*prettylist.Table, error) {
	columns := make([]*prettylist.Column, len(d.Columns))
	for i, c := range d.Columns {
		align, err := prettylist.ParseAlignment(c.Align)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Header, err)
		}
		col, err := prettylist.NewColumn(c.Header, align)
		if err != nil {
			return nil, err
		}
		columns[i] = col
	}

	opts := append(d.Options.options(), overrides...)
	t, err := prettylist.New(columns, opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range d.Rows {
		if err := t.AddRow(row...); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return t, nil
}

func (o Options) options() []prettylist.Option {
	opts := []prettylist.Option{
		prettylist.WithHeader(o.Header),
		prettylist.WithSort(o.Sort),
		prettylist.WithReverse(o.Reverse),
	}
	if o.Sep != nil {
		opts = append(opts, prettylist.WithSeparator(*o.Sep))
	}
	if o.LineSep != nil {
		opts = append(opts, prettylist.WithLineSeparator(*o.LineSep))
	}
	return opts
}
