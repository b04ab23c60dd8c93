package prettylist

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Table renders rows of values under a fixed list of columns.
type Table struct {
	columns []*Column
	headers []string // snapshot taken by New, used to resolve the sort label
	widths  []int
	rows    [][]any
	cfg     config
}

// New returns a table over columns. The column list must be non-empty and
// must not contain nil entries.
func New(columns []*Column, opts ...Option) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: table needs at least one column", ErrInvalidConfiguration)
	}
	headers := make([]string, len(columns))
	for i, c := range columns {
		if c == nil {
			return nil, fmt.Errorf("%w: column %d is nil", ErrInvalidConfiguration, i)
		}
		headers[i] = c.Header
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Table{
		columns: slices.Clone(columns),
		headers: headers,
		widths:  make([]int, len(columns)),
		cfg:     cfg,
	}, nil
}

// AddRow appends a row. A row may have fewer values than the table has
// columns, but not more. Widths are not updated until the row is rendered.
func (t *Table) AddRow(values ...any) error {
	if len(values) > len(t.columns) {
		return fmt.Errorf("%w: row has %d values, table has %d columns", ErrInvalidConfiguration, len(values), len(t.columns))
	}
	t.rows = append(t.rows, slices.Clone(values))
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns the table's columns.
func (t *Table) Columns() []*Column { return slices.Clone(t.columns) }

// Widths returns the widest value rendered so far in each column, headers
// included when shown.
func (t *Table) Widths() []int { return slices.Clone(t.widths) }

// String renders every row. It returns the empty string if rendering fails;
// use Render to see the error.
func (t *Table) String() string {
	s, err := t.Render(All())
	if err != nil {
		return ""
	}
	return s
}

// Marshal renders every row and returns the bytes.
func (t *Table) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Write(&buf, All()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render returns the rows selected by r as text. Lines are joined by the line
// separator with no trailing separator.
func (t *Table) Render(r Range) (string, error) {
	lines, err := t.lines(r)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, t.cfg.lineSep), nil
}

// Write renders the rows selected by r to w.
func (t *Table) Write(w io.Writer, r Range) error {
	s, err := t.Render(r)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

func (t *Table) lines(r Range) ([]string, error) {
	if err := t.sort(); err != nil {
		return nil, err
	}
	idx, err := r.indices(len(t.rows))
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(idx))
	for i, n := range idx {
		rows[i] = rowText(t.rows[n])
	}

	t.growWidths(rows)

	var lines []string
	if t.cfg.header {
		header := make([]string, len(t.columns))
		dashes := make([]string, len(t.columns))
		for i, c := range t.columns {
			header[i] = c.Header
			dashes[i] = strings.Repeat("-", t.widths[i])
		}
		lines = append(lines, t.line(header), t.line(dashes))
	}
	for _, row := range rows {
		lines = append(lines, t.line(row))
	}
	return lines, nil
}

// sort orders every row by the configured sort column. The label is resolved
// before any row moves, so a failed lookup leaves the rows untouched.
func (t *Table) sort() error {
	if t.cfg.sortBy == "" {
		return nil
	}
	pos := slices.Index(t.headers, t.cfg.sortBy)
	if pos < 0 {
		return fmt.Errorf("%w: no column with header %q to sort by", ErrInvalidConfiguration, t.cfg.sortBy)
	}
	slices.SortStableFunc(t.rows, func(a, b []any) int {
		c := compareCells(cellAt(a, pos), cellAt(b, pos))
		if t.cfg.reverse {
			return -c
		}
		return c
	})
	return nil
}

func cellAt(row []any, i int) any {
	if i < len(row) {
		return row[i]
	}
	return nil
}

func rowText(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = cellText(v)
	}
	return out
}

func (t *Table) growWidths(rows [][]string) {
	for _, row := range rows {
		for i, cell := range row {
			if w := textWidth(cell); w > t.widths[i] {
				t.widths[i] = w
			}
		}
	}
	if t.cfg.header {
		for i, c := range t.columns {
			if w := textWidth(c.Header); w > t.widths[i] {
				t.widths[i] = w
			}
		}
	}
}

// line pads every field but the last to its column width.
func (t *Table) line(fields []string) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, len(fields))
	last := len(fields) - 1
	for i, field := range fields[:last] {
		parts[i] = alignCell(field, t.widths[i], t.columns[i].resolve(i))
	}
	parts[last] = fields[last]
	return strings.Join(parts, t.cfg.sep)
}
