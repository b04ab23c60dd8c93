package prettylist

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfiguration is wrapped by every error the package returns for
// rejected input.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Alignment controls how a value is padded to its column width.
type Alignment int

const (
	AlignAuto Alignment = iota // left for the first column, right otherwise
	AlignLeft
	AlignCenter
	AlignRight
)

var alignmentNames = map[Alignment]string{
	AlignAuto:   "auto",
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

// Symbolic spellings accepted by ParseAlignment in addition to the names.
var alignmentSymbols = map[string]Alignment{
	"F_DEFAULT": AlignAuto,
	"F_LEFT":    AlignLeft,
	"F_CENTER":  AlignCenter,
	"F_RIGHT":   AlignRight,
}

// String returns the alignment name.
func (a Alignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// Valid reports whether a is one of the four alignment modes.
func (a Alignment) Valid() bool {
	_, ok := alignmentNames[a]
	return ok
}

// ParseAlignment parses an alignment name (auto, left, center, right; case
// insensitive) or one of the symbols F_DEFAULT, F_LEFT, F_CENTER, F_RIGHT.
// The empty string is AlignAuto.
func ParseAlignment(s string) (Alignment, error) {
	if s == "" {
		return AlignAuto, nil
	}
	if a, ok := alignmentSymbols[s]; ok {
		return a, nil
	}
	for a, name := range alignmentNames {
		if strings.EqualFold(s, name) {
			return a, nil
		}
	}
	return AlignAuto, fmt.Errorf("%w: unknown alignment %q", ErrInvalidConfiguration, s)
}

// Column describes one table column.
//
// Header and Align are read each time the table is rendered. The sort label
// lookup, however, uses the headers as they were when the table was created.
type Column struct {
	Header string
	Align  Alignment
}

// NewColumn returns a column with the given header and alignment.
func NewColumn(header string, align Alignment) (*Column, error) {
	if !align.Valid() {
		return nil, fmt.Errorf("%w: invalid alignment %d for column %q", ErrInvalidConfiguration, int(align), header)
	}
	return &Column{Header: header, Align: align}, nil
}

// resolve returns the concrete alignment for the column at index i.
func (c *Column) resolve(i int) Alignment {
	switch c.Align {
	case AlignLeft, AlignCenter, AlignRight:
		return c.Align
	case AlignAuto:
		if i == 0 {
			return AlignLeft
		}
		return AlignRight
	default:
		return AlignLeft
	}
}
