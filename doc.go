// Package prettylist renders rows of heterogeneous values as aligned plain
// text.
//
// A [Table] owns an ordered list of [Column] descriptors and the rows added to
// it. Rendering computes column widths from the rows being rendered, pads
// every field except a row's last to that width, and joins the fields and
// lines with configurable separators:
//
//	t, err := prettylist.New([]*prettylist.Column{
//		{Header: "City"},
//		{Header: "Area", Align: prettylist.AlignRight},
//	}, prettylist.WithHeader(true), prettylist.WithSeparator(" | "))
//	t.AddRow("Adelaide", 1295)
//	fmt.Println(t)
//
// # Alignment
//
// Each column has an [Alignment]. [AlignAuto], the zero value, resolves when
// the table is rendered: the first column is left aligned and every other
// column is right aligned. The last value of a row is never padded, so lines
// carry no trailing spaces.
//
// # Widths
//
// Widths count characters (runes), not terminal cells. They are computed
// lazily by each render from the selected rows (and the headers, when shown)
// and only ever grow: a table remembers the widest value it has rendered in
// each column. See [Table.Widths].
//
// # Sorting and ranges
//
// [WithSort] names the header of the column to sort by. Every render sorts
// all rows in place (stable, optionally reversed with [WithReverse]) before
// the requested [Range] is selected, so [Span](0, 1) returns the first row in
// sorted order. Keys of different kinds sort missing cells first, then
// numbers, strings, times and finally anything else by its text.
//
// # Errors
//
// Every rejected input wraps [ErrInvalidConfiguration]: an unknown alignment,
// an empty column list, a row longer than the column list, a sort label that
// matches no header, or a zero range step.
//
// A Table is not safe for concurrent use. Callers must serialize AddRow and
// render calls.
package prettylist
