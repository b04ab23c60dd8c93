package document_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/prettylist"
	"github.com/bjaus/prettylist/internal/document"
)

const citiesYAML = `
columns:
  - header: City
    align: left
  - header: Area
    align: F_RIGHT
  - header: Population
  - header: Rain
options:
  header: true
  sort: City
  sep: " | "
rows:
  - [Darwin, 112, 120900, 1714.7]
  - [Adelaide, 1295, 1158259, 600.5]
`

const citiesJSON = `{
  "columns": [
    {"header": "City", "align": "left"},
    {"header": "Area", "align": "right"},
    {"header": "Population"},
    {"header": "Rain"}
  ],
  "options": {"header": true, "sort": "City", "sep": " | "},
  "rows": [
    ["Darwin", 112, 120900, 1714.7],
    ["Adelaide", 1295, 1158259, 600.5]
  ]
}`

const citiesTOML = `
rows = [
  ["Darwin", 112, 120900, 1714.7],
  ["Adelaide", 1295, 1158259, 600.5],
]

[options]
header = true
sort = "City"
sep = " | "

[[columns]]
header = "City"
align = "left"

[[columns]]
header = "Area"
align = "right"

[[columns]]
header = "Population"

[[columns]]
header = "Rain"
`

var citiesWant = strings.Join([]string{
	"City     | Area | Population | Rain",
	"-------- | ---- | ---------- | ------",
	"Adelaide | 1295 |    1158259 | 600.5",
	"Darwin   |  112 |     120900 | 1714.7",
}, "\n")

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    document.Format
		wantErr require.ErrorAssertionFunc
	}{
		"yaml":    {input: "yaml", want: document.YAML, wantErr: require.NoError},
		"json":    {input: "JSON", want: document.JSON, wantErr: require.NoError},
		"toml":    {input: "toml", want: document.TOML, wantErr: require.NoError},
		"csv":     {input: "csv", want: document.CSV, wantErr: require.NoError},
		"tsv":     {input: "tsv", want: document.TSV, wantErr: require.NoError},
		"unknown": {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := document.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatErrorKind(t *testing.T) {
	t.Parallel()
	_, err := document.ParseFormat("xml")
	assert.ErrorIs(t, err, document.ErrUnsupportedFormat)
}

func TestFormats(t *testing.T) {
	t.Parallel()
	got := document.Formats()
	assert.Equal(t, []document.Format{
		document.YAML, document.JSON, document.TOML, document.CSV, document.TSV,
	}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, document.YAML, document.Formats()[0])
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		path string
		want document.Format
		ok   bool
	}{
		"yaml":      {path: "t.yaml", want: document.YAML, ok: true},
		"yml":       {path: "dir/t.YML", want: document.YAML, ok: true},
		"json":      {path: "t.json", want: document.JSON, ok: true},
		"toml":      {path: "t.toml", want: document.TOML, ok: true},
		"csv":       {path: "t.csv", want: document.CSV, ok: true},
		"tsv":       {path: "t.tsv", want: document.TSV, ok: true},
		"unknown":   {path: "t.txt", ok: false},
		"extension": {path: "noext", ok: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := document.FormatFromPath(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeAndRender(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format document.Format
		input  string
	}{
		"yaml": {format: document.YAML, input: citiesYAML},
		"json": {format: document.JSON, input: citiesJSON},
		"toml": {format: document.TOML, input: citiesTOML},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			doc, err := document.Decode(strings.NewReader(tt.input), tt.format)
			require.NoError(t, err)
			require.Len(t, doc.Columns, 4)
			require.Len(t, doc.Rows, 2)

			tbl, err := doc.Table()
			require.NoError(t, err)
			out, err := tbl.Render(prettylist.All())
			require.NoError(t, err)
			assert.Equal(t, citiesWant, out)
		})
	}
}

func TestDecodeJSONNumbers(t *testing.T) {
	t.Parallel()
	doc, err := document.Decode(strings.NewReader(`{"columns":[{"header":"N"}],"rows":[[1158259],[1.5],[1e3]]}`), document.JSON)
	require.NoError(t, err)
	assert.Equal(t, [][]any{{int64(1158259)}, {1.5}, {1000.0}}, doc.Rows)
}

func TestDecodeCSV(t *testing.T) {
	t.Parallel()
	input := "Name,Qty,Price\napple,3,1.25\nkiwi,12,\"0,5\"\n"
	doc, err := document.Decode(strings.NewReader(input), document.CSV)
	require.NoError(t, err)
	assert.Equal(t, []document.Column{{Header: "Name"}, {Header: "Qty"}, {Header: "Price"}}, doc.Columns)
	assert.Equal(t, [][]any{{"apple", int64(3), 1.25}, {"kiwi", int64(12), "0,5"}}, doc.Rows)

	tbl, err := doc.Table(prettylist.WithHeader(true), prettylist.WithSort("Qty"), prettylist.WithReverse(true))
	require.NoError(t, err)
	out, err := tbl.Render(prettylist.All())
	require.NoError(t, err)
	assert.Equal(t, "Name  Qty Price\n----- --- -----\nkiwi   12 0,5\napple   3 1.25", out)
}

func TestDecodeTSV(t *testing.T) {
	t.Parallel()
	input := "Name\tNote\nann\tsays \"hi\"\nbob\tInf\n"
	doc, err := document.Decode(strings.NewReader(input), document.TSV)
	require.NoError(t, err)
	assert.Equal(t, [][]any{{"ann", `says "hi"`}, {"bob", "Inf"}}, doc.Rows)
}

func TestDecodeEmpty(t *testing.T) {
	t.Parallel()
	for _, f := range []document.Format{document.YAML, document.CSV} {
		doc, err := document.Decode(strings.NewReader(""), f)
		require.NoError(t, err)
		assert.Empty(t, doc.Columns)

		_, err = doc.Table()
		assert.ErrorIs(t, err, prettylist.ErrInvalidConfiguration)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format document.Format
		input  string
		target error
	}{
		"bad yaml":   {format: document.YAML, input: "columns: [", target: document.ErrDecode},
		"bad json":   {format: document.JSON, input: "{", target: document.ErrDecode},
		"bad toml":   {format: document.TOML, input: "columns = [", target: document.ErrDecode},
		"bad csv":    {format: document.CSV, input: "a,\"b\n", target: document.ErrDecode},
		"bad format": {format: "xml", input: "", target: document.ErrUnsupportedFormat},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := document.Decode(strings.NewReader(tt.input), tt.format)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestTableErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"bad align":    "columns: [{header: A, align: justify}]",
		"oversize row": "columns: [{header: A}]\nrows: [[1, 2]]",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			doc, err := document.Decode(strings.NewReader(input), document.YAML)
			require.NoError(t, err)
			_, err = doc.Table()
			assert.ErrorIs(t, err, prettylist.ErrInvalidConfiguration)
		})
	}
}

func TestTableOverridesDocumentOptions(t *testing.T) {
	t.Parallel()
	doc, err := document.Decode(strings.NewReader(citiesYAML), document.YAML)
	require.NoError(t, err)
	tbl, err := doc.Table(prettylist.WithHeader(false), prettylist.WithSeparator(","))
	require.NoError(t, err)
	out, err := tbl.Render(prettylist.Index(0))
	require.NoError(t, err)
	assert.Equal(t, "Adelaide,1295,1158259,600.5", out)
}
