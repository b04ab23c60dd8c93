// Command prettylist renders table documents as aligned plain text.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bjaus/prettylist"
	"github.com/bjaus/prettylist/internal/document"
)

var version = "0.1.9"

func main() {
	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr, nil)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// renderFlags are the render command's flag values.
type renderFlags struct {
	format  string
	header  bool
	sort    string
	reverse bool
	sep     string
	lineSep string
	start   int
	stop    int
	step    int
	index   int
}

// newRootCmd builds the command tree. A nil environment reads the process
// environment.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer, environment map[string]string) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "prettylist",
		Short:        "Render tabular data as aligned plain text",
		SilenceUsage: true,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug details to stderr")

	setup := func() (envConfig, *zap.Logger, error) {
		cfg, err := loadEnv(environment)
		if err != nil {
			return cfg, nil, fmt.Errorf("environment: %w", err)
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		log, err := newLogger(stderr, level)
		if err != nil {
			return cfg, nil, err
		}
		return cfg, log, nil
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "prettylist v%s (%s)\n", version, runtime.Version())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Print a sample table of Australian cities",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := demoTable()
			if err != nil {
				return err
			}
			return writeTable(cmd.OutOrStdout(), t, prettylist.All())
		},
	})

	var flags renderFlags
	renderCmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a table document",
		Long: `Render a table document (YAML, JSON, TOML, CSV or TSV) as aligned text.
The document is read from file, or from stdin when file is absent or "-".

Options come from the document, then PRETTYLIST_* environment variables,
then flags given on the command line. Separators accept escapes such as \t.

Example:
  prettylist render cities.yaml --header --sort "City name" --sep " | "`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runRender(cmd, log, cfg, path, flags)
		},
	}
	f := renderCmd.Flags()
	f.StringVarP(&flags.format, "format", "f", "", "document format: yaml, json, toml, csv or tsv (default: from extension, else yaml)")
	f.BoolVar(&flags.header, "header", false, "print a header line and a dash line")
	f.StringVarP(&flags.sort, "sort", "s", "", "header of the column to sort by")
	f.BoolVarP(&flags.reverse, "reverse", "r", false, "sort in descending order")
	f.StringVar(&flags.sep, "sep", " ", "field separator")
	f.StringVar(&flags.lineSep, "line-sep", `\n`, "line separator")
	f.IntVar(&flags.start, "start", 0, "first row to render (negative counts from the end)")
	f.IntVar(&flags.stop, "stop", 0, "row to stop before (negative counts from the end)")
	f.IntVar(&flags.step, "step", 1, "render every step-th row; negative walks backwards")
	f.IntVar(&flags.index, "index", 0, "render only this row")
	root.AddCommand(renderCmd)

	return root
}

func runRender(cmd *cobra.Command, log *zap.Logger, cfg envConfig, path string, flags renderFlags) error {
	format, err := resolveFormat(cmd, cfg, path, flags.format)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	doc, err := document.Decode(in, format)
	if err != nil {
		return err
	}
	log.Debug("decoded document",
		zap.String("path", path),
		zap.Stringer("format", format),
		zap.Int("columns", len(doc.Columns)),
		zap.Int("rows", len(doc.Rows)))

	opts, err := cfg.options()
	if err != nil {
		return err
	}
	t, err := doc.Table(append(opts, flagOptions(cmd, flags)...)...)
	if err != nil {
		return err
	}

	r := flagRange(cmd, flags)
	if err := writeTable(cmd.OutOrStdout(), t, r); err != nil {
		return err
	}
	log.Debug("rendered table",
		zap.Stringer("range", r),
		zap.Ints("widths", t.Widths()))
	return nil
}

func resolveFormat(cmd *cobra.Command, cfg envConfig, path, flag string) (document.Format, error) {
	switch {
	case cmd.Flags().Changed("format"):
		return document.ParseFormat(flag)
	case cfg.Format != "":
		return document.ParseFormat(cfg.Format)
	}
	if f, ok := document.FormatFromPath(path); ok {
		return f, nil
	}
	return document.YAML, nil
}

// flagOptions returns options for the flags given on the command line only,
// so unset flags do not mask document or environment settings.
func flagOptions(cmd *cobra.Command, flags renderFlags) []prettylist.Option {
	set := cmd.Flags().Changed
	var opts []prettylist.Option
	if set("header") {
		opts = append(opts, prettylist.WithHeader(flags.header))
	}
	if set("sort") {
		opts = append(opts, prettylist.WithSort(flags.sort))
	}
	if set("reverse") {
		opts = append(opts, prettylist.WithReverse(flags.reverse))
	}
	if set("sep") {
		opts = append(opts, prettylist.WithSeparator(unescape(flags.sep)))
	}
	if set("line-sep") {
		opts = append(opts, prettylist.WithLineSeparator(unescape(flags.lineSep)))
	}
	return opts
}

func flagRange(cmd *cobra.Command, flags renderFlags) prettylist.Range {
	set := cmd.Flags().Changed
	if set("index") {
		return prettylist.Index(flags.index)
	}
	r := prettylist.All()
	switch {
	case set("start") && set("stop"):
		r = prettylist.Span(flags.start, flags.stop)
	case set("start"):
		r = prettylist.From(flags.start)
	case set("stop"):
		r = prettylist.Until(flags.stop)
	}
	if set("step") {
		r = r.Every(flags.step)
	}
	return r
}

func writeTable(w io.Writer, t *prettylist.Table, r prettylist.Range) error {
	if err := t.Write(w, r); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func demoTable() (*prettylist.Table, error) {
	t, err := prettylist.New([]*prettylist.Column{
		{Header: "City name"},
		{Header: "Area", Align: prettylist.AlignRight},
		{Header: "Population"},
		{Header: "Annual Rainfall"},
	}, prettylist.WithHeader(true), prettylist.WithSort("City name"), prettylist.WithSeparator(" | "))
	if err != nil {
		return nil, err
	}
	rows := [][]any{
		{"Adelaide", 1295, 1158259, 600.5},
		{"Brisbane", 5905, 1857594, 1146.4},
		{"Darwin", 112, 120900, 1714.7},
		{"Hobart", 1357, 205556, 619.5},
		{"Sydney", 2058, 4336374, 1214.8},
		{"Melbourne", 1566, 3806092, 646.9},
		{"Perth", 5386, 1554769, 869.4},
	}
	for _, row := range rows {
		if err := t.AddRow(row...); err != nil {
			return nil, err
		}
	}
	return t, nil
}
