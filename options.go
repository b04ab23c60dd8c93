package prettylist

// Option configures a Table.
type Option func(*config)

type config struct {
	header  bool
	sortBy  string
	reverse bool
	sep     string
	lineSep string
}

func defaultConfig() config {
	return config{
		sep:     " ",
		lineSep: "\n",
	}
}

// WithHeader emits a header line and a dash line above the rows.
// Default: no header.
func WithHeader(enabled bool) Option {
	return func(cfg *config) {
		cfg.header = enabled
	}
}

// WithSort sorts all rows by the column whose header is label before each
// render. An empty label disables sorting. Default: insertion order.
func WithSort(label string) Option {
	return func(cfg *config) {
		cfg.sortBy = label
	}
}

// WithReverse sorts in descending order. It has no effect without WithSort.
func WithReverse(enabled bool) Option {
	return func(cfg *config) {
		cfg.reverse = enabled
	}
}

// WithSeparator sets the string placed between fields. Default: one space.
func WithSeparator(sep string) Option {
	return func(cfg *config) {
		cfg.sep = sep
	}
}

// WithLineSeparator sets the string placed between lines. Default: newline.
func WithLineSeparator(sep string) Option {
	return func(cfg *config) {
		cfg.lineSep = sep
	}
}
