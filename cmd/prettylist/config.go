package main

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/bjaus/prettylist"
)

// envConfig holds defaults read from the environment. Empty variables are
// treated as unset so document options stay in effect.
type envConfig struct {
	Header   string `env:"PRETTYLIST_HEADER"`
	Sort     string `env:"PRETTYLIST_SORT"`
	Reverse  string `env:"PRETTYLIST_REVERSE"`
	Sep      string `env:"PRETTYLIST_SEP"`
	LineSep  string `env:"PRETTYLIST_LINE_SEP"`
	Format   string `env:"PRETTYLIST_FORMAT"`
	LogLevel string `env:"PRETTYLIST_LOG_LEVEL" envDefault:"info"`
}

// loadEnv parses environment. A nil map reads the process environment after
// loading an optional .env file from the working directory.
func loadEnv(environment map[string]string) (envConfig, error) {
	var cfg envConfig
	if environment == nil {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
		err := env.Parse(&cfg)
		return cfg, err
	}
	err := env.ParseWithOptions(&cfg, env.Options{Environment: environment})
	return cfg, err
}

func (c envConfig) options() ([]prettylist.Option, error) {
	var opts []prettylist.Option
	if c.Header != "" {
		header, err := strconv.ParseBool(c.Header)
		if err != nil {
			return nil, fmt.Errorf("PRETTYLIST_HEADER: %w", err)
		}
		opts = append(opts, prettylist.WithHeader(header))
	}
	if c.Sort != "" {
		opts = append(opts, prettylist.WithSort(c.Sort))
	}
	if c.Reverse != "" {
		reverse, err := strconv.ParseBool(c.Reverse)
		if err != nil {
			return nil, fmt.Errorf("PRETTYLIST_REVERSE: %w", err)
		}
		opts = append(opts, prettylist.WithReverse(reverse))
	}
	if c.Sep != "" {
		opts = append(opts, prettylist.WithSeparator(unescape(c.Sep)))
	}
	if c.LineSep != "" {
		opts = append(opts, prettylist.WithLineSeparator(unescape(c.LineSep)))
	}
	return opts, nil
}

// unescape interprets Go escape sequences such as \t so separators can be
// given on the command line. Invalid sequences are returned unchanged.
func unescape(s string) string {
	u, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return s
	}
	return u
}
