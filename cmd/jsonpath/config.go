package main

import (
	"errors"
	"flag"
	"io"
)

var (
	ErrNoArguments = errors.New("no arguments provided")
	ErrNoQuery     = errors.New("no JSONPath query provided")
)

// config is the parsed command line for the jsonpath CLI.
type config struct {
	Query   string
	File    string // empty means read from stdin
	Raw     bool
	Compact bool
}

// parseConfig parses args (as in os.Args, args[0] is the program name) into
// a config. A non-nil error from fs.Parse is flag.ErrHelp when -h/--help was
// requested; callers should print Usage and exit 0 in that case.
func parseConfig(args []string) (*config, error) {
	if len(args) == 0 {
		return nil, ErrNoArguments
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		file    = fs.String("file", "", "Path to a JSON file to query (default: read from stdin)")
		raw     = fs.Bool("raw", false, "Print matched scalar strings without JSON quoting")
		compact = fs.Bool("compact", false, "Print the nodelist as a single-line JSON array instead of one value per line")
	)

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	positional := fs.Args()
	if len(positional) == 0 {
		return nil, ErrNoQuery
	}

	return &config{
		Query:   positional[0],
		File:    *file,
		Raw:     *raw,
		Compact: *compact,
	}, nil
}

// Usage returns the help text printed for -h/--help and on argument errors.
func Usage() string {
	return `jsonpath - evaluate an RFC 9535 JSONPath query against a JSON document

Usage: jsonpath [options] <query>

Options:
  --file FILE   Path to a JSON file to query (default: read from stdin)
  --raw         Print matched scalar strings without JSON quoting
  --compact     Print the nodelist as a single-line JSON array
  -h, --help    Show this help message

Examples:
  jsonpath '$.store.book[*].title' < catalog.json
  jsonpath --file catalog.json --raw '$.store.book[0].title'
  jsonpath --compact '$..price' < catalog.json

Exit codes:
  0   success, including a query that matched nothing
  1   usage error, I/O or JSON-decode error reading the input document,
      or evaluation/output error
  2   the query failed to parse`
}
