package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jacoelho/jsonpath"
	"github.com/jacoelho/jsonpath/internal/exit"
	"github.com/jacoelho/jsonpath/internal/jsonvalue"
)

func main() {
	result := run(os.Args, os.Stdin)
	result.Print()
	os.Exit(result.ExitCode)
}

func run(args []string, stdin io.Reader) *exit.Result {
	cfg, err := parseConfig(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exit.Success(Usage() + "\n")
		}
		return exit.Errorf("Error: %v\n\n%s\n", err, Usage())
	}

	query, err := jsonpath.ParseQuery(cfg.Query)
	if err != nil {
		if pathErr, ok := jsonpath.AsError(err); ok {
			return exit.ParseErrorf("parse error: %v\n", pathErr)
		}
		return exit.ParseErrorf("parse error: %v\n", err)
	}

	root, err := readInput(cfg.File, stdin)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}

	nodes, err := jsonpath.EvaluateQuery(query, root)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}

	out, err := renderNodes(nodes, cfg)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}

	return exit.Success(out)
}

func readInput(file string, stdin io.Reader) (jsonvalue.Value, error) {
	r := stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return jsonvalue.Value{}, fmt.Errorf("opening %s: %w", file, err)
		}
		defer f.Close()
		r = f
	}

	v, err := jsonvalue.Decode(r)
	if err != nil {
		return jsonvalue.Value{}, fmt.Errorf("decoding JSON: %w", err)
	}
	return v, nil
}

// renderNodes formats the matched nodelist per cfg: -raw prints bare scalar
// strings, -compact prints a single JSON array, and the default prints one
// JSON-encoded value per line.
func renderNodes(nodes jsonpath.Nodelist, cfg *config) (string, error) {
	if cfg.Raw {
		var sb []byte
		for _, n := range nodes {
			if jsonvalue.IsString(n) {
				sb = append(sb, n.Str()...)
			} else {
				encoded, err := json.Marshal(jsonvalue.ToAny(n))
				if err != nil {
					return "", err
				}
				sb = append(sb, encoded...)
			}
			sb = append(sb, '\n')
		}
		return string(sb), nil
	}

	if cfg.Compact {
		encoded, err := json.Marshal(nodes.Values())
		if err != nil {
			return "", err
		}
		return string(encoded) + "\n", nil
	}

	var sb []byte
	for _, n := range nodes {
		encoded, err := json.Marshal(jsonvalue.ToAny(n))
		if err != nil {
			return "", err
		}
		sb = append(sb, encoded...)
		sb = append(sb, '\n')
	}
	return string(sb), nil
}
