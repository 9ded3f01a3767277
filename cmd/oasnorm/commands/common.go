// Package commands provides CLI command handlers for oasnorm.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/erraggy/oasnorm"
	"github.com/erraggy/oasnorm/internal/cliutil"
	"github.com/erraggy/oasnorm/parser"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("invalid format '%s'. Valid formats: %v", format, allowed)
}

// OutputStructured writes data in the specified format (json or yaml) to w.
func OutputStructured(w io.Writer, data any, format string) error {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
		out = append(out, '\n')
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	_, err = w.Write(out)
	return err
}

// documentFormat maps a --format flag value to a parser format. The empty
// string keeps the source format.
func documentFormat(format string) (parser.SourceFormat, error) {
	switch format {
	case "":
		return "", nil
	case FormatYAML, "yml":
		return parser.SourceFormatYAML, nil
	case FormatJSON:
		return parser.SourceFormatJSON, nil
	}
	return "", fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatYAML, FormatJSON)
}

// newLogger returns a debug-level logger on stderr when verbose is set and
// nil otherwise, which leaves parser and fixer logging disabled.
func newLogger(verbose bool) parser.Logger {
	if !verbose {
		return nil
	}
	return parser.NewSlogAdapter(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

// FormatSpecPath returns a display-friendly path for the specification.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// OutputSpecHeader writes the common specification header to stderr.
func OutputSpecHeader(specPath, version string) {
	cliutil.Writef(stderr, "oasnorm version: %s\n", oasnorm.Version())
	cliutil.Writef(stderr, "Specification: %s\n", FormatSpecPath(specPath))
	cliutil.Writef(stderr, "OAS Version: %s\n", version)
}

// OutputSpecStats writes the common specification statistics to stderr.
func OutputSpecStats(sourceSize int64, stats parser.DocumentStats, loadTime any) {
	cliutil.Writef(stderr, "Source Size: %s\n", cliutil.FormatBytes(sourceSize))
	cliutil.Writef(stderr, "Paths: %d\n", stats.PathCount)
	cliutil.Writef(stderr, "Operations: %d\n", stats.OperationCount)
	cliutil.Writef(stderr, "Schemas: %d\n", stats.SchemaCount)
	cliutil.Writef(stderr, "Load Time: %v\n", loadTime)
}
