package commands

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/oasnorm/internal/cliutil"
	"github.com/erraggy/oasnorm/naming"
)

// PropnameFlags contains flags for the propname command
type PropnameFlags struct {
	Format string
}

// PropertyNameResult is one converted name in structured output.
type PropertyNameResult struct {
	Name         string `json:"name"          yaml:"name"`
	PropertyName string `json:"property_name" yaml:"property_name"`
	Changed      bool   `json:"changed"       yaml:"changed"`
}

// SetupPropnameFlags creates and configures a FlagSet for the propname command.
func SetupPropnameFlags() (*flag.FlagSet, *PropnameFlags) {
	fs := flag.NewFlagSet("propname", flag.ContinueOnError)
	flags := &PropnameFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasnorm propname [flags] <name>... | -\n\n")
		cliutil.Writef(fs.Output(), "Convert raw schema property names into language-safe identifiers.\n")
		cliutil.Writef(fs.Output(), "With '-', names are read from stdin, one per line.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasnorm propname foo.bar a+b '*flag'\n")
		cliutil.Writef(fs.Output(), "  cut -f1 names.tsv | oasnorm propname --format json -\n")
	}

	return fs, flags
}

// HandlePropname executes the propname command
func HandlePropname(args []string) error {
	fs, flags := SetupPropnameFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format, FormatText, FormatJSON, FormatYAML); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("propname command requires at least one name, or '-' for stdin")
	}

	names := fs.Args()
	if len(names) == 1 && names[0] == StdinFilePath {
		var err error
		if names, err = readLines(); err != nil {
			return err
		}
	}

	results := make([]PropertyNameResult, 0, len(names))
	for _, name := range names {
		converted := naming.GeneratePropertyName(name)
		results = append(results, PropertyNameResult{
			Name:         name,
			PropertyName: converted,
			Changed:      converted != name,
		})
	}

	if flags.Format != FormatText {
		return OutputStructured(stdout, results, flags.Format)
	}
	for _, r := range results {
		cliutil.Writef(stdout, "%s\n", r.PropertyName)
	}
	return nil
}

// readLines reads non-empty lines from stdin. Trailing carriage returns are
// dropped; other whitespace is part of the name.
func readLines() ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading names from stdin: %w", err)
	}
	return lines, nil
}
