package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/erraggy/oasnorm/fixer"
	"github.com/erraggy/oasnorm/internal/cliutil"
	"github.com/erraggy/oasnorm/internal/fileutil"
	"github.com/erraggy/oasnorm/internal/pathutil"
	"github.com/erraggy/oasnorm/parser"
)

// DedupeFlags contains flags for the dedupe command
type DedupeFlags struct {
	Output   string
	Write    bool
	Quiet    bool
	Verbose  bool
	CaseMode string
	DryRun   bool
	Format   string
}

// SetupDedupeFlags creates and configures a FlagSet for the dedupe command.
// Returns the FlagSet and a DedupeFlags struct with bound flag variables.
func SetupDedupeFlags() (*flag.FlagSet, *DedupeFlags) {
	fs := flag.NewFlagSet("dedupe", flag.ContinueOnError)
	flags := &DedupeFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Write, "w", false, "write the result back to the input file")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "v", false, "log parser and fixer debug messages to stderr")
	fs.StringVar(&flags.CaseMode, "case-mode", string(fixer.CaseModeOrdinal), "case comparison: ordinal or unicode")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "report duplicates without writing a document")
	fs.StringVar(&flags.Format, "format", "", "output format: yaml or json (default: same as input)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasnorm dedupe [flags] <file|url|->\n\n")
		cliutil.Writef(fs.Output(), "Remove string enum values that only differ by letter case.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nBehavior:\n")
		cliutil.Writef(fs.Output(), "  - The first spelling of each value is kept, with its x-enumNames entry\n")
		cliutil.Writef(fs.Output(), "  - Enums containing any non-string value are left alone\n")
		cliutil.Writef(fs.Output(), "  - Schemas shared through $ref are rewritten once\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasnorm dedupe openapi.yaml > normalized.yaml\n")
		cliutil.Writef(fs.Output(), "  oasnorm dedupe -w openapi.yaml\n")
		cliutil.Writef(fs.Output(), "  oasnorm dedupe --dry-run --case-mode unicode openapi.json\n")
		cliutil.Writef(fs.Output(), "  cat openapi.yaml | oasnorm dedupe -q --format json - > normalized.json\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Document normalized (or nothing to change)\n")
		cliutil.Writef(fs.Output(), "  1    Failed to parse, normalize or write the document\n")
	}

	return fs, flags
}

// HandleDedupe executes the dedupe command
func HandleDedupe(args []string) error {
	fs, flags := SetupDedupeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("dedupe command requires exactly one file path, URL, or '-' for stdin")
	}
	specPath := fs.Arg(0)

	mode, err := fixer.ParseCaseMode(flags.CaseMode)
	if err != nil {
		return err
	}
	format, err := documentFormat(flags.Format)
	if err != nil {
		return err
	}
	if flags.Write {
		if specPath == StdinFilePath {
			return fmt.Errorf("cannot use -w with stdin input")
		}
		if isURL(specPath) {
			return fmt.Errorf("cannot use -w with URL input")
		}
		if flags.Output != "" {
			return fmt.Errorf("cannot use -w together with -o")
		}
	}

	logger := newLogger(flags.Verbose)
	startTime := time.Now()

	parseOpts := []parser.Option{parser.WithLogger(logger)}
	if specPath == StdinFilePath {
		parseOpts = append(parseOpts, parser.WithReader(stdin), parser.WithSourceName(FormatSpecPath(specPath)))
	} else {
		parseOpts = append(parseOpts, parser.WithFilePath(specPath))
	}
	parsed, err := parser.ParseWithOptions(parseOpts...)
	if err != nil {
		return fmt.Errorf("parsing specification: %w", err)
	}

	result, err := fixer.FixWithOptions(
		fixer.WithParsed(*parsed),
		fixer.WithCaseMode(mode),
		fixer.WithDryRun(flags.DryRun),
		fixer.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("removing enum duplicates: %w", err)
	}
	totalTime := time.Since(startTime)

	// Diagnostics go to stderr to keep stdout clean for pipelining
	if !flags.Quiet {
		cliutil.Writef(stderr, "OpenAPI Enum Deduplicator\n")
		cliutil.Writef(stderr, "=========================\n\n")
		OutputSpecHeader(specPath, result.SourceVersion)
		OutputSpecStats(parsed.SourceSize, result.Stats, parsed.LoadTime)
		cliutil.Writef(stderr, "Case Mode: %s\n", mode)
		cliutil.Writef(stderr, "Total Time: %v\n\n", totalTime)

		for _, w := range parsed.Warnings {
			cliutil.Writef(stderr, "Warning: %s\n", w)
		}
		if len(parsed.Warnings) > 0 {
			cliutil.Writef(stderr, "\n")
		}

		if result.HasFixes() {
			cliutil.Writef(stderr, "Duplicates Removed (%d):\n", result.FixCount)
			for _, fix := range result.Fixes {
				cliutil.Writef(stderr, "  - %s: %s %v -> %v\n", fix.Path, fix.Description, fix.Before, fix.After)
			}
			cliutil.Writef(stderr, "\n")
		}

		switch {
		case !result.HasFixes():
			cliutil.Writef(stderr, "✓ No case-insensitive enum duplicates found\n")
		case flags.DryRun:
			cliutil.Writef(stderr, "✓ Dry run: %d schema(s) would be rewritten\n", result.FixCount)
		default:
			cliutil.Writef(stderr, "✓ Rewrote %d schema(s)\n", result.FixCount)
		}
	}

	if flags.DryRun {
		return nil
	}

	data, err := parsed.Marshal(format)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	output := flags.Output
	if flags.Write {
		output = specPath
	}
	if output == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("writing document to stdout: %w", err)
		}
		return nil
	}

	target, err := pathutil.ResolveOutputPath(output, inputFile(specPath), flags.Write)
	if err != nil {
		return err
	}
	if err := fileutil.WriteDocument(target, data); err != nil {
		return err
	}
	if !flags.Quiet {
		cliutil.Writef(stderr, "\nOutput written to: %s\n", output)
	}
	return nil
}

// isURL reports whether specPath is fetched over HTTP rather than read from disk.
func isURL(specPath string) bool {
	return strings.HasPrefix(specPath, "http://") || strings.HasPrefix(specPath, "https://")
}

// inputFile returns specPath when it names a local file.
func inputFile(specPath string) string {
	if specPath == StdinFilePath || isURL(specPath) {
		return ""
	}
	if _, err := os.Stat(specPath); err != nil {
		return ""
	}
	return specPath
}
