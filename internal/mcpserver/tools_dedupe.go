package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/oasnorm/fixer"
	"github.com/erraggy/oasnorm/internal/fileutil"
	"github.com/erraggy/oasnorm/internal/pathutil"
	"github.com/erraggy/oasnorm/parser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type dedupeInput struct {
	Spec            specInput `json:"spec"                       jsonschema:"The OAS document to normalize"`
	CaseMode        string    `json:"case_mode,omitempty"        jsonschema:"ordinal (default) or unicode. unicode also merges values such as straße and STRASSE"`
	DryRun          bool      `json:"dry_run,omitempty"          jsonschema:"Report duplicates without rewriting the document"`
	IncludeDocument bool      `json:"include_document,omitempty" jsonschema:"Include the rewritten document in output"`
	Format          string    `json:"format,omitempty"           jsonschema:"Output format for the document: yaml or json (default: same as input)"`
	Output          string    `json:"output,omitempty"           jsonschema:"File path to write the rewritten document to"`
	Offset          int       `json:"offset,omitempty"           jsonschema:"Skip the first N fixes (for pagination)"`
	Limit           int       `json:"limit,omitempty"            jsonschema:"Maximum number of fixes to return (default 100)"`
}

type dedupeFix struct {
	Path        string `json:"path"`
	Description string `json:"description"`
	Before      []any  `json:"before"`
	After       []any  `json:"after"`
}

type dedupeOutput struct {
	FixCount  int         `json:"fix_count"`
	Returned  int         `json:"returned"`
	Fixes     []dedupeFix `json:"fixes,omitempty"`
	Version   string      `json:"version"`
	CaseMode  string      `json:"case_mode"`
	Warnings  []string    `json:"warnings,omitempty"`
	WrittenTo string      `json:"written_to,omitempty"`
	Document  string      `json:"document,omitempty"`
}

func handleDedupeEnums(_ context.Context, _ *mcp.CallToolRequest, input dedupeInput) (*mcp.CallToolResult, dedupeOutput, error) {
	mode := cfg.CaseMode
	if input.CaseMode != "" {
		var err error
		if mode, err = fixer.ParseCaseMode(input.CaseMode); err != nil {
			return errResult(err), dedupeOutput{}, nil
		}
	}
	format, err := outputFormat(input.Format)
	if err != nil {
		return errResult(err), dedupeOutput{}, nil
	}

	parsed, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), dedupeOutput{}, nil
	}

	result, err := fixer.FixWithOptions(
		fixer.WithParsed(*parsed),
		fixer.WithCaseMode(mode),
		fixer.WithDryRun(input.DryRun),
	)
	if err != nil {
		return errResult(err), dedupeOutput{}, nil
	}

	output := dedupeOutput{
		FixCount: result.FixCount,
		Version:  result.SourceVersion,
		CaseMode: string(mode),
		Warnings: parsed.Warnings,
	}

	output.Fixes = makeSlice[dedupeFix](len(result.Fixes))
	for _, f := range result.Fixes {
		before, _ := f.Before.([]any)
		after, _ := f.After.([]any)
		output.Fixes = append(output.Fixes, dedupeFix{
			Path:        f.Path,
			Description: f.Description,
			Before:      before,
			After:       after,
		})
	}
	output.Fixes = paginate(output.Fixes, input.Offset, input.Limit)
	output.Returned = len(output.Fixes)

	if input.DryRun || (input.Output == "" && !input.IncludeDocument) {
		return nil, output, nil
	}

	data, err := parsed.Marshal(format)
	if err != nil {
		return errResult(err), dedupeOutput{}, nil
	}
	if input.Output != "" {
		target, err := pathutil.ResolveOutputPath(input.Output, input.Spec.File, false)
		if err != nil {
			return errResult(err), dedupeOutput{}, nil
		}
		if err := fileutil.WriteDocument(target, data); err != nil {
			return errResult(err), dedupeOutput{}, nil
		}
		output.WrittenTo = input.Output
	}
	if input.IncludeDocument {
		output.Document = string(data)
	}
	return nil, output, nil
}

// outputFormat maps the format argument to a parser format. The empty
// string keeps the source format.
func outputFormat(format string) (parser.SourceFormat, error) {
	switch format {
	case "":
		return "", nil
	case "yaml", "yml":
		return parser.SourceFormatYAML, nil
	case "json":
		return parser.SourceFormatJSON, nil
	}
	return "", fmt.Errorf("invalid format %q; valid values: yaml, json", format)
}
