package fixer

import (
	"fmt"
	"slices"

	"github.com/erraggy/oasnorm/internal/options"
	"github.com/erraggy/oasnorm/oaserrors"
	"github.com/erraggy/oasnorm/parser"
)

// FixType identifies the type of fix applied
type FixType string

// Fix represents a single fix applied to the document
type Fix struct {
	// Type identifies the category of fix
	Type FixType
	// Path is the location of the fixed schema, named after the first route
	// that reached it (e.g., "paths./pets.get.parameters[status].schema")
	Path string
	// Description is a human-readable description of the fix
	Description string
	// Before is the state before the fix
	Before any
	// After is the state after the fix
	After any
}

// FixResult contains the results of a fix operation
type FixResult struct {
	// Document is the fixed document. It is the parsed document itself,
	// modified in place unless DryRun was set.
	Document *parser.Document
	// SourceVersion is the declared OpenAPI version of the source
	SourceVersion string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat parser.SourceFormat
	// SourcePath is the path to the source file
	SourcePath string
	// Fixes contains all fixes applied, in traversal order
	Fixes []Fix
	// FixCount is the total number of fixes applied
	FixCount int
	// Success is true if fixing completed without errors
	Success bool
	// Stats contains statistical information about the document
	Stats parser.DocumentStats
}

// HasFixes returns true if any fixes were applied
func (r *FixResult) HasFixes() bool {
	return r.FixCount > 0
}

// Fixer normalizes OpenAPI documents ahead of code generation
type Fixer struct {
	// EnabledFixes specifies which fix types to apply.
	// If nil or empty, all fix types are enabled.
	EnabledFixes []FixType
	// CaseMode selects how enum values are compared. Default: CaseModeOrdinal
	CaseMode CaseMode
	// DryRun reports fixes without modifying the document
	DryRun bool
	// Logger receives a debug entry per rewritten schema.
	// If nil, logging is disabled (default)
	Logger parser.Logger
	// UserAgent is sent when Fix fetches a URL
	UserAgent string
}

// New creates a new Fixer instance with default settings
func New() *Fixer {
	return &Fixer{CaseMode: CaseModeOrdinal}
}

func (f *Fixer) log() parser.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return parser.NopLogger{}
}

// Option is a function that configures a fix operation
type Option func(*fixConfig) error

// fixConfig holds configuration for a fix operation
type fixConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult

	enabledFixes []FixType
	caseMode     CaseMode
	dryRun       bool
	logger       parser.Logger
	userAgent    string
}

// FixWithOptions fixes an OpenAPI document using functional options.
//
// Example:
//
//	result, err := fixer.FixWithOptions(
//	    fixer.WithFilePath("openapi.yaml"),
//	    fixer.WithCaseMode(fixer.CaseModeUnicodeFold),
//	)
func FixWithOptions(opts ...Option) (*FixResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("fixer: invalid options: %w", err)
	}

	f := &Fixer{
		EnabledFixes: cfg.enabledFixes,
		CaseMode:     cfg.caseMode,
		DryRun:       cfg.dryRun,
		Logger:       cfg.logger,
		UserAgent:    cfg.userAgent,
	}

	if cfg.filePath != nil {
		return f.Fix(*cfg.filePath)
	}
	return f.FixParsed(*cfg.parsed)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*fixConfig, error) {
	cfg := &fixConfig{caseMode: CaseModeOrdinal}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("fixer",
		options.Source{Name: "WithFilePath", Set: cfg.filePath != nil},
		options.Source{Name: "WithParsed", Set: cfg.parsed != nil},
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath specifies the file path (local file or URL) to fix
func WithFilePath(path string) Option {
	return func(cfg *fixConfig) error {
		if path == "" {
			return &oaserrors.ConfigError{Option: "WithFilePath", Message: "file path cannot be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies an already-parsed document to fix
func WithParsed(result parser.ParseResult) Option {
	return func(cfg *fixConfig) error {
		cfg.parsed = &result
		return nil
	}
}

// WithEnabledFixes specifies which fix types to apply
func WithEnabledFixes(fixes ...FixType) Option {
	return func(cfg *fixConfig) error {
		cfg.enabledFixes = fixes
		return nil
	}
}

// WithCaseMode selects how enum values are compared
func WithCaseMode(mode CaseMode) Option {
	return func(cfg *fixConfig) error {
		if _, err := ParseCaseMode(string(mode)); err != nil {
			return err
		}
		cfg.caseMode = mode
		return nil
	}
}

// WithDryRun reports fixes without modifying the document
func WithDryRun(dryRun bool) Option {
	return func(cfg *fixConfig) error {
		cfg.dryRun = dryRun
		return nil
	}
}

// WithLogger sets the structured logger for the fix and the parse it runs
func WithLogger(l parser.Logger) Option {
	return func(cfg *fixConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
func WithUserAgent(userAgent string) Option {
	return func(cfg *fixConfig) error {
		cfg.userAgent = userAgent
		return nil
	}
}

// Fix parses the document at specPath (local file or URL) and fixes it
func (f *Fixer) Fix(specPath string) (*FixResult, error) {
	p := parser.New()
	p.Logger = f.Logger
	if f.UserAgent != "" {
		p.UserAgent = f.UserAgent
	}

	parseResult, err := p.Parse(specPath)
	if err != nil {
		return nil, fmt.Errorf("fixer: failed to parse specification: %w", err)
	}
	return f.FixParsed(*parseResult)
}

// FixParsed fixes an already-parsed document. Unlike a deep-copying
// transform, it rewrites parseResult.Document in place (unless DryRun is
// set), so parseResult.Marshal emits the fixed document afterwards.
func (f *Fixer) FixParsed(parseResult parser.ParseResult) (*FixResult, error) {
	if parseResult.Document == nil {
		return nil, fmt.Errorf("fixer: specification could not be parsed (nil document)")
	}
	if _, err := ParseCaseMode(string(f.CaseMode)); err != nil {
		return nil, fmt.Errorf("fixer: %w", err)
	}

	result := &FixResult{
		Document:      parseResult.Document,
		SourceVersion: parseResult.Version,
		SourceFormat:  parseResult.SourceFormat,
		SourcePath:    parseResult.SourcePath,
		Stats:         parseResult.Stats,
		Fixes:         make([]Fix, 0),
		Success:       true,
	}

	if f.isFixEnabled(FixTypeEnumCaseDuplicate) {
		f.DedupeEnums(parseResult.Document, result)
	}

	result.FixCount = len(result.Fixes)
	f.log().Debug("fixer finished", "source", result.SourcePath, "fixes", result.FixCount, "dryRun", f.DryRun)
	return result, nil
}

// isFixEnabled checks if a fix type is enabled
func (f *Fixer) isFixEnabled(fixType FixType) bool {
	return len(f.EnabledFixes) == 0 || slices.Contains(f.EnabledFixes, fixType)
}
