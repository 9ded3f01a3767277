package parser

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/erraggy/oasnorm"
	"github.com/erraggy/oasnorm/oaserrors"
	"go.yaml.in/yaml/v4"
)

// DefaultMaxRefDepth is the longest $ref chain the linker follows.
const DefaultMaxRefDepth = 100

// Parser loads OpenAPI 3.x documents into a pointer-linked model.
type Parser struct {
	// Logger receives debug output and reference warnings.
	// If nil, logging is disabled (default)
	Logger Logger
	// MaxRefDepth is the maximum number of $ref hops from a reference to a
	// concrete definition. Default: DefaultMaxRefDepth
	MaxRefDepth int
	// UserAgent is sent when fetching documents over HTTP
	UserAgent string
	// HTTPClient fetches URL sources. If nil, a client with a 30-second
	// timeout is used.
	HTTPClient *http.Client
}

// New creates a Parser with default settings.
func New() *Parser {
	return &Parser{
		MaxRefDepth: DefaultMaxRefDepth,
		UserAgent:   oasnorm.UserAgent(),
	}
}

func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

func (p *Parser) maxRefDepth() int {
	if p.MaxRefDepth > 0 {
		return p.MaxRefDepth
	}
	return DefaultMaxRefDepth
}

// SourceFormat is the serialization of a document.
type SourceFormat string

const (
	// SourceFormatYAML indicates YAML
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates JSON
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult holds a decoded document and metadata about its source.
//
// The Document shares state with the node tree used by Marshal: changes
// made to enum lists in the model are written back when the result is
// marshaled.
type ParseResult struct {
	// SourcePath is the file path or URL the document was read from.
	// Reader and byte sources are named ParseReader.<ext> or ParseBytes.<ext>
	// unless overridden with WithSourceName.
	SourcePath string
	// SourceFormat is the detected format of the source
	SourceFormat SourceFormat
	// Version is the declared OpenAPI version, e.g. "3.1.0"
	Version string
	// Document is the decoded document
	Document *Document
	// Warnings lists non-fatal problems such as unresolved references
	Warnings []string
	// LoadTime is the time taken to read the source
	LoadTime time.Duration
	// SourceSize is the size of the source in bytes
	SourceSize int64
	// Stats counts the objects in the document
	Stats DocumentStats

	root *yaml.Node
}

// DocumentStats counts the objects of a document.
type DocumentStats struct {
	PathCount      int
	OperationCount int
	SchemaCount    int
}

// Parse reads and decodes the document at specPath, which is either a
// local file or an http(s) URL.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	var (
		data   []byte
		format SourceFormat
		err    error
	)

	loadStart := time.Now()
	if isURL(specPath) {
		var contentType string
		data, contentType, err = p.fetchURL(specPath)
		if err != nil {
			return nil, err
		}
		format = detectFormatFromURL(specPath, contentType)
	} else {
		data, err = os.ReadFile(specPath)
		if err != nil {
			return nil, fmt.Errorf("parser: failed to read file: %w", err)
		}
		format = detectFormatFromPath(specPath)
	}
	loadTime := time.Since(loadStart)

	res, err := p.parseBytes(data, specPath)
	if err != nil {
		return nil, err
	}
	res.SourcePath = specPath
	res.LoadTime = loadTime
	if format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	return res, nil
}

// ParseReader reads and decodes a document from r.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.parseBytes(data, "ParseReader")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	res.SourcePath = "ParseReader." + string(res.SourceFormat)
	return res, nil
}

// ParseBytes decodes a document held in memory.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parseBytes(data, "ParseBytes")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes." + string(res.SourceFormat)
	return res, nil
}

func (p *Parser) parseBytes(data []byte, source string) (*ParseResult, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parser: %w",
			&oaserrors.ParseError{Path: source, Message: "invalid YAML/JSON", Cause: err})
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("parser: %w", &oaserrors.ParseError{Path: source, Message: "document is empty"})
	}

	format := detectFormatFromContent(data)
	if format == SourceFormatUnknown {
		format = SourceFormatYAML
	}

	d := newDecoder(source, p.log())
	doc, err := d.document(root.Content[0])
	if err != nil {
		return nil, err
	}
	newLinker(d, p.maxRefDepth(), p.log()).link()

	return &ParseResult{
		SourceFormat: format,
		Version:      doc.OpenAPI,
		Document:     doc,
		Warnings:     d.warnings,
		SourceSize:   int64(len(data)),
		Stats:        d.stats(doc),
		root:         &root,
	}, nil
}

// detectFormatFromPath detects the format from a file extension.
func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent treats input starting with '{' or '[' as JSON.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// detectFormatFromURL checks the URL path extension, then the Content-Type.
func detectFormatFromURL(urlStr, contentType string) SourceFormat {
	if parsedURL, err := url.Parse(urlStr); err == nil && parsedURL.Path != "" {
		if format := detectFormatFromPath(parsedURL.Path); format != SourceFormatUnknown {
			return format
		}
	}
	mediaType, _, _ := strings.Cut(strings.ToLower(contentType), ";")
	switch strings.TrimSpace(mediaType) {
	case "application/json":
		return SourceFormatJSON
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return SourceFormatYAML
	}
	return SourceFormatUnknown
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// fetchURL returns the body and Content-Type of urlStr.
func (p *Parser) fetchURL(urlStr string) ([]byte, string, error) {
	client := p.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, "", fmt.Errorf("parser: failed to create request: %w", err)
	}
	userAgent := p.UserAgent
	if userAgent == "" {
		userAgent = oasnorm.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	p.log().Debug("fetching document", "url", urlStr)
	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("parser: failed to fetch URL: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("parser: HTTP %d when fetching URL: %s", resp.StatusCode, urlStr)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("parser: failed to read response body: %w", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}
