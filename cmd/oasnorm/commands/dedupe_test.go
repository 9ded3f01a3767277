package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/oasnorm/internal/testutil"
	"github.com/erraggy/oasnorm/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusEnum(t *testing.T, data []byte) []any {
	t.Helper()
	pr, err := parser.New().ParseBytes(data)
	require.NoError(t, err)
	status, ok := pr.Document.Components.Schemas.Get("Status")
	require.True(t, ok)
	return status.Enum
}

func TestSetupDedupeFlags(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		_, flags := SetupDedupeFlags()
		assert.Equal(t, "", flags.Output)
		assert.Equal(t, "ordinal", flags.CaseMode)
		assert.Equal(t, "", flags.Format)
		assert.False(t, flags.Write)
		assert.False(t, flags.Quiet)
		assert.False(t, flags.DryRun)
		assert.False(t, flags.Verbose)
	})

	t.Run("parse flags", func(t *testing.T) {
		fs, flags := SetupDedupeFlags()
		args := []string{"-o", "out.yaml", "-q", "-v", "--case-mode", "unicode", "--dry-run", "--format", "json", "in.yaml"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "out.yaml", flags.Output)
		assert.True(t, flags.Quiet)
		assert.True(t, flags.Verbose)
		assert.True(t, flags.DryRun)
		assert.Equal(t, "unicode", flags.CaseMode)
		assert.Equal(t, "json", flags.Format)
		assert.Equal(t, "in.yaml", fs.Arg(0))
	})

	t.Run("long flags", func(t *testing.T) {
		fs, flags := SetupDedupeFlags()
		require.NoError(t, fs.Parse([]string{"--output", "out.yaml", "--quiet", "in.yaml"}))
		assert.Equal(t, "out.yaml", flags.Output)
		assert.True(t, flags.Quiet)
	})
}

func TestHandleDedupe_NoArgs(t *testing.T) {
	captureStreams(t, "")
	assert.Error(t, HandleDedupe([]string{}))
}

func TestHandleDedupe_Help(t *testing.T) {
	assert.NoError(t, HandleDedupe([]string{"--help"}))
}

func TestHandleDedupe_ArgumentErrors(t *testing.T) {
	path := testutil.WriteTempYAML(t, testutil.PetStoreYAML)

	tests := []struct {
		name    string
		args    []string
		errText string
	}{
		{name: "invalid case mode", args: []string{"--case-mode", "loud", path}, errText: "must be one of"},
		{name: "invalid format", args: []string{"--format", "xml", path}, errText: "invalid format"},
		{name: "write with stdin", args: []string{"-w", "-"}, errText: "cannot use -w with stdin"},
		{name: "write with http url", args: []string{"-w", "http://example.com/openapi.yaml"}, errText: "cannot use -w with URL input"},
		{name: "write with https url", args: []string{"-w", "https://example.com/openapi.yaml"}, errText: "cannot use -w with URL input"},
		{name: "write with output", args: []string{"-w", "-o", "x.yaml", path}, errText: "cannot use -w together with -o"},
		{name: "missing file", args: []string{"-q", "missing.yaml"}, errText: "parsing specification"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureStreams(t, "")
			err := HandleDedupe(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestHandleDedupe_Stdout(t *testing.T) {
	path := testutil.WriteTempYAML(t, testutil.PetStoreYAML)
	out, errOut := captureStreams(t, "")

	require.NoError(t, HandleDedupe([]string{path}))

	assert.Equal(t, []any{"Active", "INACTIVE"}, statusEnum(t, out.Bytes()))
	diag := errOut.String()
	assert.Contains(t, diag, "OpenAPI Enum Deduplicator")
	assert.Contains(t, diag, "OAS Version: 3.0.3")
	assert.Contains(t, diag, "Duplicates Removed (7)")
	assert.Contains(t, diag, "components.schemas.Status")
	assert.Contains(t, diag, "✓ Rewrote 7 schema(s)")
}

func TestHandleDedupe_StdinToJSON(t *testing.T) {
	out, errOut := captureStreams(t, testutil.PetStoreYAML)

	require.NoError(t, HandleDedupe([]string{"-q", "--format", "json", StdinFilePath}))

	assert.Empty(t, errOut.String())
	assert.Equal(t, byte('{'), out.Bytes()[0])
	assert.Equal(t, []any{"Active", "INACTIVE"}, statusEnum(t, out.Bytes()))
}

func TestHandleDedupe_DryRun(t *testing.T) {
	path := testutil.WriteTempYAML(t, testutil.PetStoreYAML)
	out, errOut := captureStreams(t, "")

	require.NoError(t, HandleDedupe([]string{"--dry-run", path}))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Dry run: 7 schema(s) would be rewritten")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testutil.PetStoreYAML, string(data))
}

func TestHandleDedupe_CleanDocument(t *testing.T) {
	path := testutil.WriteTempYAML(t, testutil.CleanYAML)
	_, errOut := captureStreams(t, "")

	require.NoError(t, HandleDedupe([]string{path}))
	assert.Contains(t, errOut.String(), "No case-insensitive enum duplicates found")
}

func TestHandleDedupe_OutputFile(t *testing.T) {
	path := testutil.WriteTempYAML(t, testutil.PetStoreYAML)
	target := filepath.Join(t.TempDir(), "normalized.yaml")
	out, errOut := captureStreams(t, "")

	require.NoError(t, HandleDedupe([]string{"-o", target, path}))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Output written to: "+target)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []any{"Active", "INACTIVE"}, statusEnum(t, data))
}

func TestHandleDedupe_OutputRefusesInput(t *testing.T) {
	path := testutil.WriteTempYAML(t, testutil.PetStoreYAML)
	captureStreams(t, "")

	err := HandleDedupe([]string{"-q", "-o", path, path})
	require.Error(t, err)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, testutil.PetStoreYAML, string(data))
}

func TestHandleDedupe_WriteInPlace(t *testing.T) {
	path := testutil.WriteTempYAML(t, testutil.PetStoreYAML)
	captureStreams(t, "")

	require.NoError(t, HandleDedupe([]string{"-q", "-w", path}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []any{"Active", "INACTIVE"}, statusEnum(t, data))
}
