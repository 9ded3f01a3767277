package commands

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/erraggy/oasnorm/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStreams swaps the command streams for buffers for the duration of
// the test. in becomes stdin.
func captureStreams(t *testing.T, in string) (out, errOut *bytes.Buffer) {
	t.Helper()
	oldIn, oldOut, oldErr := stdin, stdout, stderr
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	stdin, stdout, stderr = io.Reader(strings.NewReader(in)), out, errOut
	t.Cleanup(func() {
		stdin, stdout, stderr = oldIn, oldOut, oldErr
	})
	return out, errOut
}

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat(FormatJSON, FormatText, FormatJSON))
	err := ValidateOutputFormat("xml", FormatText, FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format 'xml'")
}

func TestOutputStructured(t *testing.T) {
	data := map[string]int{"count": 2}

	tests := []struct {
		format   string
		expected string
	}{
		{FormatJSON, "{\n  \"count\": 2\n}\n"},
		{FormatYAML, "count: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, OutputStructured(&buf, data, tt.format))
			assert.Equal(t, tt.expected, buf.String())
		})
	}

	t.Run("text rejected", func(t *testing.T) {
		assert.Error(t, OutputStructured(io.Discard, data, FormatText))
	})
}

func TestDocumentFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected parser.SourceFormat
		wantErr  bool
	}{
		{input: "", expected: ""},
		{input: "yaml", expected: parser.SourceFormatYAML},
		{input: "yml", expected: parser.SourceFormatYAML},
		{input: "json", expected: parser.SourceFormatJSON},
		{input: "toml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := documentFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatSpecPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatSpecPath(StdinFilePath))
	assert.Equal(t, "api.yaml", FormatSpecPath("api.yaml"))
}

func TestNewLogger(t *testing.T) {
	assert.Nil(t, newLogger(false))

	_, errOut := captureStreams(t, "")
	logger := newLogger(true)
	require.NotNil(t, logger)
	logger.Debug("hello", "key", "value")
	assert.Contains(t, errOut.String(), "msg=hello")
	assert.Contains(t, errOut.String(), "key=value")
}
