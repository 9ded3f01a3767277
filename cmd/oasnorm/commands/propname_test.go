package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestSetupPropnameFlags(t *testing.T) {
	fs, flags := SetupPropnameFlags()
	assert.Equal(t, FormatText, flags.Format)

	require.NoError(t, fs.Parse([]string{"--format", "json", "a.b"}))
	assert.Equal(t, FormatJSON, flags.Format)
	assert.Equal(t, []string{"a.b"}, fs.Args())
}

func TestHandlePropname_Errors(t *testing.T) {
	captureStreams(t, "")
	assert.Error(t, HandlePropname([]string{}))
	assert.Error(t, HandlePropname([]string{"--format", "xml", "a"}))
	assert.NoError(t, HandlePropname([]string{"--help"}))
}

func TestHandlePropname_Text(t *testing.T) {
	out, _ := captureStreams(t, "")

	require.NoError(t, HandlePropname([]string{"foo.bar", "a+b", "*flag", "plain"}))
	assert.Equal(t, "foo_bar\naplusb\nStarflag\nplain\n", out.String())
}

func TestHandlePropname_Stdin(t *testing.T) {
	out, _ := captureStreams(t, "foo.bar\r\n\nx-y\n")

	require.NoError(t, HandlePropname([]string{StdinFilePath}))
	assert.Equal(t, "foo_bar\nx_y\n", out.String())
}

func TestHandlePropname_Structured(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		out, _ := captureStreams(t, "")
		require.NoError(t, HandlePropname([]string{"--format", "json", "foo.bar", "plain"}))

		var got []PropertyNameResult
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, []PropertyNameResult{
			{Name: "foo.bar", PropertyName: "foo_bar", Changed: true},
			{Name: "plain", PropertyName: "plain", Changed: false},
		}, got)
	})

	t.Run("yaml", func(t *testing.T) {
		out, _ := captureStreams(t, "")
		require.NoError(t, HandlePropname([]string{"--format", "yaml", "a+b"}))

		var got []PropertyNameResult
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, []PropertyNameResult{{Name: "a+b", PropertyName: "aplusb", Changed: true}}, got)
	})
}
