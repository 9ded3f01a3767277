package oaserrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "all fields",
			err: &ParseError{
				Path:    "/path/to/file.yaml",
				Line:    42,
				Column:  10,
				Message: "invalid syntax",
				Cause:   errors.New("underlying error"),
			},
			want: "parse error in /path/to/file.yaml at line 42, column 10: invalid syntax: underlying error",
		},
		{name: "minimal", err: &ParseError{}, want: "parse error"},
		{name: "path only", err: &ParseError{Path: "api.yaml"}, want: "parse error in api.yaml"},
		{name: "line without column", err: &ParseError{Line: 3}, want: "parse error at line 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}

	t.Run("errors.Is and Unwrap", func(t *testing.T) {
		cause := errors.New("boom")
		err := fmt.Errorf("wrapped: %w", &ParseError{Cause: cause})
		assert.ErrorIs(t, err, ErrParse)
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, ErrReference)
	})
}

func TestReferenceError(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		err := &ReferenceError{Ref: "#/components/schemas/Missing", Message: "target not found"}
		assert.Equal(t, "reference error: #/components/schemas/Missing: target not found", err.Error())
		assert.ErrorIs(t, err, ErrReference)
		assert.NotErrorIs(t, err, ErrCircularReference)
	})

	t.Run("circular", func(t *testing.T) {
		err := &ReferenceError{Ref: "#/components/schemas/A", IsCircular: true}
		assert.Equal(t, "circular reference: #/components/schemas/A", err.Error())
		assert.ErrorIs(t, err, ErrReference)
		assert.ErrorIs(t, err, ErrCircularReference)
	})

	t.Run("external", func(t *testing.T) {
		err := &ReferenceError{Ref: "common.yaml#/Pet", IsExternal: true}
		assert.Equal(t, "external reference not supported: common.yaml#/Pet", err.Error())
	})

	t.Run("errors.As", func(t *testing.T) {
		wrapped := fmt.Errorf("parser: %w", &ReferenceError{Ref: "#/x"})
		var refErr *ReferenceError
		require.ErrorAs(t, wrapped, &refErr)
		assert.Equal(t, "#/x", refErr.Ref)
	})
}

func TestResourceLimitError(t *testing.T) {
	err := &ResourceLimitError{ResourceType: "ref_depth", Limit: 100, Actual: 101}
	assert.Equal(t, "resource limit exceeded: ref_depth (limit: 100, actual: 101)", err.Error())
	assert.ErrorIs(t, err, ErrResourceLimit)

	assert.Equal(t, "resource limit exceeded", (&ResourceLimitError{}).Error())
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "case-mode", Value: "upper", Message: "unknown mode"}
	assert.Equal(t, "configuration error for case-mode (value: upper): unknown mode", err.Error())
	assert.ErrorIs(t, err, ErrConfig)
	assert.NotErrorIs(t, err, ErrParse)

	cause := errors.New("inner")
	assert.ErrorIs(t, &ConfigError{Cause: cause}, cause)
}
