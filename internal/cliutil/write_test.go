package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{name: "single arg", format: "Hello, %s!", args: []any{"World"}, want: "Hello, World!"},
		{name: "no args", format: "Simple message", want: "Simple message"},
		{name: "multiple args", format: "%s: %d fixes", args: []any{"Status", 2}, want: "Status: 2 fixes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Writef(&buf, tt.format, tt.args...)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWritef_WriteErrorDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		Writef(failingWriter{}, "ignored %d", 1)
	})
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{size: 0, want: "0 B"},
		{size: 512, want: "512 B"},
		{size: 1023, want: "1023 B"},
		{size: 1024, want: "1.0 KiB"},
		{size: 1536, want: "1.5 KiB"},
		{size: 10 * 1024 * 1024, want: "10.0 MiB"},
		{size: 3 * 1024 * 1024 * 1024, want: "3.0 GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.size))
		})
	}
}
