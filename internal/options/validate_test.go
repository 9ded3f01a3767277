package options

import (
	"errors"
	"testing"

	"github.com/erraggy/oasnorm/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSingleInputSource(t *testing.T) {
	tests := []struct {
		name    string
		sources []Source
		wantErr string
	}{
		{
			name:    "exactly one",
			sources: []Source{{Name: "WithFilePath", Set: true}, {Name: "WithBytes"}},
		},
		{
			name:    "none",
			sources: []Source{{Name: "WithFilePath"}, {Name: "WithBytes"}},
			wantErr: "must specify an input source (use WithFilePath, WithBytes)",
		},
		{
			name:    "several",
			sources: []Source{{Name: "WithFilePath", Set: true}, {Name: "WithBytes", Set: true}},
			wantErr: "must specify exactly one input source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSingleInputSource("pkg", tt.sources...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "pkg: "+tt.wantErr)
			assert.True(t, errors.Is(err, oaserrors.ErrConfig))
		})
	}
}
