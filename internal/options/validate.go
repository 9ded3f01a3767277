// Package options provides shared utilities for option validation across packages.
package options

import (
	"strings"

	"github.com/erraggy/oasnorm/oaserrors"
)

// Source names one input-source option and whether it was supplied.
type Source struct {
	Name string
	Set  bool
}

// ValidateSingleInputSource ensures exactly one of sources is set. The
// returned error is an *oaserrors.ConfigError naming the candidate options.
func ValidateSingleInputSource(pkg string, sources ...Source) error {
	names := make([]string, 0, len(sources))
	var set []string
	for _, s := range sources {
		names = append(names, s.Name)
		if s.Set {
			set = append(set, s.Name)
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return &oaserrors.ConfigError{
			Option:  "input source",
			Message: pkg + ": must specify an input source (use " + strings.Join(names, ", ") + ")",
		}
	default:
		return &oaserrors.ConfigError{
			Option:  "input source",
			Value:   strings.Join(set, ", "),
			Message: pkg + ": must specify exactly one input source",
		}
	}
}
