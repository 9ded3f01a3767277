package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrSameFile is returned by ResolveOutputPath when the output would
// overwrite the document being read and overwriting was not allowed.
var ErrSameFile = errors.New("pathutil: output path is the input file")

// ResolveOutputPath validates an output file path and returns it cleaned and
// absolute. The target must not be a symlink or a directory, and its parent
// directory must already exist. When input is not empty and allowInPlace is
// false, writing over input is refused with ErrSameFile.
func ResolveOutputPath(path, input string, allowInPlace bool) (string, error) {
	if path == "" {
		return "", fmt.Errorf("pathutil: output path is empty")
	}
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("pathutil: refusing to write to symlink: %s", abs)
		}
		if info.IsDir() {
			return "", fmt.Errorf("pathutil: output path is a directory: %s", abs)
		}
	case os.IsNotExist(err):
		dir, statErr := os.Stat(filepath.Dir(abs))
		if statErr != nil || !dir.IsDir() {
			return "", fmt.Errorf("pathutil: output directory does not exist: %s", filepath.Dir(abs))
		}
	default:
		return "", fmt.Errorf("pathutil: cannot stat path: %w", err)
	}

	if input != "" && !allowInPlace {
		if inAbs, err := filepath.Abs(input); err == nil && inAbs == abs {
			return "", ErrSameFile
		}
	}
	return abs, nil
}
