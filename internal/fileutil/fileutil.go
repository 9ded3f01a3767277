// Package fileutil writes normalized documents to disk.
package fileutil

import (
	"fmt"
	"os"
)

// OwnerReadWrite is the mode of newly created document files, which may
// describe private APIs.
const OwnerReadWrite os.FileMode = 0o600

// WriteDocument writes data to path. An existing file keeps its permission
// bits; a new file is created with OwnerReadWrite.
func WriteDocument(path string, data []byte) error {
	mode := OwnerReadWrite
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
