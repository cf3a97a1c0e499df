// Package fileutil provides small filesystem helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteAtomic writes data to filename through a temporary file in the same
// directory followed by a rename. Readers never observe a partial file:
// either the previous content is still in place or the new content is
// complete. The temp file lives next to the target so the rename stays on
// one filesystem.
func WriteAtomic(filename string, data []byte, perm os.FileMode) error {
	dir, base := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	name := tmp.Name()
	tmp = nil

	if err := os.Chmod(name, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	// Rename within one directory is atomic on POSIX filesystems.
	if err := os.Rename(name, filename); err != nil {
		return fmt.Errorf("replacing %s: %w", filename, err)
	}
	return nil
}
