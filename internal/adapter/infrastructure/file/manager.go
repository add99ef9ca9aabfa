// Package file provides the file store adapter implementation.
package file

import (
	"fmt"
	"os"

	"agw-agent/internal/port"
)

// ManagerAdapter is an adapter that implements the FileStore port using the
// standard os package.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the FileStore port
var _ port.FileStore = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new file store adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// ReadFile reads the contents of a file.
func (f *ManagerAdapter) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}
	return data, nil
}

// WriteFile writes data to a file with the specified permissions.
func (f *ManagerAdapter) WriteFile(name string, data []byte, perm os.FileMode) error {
	if err := os.WriteFile(name, data, perm); err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}
	return nil
}

// FileExists checks if a file exists.
func (f *ManagerAdapter) FileExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// Remove deletes a file. Removing a missing file is not an error.
func (f *ManagerAdapter) Remove(name string) error {
	if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file %s: %w", name, err)
	}
	return nil
}

// MkdirAll creates a directory and any missing parents.
func (f *ManagerAdapter) MkdirAll(path string, perm os.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}
