// Package fileutils provides the file operations shared by the ledger, the
// category store and the CSV writers.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/quicklog/internal/models"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates dirPath and its parents with
// models.PermissionDirectory if it does not exist yet.
func EnsureDirectoryExists(dirPath string) error {
	if DirectoryExists(dirPath) {
		return nil
	}
	if err := os.MkdirAll(dirPath, models.PermissionDirectory); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// EnsureParentExists creates the directory that will hold filePath.
func EnsureParentExists(filePath string) error {
	return EnsureDirectoryExists(filepath.Dir(filePath))
}

// CreateFile creates or truncates filePath for writing with perm, creating
// parent directories if needed.
func CreateFile(filePath string, perm os.FileMode) (*os.File, error) {
	if err := EnsureParentExists(filePath); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm) // #nosec G304 -- callers pass configured or user-chosen paths
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}
