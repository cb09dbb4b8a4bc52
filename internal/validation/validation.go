// Package validation checks command-line inputs before any work starts.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/quicklog/internal/apperror"
)

// ReportFormats lists the formats the summary command renders.
var ReportFormats = []string{"text", "json", "yaml"}

// IsValidInputFile checks that path names an existing regular file.
func IsValidInputFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return &apperror.ValidationError{Field: "input", Reason: "path is empty"}
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return &apperror.ValidationError{Field: "input", Reason: fmt.Sprintf("file does not exist: %s", path)}
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return &apperror.ValidationError{Field: "input", Reason: fmt.Sprintf("%s is not a regular file", path)}
	}
	return nil
}

// IsValidOutputFile checks that path can be written without clobbering the
// input or a directory.
func IsValidOutputFile(path, input string) error {
	if strings.TrimSpace(path) == "" {
		return &apperror.ValidationError{Field: "output", Reason: "path is empty"}
	}
	if input != "" && filepath.Clean(path) == filepath.Clean(input) {
		return &apperror.ValidationError{Field: "output", Reason: "output would overwrite the input file"}
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return &apperror.ValidationError{Field: "output", Reason: fmt.Sprintf("%s is a directory", path)}
	}
	return nil
}

// IsValidReportFormat checks if the given format is supported.
func IsValidReportFormat(format string) error {
	f := strings.ToLower(format)
	for _, known := range ReportFormats {
		if f == known {
			return nil
		}
	}
	return &apperror.ValidationError{
		Field:  "format",
		Reason: fmt.Sprintf("unsupported report format: %s. Supported formats are %s", format, strings.Join(ReportFormats, ", ")),
	}
}

// IsValidFilePermissions rejects modes that grant anything to others. The
// ledger holds personal spending and is written 0600.
func IsValidFilePermissions(mode os.FileMode) error {
	if mode&0007 != 0 {
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600", mode.String())
	}
	return nil
}
