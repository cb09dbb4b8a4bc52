package validation_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/quicklog/internal/apperror"
	"fjacquet/quicklog/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidInputFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "messages.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("Coffee £3.50\n"), 0600))

	tests := []struct {
		name        string
		path        string
		expectError bool
	}{
		{name: "existing file", path: testFile},
		{name: "relative path is fine", path: mustRel(t, testFile)},
		{name: "empty", path: " ", expectError: true},
		{name: "missing", path: filepath.Join(tmpDir, "missing.txt"), expectError: true},
		{name: "directory", path: tmpDir, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidInputFile(tt.path)
			if tt.expectError {
				var ve *apperror.ValidationError
				require.True(t, errors.As(err, &ve), "want ValidationError, got %v", err)
				assert.Equal(t, "input", ve.Field)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func mustRel(t *testing.T, path string) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, path)
	require.NoError(t, err)
	return rel
}

func TestIsValidOutputFile(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "in.txt")

	assert.NoError(t, validation.IsValidOutputFile(filepath.Join(tmpDir, "out.csv"), input))
	assert.NoError(t, validation.IsValidOutputFile(filepath.Join(tmpDir, "new", "out.csv"), ""))
	assert.Error(t, validation.IsValidOutputFile("", input))
	assert.Error(t, validation.IsValidOutputFile(tmpDir, input))

	err := validation.IsValidOutputFile(filepath.Join(tmpDir, ".", "in.txt"), input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overwrite the input")
}

func TestIsValidReportFormat(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml", "JSON", "Yaml"} {
		assert.NoError(t, validation.IsValidReportFormat(format), format)
	}

	err := validation.IsValidReportFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format: xml")
	assert.Contains(t, err.Error(), "text, json, yaml")
}

func TestIsValidFilePermissions(t *testing.T) {
	tests := []struct {
		mode        os.FileMode
		expectError bool
	}{
		{mode: 0600},
		{mode: 0640},
		{mode: 0750},
		{mode: 0644, expectError: true},
		{mode: 0777, expectError: true},
		{mode: 0601, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			err := validation.IsValidFilePermissions(tt.mode)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
