package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/quicklog/internal/logging"
	"fjacquet/quicklog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
}

func TestNewCategoryStore(t *testing.T) {
	store := NewCategoryStore("categories.yaml", nil)
	assert.Equal(t, "categories.yaml", store.CategoriesFile)
	assert.NotNil(t, store.logger)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	testFile := filepath.Join(dir, "test.yaml")
	writeFile(t, testFile, "test content")

	store := NewCategoryStore("", logging.NewMockLogger())

	file, err := store.FindConfigFile(testFile)
	assert.NoError(t, err)
	assert.Equal(t, testFile, file)

	_, err = store.FindConfigFile(filepath.Join(dir, "nonexistent.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadCategories(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []models.CategoryConfig
	}{
		{
			name: "top-level key",
			content: `categories:
  - name: Pets
    keywords: ["vet", "kibble"]
  - name: Food
    keywords: ["lunch"]
`,
			expected: []models.CategoryConfig{
				{Name: "Pets", Keywords: []string{"vet", "kibble"}},
				{Name: "Food", Keywords: []string{"lunch"}},
			},
		},
		{
			name: "bare list",
			content: `- name: Groceries
  keywords: ["supermarket", "grocery"]
`,
			expected: []models.CategoryConfig{
				{Name: "Groceries", Keywords: []string{"supermarket", "grocery"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "categories.yaml")
			writeFile(t, file, tt.content)

			cats, err := NewCategoryStore(file, logging.NewMockLogger()).LoadCategories()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cats)
		})
	}
}

func TestLoadCategories_Missing(t *testing.T) {
	logger := logging.NewMockLogger()
	store := NewCategoryStore(filepath.Join(t.TempDir(), "missing.yaml"), logger)

	cats, err := store.LoadCategories()
	assert.NoError(t, err)
	assert.Empty(t, cats)
	assert.True(t, logger.HasEntry("WARN", "Categories file not found, using built-in table"))
}

func TestLoadCategories_Disabled(t *testing.T) {
	cats, err := NewCategoryStore("", logging.NewMockLogger()).LoadCategories()
	assert.NoError(t, err)
	assert.Nil(t, cats)
}

func TestLoadCategories_Malformed(t *testing.T) {
	file := filepath.Join(t.TempDir(), "categories.yaml")
	writeFile(t, file, `{malformed: yaml: content}`)

	_, err := NewCategoryStore(file, logging.NewMockLogger()).LoadCategories()
	assert.Error(t, err)
}

func TestMockCategoryStore(t *testing.T) {
	var loader CategoryLoader = &MockCategoryStore{
		Categories: []models.CategoryConfig{{Name: "Pets", Keywords: []string{"vet"}}},
	}
	cats, err := loader.LoadCategories()
	require.NoError(t, err)
	assert.Len(t, cats, 1)

	loader = &MockCategoryStore{LoadCategoriesError: errors.New("boom")}
	_, err = loader.LoadCategories()
	assert.EqualError(t, err, "boom")
}
