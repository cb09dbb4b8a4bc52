// Package store persists quicklog data: the optional category table override
// and the YAML ledger of confirmed records.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/quicklog/internal/fileutils"
	"fjacquet/quicklog/internal/logging"
	"fjacquet/quicklog/internal/models"

	"gopkg.in/yaml.v3"
)

// CategoryLoader supplies a category table. An empty result means "use the built-in table".
type CategoryLoader interface {
	LoadCategories() ([]models.CategoryConfig, error)
}

// CategoryStore loads the category table override from a YAML file.
type CategoryStore struct {
	CategoriesFile string
	logger         logging.Logger
}

// NewCategoryStore creates a store for the given file. An empty name disables the override.
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &CategoryStore{
		CategoriesFile: categoriesFile,
		logger:         logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join(".quicklog", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".quicklog", filename))
	}

	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadCategories reads the override table. Both a top-level "categories:" key
// and a bare list are accepted. A missing file is not an error.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	if s.CategoriesFile == "" {
		return nil, nil
	}

	filePath, err := s.FindConfigFile(s.CategoriesFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("Categories file not found, using built-in table",
				logging.Field{Key: logging.FieldInputFile, Value: s.CategoriesFile})
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var categoriesConfig models.CategoriesConfig
	if err := yaml.Unmarshal(data, &categoriesConfig); err == nil && len(categoriesConfig.Categories) > 0 {
		s.logDebugLoaded(len(categoriesConfig.Categories), filePath)
		return categoriesConfig.Categories, nil
	}

	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("error parsing categories file %s: %w", filePath, err)
	}
	s.logDebugLoaded(len(categories), filePath)
	return categories, nil
}

func (s *CategoryStore) logDebugLoaded(count int, path string) {
	s.logger.Debug("Loaded categories",
		logging.Field{Key: logging.FieldCount, Value: count},
		logging.Field{Key: logging.FieldInputFile, Value: path})
}
