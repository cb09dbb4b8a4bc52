// Package common provides the CSV helpers shared by the batch and export commands.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"fjacquet/quicklog/internal/fileutils"
	"fjacquet/quicklog/internal/logging"
	"fjacquet/quicklog/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter separates CSV columns unless configured otherwise.
const DefaultDelimiter = ','

// ParseDelimiter returns the first rune of s, or DefaultDelimiter when s is empty.
func ParseDelimiter(s string) rune {
	for _, r := range s {
		return r
	}
	return DefaultDelimiter
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TCSVRow any](filePath string, delimiter rune, logger logging.Logger) ([]TCSVRow, error) {
	logger.Info("Reading CSV file", logging.Field{Key: logging.FieldInputFile, Value: filePath})

	file, err := os.Open(filePath) // #nosec G304 -- path comes from the command line
	if err != nil {
		logger.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := gocsv.LazyCSVReader(file)
	if r, ok := reader.(*csv.Reader); ok {
		r.Comma = delimiter
	}

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		logger.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	logger.Info("Successfully read CSV data", logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// WriteCSV marshals rows, with a header line, to w.
func WriteCSV[TCSVRow any](w io.Writer, rows []TCSVRow, delimiter rune) error {
	if rows == nil {
		rows = []TCSVRow{}
	}
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteCSVFile writes rows to csvFile, creating its directory if needed.
func WriteCSVFile[TCSVRow any](csvFile string, rows []TCSVRow, delimiter rune, logger logging.Logger) error {
	logger.Info("Writing CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(delimiter)})

	file, err := fileutils.CreateFile(csvFile, models.PermissionExportFile)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteCSV(file, rows, delimiter); err != nil {
		logger.WithError(err).Error("Failed to marshal rows to CSV")
		return err
	}

	logger.Info("Successfully wrote CSV file", logging.Field{Key: logging.FieldOutputFile, Value: csvFile})
	return nil
}
