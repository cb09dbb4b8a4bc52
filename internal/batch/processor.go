// Package batch classifies many messages at once, concurrently, and writes the results as CSV.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fjacquet/quicklog/internal/common"
	"fjacquet/quicklog/internal/logging"
	"fjacquet/quicklog/internal/models"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds concurrency when no worker count is configured.
const DefaultWorkers = 4

// Classifier is satisfied by *intent.Parser.
type Classifier interface {
	Classify(text string) models.ParsedIntent
}

// Line is one input message with its 1-based position in the source.
type Line struct {
	Number int
	Text   string
}

// Result is the classification of one Line.
type Result struct {
	Line   Line
	Intent models.ParsedIntent
}

// Stats counts results per kind.
type Stats struct {
	Total  int
	ByKind map[models.Kind]int
}

// Processor classifies lines with a bounded number of goroutines.
type Processor struct {
	classifier Classifier
	workers    int
	logger     logging.Logger
}

// NewProcessor creates a Processor. A worker count below 1 means DefaultWorkers.
func NewProcessor(classifier Classifier, workers int, logger logging.Logger) *Processor {
	if workers < 1 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Processor{classifier: classifier, workers: workers, logger: logger}
}

// Process classifies every line. Results keep the input order. It stops
// early, returning the context error, when ctx is cancelled.
func (p *Processor) Process(ctx context.Context, lines []Line) ([]Result, error) {
	start := time.Now()
	results := make([]Result, len(lines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, line := range lines {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Result{Line: line, Intent: p.classifier.Classify(line.Text)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch interrupted: %w", err)
	}

	p.logger.Info("Batch classified",
		logging.Field{Key: logging.FieldCount, Value: len(lines)},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})
	return results, nil
}

// ProcessFile reads input, classifies it and writes the results to output as CSV.
func (p *Processor) ProcessFile(ctx context.Context, input, output string, delimiter rune) (Stats, error) {
	lines, err := ReadLines(input, delimiter, p.logger)
	if err != nil {
		return Stats{}, err
	}
	results, err := p.Process(ctx, lines)
	if err != nil {
		return Stats{}, err
	}
	if err := common.WriteCSVFile(output, ToRows(results), delimiter, p.logger); err != nil {
		return Stats{}, err
	}
	return Tally(results), nil
}

// ReadLines returns the non-blank messages of a file. A .csv file is read
// through its "text" column; any other file is read one message per line.
func ReadLines(path string, delimiter rune, logger logging.Logger) ([]Line, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		rows, err := common.ReadCSVFile[models.MessageRow](path, delimiter, logger)
		if err != nil {
			return nil, err
		}
		var lines []Line
		for i, row := range rows {
			if strings.TrimSpace(row.Text) != "" {
				lines = append(lines, Line{Number: i + 1, Text: row.Text})
			}
		}
		return lines, nil
	}

	file, err := os.Open(path) // #nosec G304 -- path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("error opening input file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()
	return ScanLines(file)
}

// ScanLines splits r into non-blank lines, numbering them by position.
func ScanLines(r io.Reader) ([]Line, error) {
	var lines []Line
	scanner := bufio.NewScanner(r)
	number := 0
	for scanner.Scan() {
		number++
		if text := scanner.Text(); strings.TrimSpace(text) != "" {
			lines = append(lines, Line{Number: number, Text: text})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return lines, nil
}

// ToRows flattens results for CSV output.
func ToRows(results []Result) []models.IntentRow {
	rows := make([]models.IntentRow, len(results))
	for i, r := range results {
		rows[i] = r.Intent.ToRow(r.Line.Number, r.Line.Text)
	}
	return rows
}

// Tally counts results per kind.
func Tally(results []Result) Stats {
	stats := Stats{Total: len(results), ByKind: make(map[models.Kind]int)}
	for _, r := range results {
		stats.ByKind[r.Intent.Kind]++
	}
	return stats
}
