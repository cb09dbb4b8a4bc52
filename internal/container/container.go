// Package container provides dependency injection for the quicklog application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"time"

	"fjacquet/quicklog/internal/batch"
	"fjacquet/quicklog/internal/config"
	"fjacquet/quicklog/internal/intent"
	"fjacquet/quicklog/internal/logging"
	"fjacquet/quicklog/internal/recorder"
	"fjacquet/quicklog/internal/report"
	"fjacquet/quicklog/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	now        func() time.Time
	categories store.CategoryLoader
	parser     *intent.Parser
	index      *intent.KeywordIndex
	ledger     *store.Ledger
	recorder   *recorder.Recorder
	batch      *batch.Processor
	reports    *report.ReportGenerator
}

// Option overrides a dependency, mostly for tests.
type Option func(*Container)

// WithLogger replaces the logger built from the log configuration.
func WithLogger(logger logging.Logger) Option {
	return func(c *Container) {
		c.logger = logger
	}
}

// WithClock replaces the wall clock used to date reminders and records.
func WithClock(now func() time.Time) Option {
	return func(c *Container) {
		c.now = now
	}
}

// WithCategoryLoader replaces the YAML category store.
func WithCategoryLoader(loader store.CategoryLoader) Option {
	return func(c *Container) {
		c.categories = loader
	}
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	c := &Container{config: cfg, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}

	// Create logger first as it's needed by other components
	if c.logger == nil {
		c.logger = config.NewLogger(cfg)
	}
	if c.categories == nil {
		c.categories = store.NewCategoryStore(cfg.Categories.File, c.logger)
	}

	categories, err := c.categories.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	c.parser = intent.NewParser(
		intent.WithClock(c.now),
		intent.WithLogger(c.logger),
		intent.WithCategories(categories),
	)
	c.index = c.parser.NewKeywordIndex()
	c.ledger = store.NewLedger(cfg.Ledger.File, c.logger)
	c.recorder = recorder.New(c.ledger,
		recorder.WithClock(c.now),
		recorder.WithDefaultCurrency(cfg.Currency.Default),
		recorder.WithLogger(c.logger))
	c.batch = batch.NewProcessor(c.parser, cfg.Batch.Workers, c.logger)
	c.reports = report.NewReportGenerator(c.logger)

	c.logger.Debug("Container initialized successfully",
		logging.Field{Key: "categories_count", Value: len(c.parser.Categories())},
		logging.Field{Key: "keywords_count", Value: c.index.PatternCount()},
		logging.Field{Key: logging.FieldLedgerFile, Value: cfg.Ledger.File})

	return c, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// Now returns the current time from the container's clock.
func (c *Container) Now() time.Time {
	return c.now()
}

// GetParser returns the classifier, configured with the category table.
func (c *Container) GetParser() *intent.Parser {
	return c.parser
}

// GetKeywordIndex returns the keyword index used to explain classifications.
func (c *Container) GetKeywordIndex() *intent.KeywordIndex {
	return c.index
}

// GetLedger returns the record store.
func (c *Container) GetLedger() *store.Ledger {
	return c.ledger
}

// GetRecorder returns the recorder writing to the ledger.
func (c *Container) GetRecorder() *recorder.Recorder {
	return c.recorder
}

// GetBatchProcessor returns the concurrent batch classifier.
func (c *Container) GetBatchProcessor() *batch.Processor {
	return c.batch
}

// GetReportGenerator returns the summary renderer.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.reports
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
