package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/quicklog/internal/dateutils"
	"fjacquet/quicklog/internal/logging"

	"gopkg.in/yaml.v3"
)

// Supported report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ReportGenerator renders a Summary in various formats.
type ReportGenerator struct {
	logger logging.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &ReportGenerator{
		logger: logger.WithField("component", "ReportGenerator"),
	}
}

// GenerateReport renders the summary as text, json or yaml.
func (g *ReportGenerator) GenerateReport(s *Summary, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return []byte(renderText(s)), nil
	case FormatJSON:
		return g.generateJSONReport(s)
	case FormatYAML:
		return g.generateYAMLReport(s)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

type categoryView struct {
	Category string `json:"category" yaml:"category"`
	Total    string `json:"total" yaml:"total"`
}

type expenseView struct {
	ID          string `json:"id" yaml:"id"`
	Date        string `json:"date" yaml:"date"`
	Amount      string `json:"amount" yaml:"amount"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`
}

type taskView struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
}

type summaryView struct {
	GeneratedAt    string         `json:"generated_at" yaml:"generated_at"`
	Currency       string         `json:"currency" yaml:"currency"`
	Today          string         `json:"today" yaml:"today"`
	Week           string         `json:"week" yaml:"week"`
	TopCategories  []categoryView `json:"top_categories" yaml:"top_categories"`
	Recent         []expenseView  `json:"recent" yaml:"recent"`
	PendingTasks   []taskView     `json:"pending_tasks" yaml:"pending_tasks"`
	CompletedTasks []taskView     `json:"completed_tasks" yaml:"completed_tasks"`
	OtherCurrency  int            `json:"other_currency,omitempty" yaml:"other_currency,omitempty"`
}

func newSummaryView(s *Summary) summaryView {
	v := summaryView{
		GeneratedAt:    dateutils.FormatDate(s.GeneratedAt, dateutils.DateLayoutFull),
		Currency:       s.Currency,
		Today:          s.Today.Amount.StringFixed(2),
		Week:           s.Week.Amount.StringFixed(2),
		TopCategories:  []categoryView{},
		Recent:         []expenseView{},
		PendingTasks:   []taskView{},
		CompletedTasks: []taskView{},
		OtherCurrency:  s.OtherCurrency,
	}
	for _, c := range s.TopCategories {
		v.TopCategories = append(v.TopCategories, categoryView{Category: c.Category, Total: c.Total.Amount.StringFixed(2)})
	}
	for _, e := range s.Recent {
		v.Recent = append(v.Recent, expenseView{
			ID:          e.ID,
			Date:        dateutils.ToISODate(e.Date),
			Amount:      e.Amount.String(),
			Category:    e.Category,
			Description: e.Description,
		})
	}
	for _, t := range s.PendingTasks {
		v.PendingTasks = append(v.PendingTasks, taskView{ID: t.ID, Description: t.Description})
	}
	for _, t := range s.CompletedTasks {
		v.CompletedTasks = append(v.CompletedTasks, taskView{ID: t.ID, Description: t.Description})
	}
	return v
}

func (g *ReportGenerator) generateJSONReport(s *Summary) ([]byte, error) {
	out, err := json.MarshalIndent(newSummaryView(s), "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return out, nil
}

func (g *ReportGenerator) generateYAMLReport(s *Summary) ([]byte, error) {
	out, err := yaml.Marshal(newSummaryView(s))
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}

func renderText(s *Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Today:      %s\n", s.Today.Display())
	fmt.Fprintf(&b, "This week:  %s\n", s.Week.Display())
	if s.OtherCurrency > 0 {
		fmt.Fprintf(&b, "(%d expenses in other currencies not included)\n", s.OtherCurrency)
	}

	b.WriteString("\nTop categories\n")
	if len(s.TopCategories) == 0 {
		b.WriteString("  none yet\n")
	}
	for _, c := range s.TopCategories {
		fmt.Fprintf(&b, "  %-14s %s\n", c.Category, c.Total.Display())
	}

	b.WriteString("\nRecent expenses\n")
	if len(s.Recent) == 0 {
		b.WriteString("  none yet\n")
	}
	for _, e := range s.Recent {
		fmt.Fprintf(&b, "  %s  %-10s %-14s %s\n", dateutils.ToISODate(e.Date), e.Amount.Display(), e.Category, e.Description)
	}

	fmt.Fprintf(&b, "\nTasks: %d pending, %d completed\n", len(s.PendingTasks), len(s.CompletedTasks))
	return b.String()
}
