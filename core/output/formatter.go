package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"unity-check/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal rendering
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// ReportMetadata contains execution context
type ReportMetadata struct {
	// Timestamp is when the evaluation was performed
	Timestamp string `json:"timestamp"`

	// Duration is how long the evaluation took
	Duration string `json:"duration"`

	// Strategy is the mass-computation strategy that was used
	Strategy string `json:"strategy"`

	// Version is the application version
	Version string `json:"version"`
}

// EvaluationReport is the complete evaluation output
type EvaluationReport struct {
	// Results contains the per-case outcomes in input order
	Results []*types.EvaluationResult `json:"results"`

	// Summary aggregates the batch
	Summary types.BatchSummary `json:"summary"`

	// Metadata contains execution context
	Metadata ReportMetadata `json:"metadata"`
}

// NewReport builds a report from batch results
func NewReport(results []*types.EvaluationResult, strategy string, version string, duration time.Duration) *EvaluationReport {
	return &EvaluationReport{
		Results: results,
		Summary: types.Summarize(results),
		Metadata: ReportMetadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Duration:  duration.String(),
			Strategy:  strategy,
			Version:   version,
		},
	}
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *EvaluationReport) error
}

// NewFormatter returns the formatter for a format name
func NewFormatter(format string, showDetails, showChart, noColor bool) (Formatter, error) {
	switch Format(format) {
	case FormatCLI, "":
		return &CLIFormatter{ShowDetails: showDetails, ShowChart: showChart, NoColor: noColor}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
}

// JSONFormatter renders machine-readable JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the report as indented JSON
func (f *JSONFormatter) Render(w io.Writer, report *EvaluationReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// Terminal colors
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// CLIFormatter renders a human-readable terminal report
type CLIFormatter struct {
	// ShowDetails renders the per-case breakdown
	ShowDetails bool

	// ShowChart renders the utilization bar chart
	ShowChart bool

	// NoColor disables ANSI colors
	NoColor bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the report as a table, bar chart and summary
func (f *CLIFormatter) Render(w io.Writer, report *EvaluationReport) error {
	f.header(w, "Unity Check [%]")

	if f.ShowDetails {
		for _, r := range report.Results {
			fmt.Fprintf(w, "%-10s %8s m³ %8s kg/m³ %10s kg  norm %s (max %s kg) %7s%%  %s\n",
				r.Name,
				r.Case.Volume.String(),
				r.Case.Density.String(),
				r.Mass.String(),
				r.Case.Norm,
				r.MaxMass.String(),
				r.UtilizationPercent.StringFixed(1),
				f.status(r.Status))
		}
		fmt.Fprintln(w)
	}

	if f.ShowChart {
		f.chart(w, report)
	}

	s := report.Summary
	fmt.Fprintf(w, "%d case(s): %s success, %s warning, %s error\n",
		s.Cases,
		f.color(green, fmt.Sprintf("%d", s.SuccessCount)),
		f.color(yellow, fmt.Sprintf("%d", s.WarningCount)),
		f.color(red, fmt.Sprintf("%d", s.ErrorCount)))
	fmt.Fprintf(w, "max utilization %s%%, overall %s\n",
		s.MaxUtilizationPercent.StringFixed(1), f.status(s.WorstStatus))
	return nil
}

// chart prints one utilization bar per case, scaled so that 100% fills
// half the bar width and over-utilization remains visible
func (f *CLIFormatter) chart(w io.Writer, report *EvaluationReport) {
	const fullWidth = 50
	for _, r := range report.Results {
		length := int(r.UtilizationPercent.IntPart()) * fullWidth / 200
		if length > fullWidth {
			length = fullWidth
		}
		if length < 0 {
			length = 0
		}
		bar := strings.Repeat("█", length)
		fmt.Fprintf(w, "%-10s %s %s%%\n",
			r.Name, f.color(f.statusColor(r.Status), bar), r.UtilizationPercent.StringFixed(1))
	}
	fmt.Fprintln(w)
}

func (f *CLIFormatter) header(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, f.color(bold+cyan, "━━━ "+title+" ━━━"))
	fmt.Fprintln(w)
}

func (f *CLIFormatter) statusColor(s types.Status) string {
	switch s {
	case types.StatusError:
		return red
	case types.StatusWarning:
		return yellow
	default:
		return green
	}
}

func (f *CLIFormatter) status(s types.Status) string {
	return f.color(f.statusColor(s), string(s))
}

func (f *CLIFormatter) color(c, text string) string {
	if f.NoColor {
		return text
	}
	return c + text + reset
}
