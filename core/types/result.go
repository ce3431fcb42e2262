package types

import "github.com/shopspring/decimal"

// Status classifies a case's utilization
type Status string

const (
	// StatusSuccess means utilization is at or below 80%
	StatusSuccess Status = "SUCCESS"

	// StatusWarning means utilization is above 80% and at or below 100%
	StatusWarning Status = "WARNING"

	// StatusError means utilization exceeds the allowable maximum
	StatusError Status = "ERROR"
)

// String returns the string representation
func (s Status) String() string {
	return string(s)
}

// Classification thresholds in percent. Both boundaries are inclusive on
// the lower band: exactly 80 is SUCCESS, exactly 100 is WARNING.
var (
	warningThreshold = decimal.NewFromInt(80)
	errorThreshold   = decimal.NewFromInt(100)
)

// ClassifyUtilization derives the status from a utilization percentage
func ClassifyUtilization(percent decimal.Decimal) Status {
	switch {
	case percent.GreaterThan(errorThreshold):
		return StatusError
	case percent.GreaterThan(warningThreshold):
		return StatusWarning
	default:
		return StatusSuccess
	}
}

// EvaluationResult is the derived outcome for a single load case
type EvaluationResult struct {
	// Name is the display label of the source case
	Name string `json:"name,omitempty"`

	// Case is the evaluated input
	Case LoadCase `json:"case"`

	// Mass is the computed mass in kg
	Mass decimal.Decimal `json:"mass"`

	// MaxMass is the allowable maximum for the case's norm in kg
	MaxMass decimal.Decimal `json:"max_mass"`

	// UtilizationPercent is mass / max_mass * 100
	UtilizationPercent decimal.Decimal `json:"utilization_percent"`

	// Status is the tri-state classification of the utilization
	Status Status `json:"status"`
}

// BatchSummary aggregates a batch of evaluation results
type BatchSummary struct {
	// Cases is the number of evaluated cases
	Cases int `json:"cases"`

	// SuccessCount, WarningCount and ErrorCount are per-status tallies
	SuccessCount int `json:"success_count"`
	WarningCount int `json:"warning_count"`
	ErrorCount   int `json:"error_count"`

	// MaxUtilizationPercent is the highest utilization in the batch
	MaxUtilizationPercent decimal.Decimal `json:"max_utilization_percent"`

	// WorstStatus is the most severe status in the batch
	WorstStatus Status `json:"worst_status"`
}

// Summarize aggregates results into a batch summary
func Summarize(results []*EvaluationResult) BatchSummary {
	summary := BatchSummary{
		Cases:       len(results),
		WorstStatus: StatusSuccess,
	}
	for _, r := range results {
		switch r.Status {
		case StatusError:
			summary.ErrorCount++
			summary.WorstStatus = StatusError
		case StatusWarning:
			summary.WarningCount++
			if summary.WorstStatus != StatusError {
				summary.WorstStatus = StatusWarning
			}
		default:
			summary.SuccessCount++
		}
		if r.UtilizationPercent.GreaterThan(summary.MaxUtilizationPercent) {
			summary.MaxUtilizationPercent = r.UtilizationPercent
		}
	}
	return summary
}
