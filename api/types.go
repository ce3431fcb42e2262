package api

import (
	"time"

	"github.com/shopspring/decimal"

	"unity-check/core/types"
)

// EvaluateRequest is the POST /evaluate request body
type EvaluateRequest struct {
	// Strategy selects the mass-computation path (local, external).
	// Empty selects the configured default.
	Strategy string `json:"strategy,omitempty"`

	// Cases is the ordered batch to evaluate
	Cases []types.LoadCase `json:"cases"`
}

// CaseResult is the per-case response payload
type CaseResult struct {
	Name               string          `json:"name"`
	Volume             decimal.Decimal `json:"volume"`
	Density            decimal.Decimal `json:"density"`
	Norm               types.Norm      `json:"norm"`
	Mass               decimal.Decimal `json:"mass"`
	MaxMass            decimal.Decimal `json:"max_mass"`
	UtilizationPercent decimal.Decimal `json:"utilization_percent"`
	Status             types.Status    `json:"status"`

	// Color is the display color for the utilization value (#rrggbb)
	Color string `json:"color,omitempty"`
}

// ResponseMetadata carries execution context
type ResponseMetadata struct {
	Strategy      string `json:"strategy"`
	EngineVersion string `json:"engine_version"`
	DurationMs    int64  `json:"duration_ms"`
}

// EvaluateResponse is the POST /evaluate response body
type EvaluateResponse struct {
	RequestID string             `json:"request_id"`
	Timestamp time.Time          `json:"timestamp"`
	Results   []CaseResult       `json:"results"`
	Summary   types.BatchSummary `json:"summary"`
	Metadata  *ResponseMetadata  `json:"metadata,omitempty"`
}

// ErrorBody describes a failed request
type ErrorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	RequestID string    `json:"request_id"`
	Error     ErrorBody `json:"error"`
}

// NormEntry is one row of the GET /norms response
type NormEntry struct {
	Norm    types.Norm      `json:"norm"`
	MaxMass decimal.Decimal `json:"max_mass"`
}
