package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestClassifyUtilization(t *testing.T) {
	tests := []struct {
		percent string
		status  Status
	}{
		{"0", StatusSuccess},
		{"60", StatusSuccess},
		{"80", StatusSuccess},
		{"80.0001", StatusWarning},
		{"99.9999", StatusWarning},
		{"100", StatusWarning},
		{"100.0001", StatusError},
		{"160", StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.percent, func(t *testing.T) {
			percent := decimal.RequireFromString(tt.percent)
			if got := ClassifyUtilization(percent); got != tt.status {
				t.Errorf("ClassifyUtilization(%s) = %s, want %s", tt.percent, got, tt.status)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	results := []*EvaluationResult{
		{UtilizationPercent: decimal.NewFromInt(60), Status: StatusSuccess},
		{UtilizationPercent: decimal.NewFromInt(90), Status: StatusWarning},
		{UtilizationPercent: decimal.NewFromInt(160), Status: StatusError},
	}

	summary := Summarize(results)

	if summary.Cases != 3 {
		t.Errorf("expected 3 cases, got %d", summary.Cases)
	}
	if summary.SuccessCount != 1 || summary.WarningCount != 1 || summary.ErrorCount != 1 {
		t.Errorf("unexpected counts: %+v", summary)
	}
	if summary.WorstStatus != StatusError {
		t.Errorf("expected worst status ERROR, got %s", summary.WorstStatus)
	}
	if !summary.MaxUtilizationPercent.Equal(decimal.NewFromInt(160)) {
		t.Errorf("expected max utilization 160, got %s", summary.MaxUtilizationPercent)
	}
}

func TestSummarizeWarningOnly(t *testing.T) {
	results := []*EvaluationResult{
		{UtilizationPercent: decimal.NewFromInt(90), Status: StatusWarning},
		{UtilizationPercent: decimal.NewFromInt(60), Status: StatusSuccess},
	}

	summary := Summarize(results)
	if summary.WorstStatus != StatusWarning {
		t.Errorf("expected worst status WARNING, got %s", summary.WorstStatus)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	if summary.Cases != 0 {
		t.Errorf("expected 0 cases, got %d", summary.Cases)
	}
	if summary.WorstStatus != StatusSuccess {
		t.Errorf("expected worst status SUCCESS for empty summary, got %s", summary.WorstStatus)
	}
}
