package evaluator

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"unity-check/core/types"
	"unity-check/internal/errors"
)

func mustCase(t *testing.T, volume string, density int64, norm types.Norm) types.LoadCase {
	t.Helper()
	return types.LoadCase{
		Volume:  decimal.RequireFromString(volume),
		Density: decimal.NewFromInt(density),
		Norm:    norm,
	}
}

func TestEvaluateCase(t *testing.T) {
	tests := []struct {
		name        string
		volume      string
		density     int64
		norm        types.Norm
		mass        string
		maxMass     string
		utilization string
		status      types.Status
	}{
		{
			name:        "success well under limit",
			volume:      "0.3",
			density:     1000,
			norm:        types.NormA,
			mass:        "300",
			maxMass:     "500",
			utilization: "60",
			status:      types.StatusSuccess,
		},
		{
			name:        "error over limit",
			volume:      "0.8",
			density:     1000,
			norm:        types.NormA,
			mass:        "800",
			maxMass:     "500",
			utilization: "160",
			status:      types.StatusError,
		},
		{
			name:        "warning exactly at limit",
			volume:      "0.5",
			density:     1500,
			norm:        types.NormB,
			mass:        "750",
			maxMass:     "750",
			utilization: "100",
			status:      types.StatusWarning,
		},
		{
			name:        "success exactly at warning boundary",
			volume:      "0.4",
			density:     1000,
			norm:        types.NormA,
			mass:        "400",
			maxMass:     "500",
			utilization: "80",
			status:      types.StatusSuccess,
		},
		{
			name:        "zero density",
			volume:      "0.3",
			density:     0,
			norm:        types.NormC,
			mass:        "0",
			maxMass:     "1000",
			utilization: "0",
			status:      types.StatusSuccess,
		},
	}

	eval := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := eval.EvaluateCase(context.Background(), mustCase(t, tt.volume, tt.density, tt.norm), StrategyLocal)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.Mass.Equal(decimal.RequireFromString(tt.mass)) {
				t.Errorf("mass = %s, want %s", result.Mass, tt.mass)
			}
			if !result.MaxMass.Equal(decimal.RequireFromString(tt.maxMass)) {
				t.Errorf("max mass = %s, want %s", result.MaxMass, tt.maxMass)
			}
			if !result.UtilizationPercent.Equal(decimal.RequireFromString(tt.utilization)) {
				t.Errorf("utilization = %s, want %s", result.UtilizationPercent, tt.utilization)
			}
			if result.Status != tt.status {
				t.Errorf("status = %s, want %s", result.Status, tt.status)
			}
		})
	}
}

func TestEvaluateCaseUnknownNorm(t *testing.T) {
	eval := New()
	_, err := eval.EvaluateCase(context.Background(), mustCase(t, "1.0", 100, types.Norm("D")), StrategyLocal)
	if err == nil {
		t.Fatal("expected error for unknown norm")
	}
	if !errors.IsType(err, errors.TypeUnknownNorm) {
		t.Errorf("expected UNKNOWN_NORM, got %v", err)
	}
}

func TestEvaluateCaseIdempotent(t *testing.T) {
	eval := New()
	c := mustCase(t, "0.3", 1000, types.NormA)

	first, err := eval.EvaluateCase(context.Background(), c, StrategyLocal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := eval.EvaluateCase(context.Background(), c, StrategyLocal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !first.Mass.Equal(second.Mass) ||
		!first.UtilizationPercent.Equal(second.UtilizationPercent) ||
		first.Status != second.Status {
		t.Errorf("repeated evaluation differs: %+v vs %+v", first, second)
	}
}

func TestEvaluateCaseExternalNotConfigured(t *testing.T) {
	eval := New()
	_, err := eval.EvaluateCase(context.Background(), mustCase(t, "0.3", 1000, types.NormA), StrategyExternal)
	if err == nil {
		t.Fatal("expected error when external calculator is not configured")
	}
	if !errors.IsType(err, errors.TypeExternalService) {
		t.Errorf("expected EXTERNAL_SERVICE_ERROR, got %v", err)
	}
}

// fakeCalculator is a deterministic external-path test double
type fakeCalculator struct {
	err   error
	delay time.Duration
}

func (f *fakeCalculator) Name() string { return "fake" }

func (f *fakeCalculator) Mass(ctx context.Context, volume, density decimal.Decimal) (decimal.Decimal, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return decimal.Zero, ctx.Err()
		}
	}
	if f.err != nil {
		return decimal.Zero, f.err
	}
	return volume.Mul(density), nil
}

func TestEvaluateCaseStrategiesAgree(t *testing.T) {
	eval := New(WithExternal(&fakeCalculator{}))
	c := mustCase(t, "0.7", 1300, types.NormC)

	local, err := eval.EvaluateCase(context.Background(), c, StrategyLocal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	external, err := eval.EvaluateCase(context.Background(), c, StrategyExternal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !local.Mass.Equal(external.Mass) {
		t.Errorf("strategies disagree on mass: %s vs %s", local.Mass, external.Mass)
	}
	if !local.UtilizationPercent.Equal(external.UtilizationPercent) {
		t.Errorf("strategies disagree on utilization: %s vs %s",
			local.UtilizationPercent, external.UtilizationPercent)
	}
}

func TestEvaluateBatchEmpty(t *testing.T) {
	eval := New()
	_, err := eval.EvaluateBatch(context.Background(), nil, StrategyLocal)
	if err == nil {
		t.Fatal("expected error for empty batch")
	}
	if !errors.IsType(err, errors.TypeEmptyBatch) {
		t.Errorf("expected EMPTY_BATCH, got %v", err)
	}
}

func TestEvaluateBatchPreservesOrder(t *testing.T) {
	cases := []types.LoadCase{
		mustCase(t, "0.3", 1000, types.NormA),
		mustCase(t, "0.8", 1000, types.NormA),
		mustCase(t, "0.5", 1500, types.NormB),
	}
	wantStatus := []types.Status{types.StatusSuccess, types.StatusError, types.StatusWarning}
	wantMass := []string{"300", "800", "750"}

	strategies := map[string]struct {
		eval     *Evaluator
		strategy Strategy
	}{
		"local":    {New(), StrategyLocal},
		"external": {New(WithExternal(&fakeCalculator{delay: 5 * time.Millisecond}), WithMaxConcurrent(2)), StrategyExternal},
	}

	for name, tt := range strategies {
		t.Run(name, func(t *testing.T) {
			results, err := tt.eval.EvaluateBatch(context.Background(), cases, tt.strategy)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(results) != len(cases) {
				t.Fatalf("expected %d results, got %d", len(cases), len(results))
			}
			for i, r := range results {
				if r.Status != wantStatus[i] {
					t.Errorf("result %d status = %s, want %s", i, r.Status, wantStatus[i])
				}
				if !r.Mass.Equal(decimal.RequireFromString(wantMass[i])) {
					t.Errorf("result %d mass = %s, want %s", i, r.Mass, wantMass[i])
				}
			}
		})
	}
}

func TestEvaluateBatchAssignsCaseNames(t *testing.T) {
	eval := New()
	cases := []types.LoadCase{
		mustCase(t, "0.3", 1000, types.NormA),
		{Name: "roof", Volume: decimal.RequireFromString("0.4"), Density: decimal.NewFromInt(500), Norm: types.NormB},
	}

	results, err := eval.EvaluateBatch(context.Background(), cases, StrategyLocal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Name != "Case 1" {
		t.Errorf("expected default name 'Case 1', got %q", results[0].Name)
	}
	if results[1].Name != "roof" {
		t.Errorf("expected explicit name to survive, got %q", results[1].Name)
	}
}

func TestEvaluateBatchFailFast(t *testing.T) {
	eval := New()
	cases := []types.LoadCase{
		mustCase(t, "0.3", 1000, types.NormA),
		mustCase(t, "0.3", 1000, types.Norm("X")),
		mustCase(t, "0.3", 1000, types.NormB),
	}

	results, err := eval.EvaluateBatch(context.Background(), cases, StrategyLocal)
	if err == nil {
		t.Fatal("expected batch to fail on invalid case")
	}
	if results != nil {
		t.Errorf("expected no results on failed batch, got %d", len(results))
	}
	if !errors.IsType(err, errors.TypeUnknownNorm) {
		t.Errorf("expected UNKNOWN_NORM, got %v", err)
	}
}

func TestEvaluateBatchExternalFailurePropagates(t *testing.T) {
	serviceErr := errors.ExternalService("sheet evaluation failed", nil)
	eval := New(WithExternal(&fakeCalculator{err: serviceErr}))

	cases := []types.LoadCase{
		mustCase(t, "0.3", 1000, types.NormA),
		mustCase(t, "0.4", 1000, types.NormA),
	}

	_, err := eval.EvaluateBatch(context.Background(), cases, StrategyExternal)
	if err == nil {
		t.Fatal("expected external failure to propagate")
	}
	if !errors.IsType(err, errors.TypeExternalService) {
		t.Errorf("expected EXTERNAL_SERVICE_ERROR, got %v", err)
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{"local", StrategyLocal, false},
		{"external", StrategyExternal, false},
		{"", StrategyLocal, false},
		{"spreadsheet", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseStrategy(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
