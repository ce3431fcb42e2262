package evaluator

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"unity-check/core/types"
	"unity-check/internal/errors"
	"unity-check/internal/logging"
)

// Evaluator runs unity checks over load cases.
// It is stateless apart from its injected calculators and is safe for
// concurrent use.
type Evaluator struct {
	local         MassCalculator
	external      MassCalculator
	maxConcurrent int
}

// Option configures an Evaluator
type Option func(*Evaluator)

// WithExternal injects the external mass-computation path
func WithExternal(calc MassCalculator) Option {
	return func(e *Evaluator) {
		e.external = calc
	}
}

// WithLocal overrides the local mass-computation path
func WithLocal(calc MassCalculator) Option {
	return func(e *Evaluator) {
		e.local = calc
	}
}

// WithMaxConcurrent bounds concurrent external calls per batch
func WithMaxConcurrent(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.maxConcurrent = n
		}
	}
}

// New creates an evaluator with the local path wired by default
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		local:         LocalCalculator{},
		maxConcurrent: 4,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// calculator resolves the strategy to a mass calculator
func (e *Evaluator) calculator(strategy Strategy) (MassCalculator, error) {
	switch strategy {
	case StrategyLocal, "":
		return e.local, nil
	case StrategyExternal:
		if e.external == nil {
			return nil, errors.ExternalService("spreadsheet service not configured", nil)
		}
		return e.external, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown strategy: %q", strategy)
	}
}

// EvaluateCase runs the unity check for a single load case
func (e *Evaluator) EvaluateCase(ctx context.Context, c types.LoadCase, strategy Strategy) (*types.EvaluationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	calc, err := e.calculator(strategy)
	if err != nil {
		return nil, err
	}

	mass, err := calc.Mass(ctx, c.Volume, c.Density)
	if err != nil {
		return nil, err
	}

	maxMass, err := c.Norm.MaxMass()
	if err != nil {
		return nil, err
	}

	// maxMass is one of three fixed positive constants, never zero
	utilization := mass.Div(maxMass).Mul(decimal.NewFromInt(100))

	return &types.EvaluationResult{
		Name:               c.Name,
		Case:               c,
		Mass:               mass,
		MaxMass:            maxMass,
		UtilizationPercent: utilization,
		Status:             types.ClassifyUtilization(utilization),
	}, nil
}

// EvaluateBatch runs the unity check for an ordered sequence of load cases.
// Results preserve input order. The batch fails as a whole on the first
// case error; an empty batch is rejected.
func (e *Evaluator) EvaluateBatch(ctx context.Context, cases []types.LoadCase, strategy Strategy) ([]*types.EvaluationResult, error) {
	if len(cases) == 0 {
		return nil, errors.EmptyBatch()
	}

	logging.Debug("evaluating batch",
		zap.Int("cases", len(cases)),
		zap.String("strategy", string(strategy)))

	if strategy == StrategyExternal {
		return e.evaluateConcurrent(ctx, cases, strategy)
	}

	results := make([]*types.EvaluationResult, len(cases))
	for i, c := range cases {
		result, err := e.EvaluateCase(ctx, withDefaultName(c, i), strategy)
		if err != nil {
			return nil, err
		}
		results[i] = result
	}
	return results, nil
}

// evaluateConcurrent evaluates cases in parallel for the external path.
// Cases are mutually independent; results are reassembled in input order.
func (e *Evaluator) evaluateConcurrent(ctx context.Context, cases []types.LoadCase, strategy Strategy) ([]*types.EvaluationResult, error) {
	results := make([]*types.EvaluationResult, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxConcurrent)

	for i, c := range cases {
		g.Go(func() error {
			result, err := e.EvaluateCase(ctx, withDefaultName(c, i), strategy)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func withDefaultName(c types.LoadCase, index int) types.LoadCase {
	if c.Name == "" {
		c.Name = fmt.Sprintf("Case %d", index+1)
	}
	return c
}
