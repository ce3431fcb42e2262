// Package cmd - evaluate command
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"unity-check/adapters/casefile"
	"unity-check/adapters/spreadsheet"
	"unity-check/core/evaluator"
	"unity-check/core/output"
	"unity-check/internal/config"
	"unity-check/internal/logging"
)

var (
	outputFormat string
	strategyName string
	showDetails  bool
	showChart    bool
	noColor      bool
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate <case-file>",
	Short: "Evaluate load cases from a case file",
	Long: `Evaluate a batch of load cases and classify each case's utilization.

The case file is either HCL (one "case" block per load case) or JSON
(a document with a "cases" array).

Examples:
  unity-check evaluate cases.hcl
  unity-check evaluate --format json cases.json
  unity-check evaluate --strategy external cases.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	evaluateCmd.Flags().StringVarP(&strategyName, "strategy", "s", "", "mass computation strategy (local, external)")
	evaluateCmd.Flags().BoolVarP(&showDetails, "details", "d", true, "show per-case breakdown")
	evaluateCmd.Flags().BoolVar(&showChart, "chart", true, "show utilization bar chart")
	evaluateCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	start := time.Now()
	cfg := config.Get()

	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("case file does not exist: %s", path)
	}

	cases, err := casefile.Load(path)
	if err != nil {
		return err
	}

	if strategyName == "" {
		strategyName = cfg.Evaluator.DefaultStrategy
	}
	strategy, err := evaluator.ParseStrategy(strategyName)
	if err != nil {
		return err
	}

	eval := newEvaluator(cfg)

	logging.Info("starting evaluation")
	results, err := eval.EvaluateBatch(ctx, cases, strategy)
	if err != nil {
		return err
	}

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	formatter, err := output.NewFormatter(format, showDetails, showChart, noColor)
	if err != nil {
		return err
	}

	report := output.NewReport(results, string(strategy), Version, time.Since(start))
	return formatter.Render(os.Stdout, report)
}

// newEvaluator wires the evaluator from configuration
func newEvaluator(cfg *config.Config) *evaluator.Evaluator {
	opts := []evaluator.Option{
		evaluator.WithMaxConcurrent(cfg.Evaluator.MaxConcurrent),
	}
	if cfg.Spreadsheet.URL != "" {
		client := spreadsheet.NewClient(cfg.Spreadsheet.URL,
			spreadsheet.WithTimeout(time.Duration(cfg.Spreadsheet.TimeoutSeconds)*time.Second))
		opts = append(opts, evaluator.WithExternal(client))
	}
	return evaluator.New(opts...)
}
