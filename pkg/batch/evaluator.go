package batch

import (
	"fmt"
	"log/slog"

	"github.com/mamaar/complexcalc/pkg/calc"
	"github.com/mamaar/complexcalc/pkg/logging"
	"github.com/mamaar/complexcalc/pkg/types"
)

// Evaluator runs batch requests. Operations share the evaluator's logger,
// so every calculation contributes one line to it.
type Evaluator struct {
	logger *slog.Logger
}

// NewEvaluator creates an Evaluator logging to logger.
func NewEvaluator(logger *slog.Logger) *Evaluator {
	return &Evaluator{logger: logging.OrDiscard(logger)}
}

// Validate checks that req is non-empty and names only known operations.
func (e *Evaluator) Validate(req *types.BatchRequest) error {
	if req == nil || len(req.Calculations) == 0 {
		return &types.CalcError{
			Type:    types.InvalidBatch,
			Message: "batch must contain at least one calculation",
		}
	}
	for i, c := range req.Calculations {
		if _, err := calc.ParseOperationType(c.Operation); err != nil {
			return &types.CalcError{
				Type:    types.InvalidBatch,
				Message: fmt.Sprintf("calculation %d: %v", i, err),
				Cause:   err,
			}
		}
	}
	return nil
}

// Evaluate validates req and evaluates each calculation in order. Failed
// calculations are recorded in the report. With StopOnError the first
// failure ends evaluation and is returned together with the partial report.
func (e *Evaluator) Evaluate(req *types.BatchRequest) (*types.BatchReport, error) {
	if err := e.Validate(req); err != nil {
		return nil, err
	}

	report := &types.BatchReport{
		Results: make([]types.CalculationResult, 0, len(req.Calculations)),
	}
	calculator := calc.NewCalculator(nil)
	for i, c := range req.Calculations {
		op, err := calc.Lookup(c.Operation, e.logger)
		if err != nil {
			return report, err
		}
		calculator.SetOperation(op)

		result := types.CalculationResult{Request: c}
		value, err := calculator.Calculate(c.A, c.B)
		if err != nil {
			result.Error = err.Error()
			report.Results = append(report.Results, result)
			report.Failed++
			if req.StopOnError {
				return report, fmt.Errorf("calculation %d failed: %w", i, err)
			}
			continue
		}
		result.Result = &value
		result.Text = value.String()
		report.Results = append(report.Results, result)
		report.Succeeded++
	}

	e.logger.Debug("batch evaluated", "succeeded", report.Succeeded, "failed", report.Failed)
	return report, nil
}

// EvaluateFile loads path and evaluates it.
func (e *Evaluator) EvaluateFile(path string) (*types.BatchReport, error) {
	req, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return e.Evaluate(req)
}
