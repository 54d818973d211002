// Package calc implements the complex-number operations and the Calculator
// that dispatches to them.
package calc

import (
	"fmt"
	"log/slog"

	"github.com/mamaar/complexcalc/pkg/logging"
	"github.com/mamaar/complexcalc/pkg/types"
)

// Addition adds two complex numbers component-wise.
type Addition struct {
	logger *slog.Logger
}

// NewAddition creates an Addition that reports each call to logger.
func NewAddition(logger *slog.Logger) *Addition {
	return &Addition{logger: logging.OrDiscard(logger)}
}

func (op *Addition) Type() types.OperationType { return types.AdditionOperation }

func (op *Addition) Description() string { return "Add two complex numbers" }

func (op *Addition) Execute(a, b types.ComplexNumber) (types.ComplexNumber, error) {
	result := types.NewComplexNumber(a.Real+b.Real, a.Imag+b.Imag)
	logResult(op.logger, op.Type(), a, b, result)
	return result, nil
}

// Multiplication computes the standard complex product.
type Multiplication struct {
	logger *slog.Logger
}

// NewMultiplication creates a Multiplication that reports each call to logger.
func NewMultiplication(logger *slog.Logger) *Multiplication {
	return &Multiplication{logger: logging.OrDiscard(logger)}
}

func (op *Multiplication) Type() types.OperationType { return types.MultiplicationOperation }

func (op *Multiplication) Description() string { return "Multiply two complex numbers" }

func (op *Multiplication) Execute(a, b types.ComplexNumber) (types.ComplexNumber, error) {
	real := a.Real*b.Real - a.Imag*b.Imag
	imag := a.Real*b.Imag + a.Imag*b.Real
	result := types.NewComplexNumber(real, imag)
	logResult(op.logger, op.Type(), a, b, result)
	return result, nil
}

// Division divides a by b. It fails with a DivisionByZero error only when
// both components of b are exactly zero.
type Division struct {
	logger *slog.Logger
}

// NewDivision creates a Division that reports each call to logger.
func NewDivision(logger *slog.Logger) *Division {
	return &Division{logger: logging.OrDiscard(logger)}
}

func (op *Division) Type() types.OperationType { return types.DivisionOperation }

func (op *Division) Description() string { return "Divide the first complex number by the second" }

func (op *Division) Execute(a, b types.ComplexNumber) (types.ComplexNumber, error) {
	if b.Real == 0 && b.Imag == 0 {
		op.logger.Error("Division by zero!")
		return types.ComplexNumber{}, &types.CalcError{
			Type:      types.DivisionByZero,
			Message:   "division by zero",
			Operation: op.Type().Name(),
		}
	}
	denominator := b.Real*b.Real + b.Imag*b.Imag
	real := (a.Real*b.Real + a.Imag*b.Imag) / denominator
	imag := (a.Imag*b.Real - a.Real*b.Imag) / denominator
	result := types.NewComplexNumber(real, imag)
	logResult(op.logger, op.Type(), a, b, result)
	return result, nil
}

// logResult writes the single INFO record describing a successful call.
func logResult(logger *slog.Logger, t types.OperationType, a, b, result types.ComplexNumber) {
	logger.Info(fmt.Sprintf("%s: %s %s %s = %s", DisplayName(t), a, t.Symbol(), b, result))
}
