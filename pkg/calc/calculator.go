package calc

import "github.com/mamaar/complexcalc/pkg/types"

// Calculator applies its selected operation to pairs of operands.
type Calculator struct {
	operation types.Operation
}

// NewCalculator creates a Calculator bound to operation.
func NewCalculator(operation types.Operation) *Calculator {
	return &Calculator{operation: operation}
}

// Calculate delegates to the selected operation and returns its result
// and error unchanged.
func (c *Calculator) Calculate(a, b types.ComplexNumber) (types.ComplexNumber, error) {
	return c.operation.Execute(a, b)
}

// Operation returns the selected operation.
func (c *Calculator) Operation() types.Operation {
	return c.operation
}

// SetOperation replaces the selected operation.
func (c *Calculator) SetOperation(operation types.Operation) {
	c.operation = operation
}
