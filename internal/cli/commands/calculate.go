package commands

import (
	"fmt"

	"github.com/mamaar/complexcalc/internal/cli"
	"github.com/mamaar/complexcalc/pkg/calc"
	"github.com/mamaar/complexcalc/pkg/types"
)

// CalculationOutput is the JSON form of a single calculation.
type CalculationOutput struct {
	Operation string              `json:"operation"`
	A         types.ComplexNumber `json:"a"`
	B         types.ComplexNumber `json:"b"`
	Result    types.ComplexNumber `json:"result"`
	Text      string              `json:"text"`
}

// AddCommand adds two complex numbers
func AddCommand(args []string) { exitOnError(runOperation("addition", args)) }

// MulCommand multiplies two complex numbers
func MulCommand(args []string) { exitOnError(runOperation("multiplication", args)) }

// DivCommand divides two complex numbers
func DivCommand(args []string) { exitOnError(runOperation("division", args)) }

// CalcCommand applies an operation given by name or symbol
func CalcCommand(args []string) {
	if len(args) != 3 {
		exitOnError(fmt.Errorf("calc requires 3 arguments: <operation> <a> <b>"))
	}
	exitOnError(runOperation(args[0], args[1:]))
}

func runOperation(name string, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%s requires 2 arguments: <a> <b>", name)
	}
	a, err := types.ParseComplexNumber(args[0])
	if err != nil {
		return err
	}
	b, err := types.ParseComplexNumber(args[1])
	if err != nil {
		return err
	}

	op, err := calc.Lookup(name, cli.NewLogger())
	if err != nil {
		return err
	}
	result, err := calc.NewCalculator(op).Calculate(a, b)
	if err != nil {
		return err
	}

	if jsonOutput() {
		OutputJSON(CalculationOutput{
			Operation: op.Type().Name(),
			A:         a,
			B:         b,
			Result:    result,
			Text:      result.String(),
		})
		return nil
	}
	fmt.Fprintf(cli.Stdout, "%s: %s\n", calc.DisplayName(op.Type()), result)
	return nil
}
