package commands

import (
	"fmt"

	"github.com/mamaar/complexcalc/internal/cli"
	"github.com/mamaar/complexcalc/pkg/calc"
	"github.com/mamaar/complexcalc/pkg/types"
)

// DemoCommand runs the reference example: (4 + 3i) and (2 + -1i) through
// addition, multiplication and division
func DemoCommand(args []string) {
	exitOnError(runDemo())
}

func runDemo() error {
	num1 := types.NewComplexNumber(4, 3)
	num2 := types.NewComplexNumber(2, -1)
	logger := cli.NewLogger()

	calculator := calc.NewCalculator(calc.NewAddition(logger))
	for _, op := range []types.Operation{
		calc.NewAddition(logger),
		calc.NewMultiplication(logger),
		calc.NewDivision(logger),
	} {
		calculator.SetOperation(op)
		result, err := calculator.Calculate(num1, num2)
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.Stdout, "%s: %s\n", calc.DisplayName(op.Type()), result)
	}
	return nil
}
