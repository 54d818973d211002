package commands

import (
	"fmt"

	"github.com/mamaar/complexcalc/internal/cli"
)

var commandHelp = map[string]string{
	"add": `Add Command - Add two complex numbers

Usage: complexcalc add <a> <b>

Computes (a.real + b.real) + (a.imag + b.imag)i.

Examples:
  complexcalc add 4+3i 2-1i
  complexcalc --json add 4,3 2,-1`,

	"mul": `Mul Command - Multiply two complex numbers

Usage: complexcalc mul <a> <b>

Computes (a.real*b.real - a.imag*b.imag) + (a.real*b.imag + a.imag*b.real)i.

Examples:
  complexcalc mul 4+3i 2-1i
  complexcalc mul i i`,

	"div": `Div Command - Divide two complex numbers

Usage: complexcalc div <a> <b>

Divides a by b. Fails with "division by zero" when both components of b
are exactly zero; a divisor such as 0+5i is valid.

Examples:
  complexcalc div 4+3i 2-1i
  complexcalc div 1 5i`,

	"calc": `Calc Command - Apply a named operation

Usage: complexcalc calc <operation> <a> <b>

Operation names: addition (add, +), multiplication (mul, multiply, *, x),
division (div, divide, /).

Examples:
  complexcalc calc + 1,1 2,2
  complexcalc calc division 4+3i 2-1i`,

	"batch": `Batch Command - Evaluate a batch file

Usage: complexcalc [--stop-on-error] [--json] batch <file>

The file is JSON (.json) or YAML (.yaml, .yml):

  stop_on_error: false
  calculations:
    - operation: add
      a: {real: 4, imag: 3}
      b: {real: 2, imag: -1}

Each failed calculation is reported; the command exits with status 1 if
any calculation failed.`,

	"watch": `Watch Command - Re-evaluate a batch file on change

Usage: complexcalc [--debounce 200ms] watch <file>

Evaluates the file, then watches it and evaluates it again after every
change until interrupted.`,

	"operations": `Operations Command - List supported operations

Usage: complexcalc [--json] operations`,

	"demo": `Demo Command - Run the reference example

Usage: complexcalc demo

Adds, multiplies and divides (4 + 3i) and (2 + -1i).`,
}

// HelpCommand handles help requests for specific commands
func HelpCommand(args []string) {
	if len(args) == 0 {
		cli.Usage()
		return
	}
	text, ok := commandHelp[args[0]]
	if !ok {
		fmt.Fprintf(cli.Stderr, "No help available for command: %s\n", args[0])
		cli.Usage()
		return
	}
	fmt.Fprintln(cli.Stdout, text)
}
