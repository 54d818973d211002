package cli

import (
	"flag"
	"fmt"
)

// Usage prints the usage information for the complexcalc command
func Usage() {
	fmt.Fprintf(Stderr, `complexcalc - Complex number calculator

Usage: complexcalc [options] <command> [arguments]

Calculations:
  add <a> <b>
    Add two complex numbers

  mul <a> <b>
    Multiply two complex numbers

  div <a> <b>
    Divide a by b (fails when b is exactly 0 + 0i)

  calc <operation> <a> <b>
    Apply the named operation (addition, multiplication, division or + * /)

Batch Files:
  batch <file>
    Evaluate every calculation in a .json, .yaml or .yml batch file

  watch <file>
    Evaluate a batch file and re-evaluate it whenever it changes

General:
  operations
    List the supported operations

  demo
    Run (4 + 3i) and (2 - 1i) through every operation

  help [command]
    Show help for a specific command

  version
    Show version information

Operands:
  Complex numbers are written as "re,im", "a+bi", "a-bi", "a", "bi" or "i".

Options:
`)
	flag.PrintDefaults()
	fmt.Fprintf(Stderr, `
Examples:
  # Multiply (4 + 3i) by (2 - 1i)
  complexcalc mul 4+3i 2-1i

  # Divide using comma notation and print JSON
  complexcalc --json div 4,3 2,-1

  # Evaluate a batch file, stopping at the first failure
  complexcalc --stop-on-error batch calculations.yaml

  # Keep re-evaluating a batch file while editing it
  complexcalc watch calculations.yaml
`)
}
