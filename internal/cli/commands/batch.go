package commands

import (
	"fmt"

	"github.com/mamaar/complexcalc/internal/cli"
	"github.com/mamaar/complexcalc/pkg/batch"
	"github.com/mamaar/complexcalc/pkg/types"
)

// BatchCommand evaluates every calculation in a batch file
func BatchCommand(args []string) {
	if len(args) != 1 {
		exitOnError(fmt.Errorf("batch requires 1 argument: <file>"))
	}
	report, err := runBatch(args[0])
	if report != nil {
		printReport(args[0], report)
	}
	exitOnError(err)
	if report.Failed > 0 {
		exitOnError(fmt.Errorf("%d of %d calculations failed", report.Failed, len(report.Results)))
	}
}

func runBatch(path string) (*types.BatchReport, error) {
	req, err := batch.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if stopOnError() {
		req.StopOnError = true
	}
	return batch.NewEvaluator(cli.NewLogger()).Evaluate(req)
}

// printReport writes a report as JSON or as one line per calculation.
func printReport(path string, report *types.BatchReport) {
	if jsonOutput() {
		OutputJSON(report)
		return
	}

	fmt.Fprintf(cli.Stdout, "Batch: %s\n", path)
	for i, r := range report.Results {
		lhs := fmt.Sprintf("%s %s %s", r.Request.A, r.Request.Operation, r.Request.B)
		if r.Error != "" {
			fmt.Fprintf(cli.Stdout, "  %d. %s -> ERROR: %s\n", i+1, lhs, r.Error)
			continue
		}
		fmt.Fprintf(cli.Stdout, "  %d. %s = %s\n", i+1, lhs, r.Text)
	}
	fmt.Fprintf(cli.Stdout, "Succeeded: %d, Failed: %d\n", report.Succeeded, report.Failed)
}
