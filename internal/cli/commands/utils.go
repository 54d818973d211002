package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mamaar/complexcalc/internal/cli"
	"github.com/mamaar/complexcalc/pkg/types"
)

// OutputJSON writes data as indented JSON to stdout
func OutputJSON(data interface{}) {
	encoder := json.NewEncoder(cli.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(cli.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

// exitOnError reports err and terminates the process with status 1.
func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(cli.Stderr, "Error: %s\n", describeError(err))
	os.Exit(1)
}

// describeError renders err for terminal output. Calculation errors are
// shown by their message alone.
func describeError(err error) string {
	var calcErr *types.CalcError
	if errors.As(err, &calcErr) && calcErr.Type == types.DivisionByZero {
		return calcErr.Message
	}
	return err.Error()
}

func jsonOutput() bool {
	return cli.GlobalFlags != nil && *cli.GlobalFlags.Json
}

func stopOnError() bool {
	return cli.GlobalFlags != nil && *cli.GlobalFlags.StopOnError
}
