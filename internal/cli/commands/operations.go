package commands

import (
	"fmt"

	"github.com/mamaar/complexcalc/internal/cli"
	"github.com/mamaar/complexcalc/pkg/calc"
	"github.com/mamaar/complexcalc/pkg/logging"
)

// OperationInfo describes one supported operation.
type OperationInfo struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

// ListOperations returns the supported operations in display order.
func ListOperations() []OperationInfo {
	var infos []OperationInfo
	for _, t := range calc.OperationTypes() {
		op, err := calc.NewOperation(t, logging.Discard())
		if err != nil {
			continue
		}
		infos = append(infos, OperationInfo{
			Name:        t.Name(),
			Symbol:      t.Symbol(),
			Description: op.Description(),
		})
	}
	return infos
}

// OperationsCommand lists the supported operations
func OperationsCommand(args []string) {
	infos := ListOperations()
	if jsonOutput() {
		OutputJSON(infos)
		return
	}
	fmt.Fprintln(cli.Stdout, "Operations:")
	for _, info := range infos {
		fmt.Fprintf(cli.Stdout, "  %-15s %s  %s\n", info.Name, info.Symbol, info.Description)
	}
}
