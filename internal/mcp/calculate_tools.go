package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/complexcalc/pkg/calc"
	"github.com/mamaar/complexcalc/pkg/logging"
	"github.com/mamaar/complexcalc/pkg/types"
)

// --- calculate ---

type CalculateInput struct {
	Operation string              `json:"operation" jsonschema:"operation name or symbol: addition (add, +), multiplication (mul, *), division (div, /)"`
	A         types.ComplexNumber `json:"a" jsonschema:"first operand"`
	B         types.ComplexNumber `json:"b" jsonschema:"second operand"`
}

// --- list_operations ---

type ListOperationsInput struct{}

type operationInfo struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

func registerCalculateTools(s *mcpsdk.Server, state *MCPServer) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "calculate",
		Description: "Apply addition, multiplication or division to two complex numbers. Division fails when the divisor is exactly 0 + 0i.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in CalculateInput) (*mcpsdk.CallToolResult, any, error) {
		entry, err := state.Calculate(in.Operation, in.A, in.B)
		if err != nil {
			return errResult(err), nil, nil
		}
		return textResult(entry), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "list_operations",
		Description: "List the supported complex-number operations with their symbols.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in ListOperationsInput) (*mcpsdk.CallToolResult, any, error) {
		var infos []operationInfo
		for _, t := range calc.OperationTypes() {
			op, err := calc.NewOperation(t, logging.Discard())
			if err != nil {
				return errResult(err), nil, nil
			}
			infos = append(infos, operationInfo{
				Name:        t.Name(),
				Symbol:      t.Symbol(),
				Description: op.Description(),
			})
		}
		return textResult(AnalysisResult{
			Description: "supported operations",
			Data:        infos,
		}), nil, nil
	})
}
