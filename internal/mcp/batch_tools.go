package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/complexcalc/pkg/types"
)

// --- calculate_batch ---

type CalculateBatchInput struct {
	Calculations []types.CalculationRequest `json:"calculations" jsonschema:"calculations evaluated in order"`
	StopOnError  bool                       `json:"stop_on_error,omitempty" jsonschema:"stop at the first failed calculation"`
}

// BatchResult wraps a report with the error that stopped evaluation, if any.
type BatchResult struct {
	Report  *types.BatchReport `json:"report"`
	Stopped string             `json:"stopped,omitempty"`
}

func registerBatchTools(s *mcpsdk.Server, state *MCPServer) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "calculate_batch",
		Description: "Evaluate a list of complex-number calculations in order. Failed calculations are reported per item; with stop_on_error evaluation ends at the first failure.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in CalculateBatchInput) (*mcpsdk.CallToolResult, any, error) {
		report, err := state.EvaluateBatch(&types.BatchRequest{
			Calculations: in.Calculations,
			StopOnError:  in.StopOnError,
		})
		if report == nil {
			return errResult(err), nil, nil
		}
		result := BatchResult{Report: report}
		if err != nil {
			result.Stopped = err.Error()
		}
		return textResult(result), nil, nil
	})
}
