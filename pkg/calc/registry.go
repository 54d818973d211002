package calc

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mamaar/complexcalc/pkg/types"
)

var aliases = map[string]types.OperationType{
	"add":            types.AdditionOperation,
	"addition":       types.AdditionOperation,
	"+":              types.AdditionOperation,
	"mul":            types.MultiplicationOperation,
	"multiply":       types.MultiplicationOperation,
	"multiplication": types.MultiplicationOperation,
	"*":              types.MultiplicationOperation,
	"x":              types.MultiplicationOperation,
	"div":            types.DivisionOperation,
	"divide":         types.DivisionOperation,
	"division":       types.DivisionOperation,
	"/":              types.DivisionOperation,
}

// OperationTypes lists every supported operation in a stable order.
func OperationTypes() []types.OperationType {
	return []types.OperationType{
		types.AdditionOperation,
		types.MultiplicationOperation,
		types.DivisionOperation,
	}
}

// OperationNames returns the canonical names of OperationTypes.
func OperationNames() []string {
	ops := OperationTypes()
	names := make([]string, len(ops))
	for i, t := range ops {
		names[i] = t.Name()
	}
	return names
}

// DisplayName returns the title-cased name used in log and CLI output,
// e.g. "Addition".
func DisplayName(t types.OperationType) string {
	return cases.Title(language.English).String(t.Name())
}

// ParseOperationType resolves a name, short name or symbol to an
// OperationType. Matching is case-insensitive.
func ParseOperationType(name string) (types.OperationType, error) {
	t, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, &types.CalcError{
			Type: types.UnknownOperation,
			Message: fmt.Sprintf("unknown operation %q (expected one of %s)",
				name, strings.Join(OperationNames(), ", ")),
		}
	}
	return t, nil
}

// NewOperation creates the operation variant for t.
func NewOperation(t types.OperationType, logger *slog.Logger) (types.Operation, error) {
	switch t {
	case types.AdditionOperation:
		return NewAddition(logger), nil
	case types.MultiplicationOperation:
		return NewMultiplication(logger), nil
	case types.DivisionOperation:
		return NewDivision(logger), nil
	default:
		return nil, &types.CalcError{
			Type:    types.UnknownOperation,
			Message: fmt.Sprintf("unsupported operation type %d", int(t)),
		}
	}
}

// Lookup resolves name and creates the matching operation.
func Lookup(name string, logger *slog.Logger) (types.Operation, error) {
	t, err := ParseOperationType(name)
	if err != nil {
		return nil, err
	}
	return NewOperation(t, logger)
}
