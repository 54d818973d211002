package calc

import (
	"errors"
	"testing"

	"github.com/mamaar/complexcalc/pkg/types"
)

func TestParseOperationType(t *testing.T) {
	testCases := []struct {
		input    string
		expected types.OperationType
	}{
		{"add", types.AdditionOperation},
		{"Addition", types.AdditionOperation},
		{"+", types.AdditionOperation},
		{" MUL ", types.MultiplicationOperation},
		{"multiply", types.MultiplicationOperation},
		{"*", types.MultiplicationOperation},
		{"x", types.MultiplicationOperation},
		{"div", types.DivisionOperation},
		{"divide", types.DivisionOperation},
		{"/", types.DivisionOperation},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseOperationType(tc.input)
			if err != nil {
				t.Fatalf("ParseOperationType(%q): %v", tc.input, err)
			}
			if got != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected.Name(), got.Name())
			}
		})
	}
}

func TestParseOperationType_Unknown(t *testing.T) {
	_, err := ParseOperationType("modulo")
	var calcErr *types.CalcError
	if !errors.As(err, &calcErr) || calcErr.Type != types.UnknownOperation {
		t.Fatalf("Expected UnknownOperation error, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	op, err := Lookup("div", nil)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if _, ok := op.(*Division); !ok {
		t.Errorf("Expected *Division, got %T", op)
	}
}

func TestNewOperation_Unsupported(t *testing.T) {
	if _, err := NewOperation(types.OperationType(42), nil); err == nil {
		t.Error("Expected error for unsupported operation type")
	}
}

func TestDisplayName(t *testing.T) {
	expected := []string{"Addition", "Multiplication", "Division"}
	for i, op := range OperationTypes() {
		if got := DisplayName(op); got != expected[i] {
			t.Errorf("Expected %s, got %s", expected[i], got)
		}
	}
}

func TestOperationNames(t *testing.T) {
	names := OperationNames()
	if len(names) != 3 || names[0] != "addition" || names[1] != "multiplication" || names[2] != "division" {
		t.Errorf("Unexpected names: %v", names)
	}
}
