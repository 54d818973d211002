package types

import (
	"testing"
)

func TestOperationType(t *testing.T) {
	testCases := []struct {
		name     string
		opType   OperationType
		expected OperationType
		symbol   string
	}{
		{"addition", AdditionOperation, 0, "+"},
		{"multiplication", MultiplicationOperation, 1, "*"},
		{"division", DivisionOperation, 2, "/"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.opType != tc.expected {
				t.Errorf("Expected %s to be %d, got %d", tc.name, tc.expected, tc.opType)
			}
			if tc.opType.Name() != tc.name {
				t.Errorf("Expected name %s, got %s", tc.name, tc.opType.Name())
			}
			if tc.opType.Symbol() != tc.symbol {
				t.Errorf("Expected symbol %s, got %s", tc.symbol, tc.opType.Symbol())
			}
		})
	}
}

func TestOperationType_Unknown(t *testing.T) {
	unknown := OperationType(42)
	if unknown.Name() != "unknown" {
		t.Errorf("Expected 'unknown', got %s", unknown.Name())
	}
	if unknown.Symbol() != "?" {
		t.Errorf("Expected '?', got %s", unknown.Symbol())
	}
}
