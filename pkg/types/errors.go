package types

import "fmt"

// CalcError represents errors raised by calculations and their drivers
type CalcError struct {
	Type      ErrorType
	Message   string
	Operation string
	Cause     error
}

func (e *CalcError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("%s: %s", e.Operation, e.Message)
	}
	return e.Message
}

func (e *CalcError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a CalcError of the same type, so callers can
// match with errors.Is(err, ErrDivisionByZero).
func (e *CalcError) Is(target error) bool {
	t, ok := target.(*CalcError)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

type ErrorType int

const (
	DivisionByZero ErrorType = iota
	ParseError
	UnknownOperation
	InvalidBatch
)

func (t ErrorType) String() string {
	switch t {
	case DivisionByZero:
		return "division_by_zero"
	case ParseError:
		return "parse_error"
	case UnknownOperation:
		return "unknown_operation"
	case InvalidBatch:
		return "invalid_batch"
	default:
		return fmt.Sprintf("error_type(%d)", int(t))
	}
}

// ErrDivisionByZero is returned when the divisor is exactly (0 + 0i).
var ErrDivisionByZero = &CalcError{Type: DivisionByZero, Message: "division by zero"}
