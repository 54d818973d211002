package types

// Operation combines two complex operands into a new complex number.
// Implementations must not modify their operands and emit exactly one
// log record per call.
type Operation interface {
	Type() OperationType
	Execute(a, b ComplexNumber) (ComplexNumber, error)
	Description() string
}

type OperationType int

const (
	AdditionOperation OperationType = iota
	MultiplicationOperation
	DivisionOperation
)

// Name returns the canonical lower-case name of the operation type.
func (t OperationType) Name() string {
	switch t {
	case AdditionOperation:
		return "addition"
	case MultiplicationOperation:
		return "multiplication"
	case DivisionOperation:
		return "division"
	default:
		return "unknown"
	}
}

// Symbol returns the infix symbol used when rendering the operation.
func (t OperationType) Symbol() string {
	switch t {
	case AdditionOperation:
		return "+"
	case MultiplicationOperation:
		return "*"
	case DivisionOperation:
		return "/"
	default:
		return "?"
	}
}

// CalculationRequest represents one calculation in a batch
type CalculationRequest struct {
	Operation string        `json:"operation" yaml:"operation"`
	A         ComplexNumber `json:"a" yaml:"a"`
	B         ComplexNumber `json:"b" yaml:"b"`
}

// CalculationResult is the outcome of a single CalculationRequest. Exactly
// one of Result and Error is set.
type CalculationResult struct {
	Request CalculationRequest `json:"request"`
	Result  *ComplexNumber     `json:"result,omitempty"`
	Text    string             `json:"text,omitempty"`
	Error   string             `json:"error,omitempty"`
}

// BatchRequest represents a list of calculations evaluated in order
type BatchRequest struct {
	Calculations []CalculationRequest `json:"calculations" yaml:"calculations"`
	StopOnError  bool                 `json:"stop_on_error" yaml:"stop_on_error"`
}

// BatchReport summarizes the evaluation of a BatchRequest
type BatchReport struct {
	Results   []CalculationResult `json:"results"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
}
