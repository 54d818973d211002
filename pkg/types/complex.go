package types

import (
	"fmt"
	"strconv"
	"strings"
)

// ComplexNumber is an immutable complex value. Operations never modify
// their operands; they return a new ComplexNumber.
type ComplexNumber struct {
	Real float64 `json:"real" yaml:"real" jsonschema:"real component"`
	Imag float64 `json:"imag" yaml:"imag" jsonschema:"imaginary component"`
}

// NewComplexNumber creates a complex number from its two components.
func NewComplexNumber(real, imag float64) ComplexNumber {
	return ComplexNumber{Real: real, Imag: imag}
}

// String renders the number as "(<real> + <imag>i)" using the shortest
// decimal representation of each component.
func (c ComplexNumber) String() string {
	return "(" + formatFloat(c.Real) + " + " + formatFloat(c.Imag) + "i)"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// signFolder collapses doubled signs so rendered values such as
// "(2 + -1i)" parse back.
var signFolder = strings.NewReplacer("+-", "-", "-+", "-", "--", "+")

// ParseComplexNumber parses an operand written as "re,im", "a+bi", "a-bi",
// "a", "bi", "i" or "-i". Whitespace and enclosing parentheses are ignored.
func ParseComplexNumber(s string) (ComplexNumber, error) {
	text := signFolder.Replace(strings.Join(strings.Fields(s), ""))
	text = strings.TrimSuffix(strings.TrimPrefix(text, "("), ")")
	if text == "" {
		return ComplexNumber{}, parseError(s, nil)
	}

	if re, im, ok := strings.Cut(text, ","); ok {
		r, err := strconv.ParseFloat(re, 64)
		if err != nil {
			return ComplexNumber{}, parseError(s, err)
		}
		i, err := strconv.ParseFloat(im, 64)
		if err != nil {
			return ComplexNumber{}, parseError(s, err)
		}
		return NewComplexNumber(r, i), nil
	}

	if !strings.HasSuffix(text, "i") {
		r, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return ComplexNumber{}, parseError(s, err)
		}
		return NewComplexNumber(r, 0), nil
	}

	body := strings.TrimSuffix(text, "i")
	split := imagSplit(body)
	realPart, imagPart := body[:split], body[split:]

	var r float64
	if realPart != "" {
		v, err := strconv.ParseFloat(realPart, 64)
		if err != nil {
			return ComplexNumber{}, parseError(s, err)
		}
		r = v
	}

	var i float64
	switch imagPart {
	case "", "+":
		i = 1
	case "-":
		i = -1
	default:
		v, err := strconv.ParseFloat(imagPart, 64)
		if err != nil {
			return ComplexNumber{}, parseError(s, err)
		}
		i = v
	}
	return NewComplexNumber(r, i), nil
}

// imagSplit returns the index where the imaginary coefficient starts: the
// last sign that is not the leading sign and not part of an exponent.
func imagSplit(body string) int {
	for idx := len(body) - 1; idx > 0; idx-- {
		if body[idx] != '+' && body[idx] != '-' {
			continue
		}
		prev := body[idx-1]
		if prev == 'e' || prev == 'E' {
			continue
		}
		return idx
	}
	return 0
}

func parseError(input string, cause error) error {
	return &CalcError{
		Type:    ParseError,
		Message: fmt.Sprintf("invalid complex number %q", input),
		Cause:   cause,
	}
}
