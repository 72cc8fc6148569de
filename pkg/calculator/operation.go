package calculator

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Operation identifies one of the arithmetic operations.
type Operation int

const (
	OpAdd Operation = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
	OpFactorial
)

var operationNames = map[Operation]string{
	OpAdd:       "add",
	OpSubtract:  "subtract",
	OpMultiply:  "multiply",
	OpDivide:    "divide",
	OpFactorial: "factorial",
}

var operationAliases = map[string]Operation{
	"add":       OpAdd,
	"+":         OpAdd,
	"subtract":  OpSubtract,
	"sub":       OpSubtract,
	"-":         OpSubtract,
	"multiply":  OpMultiply,
	"mul":       OpMultiply,
	"*":         OpMultiply,
	"x":         OpMultiply,
	"divide":    OpDivide,
	"div":       OpDivide,
	"/":         OpDivide,
	"factorial": OpFactorial,
	"fact":      OpFactorial,
	"!":         OpFactorial,
}

// ParseOperation resolves an operation by name or symbol, case-insensitively.
func ParseOperation(s string) (Operation, error) {
	op, ok := operationAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, errors.Join(ErrUnknownOperation, fmt.Errorf("operation %q", s))
	}
	return op, nil
}

func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Operation(%d)", int(op))
}

// Arity returns the number of operands the operation takes, or 0 for an unknown operation.
func (op Operation) Arity() int {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return 2
	case OpFactorial:
		return 1
	default:
		return 0
	}
}

// Evaluate applies op to operands.
// Factorial operands must hold an integral value.
func Evaluate(op Operation, operands ...float64) (float64, error) {
	arity := op.Arity()
	if arity == 0 {
		return 0, errors.Join(ErrUnknownOperation, fmt.Errorf("operation %s", op))
	}
	if len(operands) != arity {
		return 0, errors.Join(ErrOperandCount, fmt.Errorf("%s expects %d, got %d", op, arity, len(operands)))
	}

	switch op {
	case OpAdd:
		return Add(operands[0], operands[1]), nil
	case OpSubtract:
		return Subtract(operands[0], operands[1]), nil
	case OpMultiply:
		return Multiply(operands[0], operands[1]), nil
	case OpDivide:
		return Divide(operands[0], operands[1])
	default:
		n := operands[0]
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, errors.Join(ErrNonIntegerOperand, fmt.Errorf("factorial of %v", n))
		}
		if n < 0 {
			return 0, ErrNegativeFactorial
		}
		// Beyond 170 the result is +Inf anyway; clamp so the int conversion stays defined.
		return Factorial(int(math.Min(n, 171)))
	}
}
