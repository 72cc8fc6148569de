package calculator

import "errors"

var (
	// ErrDivisionByZero is returned by Divide when the divisor is exactly zero.
	ErrDivisionByZero = errors.New("division by zero not allowed")

	// ErrNegativeFactorial is returned by Factorial for n < 0.
	ErrNegativeFactorial = errors.New("factorial not defined for negative numbers")

	// ErrUnknownOperation is returned when an operation name cannot be resolved.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrOperandCount is returned when an operation receives the wrong number of operands.
	ErrOperandCount = errors.New("wrong number of operands")

	// ErrNonIntegerOperand is returned when factorial is evaluated with a fractional operand.
	ErrNonIntegerOperand = errors.New("operand must be an integer")
)
