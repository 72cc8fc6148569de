// Package calculator provides the basic arithmetic operations used across
// calckit: addition, subtraction, multiplication, division and factorial.
//
// Every function is pure. Operands are float64 so division may yield a
// fractional result. The only failure cases are a zero divisor and a negative
// factorial argument, both reported as sentinel errors:
//
//	q, err := calculator.Divide(10, 0)
//	if errors.Is(err, calculator.ErrDivisionByZero) {
//	    // handle
//	}
//
// # Factorial precision
//
// Factorial is computed iteratively in float64. Results are exact up to and
// including 22!, rounded to the nearest representable value from 23! on, and
// +Inf from 171! on. No upper bound on n is enforced.
//
// # Dispatch
//
// Operation, ParseOperation and Evaluate let callers select an operation by
// name or symbol at runtime, which is how the calckit CLI and batch scripts
// drive the package:
//
//	op, _ := calculator.ParseOperation("*")
//	v, err := calculator.Evaluate(op, 4, 5) // 20
//
// The package holds no state and is safe for concurrent use.
package calculator
