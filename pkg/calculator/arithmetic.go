package calculator

import "math"

// Add returns the sum of a and b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a minus b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns the product of a and b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a divided by b.
// Returns ErrDivisionByZero when b is exactly zero; no tolerance is applied,
// so tiny non-zero divisors still divide.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Factorial returns n! as a float64.
// Returns ErrNegativeFactorial for n < 0. Results are exact through 22!,
// rounded beyond that and +Inf from 171! on.
func Factorial(n int) (float64, error) {
	if n < 0 {
		return 0, ErrNegativeFactorial
	}

	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
		if math.IsInf(result, 1) {
			break
		}
	}
	return result, nil
}
