package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/calckit/pkg/calculator"
	"github.com/dmitrymomot/calckit/pkg/sanitizer"
	"github.com/dmitrymomot/calckit/pkg/validator"
)

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print a tour of every operation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeDemo(cmd.OutOrStdout())
		},
	}
}

func writeDemo(w io.Writer) error {
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

	quotient, err := calculator.Divide(5, 3)
	if err != nil {
		return err
	}
	fact, err := calculator.Factorial(5)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "=== Calculator ===")
	fmt.Fprintf(w, "5 + 3 = %s\n", num(calculator.Add(5, 3)))
	fmt.Fprintf(w, "5 - 3 = %s\n", num(calculator.Subtract(5, 3)))
	fmt.Fprintf(w, "5 * 3 = %s\n", num(calculator.Multiply(5, 3)))
	fmt.Fprintf(w, "5 / 3 = %.2f\n", quotient)
	fmt.Fprintf(w, "5! = %s\n", num(fact))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Validators ===")
	fmt.Fprintf(w, "Email %q valid: %t\n", "test@example.com", validator.IsValidEmail("test@example.com"))
	fmt.Fprintf(w, "Email %q valid: %t\n", "invalid", validator.IsValidEmail("invalid"))
	fmt.Fprintf(w, "%q is numeric: %t\n", "12345", validator.IsNumeric("12345"))
	fmt.Fprintf(w, "%q is numeric: %t\n", "abc", validator.IsNumeric("abc"))
	fmt.Fprintf(w, "toUpperCase(%q) = %s\n", "hello", sanitizer.ToUpperCase("hello"))
	return nil
}
