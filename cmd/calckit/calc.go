package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/calckit/pkg/calculator"
	"github.com/dmitrymomot/calckit/pkg/logger"
)

type opSpec struct {
	op      calculator.Operation
	use     string
	aliases []string
	short   string
	example []string
}

var (
	opAdd       = opSpec{calculator.OpAdd, "add A B", []string{"+"}, "Print A + B", []string{"-5", "3"}}
	opSubtract  = opSpec{calculator.OpSubtract, "sub A B", []string{"subtract"}, "Print A - B", []string{"-10", "-5"}}
	opMultiply  = opSpec{calculator.OpMultiply, "mul A B", []string{"multiply", "x"}, "Print A * B", []string{"-4", "5"}}
	opDivide    = opSpec{calculator.OpDivide, "div A B", []string{"divide", "/"}, "Print A / B; fails when B is zero", []string{"5", "2"}}
	opFactorial = opSpec{calculator.OpFactorial, "fact N", []string{"factorial", "!"}, "Print N!; fails when N is negative", []string{"5"}}
)

// Negative operands must follow "--" so they are not read as flags.
func (a *app) newOpCmd(spec opSpec) *cobra.Command {
	return &cobra.Command{
		Use:     spec.use,
		Aliases: spec.aliases,
		Short:   spec.short,
		Example: "  calckit " + strings.Fields(spec.use)[0] + " -- " + strings.Join(spec.example, " "),
		Args:    cobra.ExactArgs(spec.op.Arity()),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseOperands(args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			result, err := calculator.Evaluate(spec.op, operands...)
			if err != nil {
				a.log.WarnContext(ctx, "evaluation failed",
					logger.Operation(spec.op.String()), logger.Operands(operands...), logger.Error(err))
				return err
			}

			a.log.DebugContext(ctx, "evaluated",
				logger.Operation(spec.op.String()), logger.Operands(operands...), logger.Result(result))
			fmt.Fprintln(cmd.OutOrStdout(), a.formatNumber(result))
			return nil
		},
	}
}

func parseOperands(args []string) ([]float64, error) {
	operands := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", arg)
		}
		operands = append(operands, v)
	}
	return operands, nil
}
