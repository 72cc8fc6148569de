package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/calckit/internal/script"
)

func (a *app) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Evaluate a YAML script of operations, checks and transforms",
		Long: `Evaluate every step of a YAML script and print one line per step.
Pass "-" to read the script from stdin. Failing steps are reported and the
command exits non-zero after all steps have run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			ctx := cmd.Context()
			s, err := script.Parse(ctx, in)
			if err != nil {
				return err
			}

			results, err := script.NewRunner(a.log).Run(ctx, s)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			failed := 0
			for _, res := range results {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", res.Step, res.Name, a.formatResult(res))
				if res.Err != nil {
					failed++
				}
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d steps failed", failed, len(results))
			}
			return nil
		},
	}
}

func (a *app) formatResult(res script.Result) string {
	if res.Err != nil {
		return "error: " + res.Err.Error()
	}
	switch v := res.Value.(type) {
	case float64:
		return a.formatNumber(v)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
