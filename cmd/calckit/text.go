package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/calckit/pkg/sanitizer"
	"github.com/dmitrymomot/calckit/pkg/validator"
)

func (a *app) newEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "email TEXT",
		Short: "Print whether TEXT has the shape of an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(validator.IsValidEmail(args[0])))
			return nil
		},
	}
}

func (a *app) newNumericCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "numeric TEXT",
		Short: "Print whether TEXT consists only of decimal digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(validator.IsNumeric(args[0])))
			return nil
		},
	}
}

func (a *app) newUpperCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upper TEXT",
		Short: "Print TEXT in upper case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), sanitizer.ToUpperCase(args[0]))
			return nil
		},
	}
}

// newValidateCmd checks several values at once and fails listing every
// invalid field.
func (a *app) newValidateCmd() *cobra.Command {
	var emails, numbers []string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate emails and numeric strings, reporting every invalid value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(emails) == 0 && len(numbers) == 0 {
				return errors.New("nothing to validate: pass --email or --numeric")
			}

			rules := make([]validator.Rule, 0, len(emails)+len(numbers))
			for i, e := range emails {
				rules = append(rules, validator.ValidEmail(fmt.Sprintf("email[%d]", i), e))
			}
			for i, n := range numbers {
				rules = append(rules, validator.NumericString(fmt.Sprintf("numeric[%d]", i), n))
			}

			err := validator.Apply(rules...)
			if verrs := validator.ExtractValidationErrors(err); verrs != nil {
				for _, field := range verrs.Fields() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", field, strings.Join(verrs.Get(field), ", "))
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&emails, "email", nil, "email address to validate (repeatable)")
	cmd.Flags().StringArrayVar(&numbers, "numeric", nil, "digit string to validate (repeatable)")
	return cmd
}
