package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/calckit/pkg/environment"
	"github.com/dmitrymomot/calckit/pkg/logger"
	"github.com/dmitrymomot/calckit/pkg/runid"
)

// Config is read from the environment (and ./.env) at startup.
// LOG_LEVEL and LOG_FORMAT override the defaults APP_ENV selects.
type Config struct {
	Env       environment.Environment `env:"APP_ENV" envDefault:"development"`
	Name      string                  `env:"APP_NAME" envDefault:"calckit"`
	LogLevel  string                  `env:"LOG_LEVEL"`
	LogFormat string                  `env:"LOG_FORMAT"`
	Precision int                     `env:"CALC_PRECISION" envDefault:"-1"`
	RunID     string                  `env:"CALC_RUN_ID"`
}

type app struct {
	cfg Config
	log *slog.Logger
}

func newRootCmd(cfg Config) *cobra.Command {
	a := &app{cfg: cfg}

	root := &cobra.Command{
		Use:           "calckit",
		Short:         "Arithmetic and text validation helpers",
		Long:          `calckit evaluates basic arithmetic, validates email and numeric strings, and upper-cases text.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().IntVarP(&a.cfg.Precision, "precision", "p", cfg.Precision,
		"decimal places in numeric output (-1 for the shortest exact form)")

	root.AddCommand(
		a.newOpCmd(opAdd),
		a.newOpCmd(opSubtract),
		a.newOpCmd(opMultiply),
		a.newOpCmd(opDivide),
		a.newOpCmd(opFactorial),
		a.newEmailCmd(),
		a.newNumericCmd(),
		a.newUpperCmd(),
		a.newValidateCmd(),
		a.newDemoCmd(),
		a.newRunCmd(),
		newVersionCmd(),
	)

	return root
}

// setup builds the logger, installs it as the slog default and stores the
// run id in the command context.
func (a *app) setup(cmd *cobra.Command) error {
	opts := []logger.Option{
		logger.WithEnvironment(a.cfg.Env, a.cfg.Name),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(runid.LoggerExtractor()),
	}

	if a.cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(a.cfg.LogLevel)); err != nil {
			return fmt.Errorf("LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(level))
	}

	if a.cfg.LogFormat != "" {
		var format logger.Format
		if err := format.UnmarshalText([]byte(a.cfg.LogFormat)); err != nil {
			return fmt.Errorf("LOG_FORMAT: %w", err)
		}
		opts = append(opts, logger.WithFormat(format))
	}

	a.log = logger.New(opts...)
	logger.SetAsDefault(a.log)

	ctx := runid.WithContext(cmd.Context(), runid.Resolve(a.cfg.RunID))
	cmd.SetContext(ctx)

	a.log.DebugContext(ctx, "command started", slog.String("command", cmd.CommandPath()))
	return nil
}

func (a *app) formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', a.cfg.Precision, 64)
}
