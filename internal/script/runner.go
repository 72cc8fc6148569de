package script

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/calckit/pkg/calculator"
	"github.com/dmitrymomot/calckit/pkg/logger"
	"github.com/dmitrymomot/calckit/pkg/sanitizer"
	"github.com/dmitrymomot/calckit/pkg/validator"
)

// Result is the outcome of one step. Value holds a float64 for op steps, a
// bool for check steps and a string for transform steps. Err is set only
// for op steps that failed.
type Result struct {
	Step  int
	Kind  string
	Name  string
	Value any
	Err   error
}

// Runner evaluates parsed scripts.
type Runner struct {
	log *slog.Logger
}

// NewRunner returns a Runner logging to log, or to slog.Default when log is nil.
func NewRunner(log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{log: log.With(logger.Component("script"))}
}

// Run evaluates every step in order. A failing step is recorded in its
// Result and does not stop the run; only context cancellation does, in which
// case the results gathered so far are returned with the error.
func (r *Runner) Run(ctx context.Context, s *Script) ([]Result, error) {
	results := make([]Result, 0, len(s.Steps))

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return results, errors.Join(ErrRunCancelled, err)
		}

		res := Result{Step: i + 1, Kind: st.Kind(), Name: st.Name()}

		switch res.Kind {
		case KindOp:
			if v, err := evaluate(st); err != nil {
				res.Err = err
			} else {
				res.Value = v
			}
		case KindCheck:
			res.Value = check(st)
		case KindTransform:
			res.Value = sanitizer.ToUpperCase(st.Value)
		}

		if res.Err != nil {
			r.log.WarnContext(ctx, "step failed", logger.Step(res.Step), logger.Operation(res.Name), logger.Error(res.Err))
		} else {
			r.log.DebugContext(ctx, "step evaluated", logger.Step(res.Step), logger.Operation(res.Name), logger.Result(res.Value))
		}
		results = append(results, res)
	}

	return results, nil
}

func evaluate(st Step) (float64, error) {
	op, err := calculator.ParseOperation(st.Op)
	if err != nil {
		return 0, err
	}
	return calculator.Evaluate(op, st.Args...)
}

func check(st Step) bool {
	if st.Check == CheckEmail {
		return validator.IsValidEmail(st.Value)
	}
	return validator.IsNumeric(st.Value)
}
