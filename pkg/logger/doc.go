// Package logger builds the *slog.Logger used by calckit.
//
// New takes functional options selecting the output format (text or JSON),
// minimum level, destination, static attributes and ContextExtractor
// callbacks. Extractors run on every *Context logging call, which is how the
// run id stored in the command context ends up on each record.
// WithEnvironment sets format and level defaults and tags records with the
// service name and env; later options override those defaults:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "calckit"),
//	    logger.WithLevel(slog.LevelWarn),
//	    logger.WithContextExtractors(runid.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "evaluated",
//	    logger.Operation("divide"),
//	    logger.Operands(5, 3),
//	    logger.Result(1.67),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
//
// Logs default to stderr because command output goes to stdout.
package logger
