// Package runid tags a single calckit invocation with a correlation id so
// every log record it emits can be grouped together.
//
// The CLI resolves the id once at startup, reusing CALC_RUN_ID when the
// caller supplied a well-formed value and generating a UUIDv4 otherwise, then
// stores it in the command context:
//
//	ctx := runid.WithContext(ctx, runid.Resolve(cfg.RunID))
//	log := logger.New(logger.WithContextExtractors(runid.LoggerExtractor()))
package runid
