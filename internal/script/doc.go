// Package script evaluates batches of calculator operations, text checks and
// text transforms described in YAML:
//
//	steps:
//	  - op: add
//	    args: [5, 3]
//	  - op: "/"
//	    args: [1, 0]
//	  - check: email
//	    value: test@example.com
//	  - transform: upper
//	    value: hello
//
// The steps key may be omitted, in which case the document is the bare
// sequence of steps. Parse rejects malformed scripts up front. Runner.Run then evaluates every
// step; a step that fails (division by zero, negative factorial) is reported
// in its Result without stopping the rest of the run.
package script
