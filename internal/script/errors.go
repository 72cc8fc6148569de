package script

import "errors"

var (
	ErrParsingCancelled = errors.New("script parsing cancelled")
	ErrFailedToParse    = errors.New("failed to parse script")
	ErrEmptyScript      = errors.New("script has no steps")
	ErrInvalidStep      = errors.New("invalid script step")
	ErrRunCancelled     = errors.New("script run cancelled")
	ErrUnknownCheck     = errors.New("unknown check")
	ErrUnknownTransform = errors.New("unknown transform")
)
