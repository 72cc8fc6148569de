package validator

import "errors"

// ErrValidationFailed is the kind reported by every ValidationErrors value.
var ErrValidationFailed = errors.New("validation failed")
