package errs

import "errors"

// ErrValidation marks local validation failures. They never reach the
// booking API.
var ErrValidation = errors.New("validation failed")
