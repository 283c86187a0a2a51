package statuschecks

import "errors"

var (
	ErrStoreUnavailable = errors.New("status store unavailable")
	ErrInvalidInput     = errors.New("invalid input")
)
