package listing

import "errors"

var (
	ErrNotFound        = errors.New("listing not found")
	ErrInvalidCriteria = errors.New("invalid search criteria")
	ErrUnavailable     = errors.New("listing service unavailable")
	ErrBadStatus       = errors.New("listing service bad status")
)
