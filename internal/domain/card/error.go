package card

import "errors"

var (
	ErrNotFound      = errors.New("card not found")
	ErrMissingFields = errors.New("missing required fields")
)
