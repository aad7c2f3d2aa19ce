package collection

import "errors"

var (
	ErrNotFound    = errors.New("collection not found")
	ErrMissingName = errors.New("missing name")
)
