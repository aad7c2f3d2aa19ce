package quest

import "errors"

var (
	ErrNotFound     = errors.New("map not found")
	ErrMissingTitle = errors.New("must provide title and author")
	ErrUnknownCard  = errors.New("card not found")
)
