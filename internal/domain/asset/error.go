package asset

import "errors"

var (
	ErrNotFound          = errors.New("asset not found")
	ErrMissingFile       = errors.New("missing file upload")
	ErrMissingMetadata   = errors.New("missing metadata")
	ErrInvalidDimensions = errors.New("invalid width/height")
)
