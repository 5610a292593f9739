package decode

import "errors"

var (
	ErrMalformedDocument = errors.New("malformed document")
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrInvalidTarget     = errors.New("decode target must be a non-nil pointer")
)
