package mergepatch

import "errors"

var (
	ErrMissingContentType   = errors.New("missing content type")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrBodyTooLarge         = errors.New("request body too large")
	ErrEmptyBody            = errors.New("empty request body")
	ErrMalformedBody        = errors.New("malformed request body")
)
