package mergepatch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/dmitrymomot/patchkit/pkg/decode"
	"github.com/dmitrymomot/patchkit/pkg/validator"
)

// Supported media types.
const (
	MediaTypeJSON       = "application/json"
	MediaTypeMergePatch = "application/merge-patch+json"
	MediaTypeYAML       = "application/yaml"
)

var formats = map[string]decode.Format{
	MediaTypeJSON:        decode.FormatJSON,
	MediaTypeMergePatch:  decode.FormatJSON,
	MediaTypeYAML:        decode.FormatYAML,
	"application/x-yaml": decode.FormatYAML,
	"text/yaml":          decode.FormatYAML,
}

// Bind decodes the request body into M and validates it with v.
//
// Decoding and validation issues are reported together in one
// *validator.InvalidError, decoding issues first. Any other error means the
// request could not be read at all: wrong media type, oversize or malformed
// body.
func Bind[M any](r *http.Request, v validator.Validator[M], cfg Config) (M, error) {
	var zero M

	if err := r.Context().Err(); err != nil {
		return zero, err
	}

	format, err := formatOf(r.Header.Get("Content-Type"))
	if err != nil {
		return zero, err
	}

	body, err := readBody(r.Body, cfg.maxBodySize())
	if err != nil {
		return zero, err
	}

	var opts []decode.Option
	if cfg.AllowUnknown {
		opts = append(opts, decode.AllowUnknown())
	}

	var model M
	issues, err := decode.Into(format, body, &model, opts...)
	if err != nil {
		return zero, errors.Join(ErrMalformedBody, err)
	}

	return validator.FromIssues[M](issues).And(v).ProceedIfValid(model)
}

func formatOf(contentType string) (decode.Format, error) {
	if contentType == "" {
		return "", ErrMissingContentType
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}
	format, ok := formats[mediaType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
	return format, nil
}

func readBody(body io.Reader, limit int64) ([]byte, error) {
	if body == nil {
		return nil, ErrEmptyBody
	}
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, errors.Join(ErrMalformedBody, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, limit)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyBody
	}
	return data, nil
}
