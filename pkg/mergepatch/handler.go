package mergepatch

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/dmitrymomot/patchkit/pkg/logger"
	"github.com/dmitrymomot/patchkit/pkg/validator"
)

// ApplyFunc applies a validated patch. A nil result answers 204 No Content;
// anything else is encoded as JSON. Returning an error that carries
// validator issues answers 422 like a failed validation.
type ApplyFunc[M any] func(ctx context.Context, patch M) (any, error)

// Option configures a Handler.
type Option func(*handlerOptions)

type handlerOptions struct {
	cfg     Config
	log     *slog.Logger
	metrics *Metrics
	model   string
}

func WithConfig(cfg Config) Option {
	return func(o *handlerOptions) { o.cfg = cfg }
}

func WithLogger(log *slog.Logger) Option {
	return func(o *handlerOptions) {
		if log != nil {
			o.log = log
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(o *handlerOptions) { o.metrics = m }
}

// WithModelName overrides the model label used in logs and metrics.
// It defaults to the Go type name.
func WithModelName(name string) Option {
	return func(o *handlerOptions) {
		if name != "" {
			o.model = name
		}
	}
}

// Handler binds, validates and applies patches of M.
type Handler[M any] struct {
	validator validator.Validator[M]
	apply     ApplyFunc[M]
	opts      handlerOptions
}

// NewHandler returns an http.Handler for partial updates of M.
func NewHandler[M any](v validator.Validator[M], apply ApplyFunc[M], opts ...Option) *Handler[M] {
	if apply == nil {
		panic("mergepatch: nil apply func")
	}
	o := handlerOptions{
		cfg:   DefaultConfig(),
		log:   logger.Discard(),
		model: reflect.TypeFor[M]().Name(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.log = o.log.With(logger.Component("mergepatch"), logger.Model(o.model))
	return &Handler[M]{validator: v, apply: apply, opts: o}
}

func (h *Handler[M]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	patch, err := Bind(r, h.validator, h.opts.cfg)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	result, err := h.apply(ctx, patch)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	h.opts.metrics.Observe(h.opts.model, OutcomeApplied, 0)
	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler[M]) fail(ctx context.Context, w http.ResponseWriter, err error) {
	if issues := validator.ExtractIssues(err); !issues.IsEmpty() {
		h.opts.log.DebugContext(ctx, "patch rejected", logger.Issues(issues))
		h.opts.metrics.Observe(h.opts.model, OutcomeRejected, len(issues))
		writeJSON(w, http.StatusUnprocessableEntity, newIssueReport(issues))
		return
	}

	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.opts.log.ErrorContext(ctx, "patch failed", logger.Error(err))
		h.opts.metrics.Observe(h.opts.model, OutcomeFailed, 0)
		writeJSON(w, status, errorReport{Error: http.StatusText(status)})
		return
	}

	h.opts.log.DebugContext(ctx, "patch request refused", logger.Error(err))
	h.opts.metrics.Observe(h.opts.model, OutcomeBadRequest, 0)
	writeJSON(w, status, errorReport{Error: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrMissingContentType), errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrEmptyBody), errors.Is(err, ErrMalformedBody):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

type errorReport struct {
	Error  string        `json:"error"`
	Issues []issueReport `json:"issues,omitempty"`
}

type issueReport struct {
	Path    string `json:"path"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func newIssueReport(issues validator.IssueList) errorReport {
	out := errorReport{
		Error:  validator.ErrValidationFailed.Error(),
		Issues: make([]issueReport, 0, len(issues)),
	}
	for _, issue := range issues {
		out.Issues = append(out.Issues, issueReport{
			Path:    issue.Path,
			Code:    issue.Code,
			Message: issue.Message,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
