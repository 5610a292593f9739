package logger

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/patchkit/pkg/validator"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Model records the validated model type under the key "model".
func Model(name string) slog.Attr {
	return slog.String("model", name)
}

// Issues groups validation issues under the key "issues", one attribute per
// path. Several messages at the same path are joined with "; ".
// An empty list returns an empty Attr.
func Issues(list validator.IssueList) slog.Attr {
	if list.IsEmpty() {
		return slog.Attr{}
	}
	paths := list.Paths()
	attrs := make([]slog.Attr, 0, len(paths))
	for _, path := range paths {
		key := path
		if key == "" {
			key = "_"
		}
		attrs = append(attrs, slog.String(key, strings.Join(list.Messages(path), "; ")))
	}
	return slog.Attr{Key: "issues", Value: slog.GroupValue(attrs...)}
}
