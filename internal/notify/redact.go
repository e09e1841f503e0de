package notify

import (
	"regexp"
	"strings"
)

// serviceURLPattern matches shoutrrr service URLs, which carry tokens in
// their user info, host or path.
var serviceURLPattern = regexp.MustCompile(`\b[a-zA-Z][a-zA-Z0-9+.-]*://\S+`)

// redactedError keeps the original error for errors.Is/As while its message
// has every service URL reduced to its scheme.
type redactedError struct {
	original error
	message  string
}

func (e *redactedError) Error() string {
	return e.message
}

func (e *redactedError) Unwrap() error {
	return e.original
}

func redactError(err error) error {
	if err == nil {
		return nil
	}
	return &redactedError{original: err, message: redactURLs(err.Error())}
}

func redactURLs(message string) string {
	return serviceURLPattern.ReplaceAllStringFunc(message, func(u string) string {
		scheme, _, _ := strings.Cut(u, "://")
		return scheme + "://[redacted]"
	})
}
