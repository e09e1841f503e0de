package apiclient

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// ProviderError is the only error returned by Client. It covers transport
// failures, non-2xx responses and undecodable bodies alike.
type ProviderError struct {
	// Message is safe to show to a user. For HTTP errors it is the backend's
	// detail text when one was supplied.
	Message string
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func wrapProviderError(err error, message string) *ProviderError {
	wrapped := errors.Wrap(err, message)
	return &ProviderError{Message: wrapped.Error(), Err: wrapped}
}

// statusError builds the error for a non-2xx response. The body is decoded
// best-effort as {"detail": string}; anything else falls back to a message
// naming the status code.
func statusError(statusCode int, body []byte) *ProviderError {
	message := fmt.Sprintf("HTTP error! status: %d", statusCode)

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(payload.Detail, &detail); err == nil && detail != "" {
			message = detail
		}
	}

	return &ProviderError{
		Message:    message,
		StatusCode: statusCode,
		Err:        errors.Errorf("unexpected status %d", statusCode),
	}
}
