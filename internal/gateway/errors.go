package gateway

import (
	"errors"
	"fmt"
)

const (
	// FallbackErrorMessage is shown when the service rejects a request without a usable detail.
	FallbackErrorMessage = "Failed to review code"
	// TransportErrorMessage is shown for network failures and malformed responses.
	TransportErrorMessage = "An error occurred"
)

// ErrTransport marks failures below the application layer: unreachable
// service, broken connection, malformed response body.
var ErrTransport = errors.New("review service transport failure")

// APIError is returned when the service answers with a non-success status.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("review service returned %d: %s", e.StatusCode, e.Detail)
}

// UserMessage translates a gateway error into the text shown to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Detail == "" {
			return FallbackErrorMessage
		}
		return apiErr.Detail
	}
	return TransportErrorMessage
}
