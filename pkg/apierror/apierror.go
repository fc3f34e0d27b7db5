// Package apierror defines the uniform error envelope returned by every
// endpoint: {"error": true, "status": ..., "message": ..., "timestamp": ...}.
package apierror

import (
	"encoding/json"
	"net/http"
	"time"
)

// Error is an API-visible failure. It satisfies the error interface so it can
// travel through ordinary error returns and be unwrapped at the transport
// layer.
type Error struct {
	Status    int
	Message   string
	Timestamp time.Time
}

// New creates an Error with the given HTTP status and message.
func New(status int, message string) *Error {
	return &Error{
		Status:    status,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// BadRequest creates a 400 error for malformed, missing or mistyped input.
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Unauthorized creates a 401 error for a missing or invalid credential.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// NotFound creates a 404 error for an unmatched route or missing record.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// InternalError creates a 500 error for unexpected faults.
func InternalError(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

// GatewayTimeout creates a 504 error for an outbound call that exceeded its
// deadline.
func GatewayTimeout(message string) *Error {
	return New(http.StatusGatewayTimeout, message)
}

// Upstream creates an error that forwards an upstream service's own status
// code verbatim.
func Upstream(status int, message string) *Error {
	return New(status, message)
}

// Error returns the user-visible message.
func (e *Error) Error() string {
	return e.Message
}

// MarshalJSON renders the uniform envelope. The "error" field is always
// literally true.
func (e *Error) MarshalJSON() ([]byte, error) {
	type envelope struct {
		Error     bool      `json:"error"`
		Status    int       `json:"status"`
		Message   string    `json:"message"`
		Timestamp time.Time `json:"timestamp"`
	}
	return json.Marshal(envelope{
		Error:     true,
		Status:    e.Status,
		Message:   e.Message,
		Timestamp: e.Timestamp,
	})
}

// ToJSON returns the serialized envelope for callers that write the body
// directly (e.g. the panic recovery middleware).
func (e *Error) ToJSON() []byte {
	b, _ := json.Marshal(e)
	return b
}
