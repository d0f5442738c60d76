package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// NetworkErrorMessage is the single human-readable message shown for every
// connectivity failure, regardless of the underlying cause.
const NetworkErrorMessage = "Network Error: Unable to connect to server. Please check your internet connection or contact support."

// NetworkError means no response reached the client. It never triggers
// session invalidation.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return NetworkErrorMessage }

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthenticationError means the server rejected the request's credentials
// or token. Invalidated reports whether the local session was cleared as a
// consequence (only for protected, non-upload endpoints).
type AuthenticationError struct {
	Message     string
	Invalidated bool
}

func (e *AuthenticationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "unauthorized"
}

// ServerError is any other non-2xx response with the server's message
// payload preserved. Errors carries the structured field/row-level list
// when the server returned one.
type ServerError struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error: %s", http.StatusText(e.StatusCode))
}

// NewServerError builds a ServerError from a non-2xx response body,
// preserving whichever shape the server returned: a structured validation
// list or a single free-text message.
func NewServerError(status int, body []byte) *ServerError {
	msg, errs := decodeErrorBody(status, body)
	return &ServerError{StatusCode: status, Message: msg, Errors: errs}
}

// errorPayload is the error body shape the server sends: a message plus an
// optional structured list of validation errors.
type errorPayload struct {
	Message string   `json:"message"`
	Detail  string   `json:"detail"`
	Error   string   `json:"error"`
	Errors  []string `json:"errors"`
}

// decodeErrorBody extracts the message and the structured error list from a
// server error payload. Falls back to the status text when the body carries
// no recognizable message.
func decodeErrorBody(status int, body []byte) (string, []string) {
	var p errorPayload
	if err := json.Unmarshal(body, &p); err == nil {
		msg := p.Message
		if msg == "" {
			msg = p.Detail
		}
		if msg == "" {
			msg = p.Error
		}
		if msg != "" || len(p.Errors) > 0 {
			return msg, p.Errors
		}
	}
	return http.StatusText(status), nil
}
