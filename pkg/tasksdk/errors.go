package tasksdk

import (
	"fmt"
	"net/http"

	"github.com/tasknest/tasknest/pkg/httpx"
)

// Error codes used across the API.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeInvalidIdentifier = "invalid_identifier"
	ErrorCodeInvalidOwner      = "invalid_owner"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeUsernameTaken     = "username_taken"
	ErrorCodeServerError       = "server_error"
)

// APIError represents an error response from the task service. It
// implements the error interface and is used both by the server (to write
// HTTP responses) and by the SDK client (to represent failures).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

// NewAPIError builds an APIError with an explicit status and code.
func NewAPIError(status int, code, description string) *APIError {
	return &APIError{StatusCode: status, Code: code, Description: description}
}
