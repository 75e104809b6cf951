package todosdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/todo/pkg/httpx"
)

// Error codes carried in the "code" field of error responses.
const (
	ErrorCodeInvalidArgument = "invalid_argument"
	ErrorCodeUnauthenticated = "unauthenticated"
	ErrorCodeNotFound        = "not_found"
	ErrorCodeAlreadyExists   = "already_exists"
	ErrorCodeInternal        = "internal"
	ErrorCodeRateLimited     = "rate_limited"
)

// APIError is the error envelope of the todo service. The server writes it
// with WriteError and the client returns it for non-2xx responses.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes e as the JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

// NewAPIError creates an APIError with the status that belongs to code.
func NewAPIError(code, message string) *APIError {
	return &APIError{
		StatusCode: StatusForCode(code),
		Code:       code,
		Message:    message,
	}
}

// StatusForCode maps an error code to its HTTP status.
func StatusForCode(code string) int {
	switch code {
	case ErrorCodeInvalidArgument:
		return http.StatusBadRequest
	case ErrorCodeUnauthenticated:
		return http.StatusUnauthorized
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeAlreadyExists:
		return http.StatusConflict
	case ErrorCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func hasCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

func IsInvalidArgument(err error) bool { return hasCode(err, ErrorCodeInvalidArgument) }
func IsUnauthenticated(err error) bool { return hasCode(err, ErrorCodeUnauthenticated) }
func IsNotFound(err error) bool        { return hasCode(err, ErrorCodeNotFound) }
func IsAlreadyExists(err error) bool   { return hasCode(err, ErrorCodeAlreadyExists) }
func IsRateLimited(err error) bool     { return hasCode(err, ErrorCodeRateLimited) }

// parseErrorResponse turns a non-2xx response into an *APIError, falling
// back to the status text when the body is not an error envelope.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeInternal,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
