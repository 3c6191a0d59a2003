package apperror

import "net/http"

// Machine readable error codes exposed on the wire
const (
	CodeValidationError     = "ValidationError"
	CodeRateLimitError      = "RateLimitError"
	CodeAuthenticationError = "AuthenticationError"
	CodeAuthorizationError  = "AuthorizationError"
	CodeNotFound            = "NotFound"
	CodeServerError         = "ServerError"
)

// FieldError describes a single failing field in a validation error response
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	Status  int          `json:"-"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"errors,omitempty"`
	Err     error        `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation builds a 400 error carrying per-field details
func Validation(fields []FieldError) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    CodeValidationError,
		Message: "Invalid request payload",
		Fields:  fields,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, CodeValidationError, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, CodeAuthenticationError, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, CodeAuthorizationError, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, CodeNotFound, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, CodeServerError, "Internal Server Error", err)
}
