package models

import (
	"errors"
	"fmt"
)

// ErrorCode classifies failures surfaced to callers. Fact-level misses are
// never errors; only structural failures carry a code.
type ErrorCode string

const (
	ErrCodeCompanyNotFound ErrorCode = "COMPANY_NOT_FOUND"
	ErrCodeFilingNotFound  ErrorCode = "FILING_NOT_FOUND"
	ErrCodeUpstreamAPI     ErrorCode = "API_ERROR"
	ErrCodeAuth            ErrorCode = "AUTH_ERROR"
	ErrCodeParse           ErrorCode = "PARSE_ERROR"
	ErrCodeInvalidInput    ErrorCode = "INVALID_INPUT"
	ErrCodeExport          ErrorCode = "EXPORT_ERROR"
)

// APIError is a structured error carrying a stable code for tool responses.
type APIError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a structured error with the given code
func NewAPIError(code ErrorCode, message string, err error) *APIError {
	return &APIError{Code: code, Message: message, Err: err}
}

// CodeOf extracts the error code from an error chain, defaulting to API_ERROR
func CodeOf(err error) ErrorCode {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ErrCodeUpstreamAPI
}
