package vberr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeWrongWorkspace  = "WRONG_WORKSPACE"
	CodeInvalidDocument = "INVALID_DOCUMENT"
	CodeInternalError   = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusBadRequest, CodeNotFound, "resource not found with given parameters")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrUnauthorized is returned when the caller presented no valid account token.
	ErrUnauthorized = New(fiber.StatusUnauthorized, CodeUnauthorized, "a valid account token is required")

	// ErrForbidden is returned when the caller's role does not allow the operation.
	ErrForbidden = New(fiber.StatusForbidden, CodeForbidden, "your role does not allow this operation")

	// ErrWrongWorkspace is returned when an uploaded backup belongs to another workspace.
	ErrWrongWorkspace = New(fiber.StatusBadRequest, CodeWrongWorkspace, "backup does not belong to the current workspace")

	// ErrInvalidDocument is returned when an uploaded backup cannot be parsed.
	ErrInvalidDocument = New(fiber.StatusBadRequest, CodeInvalidDocument, "uploaded file is not a valid backup document")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]interface{}

type VetError struct {
	StatusCode int    `example:"400"`
	ErrorCode  string `example:"INVALID_REQUEST"`
	Message    string `example:"invalid request: some or all request parameters are invalid"`
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *VetError {
	return &VetError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e VetError) Msg(format string, parts ...interface{}) *VetError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e VetError) WithExtras(extras Extras) *VetError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations interface{}) *VetError {
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *VetError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
