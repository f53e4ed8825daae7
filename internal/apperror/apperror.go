// Package apperror defines the application's error taxonomy. Domain services
// raise these typed failures; the handler layer translates them into the
// uniform JSON error envelope at a single choke point.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is the stable machine-readable identifier clients branch on.
type Code string

const (
	CodeDuplicateEmail  Code = "DUPLICATE_EMAIL"
	CodeBadCredentials  Code = "BAD_VALUE_OF_EMAIL_OR_PASSWORD"
	CodeValidationError Code = "VALIDATION_ERROR"
	CodeUnauthorized    Code = "UNAUTHORIZED"
	CodeForbidden       Code = "FORBIDDEN"
	CodeNotFound        Code = "NOT_FOUND"
	CodePostNotFound    Code = "POST_NOT_FOUND"
	CodeCommentNotFound Code = "COMMENT_NOT_FOUND"
	CodeInternalError   Code = "INTERNAL_ERROR"
)

// Status returns the HTTP status a code maps to.
func (c Code) Status() int {
	switch c {
	case CodeDuplicateEmail:
		return http.StatusConflict
	case CodeBadCredentials, CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeValidationError:
		return http.StatusBadRequest
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound, CodePostNotFound, CodeCommentNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// DefaultMessage is the human message used when the raiser supplies none.
func (c Code) DefaultMessage() string {
	switch c {
	case CodeDuplicateEmail:
		return "email is already registered"
	case CodeBadCredentials:
		return "email or password is incorrect"
	case CodeValidationError:
		return "request value is not valid"
	case CodeUnauthorized:
		return "authentication is required"
	case CodeForbidden:
		return "permission denied"
	case CodeNotFound:
		return "resource not found"
	case CodePostNotFound:
		return "post not found"
	case CodeCommentNotFound:
		return "comment not found"
	default:
		return "internal server error"
	}
}

// FieldViolation names one offending request field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is a typed domain failure. It carries the code, an optional
// overriding message, field-level violations for validation failures, and an
// optional underlying cause that is logged but never rendered to clients.
type AppError struct {
	Code       Code
	Message    string
	Violations []FieldViolation
	Err        error
}

func (e *AppError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Code.DefaultMessage()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status for this error.
func (e *AppError) Status() int {
	return e.Code.Status()
}

// ClientMessage is the message rendered into the envelope.
func (e *AppError) ClientMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code.DefaultMessage()
}

// New builds an AppError with the code's default message.
func New(code Code) *AppError {
	return &AppError{Code: code}
}

// Newf builds an AppError with an overriding message.
func Newf(code Code, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches an underlying cause for server-side logging.
func Wrap(code Code, err error) *AppError {
	return &AppError{Code: code, Err: err}
}

// Validation builds a VALIDATION_ERROR carrying per-field violations.
func Validation(violations []FieldViolation) *AppError {
	return &AppError{Code: CodeValidationError, Violations: violations}
}

// DuplicateEmail reports a conflicting signup email.
func DuplicateEmail() *AppError { return New(CodeDuplicateEmail) }

// BadCredentials reports a failed login. Unregistered email and wrong
// password return this same value so the response never reveals which failed.
func BadCredentials() *AppError { return New(CodeBadCredentials) }

// Unauthorized reports a missing or dangling session.
func Unauthorized() *AppError { return New(CodeUnauthorized) }

// Forbidden reports a valid session lacking the required capability.
func Forbidden() *AppError { return New(CodeForbidden) }

// PostNotFound reports an absent post.
func PostNotFound(id uint) *AppError {
	return Newf(CodePostNotFound, "post not found, id=%d", id)
}

// CommentNotFound reports a comment that is absent or belongs to another
// post. Ownership mismatch is deliberately indistinguishable from absence.
func CommentNotFound(id uint) *AppError {
	return Newf(CodeCommentNotFound, "comment not found, id=%d", id)
}

// Internal wraps an uncategorized failure.
func Internal(err error) *AppError { return Wrap(CodeInternalError, err) }

// From extracts the AppError from err's chain, or wraps err as an
// INTERNAL_ERROR so nothing uncategorized leaks internal detail.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
