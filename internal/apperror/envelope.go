package apperror

import (
	"time"
)

// ErrorResponse is the uniform JSON error envelope every failure renders to.
type ErrorResponse struct {
	Code            Code             `json:"code"`
	Message         string           `json:"message"`
	FieldViolations []FieldViolation `json:"fieldViolations"`
	Path            string           `json:"path"`
	Timestamp       time.Time        `json:"timestamp"`
}

// NewErrorResponse renders an AppError into the envelope for the given
// request path. Violations are never null in the body.
func NewErrorResponse(e *AppError, path string) ErrorResponse {
	violations := e.Violations
	if violations == nil {
		violations = []FieldViolation{}
	}
	return ErrorResponse{
		Code:            e.Code,
		Message:         e.ClientMessage(),
		FieldViolations: violations,
		Path:            path,
		Timestamp:       time.Now().UTC(),
	}
}
