package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCodeStatusMapping(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeDuplicateEmail, http.StatusConflict},
		{CodeBadCredentials, http.StatusUnauthorized},
		{CodeValidationError, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodePostNotFound, http.StatusNotFound},
		{CodeCommentNotFound, http.StatusNotFound},
		{CodeInternalError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.code.Status(); got != tc.status {
			t.Errorf("%s: expected status %d, got %d", tc.code, tc.status, got)
		}
	}
}

func TestClientMessageFallsBackToDefault(t *testing.T) {
	err := New(CodePostNotFound)
	if err.ClientMessage() != CodePostNotFound.DefaultMessage() {
		t.Errorf("expected default message, got %q", err.ClientMessage())
	}

	err = PostNotFound(42)
	if err.ClientMessage() != "post not found, id=42" {
		t.Errorf("unexpected message: %q", err.ClientMessage())
	}
}

func TestFromWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := From(cause)
	if appErr.Code != CodeInternalError {
		t.Fatalf("expected INTERNAL_ERROR, got %s", appErr.Code)
	}
	if !errors.Is(appErr, cause) {
		t.Error("expected the cause to stay in the chain")
	}
}

func TestFromKeepsWrappedAppError(t *testing.T) {
	inner := DuplicateEmail()
	wrapped := fmt.Errorf("signup failed: %w", inner)

	appErr := From(wrapped)
	if appErr.Code != CodeDuplicateEmail {
		t.Fatalf("expected DUPLICATE_EMAIL, got %s", appErr.Code)
	}
	if !Is(wrapped, CodeDuplicateEmail) {
		t.Error("Is should see through wrapping")
	}
}

func TestEnvelopeNeverRendersNullViolations(t *testing.T) {
	resp := NewErrorResponse(Unauthorized(), "/api/auth/me")
	if resp.FieldViolations == nil {
		t.Error("fieldViolations must be an empty array, not null")
	}
	if resp.Path != "/api/auth/me" {
		t.Errorf("unexpected path %q", resp.Path)
	}
	if resp.Timestamp.IsZero() {
		t.Error("timestamp must be set")
	}
}

func TestValidationCarriesViolations(t *testing.T) {
	err := Validation([]FieldViolation{{Field: "content", Message: "must not be blank"}})
	resp := NewErrorResponse(err, "/api/posts")
	if len(resp.FieldViolations) != 1 || resp.FieldViolations[0].Field != "content" {
		t.Errorf("unexpected violations: %+v", resp.FieldViolations)
	}
}
