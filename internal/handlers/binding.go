package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"

	"crudboard/internal/apperror"
	"crudboard/internal/pagination"
)

// RegisterValidators wires the notblank rule into gin's validator and makes
// violation field names follow the json tags. Must run before any binding.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("notblank", nonstandard.NotBlank)
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// bindJSON binds the request body into obj and translates failures into the
// validation taxonomy: malformed JSON gives a bare VALIDATION_ERROR, failed
// constraints enumerate every offending field.
func bindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		violations := make([]apperror.FieldViolation, 0, len(verrs))
		for _, fe := range verrs {
			violations = append(violations, apperror.FieldViolation{
				Field:   fe.Field(),
				Message: violationMessage(fe),
			})
		}
		return apperror.Validation(violations)
	}

	return apperror.Newf(apperror.CodeValidationError, "request body is malformed")
}

// validationFailure builds a single-field VALIDATION_ERROR.
func validationFailure(field, message string) error {
	return apperror.Validation([]apperror.FieldViolation{{Field: field, Message: message}})
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "must not be blank"
	case "email":
		return "must be a well-formed email address"
	case "max":
		return fmt.Sprintf("length must be at most %s", fe.Param())
	case "min":
		return fmt.Sprintf("length must be at least %s", fe.Param())
	default:
		return "is not valid"
	}
}

// pathID parses a numeric path parameter. Non-numeric ids are client errors.
func pathID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperror.Validation([]apperror.FieldViolation{
			{Field: name, Message: "must be a numeric id"},
		})
	}
	return uint(id), nil
}

// pageRequest reads the page/size/sort query parameters. Values that fail
// to parse fall back to defaults; bounds are enforced later by Normalize.
func pageRequest(c *gin.Context) pagination.Request {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))
	return pagination.Request{
		Page: page,
		Size: size,
		Sort: c.Query("sort"),
	}
}

// Accepted layouts for createdFrom/createdTo, RFC 3339 first.
var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05"}

// queryTime parses an optional timestamp query parameter.
func queryTime(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, apperror.Validation([]apperror.FieldViolation{
		{Field: name, Message: "must be an ISO-8601 timestamp"},
	})
}
