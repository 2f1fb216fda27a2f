// Package validator decodes and validates JSON request bodies with
// go-playground/validator. Field names in error maps follow the json tags.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/graphicoglobal/atelier/pkg/httpx"
)

var (
	validate *validator.Validate

	mu       sync.RWMutex
	messages = map[string]string{}
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// notblank rejects strings that are empty after trimming whitespace.
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// RegisterString adds a string validation tag. message is reported for
// fields that fail it. Register tags from package init, before serving.
func RegisterString(tag, message string, ok func(string) bool) error {
	mu.Lock()
	defer mu.Unlock()
	if err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return ok(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("register %q: %w", tag, err)
	}
	messages[tag] = message
	return nil
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field name → human-readable message.
func FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errs
	}
	for _, e := range ve {
		errs[e.Field()] = formatFieldError(e)
	}
	return errs
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "uuid", "uuid4":
		return "Must be a valid UUID"
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param())
	case "url":
		return "Must be a valid URL"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(e.Param(), "'", ""))
	case "notblank":
		return "Must not be blank"
	}
	mu.RLock()
	msg, ok := messages[e.Tag()]
	mu.RUnlock()
	if ok {
		return msg
	}
	return fmt.Sprintf("Validation failed on '%s'", e.Tag())
}

// ValidateRequest decodes the JSON request body into T, validates it, and
// writes an appropriate error response if either step fails.
// Returns (parsedStruct, true) on success or (nil, false) on failure.
func ValidateRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		msg := "Invalid JSON"
		if errors.Is(err, io.EOF) {
			msg = "Request body is required"
		}
		httpx.JSONError(w, http.StatusBadRequest, msg)
		return nil, false
	}
	if err := Validate(&req); err != nil {
		httpx.JSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "Validation failed",
			"fields": FormatValidationErrors(err),
		})
		return nil, false
	}
	return &req, true
}
