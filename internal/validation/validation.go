package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"folio.dev/internal/apperror"
)

// FieldLabels maps struct field names to the labels shown next to inputs
var FieldLabels = map[string]string{
	"Name":     "Name",
	"Email":    "Email",
	"Subject":  "Subject",
	"Message":  "Message",
	"Role":     "Target role",
	"Format":   "Format",
	"Sections": "Sections",
}

// Validator wraps a configured validator instance
type Validator struct {
	v *validator.Validate
}

// New creates a Validator with the custom tags registered. A failed
// registration is a programming error and panics here rather than on the
// first struct that uses the tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("no_emoji", NoEmoji); err != nil {
		panic(fmt.Sprintf("registering no_emoji validation: %v", err))
	}
	return &Validator{v: v}
}

// Struct validates s and converts failures into a validation AppError
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	return apperror.Validation(FormatValidationErrors(err), err)
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.StructField())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Fields(param), ", "))
	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji", label)
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}

// NoEmoji rejects strings containing emoji or pictographic symbols
func NoEmoji(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}
