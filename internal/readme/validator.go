package readme

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/getmentor/readme-generator/internal/models"
	"github.com/go-playground/validator/v10"
)

// fieldMessages holds the user-facing message for each constrained field
var fieldMessages = map[string]string{
	models.FieldName:   "Name must be at least 2 characters",
	models.FieldAbout:  "About section must be at least 10 characters",
	models.FieldSkills: "Please enter your skills",
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks every rule on the input and returns all violations, ordered
// as the fields appear on the form. A nil result means the input is accepted.
func Validate(input models.ProfileInput) []models.FieldError {
	return FieldErrors(instance().Struct(input))
}

// FieldErrors converts validator errors into per-field messages
func FieldErrors(err error) []models.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	result := make([]models.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.StructField())
		result = append(result, models.FieldError{
			Field:   field,
			Message: errorMessage(field, fe),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return fieldOrder(result[i].Field) < fieldOrder(result[j].Field)
	})
	return result
}

func fieldOrder(field string) int {
	for i, f := range models.ProfileFields {
		if f == field {
			return i
		}
	}
	return len(models.ProfileFields)
}

func errorMessage(field string, fe validator.FieldError) string {
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must not exceed " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}
