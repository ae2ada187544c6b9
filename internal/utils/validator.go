// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("access_code", validateAccessCode)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateAccessCode(fl validator.FieldLevel) bool {
	code := fl.Field().String()

	// Codes are typed by hand at login; keep them short and unambiguous.
	if len(code) < 2 || len(code) > 32 {
		return false
	}

	matched, _ := regexp.MatchString(`^[A-Za-z0-9_-]+$`, code)
	return matched
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "access_code":
		return "Access codes must be 2-32 characters of letters, numbers, hyphens, and underscores"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " is invalid"
	}
}
