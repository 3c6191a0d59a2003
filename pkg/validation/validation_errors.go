package validation

import (
	"fmt"
	"strings"

	"go-blog-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// fieldNames maps struct field names to the JSON field paths clients sent
var fieldNames = map[string]string{
	"Name":           "name",
	"Email":          "email",
	"Subject":        "subject",
	"Message":        "message",
	"Username":       "username",
	"Password":       "password",
	"Title":          "title",
	"Content":        "content",
	"Status":         "status",
	"Role":           "role",
	"RefreshToken":   "refreshToken",
	"BannerURL":      "banner.url",
	"BannerPublicID": "banner.publicId",
	"BannerWidth":    "banner.width",
	"BannerHeight":   "banner.height",
	"Website":        "socialLinks.website",
	"Facebook":       "socialLinks.facebook",
	"Instagram":      "socialLinks.instagram",
	"LinkedIn":       "socialLinks.linkedin",
	"X":              "socialLinks.x",
	"YouTube":        "socialLinks.youtube",
	"FirstName":      "firstName",
	"LastName":       "lastName",
}

// FormatValidationErrors converts validator.ValidationErrors into the
// per-field entries the 400 response envelope carries.
func FormatValidationErrors(err error) []apperror.FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a field-level validation error (e.g. malformed JSON)
		return []apperror.FieldError{{Field: "body", Message: err.Error()}}
	}

	fields := make([]apperror.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, apperror.FieldError{
			Field:   fieldPath(e.Field()),
			Message: formatSingleError(e),
		})
	}
	return fields
}

func formatSingleError(e validator.FieldError) string {
	field := fieldPath(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid email address"
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be less than %s characters", field, param)
		}
		return fmt.Sprintf("%s must be less than %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Split(param, " "), ", "))
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "uuid":
		return fmt.Sprintf("%s must be a valid identifier", field)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, e.Tag())
	}
}

func fieldPath(structField string) string {
	if name, ok := fieldNames[structField]; ok {
		return name
	}
	return strings.ToLower(structField)
}
