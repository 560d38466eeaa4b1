package apperror

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns a json tag name into a human readable label:
// "employeeName" -> "Employee Name", "password" -> "Password".
func formatFieldName(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	spaced := strings.ReplaceAll(b.String(), "_", " ")
	caser := cases.Title(language.English)
	return caser.String(spaced)
}

// MapValidationError converts a gin binding error into the field-specific
// 400 AppError the API contract promises. Only the first failing field is
// reported.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		case "min":
			return MinLengthField(field, e.Param())
		case "email":
			return New(CodeInvalidInput, field+" must be a valid email address.", http.StatusBadRequest)
		default:
			return InvalidField(field)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
