package autherrors

import (
	"net/http"

	"github.com/Thato402/employee-attendance-tracker/internal/shared/apperror"
)

var (
	// ErrInvalidCredentials is returned for an unknown employee ID and for a
	// wrong password alike, so a caller cannot probe which IDs exist.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid Employee ID or password.",
		http.StatusUnauthorized,
	)

	// ErrAccountAlreadyExists covers both unique constraints with one
	// combined message; the API does not reveal which field collided.
	ErrAccountAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee ID or Email already exists.",
		http.StatusBadRequest,
	)

	ErrTokenRequired = apperror.New(
		apperror.CodeTokenRequired,
		"Access token required.",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeInvalidToken,
		"Invalid or expired token.",
		http.StatusForbidden,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
