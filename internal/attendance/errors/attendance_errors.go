package attendanceerrors

import (
	"fmt"
	"net/http"

	"github.com/Thato402/employee-attendance-tracker/internal/shared/apperror"
)

var (
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be Present or Absent.",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must be a valid calendar date in YYYY-MM-DD format.",
		http.StatusBadRequest,
	)

	ErrInvalidRecordID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid record ID.",
		http.StatusBadRequest,
	)

	// ErrRecordNotFound covers both a missing record and someone else's
	// record; the blend keeps other users' data unobservable.
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Record not found or access denied.",
		http.StatusNotFound,
	)

	// ErrOwnerNotResolved means the authenticated user id no longer matches
	// a row in the users table, which is a server-side consistency fault, not a
	// client mistake.
	ErrOwnerNotResolved = apperror.New(
		apperror.CodeInternalError,
		"User not found.",
		http.StatusInternalServerError,
	)
)

// DuplicateDate builds the conflict error naming the offending date.
func DuplicateDate(date string) *apperror.AppError {
	return apperror.New(
		apperror.CodeConflict,
		fmt.Sprintf("Attendance for %s already exists.", date),
		http.StatusBadRequest,
	)
}
