package attendance

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	attendanceerrors "github.com/Thato402/employee-attendance-tracker/internal/attendance/errors"
)

// mapCreateError translates an insert failure into the conflict error when
// the (user_id, date) unique index fired. This is the path a second
// concurrent submission takes after both pass the pre-check.
func mapCreateError(err error, date string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendance_user_date" {
		return attendanceerrors.DuplicateDate(date)
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attendance_user_date") {
		return attendanceerrors.DuplicateDate(date)
	}

	return err
}
