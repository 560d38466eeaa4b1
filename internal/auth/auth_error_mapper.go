package auth

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	autherrors "github.com/Thato402/employee-attendance-tracker/internal/auth/errors"
)

// mapRepositoryError translates driver-level failures into AppErrors. The
// unique indexes on employee_id and email are the authoritative guard under
// concurrent registration; both map to the same combined conflict message.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_users_employee_id", "uq_users_email":
			return autherrors.ErrAccountAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") &&
		(strings.Contains(errMsg, "uq_users_employee_id") || strings.Contains(errMsg, "uq_users_email")) {
		return autherrors.ErrAccountAlreadyExists
	}

	return err
}
