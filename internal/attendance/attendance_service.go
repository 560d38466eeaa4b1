package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceerrors "github.com/Thato402/employee-attendance-tracker/internal/attendance/errors"
	"github.com/Thato402/employee-attendance-tracker/internal/shared/apperror"
	"github.com/Thato402/employee-attendance-tracker/internal/user"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	// List returns all of the caller's records, newest date first and
	// latest-created first within a date. No records is an empty list,
	// not an error.
	List(ctx context.Context, userID string) ([]AttendanceResponse, error)

	// Create records a day for the caller, carrying a snapshot of their
	// current name and employee ID. At most one record per user per date.
	Create(ctx context.Context, userID string, req CreateRequest) (AttendanceResponse, error)

	// Delete removes the caller's own record. A missing record and another
	// user's record are indistinguishable to the caller.
	Delete(ctx context.Context, userID, recordID string) (string, error)
}

type service struct {
	repo     Repository
	userRepo user.Repository
}

func NewService(repo Repository, userRepo user.Repository) Service {
	return &service{repo: repo, userRepo: userRepo}
}

func (s *service) List(ctx context.Context, userID string) ([]AttendanceResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, attendanceerrors.ErrOwnerNotResolved
	}

	rows, err := s.repo.FindAllByUser(ctx, uid)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInternalError, "Failed to fetch attendance records.", 500)
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = toResponse(r)
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, userID string, req CreateRequest) (AttendanceResponse, error) {
	if req.Status != StatusPresent && req.Status != StatusAbsent {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrOwnerNotResolved
	}

	// The token authenticated this id, so a miss here means the store lost
	// the row: a consistency fault, not a client error.
	owner, err := s.userRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrOwnerNotResolved
		}
		return AttendanceResponse{}, apperror.Wrap(err, apperror.CodeInternalError, "Internal server error", 500)
	}

	exists, err := s.repo.ExistsByUserAndDate(ctx, uid, date)
	if err != nil {
		return AttendanceResponse{}, apperror.Wrap(err, apperror.CodeInternalError, "Internal server error", 500)
	}
	if exists {
		return AttendanceResponse{}, attendanceerrors.DuplicateDate(req.Date)
	}

	row := &Attendance{
		UserID:       uid,
		EmployeeName: owner.EmployeeName,
		EmployeeID:   owner.EmployeeID,
		Date:         date,
		Status:       req.Status,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return AttendanceResponse{}, mapCreateError(err, req.Date)
	}

	return toResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, userID, recordID string) (string, error) {
	rid, err := uuid.Parse(recordID)
	if err != nil {
		return "", attendanceerrors.ErrInvalidRecordID
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return "", attendanceerrors.ErrOwnerNotResolved
	}

	affected, err := s.repo.DeleteByIDAndUser(ctx, rid, uid)
	if err != nil {
		return "", apperror.Wrap(err, apperror.CodeInternalError, "Failed to delete record.", 500)
	}
	if affected == 0 {
		return "", attendanceerrors.ErrRecordNotFound
	}

	return recordID, nil
}
