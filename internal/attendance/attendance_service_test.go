package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	attendanceerrors "github.com/Thato402/employee-attendance-tracker/internal/attendance/errors"
	"github.com/Thato402/employee-attendance-tracker/internal/user"
)

type fakeRepo struct {
	createFn func(ctx context.Context, a *Attendance) error
	findFn   func(ctx context.Context, userID uuid.UUID) ([]Attendance, error)
	existsFn func(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error)
	deleteFn func(ctx context.Context, id, userID uuid.UUID) (int64, error)
}

func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error { return f.createFn(ctx, a) }
func (f *fakeRepo) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]Attendance, error) {
	return f.findFn(ctx, userID)
}
func (f *fakeRepo) ExistsByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error) {
	return f.existsFn(ctx, userID, date)
}
func (f *fakeRepo) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	return f.deleteFn(ctx, id, userID)
}

type fakeUserRepo struct {
	findByIDFn func(ctx context.Context, id uuid.UUID) (*user.User, error)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return f.findByIDFn(ctx, id)
}

func ownerRepo(owner user.User) *fakeUserRepo {
	return &fakeUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) {
			if id == owner.ID {
				return &owner, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func TestService_CreateCarriesOwnerSnapshot(t *testing.T) {
	ownerID := uuid.New()
	owner := user.User{ID: ownerID, EmployeeName: "Ann Lee", EmployeeID: "E100"}

	var saved Attendance
	repo := &fakeRepo{
		existsFn: func(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error) { return false, nil },
		createFn: func(ctx context.Context, a *Attendance) error {
			a.ID = uuid.New()
			a.CreatedAt = time.Now()
			saved = *a
			return nil
		},
	}

	svc := NewService(repo, ownerRepo(owner))
	resp, err := svc.Create(context.Background(), ownerID.String(), CreateRequest{Date: "2024-06-01", Status: StatusPresent})

	assert.NoError(t, err)
	assert.Equal(t, "Ann Lee", saved.EmployeeName)
	assert.Equal(t, "E100", saved.EmployeeID)
	assert.Equal(t, "2024-06-01", resp.Date)
	assert.Equal(t, StatusPresent, resp.Status)
}

func TestService_CreateRejectsBadInput(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeUserRepo{})

	_, err := svc.Create(context.Background(), uuid.New().String(), CreateRequest{Date: "2024-06-01", Status: "present"})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidStatus)

	_, err = svc.Create(context.Background(), uuid.New().String(), CreateRequest{Date: "06/01/2024", Status: StatusAbsent})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)
}

func TestService_CreateOwnerMissingIsServerFault(t *testing.T) {
	repo := &fakeRepo{}
	userRepo := &fakeUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(repo, userRepo)
	_, err := svc.Create(context.Background(), uuid.New().String(), CreateRequest{Date: "2024-06-01", Status: StatusPresent})
	assert.ErrorIs(t, err, attendanceerrors.ErrOwnerNotResolved)
}

func TestService_CreateDuplicateDate(t *testing.T) {
	ownerID := uuid.New()
	owner := user.User{ID: ownerID, EmployeeName: "Ann Lee", EmployeeID: "E100"}

	repo := &fakeRepo{
		existsFn: func(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error) { return true, nil },
	}

	svc := NewService(repo, ownerRepo(owner))
	_, err := svc.Create(context.Background(), ownerID.String(), CreateRequest{Date: "2024-06-01", Status: StatusPresent})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "2024-06-01")
	assert.Contains(t, err.Error(), "already exists")
}

func TestService_CreateDuplicateDateOnInsert(t *testing.T) {
	// Two concurrent submissions both pass the pre-check; the composite
	// unique index rejects the loser and the caller still sees Conflict.
	ownerID := uuid.New()
	owner := user.User{ID: ownerID, EmployeeName: "Ann Lee", EmployeeID: "E100"}

	repo := &fakeRepo{
		existsFn: func(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error) { return false, nil },
		createFn: func(ctx context.Context, a *Attendance) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_user_date"}
		},
	}

	svc := NewService(repo, ownerRepo(owner))
	_, err := svc.Create(context.Background(), ownerID.String(), CreateRequest{Date: "2024-06-01", Status: StatusPresent})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Attendance for 2024-06-01 already exists.")
}

func TestService_ListPreservesRepoOrder(t *testing.T) {
	ownerID := uuid.New()
	dates := []string{"2024-01-03", "2024-01-02", "2024-01-01"}

	repo := &fakeRepo{
		findFn: func(ctx context.Context, userID uuid.UUID) ([]Attendance, error) {
			rows := make([]Attendance, len(dates))
			for i, d := range dates {
				date, _ := time.Parse("2006-01-02", d)
				rows[i] = Attendance{ID: uuid.New(), UserID: userID, Date: date, Status: StatusPresent}
			}
			return rows, nil
		},
	}

	svc := NewService(repo, &fakeUserRepo{})
	resp, err := svc.List(context.Background(), ownerID.String())

	assert.NoError(t, err)
	assert.Len(t, resp, 3)
	for i, d := range dates {
		assert.Equal(t, d, resp[i].Date)
	}
}

func TestService_ListEmptyIsNotAnError(t *testing.T) {
	repo := &fakeRepo{
		findFn: func(ctx context.Context, userID uuid.UUID) ([]Attendance, error) { return nil, nil },
	}

	svc := NewService(repo, &fakeUserRepo{})
	resp, err := svc.List(context.Background(), uuid.New().String())

	assert.NoError(t, err)
	assert.Empty(t, resp)
}

func TestService_DeleteOwnershipScoped(t *testing.T) {
	ownerID := uuid.New()
	recordID := uuid.New()

	deleted := false
	repo := &fakeRepo{
		deleteFn: func(ctx context.Context, id, userID uuid.UUID) (int64, error) {
			if !deleted && id == recordID && userID == ownerID {
				deleted = true
				return 1, nil
			}
			return 0, nil
		},
	}

	svc := NewService(repo, &fakeUserRepo{})

	gone, err := svc.Delete(context.Background(), ownerID.String(), recordID.String())
	assert.NoError(t, err)
	assert.Equal(t, recordID.String(), gone)

	// Second delete of the same id, a foreign record and a random id all
	// fail identically.
	_, secondErr := svc.Delete(context.Background(), ownerID.String(), recordID.String())
	_, foreignErr := svc.Delete(context.Background(), uuid.New().String(), recordID.String())
	_, missingErr := svc.Delete(context.Background(), ownerID.String(), uuid.New().String())

	assert.ErrorIs(t, secondErr, attendanceerrors.ErrRecordNotFound)
	assert.ErrorIs(t, foreignErr, attendanceerrors.ErrRecordNotFound)
	assert.ErrorIs(t, missingErr, attendanceerrors.ErrRecordNotFound)
	assert.Equal(t, secondErr.Error(), foreignErr.Error())
}

func TestService_DeleteInvalidID(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeUserRepo{})

	_, err := svc.Delete(context.Background(), uuid.New().String(), "not-a-uuid")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidRecordID)
}
