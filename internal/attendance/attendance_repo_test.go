package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)
	return gormDB, mock
}

func TestRepository_FindAllByUserOrdersByDateThenCreated(t *testing.T) {
	gormDB, mock := newMockGorm(t)
	repo := NewRepository(gormDB)

	userID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "user_id", "employee_name", "employee_id", "date", "status", "created_at"}).
		AddRow(uuid.New(), userID, "Ann Lee", "E100", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), "Present", now).
		AddRow(uuid.New(), userID, "Ann Lee", "E100", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "Absent", now).
		AddRow(uuid.New(), userID, "Ann Lee", "E100", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Present", now)

	// The ordering clause is part of the contract: date descending, ties
	// broken by creation time descending.
	mock.ExpectQuery(`SELECT \* FROM "attendance" WHERE user_id = \$1 ORDER BY date DESC, created_at DESC`).
		WithArgs(userID).
		WillReturnRows(rows)

	got, err := repo.FindAllByUser(context.Background(), userID)
	assert.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "2024-01-03", got[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-01-01", got[2].Date.Format("2006-01-02"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExistsByUserAndDate(t *testing.T) {
	gormDB, mock := newMockGorm(t)
	repo := NewRepository(gormDB)

	userID := uuid.New()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "attendance" WHERE user_id = \$1 AND date = \$2`).
		WithArgs(userID, "2024-06-01").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByUserAndDate(context.Background(), userID, date)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteByIDAndUserReportsAffectedRows(t *testing.T) {
	gormDB, mock := newMockGorm(t)
	repo := NewRepository(gormDB)

	recordID := uuid.New()
	userID := uuid.New()

	mock.ExpectExec(`DELETE FROM "attendance" WHERE id = \$1 AND user_id = \$2`).
		WithArgs(recordID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.DeleteByIDAndUser(context.Background(), recordID, userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	mock.ExpectExec(`DELETE FROM "attendance" WHERE id = \$1 AND user_id = \$2`).
		WithArgs(recordID, userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err = repo.DeleteByIDAndUser(context.Background(), recordID, userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
