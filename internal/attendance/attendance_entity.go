package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Attendance is one user's record for one calendar date. EmployeeName and
// EmployeeID are a snapshot of the owner taken at creation time; records
// are never updated in place (correcting a day is delete-then-recreate).
// The composite unique index on (user_id, date) is the authoritative guard
// against concurrent duplicate submissions; the service pre-check only
// exists for the friendlier error message.
type Attendance struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;index;uniqueIndex:uq_attendance_user_date"`
	EmployeeName string    `gorm:"column:employee_name;type:varchar(255);not null"`
	EmployeeID   string    `gorm:"column:employee_id;type:varchar(50);not null"`
	Date         time.Time `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_user_date"`
	Status       string    `gorm:"column:status;type:varchar(10);not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`

	User *UserRef `gorm:"foreignKey:UserID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// UserRef anchors the foreign key to the users table.
type UserRef struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (UserRef) TableName() string {
	return "users"
}
