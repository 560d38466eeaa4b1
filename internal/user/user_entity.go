package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the read model over the users table. Writes go through the auth
// package; this side only ever queries.
type User struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeName string    `gorm:"column:employee_name"`
	EmployeeID   string    `gorm:"column:employee_id"`
	Email        string    `gorm:"column:email"`
	Department   string    `gorm:"column:department"`
	Position     string    `gorm:"column:position"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}
