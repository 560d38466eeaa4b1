package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is an account created by registration. Accounts are never updated or
// deleted; employee_id and email each carry their own unique index, and the
// plaintext password only ever exists in the request; Password holds the
// bcrypt hash.
type User struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeName string    `gorm:"column:employee_name;type:varchar(255);not null"`
	EmployeeID   string    `gorm:"column:employee_id;type:varchar(50);not null;uniqueIndex:uq_users_employee_id"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Password     string    `gorm:"column:password;type:text;not null"`
	Department   string    `gorm:"column:department;type:varchar(100)"`
	Position     string    `gorm:"column:position;type:varchar(100)"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
