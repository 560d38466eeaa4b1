package auth

import "time"

type RegisterRequest struct {
	EmployeeName string `json:"employeeName" binding:"required"`
	EmployeeID   string `json:"employeeID" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	Department   string `json:"department"`
	Position     string `json:"position"`
}

type LoginRequest struct {
	EmployeeID string `json:"employeeID" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// UserResponse is the public view of an account. It deliberately has no
// password field so the hash can never reach a caller.
type UserResponse struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employeeName"`
	EmployeeID   string `json:"employeeID"`
	Email        string `json:"email"`
	Department   string `json:"department,omitempty"`
	Position     string `json:"position,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

func toUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:           u.ID.String(),
		EmployeeName: u.EmployeeName,
		EmployeeID:   u.EmployeeID,
		Email:        u.Email,
		Department:   u.Department,
		Position:     u.Position,
		CreatedAt:    u.CreatedAt.UTC().Format(time.RFC3339),
	}
}
