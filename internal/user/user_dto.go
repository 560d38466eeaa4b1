package user

import "time"

type ProfileResponse struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employeeName"`
	EmployeeID   string `json:"employeeID"`
	Email        string `json:"email"`
	Department   string `json:"department,omitempty"`
	Position     string `json:"position,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

func toProfileResponse(u *User) ProfileResponse {
	return ProfileResponse{
		ID:           u.ID.String(),
		EmployeeName: u.EmployeeName,
		EmployeeID:   u.EmployeeID,
		Email:        u.Email,
		Department:   u.Department,
		Position:     u.Position,
		CreatedAt:    u.CreatedAt.UTC().Format(time.RFC3339),
	}
}
