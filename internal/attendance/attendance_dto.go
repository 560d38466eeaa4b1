package attendance

import "time"

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

const dateLayout = "2006-01-02"

type CreateRequest struct {
	Date   string `json:"date" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type AttendanceResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	EmployeeName string `json:"employeeName"`
	EmployeeID   string `json:"employeeID"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

func toResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID.String(),
		UserID:       a.UserID.String(),
		EmployeeName: a.EmployeeName,
		EmployeeID:   a.EmployeeID,
		Date:         a.Date.Format(dateLayout),
		Status:       a.Status,
		CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
