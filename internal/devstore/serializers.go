package devstore

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

type userPayload struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type organizationPayload struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

type employeePayload struct {
	ID           int64               `json:"id"`
	User         userPayload         `json:"user"`
	Organization organizationPayload `json:"organization"`
	EmployeeType string              `json:"employee_type"`
	Department   string              `json:"department"`
	Position     string              `json:"position"`
	JoiningDate  string              `json:"joining_date"`
	IsActive     bool                `json:"is_active"`
}

type assignmentPayload struct {
	ID           int64               `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Organization organizationPayload `json:"organization"`
	Deadline     time.Time           `json:"deadline"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
}

type employeeAssignmentPayload struct {
	ID                 int64             `json:"id"`
	Employee           employeePayload   `json:"employee"`
	Assignment         assignmentPayload `json:"assignment"`
	StartTime          time.Time         `json:"start_time"`
	EndTime            *time.Time        `json:"end_time"`
	Duration           *string           `json:"duration"`
	EvaluationScore    *float64          `json:"evaluation_score"`
	EvaluationComments string            `json:"evaluation_comments"`
	IsCompleted        bool              `json:"is_completed"`
}

func renderUser(u *User) userPayload {
	return userPayload{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

func renderOrganization(o *Organization) organizationPayload {
	return organizationPayload{
		ID:          o.ID,
		Name:        o.Name,
		Description: o.Description,
		Address:     o.Address,
	}
}

func renderEmployee(e *Employee) employeePayload {
	return employeePayload{
		ID:           e.ID,
		User:         renderUser(&e.User),
		Organization: renderOrganization(&e.Organization),
		EmployeeType: e.EmployeeType,
		Department:   e.Department,
		Position:     e.Position,
		JoiningDate:  e.JoiningDate.Format(dateLayout),
		IsActive:     e.IsActive,
	}
}

func renderAssignment(a *Assignment) assignmentPayload {
	return assignmentPayload{
		ID:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		Organization: renderOrganization(&a.Organization),
		Deadline:     a.Deadline,
		Status:       a.Status,
		CreatedAt:    a.CreatedAt,
	}
}

func renderEmployeeAssignment(ea *EmployeeAssignment) employeeAssignmentPayload {
	return employeeAssignmentPayload{
		ID:                 ea.ID,
		Employee:           renderEmployee(&ea.Employee),
		Assignment:         renderAssignment(&ea.Assignment),
		StartTime:          ea.StartTime,
		EndTime:            ea.EndTime,
		Duration:           durationString(ea.StartTime, ea.EndTime),
		EvaluationScore:    ea.EvaluationScore,
		EvaluationComments: ea.EvaluationComments,
		IsCompleted:        ea.IsCompleted,
	}
}

func renderEmployeeAssignments(records []EmployeeAssignment) []employeeAssignmentPayload {
	payloads := make([]employeeAssignmentPayload, len(records))
	for i := range records {
		payloads[i] = renderEmployeeAssignment(&records[i])
	}
	return payloads
}

// durationString derives the reported duration from the two timestamps,
// null until the record has an end_time.
func durationString(start time.Time, end *time.Time) *string {
	if end == nil {
		return nil
	}
	elapsed := end.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}

	total := int64(elapsed.Seconds())
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var text string
	if days > 0 {
		text = fmt.Sprintf("%d %02d:%02d:%02d", days, hours, minutes, seconds)
	} else {
		text = fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return &text
}
