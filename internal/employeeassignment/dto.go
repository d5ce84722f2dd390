package employeeassignment

import (
	"net/url"
	"strconv"
	"time"
)

type CreateParams struct {
	EmployeeID   int64     `json:"employee_id"`
	AssignmentID int64     `json:"assignment_id"`
	StartTime    time.Time `json:"start_time"`
}

type UpdateParams struct {
	EmployeeID         int64      `json:"employee_id"`
	AssignmentID       int64      `json:"assignment_id"`
	StartTime          time.Time  `json:"start_time"`
	EndTime            *time.Time `json:"end_time,omitempty"`
	EvaluationComments string     `json:"evaluation_comments,omitempty"`
}

type evaluateParams struct {
	EvaluationScore    float64 `json:"evaluation_score"`
	EvaluationComments string  `json:"evaluation_comments"`
}

// Filter narrows a listing by employee, assignment and/or completion.
// IsCompleted is a pointer so that "no constraint" and "only incomplete"
// stay distinct; nil fields are omitted from the query entirely.
type Filter struct {
	EmployeeID   int64
	AssignmentID int64
	IsCompleted  *bool
}

func (f *Filter) values() (url.Values, error) {
	if f == nil {
		return nil, nil
	}
	values := url.Values{}
	if f.EmployeeID > 0 {
		values.Set("employee", strconv.FormatInt(f.EmployeeID, 10))
	}
	if f.AssignmentID > 0 {
		values.Set("assignment", strconv.FormatInt(f.AssignmentID, 10))
	}
	if f.IsCompleted != nil {
		values.Set("is_completed", strconv.FormatBool(*f.IsCompleted))
	}
	return values, nil
}
