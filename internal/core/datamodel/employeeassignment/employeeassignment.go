package employeeassignment

import (
	"errors"
	"fmt"
	"time"

	"github.com/frahmantamala/workforce-management/internal/core/common/ref"
	assignmentDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/assignment"
	employeeDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/employee"
)

// EmployeeAssignment links an employee to an assignment and carries the
// progress and evaluation state of that engagement. The same
// (employee, assignment) pair may appear in several records; id is the only
// identity.
type EmployeeAssignment struct {
	ID         int64                                   `json:"id"`
	Employee   ref.Ref[employeeDatamodel.Employee]     `json:"employee"`
	Assignment ref.Ref[assignmentDatamodel.Assignment] `json:"assignment"`
	StartTime  time.Time                               `json:"start_time"`
	EndTime    *time.Time                              `json:"end_time"`

	// Duration is derived by the store once the record completes; the
	// client never writes it.
	Duration *string `json:"duration"`

	EvaluationScore    *float64 `json:"evaluation_score"`
	EvaluationComments string   `json:"evaluation_comments"`
	IsCompleted        bool     `json:"is_completed"`
}

func (ea EmployeeAssignment) EntityID() int64 {
	return ea.ID
}

// Evaluated reports whether an evaluation has been recorded. Evaluation and
// completion are independent; either can happen without the other.
func (ea *EmployeeAssignment) Evaluated() bool {
	return ea.EvaluationScore != nil
}

func (ea *EmployeeAssignment) Validate() error {
	if ea.ID <= 0 {
		return errors.New("missing id")
	}
	if ea.Employee.IsZero() {
		return errors.New("missing employee reference")
	}
	if ea.Assignment.IsZero() {
		return errors.New("missing assignment reference")
	}
	if ea.StartTime.IsZero() {
		return errors.New("missing start_time")
	}
	if ea.EndTime != nil && ea.EndTime.Before(ea.StartTime) {
		return errors.New("end_time precedes start_time")
	}
	if ea.IsCompleted && ea.EndTime == nil {
		return errors.New("completed record without end_time")
	}
	if ea.EvaluationScore != nil && (*ea.EvaluationScore < 0 || *ea.EvaluationScore > 5) {
		return fmt.Errorf("evaluation_score %v outside [0, 5]", *ea.EvaluationScore)
	}
	return nil
}
