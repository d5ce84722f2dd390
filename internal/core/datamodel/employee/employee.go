package employee

import (
	"errors"
	"fmt"

	"github.com/frahmantamala/workforce-management/internal/core/common/datetime"
	"github.com/frahmantamala/workforce-management/internal/core/common/ref"
	organizationDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/organization"
)

type Type string

const (
	TypeFullTime Type = "full_time"
	TypeIntern   Type = "intern"
)

func (t Type) Valid() bool {
	switch t {
	case TypeFullTime, TypeIntern:
		return true
	}
	return false
}

// User is the account record nested inside an employee.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Employee belongs to exactly one organization for its lifetime; moving an
// employee is an update of the reference, never a new record.
type Employee struct {
	ID           int64                                       `json:"id"`
	User         User                                        `json:"user"`
	Organization ref.Ref[organizationDatamodel.Organization] `json:"organization"`
	EmployeeType Type                                        `json:"employee_type"`
	Department   string                                      `json:"department"`
	Position     string                                      `json:"position"`
	JoiningDate  datetime.Date                               `json:"joining_date"`
	IsActive     bool                                        `json:"is_active"`
}

func (e Employee) EntityID() int64 {
	return e.ID
}

func (e *Employee) Validate() error {
	if e.ID <= 0 {
		return errors.New("missing id")
	}
	if e.User.Username == "" {
		return errors.New("missing user.username")
	}
	if e.Organization.IsZero() {
		return errors.New("missing organization reference")
	}
	if !e.EmployeeType.Valid() {
		return fmt.Errorf("unrecognized employee_type %q", e.EmployeeType)
	}
	if e.JoiningDate.IsZero() {
		return errors.New("missing joining_date")
	}
	return nil
}
