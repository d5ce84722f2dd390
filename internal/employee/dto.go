package employee

import (
	"net/url"
	"strconv"

	"github.com/frahmantamala/workforce-management/internal/core/common/datetime"
	employeeDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/employee"
)

// UserParams carries the account fields sent inline when creating or
// replacing an employee.
type UserParams struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type CreateParams struct {
	User           UserParams             `json:"user"`
	OrganizationID int64                  `json:"organization_id"`
	EmployeeType   employeeDatamodel.Type `json:"employee_type"`
	Department     string                 `json:"department"`
	Position       string                 `json:"position"`
	JoiningDate    datetime.Date          `json:"joining_date"`
	IsActive       bool                   `json:"is_active"`
}

type UpdateParams struct {
	User           UserParams             `json:"user"`
	OrganizationID int64                  `json:"organization_id"`
	EmployeeType   employeeDatamodel.Type `json:"employee_type"`
	Department     string                 `json:"department"`
	Position       string                 `json:"position"`
	JoiningDate    datetime.Date          `json:"joining_date"`
	IsActive       bool                   `json:"is_active"`
}

// Filter narrows a listing; a zero OrganizationID means no constraint and
// the key is omitted from the query entirely.
type Filter struct {
	OrganizationID int64
}

func (f *Filter) values() (url.Values, error) {
	if f == nil {
		return nil, nil
	}
	values := url.Values{}
	if f.OrganizationID > 0 {
		values.Set("organization", strconv.FormatInt(f.OrganizationID, 10))
	}
	return values, nil
}
