package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/workforce-management/internal"
	"github.com/frahmantamala/workforce-management/internal/api"
	employeeDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/employee"
	employeeassignmentDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/employeeassignment"
)

const basePath = "/employees/"

type Accessor struct {
	api    *api.Client
	logger *slog.Logger
}

func NewAccessor(client *api.Client, logger *slog.Logger) *Accessor {
	return &Accessor{api: client, logger: logger}
}

func (a *Accessor) List(ctx context.Context, filter *Filter) ([]*employeeDatamodel.Employee, error) {
	query, err := filter.values()
	if err != nil {
		return nil, err
	}
	var employees []*employeeDatamodel.Employee
	if err := a.api.Get(ctx, basePath, query, &employees); err != nil {
		a.logger.Error("list employees failed", "error", err)
		return nil, err
	}
	for _, emp := range employees {
		if err := emp.Validate(); err != nil {
			return nil, internal.NewMalformedEntityError("employee", err)
		}
	}
	return employees, nil
}

func (a *Accessor) GetByID(ctx context.Context, id int64) (*employeeDatamodel.Employee, error) {
	if id <= 0 {
		return nil, internal.NewInvalidIDError("employee", id)
	}
	var emp employeeDatamodel.Employee
	if err := a.api.Get(ctx, fmt.Sprintf("%s%d/", basePath, id), nil, &emp); err != nil {
		if internal.IsKind(err, internal.ErrorKindNotFound) {
			return nil, internal.NewNotFoundError("employee", id)
		}
		a.logger.Error("get employee failed", "id", id, "error", err)
		return nil, err
	}
	if err := emp.Validate(); err != nil {
		return nil, internal.NewMalformedEntityError("employee", err)
	}
	return &emp, nil
}

func (a *Accessor) Create(ctx context.Context, params CreateParams) (*employeeDatamodel.Employee, error) {
	var emp employeeDatamodel.Employee
	if err := a.api.Post(ctx, basePath, params, &emp); err != nil {
		a.logger.Error("create employee failed", "username", params.User.Username, "error", err)
		return nil, err
	}
	if err := emp.Validate(); err != nil {
		return nil, internal.NewMalformedEntityError("employee", err)
	}
	return &emp, nil
}

func (a *Accessor) Update(ctx context.Context, id int64, params UpdateParams) (*employeeDatamodel.Employee, error) {
	if id <= 0 {
		return nil, internal.NewInvalidIDError("employee", id)
	}
	var emp employeeDatamodel.Employee
	if err := a.api.Put(ctx, fmt.Sprintf("%s%d/", basePath, id), params, &emp); err != nil {
		if internal.IsKind(err, internal.ErrorKindNotFound) {
			return nil, internal.NewNotFoundError("employee", id)
		}
		a.logger.Error("update employee failed", "id", id, "error", err)
		return nil, err
	}
	if err := emp.Validate(); err != nil {
		return nil, internal.NewMalformedEntityError("employee", err)
	}
	return &emp, nil
}

func (a *Accessor) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return internal.NewInvalidIDError("employee", id)
	}
	if err := a.api.Delete(ctx, fmt.Sprintf("%s%d/", basePath, id)); err != nil {
		if internal.IsKind(err, internal.ErrorKindNotFound) {
			return internal.NewNotFoundError("employee", id)
		}
		a.logger.Error("delete employee failed", "id", id, "error", err)
		return err
	}
	return nil
}

// Assignments is the dedicated read path for one employee's engagement
// records. Each returned record embeds the full assignment, unlike the
// general employee-assignment listing filtered by employee, but both paths
// are backed by the same records.
func (a *Accessor) Assignments(ctx context.Context, id int64) ([]*employeeassignmentDatamodel.EmployeeAssignment, error) {
	if id <= 0 {
		return nil, internal.NewInvalidIDError("employee", id)
	}
	var records []*employeeassignmentDatamodel.EmployeeAssignment
	if err := a.api.Get(ctx, fmt.Sprintf("%s%d/assignments/", basePath, id), nil, &records); err != nil {
		if internal.IsKind(err, internal.ErrorKindNotFound) {
			return nil, internal.NewNotFoundError("employee", id)
		}
		a.logger.Error("list employee assignments failed", "id", id, "error", err)
		return nil, err
	}
	for _, record := range records {
		if err := record.Validate(); err != nil {
			return nil, internal.NewMalformedEntityError("employee assignment", err)
		}
	}
	return records, nil
}
