package assignment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/workforce-management/internal"
	"github.com/frahmantamala/workforce-management/internal/api"
	assignmentDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/assignment"
	employeeassignmentDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/employeeassignment"
)

const basePath = "/assignments/"

type Accessor struct {
	api    *api.Client
	logger *slog.Logger
}

func NewAccessor(client *api.Client, logger *slog.Logger) *Accessor {
	return &Accessor{api: client, logger: logger}
}

func (a *Accessor) List(ctx context.Context, filter *Filter) ([]*assignmentDatamodel.Assignment, error) {
	query, err := filter.values()
	if err != nil {
		return nil, err
	}
	var assignments []*assignmentDatamodel.Assignment
	if err := a.api.Get(ctx, basePath, query, &assignments); err != nil {
		a.logger.Error("list assignments failed", "error", err)
		return nil, err
	}
	for _, asg := range assignments {
		if err := asg.Validate(); err != nil {
			return nil, internal.NewMalformedEntityError("assignment", err)
		}
	}
	return assignments, nil
}

func (a *Accessor) GetByID(ctx context.Context, id int64) (*assignmentDatamodel.Assignment, error) {
	if id <= 0 {
		return nil, internal.NewInvalidIDError("assignment", id)
	}
	var asg assignmentDatamodel.Assignment
	if err := a.api.Get(ctx, fmt.Sprintf("%s%d/", basePath, id), nil, &asg); err != nil {
		if internal.IsKind(err, internal.ErrorKindNotFound) {
			return nil, internal.NewNotFoundError("assignment", id)
		}
		a.logger.Error("get assignment failed", "id", id, "error", err)
		return nil, err
	}
	if err := asg.Validate(); err != nil {
		return nil, internal.NewMalformedEntityError("assignment", err)
	}
	return &asg, nil
}

func (a *Accessor) Create(ctx context.Context, params CreateParams) (*assignmentDatamodel.Assignment, error) {
	var asg assignmentDatamodel.Assignment
	if err := a.api.Post(ctx, basePath, params, &asg); err != nil {
		a.logger.Error("create assignment failed", "title", params.Title, "error", err)
		return nil, err
	}
	if err := asg.Validate(); err != nil {
		return nil, internal.NewMalformedEntityError("assignment", err)
	}
	return &asg, nil
}

func (a *Accessor) Update(ctx context.Context, id int64, params UpdateParams) (*assignmentDatamodel.Assignment, error) {
	if id <= 0 {
		return nil, internal.NewInvalidIDError("assignment", id)
	}
	var asg assignmentDatamodel.Assignment
	if err := a.api.Put(ctx, fmt.Sprintf("%s%d/", basePath, id), params, &asg); err != nil {
		if internal.IsKind(err, internal.ErrorKindNotFound) {
			return nil, internal.NewNotFoundError("assignment", id)
		}
		a.logger.Error("update assignment failed", "id", id, "error", err)
		return nil, err
	}
	if err := asg.Validate(); err != nil {
		return nil, internal.NewMalformedEntityError("assignment", err)
	}
	return &asg, nil
}

func (a *Accessor) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return internal.NewInvalidIDError("assignment", id)
	}
	if err := a.api.Delete(ctx, fmt.Sprintf("%s%d/", basePath, id)); err != nil {
		if internal.IsKind(err, internal.ErrorKindNotFound) {
			return internal.NewNotFoundError("assignment", id)
		}
		a.logger.Error("delete assignment failed", "id", id, "error", err)
		return err
	}
	return nil
}

// AssignedEmployees lists the engagement records for one assignment, each
// embedding the full employee.
func (a *Accessor) AssignedEmployees(ctx context.Context, id int64) ([]*employeeassignmentDatamodel.EmployeeAssignment, error) {
	if id <= 0 {
		return nil, internal.NewInvalidIDError("assignment", id)
	}
	var records []*employeeassignmentDatamodel.EmployeeAssignment
	if err := a.api.Get(ctx, fmt.Sprintf("%s%d/assigned_employees/", basePath, id), nil, &records); err != nil {
		if internal.IsKind(err, internal.ErrorKindNotFound) {
			return nil, internal.NewNotFoundError("assignment", id)
		}
		a.logger.Error("list assigned employees failed", "id", id, "error", err)
		return nil, err
	}
	for _, record := range records {
		if err := record.Validate(); err != nil {
			return nil, internal.NewMalformedEntityError("employee assignment", err)
		}
	}
	return records, nil
}
