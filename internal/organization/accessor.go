package organization

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/workforce-management/internal"
	"github.com/frahmantamala/workforce-management/internal/api"
	assignmentDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/assignment"
	employeeDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/employee"
	organizationDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/organization"
)

const basePath = "/organizations/"

// Accessor exposes the organization operations of the remote store. Every
// call issues a fresh request; nothing is cached between calls.
type Accessor struct {
	api    *api.Client
	logger *slog.Logger
}

func NewAccessor(client *api.Client, logger *slog.Logger) *Accessor {
	return &Accessor{api: client, logger: logger}
}

func (a *Accessor) List(ctx context.Context) ([]*organizationDatamodel.Organization, error) {
	var organizations []*organizationDatamodel.Organization
	if err := a.api.Get(ctx, basePath, nil, &organizations); err != nil {
		a.logger.Error("list organizations failed", "error", err)
		return nil, err
	}
	for _, org := range organizations {
		if err := org.Validate(); err != nil {
			return nil, internal.NewMalformedEntityError("organization", err)
		}
	}
	return organizations, nil
}

func (a *Accessor) GetByID(ctx context.Context, id int64) (*organizationDatamodel.Organization, error) {
	if id <= 0 {
		return nil, internal.NewInvalidIDError("organization", id)
	}
	var org organizationDatamodel.Organization
	if err := a.api.Get(ctx, fmt.Sprintf("%s%d/", basePath, id), nil, &org); err != nil {
		if internal.IsKind(err, internal.ErrorKindNotFound) {
			return nil, internal.NewNotFoundError("organization", id)
		}
		a.logger.Error("get organization failed", "id", id, "error", err)
		return nil, err
	}
	if err := org.Validate(); err != nil {
		return nil, internal.NewMalformedEntityError("organization", err)
	}
	return &org, nil
}

func (a *Accessor) Create(ctx context.Context, params CreateParams) (*organizationDatamodel.Organization, error) {
	var org organizationDatamodel.Organization
	if err := a.api.Post(ctx, basePath, params, &org); err != nil {
		a.logger.Error("create organization failed", "name", params.Name, "error", err)
		return nil, err
	}
	if err := org.Validate(); err != nil {
		return nil, internal.NewMalformedEntityError("organization", err)
	}
	return &org, nil
}

func (a *Accessor) Update(ctx context.Context, id int64, params UpdateParams) (*organizationDatamodel.Organization, error) {
	if id <= 0 {
		return nil, internal.NewInvalidIDError("organization", id)
	}
	var org organizationDatamodel.Organization
	if err := a.api.Put(ctx, fmt.Sprintf("%s%d/", basePath, id), params, &org); err != nil {
		if internal.IsKind(err, internal.ErrorKindNotFound) {
			return nil, internal.NewNotFoundError("organization", id)
		}
		a.logger.Error("update organization failed", "id", id, "error", err)
		return nil, err
	}
	if err := org.Validate(); err != nil {
		return nil, internal.NewMalformedEntityError("organization", err)
	}
	return &org, nil
}

func (a *Accessor) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return internal.NewInvalidIDError("organization", id)
	}
	if err := a.api.Delete(ctx, fmt.Sprintf("%s%d/", basePath, id)); err != nil {
		if internal.IsKind(err, internal.ErrorKindNotFound) {
			return internal.NewNotFoundError("organization", id)
		}
		a.logger.Error("delete organization failed", "id", id, "error", err)
		return err
	}
	return nil
}

// Employees lists the employees belonging to one organization.
func (a *Accessor) Employees(ctx context.Context, id int64) ([]*employeeDatamodel.Employee, error) {
	if id <= 0 {
		return nil, internal.NewInvalidIDError("organization", id)
	}
	var employees []*employeeDatamodel.Employee
	if err := a.api.Get(ctx, fmt.Sprintf("%s%d/employees/", basePath, id), nil, &employees); err != nil {
		if internal.IsKind(err, internal.ErrorKindNotFound) {
			return nil, internal.NewNotFoundError("organization", id)
		}
		a.logger.Error("list organization employees failed", "id", id, "error", err)
		return nil, err
	}
	for _, emp := range employees {
		if err := emp.Validate(); err != nil {
			return nil, internal.NewMalformedEntityError("employee", err)
		}
	}
	return employees, nil
}

// Assignments lists the assignments issued by one organization.
func (a *Accessor) Assignments(ctx context.Context, id int64) ([]*assignmentDatamodel.Assignment, error) {
	if id <= 0 {
		return nil, internal.NewInvalidIDError("organization", id)
	}
	var assignments []*assignmentDatamodel.Assignment
	if err := a.api.Get(ctx, fmt.Sprintf("%s%d/assignments/", basePath, id), nil, &assignments); err != nil {
		if internal.IsKind(err, internal.ErrorKindNotFound) {
			return nil, internal.NewNotFoundError("organization", id)
		}
		a.logger.Error("list organization assignments failed", "id", id, "error", err)
		return nil, err
	}
	for _, asg := range assignments {
		if err := asg.Validate(); err != nil {
			return nil, internal.NewMalformedEntityError("assignment", err)
		}
	}
	return assignments, nil
}
