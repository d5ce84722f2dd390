package employeeassignment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/workforce-management/internal"
	"github.com/frahmantamala/workforce-management/internal/api"
	employeeassignmentDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/employeeassignment"
)

const basePath = "/employee-assignments/"

// Accessor exposes the engagement records linking employees to
// assignments, including the completion and evaluation actions.
type Accessor struct {
	api    *api.Client
	logger *slog.Logger
}

func NewAccessor(client *api.Client, logger *slog.Logger) *Accessor {
	return &Accessor{api: client, logger: logger}
}

func (a *Accessor) List(ctx context.Context, filter *Filter) ([]*employeeassignmentDatamodel.EmployeeAssignment, error) {
	query, err := filter.values()
	if err != nil {
		return nil, err
	}
	var records []*employeeassignmentDatamodel.EmployeeAssignment
	if err := a.api.Get(ctx, basePath, query, &records); err != nil {
		a.logger.Error("list employee assignments failed", "error", err)
		return nil, err
	}
	for _, record := range records {
		if err := record.Validate(); err != nil {
			return nil, internal.NewMalformedEntityError("employee assignment", err)
		}
	}
	return records, nil
}

func (a *Accessor) GetByID(ctx context.Context, id int64) (*employeeassignmentDatamodel.EmployeeAssignment, error) {
	if id <= 0 {
		return nil, internal.NewInvalidIDError("employee assignment", id)
	}
	var record employeeassignmentDatamodel.EmployeeAssignment
	if err := a.api.Get(ctx, fmt.Sprintf("%s%d/", basePath, id), nil, &record); err != nil {
		if internal.IsKind(err, internal.ErrorKindNotFound) {
			return nil, internal.NewNotFoundError("employee assignment", id)
		}
		a.logger.Error("get employee assignment failed", "id", id, "error", err)
		return nil, err
	}
	if err := record.Validate(); err != nil {
		return nil, internal.NewMalformedEntityError("employee assignment", err)
	}
	return &record, nil
}

// Create starts an engagement; the store answers with an in-progress record
// (is_completed false, end_time null).
func (a *Accessor) Create(ctx context.Context, params CreateParams) (*employeeassignmentDatamodel.EmployeeAssignment, error) {
	var record employeeassignmentDatamodel.EmployeeAssignment
	if err := a.api.Post(ctx, basePath, params, &record); err != nil {
		a.logger.Error("create employee assignment failed",
			"employee_id", params.EmployeeID,
			"assignment_id", params.AssignmentID,
			"error", err)
		return nil, err
	}
	if err := record.Validate(); err != nil {
		return nil, internal.NewMalformedEntityError("employee assignment", err)
	}
	return &record, nil
}

func (a *Accessor) Update(ctx context.Context, id int64, params UpdateParams) (*employeeassignmentDatamodel.EmployeeAssignment, error) {
	if id <= 0 {
		return nil, internal.NewInvalidIDError("employee assignment", id)
	}
	var record employeeassignmentDatamodel.EmployeeAssignment
	if err := a.api.Put(ctx, fmt.Sprintf("%s%d/", basePath, id), params, &record); err != nil {
		if internal.IsKind(err, internal.ErrorKindNotFound) {
			return nil, internal.NewNotFoundError("employee assignment", id)
		}
		a.logger.Error("update employee assignment failed", "id", id, "error", err)
		return nil, err
	}
	if err := record.Validate(); err != nil {
		return nil, internal.NewMalformedEntityError("employee assignment", err)
	}
	return &record, nil
}

func (a *Accessor) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return internal.NewInvalidIDError("employee assignment", id)
	}
	if err := a.api.Delete(ctx, fmt.Sprintf("%s%d/", basePath, id)); err != nil {
		if internal.IsKind(err, internal.ErrorKindNotFound) {
			return internal.NewNotFoundError("employee assignment", id)
		}
		a.logger.Error("delete employee assignment failed", "id", id, "error", err)
		return err
	}
	return nil
}

// Complete marks the record finished. The store sets end_time on the first
// completion and derives duration; completing an already-completed record
// is a no-op that returns the current state unchanged.
func (a *Accessor) Complete(ctx context.Context, id int64) (*employeeassignmentDatamodel.EmployeeAssignment, error) {
	if id <= 0 {
		return nil, internal.NewInvalidIDError("employee assignment", id)
	}
	var record employeeassignmentDatamodel.EmployeeAssignment
	if err := a.api.Post(ctx, fmt.Sprintf("%s%d/complete/", basePath, id), nil, &record); err != nil {
		if internal.IsKind(err, internal.ErrorKindNotFound) {
			return nil, internal.NewNotFoundError("employee assignment", id)
		}
		a.logger.Error("complete employee assignment failed", "id", id, "error", err)
		return nil, err
	}
	if err := record.Validate(); err != nil {
		return nil, internal.NewMalformedEntityError("employee assignment", err)
	}
	return &record, nil
}

// Evaluate records a score and comments. Evaluation is independent of
// completion; it may happen before or after, and the score must lie in
// [0, 5]. The bound is checked before any request goes out, and the store
// enforces the same rule.
func (a *Accessor) Evaluate(ctx context.Context, id int64, score float64, comments string) (*employeeassignmentDatamodel.EmployeeAssignment, error) {
	if id <= 0 {
		return nil, internal.NewInvalidIDError("employee assignment", id)
	}
	if score < 0 || score > 5 {
		return nil, internal.NewValidationError("evaluation score must be between 0 and 5", []internal.FieldError{
			{Field: "evaluation_score", Message: fmt.Sprintf("%v is outside [0, 5]", score)},
		})
	}
	params := evaluateParams{EvaluationScore: score, EvaluationComments: comments}
	var record employeeassignmentDatamodel.EmployeeAssignment
	if err := a.api.Post(ctx, fmt.Sprintf("%s%d/evaluate/", basePath, id), params, &record); err != nil {
		if internal.IsKind(err, internal.ErrorKindNotFound) {
			return nil, internal.NewNotFoundError("employee assignment", id)
		}
		a.logger.Error("evaluate employee assignment failed", "id", id, "error", err)
		return nil, err
	}
	if err := record.Validate(); err != nil {
		return nil, internal.NewMalformedEntityError("employee assignment", err)
	}
	return &record, nil
}
