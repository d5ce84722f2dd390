package assignment

import (
	"errors"
	"fmt"
	"time"

	"github.com/frahmantamala/workforce-management/internal/core/common/ref"
	organizationDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/organization"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Assignment is a unit of work an organization issues. CreatedAt is set by
// the store once and never changes.
type Assignment struct {
	ID           int64                                       `json:"id"`
	Title        string                                      `json:"title"`
	Description  string                                      `json:"description"`
	Organization ref.Ref[organizationDatamodel.Organization] `json:"organization"`
	Deadline     time.Time                                   `json:"deadline"`
	Status       Status                                      `json:"status"`
	CreatedAt    time.Time                                   `json:"created_at"`
}

func (a Assignment) EntityID() int64 {
	return a.ID
}

func (a *Assignment) Validate() error {
	if a.ID <= 0 {
		return errors.New("missing id")
	}
	if a.Title == "" {
		return errors.New("missing title")
	}
	if a.Organization.IsZero() {
		return errors.New("missing organization reference")
	}
	if !a.Status.Valid() {
		return fmt.Errorf("unrecognized status %q", a.Status)
	}
	return nil
}
