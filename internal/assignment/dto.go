package assignment

import (
	"net/url"
	"strconv"
	"time"

	"github.com/frahmantamala/workforce-management/internal"
	assignmentDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/assignment"
)

type CreateParams struct {
	Title          string                     `json:"title"`
	Description    string                     `json:"description"`
	OrganizationID int64                      `json:"organization_id"`
	Deadline       time.Time                  `json:"deadline"`
	Status         assignmentDatamodel.Status `json:"status,omitempty"`
}

type UpdateParams struct {
	Title          string                     `json:"title"`
	Description    string                     `json:"description"`
	OrganizationID int64                      `json:"organization_id"`
	Deadline       time.Time                  `json:"deadline"`
	Status         assignmentDatamodel.Status `json:"status"`
}

// Filter narrows a listing by owning organization and/or status. Unset
// fields are omitted from the query; an out-of-vocabulary status is
// rejected before any request goes out.
type Filter struct {
	OrganizationID int64
	Status         assignmentDatamodel.Status
}

func (f *Filter) values() (url.Values, error) {
	if f == nil {
		return nil, nil
	}
	values := url.Values{}
	if f.OrganizationID > 0 {
		values.Set("organization", strconv.FormatInt(f.OrganizationID, 10))
	}
	if f.Status != "" {
		if !f.Status.Valid() {
			return nil, internal.NewInvalidFilterError("status", string(f.Status))
		}
		values.Set("status", string(f.Status))
	}
	return values, nil
}
