package organization

import "errors"

// Organization owns employees and the assignments it issues. Field names
// mirror the store's snake_case wire format.
type Organization struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

func (o Organization) EntityID() int64 {
	return o.ID
}

// Validate checks the shape of a record parsed from a store response.
func (o *Organization) Validate() error {
	if o.ID <= 0 {
		return errors.New("missing id")
	}
	if o.Name == "" {
		return errors.New("missing name")
	}
	return nil
}
