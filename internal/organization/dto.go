package organization

type CreateParams struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address,omitempty"`
}

// UpdateParams is a full replacement; the store treats PUT as a complete
// rewrite of the mutable fields.
type UpdateParams struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address,omitempty"`
}
