package devstore

import (
	"github.com/go-chi/chi"

	"github.com/frahmantamala/workforce-management/internal/transport/middleware"
)

// NewRouter wires the /api surface. Paths keep the store's trailing
// slashes so clients can use identical URLs against either backend.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.Recovery)

	r.Route("/api", func(api chi.Router) {
		api.Get("/organizations/", h.ListOrganizations)
		api.Post("/organizations/", h.CreateOrganization)
		api.Get("/organizations/{id}/", h.GetOrganization)
		api.Put("/organizations/{id}/", h.UpdateOrganization)
		api.Delete("/organizations/{id}/", h.DeleteOrganization)
		api.Get("/organizations/{id}/employees/", h.OrganizationEmployees)
		api.Get("/organizations/{id}/assignments/", h.OrganizationAssignments)

		api.Get("/employees/", h.ListEmployees)
		api.Post("/employees/", h.CreateEmployee)
		api.Get("/employees/{id}/", h.GetEmployee)
		api.Put("/employees/{id}/", h.UpdateEmployee)
		api.Delete("/employees/{id}/", h.DeleteEmployee)
		api.Get("/employees/{id}/assignments/", h.EmployeeAssignments)

		api.Get("/assignments/", h.ListAssignments)
		api.Post("/assignments/", h.CreateAssignment)
		api.Get("/assignments/{id}/", h.GetAssignment)
		api.Put("/assignments/{id}/", h.UpdateAssignment)
		api.Delete("/assignments/{id}/", h.DeleteAssignment)
		api.Get("/assignments/{id}/assigned_employees/", h.AssignedEmployees)

		api.Get("/employee-assignments/", h.ListEmployeeAssignments)
		api.Post("/employee-assignments/", h.CreateEmployeeAssignment)
		api.Get("/employee-assignments/{id}/", h.GetEmployeeAssignment)
		api.Put("/employee-assignments/{id}/", h.UpdateEmployeeAssignment)
		api.Delete("/employee-assignments/{id}/", h.DeleteEmployeeAssignment)
		api.Post("/employee-assignments/{id}/complete/", h.CompleteEmployeeAssignment)
		api.Post("/employee-assignments/{id}/evaluate/", h.EvaluateEmployeeAssignment)
	})

	return r
}
