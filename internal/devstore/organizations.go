package devstore

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

type organizationInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

func (in *organizationInput) validate() map[string][]string {
	fieldErrors := map[string][]string{}
	if in.Name == "" {
		fieldErrors["name"] = append(fieldErrors["name"], "This field is required.")
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

func (h *Handler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	var organizations []Organization
	if err := h.db.Order("id").Find(&organizations).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}

	payloads := make([]organizationPayload, len(organizations))
	for i := range organizations {
		payloads[i] = renderOrganization(&organizations[i])
	}
	h.WriteJSON(w, http.StatusOK, payloads)
}

func (h *Handler) CreateOrganization(w http.ResponseWriter, r *http.Request) {
	var in organizationInput
	if !h.decodeInto(w, r, &in) {
		return
	}
	if fieldErrors := in.validate(); fieldErrors != nil {
		h.WriteFieldErrors(w, fieldErrors)
		return
	}

	org := Organization{Name: in.Name, Description: in.Description, Address: in.Address}
	if err := h.db.Create(&org).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, renderOrganization(&org))
}

func (h *Handler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var org Organization
	if err := h.db.First(&org, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.writeNotFound(w)
			return
		}
		h.writeStorageError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, renderOrganization(&org))
}

func (h *Handler) UpdateOrganization(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var org Organization
	if err := h.db.First(&org, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.writeNotFound(w)
			return
		}
		h.writeStorageError(w, err)
		return
	}

	var in organizationInput
	if !h.decodeInto(w, r, &in) {
		return
	}
	if fieldErrors := in.validate(); fieldErrors != nil {
		h.WriteFieldErrors(w, fieldErrors)
		return
	}

	org.Name = in.Name
	org.Description = in.Description
	org.Address = in.Address
	if err := h.db.Save(&org).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, renderOrganization(&org))
}

func (h *Handler) DeleteOrganization(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var org Organization
	if err := h.db.First(&org, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.writeNotFound(w)
			return
		}
		h.writeStorageError(w, err)
		return
	}

	var dependents int64
	if err := h.db.Model(&Employee{}).Where("organization_id = ?", id).Count(&dependents).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}
	if dependents == 0 {
		if err := h.db.Model(&Assignment{}).Where("organization_id = ?", id).Count(&dependents).Error; err != nil {
			h.writeStorageError(w, err)
			return
		}
	}
	if dependents > 0 {
		h.WriteError(w, http.StatusConflict, "organization still has employees or assignments")
		return
	}

	if err := h.db.Delete(&org).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) OrganizationEmployees(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.db.First(&Organization{}, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.writeNotFound(w)
			return
		}
		h.writeStorageError(w, err)
		return
	}

	var employees []Employee
	err := h.db.Preload("User").Preload("Organization").
		Where("organization_id = ?", id).Order("id").Find(&employees).Error
	if err != nil {
		h.writeStorageError(w, err)
		return
	}

	payloads := make([]employeePayload, len(employees))
	for i := range employees {
		payloads[i] = renderEmployee(&employees[i])
	}
	h.WriteJSON(w, http.StatusOK, payloads)
}

func (h *Handler) OrganizationAssignments(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.db.First(&Organization{}, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.writeNotFound(w)
			return
		}
		h.writeStorageError(w, err)
		return
	}

	var assignments []Assignment
	err := h.db.Preload("Organization").
		Where("organization_id = ?", id).Order("id").Find(&assignments).Error
	if err != nil {
		h.writeStorageError(w, err)
		return
	}

	payloads := make([]assignmentPayload, len(assignments))
	for i := range assignments {
		payloads[i] = renderAssignment(&assignments[i])
	}
	h.WriteJSON(w, http.StatusOK, payloads)
}
