package devstore

import (
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"
)

type assignmentInput struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	OrganizationID int64      `json:"organization_id"`
	Deadline       *time.Time `json:"deadline"`
	Status         string     `json:"status"`
}

func validAssignmentStatus(s string) bool {
	return s == "pending" || s == "in_progress" || s == "completed"
}

func (h *Handler) validateAssignmentInput(in *assignmentInput) map[string][]string {
	fieldErrors := map[string][]string{}

	if in.Title == "" {
		fieldErrors["title"] = append(fieldErrors["title"], "This field is required.")
	}
	if in.OrganizationID <= 0 {
		fieldErrors["organization_id"] = append(fieldErrors["organization_id"], "This field is required.")
	} else if err := h.db.First(&Organization{}, in.OrganizationID).Error; err != nil {
		fieldErrors["organization_id"] = append(fieldErrors["organization_id"], "Invalid pk - object does not exist.")
	}
	if in.Deadline == nil {
		fieldErrors["deadline"] = append(fieldErrors["deadline"], "This field is required.")
	}
	if in.Status == "" {
		in.Status = "pending"
	} else if !validAssignmentStatus(in.Status) {
		fieldErrors["status"] = append(fieldErrors["status"], "Not a valid choice.")
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

func (h *Handler) loadAssignment(w http.ResponseWriter, id int64) (*Assignment, bool) {
	var asg Assignment
	if err := h.db.Preload("Organization").First(&asg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.writeNotFound(w)
			return nil, false
		}
		h.writeStorageError(w, err)
		return nil, false
	}
	return &asg, true
}

func (h *Handler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	query := h.db.Preload("Organization").Order("id")
	if org := r.URL.Query().Get("organization"); org != "" {
		query = query.Where("organization_id = ?", org)
	}
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var assignments []Assignment
	if err := query.Find(&assignments).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}

	payloads := make([]assignmentPayload, len(assignments))
	for i := range assignments {
		payloads[i] = renderAssignment(&assignments[i])
	}
	h.WriteJSON(w, http.StatusOK, payloads)
}

func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var in assignmentInput
	if !h.decodeInto(w, r, &in) {
		return
	}
	if fieldErrors := h.validateAssignmentInput(&in); fieldErrors != nil {
		h.WriteFieldErrors(w, fieldErrors)
		return
	}

	asg := Assignment{
		Title:          in.Title,
		Description:    in.Description,
		OrganizationID: in.OrganizationID,
		Deadline:       *in.Deadline,
		Status:         in.Status,
	}
	if err := h.db.Create(&asg).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}

	created, ok := h.loadAssignment(w, asg.ID)
	if !ok {
		return
	}
	h.WriteJSON(w, http.StatusCreated, renderAssignment(created))
}

func (h *Handler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	asg, ok := h.loadAssignment(w, id)
	if !ok {
		return
	}
	h.WriteJSON(w, http.StatusOK, renderAssignment(asg))
}

func (h *Handler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	asg, ok := h.loadAssignment(w, id)
	if !ok {
		return
	}

	var in assignmentInput
	if !h.decodeInto(w, r, &in) {
		return
	}
	if fieldErrors := h.validateAssignmentInput(&in); fieldErrors != nil {
		h.WriteFieldErrors(w, fieldErrors)
		return
	}

	asg.Title = in.Title
	asg.Description = in.Description
	asg.OrganizationID = in.OrganizationID
	asg.Deadline = *in.Deadline
	asg.Status = in.Status
	if err := h.db.Save(asg).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}

	updated, ok := h.loadAssignment(w, asg.ID)
	if !ok {
		return
	}
	h.WriteJSON(w, http.StatusOK, renderAssignment(updated))
}

func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	asg, ok := h.loadAssignment(w, id)
	if !ok {
		return
	}

	var dependents int64
	if err := h.db.Model(&EmployeeAssignment{}).Where("assignment_id = ?", id).Count(&dependents).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}
	if dependents > 0 {
		h.WriteError(w, http.StatusConflict, "assignment still has employee records")
		return
	}

	if err := h.db.Delete(asg).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignedEmployees lists the engagement records for one assignment.
func (h *Handler) AssignedEmployees(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if _, ok := h.loadAssignment(w, id); !ok {
		return
	}

	var records []EmployeeAssignment
	err := h.db.
		Preload("Employee.User").Preload("Employee.Organization").
		Preload("Assignment.Organization").
		Where("assignment_id = ?", id).Order("id").Find(&records).Error
	if err != nil {
		h.writeStorageError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, renderEmployeeAssignments(records))
}
