package devstore

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gorm.io/gorm"
)

type employeeAssignmentInput struct {
	EmployeeID   int64      `json:"employee_id"`
	AssignmentID int64      `json:"assignment_id"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
}

type evaluationInput struct {
	EvaluationScore    *float64 `json:"evaluation_score"`
	EvaluationComments string   `json:"evaluation_comments"`
}

func (h *Handler) validateEmployeeAssignmentInput(in *employeeAssignmentInput) map[string][]string {
	fieldErrors := map[string][]string{}

	if in.EmployeeID <= 0 {
		fieldErrors["employee_id"] = append(fieldErrors["employee_id"], "This field is required.")
	} else if err := h.db.First(&Employee{}, in.EmployeeID).Error; err != nil {
		fieldErrors["employee_id"] = append(fieldErrors["employee_id"], "Invalid pk - object does not exist.")
	}
	if in.AssignmentID <= 0 {
		fieldErrors["assignment_id"] = append(fieldErrors["assignment_id"], "This field is required.")
	} else if err := h.db.First(&Assignment{}, in.AssignmentID).Error; err != nil {
		fieldErrors["assignment_id"] = append(fieldErrors["assignment_id"], "Invalid pk - object does not exist.")
	}
	if in.StartTime == nil {
		fieldErrors["start_time"] = append(fieldErrors["start_time"], "This field is required.")
	}
	if in.StartTime != nil && in.EndTime != nil && in.EndTime.Before(*in.StartTime) {
		fieldErrors["end_time"] = append(fieldErrors["end_time"], "end_time may not precede start_time.")
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

func (h *Handler) loadEmployeeAssignment(w http.ResponseWriter, id int64) (*EmployeeAssignment, bool) {
	var record EmployeeAssignment
	err := h.db.
		Preload("Employee.User").Preload("Employee.Organization").
		Preload("Assignment.Organization").
		First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.writeNotFound(w)
			return nil, false
		}
		h.writeStorageError(w, err)
		return nil, false
	}
	return &record, true
}

func (h *Handler) ListEmployeeAssignments(w http.ResponseWriter, r *http.Request) {
	query := h.db.
		Preload("Employee.User").Preload("Employee.Organization").
		Preload("Assignment.Organization").
		Order("id")
	if emp := r.URL.Query().Get("employee"); emp != "" {
		query = query.Where("employee_id = ?", emp)
	}
	if asg := r.URL.Query().Get("assignment"); asg != "" {
		query = query.Where("assignment_id = ?", asg)
	}
	if completed := r.URL.Query().Get("is_completed"); completed != "" {
		value, err := strconv.ParseBool(completed)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "is_completed must be true or false")
			return
		}
		query = query.Where("is_completed = ?", value)
	}

	var records []EmployeeAssignment
	if err := query.Find(&records).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, renderEmployeeAssignments(records))
}

// CreateEmployeeAssignment starts an engagement in its in-progress shape.
// The same employee/assignment pair may be linked repeatedly; each record
// stands alone.
func (h *Handler) CreateEmployeeAssignment(w http.ResponseWriter, r *http.Request) {
	var in employeeAssignmentInput
	if !h.decodeInto(w, r, &in) {
		return
	}
	if fieldErrors := h.validateEmployeeAssignmentInput(&in); fieldErrors != nil {
		h.WriteFieldErrors(w, fieldErrors)
		return
	}

	record := EmployeeAssignment{
		EmployeeID:   in.EmployeeID,
		AssignmentID: in.AssignmentID,
		StartTime:    *in.StartTime,
		EndTime:      in.EndTime,
		IsCompleted:  false,
	}
	if err := h.db.Create(&record).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}

	created, ok := h.loadEmployeeAssignment(w, record.ID)
	if !ok {
		return
	}
	h.WriteJSON(w, http.StatusCreated, renderEmployeeAssignment(created))
}

func (h *Handler) GetEmployeeAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	record, ok := h.loadEmployeeAssignment(w, id)
	if !ok {
		return
	}
	h.WriteJSON(w, http.StatusOK, renderEmployeeAssignment(record))
}

func (h *Handler) UpdateEmployeeAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	record, ok := h.loadEmployeeAssignment(w, id)
	if !ok {
		return
	}

	var in employeeAssignmentInput
	if !h.decodeInto(w, r, &in) {
		return
	}
	if fieldErrors := h.validateEmployeeAssignmentInput(&in); fieldErrors != nil {
		h.WriteFieldErrors(w, fieldErrors)
		return
	}

	// the incoming start must also respect an end_time the record already has
	effectiveEnd := record.EndTime
	if in.EndTime != nil {
		effectiveEnd = in.EndTime
	}
	if effectiveEnd != nil && effectiveEnd.Before(*in.StartTime) {
		h.WriteFieldErrors(w, map[string][]string{
			"start_time": {"start_time may not pass the record's end_time."},
		})
		return
	}

	record.EmployeeID = in.EmployeeID
	record.AssignmentID = in.AssignmentID
	record.StartTime = *in.StartTime
	if in.EndTime != nil {
		record.EndTime = in.EndTime
	}
	if err := h.db.Save(record).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}

	updated, ok := h.loadEmployeeAssignment(w, record.ID)
	if !ok {
		return
	}
	h.WriteJSON(w, http.StatusOK, renderEmployeeAssignment(updated))
}

func (h *Handler) DeleteEmployeeAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	record, ok := h.loadEmployeeAssignment(w, id)
	if !ok {
		return
	}
	if err := h.db.Delete(record).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CompleteEmployeeAssignment is idempotent: the first call stamps end_time
// and flips is_completed, later calls return the record unchanged.
func (h *Handler) CompleteEmployeeAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	record, ok := h.loadEmployeeAssignment(w, id)
	if !ok {
		return
	}

	if !record.IsCompleted {
		end := time.Now().UTC()
		// never stamp an end_time before the start of the engagement
		if end.Before(record.StartTime) {
			end = record.StartTime
		}
		record.IsCompleted = true
		record.EndTime = &end
		if err := h.db.Save(record).Error; err != nil {
			h.writeStorageError(w, err)
			return
		}
	}
	h.WriteJSON(w, http.StatusOK, renderEmployeeAssignment(record))
}

func (h *Handler) EvaluateEmployeeAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	record, ok := h.loadEmployeeAssignment(w, id)
	if !ok {
		return
	}

	var in evaluationInput
	if !h.decodeInto(w, r, &in) {
		return
	}
	if in.EvaluationScore == nil {
		h.WriteError(w, http.StatusBadRequest, "Evaluation score is required")
		return
	}
	if *in.EvaluationScore < 0 || *in.EvaluationScore > 5 {
		h.WriteError(w, http.StatusBadRequest, "Evaluation score must be a number between 0 and 5")
		return
	}

	record.EvaluationScore = in.EvaluationScore
	record.EvaluationComments = in.EvaluationComments
	if err := h.db.Save(record).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, renderEmployeeAssignment(record))
}
