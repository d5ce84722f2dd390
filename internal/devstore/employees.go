package devstore

import (
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"
)

type userInput struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type employeeInput struct {
	User           *userInput `json:"user"`
	OrganizationID int64      `json:"organization_id"`
	EmployeeType   string     `json:"employee_type"`
	Department     string     `json:"department"`
	Position       string     `json:"position"`
	JoiningDate    string     `json:"joining_date"`
	IsActive       *bool      `json:"is_active"`
}

func validEmployeeType(t string) bool {
	return t == "full_time" || t == "intern"
}

func (h *Handler) validateEmployeeInput(in *employeeInput) (time.Time, map[string][]string) {
	fieldErrors := map[string][]string{}

	if in.User == nil || in.User.Username == "" {
		fieldErrors["user"] = append(fieldErrors["user"], "A user with a username is required.")
	}
	if in.OrganizationID <= 0 {
		fieldErrors["organization_id"] = append(fieldErrors["organization_id"], "This field is required.")
	} else if err := h.db.First(&Organization{}, in.OrganizationID).Error; err != nil {
		fieldErrors["organization_id"] = append(fieldErrors["organization_id"], "Invalid pk - object does not exist.")
	}
	if !validEmployeeType(in.EmployeeType) {
		fieldErrors["employee_type"] = append(fieldErrors["employee_type"], "Not a valid choice.")
	}

	var joiningDate time.Time
	if in.JoiningDate == "" {
		fieldErrors["joining_date"] = append(fieldErrors["joining_date"], "This field is required.")
	} else {
		parsed, err := time.Parse(dateLayout, in.JoiningDate)
		if err != nil {
			fieldErrors["joining_date"] = append(fieldErrors["joining_date"], "Date has wrong format.")
		} else {
			joiningDate = parsed
		}
	}

	if len(fieldErrors) == 0 {
		return joiningDate, nil
	}
	return joiningDate, fieldErrors
}

func (h *Handler) loadEmployee(w http.ResponseWriter, id int64) (*Employee, bool) {
	var emp Employee
	err := h.db.Preload("User").Preload("Organization").First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.writeNotFound(w)
			return nil, false
		}
		h.writeStorageError(w, err)
		return nil, false
	}
	return &emp, true
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	query := h.db.Preload("User").Preload("Organization").Order("id")
	if org := r.URL.Query().Get("organization"); org != "" {
		query = query.Where("organization_id = ?", org)
	}

	var employees []Employee
	if err := query.Find(&employees).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}

	payloads := make([]employeePayload, len(employees))
	for i := range employees {
		payloads[i] = renderEmployee(&employees[i])
	}
	h.WriteJSON(w, http.StatusOK, payloads)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var in employeeInput
	if !h.decodeInto(w, r, &in) {
		return
	}
	joiningDate, fieldErrors := h.validateEmployeeInput(&in)
	if fieldErrors != nil {
		h.WriteFieldErrors(w, fieldErrors)
		return
	}

	var existing User
	err := h.db.Where("username = ?", in.User.Username).First(&existing).Error
	if err == nil {
		h.WriteFieldErrors(w, map[string][]string{
			"user": {"A user with that username already exists."},
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.writeStorageError(w, err)
		return
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	emp := Employee{
		User: User{
			Username:  in.User.Username,
			FirstName: in.User.FirstName,
			LastName:  in.User.LastName,
			Email:     in.User.Email,
		},
		OrganizationID: in.OrganizationID,
		EmployeeType:   in.EmployeeType,
		Department:     in.Department,
		Position:       in.Position,
		JoiningDate:    joiningDate,
		IsActive:       isActive,
	}
	if err := h.db.Create(&emp).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}

	created, ok := h.loadEmployee(w, emp.ID)
	if !ok {
		return
	}
	h.WriteJSON(w, http.StatusCreated, renderEmployee(created))
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	emp, ok := h.loadEmployee(w, id)
	if !ok {
		return
	}
	h.WriteJSON(w, http.StatusOK, renderEmployee(emp))
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	emp, ok := h.loadEmployee(w, id)
	if !ok {
		return
	}

	var in employeeInput
	if !h.decodeInto(w, r, &in) {
		return
	}
	joiningDate, fieldErrors := h.validateEmployeeInput(&in)
	if fieldErrors != nil {
		h.WriteFieldErrors(w, fieldErrors)
		return
	}

	var existing User
	err := h.db.Where("username = ? AND id <> ?", in.User.Username, emp.User.ID).First(&existing).Error
	if err == nil {
		h.WriteFieldErrors(w, map[string][]string{
			"user": {"A user with that username already exists."},
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.writeStorageError(w, err)
		return
	}

	emp.User.Username = in.User.Username
	emp.User.FirstName = in.User.FirstName
	emp.User.LastName = in.User.LastName
	emp.User.Email = in.User.Email
	if err := h.db.Save(&emp.User).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}

	emp.OrganizationID = in.OrganizationID
	emp.EmployeeType = in.EmployeeType
	emp.Department = in.Department
	emp.Position = in.Position
	emp.JoiningDate = joiningDate
	if in.IsActive != nil {
		emp.IsActive = *in.IsActive
	}
	if err := h.db.Save(emp).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}

	updated, ok := h.loadEmployee(w, emp.ID)
	if !ok {
		return
	}
	h.WriteJSON(w, http.StatusOK, renderEmployee(updated))
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	emp, ok := h.loadEmployee(w, id)
	if !ok {
		return
	}

	var dependents int64
	if err := h.db.Model(&EmployeeAssignment{}).Where("employee_id = ?", id).Count(&dependents).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}
	if dependents > 0 {
		h.WriteError(w, http.StatusConflict, "employee still has assignment records")
		return
	}

	if err := h.db.Delete(emp).Error; err != nil {
		h.writeStorageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// EmployeeAssignments serves the dedicated per-employee read path; it
// returns the same records as filtering the collection by employee.
func (h *Handler) EmployeeAssignments(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if _, ok := h.loadEmployee(w, id); !ok {
		return
	}

	var records []EmployeeAssignment
	err := h.db.
		Preload("Employee.User").Preload("Employee.Organization").
		Preload("Assignment.Organization").
		Where("employee_id = ?", id).Order("id").Find(&records).Error
	if err != nil {
		h.writeStorageError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, renderEmployeeAssignments(records))
}
