package employee_test

import (
	"encoding/json"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	employeeDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/employee"
)

func TestEmployeeDatamodel(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Datamodel Suite")
}

var _ = Describe("Employee", func() {
	validPayload := `{
		"id": 1,
		"user": {"id": 9, "username": "jdoe", "first_name": "Jane", "last_name": "Doe", "email": "jdoe@acme.test"},
		"organization": {"id": 2, "name": "Acme", "description": "", "address": ""},
		"employee_type": "full_time",
		"department": "Engineering",
		"position": "Developer",
		"joining_date": "2024-03-01",
		"is_active": true
	}`

	It("parses a payload with an embedded organization", func() {
		var emp employeeDatamodel.Employee
		Expect(json.Unmarshal([]byte(validPayload), &emp)).To(Succeed())
		Expect(emp.Validate()).To(Succeed())

		Expect(emp.Organization.ID()).To(Equal(int64(2)))
		org, embedded := emp.Organization.Embedded()
		Expect(embedded).To(BeTrue())
		Expect(org.Name).To(Equal("Acme"))
		Expect(emp.JoiningDate.String()).To(Equal("2024-03-01"))
		Expect(emp.User.FullName()).To(Equal("Jane Doe"))
	})

	It("parses a payload with a bare organization id", func() {
		payload := `{
			"id": 1,
			"user": {"id": 9, "username": "jdoe", "first_name": "", "last_name": "", "email": ""},
			"organization": 5,
			"employee_type": "intern",
			"department": "",
			"position": "",
			"joining_date": "2025-01-15",
			"is_active": false
		}`
		var emp employeeDatamodel.Employee
		Expect(json.Unmarshal([]byte(payload), &emp)).To(Succeed())
		Expect(emp.Validate()).To(Succeed())

		Expect(emp.Organization.ID()).To(Equal(int64(5)))
		_, embedded := emp.Organization.Embedded()
		Expect(embedded).To(BeFalse())
	})

	It("rejects an unrecognized employee_type", func() {
		var emp employeeDatamodel.Employee
		Expect(json.Unmarshal([]byte(validPayload), &emp)).To(Succeed())
		emp.EmployeeType = "contractor"
		Expect(emp.Validate()).To(MatchError(ContainSubstring("employee_type")))
	})

	It("rejects a missing organization reference", func() {
		var emp employeeDatamodel.Employee
		payload := `{
			"id": 1,
			"user": {"id": 9, "username": "jdoe", "first_name": "", "last_name": "", "email": ""},
			"organization": null,
			"employee_type": "intern",
			"joining_date": "2025-01-15",
			"is_active": true
		}`
		Expect(json.Unmarshal([]byte(payload), &emp)).To(Succeed())
		Expect(emp.Validate()).To(MatchError(ContainSubstring("organization")))
	})
})
