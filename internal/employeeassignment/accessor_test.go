package employeeassignment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/workforce-management/internal"
	"github.com/frahmantamala/workforce-management/internal/api"
	"github.com/frahmantamala/workforce-management/internal/assignment"
	"github.com/frahmantamala/workforce-management/internal/core/common/datetime"
	"github.com/frahmantamala/workforce-management/internal/devstore"
	"github.com/frahmantamala/workforce-management/internal/employee"
	"github.com/frahmantamala/workforce-management/internal/employeeassignment"
	"github.com/frahmantamala/workforce-management/internal/organization"
	"github.com/frahmantamala/workforce-management/pkg/logger"
)

func TestEmployeeAssignmentAccessor(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "EmployeeAssignment Accessor Suite")
}

func mustDate(value string) datetime.Date {
	date, err := datetime.Parse(value)
	if err != nil {
		panic(err)
	}
	return date
}

var _ = Describe("EmployeeAssignment Accessor", func() {
	var (
		server      *httptest.Server
		client      *api.Client
		accessor    *employeeassignment.Accessor
		employees   *employee.Accessor
		assignments *assignment.Accessor
		ctx         context.Context

		orgID int64
		empID int64
		asgID int64
	)

	link := func() int64 {
		created, err := accessor.Create(ctx, employeeassignment.CreateParams{
			EmployeeID:   empID,
			AssignmentID: asgID,
			StartTime:    time.Now().UTC(),
		})
		Expect(err).NotTo(HaveOccurred())
		return created.ID
	}

	BeforeEach(func() {
		ctx = context.Background()
		lg := logger.LoggerWrapper()

		store, err := devstore.New(lg)
		Expect(err).NotTo(HaveOccurred())
		server = httptest.NewServer(store.Handler())

		client = api.New(api.Config{BaseURL: server.URL + "/api", Timeout: 5 * time.Second}, lg)
		accessor = employeeassignment.NewAccessor(client, lg)
		employees = employee.NewAccessor(client, lg)
		assignments = assignment.NewAccessor(client, lg)

		org, err := organization.NewAccessor(client, lg).Create(ctx, organization.CreateParams{Name: "Acme"})
		Expect(err).NotTo(HaveOccurred())
		orgID = org.ID

		emp, err := employees.Create(ctx, employee.CreateParams{
			User:           employee.UserParams{Username: "jdoe", FirstName: "Jane", LastName: "Doe", Email: "jdoe@acme.test"},
			OrganizationID: orgID,
			EmployeeType:   "full_time",
			JoiningDate:    mustDate("2024-03-01"),
			IsActive:       true,
		})
		Expect(err).NotTo(HaveOccurred())
		empID = emp.ID

		asg, err := assignments.Create(ctx, assignment.CreateParams{
			Title:          "Quarterly audit",
			OrganizationID: orgID,
			Deadline:       time.Now().UTC().Add(72 * time.Hour),
		})
		Expect(err).NotTo(HaveOccurred())
		asgID = asg.ID
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("Create", func() {
		It("starts the engagement in its in-progress shape", func() {
			id := link()

			record, err := accessor.GetByID(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.IsCompleted).To(BeFalse())
			Expect(record.EndTime).To(BeNil())
			Expect(record.EvaluationScore).To(BeNil())
			Expect(record.Employee.ID()).To(Equal(empID))
			Expect(record.Assignment.ID()).To(Equal(asgID))
		})

		It("allows the same pair to be linked repeatedly", func() {
			link()
			id := link()
			Expect(id).To(BeNumerically(">", 0))

			records, err := accessor.List(ctx, &employeeassignment.Filter{EmployeeID: empID, AssignmentID: asgID})
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
		})

		It("rejects an unknown employee reference with field errors", func() {
			_, err := accessor.Create(ctx, employeeassignment.CreateParams{
				EmployeeID:   9999,
				AssignmentID: asgID,
				StartTime:    time.Now().UTC(),
			})
			accessErr, ok := internal.IsAccessError(err)
			Expect(ok).To(BeTrue())
			Expect(accessErr.Kind).To(Equal(internal.ErrorKindValidationFailed))
			Expect(accessErr.FieldErrors).NotTo(BeEmpty())
			Expect(accessErr.FieldErrors[0].Field).To(Equal("employee_id"))
		})
	})

	Describe("Complete", func() {
		It("stamps end_time on the first completion", func() {
			id := link()

			completed, err := accessor.Complete(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(completed.IsCompleted).To(BeTrue())
			Expect(completed.EndTime).NotTo(BeNil())
			Expect(completed.EndTime.Before(completed.StartTime)).To(BeFalse())
			Expect(completed.Duration).NotTo(BeNil())
		})

		It("is idempotent: a second completion leaves end_time untouched", func() {
			id := link()

			first, err := accessor.Complete(ctx, id)
			Expect(err).NotTo(HaveOccurred())

			second, err := accessor.Complete(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.IsCompleted).To(BeTrue())
			Expect(second.EndTime.Equal(*first.EndTime)).To(BeTrue())
		})

		It("reports not-found for an unknown record", func() {
			_, err := accessor.Complete(ctx, 9999)
			Expect(internal.KindOf(err)).To(Equal(internal.ErrorKindNotFound))
		})

		It("keeps end_time at or after start_time when the engagement has not started yet", func() {
			created, err := accessor.Create(ctx, employeeassignment.CreateParams{
				EmployeeID:   empID,
				AssignmentID: asgID,
				StartTime:    time.Now().UTC().Add(24 * time.Hour),
			})
			Expect(err).NotTo(HaveOccurred())

			completed, err := accessor.Complete(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(completed.IsCompleted).To(BeTrue())
			Expect(completed.EndTime).NotTo(BeNil())
			Expect(completed.EndTime.Before(completed.StartTime)).To(BeFalse())
		})
	})

	Describe("Update", func() {
		It("rejects moving start_time past the record's end_time", func() {
			id := link()
			completed, err := accessor.Complete(ctx, id)
			Expect(err).NotTo(HaveOccurred())

			_, err = accessor.Update(ctx, id, employeeassignment.UpdateParams{
				EmployeeID:   empID,
				AssignmentID: asgID,
				StartTime:    completed.EndTime.Add(time.Hour),
			})
			accessErr, ok := internal.IsAccessError(err)
			Expect(ok).To(BeTrue())
			Expect(accessErr.Kind).To(Equal(internal.ErrorKindValidationFailed))
			Expect(accessErr.FieldErrors).NotTo(BeEmpty())
			Expect(accessErr.FieldErrors[0].Field).To(Equal("start_time"))
		})
	})

	Describe("Evaluate", func() {
		It("records a score and comments", func() {
			id := link()

			evaluated, err := accessor.Evaluate(ctx, id, 3.5, "solid work")
			Expect(err).NotTo(HaveOccurred())
			Expect(evaluated.EvaluationScore).NotTo(BeNil())
			Expect(*evaluated.EvaluationScore).To(Equal(3.5))
			Expect(evaluated.EvaluationComments).To(Equal("solid work"))
			Expect(evaluated.Evaluated()).To(BeTrue())
		})

		It("may happen before completion", func() {
			id := link()

			evaluated, err := accessor.Evaluate(ctx, id, 4.0, "early feedback")
			Expect(err).NotTo(HaveOccurred())
			Expect(evaluated.IsCompleted).To(BeFalse())
		})

		It("rejects an out-of-range score without issuing a request", func() {
			_, err := accessor.Evaluate(ctx, 1, 7.0, "")
			accessErr, ok := internal.IsAccessError(err)
			Expect(ok).To(BeTrue())
			Expect(accessErr.Kind).To(Equal(internal.ErrorKindValidationFailed))
			Expect(accessErr.FieldErrors).To(HaveLen(1))
			Expect(accessErr.FieldErrors[0].Field).To(Equal("evaluation_score"))

			_, err = accessor.Evaluate(ctx, 1, -0.5, "")
			Expect(internal.KindOf(err)).To(Equal(internal.ErrorKindValidationFailed))
		})

		It("accepts the boundary scores 0 and 5", func() {
			id := link()

			_, err := accessor.Evaluate(ctx, id, 0, "")
			Expect(err).NotTo(HaveOccurred())

			evaluated, err := accessor.Evaluate(ctx, id, 5, "top marks")
			Expect(err).NotTo(HaveOccurred())
			Expect(*evaluated.EvaluationScore).To(Equal(5.0))
		})
	})

	Describe("List with filters", func() {
		It("returns the whole collection when the filter is nil", func() {
			link()
			link()

			records, err := accessor.List(ctx, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
		})

		It("distinguishes no-constraint from only-incomplete", func() {
			first := link()
			link()
			_, err := accessor.Complete(ctx, first)
			Expect(err).NotTo(HaveOccurred())

			incomplete := false
			records, err := accessor.List(ctx, &employeeassignment.Filter{IsCompleted: &incomplete})
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].IsCompleted).To(BeFalse())

			done := true
			records, err = accessor.List(ctx, &employeeassignment.Filter{IsCompleted: &done})
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].IsCompleted).To(BeTrue())
		})

		It("rejects an is_completed value that is not a boolean", func() {
			resp, err := http.Get(server.URL + "/api/employee-assignments/?is_completed=done")
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("full lifecycle", func() {
		It("tracks an engagement from assignment to evaluation", func() {
			id := link()

			completed, err := accessor.Complete(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(completed.IsCompleted).To(BeTrue())

			evaluated, err := accessor.Evaluate(ctx, id, 4.5, "excellent audit")
			Expect(err).NotTo(HaveOccurred())
			Expect(*evaluated.EvaluationScore).To(Equal(4.5))

			records, err := employees.Assignments(ctx, empID)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].IsCompleted).To(BeTrue())
			Expect(records[0].EvaluationScore).NotTo(BeNil())
			Expect(*records[0].EvaluationScore).To(Equal(4.5))

			asg, embedded := records[0].Assignment.Embedded()
			Expect(embedded).To(BeTrue())
			Expect(asg.Title).To(Equal("Quarterly audit"))

			assigned, err := assignments.AssignedEmployees(ctx, asgID)
			Expect(err).NotTo(HaveOccurred())
			Expect(assigned).To(HaveLen(1))

			emp, embedded := assigned[0].Employee.Embedded()
			Expect(embedded).To(BeTrue())
			Expect(emp.User.Username).To(Equal("jdoe"))
		})
	})
})
