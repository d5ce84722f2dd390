package organization_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/workforce-management/internal"
	"github.com/frahmantamala/workforce-management/internal/api"
	"github.com/frahmantamala/workforce-management/internal/core/common/datetime"
	"github.com/frahmantamala/workforce-management/internal/devstore"
	"github.com/frahmantamala/workforce-management/internal/employee"
	"github.com/frahmantamala/workforce-management/internal/organization"
	"github.com/frahmantamala/workforce-management/pkg/logger"
)

func mustDate(value string) datetime.Date {
	date, err := datetime.Parse(value)
	if err != nil {
		panic(err)
	}
	return date
}

func TestOrganizationAccessor(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Organization Accessor Suite")
}

var _ = Describe("Organization Accessor", func() {
	var (
		server   *httptest.Server
		accessor *organization.Accessor
		client   *api.Client
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		lg := logger.LoggerWrapper()

		store, err := devstore.New(lg)
		Expect(err).NotTo(HaveOccurred())
		server = httptest.NewServer(store.Handler())

		client = api.New(api.Config{BaseURL: server.URL + "/api", Timeout: 5 * time.Second}, lg)
		accessor = organization.NewAccessor(client, lg)
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("Create and GetByID", func() {
		It("round-trips an organization", func() {
			created, err := accessor.Create(ctx, organization.CreateParams{
				Name:        "Acme",
				Description: "Widgets",
				Address:     "1 Main St",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(BeNumerically(">", 0))

			fetched, err := accessor.GetByID(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.Name).To(Equal("Acme"))
			Expect(fetched.Address).To(Equal("1 Main St"))
		})

		It("rejects a missing name before storage", func() {
			_, err := accessor.Create(ctx, organization.CreateParams{Description: "no name"})
			Expect(internal.KindOf(err)).To(Equal(internal.ErrorKindValidationFailed))
		})
	})

	Describe("GetByID failures", func() {
		It("returns a not-found failure for an unknown id", func() {
			_, err := accessor.GetByID(ctx, 9999)
			Expect(internal.KindOf(err)).To(Equal(internal.ErrorKindNotFound))
			Expect(err.Error()).To(ContainSubstring("organization"))
		})

		It("rejects a non-positive id without issuing a request", func() {
			_, err := accessor.GetByID(ctx, 0)
			Expect(internal.KindOf(err)).To(Equal(internal.ErrorKindInvalidID))

			_, err = accessor.GetByID(ctx, -4)
			Expect(internal.KindOf(err)).To(Equal(internal.ErrorKindInvalidID))
		})
	})

	Describe("List", func() {
		It("returns an empty collection when nothing exists", func() {
			organizations, err := accessor.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(organizations).To(BeEmpty())
		})

		It("returns every stored organization", func() {
			for _, name := range []string{"Acme", "Globex"} {
				_, err := accessor.Create(ctx, organization.CreateParams{Name: name})
				Expect(err).NotTo(HaveOccurred())
			}
			organizations, err := accessor.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(organizations).To(HaveLen(2))
		})
	})

	Describe("Update", func() {
		It("replaces the mutable fields", func() {
			created, err := accessor.Create(ctx, organization.CreateParams{Name: "Acme"})
			Expect(err).NotTo(HaveOccurred())

			updated, err := accessor.Update(ctx, created.ID, organization.UpdateParams{
				Name:        "Acme Ltd",
				Description: "renamed",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Acme Ltd"))
			Expect(updated.Description).To(Equal("renamed"))
		})
	})

	Describe("Delete", func() {
		It("removes an organization without dependents", func() {
			created, err := accessor.Create(ctx, organization.CreateParams{Name: "Acme"})
			Expect(err).NotTo(HaveOccurred())

			Expect(accessor.Delete(ctx, created.ID)).To(Succeed())

			_, err = accessor.GetByID(ctx, created.ID)
			Expect(internal.KindOf(err)).To(Equal(internal.ErrorKindNotFound))
		})

		It("refuses to delete an organization that still has employees", func() {
			created, err := accessor.Create(ctx, organization.CreateParams{Name: "Acme"})
			Expect(err).NotTo(HaveOccurred())

			employees := employee.NewAccessor(client, logger.LoggerWrapper())
			_, err = employees.Create(ctx, employee.CreateParams{
				User:           employee.UserParams{Username: "jdoe", Email: "jdoe@acme.test"},
				OrganizationID: created.ID,
				EmployeeType:   "full_time",
				JoiningDate:    mustDate("2024-03-01"),
				IsActive:       true,
			})
			Expect(err).NotTo(HaveOccurred())

			err = accessor.Delete(ctx, created.ID)
			Expect(internal.KindOf(err)).To(Equal(internal.ErrorKindConflict))
		})
	})

	Describe("Relationship reads", func() {
		It("lists the organization's employees and assignments", func() {
			created, err := accessor.Create(ctx, organization.CreateParams{Name: "Acme"})
			Expect(err).NotTo(HaveOccurred())

			employees := employee.NewAccessor(client, logger.LoggerWrapper())
			_, err = employees.Create(ctx, employee.CreateParams{
				User:           employee.UserParams{Username: "jdoe", Email: "jdoe@acme.test"},
				OrganizationID: created.ID,
				EmployeeType:   "intern",
				JoiningDate:    mustDate("2025-02-01"),
				IsActive:       true,
			})
			Expect(err).NotTo(HaveOccurred())

			members, err := accessor.Employees(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(members).To(HaveLen(1))
			Expect(members[0].User.Username).To(Equal("jdoe"))

			assignments, err := accessor.Assignments(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(assignments).To(BeEmpty())
		})

		It("reports not-found for relationship reads on an unknown organization", func() {
			_, err := accessor.Employees(ctx, 9999)
			Expect(internal.KindOf(err)).To(Equal(internal.ErrorKindNotFound))
		})
	})
})
