package assignment_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/workforce-management/internal"
	"github.com/frahmantamala/workforce-management/internal/api"
	"github.com/frahmantamala/workforce-management/internal/assignment"
	assignmentDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/assignment"
	"github.com/frahmantamala/workforce-management/internal/devstore"
	"github.com/frahmantamala/workforce-management/internal/organization"
	"github.com/frahmantamala/workforce-management/pkg/logger"
)

func TestAssignmentAccessor(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Assignment Accessor Suite")
}

var _ = Describe("Assignment Accessor", func() {
	var (
		server   *httptest.Server
		client   *api.Client
		accessor *assignment.Accessor
		ctx      context.Context
		orgID    int64
	)

	create := func(title string, status assignmentDatamodel.Status) int64 {
		created, err := accessor.Create(ctx, assignment.CreateParams{
			Title:          title,
			Description:    "desc",
			OrganizationID: orgID,
			Deadline:       time.Now().UTC().Add(48 * time.Hour),
			Status:         status,
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
		accessor = assignment.NewAccessor(client, lg)

		org, err := organization.NewAccessor(client, lg).Create(ctx, organization.CreateParams{Name: "Acme"})
		Expect(err).NotTo(HaveOccurred())
		orgID = org.ID
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("Create", func() {
		It("defaults a new assignment to pending", func() {
			id := create("Quarterly audit", "")

			fetched, err := accessor.GetByID(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(fetched.Status)).To(Equal("pending"))
			Expect(fetched.Organization.ID()).To(Equal(orgID))
		})

		It("rejects a missing title", func() {
			_, err := accessor.Create(ctx, assignment.CreateParams{
				OrganizationID: orgID,
				Deadline:       time.Now().UTC().Add(time.Hour),
			})
			Expect(internal.KindOf(err)).To(Equal(internal.ErrorKindValidationFailed))
		})
	})

	Describe("List with filters", func() {
		It("matches the status filter exactly", func() {
			create("Audit", "pending")
			create("Migration", "in_progress")
			create("Cleanup", "completed")

			pending, err := accessor.List(ctx, &assignment.Filter{Status: "pending"})
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(HaveLen(1))
			Expect(pending[0].Title).To(Equal("Audit"))
		})

		It("rejects an out-of-vocabulary status before any request", func() {
			_, err := accessor.List(ctx, &assignment.Filter{Status: "archived"})
			Expect(internal.KindOf(err)).To(Equal(internal.ErrorKindInvalidFilter))
			Expect(err.Error()).To(ContainSubstring("archived"))
		})

		It("combines organization and status filters", func() {
			create("Audit", "pending")
			create("Migration", "in_progress")

			matched, err := accessor.List(ctx, &assignment.Filter{OrganizationID: orgID, Status: "in_progress"})
			Expect(err).NotTo(HaveOccurred())
			Expect(matched).To(HaveLen(1))
			Expect(matched[0].Title).To(Equal("Migration"))
		})

		It("returns the whole collection when the filter is nil", func() {
			create("Audit", "")
			create("Migration", "")

			all, err := accessor.List(ctx, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
		})
	})

	Describe("Update", func() {
		It("moves an assignment through the status vocabulary", func() {
			id := create("Audit", "")

			updated, err := accessor.Update(ctx, id, assignment.UpdateParams{
				Title:          "Audit",
				Description:    "desc",
				OrganizationID: orgID,
				Deadline:       time.Now().UTC().Add(48 * time.Hour),
				Status:         "in_progress",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(string(updated.Status)).To(Equal("in_progress"))
		})
	})

	Describe("GetByID failures", func() {
		It("reports not-found for an unknown id", func() {
			_, err := accessor.GetByID(ctx, 9999)
			Expect(internal.KindOf(err)).To(Equal(internal.ErrorKindNotFound))
		})

		It("rejects a non-positive id", func() {
			_, err := accessor.GetByID(ctx, -1)
			Expect(internal.KindOf(err)).To(Equal(internal.ErrorKindInvalidID))
		})
	})
})
