package employeeassignment_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/workforce-management/internal/core/common/ref"
	assignmentDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/assignment"
	employeeDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/employee"
	employeeassignmentDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/employeeassignment"
)

func TestEmployeeAssignmentDatamodel(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "EmployeeAssignment Datamodel Suite")
}

var _ = Describe("EmployeeAssignment", func() {
	var record employeeassignmentDatamodel.EmployeeAssignment

	BeforeEach(func() {
		record = employeeassignmentDatamodel.EmployeeAssignment{
			ID:         1,
			Employee:   ref.FromID[employeeDatamodel.Employee](2),
			Assignment: ref.FromID[assignmentDatamodel.Assignment](3),
			StartTime:  time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		}
	})

	It("accepts an in-progress record", func() {
		Expect(record.Validate()).To(Succeed())
		Expect(record.Evaluated()).To(BeFalse())
	})

	It("rejects an end_time before start_time", func() {
		early := record.StartTime.Add(-time.Hour)
		record.EndTime = &early
		Expect(record.Validate()).To(MatchError(ContainSubstring("end_time")))
	})

	It("rejects completion without an end_time", func() {
		record.IsCompleted = true
		Expect(record.Validate()).To(MatchError(ContainSubstring("end_time")))
	})

	It("accepts a completed record with end_time after start_time", func() {
		end := record.StartTime.Add(48 * time.Hour)
		record.EndTime = &end
		record.IsCompleted = true
		Expect(record.Validate()).To(Succeed())
	})

	It("bounds the evaluation score to [0, 5]", func() {
		score := 5.5
		record.EvaluationScore = &score
		Expect(record.Validate()).To(MatchError(ContainSubstring("evaluation_score")))

		score = 4.5
		Expect(record.Validate()).To(Succeed())
		Expect(record.Evaluated()).To(BeTrue())
	})
})
