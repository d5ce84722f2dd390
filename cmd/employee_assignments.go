package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/frahmantamala/workforce-management/internal/employeeassignment"
)

var (
	eaEmployeeFilter   int64
	eaAssignmentFilter int64
	eaCompletedFilter  string

	evaluateScore    float64
	evaluateComments string
)

var employeeAssignmentsCmd = &cobra.Command{
	Use:     "employee-assignments",
	Aliases: []string{"ea"},
	Short:   "Manage the records linking employees to assignments",
}

var employeeAssignmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List engagement records, optionally filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, lg, err := newAPIClient()
		if err != nil {
			return err
		}
		accessor := employeeassignment.NewAccessor(client, lg)

		var filter *employeeassignment.Filter
		if eaEmployeeFilter > 0 || eaAssignmentFilter > 0 || eaCompletedFilter != "" {
			filter = &employeeassignment.Filter{
				EmployeeID:   eaEmployeeFilter,
				AssignmentID: eaAssignmentFilter,
			}
			if eaCompletedFilter != "" {
				completed, err := strconv.ParseBool(eaCompletedFilter)
				if err != nil {
					return fmt.Errorf("--completed must be true or false")
				}
				filter.IsCompleted = &completed
			}
		}

		records, err := accessor.List(context.Background(), filter)
		if err != nil {
			return err
		}
		for _, record := range records {
			state := "in progress"
			if record.IsCompleted {
				state = "completed"
			}
			score := "-"
			if record.EvaluationScore != nil {
				score = strconv.FormatFloat(*record.EvaluationScore, 'f', 1, 64)
			}
			fmt.Printf("%d\temployee %d\tassignment %d\t%s\tscore %s\tstarted %s\n",
				record.ID, record.Employee.ID(), record.Assignment.ID(),
				state, score, humanize.Time(record.StartTime))
		}
		return nil
	},
}

var employeeAssignmentsAssignCmd = &cobra.Command{
	Use:   "assign <employee-id> <assignment-id>",
	Short: "Link an employee to an assignment, starting now",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		employeeID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("employee id must be a number: %w", err)
		}
		assignmentID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("assignment id must be a number: %w", err)
		}
		client, _, lg, err := newAPIClient()
		if err != nil {
			return err
		}
		accessor := employeeassignment.NewAccessor(client, lg)

		record, err := accessor.Create(context.Background(), employeeassignment.CreateParams{
			EmployeeID:   employeeID,
			AssignmentID: assignmentID,
			StartTime:    time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		return printJSON(record)
	},
}

var employeeAssignmentsCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark an engagement record finished",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be a number: %w", err)
		}
		client, _, lg, err := newAPIClient()
		if err != nil {
			return err
		}
		accessor := employeeassignment.NewAccessor(client, lg)

		record, err := accessor.Complete(context.Background(), id)
		if err != nil {
			return err
		}
		return printJSON(record)
	},
}

var employeeAssignmentsEvaluateCmd = &cobra.Command{
	Use:   "evaluate <id>",
	Short: "Record an evaluation for an engagement record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be a number: %w", err)
		}
		client, _, lg, err := newAPIClient()
		if err != nil {
			return err
		}
		accessor := employeeassignment.NewAccessor(client, lg)

		record, err := accessor.Evaluate(context.Background(), id, evaluateScore, evaluateComments)
		if err != nil {
			return err
		}
		return printJSON(record)
	},
}

func init() {
	employeeAssignmentsListCmd.Flags().Int64Var(&eaEmployeeFilter, "employee", 0, "Only records for this employee")
	employeeAssignmentsListCmd.Flags().Int64Var(&eaAssignmentFilter, "assignment", 0, "Only records for this assignment")
	employeeAssignmentsListCmd.Flags().StringVar(&eaCompletedFilter, "completed", "", "Only completed (true) or in-progress (false) records")

	employeeAssignmentsEvaluateCmd.Flags().Float64Var(&evaluateScore, "score", 0, "Evaluation score in [0, 5]")
	employeeAssignmentsEvaluateCmd.Flags().StringVar(&evaluateComments, "comments", "", "Evaluation comments")
	employeeAssignmentsEvaluateCmd.MarkFlagRequired("score")

	employeeAssignmentsCmd.AddCommand(employeeAssignmentsListCmd)
	employeeAssignmentsCmd.AddCommand(employeeAssignmentsAssignCmd)
	employeeAssignmentsCmd.AddCommand(employeeAssignmentsCompleteCmd)
	employeeAssignmentsCmd.AddCommand(employeeAssignmentsEvaluateCmd)
}
