package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/frahmantamala/workforce-management/internal/employee"
)

var employeeOrgFilter int64

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Manage employees",
}

var employeesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees, optionally by organization",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, lg, err := newAPIClient()
		if err != nil {
			return err
		}
		accessor := employee.NewAccessor(client, lg)

		var filter *employee.Filter
		if employeeOrgFilter > 0 {
			filter = &employee.Filter{OrganizationID: employeeOrgFilter}
		}

		employees, err := accessor.List(context.Background(), filter)
		if err != nil {
			return err
		}
		for _, emp := range employees {
			active := "active"
			if !emp.IsActive {
				active = "inactive"
			}
			fmt.Printf("%d\t%s\t%s\t%s\t%s\n",
				emp.ID, emp.User.FullName(), emp.Position, emp.EmployeeType, active)
		}
		return nil
	},
}

var employeesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one employee",
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
		accessor := employee.NewAccessor(client, lg)

		emp, err := accessor.GetByID(context.Background(), id)
		if err != nil {
			return err
		}
		return printJSON(emp)
	},
}

var employeesAssignmentsCmd = &cobra.Command{
	Use:   "assignments <id>",
	Short: "List an employee's assignment records with embedded assignments",
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
		accessor := employee.NewAccessor(client, lg)

		records, err := accessor.Assignments(context.Background(), id)
		if err != nil {
			return err
		}
		for _, record := range records {
			title := fmt.Sprintf("assignment %d", record.Assignment.ID())
			if asg, ok := record.Assignment.Embedded(); ok {
				title = asg.Title
			}
			state := "in progress"
			if record.IsCompleted {
				state = "completed"
			}
			fmt.Printf("%d\t%s\t%s\tstarted %s\n",
				record.ID, title, state, humanize.Time(record.StartTime))
		}
		return nil
	},
}

func init() {
	employeesListCmd.Flags().Int64Var(&employeeOrgFilter, "organization", 0, "Only employees of this organization")

	employeesCmd.AddCommand(employeesListCmd)
	employeesCmd.AddCommand(employeesGetCmd)
	employeesCmd.AddCommand(employeesAssignmentsCmd)
}
