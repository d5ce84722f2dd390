package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/frahmantamala/workforce-management/internal/assignment"
	assignmentDatamodel "github.com/frahmantamala/workforce-management/internal/core/datamodel/assignment"
)

var (
	assignmentOrgFilter    int64
	assignmentStatusFilter string
)

var assignmentsCmd = &cobra.Command{
	Use:   "assignments",
	Short: "Manage assignments",
}

var assignmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assignments, optionally by organization and status",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, lg, err := newAPIClient()
		if err != nil {
			return err
		}
		accessor := assignment.NewAccessor(client, lg)

		var filter *assignment.Filter
		if assignmentOrgFilter > 0 || assignmentStatusFilter != "" {
			filter = &assignment.Filter{
				OrganizationID: assignmentOrgFilter,
				Status:         assignmentDatamodel.Status(assignmentStatusFilter),
			}
		}

		assignments, err := accessor.List(context.Background(), filter)
		if err != nil {
			return err
		}
		for _, asg := range assignments {
			fmt.Printf("%d\t%s\t%s\tdue %s\n",
				asg.ID, asg.Title, asg.Status, humanize.Time(asg.Deadline))
		}
		return nil
	},
}

var assignmentsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one assignment",
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
		accessor := assignment.NewAccessor(client, lg)

		asg, err := accessor.GetByID(context.Background(), id)
		if err != nil {
			return err
		}
		return printJSON(asg)
	},
}

func init() {
	assignmentsListCmd.Flags().Int64Var(&assignmentOrgFilter, "organization", 0, "Only assignments of this organization")
	assignmentsListCmd.Flags().StringVar(&assignmentStatusFilter, "status", "", "Only assignments with this status (pending, in_progress, completed)")

	assignmentsCmd.AddCommand(assignmentsListCmd)
	assignmentsCmd.AddCommand(assignmentsGetCmd)
}
