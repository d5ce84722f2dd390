package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/workforce-management/internal/organization"
)

var (
	orgName        string
	orgDescription string
	orgAddress     string
)

var organizationsCmd = &cobra.Command{
	Use:     "organizations",
	Aliases: []string{"orgs"},
	Short:   "Manage organizations",
}

var organizationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all organizations",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, lg, err := newAPIClient()
		if err != nil {
			return err
		}
		accessor := organization.NewAccessor(client, lg)

		organizations, err := accessor.List(context.Background())
		if err != nil {
			return err
		}
		for _, org := range organizations {
			fmt.Printf("%d\t%s\t%s\n", org.ID, org.Name, org.Description)
		}
		return nil
	},
}

var organizationsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one organization",
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
		accessor := organization.NewAccessor(client, lg)

		org, err := accessor.GetByID(context.Background(), id)
		if err != nil {
			return err
		}
		return printJSON(org)
	},
}

var organizationsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an organization",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, lg, err := newAPIClient()
		if err != nil {
			return err
		}
		accessor := organization.NewAccessor(client, lg)

		org, err := accessor.Create(context.Background(), organization.CreateParams{
			Name:        orgName,
			Description: orgDescription,
			Address:     orgAddress,
		})
		if err != nil {
			return err
		}
		return printJSON(org)
	},
}

var organizationsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an organization without dependents",
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
		accessor := organization.NewAccessor(client, lg)

		if err := accessor.Delete(context.Background(), id); err != nil {
			return err
		}
		fmt.Printf("organization %d deleted\n", id)
		return nil
	},
}

func init() {
	organizationsCreateCmd.Flags().StringVar(&orgName, "name", "", "Organization name")
	organizationsCreateCmd.Flags().StringVar(&orgDescription, "description", "", "Organization description")
	organizationsCreateCmd.Flags().StringVar(&orgAddress, "address", "", "Organization address")
	organizationsCreateCmd.MarkFlagRequired("name")

	organizationsCmd.AddCommand(organizationsListCmd)
	organizationsCmd.AddCommand(organizationsGetCmd)
	organizationsCmd.AddCommand(organizationsCreateCmd)
	organizationsCmd.AddCommand(organizationsDeleteCmd)
}
