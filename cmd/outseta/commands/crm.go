package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
	"github.com/hamadhassan3/outseta-client-sub001/pkg/outsetaclient"
)

func newCRMClient() (outseta.CRMClient, error) {
	config, err := clientConfig(outseta.CRMFamily)
	if err != nil {
		return nil, err
	}

	return outsetaclient.NewCRM(config)
}

// NewAccountsCommand creates the accounts command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account", "acc"},
		Short:   "Manage CRM accounts",
		Long:    "List, view and delete Outseta CRM accounts",
	}

	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsGetCommand())
	cmd.AddCommand(newAccountsDeleteCommand())

	return cmd
}

func newAccountsListCommand() *cobra.Command {
	opts := &listOptions{}

	var stage int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Long:  "List CRM accounts, optionally filtered by account stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			crm, err := newCRMClient()
			if err != nil {
				return err
			}

			return runList(cmd, opts, crm.Accounts().List,
				func(builder *outseta.PageRequestBuilder) {
					if stage > 0 {
						builder.WithAccountStage(outseta.AccountStage(stage))
					}
				},
				fillAccounts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().IntVar(&stage, "stage", 0, "account stage (1 demo, 2 trialing, 3 subscribing, 4 cancelling, 5 expired, 6 trial expired, 7 past due)")

	return cmd
}

func newAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACCOUNT_UID",
		Short: "Get account details",
		Long:  "Display detailed information about a specific account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			crm, err := newCRMClient()
			if err != nil {
				return err
			}

			account, err := crm.Accounts().Get(commandContext(cmd), args[0])
			if err != nil {
				return err
			}

			return render(cmd, account, func(table *Table) {
				table.Header("Property", "Value")
				table.Row("UID", account.UID)
				table.Row("Name", account.Name)
				table.Row("Stage", orNotAvailable(account.AccountStageLabel))
				table.Row("Demo", formatBool(account.IsDemo))
				table.Row("People", strconv.Itoa(len(account.PersonAccount)))

				if account.CurrentSubscription != nil && account.CurrentSubscription.Plan != nil {
					table.Row("Plan", account.CurrentSubscription.Plan.Name)
				}

				table.Row("Created", formatTime(account.Created))
				table.Row("Updated", formatTime(account.Updated))
			})
		},
	}
}

func newAccountsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ACCOUNT_UID",
		Short: "Delete an account",
		Long:  "Delete a CRM account and its memberships",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return deleteWithConfirmation(cmd, force, "account", args[0], func(ctx context.Context, crm outseta.CRMClient) error {
				return crm.Accounts().Delete(ctx, args[0])
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")

	return cmd
}

func fillAccounts(table *Table, accounts []outseta.Account) {
	table.Header("UID", "Name", "Stage", "Demo", "Created")

	for _, account := range accounts {
		table.Row(account.UID, account.Name, orNotAvailable(account.AccountStageLabel), formatBool(account.IsDemo), formatTime(account.Created))
	}
}

// NewPeopleCommand creates the people command group.
func NewPeopleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "people",
		Aliases: []string{"person"},
		Short:   "Manage CRM people",
		Long:    "List, view and delete Outseta CRM people",
	}

	cmd.AddCommand(newPeopleListCommand())
	cmd.AddCommand(newPeopleGetCommand())
	cmd.AddCommand(newPeopleDeleteCommand())

	return cmd
}

func newPeopleListCommand() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List people",
		Long:  "List CRM people",
		RunE: func(cmd *cobra.Command, args []string) error {
			crm, err := newCRMClient()
			if err != nil {
				return err
			}

			return runList(cmd, opts, crm.People().List, nil, fillPeople)
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func newPeopleGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PERSON_UID",
		Short: "Get person details",
		Long:  "Display detailed information about a specific person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			crm, err := newCRMClient()
			if err != nil {
				return err
			}

			person, err := crm.People().Get(commandContext(cmd), args[0])
			if err != nil {
				return err
			}

			return renderPerson(cmd, person)
		},
	}
}

func newPeopleDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete PERSON_UID",
		Short: "Delete a person",
		Long:  "Delete a CRM person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return deleteWithConfirmation(cmd, force, "person", args[0], func(ctx context.Context, crm outseta.CRMClient) error {
				return crm.People().Delete(ctx, args[0])
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "delete without confirmation")

	return cmd
}

func fillPeople(table *Table, people []outseta.Person) {
	table.Header("UID", "Email", "Name", "Created")

	for _, person := range people {
		table.Row(person.UID, person.Email, personName(person), formatTime(person.Created))
	}
}

func renderPerson(cmd *cobra.Command, person *outseta.Person) error {
	return render(cmd, person, func(table *Table) {
		table.Header("Property", "Value")
		table.Row("UID", person.UID)
		table.Row("Email", person.Email)
		table.Row("Name", orNotAvailable(personName(*person)))
		table.Row("Title", orNotAvailable(person.Title))
		table.Row("Timezone", orNotAvailable(person.Timezone))

		if person.Account != nil {
			table.Row("Account", person.Account.Name)
		}

		table.Row("Created", formatTime(person.Created))
		table.Row("Updated", formatTime(person.Updated))
	})
}

func personName(person outseta.Person) string {
	if person.FullName != "" {
		return person.FullName
	}

	if person.FirstName == "" {
		return person.LastName
	}

	if person.LastName == "" {
		return person.FirstName
	}

	return person.FirstName + " " + person.LastName
}

// NewActivitiesCommand creates the activities command group.
func NewActivitiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activities",
		Aliases: []string{"activity"},
		Short:   "View CRM activities",
		Long:    "View the activity timeline of CRM accounts and people",
	}

	cmd.AddCommand(newActivitiesListCommand())

	return cmd
}

func newActivitiesListCommand() *cobra.Command {
	opts := &listOptions{}

	var activityType, entityType int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activities",
		Long:  "List CRM activities, optionally filtered by activity and entity type",
		RunE: func(cmd *cobra.Command, args []string) error {
			crm, err := newCRMClient()
			if err != nil {
				return err
			}

			return runList(cmd, opts, crm.Activities().List,
				func(builder *outseta.PageRequestBuilder) {
					if activityType > 0 {
						builder.WithActivityType(outseta.ActivityType(activityType))
					}

					if entityType > 0 {
						builder.WithEntityType(outseta.EntityType(entityType))
					}
				},
				fillActivities)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().IntVar(&activityType, "activity-type", 0, "activity type number")
	cmd.Flags().IntVar(&entityType, "entity-type", 0, "entity type (1 account, 2 person, 3 deal)")

	return cmd
}

func fillActivities(table *Table, activities []outseta.Activity) {
	table.Header("UID", "Title", "Type", "Entity", "Timestamp")

	for _, activity := range activities {
		table.Row(activity.UID, activity.Title, strconv.Itoa(int(activity.ActivityType)), orNotAvailable(activity.EntityUID), formatTime(activity.Timestamp))
	}
}

func deleteWithConfirmation(cmd *cobra.Command, force bool, kind, uid string, remove func(context.Context, outseta.CRMClient) error) error {
	if !force {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Really delete %s %s? Re-run with --force to confirm.\n", kind, uid)

		return nil
	}

	crm, err := newCRMClient()
	if err != nil {
		return err
	}

	err = remove(commandContext(cmd), crm)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", kind, uid)

	return nil
}
