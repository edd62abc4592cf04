package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
	"github.com/hamadhassan3/outseta-client-sub001/pkg/outsetaclient"
)

func newMarketingClient() (outseta.MarketingClient, error) {
	config, err := clientConfig(outseta.MarketingFamily)
	if err != nil {
		return nil, err
	}

	return outsetaclient.NewMarketing(config)
}

// NewEmailListsCommand creates the email lists command group.
func NewEmailListsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "email-lists",
		Aliases: []string{"lists", "email-list"},
		Short:   "Manage marketing email lists",
		Long:    "List email lists and manage their subscribers",
	}

	cmd.AddCommand(newEmailListsListCommand())
	cmd.AddCommand(newEmailListsGetCommand())
	cmd.AddCommand(newEmailListsSubscribeCommand())
	cmd.AddCommand(newEmailListsUnsubscribeCommand())

	return cmd
}

func newEmailListsListCommand() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List email lists",
		Long:  "List marketing email lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			marketing, err := newMarketingClient()
			if err != nil {
				return err
			}

			return runList(cmd, opts, marketing.EmailLists().List, nil, fillEmailLists)
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func newEmailListsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get LIST_UID",
		Short: "Get email list details",
		Long:  "Display detailed information about a specific email list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			marketing, err := newMarketingClient()
			if err != nil {
				return err
			}

			list, err := marketing.EmailLists().Get(commandContext(cmd), args[0])
			if err != nil {
				return err
			}

			return render(cmd, list, func(table *Table) {
				fillEmailLists(table, []outseta.EmailList{*list})
			})
		},
	}
}

func newEmailListsSubscribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe LIST_UID EMAIL",
		Short: "Subscribe a person",
		Long:  "Add a person to an email list by email address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			marketing, err := newMarketingClient()
			if err != nil {
				return err
			}

			subscription := &outseta.EmailListSubscription{
				EmailList:  &outseta.EmailList{Resource: outseta.Resource{UID: args[0]}},
				Subscriber: &outseta.Person{Email: args[1]},
			}

			err = marketing.EmailLists().Subscribe(commandContext(cmd), args[0], subscription)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Subscribed %s to %s\n", args[1], args[0])

			return nil
		},
	}
}

func newEmailListsUnsubscribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unsubscribe LIST_UID PERSON_UID",
		Short: "Unsubscribe a person",
		Long:  "Remove a person from an email list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			marketing, err := newMarketingClient()
			if err != nil {
				return err
			}

			err = marketing.EmailLists().Unsubscribe(commandContext(cmd), args[0], args[1])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unsubscribed %s from %s\n", args[1], args[0])

			return nil
		},
	}
}

func fillEmailLists(table *Table, lists []outseta.EmailList) {
	table.Header("UID", "Name", "Subscribers", "Created")

	for _, list := range lists {
		table.Row(list.UID, list.Name, strconv.Itoa(list.CountSubscriptions), formatTime(list.Created))
	}
}
