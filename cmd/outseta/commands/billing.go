package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
	"github.com/hamadhassan3/outseta-client-sub001/pkg/outsetaclient"
)

func newBillingClient() (outseta.BillingClient, error) {
	config, err := clientConfig(outseta.BillingFamily)
	if err != nil {
		return nil, err
	}

	return outsetaclient.NewBilling(config)
}

// NewPlansCommand creates the plans command group.
func NewPlansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plans",
		Aliases: []string{"plan"},
		Short:   "View billing plans",
		Long:    "List and view Outseta billing plans",
	}

	cmd.AddCommand(newPlansListCommand())
	cmd.AddCommand(newPlansGetCommand())

	return cmd
}

func newPlansListCommand() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plans",
		Long:  "List billing plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			billing, err := newBillingClient()
			if err != nil {
				return err
			}

			return runList(cmd, opts, billing.Plans().List, nil, fillPlans)
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func newPlansGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PLAN_UID",
		Short: "Get plan details",
		Long:  "Display detailed information about a specific plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			billing, err := newBillingClient()
			if err != nil {
				return err
			}

			plan, err := billing.Plans().Get(commandContext(cmd), args[0])
			if err != nil {
				return err
			}

			return render(cmd, plan, func(table *Table) {
				table.Header("Property", "Value")
				table.Row("UID", plan.UID)
				table.Row("Name", plan.Name)
				table.Row("Active", formatBool(plan.IsActive))
				table.Row("Per User", formatBool(plan.IsPerUser))
				table.Row("Trial Days", strconv.Itoa(plan.TrialPeriodDays))
				table.Row("Monthly", formatAmount(plan.MonthlyRate))
				table.Row("Quarterly", formatAmount(plan.QuarterlyRate))
				table.Row("Annual", formatAmount(plan.AnnualRate))
				table.Row("Setup Fee", formatAmount(plan.SetupFee))

				if plan.PlanFamily != nil {
					table.Row("Family", plan.PlanFamily.Name)
				}
			})
		},
	}
}

func fillPlans(table *Table, plans []outseta.Plan) {
	table.Header("UID", "Name", "Active", "Monthly", "Annual")

	for _, plan := range plans {
		table.Row(plan.UID, plan.Name, formatBool(plan.IsActive), formatAmount(plan.MonthlyRate), formatAmount(plan.AnnualRate))
	}
}

// NewSubscriptionsCommand creates the subscriptions command group.
func NewSubscriptionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subscription", "subs"},
		Short:   "View billing subscriptions",
		Long:    "List and view Outseta billing subscriptions",
	}

	cmd.AddCommand(newSubscriptionsListCommand())
	cmd.AddCommand(newSubscriptionsGetCommand())

	return cmd
}

func newSubscriptionsListCommand() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		Long:  "List billing subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			billing, err := newBillingClient()
			if err != nil {
				return err
			}

			return runList(cmd, opts, billing.Subscriptions().List, nil, fillSubscriptions)
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func newSubscriptionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SUBSCRIPTION_UID",
		Short: "Get subscription details",
		Long:  "Display detailed information about a specific subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			billing, err := newBillingClient()
			if err != nil {
				return err
			}

			subscription, err := billing.Subscriptions().Get(commandContext(cmd), args[0])
			if err != nil {
				return err
			}

			return render(cmd, subscription, func(table *Table) {
				fillSubscriptions(table, []outseta.Subscription{*subscription})
			})
		},
	}
}

func fillSubscriptions(table *Table, subscriptions []outseta.Subscription) {
	table.Header("UID", "Account", "Plan", "Term", "Start", "Renewal")

	for _, subscription := range subscriptions {
		account, plan := "", ""
		if subscription.Account != nil {
			account = subscription.Account.Name
		}

		if subscription.Plan != nil {
			plan = subscription.Plan.Name
		}

		table.Row(subscription.UID, orNotAvailable(account), orNotAvailable(plan),
			strconv.Itoa(subscription.BillingRenewalTerm), formatTime(subscription.StartDate), formatTime(subscription.RenewalDate))
	}
}

// NewTransactionsCommand creates the transactions command group.
func NewTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"transaction", "tx"},
		Short:   "View billing transactions",
		Long:    "List the billing transactions of an account",
	}

	cmd.AddCommand(newTransactionsListCommand())

	return cmd
}

func newTransactionsListCommand() *cobra.Command {
	opts := &listOptions{}

	var transactionType string

	cmd := &cobra.Command{
		Use:   "list ACCOUNT_UID",
		Short: "List transactions",
		Long:  "List the billing transactions of an account, optionally filtered by type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			billing, err := newBillingClient()
			if err != nil {
				return err
			}

			accountUID := args[0]
			fetch := func(ctx context.Context, req *outseta.PageRequest) (*outseta.TransactionPage, error) {
				return billing.Transactions().List(ctx, accountUID, req)
			}

			return runList(cmd, opts, fetch,
				func(builder *outseta.PageRequestBuilder) {
					if transactionType != "" {
						builder.WithBillingTransactionType(outseta.BillingTransactionType(transactionType))
					}
				},
				fillTransactions)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&transactionType, "type", "", "transaction type (Invoice, Payment, Credit, Refund, Chargeback)")

	return cmd
}

func fillTransactions(table *Table, transactions []outseta.Transaction) {
	table.Header("UID", "Date", "Type", "Amount", "Description")

	for _, transaction := range transactions {
		table.Row(transaction.UID, formatTime(transaction.TransactionDate), string(transaction.TransactionType),
			formatAmount(transaction.Amount), orNotAvailable(transaction.Description))
	}
}
