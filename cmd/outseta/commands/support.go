package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
	"github.com/hamadhassan3/outseta-client-sub001/pkg/outsetaclient"
)

func newSupportClient() (outseta.SupportClient, error) {
	config, err := clientConfig(outseta.SupportFamily)
	if err != nil {
		return nil, err
	}

	return outsetaclient.NewSupport(config)
}

// NewCasesCommand creates the cases command group.
func NewCasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cases",
		Aliases: []string{"case"},
		Short:   "View support cases",
		Long:    "List and view Outseta support cases",
	}

	cmd.AddCommand(newCasesListCommand())
	cmd.AddCommand(newCasesGetCommand())

	return cmd
}

func newCasesListCommand() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cases",
		Long:  "List support cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			support, err := newSupportClient()
			if err != nil {
				return err
			}

			return runList(cmd, opts, support.Cases().List, nil, fillCases)
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func newCasesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CASE_UID",
		Short: "Get case details",
		Long:  "Display a support case including its body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			support, err := newSupportClient()
			if err != nil {
				return err
			}

			supportCase, err := support.Cases().Get(commandContext(cmd), args[0])
			if err != nil {
				return err
			}

			return render(cmd, supportCase, func(table *Table) {
				table.Header("Property", "Value")
				table.Row("UID", supportCase.UID)
				table.Row("Subject", supportCase.Subject)
				table.Row("Status", strconv.Itoa(supportCase.Status))
				table.Row("From", casePerson(supportCase))
				table.Row("Created", formatTime(supportCase.Created))
				table.Row("Body", orNotAvailable(supportCase.Body))
			})
		},
	}
}

func fillCases(table *Table, cases []outseta.Case) {
	table.Header("UID", "Subject", "Status", "From", "Created")

	for i := range cases {
		table.Row(cases[i].UID, cases[i].Subject, strconv.Itoa(cases[i].Status), casePerson(&cases[i]), formatTime(cases[i].Created))
	}
}

func casePerson(supportCase *outseta.Case) string {
	if supportCase.FromPerson == nil {
		return ""
	}

	return supportCase.FromPerson.Email
}
