package commands

import (
	"github.com/spf13/cobra"

	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
	"github.com/hamadhassan3/outseta-client-sub001/pkg/outsetaclient"
)

// NewProfileCommand creates the profile command group.
func NewProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View the signed-in person",
		Long:  "View and update the profile of the person the access token belongs to",
	}

	cmd.AddCommand(newProfileShowCommand())
	cmd.AddCommand(newProfileUpdateCommand())

	return cmd
}

func newProfileClient() (outseta.ProfileClient, error) {
	config, err := clientConfig(outseta.ProfileFamily)
	if err != nil {
		return nil, err
	}

	return outsetaclient.NewProfile(config)
}

func newProfileShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		Long:  "Display the profile of the signed-in person",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := newProfileClient()
			if err != nil {
				return err
			}

			person, err := profile.Get(commandContext(cmd))
			if err != nil {
				return err
			}

			return renderPerson(cmd, person)
		},
	}
}

func newProfileUpdateCommand() *cobra.Command {
	var firstName, lastName, title, timezone string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the profile",
		Long:  "Update name, title or timezone of the signed-in person",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := newProfileClient()
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			person, err := profile.Get(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("first-name") {
				person.FirstName = firstName
			}

			if cmd.Flags().Changed("last-name") {
				person.LastName = lastName
			}

			if cmd.Flags().Changed("title") {
				person.Title = title
			}

			if cmd.Flags().Changed("timezone") {
				person.Timezone = timezone
			}

			updated, err := profile.Update(ctx, person)
			if err != nil {
				return err
			}

			return renderPerson(cmd, updated)
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&title, "title", "", "job title")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone, e.g. Europe/Berlin")

	return cmd
}
