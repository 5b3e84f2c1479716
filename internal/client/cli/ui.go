package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/contactbook/internal/client/tui"
)

func (c *Cli) uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.setup(cmd); err != nil {
				return err
			}
			ctx := cmd.Context()

			id, err := c.app.currentUser(ctx)
			if err != nil {
				return err
			}

			return c.runUI(ctx, tui.Deps{
				Contacts: c.app.Contacts,
				Profiles: c.app.Profiles,
				Session:  c.app.Session,
				Logger:   c.app.Logger,
				User:     id.Email,
				PageSize: c.app.Config.PageSize,
			})
		},
	}
}
