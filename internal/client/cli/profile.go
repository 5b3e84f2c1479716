package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/contactbook/internal/client/form"
)

func (c *Cli) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.setup(cmd); err != nil {
				return err
			}
			return c.runProfile(cmd)
		},
	}
	cmd.AddCommand(c.profileEditCmd())
	return cmd
}

func (c *Cli) runProfile(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if _, err := c.app.currentUser(ctx); err != nil {
		return err
	}

	p, err := c.app.Profiles.Get(ctx)
	if err != nil {
		return explain(err)
	}
	return profileTmpl.Execute(c.io, p)
}

func (c *Cli) profileEditCmd() *cobra.Command {
	var avatarPath string
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit your profile",
		Long:  "Change name, email, phone or avatar. Only the given flags change; the profile is saved as a whole.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.setup(cmd); err != nil {
				return err
			}

			changes := make(map[form.Field]string)
			for _, f := range form.ProfileFields() {
				if cmd.Flags().Changed(f.String()) {
					v, _ := cmd.Flags().GetString(f.String())
					changes[f] = v
				}
			}
			if len(changes) == 0 && avatarPath == "" {
				return fmt.Errorf("nothing to change: use --name, --email, --phone or --avatar")
			}
			return c.runProfileEdit(cmd, changes, avatarPath)
		},
	}
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("email", "", "New email")
	cmd.Flags().String("phone", "", "New phone")
	cmd.Flags().StringVar(&avatarPath, "avatar", "", "Path to an avatar image (max 5 MiB)")
	return cmd
}

func (c *Cli) runProfileEdit(cmd *cobra.Command, changes map[form.Field]string, avatarPath string) error {
	ctx := cmd.Context()
	if _, err := c.app.currentUser(ctx); err != nil {
		return err
	}

	current, err := c.app.Profiles.Get(ctx)
	if err != nil {
		return explain(err)
	}

	profileForm := form.NewProfileForm(c.app.Profiles, c.app.Logger)
	profileForm.Load(*current)
	for f, v := range changes {
		if err := profileForm.SetField(f, v); err != nil {
			return err
		}
	}

	if avatarPath != "" {
		if err := profileForm.CaptureAvatarFile(ctx, avatarPath); err != nil {
			return fmt.Errorf("failed to attach avatar: %w", err)
		}
	}

	saved, err := profileForm.Submit(ctx)
	if err != nil {
		return explain(err)
	}

	c.io.Println("✓ Profile saved!")
	return profileTmpl.Execute(c.io, saved)
}
