package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (c *Cli) loginCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.setup(cmd); err != nil {
				return err
			}
			return c.runLogin(cmd, email)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if empty)")
	return cmd
}

func (c *Cli) runLogin(cmd *cobra.Command, email string) error {
	ctx := cmd.Context()

	c.io.Println("=== Login ===")
	c.io.Println()

	var err error
	if email == "" {
		email, err = c.io.ReadInput("Email: ")
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	id, err := c.app.Session.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", explain(err))
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Email: %s\n", id.Email)
	if !id.ExpiresAt.IsZero() {
		c.io.Printf("Token expires: %s\n", id.ExpiresAt.Format(time.RFC3339))
	}
	c.io.Println()
	c.io.Println("Your session has been saved.")
	return nil
}
