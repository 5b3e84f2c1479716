package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (c *Cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.setup(cmd); err != nil {
				return err
			}
			return c.runStatus(cmd)
		},
	}
}

func (c *Cli) runStatus(cmd *cobra.Command) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()
	c.io.Printf("Server: %s\n", c.app.Config.ServerURL)

	id, err := c.app.currentUser(cmd.Context())
	if err != nil {
		if errors.Is(err, errNotLoggedIn) {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'contactbook login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Email: %s\n", id.Email)

	if id.ExpiresAt.IsZero() {
		c.io.Println("Token expires: unknown")
		return nil
	}
	c.io.Printf("Token expires: %s\n", id.ExpiresAt.Format(time.RFC3339))
	c.io.Printf("Time remaining: %s\n", time.Until(id.ExpiresAt).Round(time.Second))
	return nil
}
