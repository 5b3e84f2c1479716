package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/contactbook/internal/client/view"
	"github.com/iudanet/contactbook/internal/models"
)

type listOptions struct {
	search string
	tag    string
	page   int
	size   int
}

func (c *Cli) listCmd() *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts page by page",
		Long: `List one page of your contacts.

--tag is applied by the server and again locally; --search matches name or
email (case-insensitive) within the loaded page only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.setup(cmd); err != nil {
				return err
			}
			if !cmd.Flags().Changed("size") {
				opts.size = c.app.Config.PageSize
			}
			return c.runList(cmd, opts)
		},
	}
	cmd.Flags().IntVar(&opts.page, "page", 1, "Page number, starting from 1")
	cmd.Flags().IntVar(&opts.size, "size", 0, "Contacts per page (default from --page-size)")
	cmd.Flags().StringVar(&opts.search, "search", "", "Show only contacts whose name or email contains this text")
	cmd.Flags().StringVar(&opts.tag, "tag", models.FilterAll, "Show only contacts with this tag")
	return cmd
}

func (c *Cli) runList(cmd *cobra.Command, opts listOptions) error {
	ctx := cmd.Context()

	if opts.page < 1 {
		return fmt.Errorf("page must be 1 or greater, got %d", opts.page)
	}
	if opts.size < 1 {
		return fmt.Errorf("size must be 1 or greater, got %d", opts.size)
	}

	id, err := c.app.currentUser(ctx)
	if err != nil {
		return err
	}

	ctrl := view.NewController(c.app.Contacts,
		view.WithUser(id.Email),
		view.WithPage(opts.page-1),
		view.WithPageSize(opts.size),
		view.WithFilter(opts.tag),
		view.WithLogger(c.app.Logger),
	)
	ctrl.SetSearch(opts.search)
	if err := ctrl.Load(ctx); err != nil {
		return fmt.Errorf("failed to list contacts: %w", explain(err))
	}
	state := ctrl.Snapshot()

	if state.TotalPages == 0 {
		c.io.Println("=== Contacts ===")
		c.io.Println()
		c.io.Println("No contacts found.")
		c.io.Println()
		c.io.Println("Use 'contactbook add' to add your first contact.")
		return nil
	}

	c.io.Printf("=== Contacts (page %d of %d) ===\n", state.LoadedPage+1, state.TotalPages)
	c.io.Println()

	if len(state.Visible) == 0 {
		c.io.Println("No contacts on this page match the search and filter.")
	}
	for i, contact := range state.Visible {
		c.io.Printf("%d. ", i+1)
		if err := contactTmpl.Execute(c.io, contact); err != nil {
			return fmt.Errorf("failed to render contact: %w", err)
		}
		c.io.Println()
	}

	c.io.Printf("Showing %d of %d contact(s) on this page", len(state.Visible), len(state.Content))
	if state.SearchTerm != "" {
		c.io.Printf(", search %q", state.SearchTerm)
	}
	if state.Filter != models.FilterAll {
		c.io.Printf(", tag %q", state.Filter)
	}
	c.io.Println(".")

	if state.CanPrev {
		c.io.Printf("Previous page: contactbook list --page %d\n", state.LoadedPage)
	}
	if state.CanNext {
		c.io.Printf("Next page: contactbook list --page %d\n", state.LoadedPage+2)
	}
	return nil
}
