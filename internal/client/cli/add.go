package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/contactbook/internal/client/form"
)

// addFlags флаги команды add в порядке полей формы
var addFlags = []struct {
	flag  string
	field form.Field
	usage string
}{
	{"name", form.FieldName, "Contact name (prompted if empty)"},
	{"email", form.FieldEmail, "Contact email (prompted if empty)"},
	{"phone", form.FieldPhone, "Phone number"},
	{"role", form.FieldRole, "Job title"},
	{"company", form.FieldCompany, "Company"},
	{"tags", form.FieldTags, `Comma-separated tags, e.g. "developer, frontend"`},
	{"notes", form.FieldNotes, "Free-text notes"},
	{"linkedin", form.FieldSocialLinkedIn, "LinkedIn username"},
	{"github", form.FieldSocialGitHub, "GitHub username"},
	{"twitter", form.FieldSocialTwitter, "Twitter username"},
}

func (c *Cli) addCmd() *cobra.Command {
	values := make(map[form.Field]*string, len(addFlags))
	var imagePath string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.setup(cmd); err != nil {
				return err
			}
			draft := make(map[form.Field]string, len(values))
			for f, v := range values {
				draft[f] = *v
			}
			return c.runAdd(cmd, draft, imagePath)
		},
	}
	for _, af := range addFlags {
		values[af.field] = cmd.Flags().String(af.flag, "", af.usage)
	}
	cmd.Flags().StringVar(&imagePath, "image", "", "Path to an image file (max 5 MiB)")
	return cmd
}

func (c *Cli) runAdd(cmd *cobra.Command, values map[form.Field]string, imagePath string) error {
	ctx := cmd.Context()

	if _, err := c.app.currentUser(ctx); err != nil {
		return err
	}

	c.io.Println("=== Add Contact ===")
	c.io.Println()

	// Обязательные поля спрашиваем интерактивно
	for _, f := range []form.Field{form.FieldName, form.FieldEmail} {
		if values[f] != "" {
			continue
		}
		v, err := c.io.ReadInput(fmt.Sprintf("%s: ", displayName(f)))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", f, err)
		}
		values[f] = v
	}

	contactForm := form.NewContactForm(c.app.Contacts, c.app.Logger)
	for _, af := range addFlags {
		if err := contactForm.SetField(af.field, values[af.field]); err != nil {
			return err
		}
	}

	if imagePath != "" {
		if err := contactForm.CaptureImageFile(ctx, imagePath); err != nil {
			return fmt.Errorf("failed to attach image: %w", err)
		}
	}

	contact, err := contactForm.Submit(ctx)
	if err != nil {
		return fmt.Errorf("failed to add contact: %w", explain(err))
	}

	c.io.Println("✓ Contact added successfully!")
	c.io.Println()
	if err := contactTmpl.Execute(c.io, contact); err != nil {
		return fmt.Errorf("failed to render contact: %w", err)
	}
	c.io.Println()
	c.io.Println("Run 'contactbook list' to see it in your contacts.")
	return nil
}

func displayName(f form.Field) string {
	switch f {
	case form.FieldName:
		return "Name"
	case form.FieldEmail:
		return "Email"
	case form.FieldPhone:
		return "Phone"
	}
	return f.String()
}
