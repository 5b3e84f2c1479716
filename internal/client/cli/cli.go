package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iudanet/contactbook/internal/client/config"
	"github.com/iudanet/contactbook/internal/client/iocli"
	"github.com/iudanet/contactbook/internal/client/tui"
)

// Cli команды клиента
type Cli struct {
	io      iocli.IO
	logOut  io.Writer
	app     *App
	runUI   func(ctx context.Context, deps tui.Deps) error
	version string
}

// Option настраивает Cli
type Option func(*Cli)

// WithVersion задает строку версии для --version
func WithVersion(v string) Option {
	return func(c *Cli) { c.version = v }
}

// WithLogOutput задает поток для логов (по умолчанию stderr)
func WithLogOutput(w io.Writer) Option {
	return func(c *Cli) { c.logOut = w }
}

// WithUIRunner подменяет запуск TUI
func WithUIRunner(run func(ctx context.Context, deps tui.Deps) error) Option {
	return func(c *Cli) { c.runUI = run }
}

// New создает CLI поверх консоли
func New(console iocli.IO, opts ...Option) *Cli {
	c := &Cli{
		io:      console,
		logOut:  os.Stderr,
		runUI:   tui.Run,
		version: "dev",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute разбирает args и выполняет команду
func (c *Cli) Execute(ctx context.Context, args []string) error {
	root := c.Command()
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	defer func() {
		if err := c.app.Close(); err != nil {
			slog.Error("failed to close app", "error", err)
		}
		c.app = nil
	}()
	return root.ExecuteContext(ctx)
}

// Command строит дерево команд
func (c *Cli) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "contactbook",
		Short: "Contact book client",
		Long: `Contactbook is a client for a contact management server.

It lists contacts page by page with local search and tag filters,
creates contacts and edits the signed-in user's profile.`,
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: `  contactbook login
  contactbook list --tag developer --search alice
  contactbook add --name "Alice" --email alice@example.com --tags "developer, frontend"
  contactbook --server https://contacts.example.com/api ui`,
	}
	root.SetVersionTemplate("Contactbook Client\nVersion: {{.Version}}\n")
	root.SetOut(c.io)
	root.SetErr(c.io)
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		c.loginCmd(),
		c.logoutCmd(),
		c.statusCmd(),
		c.listCmd(),
		c.addCmd(),
		c.profileCmd(),
		c.uiCmd(),
	)
	return root
}

// setup загружает настройки и открывает базу. Вызывается командами, которым нужны сервисы.
func (c *Cli) setup(cmd *cobra.Command) error {
	if c.app != nil {
		return nil
	}
	cfg, err := config.Load(cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(c.logOut, &slog.HandlerOptions{Level: cfg.Level()}))
	app, err := Bootstrap(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	c.app = app
	return nil
}
