package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/staff-leave-backend/internal/config"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/database"
	"github.com/spf13/cobra"
)

// App holds the dependencies shared by all commands
type App struct {
	cfg     *config.Config
	db      *database.DB
	ctx     context.Context
	closers []func()
}

var app *App

func main() {
	rootCmd := newRootCmd(initApp)
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(createAdminCmd())

	if err := execute(context.Background(), rootCmd, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(init func(ctx context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   "cli",
		Short: "Staff leave backend administration",
		Long:  `Maintenance commands for the staff leave backend: schema migrations and admin bootstrap.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return init(cmd.Context())
		},
		SilenceUsage: true,
	}
}

// execute runs rootCmd with args and releases app resources whether or not the command failed.
func execute(ctx context.Context, rootCmd *cobra.Command, args []string) error {
	defer closeApp()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// initApp loads config and opens the database
func initApp(ctx context.Context) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: 2})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	app = &App{cfg: cfg, db: db, ctx: ctx, closers: []func(){db.Close}}
	return nil
}

func closeApp() {
	if app == nil {
		return
	}
	for _, c := range app.closers {
		c()
	}
	app = nil
}
