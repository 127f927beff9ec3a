package main

import (
	"fmt"

	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/database"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := database.Migrate(app.ctx, app.db); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}
			fmt.Println("Migrations up to date")
			return nil
		},
	}
}
