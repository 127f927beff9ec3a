package main

import (
	"fmt"

	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/admin"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/jwt"
	"github.com/cmlabs-hris/staff-leave-backend/internal/repository/postgresql"
	adminService "github.com/cmlabs-hris/staff-leave-backend/internal/service/admin"
	"github.com/spf13/cobra"
)

func createAdminCmd() *cobra.Command {
	var req admin.CreateAdminRequest

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := req.Validate(); err != nil {
				return err
			}

			svc := adminService.NewAdminService(
				postgresql.NewAdminRepository(app.db),
				jwt.NewJWTService(app.cfg.JWT.Secret, app.cfg.JWT.AccessExpiration),
			)
			created, err := svc.Create(app.ctx, req)
			if err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}

			fmt.Printf("Admin created: %s %s <%s> (%s)\n", created.FirstName, created.LastName, created.Email, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Admin email (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Admin password (required)")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "Admin", "First name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "User", "Last name")
	cmd.Flags().StringVar(&req.DateOfBirth, "date-of-birth", "1990-01-01", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.Gender, "gender", "other", "Gender")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}
