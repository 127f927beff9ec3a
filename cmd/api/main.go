package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/staff-leave-backend/internal/config"
	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/admin"
	appHTTP "github.com/cmlabs-hris/staff-leave-backend/internal/handler/http"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/cron"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/database"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/jwt"
	"github.com/cmlabs-hris/staff-leave-backend/internal/repository/postgresql"
	adminService "github.com/cmlabs-hris/staff-leave-backend/internal/service/admin"
	leaveService "github.com/cmlabs-hris/staff-leave-backend/internal/service/leave"
	staffService "github.com/cmlabs-hris/staff-leave-backend/internal/service/staff"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.App.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staff-leave-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.App.RunMigrations {
		if err := database.Migrate(ctx, db); err != nil {
			slog.Error("Error running migrations", "error", err)
			os.Exit(1)
		}
	}

	adminRepo := postgresql.NewAdminRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	staffLocker := postgresql.NewStaffLocker(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	adminSvc := adminService.NewAdminService(adminRepo, JWTService)
	staffSvc := staffService.NewStaffService(staffRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, staffRepo, staffLocker)

	if cfg.Seed.AdminEmail != "" {
		created, err := adminSvc.EnsureAdmin(ctx, admin.CreateAdminRequest{
			FirstName:   "Super",
			LastName:    "Admin",
			Email:       cfg.Seed.AdminEmail,
			DateOfBirth: "1990-01-01",
			Gender:      "other",
			Password:    cfg.Seed.AdminPassword,
		})
		if err != nil {
			slog.Error("Error seeding admin", "error", err)
			os.Exit(1)
		}
		if created {
			slog.Info("Seed admin created", "email", cfg.Seed.AdminEmail)
		}
	}

	scheduler := cron.NewScheduler()
	scheduler.AddJob("prune-revoked-tokens", 15*time.Minute, func(ctx context.Context) error {
		if removed := JWTService.PruneRevoked(); removed > 0 {
			slog.Debug("Pruned revoked tokens", "count", removed)
		}
		return nil
	})
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         logger,
			LogLevel:       cfg.App.SlogLevel(),
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		JWTService,
		appHTTP.NewAdminHandler(adminSvc),
		appHTTP.NewStaffHandler(staffSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	slog.Info("Server stopped")
}
