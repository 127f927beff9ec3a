package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/admin"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/calendar"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/jwt"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AdminServiceImpl struct {
	admin.AdminRepository
	jwt.Service
	hashCost int
}

func NewAdminService(adminRepository admin.AdminRepository, jwtService jwt.Service) admin.AdminService {
	return &AdminServiceImpl{
		AdminRepository: adminRepository,
		Service:         jwtService,
		hashCost:        bcrypt.DefaultCost,
	}
}

func (a *AdminServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements admin.AdminService.
func (a *AdminServiceImpl) Login(ctx context.Context, req admin.LoginRequest) (admin.LoginResponse, error) {
	found, err := a.AdminRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.LoginResponse{}, admin.ErrInvalidCredentials
		}
		return admin.LoginResponse{}, fmt.Errorf("failed to get admin by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		return admin.LoginResponse{}, admin.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(found.ID, found.Email)
	if err != nil {
		return admin.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return admin.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin: admin.AdminSummary{
			ID:        found.ID,
			FirstName: found.FirstName,
			LastName:  found.LastName,
			Email:     found.Email,
		},
	}, nil
}

// Logout implements admin.AdminService.
func (a *AdminServiceImpl) Logout(ctx context.Context, token string, expiresAt int64) {
	a.Service.RevokeToken(token, expiresAt)
}

// GetProfile implements admin.AdminService.
func (a *AdminServiceImpl) GetProfile(ctx context.Context, adminID string) (admin.AdminResponse, error) {
	return a.Get(ctx, adminID)
}

// UpdateProfile implements admin.AdminService.
func (a *AdminServiceImpl) UpdateProfile(ctx context.Context, adminID string, req admin.UpdateAdminRequest) (admin.AdminResponse, error) {
	return a.Update(ctx, adminID, req)
}

// List implements admin.AdminService.
func (a *AdminServiceImpl) List(ctx context.Context) ([]admin.AdminResponse, error) {
	admins, err := a.AdminRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	responses := make([]admin.AdminResponse, 0, len(admins))
	for _, ad := range admins {
		responses = append(responses, admin.ToResponse(ad))
	}
	return responses, nil
}

// Get implements admin.AdminService.
func (a *AdminServiceImpl) Get(ctx context.Context, id string) (admin.AdminResponse, error) {
	found, err := a.AdminRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.AdminResponse{}, admin.ErrAdminNotFound
		}
		return admin.AdminResponse{}, fmt.Errorf("failed to get admin: %w", err)
	}
	return admin.ToResponse(found), nil
}

// Create implements admin.AdminService.
func (a *AdminServiceImpl) Create(ctx context.Context, req admin.CreateAdminRequest) (admin.AdminResponse, error) {
	dob, err := calendar.Parse(req.DateOfBirth)
	if err != nil {
		return admin.AdminResponse{}, err
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return admin.AdminResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.AdminRepository.Create(ctx, admin.Admin{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		DateOfBirth:  dob,
		Gender:       req.Gender,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, admin.ErrEmailExists) {
			return admin.AdminResponse{}, err
		}
		return admin.AdminResponse{}, fmt.Errorf("failed to create admin: %w", err)
	}

	slog.Info("admin created", "admin_id", created.ID)
	return admin.ToResponse(created), nil
}

// Update implements admin.AdminService.
func (a *AdminServiceImpl) Update(ctx context.Context, id string, req admin.UpdateAdminRequest) (admin.AdminResponse, error) {
	update := admin.UpdateAdmin{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Gender:    req.Gender,
	}
	if req.DateOfBirth != nil {
		dob, err := calendar.Parse(*req.DateOfBirth)
		if err != nil {
			return admin.AdminResponse{}, err
		}
		update.DateOfBirth = &dob
	}
	if req.Password != nil {
		hash, err := a.hashPassword(*req.Password)
		if err != nil {
			return admin.AdminResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		update.PasswordHash = &hash
	}

	updated, err := a.AdminRepository.Update(ctx, id, update)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return admin.AdminResponse{}, admin.ErrAdminNotFound
		case errors.Is(err, admin.ErrEmailExists):
			return admin.AdminResponse{}, err
		}
		return admin.AdminResponse{}, fmt.Errorf("failed to update admin: %w", err)
	}
	return admin.ToResponse(updated), nil
}

// Delete implements admin.AdminService.
func (a *AdminServiceImpl) Delete(ctx context.Context, requesterID, id string) error {
	if requesterID == id {
		return admin.ErrCannotDeleteSelf
	}
	if err := a.AdminRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.ErrAdminNotFound
		}
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	slog.Info("admin deleted", "admin_id", id, "deleted_by", requesterID)
	return nil
}

// EnsureAdmin implements admin.AdminService.
func (a *AdminServiceImpl) EnsureAdmin(ctx context.Context, req admin.CreateAdminRequest) (bool, error) {
	_, err := a.AdminRepository.GetByEmail(ctx, req.Email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("failed to get admin by email: %w", err)
	}

	if _, err := a.Create(ctx, req); err != nil {
		if errors.Is(err, admin.ErrEmailExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
