package admin

import "context"

type AdminService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context, token string, expiresAt int64)
	GetProfile(ctx context.Context, adminID string) (AdminResponse, error)
	UpdateProfile(ctx context.Context, adminID string, req UpdateAdminRequest) (AdminResponse, error)

	List(ctx context.Context) ([]AdminResponse, error)
	Get(ctx context.Context, id string) (AdminResponse, error)
	Create(ctx context.Context, req CreateAdminRequest) (AdminResponse, error)
	Update(ctx context.Context, id string, req UpdateAdminRequest) (AdminResponse, error)
	Delete(ctx context.Context, requesterID, id string) error

	// EnsureAdmin creates the admin unless one with the same email exists.
	EnsureAdmin(ctx context.Context, req CreateAdminRequest) (created bool, err error)
}
