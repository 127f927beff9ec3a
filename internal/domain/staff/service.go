package staff

import "context"

type StaffService interface {
	List(ctx context.Context) ([]StaffResponse, error)
	Get(ctx context.Context, id string) (StaffResponse, error)
	Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)
	Update(ctx context.Context, id string, req UpdateStaffRequest) (StaffResponse, error)
	Delete(ctx context.Context, id string) error
}
