package leave

import "context"

type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (LeaveResponse, error)
	List(ctx context.Context) ([]LeaveResponse, error)
	ListStaffOnLeave(ctx context.Context) ([]StaffOnLeaveResponse, error)
	QuotaSummary(ctx context.Context, staffID string, year int) (QuotaSummaryResponse, error)
}
