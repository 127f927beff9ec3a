package leave

import (
	"context"

	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/calendar"
)

// LeaveRepository - interface for leaves table
type LeaveRepository interface {
	Create(ctx context.Context, newLeave Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	GetWithStaff(ctx context.Context, id string) (LeaveWithStaff, error)
	ListWithStaff(ctx context.Context) ([]LeaveWithStaff, error)
	ListStaffOnLeave(ctx context.Context) ([]StaffWithLeaves, error)
	// ListByStaffBetween returns the staff member's leaves whose start date lies in [from, to].
	ListByStaffBetween(ctx context.Context, staffID string, from, to calendar.Date) ([]Leave, error)
	Update(ctx context.Context, id string, update UpdateLeave) (Leave, error)
	Delete(ctx context.Context, id string) error
}

// StaffLocker serializes work for a single staff member. fn runs with a
// context that carries the guarding transaction, so repository calls made
// through it share that transaction.
type StaffLocker interface {
	WithStaffLock(ctx context.Context, staffID string, fn func(ctx context.Context) error) error
}
