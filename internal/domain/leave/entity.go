package leave

import (
	"time"

	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/staff"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/calendar"
)

// AnnualQuotaDays is the maximum number of leave days a staff member may take per calendar year.
const AnnualQuotaDays = 12

// Leave is a persisted leave record. DateStart and DateEnd are inclusive.
type Leave struct {
	ID        string
	StaffID   string
	Reason    string
	DateStart calendar.Date
	DateEnd   calendar.Date
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveWithStaff is a leave joined with the staff member it belongs to.
type LeaveWithStaff struct {
	Leave
	Staff staff.Staff
}

// StaffWithLeaves groups a staff member with all of their leaves.
type StaffWithLeaves struct {
	Staff  staff.Staff
	Leaves []Leave
}

// UpdateLeave carries the columns to change; nil fields are left untouched.
type UpdateLeave struct {
	StaffID   *string
	Reason    *string
	DateStart *calendar.Date
	DateEnd   *calendar.Date
}
