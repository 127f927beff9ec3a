package leave

import (
	"errors"
	"fmt"

	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/calendar"
)

var (
	ErrLeaveNotFound        = errors.New("leave not found")
	ErrInvalidDateRange     = errors.New("start date cannot be after end date")
	ErrAnnualLimitExceeded  = errors.New("annual leave limit exceeded")
	ErrMonthlyLimitExceeded = errors.New("monthly leave limit exceeded")
)

// AnnualLimitError rejects a request that would push the staff member's
// yearly usage past Limit.
type AnnualLimitError struct {
	Used      int
	Requested int
	Limit     int
}

func (e *AnnualLimitError) Error() string {
	return fmt.Sprintf("Annual leave limit exceeded. Used: %d days, Requesting: %d days, Limit: %d days per year",
		e.Used, e.Requested, e.Limit)
}

func (e *AnnualLimitError) Is(target error) bool {
	return target == ErrAnnualLimitExceeded
}

// MonthlyLimitError rejects a request starting in a month that already holds a leave.
// Month is the start date of the blocking leave.
type MonthlyLimitError struct {
	Month calendar.Date
}

func (e *MonthlyLimitError) Error() string {
	return fmt.Sprintf("Staff can only take 1 leave per month. Leave already exists in %s %d",
		e.Month.Month(), e.Month.Year())
}

func (e *MonthlyLimitError) Is(target error) bool {
	return target == ErrMonthlyLimitExceeded
}
