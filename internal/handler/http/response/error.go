package response

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/admin"
	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/leave"
	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/staff"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Quota rejections carry their numbers
	var annualErr *leave.AnnualLimitError
	if errors.As(err, &annualErr) {
		Rejected(w, "ANNUAL_LIMIT_EXCEEDED", annualErr.Error(), map[string]string{
			"used":      strconv.Itoa(annualErr.Used),
			"requested": strconv.Itoa(annualErr.Requested),
			"limit":     strconv.Itoa(annualErr.Limit),
		})
		return
	}
	var monthlyErr *leave.MonthlyLimitError
	if errors.As(err, &monthlyErr) {
		Rejected(w, "MONTHLY_LIMIT_EXCEEDED", monthlyErr.Error(), map[string]string{
			"month": monthlyErr.Month.MonthKey(),
		})
		return
	}

	switch {
	// Admin domain errors
	case errors.Is(err, admin.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, admin.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, admin.ErrAdminNotFound):
		NotFound(w, "Admin not found")
	case errors.Is(err, admin.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, admin.ErrCannotDeleteSelf):
		Forbidden(w, "Admins cannot delete their own account")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff not found")
	case errors.Is(err, staff.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		Rejected(w, "INVALID_DATE_RANGE", "Start date cannot be after end date", nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
