package admin

import (
	"time"

	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/calendar"
)

// Admin entity
type Admin struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	DateOfBirth  calendar.Date
	Gender       string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UpdateAdmin carries the columns to change; nil fields are left untouched.
type UpdateAdmin struct {
	FirstName    *string
	LastName     *string
	Email        *string
	DateOfBirth  *calendar.Date
	Gender       *string
	PasswordHash *string
}
