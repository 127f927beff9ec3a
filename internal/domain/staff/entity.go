package staff

import "time"

// Staff entity
type Staff struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Address     string
	Gender      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UpdateStaff carries the columns to change; nil fields are left untouched.
type UpdateStaff struct {
	FirstName   *string
	LastName    *string
	Email       *string
	PhoneNumber *string
	Address     *string
	Gender      *string
}
