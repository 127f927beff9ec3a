package admin

import (
	"time"

	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/calendar"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validator.Struct(r)
}

type CreateAdminRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=255"`
	LastName    string `json:"last_name" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email,max=255"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"required,max=255"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
}

func (r *CreateAdminRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}

	var errs validator.ValidationErrors
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be blank",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name must not be blank",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAdminRequest struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,max=255"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=255"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	DateOfBirth *string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender      *string `json:"gender,omitempty" validate:"omitempty,max=255"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
}

func (r *UpdateAdminRequest) Validate() error {
	return validator.Struct(r)
}

// AdminResponse is the public view of an admin; the password hash never leaves the service.
type AdminResponse struct {
	ID          string        `json:"id"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	Email       string        `json:"email"`
	DateOfBirth calendar.Date `json:"date_of_birth"`
	Gender      string        `json:"gender"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type AdminSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expires_at"`
	Admin     AdminSummary `json:"admin"`
}

func ToResponse(a Admin) AdminResponse {
	return AdminResponse{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		DateOfBirth: a.DateOfBirth,
		Gender:      a.Gender,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
