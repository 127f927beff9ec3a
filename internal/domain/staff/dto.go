package staff

import (
	"time"

	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/validator"
)

type CreateStaffRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=255"`
	LastName    string `json:"last_name" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email,max=255"`
	PhoneNumber string `json:"no_hp" validate:"required,max=255"`
	Address     string `json:"address" validate:"required"`
	Gender      string `json:"gender" validate:"required,max=255"`
}

func (r *CreateStaffRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}

	var errs validator.ValidationErrors
	if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "no_hp",
			Message: "no_hp must contain 8-15 digits",
		})
	}
	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address must not be blank",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStaffRequest struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,max=255"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=255"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	PhoneNumber *string `json:"no_hp,omitempty" validate:"omitempty,max=255"`
	Address     *string `json:"address,omitempty"`
	Gender      *string `json:"gender,omitempty" validate:"omitempty,max=255"`
}

func (r *UpdateStaffRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}

	// PhoneNumber
	if r.PhoneNumber != nil && *r.PhoneNumber != "" && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		return validator.ValidationErrors{{
			Field:   "no_hp",
			Message: "no_hp must contain 8-15 digits",
		}}
	}
	return nil
}

type StaffResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"no_hp"`
	Address     string    `json:"address"`
	Gender      string    `json:"gender"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Summary is the public subset embedded in leave responses.
type Summary struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"no_hp"`
	Address     string `json:"address"`
	Gender      string `json:"gender"`
}

func ToResponse(s Staff) StaffResponse {
	return StaffResponse{
		ID:          s.ID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Email:       s.Email,
		PhoneNumber: s.PhoneNumber,
		Address:     s.Address,
		Gender:      s.Gender,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func ToSummary(s Staff) Summary {
	return Summary{
		ID:          s.ID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Email:       s.Email,
		PhoneNumber: s.PhoneNumber,
		Address:     s.Address,
		Gender:      s.Gender,
	}
}
