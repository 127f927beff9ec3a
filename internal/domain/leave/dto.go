package leave

import (
	"time"

	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/staff"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/calendar"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	Reason    string `json:"reason" validate:"required"`
	DateStart string `json:"date_start" validate:"required,datetime=2006-01-02"`
	DateEnd   string `json:"date_end" validate:"required,datetime=2006-01-02"`
	StaffID   string `json:"staff_id" validate:"required,uuid"`
}

func (r *CreateLeaveRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}

	if validator.IsEmpty(r.Reason) {
		return validator.ValidationErrors{{
			Field:   "reason",
			Message: "reason must not be blank",
		}}
	}
	return nil
}

// Dates parses the validated start and end dates.
func (r *CreateLeaveRequest) Dates() (start, end calendar.Date, err error) {
	if start, err = parseDateField("date_start", r.DateStart); err != nil {
		return
	}
	end, err = parseDateField("date_end", r.DateEnd)
	return
}

// parseDateField reports a malformed date as a validation error on field.
func parseDateField(field, value string) (calendar.Date, error) {
	d, err := calendar.Parse(value)
	if err != nil {
		return calendar.Date{}, validator.ValidationErrors{{
			Field:   field,
			Message: field + " must be a valid date (YYYY-MM-DD)",
		}}
	}
	return d, nil
}

type UpdateLeaveRequest struct {
	Reason    *string `json:"reason,omitempty"`
	DateStart *string `json:"date_start,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateEnd   *string `json:"date_end,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StaffID   *string `json:"staff_id,omitempty" validate:"omitempty,uuid"`
}

func (r *UpdateLeaveRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}

	if r.Reason != nil && validator.IsEmpty(*r.Reason) {
		return validator.ValidationErrors{{
			Field:   "reason",
			Message: "reason must not be blank",
		}}
	}
	return nil
}

// ToUpdate converts the request into repository form.
func (r *UpdateLeaveRequest) ToUpdate() (UpdateLeave, error) {
	update := UpdateLeave{
		StaffID: r.StaffID,
		Reason:  r.Reason,
	}
	if r.DateStart != nil {
		d, err := parseDateField("date_start", *r.DateStart)
		if err != nil {
			return UpdateLeave{}, err
		}
		update.DateStart = &d
	}
	if r.DateEnd != nil {
		d, err := parseDateField("date_end", *r.DateEnd)
		if err != nil {
			return UpdateLeave{}, err
		}
		update.DateEnd = &d
	}
	return update, nil
}

type LeaveResponse struct {
	ID        string         `json:"id"`
	Reason    string         `json:"reason"`
	DateStart calendar.Date  `json:"date_start"`
	DateEnd   calendar.Date  `json:"date_end"`
	Days      int            `json:"days"`
	StaffID   string         `json:"staff_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Staff     *staff.Summary `json:"staff,omitempty"`
}

type LeaveItem struct {
	ID        string        `json:"id"`
	Reason    string        `json:"reason"`
	DateStart calendar.Date `json:"date_start"`
	DateEnd   calendar.Date `json:"date_end"`
	Days      int           `json:"days"`
}

type StaffOnLeaveResponse struct {
	staff.Summary
	Leaves []LeaveItem `json:"leaves"`
}

type QuotaSummaryResponse struct {
	StaffID     string   `json:"staff_id"`
	Year        int      `json:"year"`
	Used        int      `json:"used"`
	Remaining   int      `json:"remaining"`
	Limit       int      `json:"limit"`
	MonthsTaken []string `json:"months_taken"`
}
