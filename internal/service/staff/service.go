package staff

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/staff"
	"github.com/jackc/pgx/v5"
)

type StaffServiceImpl struct {
	staff.StaffRepository
}

func NewStaffService(staffRepository staff.StaffRepository) staff.StaffService {
	return &StaffServiceImpl{StaffRepository: staffRepository}
}

// List implements staff.StaffService.
func (s *StaffServiceImpl) List(ctx context.Context) ([]staff.StaffResponse, error) {
	members, err := s.StaffRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	responses := make([]staff.StaffResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, staff.ToResponse(m))
	}
	return responses, nil
}

// Get implements staff.StaffService.
func (s *StaffServiceImpl) Get(ctx context.Context, id string) (staff.StaffResponse, error) {
	found, err := s.StaffRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.StaffResponse{}, staff.ErrStaffNotFound
		}
		return staff.StaffResponse{}, fmt.Errorf("failed to get staff: %w", err)
	}
	return staff.ToResponse(found), nil
}

// Create implements staff.StaffService.
func (s *StaffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	created, err := s.StaffRepository.Create(ctx, staff.Staff{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Gender:      req.Gender,
	})
	if err != nil {
		if errors.Is(err, staff.ErrEmailExists) {
			return staff.StaffResponse{}, err
		}
		return staff.StaffResponse{}, fmt.Errorf("failed to create staff: %w", err)
	}

	slog.Info("staff created", "staff_id", created.ID)
	return staff.ToResponse(created), nil
}

// Update implements staff.StaffService.
func (s *StaffServiceImpl) Update(ctx context.Context, id string, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	updated, err := s.StaffRepository.Update(ctx, id, staff.UpdateStaff{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Gender:      req.Gender,
	})
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return staff.StaffResponse{}, staff.ErrStaffNotFound
		case errors.Is(err, staff.ErrEmailExists):
			return staff.StaffResponse{}, err
		}
		return staff.StaffResponse{}, fmt.Errorf("failed to update staff: %w", err)
	}
	return staff.ToResponse(updated), nil
}

// Delete implements staff.StaffService. The staff member's leaves go with them.
func (s *StaffServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.StaffRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.ErrStaffNotFound
		}
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	slog.Info("staff deleted", "staff_id", id)
	return nil
}
