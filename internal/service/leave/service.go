package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/leave"
	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/staff"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/calendar"
	"github.com/jackc/pgx/v5"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	staffDirectory staff.Directory
	locker         leave.StaffLocker
	engine         *QuotaEngine
	now            func() time.Time
}

func NewLeaveService(leaveRepository leave.LeaveRepository, staffDirectory staff.Directory, locker leave.StaffLocker) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepository,
		staffDirectory:  staffDirectory,
		locker:          locker,
		engine:          NewQuotaEngine(),
		now:             time.Now,
	}
}

// Create admits a new leave. The history read, the decision and the insert
// run under the staff member's lock, so concurrent admissions for the same
// staff cannot both pass on the same usage figure.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	member, err := s.getStaff(ctx, req.StaffID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	start, end, err := req.Dates()
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	candidate := leave.Leave{
		StaffID:   member.ID,
		Reason:    req.Reason,
		DateStart: start,
		DateEnd:   end,
	}
	if err := s.engine.ValidateOrdering(candidate); err != nil {
		return leave.LeaveResponse{}, err
	}

	var created leave.Leave
	err = s.locker.WithStaffLock(ctx, member.ID, func(ctx context.Context) error {
		year := candidate.DateStart.Year()
		history, err := s.LeaveRepository.ListByStaffBetween(ctx, member.ID, calendar.YearStart(year), calendar.YearEnd(year))
		if err != nil {
			return fmt.Errorf("failed to get leave history: %w", err)
		}

		verdict := s.engine.Decide(candidate, history)
		if !verdict.Admitted() {
			slog.Info("leave rejected",
				"staff_id", member.ID,
				"date_start", candidate.DateStart,
				"used", verdict.Used,
				"requested", verdict.Requested,
				"reason", verdict.Err,
			)
			return verdict.Err
		}

		created, err = s.LeaveRepository.Create(ctx, candidate)
		if err != nil {
			return fmt.Errorf("failed to create leave: %w", err)
		}

		slog.Info("leave admitted",
			"leave_id", created.ID,
			"staff_id", member.ID,
			"year", year,
			"used", verdict.Used+verdict.Requested,
		)
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(created, &member), nil
}

// Update changes the supplied fields in place. Quota rules are not
// re-evaluated; only staff existence and date ordering are checked.
func (s *LeaveServiceImpl) Update(ctx context.Context, id string, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	existing, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveResponse{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave: %w", err)
	}

	update, err := req.ToUpdate()
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if update.StaffID != nil {
		if _, err := s.getStaff(ctx, *update.StaffID); err != nil {
			return leave.LeaveResponse{}, err
		}
	}

	if update.DateStart != nil || update.DateEnd != nil {
		effective := existing
		if update.DateStart != nil {
			effective.DateStart = *update.DateStart
		}
		if update.DateEnd != nil {
			effective.DateEnd = *update.DateEnd
		}
		if err := s.engine.ValidateOrdering(effective); err != nil {
			return leave.LeaveResponse{}, err
		}
	}

	if _, err := s.LeaveRepository.Update(ctx, id, update); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveResponse{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave: %w", err)
	}

	return s.Get(ctx, id)
}

// Delete removes the leave unconditionally.
func (s *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.LeaveRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to delete leave: %w", err)
	}
	return nil
}

func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveResponse, error) {
	l, err := s.LeaveRepository.GetWithStaff(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveResponse{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave: %w", err)
	}
	return toResponse(l.Leave, &l.Staff), nil
}

func (s *LeaveServiceImpl) List(ctx context.Context) ([]leave.LeaveResponse, error) {
	leaves, err := s.LeaveRepository.ListWithStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, toResponse(l.Leave, &l.Staff))
	}
	return responses, nil
}

func (s *LeaveServiceImpl) ListStaffOnLeave(ctx context.Context) ([]leave.StaffOnLeaveResponse, error) {
	groups, err := s.LeaveRepository.ListStaffOnLeave(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff on leave: %w", err)
	}

	responses := make([]leave.StaffOnLeaveResponse, 0, len(groups))
	for _, g := range groups {
		if len(g.Leaves) == 0 {
			continue
		}
		items := make([]leave.LeaveItem, 0, len(g.Leaves))
		for _, l := range g.Leaves {
			items = append(items, leave.LeaveItem{
				ID:        l.ID,
				Reason:    l.Reason,
				DateStart: l.DateStart,
				DateEnd:   l.DateEnd,
				Days:      s.engine.ComputeDuration(l.DateStart, l.DateEnd),
			})
		}
		responses = append(responses, leave.StaffOnLeaveResponse{
			Summary: staff.ToSummary(g.Staff),
			Leaves:  items,
		})
	}
	return responses, nil
}

// QuotaSummary reports the staff member's usage for year. A zero year means the current one.
func (s *LeaveServiceImpl) QuotaSummary(ctx context.Context, staffID string, year int) (leave.QuotaSummaryResponse, error) {
	if year == 0 {
		year = s.now().Year()
	}

	member, err := s.getStaff(ctx, staffID)
	if err != nil {
		return leave.QuotaSummaryResponse{}, err
	}

	records, err := s.LeaveRepository.ListByStaffBetween(ctx, member.ID, calendar.YearStart(year), calendar.YearEnd(year))
	if err != nil {
		return leave.QuotaSummaryResponse{}, fmt.Errorf("failed to get leave history: %w", err)
	}

	used := s.engine.AnnualUsage(records, year)
	remaining := s.engine.Limit() - used
	if remaining < 0 {
		remaining = 0
	}

	seen := make(map[string]struct{})
	months := make([]string, 0, len(records))
	for _, r := range records {
		key := r.DateStart.MonthKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		months = append(months, key)
	}
	sort.Strings(months)

	return leave.QuotaSummaryResponse{
		StaffID:     member.ID,
		Year:        year,
		Used:        used,
		Remaining:   remaining,
		Limit:       s.engine.Limit(),
		MonthsTaken: months,
	}, nil
}

func (s *LeaveServiceImpl) getStaff(ctx context.Context, id string) (staff.Staff, error) {
	member, err := s.staffDirectory.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff: %w", err)
	}
	return member, nil
}

func toResponse(l leave.Leave, member *staff.Staff) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:        l.ID,
		Reason:    l.Reason,
		DateStart: l.DateStart,
		DateEnd:   l.DateEnd,
		Days:      l.DateEnd.DaysSince(l.DateStart) + 1,
		StaffID:   l.StaffID,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
	if member != nil {
		summary := staff.ToSummary(*member)
		resp.Staff = &summary
	}
	return resp
}
