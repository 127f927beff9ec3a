package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/leave"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/calendar"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const leaveColumns = `id, staff_id, reason, date_start, date_end, created_at, updated_at`

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID,
		&l.StaffID,
		&l.Reason,
		&l.DateStart,
		&l.DateEnd,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

func scanLeaveWithStaff(row pgx.Row) (leave.LeaveWithStaff, error) {
	var l leave.LeaveWithStaff
	err := row.Scan(
		&l.ID,
		&l.StaffID,
		&l.Reason,
		&l.DateStart,
		&l.DateEnd,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.Staff.ID,
		&l.Staff.FirstName,
		&l.Staff.LastName,
		&l.Staff.Email,
		&l.Staff.PhoneNumber,
		&l.Staff.Address,
		&l.Staff.Gender,
		&l.Staff.CreatedAt,
		&l.Staff.UpdatedAt,
	)
	return l, err
}

const leaveWithStaffQuery = `
	SELECT l.id, l.staff_id, l.reason, l.date_start, l.date_end, l.created_at, l.updated_at,
		   s.id, s.first_name, s.last_name, s.email, s.no_hp, s.address, s.gender, s.created_at, s.updated_at
	FROM leaves l
	INNER JOIN staff s ON s.id = l.staff_id
`

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.Leave{}, fmt.Errorf("generate leave id: %w", err)
	}

	query := `
		INSERT INTO leaves (id, staff_id, reason, date_start, date_end, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + leaveColumns

	return scanLeave(q.QueryRow(ctx, query,
		id.String(),
		newLeave.StaffID,
		newLeave.Reason,
		newLeave.DateStart,
		newLeave.DateEnd,
	))
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)
	return scanLeave(q.QueryRow(ctx, `SELECT `+leaveColumns+` FROM leaves WHERE id = $1`, id))
}

// GetWithStaff implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetWithStaff(ctx context.Context, id string) (leave.LeaveWithStaff, error) {
	q := GetQuerier(ctx, r.db)
	return scanLeaveWithStaff(q.QueryRow(ctx, leaveWithStaffQuery+` WHERE l.id = $1`, id))
}

// ListWithStaff implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListWithStaff(ctx context.Context) ([]leave.LeaveWithStaff, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, leaveWithStaffQuery+` ORDER BY l.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leaves := make([]leave.LeaveWithStaff, 0)
	for rows.Next() {
		l, err := scanLeaveWithStaff(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// ListStaffOnLeave implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListStaffOnLeave(ctx context.Context) ([]leave.StaffWithLeaves, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, leaveWithStaffQuery+` ORDER BY s.created_at, s.id, l.date_start`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]leave.StaffWithLeaves, 0)
	for rows.Next() {
		l, err := scanLeaveWithStaff(rows)
		if err != nil {
			return nil, err
		}
		if n := len(groups); n == 0 || groups[n-1].Staff.ID != l.Staff.ID {
			groups = append(groups, leave.StaffWithLeaves{Staff: l.Staff})
		}
		last := &groups[len(groups)-1]
		last.Leaves = append(last.Leaves, l.Leave)
	}
	return groups, rows.Err()
}

// ListByStaffBetween implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByStaffBetween(ctx context.Context, staffID string, from, to calendar.Date) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves
		WHERE staff_id = $1 AND date_start BETWEEN $2 AND $3
		ORDER BY date_start
	`
	rows, err := q.Query(ctx, query, staffID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// Update implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Update(ctx context.Context, id string, update leave.UpdateLeave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})
	if update.StaffID != nil {
		updates["staff_id"] = *update.StaffID
	}
	if update.Reason != nil {
		updates["reason"] = *update.Reason
	}
	if update.DateStart != nil {
		updates["date_start"] = *update.DateStart
	}
	if update.DateEnd != nil {
		updates["date_end"] = *update.DateEnd
	}

	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args := buildUpdate("leaves", updates, id, leaveColumns)
	return scanLeave(q.QueryRow(ctx, sql, args...))
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `DELETE FROM leaves WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
