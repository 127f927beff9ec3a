package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/staff"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const staffColumns = `id, first_name, last_name, email, no_hp, address, gender, created_at, updated_at`

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

func scanStaff(row pgx.Row) (staff.Staff, error) {
	var s staff.Staff
	err := row.Scan(
		&s.ID,
		&s.FirstName,
		&s.LastName,
		&s.Email,
		&s.PhoneNumber,
		&s.Address,
		&s.Gender,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// Create implements staff.StaffRepository.
func (r *staffRepositoryImpl) Create(ctx context.Context, newStaff staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return staff.Staff{}, fmt.Errorf("generate staff id: %w", err)
	}

	query := `
		INSERT INTO staff (id, first_name, last_name, email, no_hp, address, gender, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + staffColumns

	created, err := scanStaff(q.QueryRow(ctx, query,
		id.String(),
		newStaff.FirstName,
		newStaff.LastName,
		newStaff.Email,
		newStaff.PhoneNumber,
		newStaff.Address,
		newStaff.Gender,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return staff.Staff{}, staff.ErrEmailExists
		}
		return staff.Staff{}, err
	}
	return created, nil
}

// GetByID implements staff.Directory.
func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`
	return scanStaff(q.QueryRow(ctx, query, id))
}

// List implements staff.StaffRepository.
func (r *staffRepositoryImpl) List(ctx context.Context) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]staff.Staff, 0)
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, s)
	}
	return members, rows.Err()
}

// Update implements staff.StaffRepository.
func (r *staffRepositoryImpl) Update(ctx context.Context, id string, update staff.UpdateStaff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})
	if update.FirstName != nil {
		updates["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		updates["last_name"] = *update.LastName
	}
	if update.Email != nil {
		updates["email"] = *update.Email
	}
	if update.PhoneNumber != nil {
		updates["no_hp"] = *update.PhoneNumber
	}
	if update.Address != nil {
		updates["address"] = *update.Address
	}
	if update.Gender != nil {
		updates["gender"] = *update.Gender
	}

	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args := buildUpdate("staff", updates, id, staffColumns)
	updated, err := scanStaff(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return staff.Staff{}, staff.ErrEmailExists
		}
		return staff.Staff{}, err
	}
	return updated, nil
}

// Delete implements staff.StaffRepository.
func (r *staffRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
