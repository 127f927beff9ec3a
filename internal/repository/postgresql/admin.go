package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/admin"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const adminColumns = `id, first_name, last_name, email, date_of_birth, gender, password_hash, created_at, updated_at`

type adminRepositoryImpl struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) admin.AdminRepository {
	return &adminRepositoryImpl{db: db}
}

func scanAdmin(row pgx.Row) (admin.Admin, error) {
	var a admin.Admin
	err := row.Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.Email,
		&a.DateOfBirth,
		&a.Gender,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

// Create implements admin.AdminRepository.
func (r *adminRepositoryImpl) Create(ctx context.Context, newAdmin admin.Admin) (admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return admin.Admin{}, fmt.Errorf("generate admin id: %w", err)
	}

	query := `
		INSERT INTO admins (id, first_name, last_name, email, date_of_birth, gender, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + adminColumns

	created, err := scanAdmin(q.QueryRow(ctx, query,
		id.String(),
		newAdmin.FirstName,
		newAdmin.LastName,
		newAdmin.Email,
		newAdmin.DateOfBirth,
		newAdmin.Gender,
		newAdmin.PasswordHash,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return admin.Admin{}, admin.ErrEmailExists
		}
		return admin.Admin{}, err
	}
	return created, nil
}

// GetByID implements admin.AdminRepository.
func (r *adminRepositoryImpl) GetByID(ctx context.Context, id string) (admin.Admin, error) {
	q := GetQuerier(ctx, r.db)
	return scanAdmin(q.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id))
}

// GetByEmail implements admin.AdminRepository.
func (r *adminRepositoryImpl) GetByEmail(ctx context.Context, email string) (admin.Admin, error) {
	q := GetQuerier(ctx, r.db)
	return scanAdmin(q.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE email = $1`, email))
}

// List implements admin.AdminRepository.
func (r *adminRepositoryImpl) List(ctx context.Context) ([]admin.Admin, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+adminColumns+` FROM admins ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admins := make([]admin.Admin, 0)
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

// Update implements admin.AdminRepository.
func (r *adminRepositoryImpl) Update(ctx context.Context, id string, update admin.UpdateAdmin) (admin.Admin, error) {
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
	if update.DateOfBirth != nil {
		updates["date_of_birth"] = *update.DateOfBirth
	}
	if update.Gender != nil {
		updates["gender"] = *update.Gender
	}
	if update.PasswordHash != nil {
		updates["password_hash"] = *update.PasswordHash
	}

	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	sql, args := buildUpdate("admins", updates, id, adminColumns)
	updated, err := scanAdmin(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return admin.Admin{}, admin.ErrEmailExists
		}
		return admin.Admin{}, err
	}
	return updated, nil
}

// Delete implements admin.AdminRepository.
func (r *adminRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	commandTag, err := q.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
