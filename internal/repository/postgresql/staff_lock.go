package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/staff-leave-backend/internal/domain/leave"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/database"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/keylock"
	"github.com/jackc/pgx/v5"
)

type staffLockerImpl struct {
	db    *database.DB
	local *keylock.KeyLock
}

func NewStaffLocker(db *database.DB) leave.StaffLocker {
	return &staffLockerImpl{db: db, local: keylock.New()}
}

// WithStaffLock takes the in-process lock for staffID, then runs fn inside a
// transaction holding a transaction-scoped advisory lock on the same key.
// An error from fn rolls the transaction back.
func (l *staffLockerImpl) WithStaffLock(ctx context.Context, staffID string, fn func(ctx context.Context) error) error {
	unlock := l.local.Lock(staffID)
	defer unlock()

	return WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, staffID); err != nil {
			return fmt.Errorf("acquire staff lock: %w", err)
		}
		return fn(ContextWithTx(ctx, tx))
	})
}
