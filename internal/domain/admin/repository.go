package admin

import "context"

type AdminRepository interface {
	Create(ctx context.Context, newAdmin Admin) (Admin, error)
	GetByID(ctx context.Context, id string) (Admin, error)
	GetByEmail(ctx context.Context, email string) (Admin, error)
	List(ctx context.Context) ([]Admin, error)
	Update(ctx context.Context, id string, update UpdateAdmin) (Admin, error)
	Delete(ctx context.Context, id string) error
}
