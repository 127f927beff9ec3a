package staff

import "context"

// Directory is the read-only lookup other domains depend on.
type Directory interface {
	GetByID(ctx context.Context, id string) (Staff, error)
}

type StaffRepository interface {
	Directory
	Create(ctx context.Context, newStaff Staff) (Staff, error)
	List(ctx context.Context) ([]Staff, error)
	Update(ctx context.Context, id string, update UpdateStaff) (Staff, error)
	Delete(ctx context.Context, id string) error
}
