package ports

import (
	"context"

	"github.com/JpHds/client-admin-api/internal/core/domain"
)

// PrincipalRepository defines persistence for one principal store. The
// service layer holds two instances: one backed by the admins collection and
// one by the super_admins collection, mirroring the two separate tables the
// accounts live in.
type PrincipalRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Principal, error)
	FindByEmail(ctx context.Context, email string) (*domain.Principal, error)
	FindByID(ctx context.Context, id string) (*domain.Principal, error)
	Insert(ctx context.Context, p *domain.Principal) (*domain.Principal, error)
	List(ctx context.Context) ([]*domain.Principal, error)
	Update(ctx context.Context, id string, username, email string) (*domain.Principal, error)
	Delete(ctx context.Context, id string) error
}
