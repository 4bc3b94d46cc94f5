package ports

import (
	"context"

	"github.com/JpHds/client-admin-api/internal/core/domain"
)

// UpdateAdminInput carries the mutable admin profile fields.
type UpdateAdminInput struct {
	Username string
	Email    string
}

// AdminService defines management operations over admin accounts. All of
// them are super-admin only; the role gate lives in the transport layer.
type AdminService interface {
	ListAdmins(ctx context.Context) ([]*domain.Principal, error)
	GetAdmin(ctx context.Context, id string) (*domain.Principal, error)
	UpdateAdmin(ctx context.Context, id string, input UpdateAdminInput) (*domain.Principal, error)
	DeleteAdmin(ctx context.Context, id string) error
}
