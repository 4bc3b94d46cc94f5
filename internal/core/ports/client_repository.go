package ports

import (
	"context"

	"github.com/JpHds/client-admin-api/internal/core/domain"
)

// ClientRepository defines persistence operations for client records.
type ClientRepository interface {
	Insert(ctx context.Context, c *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}
