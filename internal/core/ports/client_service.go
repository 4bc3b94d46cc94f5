package ports

import (
	"context"

	"github.com/JpHds/client-admin-api/internal/core/domain"
)

// ClientInput carries the writable client fields for create and update.
type ClientInput struct {
	Username string
	Email    string
	Phone    string
	Status   string
}

// ClientService defines the client roster use-cases.
type ClientService interface {
	CreateClient(ctx context.Context, input ClientInput) (*domain.Client, error)
	ListClients(ctx context.Context) ([]*domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	UpdateClient(ctx context.Context, id string, input ClientInput) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error
}
