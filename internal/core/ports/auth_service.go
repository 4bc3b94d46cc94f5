package ports

import (
	"context"

	"github.com/JpHds/client-admin-api/internal/core/domain"
)

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token     string
	Principal *domain.Principal
}

// AuthService defines the authentication use-cases.
type AuthService interface {
	// Login verifies credentials and issues a bearer token.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// RegisterAdmin creates a new admin account (super-admin only endpoint;
	// the role gate lives in the transport layer).
	RegisterAdmin(ctx context.Context, username, email, password string) (*domain.Principal, error)
	// CurrentPrincipal resolves decoded token claims back to the stored account.
	CurrentPrincipal(ctx context.Context, username string, role domain.Role) (*domain.Principal, error)
	// EnsureSuperAdmin creates the bootstrap super-admin if it does not exist.
	EnsureSuperAdmin(ctx context.Context, username, email, password string) error
}
