package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/JpHds/client-admin-api/internal/core/domain"
	"github.com/JpHds/client-admin-api/internal/core/ports"
)

// AdminService implements management of admin accounts backed by the admin
// principal store. Creation lives on AuthService because it needs the hasher.
type AdminService struct {
	repo ports.PrincipalRepository
	log  zerolog.Logger
}

func NewAdminService(repo ports.PrincipalRepository, log zerolog.Logger) *AdminService {
	return &AdminService{repo: repo, log: log}
}

func (s *AdminService) ListAdmins(ctx context.Context) ([]*domain.Principal, error) {
	return s.repo.List(ctx)
}

func (s *AdminService) GetAdmin(ctx context.Context, id string) (*domain.Principal, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateAdmin changes the profile fields of an admin. Password changes go
// through re-registration, not this path.
func (s *AdminService) UpdateAdmin(ctx context.Context, id string, input ports.UpdateAdminInput) (*domain.Principal, error) {
	if input.Username == "" || input.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	updated, err := s.repo.Update(ctx, id, input.Username, input.Email)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("admin_id", id).Msg("admin updated")
	return updated, nil
}

func (s *AdminService) DeleteAdmin(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("admin_id", id).Msg("admin deleted")
	return nil
}
