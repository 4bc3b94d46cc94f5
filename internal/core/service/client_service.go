package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/JpHds/client-admin-api/internal/api/metrics"
	"github.com/JpHds/client-admin-api/internal/core/domain"
	"github.com/JpHds/client-admin-api/internal/core/ports"
)

// ClientService implements the client roster use-cases.
type ClientService struct {
	repo ports.ClientRepository
	log  zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, log zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, log: log}
}

func (s *ClientService) CreateClient(ctx context.Context, input ports.ClientInput) (*domain.Client, error) {
	status := domain.ClientStatus(input.Status)
	if status == "" {
		status = domain.ClientActive
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidClientStatus
	}

	now := time.Now().UTC()
	created, err := s.repo.Insert(ctx, &domain.Client{
		Username:  input.Username,
		Email:     input.Email,
		Phone:     input.Phone,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	metrics.ClientsCreatedTotal.WithLabelValues(string(created.Status)).Inc()
	s.log.Info().Str("client_id", created.ID).Str("username", created.Username).Msg("client created")
	return created, nil
}

func (s *ClientService) ListClients(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.List(ctx)
}

func (s *ClientService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClientService) UpdateClient(ctx context.Context, id string, input ports.ClientInput) (*domain.Client, error) {
	status := domain.ClientStatus(input.Status)
	if !status.Valid() {
		return nil, domain.ErrInvalidClientStatus
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Username = input.Username
	existing.Email = input.Email
	existing.Phone = input.Phone
	existing.Status = status
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("client_id", id).Msg("client updated")
	return updated, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.ClientsDeletedTotal.Inc()
	s.log.Info().Str("client_id", id).Msg("client deleted")
	return nil
}
