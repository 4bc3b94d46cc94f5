package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/JpHds/client-admin-api/internal/core/domain"
	"github.com/JpHds/client-admin-api/internal/core/ports"
)

type stubClientRepo struct {
	byID   map[string]*domain.Client
	nextID int
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{byID: make(map[string]*domain.Client)}
}

func cloneClient(c *domain.Client) *domain.Client {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubClientRepo) Insert(_ context.Context, c *domain.Client) (*domain.Client, error) {
	for _, existing := range r.byID {
		if existing.Username == c.Username || existing.Email == c.Email {
			return nil, domain.ErrDuplicateIdentity
		}
	}
	r.nextID++
	stored := cloneClient(c)
	stored.ID = strconv.Itoa(r.nextID)
	r.byID[stored.ID] = stored
	return cloneClient(stored), nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	if c, ok := r.byID[id]; ok {
		return cloneClient(c), nil
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) List(_ context.Context) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, cloneClient(c))
	}
	return out, nil
}

func (r *stubClientRepo) Update(_ context.Context, c *domain.Client) (*domain.Client, error) {
	if _, ok := r.byID[c.ID]; !ok {
		return nil, domain.ErrClientNotFound
	}
	r.byID[c.ID] = cloneClient(c)
	return cloneClient(c), nil
}

func (r *stubClientRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestClientService_Create_DefaultStatus(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), zerolog.Nop())

	created, err := svc.CreateClient(context.Background(), ports.ClientInput{
		Username: "acme",
		Email:    "ops@acme.example",
		Phone:    "5511999990000",
	})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	if created.Status != domain.ClientActive {
		t.Fatalf("status: got %q, want active", created.Status)
	}
	if created.ID == "" {
		t.Fatalf("expected an assigned id")
	}
}

func TestClientService_Create_InvalidStatus(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), zerolog.Nop())

	_, err := svc.CreateClient(context.Background(), ports.ClientInput{
		Username: "acme",
		Email:    "ops@acme.example",
		Phone:    "5511999990000",
		Status:   "frozen",
	})
	if err != domain.ErrInvalidClientStatus {
		t.Fatalf("expected ErrInvalidClientStatus, got %v", err)
	}
}

func TestClientService_Update(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	created, err := svc.CreateClient(context.Background(), ports.ClientInput{
		Username: "acme",
		Email:    "ops@acme.example",
		Phone:    "5511999990000",
		Status:   "active",
	})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}

	updated, err := svc.UpdateClient(context.Background(), created.ID, ports.ClientInput{
		Username: "acme",
		Email:    "ops@acme.example",
		Phone:    "5511888880000",
		Status:   "suspended",
	})
	if err != nil {
		t.Fatalf("UpdateClient: %v", err)
	}
	if updated.Status != domain.ClientSuspended || updated.Phone != "5511888880000" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("UpdatedAt moved backwards")
	}
}

func TestClientService_Update_NotFound(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), zerolog.Nop())

	_, err := svc.UpdateClient(context.Background(), "missing", ports.ClientInput{
		Username: "x", Email: "x@example.com", Phone: "1", Status: "active",
	})
	if err != domain.ErrClientNotFound {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientService_Delete(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())

	created, err := svc.CreateClient(context.Background(), ports.ClientInput{
		Username: "acme", Email: "ops@acme.example", Phone: "1", Status: "active",
	})
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}

	if err := svc.DeleteClient(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteClient: %v", err)
	}
	if err := svc.DeleteClient(context.Background(), created.ID); err != domain.ErrClientNotFound {
		t.Fatalf("second delete: expected ErrClientNotFound, got %v", err)
	}
}

var _ ports.ClientRepository = (*stubClientRepo)(nil)
