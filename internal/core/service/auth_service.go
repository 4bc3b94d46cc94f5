package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/JpHds/client-admin-api/internal/api/metrics"
	"github.com/JpHds/client-admin-api/internal/core/auth"
	"github.com/JpHds/client-admin-api/internal/core/domain"
	"github.com/JpHds/client-admin-api/internal/core/ports"
)

// LoginThrottle abstracts the failed-attempt limiter (Redis).
type LoginThrottle interface {
	// Exceeded reports whether username has burned through its failure budget.
	Exceeded(ctx context.Context, username string) (bool, error)
	// RecordFailure counts one failed attempt against username.
	RecordFailure(ctx context.Context, username string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, username string) error
}

// AuthService implements login, admin registration, and the one-time
// super-admin bootstrap. Admin and super-admin accounts live in separate
// stores; Login consults the admin store first, then the super-admin store.
type AuthService struct {
	admins      ports.PrincipalRepository
	superAdmins ports.PrincipalRepository
	hasher      *auth.Hasher
	codec       *auth.Codec
	throttle    LoginThrottle
	tokenTTL    time.Duration
	log         zerolog.Logger
}

func NewAuthService(
	admins ports.PrincipalRepository,
	superAdmins ports.PrincipalRepository,
	hasher *auth.Hasher,
	codec *auth.Codec,
	throttle LoginThrottle,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 15 * time.Minute
	}
	return &AuthService{
		admins:      admins,
		superAdmins: superAdmins,
		hasher:      hasher,
		codec:       codec,
		throttle:    throttle,
		tokenTTL:    tokenTTL,
		log:         log,
	}
}

// Login authenticates a principal and issues a bearer token. The admin store
// is checked before the super-admin store (fixed order). Unknown username and
// wrong password both return ErrInvalidCredentials so callers cannot probe
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		exceeded, err := s.throttle.Exceeded(ctx, username)
		if err != nil {
			s.log.Warn().Err(err).Msg("login throttle unavailable, proceeding")
		} else if exceeded {
			metrics.LoginsThrottledTotal.Inc()
			return nil, domain.ErrTooManyAttempts
		}
	}

	principal := s.lookup(ctx, username)
	if principal == nil || !s.hasher.Verify(password, principal.PasswordHash) {
		if s.throttle != nil {
			if err := s.throttle.RecordFailure(ctx, username); err != nil {
				s.log.Warn().Err(err).Msg("failed to record login failure")
			}
		}
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(auth.Claims{Subject: principal.Username, Role: principal.Role}, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Msg("failed to reset login throttle")
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.WithLabelValues(string(principal.Role)).Inc()
	s.log.Info().Str("username", principal.Username).Str("role", string(principal.Role)).Msg("login succeeded")

	return &ports.LoginResult{Token: token, Principal: principal}, nil
}

// lookup finds a principal by username, admin store first. Store errors are
// treated as "not found" so the failure surface stays uniform.
func (s *AuthService) lookup(ctx context.Context, username string) *domain.Principal {
	if p, err := s.admins.FindByUsername(ctx, username); err == nil {
		return p
	}
	if p, err := s.superAdmins.FindByUsername(ctx, username); err == nil {
		return p
	}
	return nil
}

// RegisterAdmin creates a new admin account. Username and email collisions in
// the admin store surface as ErrDuplicateIdentity.
func (s *AuthService) RegisterAdmin(ctx context.Context, username, email, password string) (*domain.Principal, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.admins.Insert(ctx, &domain.Principal{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	metrics.PrincipalsCreatedTotal.WithLabelValues(string(domain.RoleAdmin)).Inc()
	s.log.Info().Str("username", created.Username).Msg("admin registered")
	return created, nil
}

// CurrentPrincipal resolves token claims back to the stored account, scoped
// to the store matching the role claim.
func (s *AuthService) CurrentPrincipal(ctx context.Context, username string, role domain.Role) (*domain.Principal, error) {
	repo := s.admins
	if role == domain.RoleSuperAdmin {
		repo = s.superAdmins
	}
	p, err := repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return p, nil
}

// EnsureSuperAdmin creates the bootstrap super-admin account when it does not
// already exist. Called once at process start; a present account is left
// untouched even if the configured password has changed.
func (s *AuthService) EnsureSuperAdmin(ctx context.Context, username, email, password string) error {
	if username == "" || password == "" {
		return domain.ErrInvalidCredentials
	}

	if _, err := s.superAdmins.FindByUsername(ctx, username); err == nil {
		s.log.Debug().Str("username", username).Msg("super admin already present")
		return nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = s.superAdmins.Insert(ctx, &domain.Principal{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleSuperAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return err
	}

	metrics.PrincipalsCreatedTotal.WithLabelValues(string(domain.RoleSuperAdmin)).Inc()
	s.log.Info().Str("username", username).Msg("super admin bootstrapped")
	return nil
}
