package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/JpHds/client-admin-api/internal/core/domain"
	"github.com/JpHds/client-admin-api/internal/core/ports"
)

type stubAuthService struct {
	loginResult *ports.LoginResult
	loginErr    error
	registered  *domain.Principal
	registerErr error
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (*ports.LoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginResult, nil
}

func (s *stubAuthService) RegisterAdmin(_ context.Context, username, email, password string) (*domain.Principal, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return s.registered, nil
}

func (s *stubAuthService) CurrentPrincipal(_ context.Context, username string, role domain.Role) (*domain.Principal, error) {
	return &domain.Principal{Username: username, Role: role}, nil
}

func (s *stubAuthService) EnsureSuperAdmin(context.Context, string, string, string) error {
	return nil
}

func newEchoContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{
		loginResult: &ports.LoginResult{
			Token:     "signed-token",
			Principal: &domain.Principal{Username: "alice", Role: domain.RoleAdmin},
		},
	}
	h := NewAuthHandler(svc)

	c, rec := newEchoContext(t, http.MethodPost, "/v1/auth/login", `{"username":"alice","password":"pw"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login handler: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken != "signed-token" || resp.TokenType != "bearer" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_MissingFieldsLookLikeBadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newEchoContext(t, http.MethodPost, "/v1/auth/login", `{"username":"alice"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_ServiceErrorPropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	c, _ := newEchoContext(t, http.MethodPost, "/v1/auth/login", `{"username":"alice","password":"bad"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_RegisterAdmin_Success(t *testing.T) {
	svc := &stubAuthService{
		registered: &domain.Principal{ID: "1", Username: "bob", Email: "bob@example.com", Role: domain.RoleAdmin},
	}
	h := NewAuthHandler(svc)

	c, rec := newEchoContext(t, http.MethodPost, "/v1/admins", `{"username":"bob","email":"bob@example.com","password":"longenough"}`)
	if err := h.RegisterAdmin(c); err != nil {
		t.Fatalf("RegisterAdmin handler: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp principalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Username != "bob" || resp.Role != "admin" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_RegisterAdmin_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	// Password below minimum length.
	c, _ := newEchoContext(t, http.MethodPost, "/v1/admins", `{"username":"bob","email":"bob@example.com","password":"short"}`)
	err := h.RegisterAdmin(c)

	var he *echo.HTTPError
	if err == nil || !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_RegisterAdmin_DuplicatePropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrDuplicateIdentity})

	c, _ := newEchoContext(t, http.MethodPost, "/v1/admins", `{"username":"bob","email":"bob@example.com","password":"longenough"}`)
	if err := h.RegisterAdmin(c); err != domain.ErrDuplicateIdentity {
		t.Fatalf("expected ErrDuplicateIdentity, got %v", err)
	}
}

var _ ports.AuthService = (*stubAuthService)(nil)
