package auth

import (
	"testing"

	"github.com/JpHds/client-admin-api/internal/core/domain"
)

func TestCheck_RoleMembership(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		required RoleSet
		wantErr  error
	}{
		{
			name:     "admin rejected for super-admin-only",
			role:     domain.RoleAdmin,
			required: Roles(domain.RoleSuperAdmin),
			wantErr:  domain.ErrForbidden,
		},
		{
			name:     "admin accepted when both roles allowed",
			role:     domain.RoleAdmin,
			required: Roles(domain.RoleAdmin, domain.RoleSuperAdmin),
			wantErr:  nil,
		},
		{
			name:     "super-admin accepted for super-admin-only",
			role:     domain.RoleSuperAdmin,
			required: Roles(domain.RoleSuperAdmin),
			wantErr:  nil,
		},
		{
			name:     "empty set accepts any authenticated principal",
			role:     domain.RoleAdmin,
			required: Roles(),
			wantErr:  nil,
		},
		{
			name:     "empty role rejected when a role is required",
			role:     "",
			required: Roles(domain.RoleAdmin),
			wantErr:  domain.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(Claims{Subject: "x", Role: tt.role}, tt.required)
			if err != tt.wantErr {
				t.Fatalf("Check: got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheck_IsStateless(t *testing.T) {
	required := Roles(domain.RoleSuperAdmin)

	// A rejected call must not influence a later accepted one, and vice versa.
	if err := Check(Claims{Role: domain.RoleAdmin}, required); err != domain.ErrForbidden {
		t.Fatalf("first call: got %v, want ErrForbidden", err)
	}
	if err := Check(Claims{Role: domain.RoleSuperAdmin}, required); err != nil {
		t.Fatalf("second call: got %v, want nil", err)
	}
	if err := Check(Claims{Role: domain.RoleAdmin}, required); err != domain.ErrForbidden {
		t.Fatalf("third call: got %v, want ErrForbidden", err)
	}
}
