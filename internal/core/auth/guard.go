package auth

import "github.com/JpHds/client-admin-api/internal/core/domain"

// RoleSet is the set of roles an operation accepts.
type RoleSet map[domain.Role]struct{}

// Roles builds a RoleSet from its arguments. An empty set means any
// authenticated principal is acceptable.
func Roles(roles ...domain.Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// Check is the access guard: a pure function of decoded claims and the
// operation's required role set. It returns nil when the request may proceed
// and domain.ErrForbidden when the principal is known but disallowed. It
// keeps no state between calls.
func Check(claims Claims, required RoleSet) error {
	if len(required) == 0 {
		return nil
	}
	if _, ok := required[claims.Role]; !ok {
		return domain.ErrForbidden
	}
	return nil
}
