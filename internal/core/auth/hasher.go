// Package auth holds the authentication core: password hashing, the bearer
// token codec, and the role-based access guard. Everything here is immutable
// after construction and safe for concurrent use.
package auth

import "golang.org/x/crypto/bcrypt"

// Hasher produces and verifies salted bcrypt digests. bcrypt embeds its own
// random salt and cost parameters in the digest, so two hashes of the same
// password never match byte-for-byte.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Costs outside the
// valid bcrypt range fall back to the library default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash derives a salted digest from plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A malformed digest fails
// closed: the answer is false, never an error the caller has to branch on.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
