package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/JpHds/client-admin-api/internal/core/domain"
)

// minSecretLen is the minimum signing secret size in bytes. HS256 keys
// shorter than the hash output weaken the MAC.
const minSecretLen = 32

var ErrSecretTooShort = errors.New("signing secret must be at least 32 bytes")

// Claims is the data embedded in a bearer token.
type Claims struct {
	Subject string
	Role    domain.Role
}

// Codec signs and verifies bearer tokens with a process-wide HS256 secret.
// Verification is stateless: any process holding the same secret can decode
// tokens issued elsewhere. There is no revocation; expiry is the only
// termination mechanism, and clock skew between issuer and verifier is a
// known, accepted limitation.
type Codec struct {
	secret []byte
}

// NewCodec builds a Codec. The secret is validated once here and never
// rotated within a running process.
func NewCodec(secret string) (*Codec, error) {
	if len(secret) < minSecretLen {
		return nil, ErrSecretTooShort
	}
	return &Codec{secret: []byte(secret)}, nil
}

// Issue serializes claims plus an absolute expiry (now + ttl) into a signed
// compact token string.
func (c *Codec) Issue(claims Claims, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  claims.Subject,
		"role": string(claims.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	})
	return t.SignedString(c.secret)
}

// Decode verifies the signature and expiry of token and returns its claims.
// Every failure mode — bad signature, malformed payload, wrong algorithm,
// elapsed expiry, unknown role — collapses to ErrInvalidToken so callers
// cannot leak which check tripped.
func (c *Codec) Decode(token string) (Claims, error) {
	raw := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return Claims{}, domain.ErrInvalidToken
	}

	sub, _ := raw["sub"].(string)
	roleStr, _ := raw["role"].(string)
	role, err := domain.ParseRole(roleStr)
	if err != nil || sub == "" {
		return Claims{}, domain.ErrInvalidToken
	}

	return Claims{Subject: sub, Role: role}, nil
}
