package session

import (
	"fmt"
	"time"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims the session layer consumes; only the expiry
// matters for session validity.
type Claims struct {
	jwt.RegisteredClaims
}

// ParseClaims decodes the claims segment of a bearer token without
// verifying the signature — verification is the server's job, the client
// only inspects the expiry. Tokens that do not have exactly three
// dot-separated segments, or whose payload cannot be decoded, yield
// common.ErrInvalidToken.
//
// The function is pure: it never touches the session store.
func ParseClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	return claims, nil
}

// Validate checks the claims' expiry against now, returning
// common.ErrTokenExpired for claims that expire at or before now. Claims
// without an exp are treated as expired: the backend always stamps one, so
// its absence means the token is not one of ours.
func (c *Claims) Validate(now time.Time) error {
	if c.ExpiresAt == nil || !c.ExpiresAt.Time.After(now) {
		return common.ErrTokenExpired
	}
	return nil
}
