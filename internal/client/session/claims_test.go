package session

import (
	"testing"
	"time"

	"github.com/Sdizo-sdizo/i-Stokvel/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestParseClaims_WrongSegmentCount(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"one segment", "abc"},
		{"two segments", "abc.def"},
		{"four segments", "a.b.c.d"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseClaims(tc.token)
			require.ErrorIs(t, err, common.ErrInvalidToken)
		})
	}
}

func TestParseClaims_UndecodablePayload(t *testing.T) {
	_, err := ParseClaims("eyJhbGciOiJIUzI1NiJ9.%%%not-base64%%%.sig")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParseClaims_ValidToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})

	claims, err := ParseClaims(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	require.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
}

func TestClaimsValidate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		exp     *jwt.NumericDate
		expired bool
	}{
		{"future expiry", jwt.NewNumericDate(now.Add(time.Hour)), false},
		{"past expiry", jwt.NewNumericDate(now.Add(-time.Hour)), true},
		{"exactly now", jwt.NewNumericDate(now), true},
		{"missing expiry", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := &Claims{jwt.RegisteredClaims{ExpiresAt: tc.exp}}
			err := c.Validate(now)
			if tc.expired {
				require.ErrorIs(t, err, common.ErrTokenExpired)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
