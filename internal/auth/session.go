package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the signed session issued on login. It replaces the
// client-trusted sessionStorage record of the original app: the claims are
// the same display fields, but the token is signed so the client cannot
// forge another user's identity. No route requires the token.
type SessionClaims struct {
	ProfileID string `json:"profileId"`
	Kind      string `json:"kind"`
	jwt.RegisteredClaims
}

var ErrInvalidSessionToken = errors.New("invalid or expired session token")

// IssueSessionToken signs a session token for the given profile.
func IssueSessionToken(secret, profileID, kind string, ttl time.Duration) (string, error) {
	claims := SessionClaims{
		ProfileID: profileID,
		Kind:      kind,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken verifies a session token and returns its claims.
func ParseSessionToken(secret, tokenStr string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSessionToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSessionToken
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, ErrInvalidSessionToken
	}
	return claims, nil
}
