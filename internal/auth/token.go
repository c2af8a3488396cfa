package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ADITHIYAN008/backend/internal/domain"
)

// SessionTTL is the fixed lifetime of an issued token. It is not
// configurable per call or per environment.
const SessionTTL = 2 * time.Hour

// TokenManager handles issuing and validating JWT tokens.
type TokenManager struct {
	secret []byte
}

// NewTokenManager builds a new manager around the process-wide signing secret.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Claims describes the identity payload embedded in every token.
type Claims struct {
	Identifier  string      `json:"id"`
	DisplayName string      `json:"name"`
	Role        domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issue builds and signs a token carrying the claims, expiring SessionTTL
// from now.
func (tm *TokenManager) Issue(identifier, displayName string, role domain.Role) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(SessionTTL)
	claims := &Claims{
		Identifier:  identifier,
		DisplayName: displayName,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identifier,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Parse validates a token string and returns its claims. Forged signatures,
// malformed encodings and elapsed expiries all come back as a plain error;
// callers must not leak which check failed.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
