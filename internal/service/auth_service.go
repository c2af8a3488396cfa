package service

import (
	"crypto/subtle"
	"time"

	"github.com/ADITHIYAN008/backend/internal/auth"
	"github.com/ADITHIYAN008/backend/internal/config"
	"github.com/ADITHIYAN008/backend/internal/repository"
	apperrors "github.com/ADITHIYAN008/backend/pkg/util"
)

// AuthService coordinates the login flow: credential verification followed
// by token issuance.
type AuthService struct {
	credentials repository.CredentialStore
	tokenMgr    *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, credentials repository.CredentialStore) *AuthService {
	return &AuthService{
		credentials: credentials,
		tokenMgr:    auth.NewTokenManager(cfg.Auth.JWTSecret),
	}
}

// Login verifies the identifier/secret pair and issues a session token.
// Unknown identifiers and wrong secrets fail identically.
//
// Secrets are compared as plaintext against the in-memory store, matching
// the original deployment. Comparison is constant-time; storing salted
// hashes instead remains an acknowledged gap.
func (s *AuthService) Login(identifier, secret string) (string, time.Time, error) {
	record, ok := s.credentials.Lookup(identifier)
	if !ok {
		return "", time.Time{}, apperrors.NewInvalidCredentials()
	}
	if subtle.ConstantTimeCompare([]byte(record.Secret), []byte(secret)) != 1 {
		return "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, expiresAt, err := s.tokenMgr.Issue(record.Identifier, record.DisplayName, record.Role)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalError(err)
	}
	return token, expiresAt, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
