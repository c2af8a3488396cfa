package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ADITHIYAN008/backend/internal/config"
	"github.com/ADITHIYAN008/backend/internal/repository"
	apperrors "github.com/ADITHIYAN008/backend/pkg/util"
)

func newAuthService() *AuthService {
	cfg := config.Config{Auth: config.AuthConfig{JWTSecret: "test-secret"}}
	return NewAuthService(cfg, repository.NewCredentialStore())
}

func TestLoginSeededCredentials(t *testing.T) {
	svc := newAuthService()

	cases := []struct {
		identifier string
		secret     string
		name       string
		role       string
	}{
		{"admin", "12345", "Adithiyan R", "Admin"},
		{"user", "password", "Karthikeyan K", "Employee"},
		{"facilitator", "password", "Kishore K", "Facilitator"},
	}

	for _, tc := range cases {
		t.Run(tc.identifier, func(t *testing.T) {
			token, _, err := svc.Login(tc.identifier, tc.secret)
			require.NoError(t, err)

			claims, err := svc.TokenManager().Parse(token)
			require.NoError(t, err)
			require.Equal(t, tc.identifier, claims.Identifier)
			require.Equal(t, tc.name, claims.DisplayName)
			require.Equal(t, tc.role, string(claims.Role))
		})
	}
}

func TestLoginFailures(t *testing.T) {
	svc := newAuthService()

	t.Run("unknown identifier", func(t *testing.T) {
		_, _, err := svc.Login("nobody", "12345")
		require.Error(t, err)
		require.Equal(t, "INVALID_CREDENTIALS", apperrors.ToDomainError(err).Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, _, err := svc.Login("admin", "wrong")
		require.Error(t, err)
		require.Equal(t, "INVALID_CREDENTIALS", apperrors.ToDomainError(err).Code)
	})

	t.Run("both failures look identical", func(t *testing.T) {
		_, _, errUnknown := svc.Login("nobody", "x")
		_, _, errWrong := svc.Login("admin", "x")
		require.Equal(t, errUnknown.Error(), errWrong.Error())
	})
}
