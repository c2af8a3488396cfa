package repository

import (
	"time"

	"github.com/ADITHIYAN008/backend/internal/domain"
)

// CredentialStore resolves login identifiers to credential records.
// Read-only after construction.
type CredentialStore interface {
	Lookup(identifier string) (*domain.Credential, bool)
}

type credentialStore struct {
	records map[string]domain.Credential
}

// NewCredentialStore returns the fixed default credential set.
func NewCredentialStore() CredentialStore {
	now := time.Now().UTC()
	return NewCredentialStoreWith(
		domain.Credential{
			Identifier:  "admin",
			Secret:      "12345",
			DisplayName: "Adithiyan R",
			Role:        domain.RoleAdmin,
			CreatedAt:   now,
		},
		domain.Credential{
			Identifier:  "user",
			Secret:      "password",
			DisplayName: "Karthikeyan K",
			Role:        domain.RoleEmployee,
			CreatedAt:   now,
		},
		domain.Credential{
			Identifier:  "facilitator",
			Secret:      "password",
			DisplayName: "Kishore K",
			Role:        domain.RoleFacilitator,
			CreatedAt:   now,
		},
	)
}

// NewCredentialStoreWith builds a store over an arbitrary credential set.
func NewCredentialStoreWith(records ...domain.Credential) CredentialStore {
	byID := make(map[string]domain.Credential, len(records))
	for _, record := range records {
		byID[record.Identifier] = record
	}
	return &credentialStore{records: byID}
}

func (s *credentialStore) Lookup(identifier string) (*domain.Credential, bool) {
	record, ok := s.records[identifier]
	if !ok {
		return nil, false
	}
	return &record, true
}
