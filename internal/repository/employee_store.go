package repository

import (
	"sync"

	"github.com/ADITHIYAN008/backend/internal/domain"
)

// EmployeeStore is an in-memory ordered collection of employee records,
// keyed by employee id.
type EmployeeStore interface {
	List() []domain.EmployeeUser
	Get(id string) (*domain.EmployeeUser, bool)
	InsertIfAbsent(user domain.EmployeeUser) error
	UpdateIfPresent(id string, merge func(*domain.EmployeeUser)) (*domain.EmployeeUser, error)
}

type employeeStore struct {
	mu    sync.RWMutex
	users []domain.EmployeeUser
}

// NewEmployeeStore seeds the store with the stock fixture employees.
func NewEmployeeStore() EmployeeStore {
	return NewEmployeeStoreWith(
		domain.EmployeeUser{
			ID:     "EMP001",
			Name:   "Karthikeyan K",
			Email:  "karthikeyan@tcs.com",
			Role:   "Developer",
			Team:   "Development",
			Status: "Active",
		},
		domain.EmployeeUser{
			ID:     "EMP002",
			Name:   "Adithiyan R",
			Email:  "adithiyan@tcs.com",
			Role:   "Manager",
			Team:   "Architecture",
			Status: "Active",
		},
	)
}

// NewEmployeeStoreWith builds a store over an arbitrary initial set.
func NewEmployeeStoreWith(users ...domain.EmployeeUser) EmployeeStore {
	return &employeeStore{users: users}
}

// List returns a copy of the collection in insertion order.
func (s *employeeStore) List() []domain.EmployeeUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.EmployeeUser, len(s.users))
	copy(out, s.users)
	return out
}

func (s *employeeStore) Get(id string) (*domain.EmployeeUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, true
		}
	}
	return nil, false
}

// InsertIfAbsent appends the user unless its id is taken; check and append
// are atomic under the lock.
func (s *employeeStore) InsertIfAbsent(user domain.EmployeeUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == user.ID {
			return ErrDuplicate
		}
	}
	s.users = append(s.users, user)
	return nil
}

// UpdateIfPresent applies merge to the user with the given id and returns
// the updated copy.
func (s *employeeStore) UpdateIfPresent(id string, merge func(*domain.EmployeeUser)) (*domain.EmployeeUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			merge(&s.users[i])
			updated := s.users[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}
