package service

import (
	"errors"

	"github.com/ADITHIYAN008/backend/internal/api/dto"
	"github.com/ADITHIYAN008/backend/internal/domain"
	"github.com/ADITHIYAN008/backend/internal/repository"
	apperrors "github.com/ADITHIYAN008/backend/pkg/util"
)

// EmployeeService owns validation and defaulting for the employee collection.
type EmployeeService struct {
	employees repository.EmployeeStore
}

// NewEmployeeService builds the service.
func NewEmployeeService(employees repository.EmployeeStore) *EmployeeService {
	return &EmployeeService{employees: employees}
}

// List returns all employee users in insertion order.
func (s *EmployeeService) List() []domain.EmployeeUser {
	return s.employees.List()
}

// Create validates and inserts a new employee user.
func (s *EmployeeService) Create(req dto.EmployeeCreateRequest) (*domain.EmployeeUser, error) {
	if req.ID == "" || req.Name == "" || req.Email == "" {
		return nil, apperrors.NewValidationError("id, name, email required", nil)
	}

	user := domain.EmployeeUser{
		ID:     req.ID,
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Team:   req.Team,
		Status: req.Status,
	}
	if user.Team == "" {
		user.Team = domain.EmployeeDefaultTeam
	}

	if err := s.employees.InsertIfAbsent(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("user already exists", map[string]any{"id": user.ID})
		}
		return nil, apperrors.NewInternalError(err)
	}
	return &user, nil
}

// Update merges the supplied fields into an existing employee user.
func (s *EmployeeService) Update(id string, req dto.EmployeeUpdateRequest) (*domain.EmployeeUser, error) {
	updated, err := s.employees.UpdateIfPresent(id, func(user *domain.EmployeeUser) {
		if req.Name != nil {
			user.Name = *req.Name
		}
		if req.Email != nil {
			user.Email = *req.Email
		}
		if req.Role != nil {
			user.Role = *req.Role
		}
		if req.Team != nil {
			user.Team = *req.Team
		}
		if req.Status != nil {
			user.Status = *req.Status
		}
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, apperrors.NewInternalError(err)
	}
	return updated, nil
}

// BulkUpload inserts every entry whose id is not already taken, filling in
// defaults for missing fields. Entries with taken ids are skipped silently;
// the returned count is the number of entries received, as the original
// client expects.
func (s *EmployeeService) BulkUpload(entries []dto.EmployeeCreateRequest) int {
	for _, entry := range entries {
		user := domain.EmployeeUser{
			ID:     entry.ID,
			Name:   entry.Name,
			Email:  entry.Email,
			Role:   entry.Role,
			Team:   entry.Team,
			Status: entry.Status,
		}
		if user.Role == "" {
			user.Role = domain.EmployeeDefaultRole
		}
		if user.Team == "" {
			user.Team = domain.EmployeeDefaultTeam
		}
		if user.Status == "" {
			user.Status = domain.EmployeeDefaultStatus
		}
		_ = s.employees.InsertIfAbsent(user)
	}
	return len(entries)
}
