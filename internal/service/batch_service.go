package service

import (
	"errors"

	"github.com/ADITHIYAN008/backend/internal/api/dto"
	"github.com/ADITHIYAN008/backend/internal/domain"
	"github.com/ADITHIYAN008/backend/internal/repository"
	apperrors "github.com/ADITHIYAN008/backend/pkg/util"
)

// BatchService owns validation and defaulting for the batch collection.
type BatchService struct {
	batches repository.BatchStore
}

// NewBatchService builds the service.
func NewBatchService(batches repository.BatchStore) *BatchService {
	return &BatchService{batches: batches}
}

// List returns all batches in insertion order.
func (s *BatchService) List() []domain.Batch {
	return s.batches.List()
}

// Create validates and inserts a new batch.
func (s *BatchService) Create(req dto.BatchCreateRequest) (*domain.Batch, error) {
	if req.Code == "" || req.Name == "" || req.StartDate == "" || req.EndDate == "" {
		return nil, apperrors.NewValidationError("code, name, startDate, endDate required", nil)
	}

	batch := domain.Batch{
		Code:      req.Code,
		Name:      req.Name,
		Domain:    req.Domain,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Trainees:  req.Trainees,
		Status:    req.Status,
	}
	if batch.Domain == "" {
		batch.Domain = domain.BatchDomainUnspecified
	}
	if batch.Status == "" {
		batch.Status = domain.BatchStatusUpcoming
	}

	if err := s.batches.InsertIfAbsent(batch); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewConflict("batch already exists", map[string]any{"code": batch.Code})
		}
		return nil, apperrors.NewInternalError(err)
	}
	return &batch, nil
}

// Update merges the supplied fields into an existing batch. Absent fields
// keep their current values.
func (s *BatchService) Update(code string, req dto.BatchUpdateRequest) (*domain.Batch, error) {
	updated, err := s.batches.UpdateIfPresent(code, func(batch *domain.Batch) {
		if req.Name != nil {
			batch.Name = *req.Name
		}
		if req.Domain != nil {
			batch.Domain = *req.Domain
		}
		if req.StartDate != nil {
			batch.StartDate = *req.StartDate
		}
		if req.EndDate != nil {
			batch.EndDate = *req.EndDate
		}
		if req.Trainees != nil {
			batch.Trainees = *req.Trainees
		}
		if req.Status != nil {
			batch.Status = *req.Status
		}
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("batch", map[string]any{"code": code})
		}
		return nil, apperrors.NewInternalError(err)
	}
	return updated, nil
}
