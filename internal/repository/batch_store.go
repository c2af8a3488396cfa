package repository

import (
	"sync"

	"github.com/ADITHIYAN008/backend/internal/domain"
)

// BatchStore is an in-memory ordered collection of training batches,
// keyed by batch code.
type BatchStore interface {
	List() []domain.Batch
	Get(code string) (*domain.Batch, bool)
	InsertIfAbsent(batch domain.Batch) error
	UpdateIfPresent(code string, merge func(*domain.Batch)) (*domain.Batch, error)
}

type batchStore struct {
	mu      sync.RWMutex
	batches []domain.Batch
}

// NewBatchStore seeds the store with the stock fixture batch.
func NewBatchStore() BatchStore {
	return NewBatchStoreWith(domain.Batch{
		Code:      "IGNITE-2025-A",
		Name:      "Full Stack January 2025",
		Domain:    domain.BatchDomainUnspecified,
		StartDate: "2025-01-15",
		EndDate:   "2025-05-15",
		Trainees:  30,
		Status:    domain.BatchStatusUpcoming,
	})
}

// NewBatchStoreWith builds a store over an arbitrary initial set.
func NewBatchStoreWith(batches ...domain.Batch) BatchStore {
	return &batchStore{batches: batches}
}

// List returns a copy of the collection in insertion order.
func (s *batchStore) List() []domain.Batch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Batch, len(s.batches))
	copy(out, s.batches)
	return out
}

func (s *batchStore) Get(code string) (*domain.Batch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.batches {
		if s.batches[i].Code == code {
			batch := s.batches[i]
			return &batch, true
		}
	}
	return nil, false
}

// InsertIfAbsent appends the batch unless its code is taken. The uniqueness
// check and the append happen under one lock so concurrent creates cannot
// both win the same code.
func (s *batchStore) InsertIfAbsent(batch domain.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.batches {
		if s.batches[i].Code == batch.Code {
			return ErrDuplicate
		}
	}
	s.batches = append(s.batches, batch)
	return nil
}

// UpdateIfPresent applies merge to the batch with the given code and returns
// the updated copy.
func (s *batchStore) UpdateIfPresent(code string, merge func(*domain.Batch)) (*domain.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.batches {
		if s.batches[i].Code == code {
			merge(&s.batches[i])
			updated := s.batches[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}
