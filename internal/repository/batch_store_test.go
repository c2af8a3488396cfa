package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ADITHIYAN008/backend/internal/domain"
)

func TestBatchStoreInsertIfAbsent(t *testing.T) {
	store := NewBatchStoreWith()

	require.NoError(t, store.InsertIfAbsent(domain.Batch{Code: "X1", Name: "N"}))
	err := store.InsertIfAbsent(domain.Batch{Code: "X1", Name: "other"})
	require.ErrorIs(t, err, ErrDuplicate)

	batch, ok := store.Get("X1")
	require.True(t, ok)
	require.Equal(t, "N", batch.Name)
}

func TestBatchStoreUpdateIfPresent(t *testing.T) {
	store := NewBatchStoreWith(domain.Batch{Code: "X1", Name: "N", Status: "Upcoming"})

	t.Run("merge touches only what the caller sets", func(t *testing.T) {
		updated, err := store.UpdateIfPresent("X1", func(b *domain.Batch) {
			b.Status = "Active"
		})
		require.NoError(t, err)
		require.Equal(t, "Active", updated.Status)
		require.Equal(t, "N", updated.Name)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := store.UpdateIfPresent("nope", func(b *domain.Batch) {})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestBatchStoreListOrder(t *testing.T) {
	store := NewBatchStoreWith()
	for i := 0; i < 5; i++ {
		require.NoError(t, store.InsertIfAbsent(domain.Batch{Code: fmt.Sprintf("B%d", i)}))
	}

	list := store.List()
	require.Len(t, list, 5)
	for i, batch := range list {
		require.Equal(t, fmt.Sprintf("B%d", i), batch.Code)
	}
}

func TestBatchStoreConcurrentInsertSingleWinner(t *testing.T) {
	store := NewBatchStoreWith()

	const workers = 32
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.InsertIfAbsent(domain.Batch{Code: "RACE"})
		}()
	}
	wg.Wait()
	close(errs)

	var wins int
	for err := range errs {
		if err == nil {
			wins++
		} else {
			require.ErrorIs(t, err, ErrDuplicate)
		}
	}
	require.Equal(t, 1, wins)
	require.Len(t, store.List(), 1)
}
