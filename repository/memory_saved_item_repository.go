// ABOUTME: In-memory saved-vocabulary store for tests and Redis-less deployments
package repository

import (
	"context"
	"sync"

	"definex/domain"
)

type MemorySavedItemRepository struct {
	mu    sync.RWMutex
	items []domain.SavedItem
}

func NewMemorySavedItemRepository() *MemorySavedItemRepository {
	return &MemorySavedItemRepository{}
}

func (r *MemorySavedItemRepository) List(ctx context.Context) ([]domain.SavedItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.SavedItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemorySavedItemRepository) Replace(ctx context.Context, items []domain.SavedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]domain.SavedItem, len(items))
	copy(r.items, items)
	return nil
}
