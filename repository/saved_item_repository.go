// ABOUTME: Saved-vocabulary persistence interface
// ABOUTME: The list is stored and replaced as one snapshot, mirroring a key-value store
package repository

import (
	"context"

	"definex/domain"
)

// SavedItemRepository stores the vocabulary list as a single ordered
// snapshot. List/mutate/Replace keeps the dedupe and ordering rules in the
// domain layer where they are unit-testable.
type SavedItemRepository interface {
	List(ctx context.Context) ([]domain.SavedItem, error)
	Replace(ctx context.Context, items []domain.SavedItem) error
}
