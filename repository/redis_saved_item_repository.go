// ABOUTME: Redis-backed saved-vocabulary store, one JSON document per user list
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"definex/domain"
)

type RedisSavedItemRepository struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

func NewRedisSavedItemRepository(client *redis.Client, keyPrefix string, logger *slog.Logger) *RedisSavedItemRepository {
	return &RedisSavedItemRepository{
		client: client,
		key:    keyPrefix + ":saved_items",
		logger: logger,
	}
}

func (r *RedisSavedItemRepository) List(ctx context.Context) ([]domain.SavedItem, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.SavedItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load saved items: %w", err)
	}

	var items []domain.SavedItem
	if err := json.Unmarshal(data, &items); err != nil {
		// A corrupt snapshot should not brick the feature
		r.logger.Error("saved items snapshot is corrupt, resetting", "error", err)
		return []domain.SavedItem{}, nil
	}
	return items, nil
}

func (r *RedisSavedItemRepository) Replace(ctx context.Context, items []domain.SavedItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal saved items: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store saved items: %w", err)
	}
	return nil
}
