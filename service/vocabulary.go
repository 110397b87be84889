// ABOUTME: Saved-vocabulary operations over the snapshot repository
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"definex/domain"
	"definex/repository"
)

// VocabularyService applies the list semantics (dedupe, newest first, cap)
// on top of the snapshot store.
type VocabularyService struct {
	repo   repository.SavedItemRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewVocabularyService(repo repository.SavedItemRepository, logger *slog.Logger) *VocabularyService {
	return &VocabularyService{repo: repo, logger: logger, now: time.Now}
}

func (s *VocabularyService) List(ctx context.Context) ([]domain.SavedItem, error) {
	return s.repo.List(ctx)
}

// Save inserts or updates an item and returns the stored entry.
func (s *VocabularyService) Save(ctx context.Context, item domain.SavedItem) (domain.SavedItem, error) {
	item.Text = strings.TrimSpace(item.Text)
	if item.Text == "" {
		return domain.SavedItem{}, fmt.Errorf("saved item text cannot be empty")
	}
	if item.Type == "" {
		item.Type = domain.ClassifySelection(item.Text)
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.SavedAt = s.now()

	list, err := s.repo.List(ctx)
	if err != nil {
		return domain.SavedItem{}, err
	}

	list = domain.UpsertSavedItem(list, item)
	if err := s.repo.Replace(ctx, list); err != nil {
		return domain.SavedItem{}, err
	}

	s.logger.Info("vocabulary item saved", "text", item.Text, "type", item.Type)

	// An update keeps the original entry's ID, so report the stored entry
	for _, stored := range list {
		if strings.EqualFold(stored.Text, item.Text) && stored.Type == item.Type && stored.PartOfSpeech == item.PartOfSpeech {
			return stored, nil
		}
	}
	return item, nil
}

// Unsave removes matching items. An empty partOfSpeech matches every part of
// speech for the text and type.
func (s *VocabularyService) Unsave(ctx context.Context, text string, typ domain.SelectionShape, partOfSpeech string) (int, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	remaining := domain.RemoveSavedItem(list, strings.TrimSpace(text), typ, partOfSpeech)
	removed := len(list) - len(remaining)
	if removed == 0 {
		return 0, nil
	}

	if err := s.repo.Replace(ctx, remaining); err != nil {
		return 0, err
	}

	s.logger.Info("vocabulary item removed", "text", text, "count", removed)
	return removed, nil
}
