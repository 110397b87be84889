// ABOUTME: Saved-vocabulary list semantics: dedupe, newest-first ordering, cap
package domain

import (
	"strings"
	"time"
)

// MaxSavedItems caps the vocabulary list; the oldest entries fall off the end.
const MaxSavedItems = 1000

// SavedItem is one vocabulary entry the user chose to keep.
type SavedItem struct {
	ID            string            `json:"id"`
	Text          string            `json:"text"`
	Type          SelectionShape    `json:"type"`
	PartOfSpeech  string            `json:"partOfSpeech,omitempty"`
	Translation   string            `json:"translation,omitempty"`
	Pronunciation string            `json:"pronunciation,omitempty"`
	AudioURL      string            `json:"audioUrl,omitempty"`
	Definitions   []DefinitionBlock `json:"definitions,omitempty"`
	SavedAt       time.Time         `json:"savedAt"`
}

// sameEntry matches on (lowercased text, type, part of speech).
func sameEntry(a, b SavedItem) bool {
	return strings.EqualFold(a.Text, b.Text) && a.Type == b.Type && a.PartOfSpeech == b.PartOfSpeech
}

// UpsertSavedItem inserts item at the front of list, replacing any existing
// entry with the same identity in place, and enforces MaxSavedItems.
func UpsertSavedItem(list []SavedItem, item SavedItem) []SavedItem {
	for i := range list {
		if sameEntry(list[i], item) {
			item.ID = list[i].ID
			list[i] = item
			return list
		}
	}
	out := make([]SavedItem, 0, len(list)+1)
	out = append(out, item)
	out = append(out, list...)
	if len(out) > MaxSavedItems {
		out = out[:MaxSavedItems]
	}
	return out
}

// RemoveSavedItem drops entries matching text and type. When partOfSpeech is
// non-empty it narrows the match; when empty, all parts of speech match.
func RemoveSavedItem(list []SavedItem, text string, typ SelectionShape, partOfSpeech string) []SavedItem {
	out := list[:0]
	for _, it := range list {
		match := strings.EqualFold(it.Text, text) && it.Type == typ
		if match && partOfSpeech != "" {
			match = it.PartOfSpeech == partOfSpeech
		}
		if !match {
			out = append(out, it)
		}
	}
	return out
}
