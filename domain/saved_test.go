package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func savedWord(text, pos string) SavedItem {
	return SavedItem{
		ID:           text + "-" + pos,
		Text:         text,
		Type:         ShapeWord,
		PartOfSpeech: pos,
		SavedAt:      time.Now(),
	}
}

func TestUpsertSavedItem(t *testing.T) {
	t.Run("new item goes to the front", func(t *testing.T) {
		list := []SavedItem{savedWord("run", "verb")}
		list = UpsertSavedItem(list, savedWord("take", "verb"))

		require.Len(t, list, 2)
		assert.Equal(t, "take", list[0].Text)
		assert.Equal(t, "run", list[1].Text)
	})

	t.Run("same text type and pos updates in place", func(t *testing.T) {
		list := []SavedItem{savedWord("run", "verb"), savedWord("take", "verb")}
		updated := savedWord("RUN", "verb")
		updated.Translation = "бігти"
		list = UpsertSavedItem(list, updated)

		require.Len(t, list, 2)
		assert.Equal(t, "RUN", list[0].Text)
		assert.Equal(t, "бігти", list[0].Translation)
		assert.Equal(t, "run-verb", list[0].ID, "identity of the replaced entry is kept")
	})

	t.Run("same word different pos is a distinct entry", func(t *testing.T) {
		list := []SavedItem{savedWord("run", "verb")}
		list = UpsertSavedItem(list, savedWord("run", "noun"))
		assert.Len(t, list, 2)
	})

	t.Run("list is capped", func(t *testing.T) {
		var list []SavedItem
		for i := 0; i < MaxSavedItems; i++ {
			list = UpsertSavedItem(list, savedWord(fmt.Sprintf("w%d", i), "noun"))
		}
		list = UpsertSavedItem(list, savedWord("newest", "noun"))

		assert.Len(t, list, MaxSavedItems)
		assert.Equal(t, "newest", list[0].Text)
		assert.Equal(t, "w0", list[len(list)-1].Text, "oldest entry fell off")
	})
}

func TestRemoveSavedItem(t *testing.T) {
	t.Run("with pos removes only that pos", func(t *testing.T) {
		list := []SavedItem{savedWord("run", "verb"), savedWord("run", "noun")}
		list = RemoveSavedItem(list, "run", ShapeWord, "noun")

		require.Len(t, list, 1)
		assert.Equal(t, "verb", list[0].PartOfSpeech)
	})

	t.Run("without pos removes every pos", func(t *testing.T) {
		list := []SavedItem{savedWord("run", "verb"), savedWord("run", "noun"), savedWord("take", "verb")}
		list = RemoveSavedItem(list, "Run", ShapeWord, "")

		require.Len(t, list, 1)
		assert.Equal(t, "take", list[0].Text)
	})

	t.Run("type mismatch keeps the entry", func(t *testing.T) {
		list := []SavedItem{savedWord("give up", "")}
		list = RemoveSavedItem(list, "give up", ShapePhrase, "")
		assert.Len(t, list, 1)
	})
}
