package database

import (
	"context"
	"testing"

	"github.com/example/wordrecall/pkg/models"
)

func TestMeaningsOrderedByFrequency(t *testing.T) {
	setupTestDB(t)
	repo := NewMeaningRepository()
	ctx := context.Background()

	senses := []models.WordMeaning{
		{WordID: 1, Meaning: "to carry", PartOfSpeech: "v.", FrequencyScore: 40},
		{WordID: 1, Meaning: "a bear", PartOfSpeech: "n.", FrequencyScore: 90, IsPrimary: true},
		{WordID: 2, Meaning: "other word", FrequencyScore: 100},
	}
	for i := range senses {
		if err := repo.Create(ctx, &senses[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.GetByWord(ctx, 1)
	if err != nil {
		t.Fatalf("GetByWord: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Meaning != "a bear" || got[1].Meaning != "to carry" {
		t.Errorf("order = [%s, %s], want most frequent sense first", got[0].Meaning, got[1].Meaning)
	}
}

func TestExamFocusFilteredByWordbook(t *testing.T) {
	setupTestDB(t)
	words := NewWordRepository()
	repo := NewMeaningRepository()
	ctx := context.Background()

	inBook := models.Word{WordbookID: 10, Word: "address", Meaning: "location"}
	elsewhere := models.Word{WordbookID: 20, Word: "table", Meaning: "furniture"}
	if err := words.Create(ctx, &inBook); err != nil {
		t.Fatalf("Create word: %v", err)
	}
	if err := words.Create(ctx, &elsewhere); err != nil {
		t.Fatalf("Create word: %v", err)
	}

	senses := []models.WordMeaning{
		{WordID: inBook.ID, Meaning: "to deal with", IsExamFocus: true, FrequencyScore: 30},
		{WordID: inBook.ID, Meaning: "location", IsPrimary: true, FrequencyScore: 90},
		{WordID: elsewhere.ID, Meaning: "to postpone", IsExamFocus: true, FrequencyScore: 50},
	}
	for i := range senses {
		if err := repo.Create(ctx, &senses[i]); err != nil {
			t.Fatalf("Create meaning: %v", err)
		}
	}

	all, err := repo.GetExamFocus(ctx, 0)
	if err != nil {
		t.Fatalf("GetExamFocus: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("len(all) = %d, want both exam-focus senses", len(all))
	}

	scoped, err := repo.GetExamFocus(ctx, 10)
	if err != nil {
		t.Fatalf("GetExamFocus scoped: %v", err)
	}
	if len(scoped) != 1 || scoped[0].Meaning != "to deal with" {
		t.Errorf("scoped = %+v, want only the wordbook-10 exam sense", scoped)
	}
}
