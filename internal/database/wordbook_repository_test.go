package database

import (
	"context"
	"testing"

	"github.com/example/wordrecall/pkg/models"
)

func TestWordbookCreateAssignsID(t *testing.T) {
	setupTestDB(t)
	books := NewWordbookRepository()
	words := NewWordRepository()
	ctx := context.Background()

	book := &models.Wordbook{Name: "CET-4"}
	if err := books.Create(ctx, book); err != nil {
		t.Fatalf("Create wordbook: %v", err)
	}
	if book.ID == 0 {
		t.Fatal("book.ID = 0, want the inserted row id")
	}

	got, err := books.GetByName(ctx, "CET-4")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if got == nil || got.ID != book.ID {
		t.Errorf("GetByName = %+v, want id %d", got, book.ID)
	}

	// The id must be usable immediately, as the importer chains it into
	// word rows.
	w := &models.Word{WordbookID: book.ID, Word: "abandon", Meaning: "give up"}
	if err := words.Create(ctx, w); err != nil {
		t.Fatalf("Create word: %v", err)
	}
	if w.ID == 0 {
		t.Fatal("word.ID = 0, want the inserted row id")
	}
	stored, err := words.GetByID(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored == nil || stored.WordbookID != book.ID {
		t.Errorf("stored word = %+v, want wordbook id %d", stored, book.ID)
	}
}

func TestWordGetByIDMissing(t *testing.T) {
	setupTestDB(t)
	words := NewWordRepository()

	w, err := words.GetByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if w != nil {
		t.Errorf("w = %+v, want nil for a missing word", w)
	}
}
