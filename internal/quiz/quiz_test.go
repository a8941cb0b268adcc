package quiz

import (
	"context"
	"testing"
	"time"

	"github.com/example/wordrecall/pkg/models"
)

func pool() []models.Word {
	return []models.Word{
		{ID: 1, Word: "abandon", Meaning: "to give up"},
		{ID: 2, Word: "benefit", Meaning: "an advantage"},
		{ID: 3, Word: "candid", Meaning: "honest and direct"},
		{ID: 4, Word: "durable", Meaning: "long lasting"},
		{ID: 5, Word: "eager", Meaning: "keen, enthusiastic"},
	}
}

func TestWordMeaningQuestions(t *testing.T) {
	words := pool()
	g := NewGenerator(1, nil)
	questions := g.Build(words[:2], words, models.ModeWordMeaning)

	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	for _, q := range questions {
		if q.Prompt != q.Word.Word {
			t.Errorf("prompt = %q, want the word %q", q.Prompt, q.Word.Word)
		}
		if len(q.Options) != 4 {
			t.Fatalf("got %d options, want 4: %v", len(q.Options), q.Options)
		}
		if q.Options[q.CorrectIndex] != q.Word.Meaning {
			t.Errorf("options[%d] = %q, want %q", q.CorrectIndex, q.Options[q.CorrectIndex], q.Word.Meaning)
		}
		seen := make(map[string]bool)
		for _, o := range q.Options {
			if seen[o] {
				t.Errorf("duplicate option %q in %v", o, q.Options)
			}
			seen[o] = true
		}
	}
}

func TestMeaningWordQuestions(t *testing.T) {
	words := pool()
	g := NewGenerator(2, nil)
	q := g.Build(words[:1], words, models.ModeMeaningWord)[0]

	if q.Prompt != "to give up" {
		t.Errorf("prompt = %q, want the meaning", q.Prompt)
	}
	if q.Options[q.CorrectIndex] != "abandon" {
		t.Errorf("correct option = %q, want abandon", q.Options[q.CorrectIndex])
	}
}

func TestSmallPoolStillContainsAnswer(t *testing.T) {
	words := pool()[:2] // only one distractor available
	g := NewGenerator(3, nil)
	q := g.Build(words[:1], words, models.ModeWordMeaning)[0]

	if len(q.Options) != 2 {
		t.Fatalf("got %d options, want 2 with a tiny pool", len(q.Options))
	}
	if q.Options[q.CorrectIndex] != q.Word.Meaning {
		t.Errorf("correct answer missing from %v", q.Options)
	}
}

func TestSpellingQuestions(t *testing.T) {
	w := models.Word{ID: 1, Word: "abandon", Meaning: "to give up", Phonetic: "/əˈbændən/"}
	g := NewGenerator(4, nil)
	q := g.Build([]models.Word{w}, nil, models.ModeSpelling)[0]

	if len(q.Options) != 0 {
		t.Errorf("spelling question has options: %v", q.Options)
	}
	if q.Prompt != "to give up /əˈbændən/" {
		t.Errorf("prompt = %q", q.Prompt)
	}

	if !CheckSpelling("  Abandon ", w) {
		t.Error("case/space-insensitive match rejected")
	}
	if CheckSpelling("abandoned", w) {
		t.Error("wrong spelling accepted")
	}
}

type capturedSession struct {
	session *models.StudySession
}

func (c *capturedSession) Create(_ context.Context, s *models.StudySession) error {
	c.session = s
	return nil
}

func TestFlashcardQuestions(t *testing.T) {
	words := pool()
	g := NewGenerator(1, nil)
	questions := g.Build(words[:3], words, models.ModeFlashcard)

	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(questions))
	}
	for _, q := range questions {
		if q.Prompt != q.Word.Word {
			t.Errorf("prompt = %q, want the front side %q", q.Prompt, q.Word.Word)
		}
		// Self-graded: the answer side is revealed, never picked from options.
		if len(q.Options) != 0 {
			t.Errorf("options = %v, want none for a flashcard", q.Options)
		}
	}
}

func TestRecordSession(t *testing.T) {
	store := &capturedSession{}
	g := NewGenerator(5, store)
	bookID := int64(3)

	err := g.RecordSession(context.Background(), 7, &bookID, models.ModeSpelling, 10, 8, 7*time.Minute+30*time.Second)
	if err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	s := store.session
	if s == nil {
		t.Fatal("session not stored")
	}
	if s.UserID != 7 || *s.WordbookID != 3 || s.Mode != models.ModeSpelling {
		t.Errorf("session = %+v", s)
	}
	if s.WordsStudied != 10 || s.CorrectCount != 8 || s.DurationMinutes != 7 {
		t.Errorf("totals = %d/%d/%dmin, want 10/8/7", s.WordsStudied, s.CorrectCount, s.DurationMinutes)
	}
}
