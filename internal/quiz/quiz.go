// Package quiz turns study-queue words into questions for the different
// drill modes and records finished sessions.
package quiz

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/example/wordrecall/internal/study"
	"github.com/example/wordrecall/pkg/models"
)

// Question is a single prompt shown to the user.
type Question struct {
	Word         models.Word
	Mode         models.StudyMode
	Prompt       string
	Options      []string // empty for spelling/flashcard/listening
	CorrectIndex int
}

// SessionStore persists completed sessions.
type SessionStore interface {
	Create(ctx context.Context, s *models.StudySession) error
}

// Generator builds questions from a queue of words.
type Generator struct {
	rnd      *rand.Rand
	sessions SessionStore
}

// NewGenerator seeds a generator; sessions may be nil when results are not
// recorded (practice without an account).
func NewGenerator(seed int64, sessions SessionStore) *Generator {
	return &Generator{
		rnd:      rand.New(rand.NewSource(seed)),
		sessions: sessions,
	}
}

// Build creates one question per queue word. pool supplies distractor
// candidates for the choice modes and would normally be the whole wordbook.
func (g *Generator) Build(queue, pool []models.Word, mode models.StudyMode) []Question {
	questions := make([]Question, 0, len(queue))
	for _, w := range queue {
		questions = append(questions, g.question(w, pool, mode))
	}
	return questions
}

func (g *Generator) question(w models.Word, pool []models.Word, mode models.StudyMode) Question {
	q := Question{Word: w, Mode: mode}

	switch mode {
	case models.ModeWordMeaning:
		q.Prompt = w.Word
		q.Options, q.CorrectIndex = g.choices(w.Meaning, pool, func(p models.Word) string { return p.Meaning })
	case models.ModeMeaningWord:
		q.Prompt = w.Meaning
		q.Options, q.CorrectIndex = g.choices(w.Word, pool, func(p models.Word) string { return p.Word })
	case models.ModeSpelling:
		q.Prompt = w.Meaning
		if w.Phonetic != "" {
			q.Prompt = fmt.Sprintf("%s %s", w.Meaning, w.Phonetic)
		}
	case models.ModeListening:
		// The client plays w.AudioURL; the prompt stays empty on purpose.
		q.Options, q.CorrectIndex = g.choices(w.Word, pool, func(p models.Word) string { return p.Word })
	default: // flashcard
		q.Prompt = w.Word
	}
	return q
}

// choices builds a shuffled four-option list containing the correct answer.
func (g *Generator) choices(correct string, pool []models.Word, pick func(models.Word) string) ([]string, int) {
	distractors := g.distractors(correct, pool, pick, 3)
	options := append(distractors, correct)
	study.Shuffle(g.rnd, options)
	for i, o := range options {
		if o == correct {
			return options, i
		}
	}
	return options, 0 // unreachable, the correct answer is always present
}

// distractors picks up to n wrong answers from the pool, avoiding
// duplicates of the correct answer and of each other.
func (g *Generator) distractors(correct string, pool []models.Word, pick func(models.Word) string, n int) []string {
	candidates := make([]models.Word, len(pool))
	copy(candidates, pool)
	study.Shuffle(g.rnd, candidates)

	seen := map[string]bool{correct: true}
	out := make([]string, 0, n)
	for _, c := range candidates {
		v := pick(c)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// CheckSpelling compares a typed answer against the word, ignoring case and
// surrounding whitespace.
func CheckSpelling(answer string, w models.Word) bool {
	return strings.EqualFold(strings.TrimSpace(answer), w.Word)
}

// RecordSession stores a finished session's totals.
func (g *Generator) RecordSession(ctx context.Context, userID int64, wordbookID *int64, mode models.StudyMode, studied, correct int, duration time.Duration) error {
	if g.sessions == nil {
		return nil
	}
	session := &models.StudySession{
		UserID:          userID,
		WordbookID:      wordbookID,
		Mode:            mode,
		WordsStudied:    studied,
		CorrectCount:    correct,
		DurationMinutes: int(duration.Minutes()),
	}
	if err := g.sessions.Create(ctx, session); err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	return nil
}
