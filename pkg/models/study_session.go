package models

import "time"

// StudyMode identifies how items were drilled during a session
type StudyMode string

const (
	ModeWordMeaning StudyMode = "word-meaning" // shown the word, pick the meaning
	ModeMeaningWord StudyMode = "meaning-word" // shown the meaning, pick the word
	ModeSpelling    StudyMode = "spelling"
	ModeListening   StudyMode = "listening"
	ModeFlashcard   StudyMode = "flashcard"
)

// StudySession records one completed study session
type StudySession struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	WordbookID      *int64    `json:"wordbook_id" db:"wordbook_id"`
	Mode            StudyMode `json:"mode" db:"mode"`
	WordsStudied    int       `json:"words_studied" db:"words_studied"`
	CorrectCount    int       `json:"correct_count" db:"correct_count"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
