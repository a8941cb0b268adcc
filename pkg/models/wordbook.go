package models

import "time"

// Wordbook groups words into a study collection (exam list, daily vocabulary, etc.)
type Wordbook struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Icon        string    `json:"icon" db:"icon"`
	Category    string    `json:"category" db:"category"` // "exam", "daily", "business", "academic", "custom"
	Level       string    `json:"level" db:"level"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// WordbookSummary is a wordbook together with a user's progress counts
type WordbookSummary struct {
	Wordbook
	WordCount     int `json:"word_count" db:"word_count"`
	MasteredCount int `json:"mastered_count" db:"mastered_count"`
	LearningCount int `json:"learning_count" db:"learning_count"`
}
