package models

import "time"

// MasteredThreshold is the mastery score at which an item counts as mastered.
const MasteredThreshold = 80

// LearningState is derived from mastery, never stored.
type LearningState string

const (
	StateUnseen   LearningState = "unseen"
	StateLearning LearningState = "learning"
	StateMastered LearningState = "mastered"
)

// ProgressRecord tracks one user's learning state for one item (a word or a
// specific meaning). Created lazily on the first answer; a missing record
// means mastery 0 with zero counters.
type ProgressRecord struct {
	ID           int64      `json:"id" db:"id"`
	UserID       int64      `json:"user_id" db:"user_id"`
	ItemID       int64      `json:"item_id" db:"item_id"`
	Mastery      int        `json:"mastery" db:"mastery"` // 0-100
	ReviewCount  int        `json:"review_count" db:"review_count"`
	CorrectCount int        `json:"correct_count" db:"correct_count"`
	LastReviewed *time.Time `json:"last_reviewed" db:"last_reviewed"`
	NextReview   *time.Time `json:"next_review" db:"next_review"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// State derives the learning state from the mastery score.
func (p *ProgressRecord) State() LearningState {
	switch {
	case p == nil || p.Mastery == 0:
		return StateUnseen
	case p.Mastery >= MasteredThreshold:
		return StateMastered
	default:
		return StateLearning
	}
}

// DueAt reports whether the record is due for review at the given time.
func (p *ProgressRecord) DueAt(now time.Time) bool {
	return p != nil && p.NextReview != nil && !p.NextReview.After(now)
}
