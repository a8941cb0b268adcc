package models

import "time"

// StarredWord marks a word a user pinned for extra attention
type StarredWord struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	WordID    int64     `json:"word_id" db:"word_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
